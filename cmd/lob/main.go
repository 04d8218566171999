package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/quantfabric/limitbook/command"
	"github.com/quantfabric/limitbook/config"
	"github.com/quantfabric/limitbook/matching"
)

var _ matching.Handler = &Stats{}

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		inputFile  = flag.String("input", "", "path to command file (overrides config)")
		depth      = flag.Int("depth", 0, "book depth to print (overrides config)")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			sugar.Fatalw("failed to load config", "error", err)
		}
		cfg = loaded
	}
	if *inputFile != "" {
		cfg.InputFile = *inputFile
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if cfg.InputFile == "" {
		sugar.Fatal("no input file given, use -input or the config file")
	}

	// Parse the whole command stream up front so file I/O stays out of the
	// measured section.
	commands, skipped, err := command.ParseFile(cfg.InputFile)
	if err != nil {
		sugar.Fatalw("failed to parse commands", "error", err)
	}
	if len(commands) == 0 {
		sugar.Fatalw("no commands parsed", "file", cfg.InputFile)
	}
	sugar.Infow("commands parsed", "file", cfg.InputFile, "commands", len(commands), "skipped", skipped)

	stats := &Stats{}
	engine := matching.NewEngine(stats)

	// Replay the commands against the engine, assigning strictly increasing
	// ids to submissions. The maker/taker decision depends on this ordering.
	var nextOrderID uint64 = 1
	timeStart := time.Now()
	for _, cmd := range commands {
		switch cmd.Kind {
		case command.KindAdd:
			if err := engine.AddOrder(nextOrderID, cmd.Side, cmd.Price, cmd.Quantity); err != nil {
				sugar.Warnw("order rejected", "id", nextOrderID, "error", err)
			}
			nextOrderID++
		case command.KindCancel:
			engine.CancelOrder(cmd.ID)
		}
	}
	timeElapsed := time.Since(timeStart)

	printBook(os.Stdout, engine, cfg.Depth)
	printTrades(os.Stdout, engine.Trades(), cfg.Depth)

	fmt.Println()
	stats.PrintStatistics(os.Stdout)
	fmt.Println()
	printReport(os.Stdout, engine, len(commands), timeElapsed)
}

func newLogger(debug bool) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if debug {
		zapCfg = zap.NewDevelopmentConfig()
	}
	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
