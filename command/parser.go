package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quantfabric/limitbook/matching"
)

// Expected input structure, one command per line:
//
//	ADD <BUY|SELL> <price> <quantity>
//	CANCEL <id>
//
// Blank lines and lines starting with '#' are skipped. Malformed lines are
// skipped as well and counted, mirroring how a live feed would drop
// unreadable messages instead of stopping.

// Parse reads commands from r until EOF.
// It returns the parsed commands and the amount of skipped malformed lines.
func Parse(r io.Reader) ([]Command, int, error) {
	var commands []Command
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, ok := parseLine(line)
		if !ok {
			skipped++
			continue
		}
		commands = append(commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading commands: %w", err)
	}

	return commands, skipped, nil
}

// ParseFile reads commands from the file at the given path.
func ParseFile(path string) ([]Command, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening command file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

func parseLine(line string) (Command, bool) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "ADD":
		if len(fields) != 4 {
			return Command{}, false
		}
		var side matching.OrderSide
		switch fields[1] {
		case "BUY":
			side = matching.OrderSideBuy
		case "SELL":
			side = matching.OrderSideSell
		default:
			return Command{}, false
		}
		price, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return Command{}, false
		}
		quantity, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return Command{}, false
		}
		return Command{Kind: KindAdd, Side: side, Price: price, Quantity: quantity}, true

	case "CANCEL":
		if len(fields) != 2 {
			return Command{}, false
		}
		id, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return Command{}, false
		}
		return Command{Kind: KindCancel, ID: id}, true

	default:
		return Command{}, false
	}
}
