package main

import (
	"fmt"
	"io"
	"time"

	"github.com/quantfabric/limitbook/matching"
)

// printBook writes a two-sided depth view of the book, best prices first.
func printBook(w io.Writer, engine *matching.Engine, depth int) {
	bids := engine.TopLevels(matching.OrderSideBuy, depth)
	asks := engine.TopLevels(matching.OrderSideSell, depth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=========================================================")
	fmt.Fprintf(w, "%12s%26s\n", "BID", "ASK")
	fmt.Fprintln(w, "---------------------------------------------------------")
	fmt.Fprintln(w, "Orders | Quantity | Price    || Price    | Quantity | Orders")
	fmt.Fprintln(w, "---------------------------------------------------------")

	rows := len(bids)
	if len(asks) > rows {
		rows = len(asks)
	}
	for i := 0; i < rows; i++ {
		if i < len(bids) {
			fmt.Fprintf(w, "%6d | %8d | %8d", bids[i].Orders, bids[i].Volume, bids[i].Price)
		} else {
			fmt.Fprintf(w, "%28s", "")
		}
		fmt.Fprint(w, " || ")
		if i < len(asks) {
			fmt.Fprintf(w, "%-8d | %8d | %6d", asks[i].Price, asks[i].Volume, asks[i].Orders)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "=========================================================")
}

// printTrades writes the last limit entries of the trade log.
func printTrades(w io.Writer, trades []matching.Trade, limit int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Trade Log ---")
	if len(trades) == 0 {
		fmt.Fprintln(w, "No trades have occurred yet")
		return
	}

	start := 0
	if limit > 0 && len(trades) > limit {
		start = len(trades) - limit
		fmt.Fprintf(w, "... %d earlier trades omitted ...\n", start)
	}
	for _, trade := range trades[start:] {
		fmt.Fprintf(w, "Filled %d @ %d (maker %d, taker %d)\n",
			trade.Quantity, trade.Price, trade.MakerID, trade.TakerID)
	}
}

// printReport writes the performance summary of a replay run.
func printReport(w io.Writer, engine *matching.Engine, commands int, elapsed time.Duration) {
	log := engine.TradeLog()

	fmt.Fprintln(w, "--- Performance Report ---")
	fmt.Fprintf(w, "Commands processed: %d\n", commands)
	fmt.Fprintf(w, "Trades generated:   %d\n", log.Len())
	fmt.Fprintf(w, "Executed volume:    %d\n", log.TotalVolume())
	fmt.Fprintf(w, "Executed notional:  %s\n", log.TotalNotional())
	fmt.Fprintf(w, "Missed cancels:     %d\n", engine.MissedCancelCount())
	fmt.Fprintf(w, "Resting orders:     %d\n", engine.Orders())
	fmt.Fprintf(w, "Elapsed:            %s\n", elapsed)
	if seconds := elapsed.Seconds(); seconds > 0 {
		fmt.Fprintf(w, "Throughput:         %.2f commands/sec\n", float64(commands)/seconds)
	}
}
