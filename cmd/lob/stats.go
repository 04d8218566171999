package main

import (
	"fmt"
	"io"

	"github.com/quantfabric/limitbook/matching"
)

// Stats counts engine notifications during a replay run.
type Stats struct {
	orderUpdates      [2]uint64 // add, delete
	priceLevelUpdates [3]uint64 // add, update, delete
	tradesExecuted    uint64
	missedCancels     uint64
	totalUpdates      uint64
}

func (s *Stats) OnAddOrder(matching.OrderUpdate) {
	s.orderUpdates[0]++
	s.totalUpdates++
}

func (s *Stats) OnDeleteOrder(matching.OrderUpdate) {
	s.orderUpdates[1]++
	s.totalUpdates++
}

func (s *Stats) OnAddPriceLevel(matching.PriceLevelUpdate) {
	s.priceLevelUpdates[0]++
	s.totalUpdates++
}

func (s *Stats) OnUpdatePriceLevel(matching.PriceLevelUpdate) {
	s.priceLevelUpdates[1]++
	s.totalUpdates++
}

func (s *Stats) OnDeletePriceLevel(matching.PriceLevelUpdate) {
	s.priceLevelUpdates[2]++
	s.totalUpdates++
}

func (s *Stats) OnExecuteTrade(matching.Trade) {
	s.tradesExecuted++
	s.totalUpdates++
}

func (s *Stats) OnMissedCancel(uint64) {
	s.missedCancels++
	s.totalUpdates++
}

// PrintStatistics writes the collected notification counters.
func (s *Stats) PrintStatistics(w io.Writer) {
	fmt.Fprintln(w, "--- Engine Notifications ---")
	fmt.Fprintf(w, "Orders added:        %d\n", s.orderUpdates[0])
	fmt.Fprintf(w, "Orders deleted:      %d\n", s.orderUpdates[1])
	fmt.Fprintf(w, "Price levels added:  %d\n", s.priceLevelUpdates[0])
	fmt.Fprintf(w, "Price level updates: %d\n", s.priceLevelUpdates[1])
	fmt.Fprintf(w, "Price levels deleted:%d\n", s.priceLevelUpdates[2])
	fmt.Fprintf(w, "Trades executed:     %d\n", s.tradesExecuted)
	fmt.Fprintf(w, "Missed cancels:      %d\n", s.missedCancels)
	fmt.Fprintf(w, "Total notifications: %d\n", s.totalUpdates)
}
