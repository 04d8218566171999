package matching

import (
	"github.com/quantfabric/limitbook/types/list"
)

// PriceLevel holds the FIFO queue of all resting orders sharing one exact
// price, together with the aggregate volume of the queue. A price level
// exists only while its queue is non-empty: it is created lazily for the
// first order at the price and released the moment the queue drains.
// NOTE: Not thread-safe.
type PriceLevel struct {
	price  uint64
	volume uint64 // total rest quantity of the entire order queue
	queue  *list.List[*Order]
}

// NewPriceLevel creates and returns new PriceLevel instance using pooled
// queue elements of the given allocator.
func NewPriceLevel(allocator *Allocator) *PriceLevel {
	return &PriceLevel{
		queue: list.NewListPooled[*Order](&allocator.queueElements),
	}
}

// Price returns price of the level.
func (pl *PriceLevel) Price() uint64 {
	return pl.price
}

// Volume returns total rest quantity of all queued orders.
func (pl *PriceLevel) Volume() uint64 {
	return pl.volume
}

// Orders returns amount of orders in the queue.
func (pl *PriceLevel) Orders() int {
	return pl.queue.Len()
}

// Front returns the queue slot of the earliest arrived order.
func (pl *PriceLevel) Front() *list.Element[*Order] {
	return pl.queue.Front()
}

// Clean resets the price level by removing all queued orders.
func (pl *PriceLevel) Clean() {
	pl.price = 0
	pl.volume = 0
	pl.queue.Clean()
}
