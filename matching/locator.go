package matching

import (
	"github.com/quantfabric/limitbook/types/list"
)

// Locator names the exact place of a resting order: which side book, which
// price level and which queue slot. Side and price are plain data used to
// look the level up through the order book's own API; the queue slot is a
// stable list element handle that survives any mutation elsewhere in the
// book. A locator never references a tree node, so rebalancing can not
// invalidate it.
type Locator struct {
	Side  OrderSide
	Price uint64

	elem *list.Element[*Order]
}

// Order returns the resting order the locator points at.
func (l Locator) Order() *Order {
	return l.elem.Value
}
