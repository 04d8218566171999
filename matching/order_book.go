package matching

import (
	"fmt"

	"github.com/tidwall/hashmap"
	"gopkg.in/typ.v4"

	"github.com/quantfabric/limitbook/types/avl"
)

// OrderBook stores buy and sell orders of a single instrument in price level
// order: bids descending, asks ascending, so the most left tree node of each
// side is always the best price. Next to the two side trees it keeps a
// locator index from order id to the order's exact place, giving O(1)
// average cancellation without scanning either side.
// NOTE: Not thread-safe.
type OrderBook struct {
	// Allocator used by the order book
	allocator *Allocator

	// Bid/Ask price levels
	bids avl.Tree[uint64, *PriceLevel]
	asks avl.Tree[uint64, *PriceLevel]

	// Locators of all resting orders by order id
	orders *hashmap.Map[uint64, Locator]
}

// NewOrderBook creates and returns new OrderBook instance.
func NewOrderBook(allocator *Allocator) *OrderBook {
	return &OrderBook{
		allocator: allocator,
		bids: avl.NewTreePooled[uint64, *PriceLevel](
			func(a, b uint64) int { return typ.Compare(b, a) },
			&allocator.priceLevelNodes,
		),
		asks: avl.NewTreePooled[uint64, *PriceLevel](
			typ.Compare[uint64],
			&allocator.priceLevelNodes,
		),
		orders: hashmap.New[uint64, Locator](defaultReservedOrderSlots),
	}
}

////////////////////////////////////////////////////////////////
// Order book getters
////////////////////////////////////////////////////////////////

// IsEmpty returns true if the order book has no any orders.
func (ob *OrderBook) IsEmpty() bool {
	return ob.Size() == 0
}

// Size returns total amount of resting orders in the order book.
func (ob *OrderBook) Size() int {
	return ob.orders.Len()
}

// Find returns the locator of the resting order with given id.
func (ob *OrderBook) Find(id uint64) (Locator, bool) {
	return ob.orders.Get(id)
}

// TopBid returns best buy order price level.
func (ob *OrderBook) TopBid() *avl.Node[uint64, *PriceLevel] {
	return ob.bids.MostLeft()
}

// TopAsk returns best sell order price level.
func (ob *OrderBook) TopAsk() *avl.Node[uint64, *PriceLevel] {
	return ob.asks.MostLeft()
}

// BestBid returns price and total volume of the best buy price level.
func (ob *OrderBook) BestBid() (price uint64, volume uint64, ok bool) {
	return bestOf(ob.TopBid())
}

// BestAsk returns price and total volume of the best sell price level.
func (ob *OrderBook) BestAsk() (price uint64, volume uint64, ok bool) {
	return bestOf(ob.TopAsk())
}

func bestOf(node *avl.Node[uint64, *PriceLevel]) (price uint64, volume uint64, ok bool) {
	if node == nil {
		return 0, 0, false
	}
	priceLevel := node.Value()
	return priceLevel.price, priceLevel.volume, true
}

// Level is an aggregate view of one price level.
type Level struct {
	Price  uint64
	Volume uint64
	Orders int
}

// TopLevels returns aggregate snapshots of up to depth best price levels of
// the given side, best price first.
func (ob *OrderBook) TopLevels(side OrderSide, depth int) []Level {
	if depth <= 0 {
		return nil
	}
	levels := make([]Level, 0, depth)
	ob.treeForSide(side).IterateInOrder(func(pl *PriceLevel) bool {
		levels = append(levels, Level{Price: pl.price, Volume: pl.volume, Orders: pl.queue.Len()})
		return len(levels) >= depth
	})
	return levels
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

// add enqueues the order at the back of its price level, creating the level
// when the order is the first at its price, and indexes the order's locator.
func (ob *OrderBook) add(order *Order) (update PriceLevelUpdate, err error) {
	if _, ok := ob.orders.Get(order.id); ok {
		err = ErrOrderDuplicate
		return
	}

	// Find the price level for the order, create a new one if no one found
	tree := ob.treeForSide(order.side)
	kind := PriceLevelUpdateKindUpdate
	node := tree.Find(order.price)
	if node == nil {
		priceLevel := ob.allocator.GetPriceLevel()
		priceLevel.price = order.price
		node, err = tree.Add(order.price, priceLevel)
		if err != nil {
			ob.corrupted("level %d on %s side both exists and does not: %v", order.price, order.side, err)
		}
		kind = PriceLevelUpdateKindAdd
	}

	// Enqueue the new order to the order queue of the price level
	priceLevel := node.Value()
	priceLevel.volume += order.restQuantity
	elem := priceLevel.queue.PushBack(order)

	// Index the locator of the new order
	ob.orders.Set(order.id, Locator{Side: order.side, Price: order.price, elem: elem})

	update = PriceLevelUpdate{
		Kind:   kind,
		Side:   order.side,
		Price:  priceLevel.price,
		Volume: priceLevel.volume,
		Orders: priceLevel.queue.Len(),
		Top:    node == tree.MostLeft(),
	}
	return
}

// remove erases the order named by the locator from its price level queue
// and from the locator index, deleting the price level when the queue
// empties. Positions of all other resting orders are left untouched.
func (ob *OrderBook) remove(loc Locator) (update PriceLevelUpdate) {
	order := loc.Order()

	tree := ob.treeForSide(loc.Side)
	node := tree.Find(loc.Price)
	if node == nil {
		ob.corrupted("order %d indexed at missing %s level %d", order.id, loc.Side, loc.Price)
	}

	priceLevel := node.Value()
	top := node == tree.MostLeft()
	priceLevel.volume -= order.restQuantity
	if _, err := priceLevel.queue.Remove(loc.elem); err != nil {
		ob.corrupted("order %d locator does not point into %s level %d: %v", order.id, loc.Side, loc.Price, err)
	}
	ob.orders.Delete(order.id)

	update = PriceLevelUpdate{
		Kind:   PriceLevelUpdateKindUpdate,
		Side:   loc.Side,
		Price:  priceLevel.price,
		Volume: priceLevel.volume,
		Orders: priceLevel.queue.Len(),
		Top:    top,
	}

	// Delete the empty price level
	if priceLevel.queue.Len() == 0 {
		ob.deletePriceLevel(tree, loc.Price)
		update.Kind = PriceLevelUpdateKindDelete
	}
	return
}

// execute reduces the rest quantity of the front order of the given top
// level by the fill quantity. A fully executed order is dequeued and
// unindexed within the same call, deleting the price level when it drains.
func (ob *OrderBook) execute(node *avl.Node[uint64, *PriceLevel], order *Order, quantity uint64) (update PriceLevelUpdate, removed bool) {
	priceLevel := node.Value()
	tree := ob.treeForSide(order.side)
	top := node == tree.MostLeft()

	order.restQuantity -= quantity
	priceLevel.volume -= quantity

	if order.IsExecuted() {
		loc, ok := ob.orders.Get(order.id)
		if !ok {
			ob.corrupted("executed order %d is not indexed", order.id)
		}
		if _, err := priceLevel.queue.Remove(loc.elem); err != nil {
			ob.corrupted("executed order %d is not queued at %s level %d: %v", order.id, order.side, order.price, err)
		}
		ob.orders.Delete(order.id)
		removed = true
	}

	update = PriceLevelUpdate{
		Kind:   PriceLevelUpdateKindUpdate,
		Side:   order.side,
		Price:  priceLevel.price,
		Volume: priceLevel.volume,
		Orders: priceLevel.queue.Len(),
		Top:    top,
	}

	// Delete the empty price level
	if priceLevel.queue.Len() == 0 {
		ob.deletePriceLevel(tree, priceLevel.price)
		update.Kind = PriceLevelUpdateKindDelete
	}
	return
}

////////////////////////////////////////////////////////////////
// Internal helpers
////////////////////////////////////////////////////////////////

func (ob *OrderBook) deletePriceLevel(tree *avl.Tree[uint64, *PriceLevel], price uint64) {
	priceLevel, err := tree.Remove(price)
	if err != nil {
		ob.corrupted("deleted level %d vanished from its side tree: %v", price, err)
	}
	ob.allocator.PutPriceLevel(priceLevel)
}

func (ob *OrderBook) treeForSide(side OrderSide) *avl.Tree[uint64, *PriceLevel] {
	if side == OrderSideBuy {
		return &ob.bids
	}
	return &ob.asks
}

// corrupted reports disagreement between the locator index and the side
// trees. Such a breach means the engine can no longer be trusted to produce
// correct trades, so it fails loudly instead of returning an error.
func (ob *OrderBook) corrupted(format string, args ...any) {
	panic(fmt.Sprintf("matching: order book corrupted: "+format, args...))
}
