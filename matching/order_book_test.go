package matching

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkConsistency walks every cross-referenced structure of the engine and
// verifies they agree: each resting order appears in exactly one price level
// queue, its locator names exactly that position, level volumes equal the
// sum of queued rest quantities, no level is empty and the book is not
// crossed.
func checkConsistency(t *testing.T, e *Engine) {
	t.Helper()
	ob := e.book

	seen := map[uint64]bool{}
	total := 0
	for _, side := range []OrderSide{OrderSideBuy, OrderSideSell} {
		tree := ob.treeForSide(side)
		tree.IterateInOrder(func(pl *PriceLevel) bool {
			require.Positive(t, pl.queue.Len(), "empty price level rested in the book")

			var volume uint64
			for elem := pl.queue.Front(); elem != nil; elem = elem.Next() {
				order := elem.Value
				require.Equal(t, side, order.side)
				require.Equal(t, pl.price, order.price)
				require.Positive(t, order.restQuantity)
				require.False(t, seen[order.id], "order %d queued twice", order.id)
				seen[order.id] = true

				loc, ok := ob.orders.Get(order.id)
				require.True(t, ok, "order %d queued but not indexed", order.id)
				require.Equal(t, side, loc.Side)
				require.Equal(t, pl.price, loc.Price)
				require.Same(t, order, loc.Order())
				require.Same(t, elem, loc.elem)

				volume += order.restQuantity
				total++
			}
			require.Equal(t, volume, pl.volume)
			return false
		})
	}
	require.Equal(t, total, ob.orders.Len(), "index holds entries for orders not queued")

	bidPrice, _, bidOK := ob.BestBid()
	askPrice, _, askOK := ob.BestAsk()
	if bidOK && askOK {
		require.Less(t, bidPrice, askPrice, "book rests crossed")
	}
}

func TestOrderBookAdd(t *testing.T) {
	allocator := NewAllocator()
	ob := NewOrderBook(allocator)

	order1 := &Order{id: 1, side: OrderSideBuy, price: 100, quantity: 10, restQuantity: 10}
	update, err := ob.add(order1)
	require.NoError(t, err)
	require.Equal(t, PriceLevelUpdateKindAdd, update.Kind)
	require.EqualValues(t, 100, update.Price)
	require.EqualValues(t, 10, update.Volume)
	require.Equal(t, 1, update.Orders)
	require.True(t, update.Top)

	// Second order at the same price joins the existing level
	order2 := &Order{id: 2, side: OrderSideBuy, price: 100, quantity: 5, restQuantity: 5}
	update, err = ob.add(order2)
	require.NoError(t, err)
	require.Equal(t, PriceLevelUpdateKindUpdate, update.Kind)
	require.EqualValues(t, 15, update.Volume)
	require.Equal(t, 2, update.Orders)

	// A better bid becomes the new top
	order3 := &Order{id: 3, side: OrderSideBuy, price: 101, quantity: 1, restQuantity: 1}
	update, err = ob.add(order3)
	require.NoError(t, err)
	require.Equal(t, PriceLevelUpdateKindAdd, update.Kind)
	require.True(t, update.Top)

	price, volume, ok := ob.BestBid()
	require.True(t, ok)
	require.EqualValues(t, 101, price)
	require.EqualValues(t, 1, volume)

	_, err = ob.add(&Order{id: 1, side: OrderSideSell, price: 99, quantity: 1, restQuantity: 1})
	require.ErrorIs(t, err, ErrOrderDuplicate)

	require.Equal(t, 3, ob.Size())
}

func TestOrderBookRemove(t *testing.T) {
	allocator := NewAllocator()
	ob := NewOrderBook(allocator)

	orders := []*Order{
		{id: 1, side: OrderSideSell, price: 100, quantity: 10, restQuantity: 10},
		{id: 2, side: OrderSideSell, price: 100, quantity: 5, restQuantity: 5},
		{id: 3, side: OrderSideSell, price: 101, quantity: 7, restQuantity: 7},
	}
	for _, order := range orders {
		_, err := ob.add(order)
		require.NoError(t, err)
	}

	// Removing a mid-queue order keeps the neighbors' positions intact
	loc, ok := ob.Find(1)
	require.True(t, ok)
	update := ob.remove(loc)
	require.Equal(t, PriceLevelUpdateKindUpdate, update.Kind)
	require.EqualValues(t, 5, update.Volume)
	require.Equal(t, 1, update.Orders)

	loc2, ok := ob.Find(2)
	require.True(t, ok)
	require.Same(t, orders[1], loc2.Order())

	// Removing the last order of a level deletes the level
	update = ob.remove(loc2)
	require.Equal(t, PriceLevelUpdateKindDelete, update.Kind)
	require.EqualValues(t, 0, update.Volume)

	price, _, ok := ob.BestAsk()
	require.True(t, ok)
	require.EqualValues(t, 101, price)

	_, ok = ob.Find(2)
	require.False(t, ok)
	require.Equal(t, 1, ob.Size())
}

func TestOrderBookSides(t *testing.T) {
	allocator := NewAllocator()
	ob := NewOrderBook(allocator)

	_, err := ob.add(&Order{id: 1, side: OrderSideBuy, price: 95, quantity: 1, restQuantity: 1})
	require.NoError(t, err)
	_, err = ob.add(&Order{id: 2, side: OrderSideBuy, price: 97, quantity: 1, restQuantity: 1})
	require.NoError(t, err)
	_, err = ob.add(&Order{id: 3, side: OrderSideSell, price: 99, quantity: 1, restQuantity: 1})
	require.NoError(t, err)
	_, err = ob.add(&Order{id: 4, side: OrderSideSell, price: 98, quantity: 1, restQuantity: 1})
	require.NoError(t, err)

	// Bids order descending, asks ascending
	bids := ob.TopLevels(OrderSideBuy, 10)
	require.Equal(t, []uint64{97, 95}, []uint64{bids[0].Price, bids[1].Price})
	asks := ob.TopLevels(OrderSideSell, 10)
	require.Equal(t, []uint64{98, 99}, []uint64{asks[0].Price, asks[1].Price})
}
