package matching

import (
	"time"

	"github.com/quantfabric/limitbook/types/avl"
)

// match drains the crossed region of the book: while both sides are
// non-empty and the best bid price reaches the best ask price, the front
// orders of the two best levels fill against each other. The bests are
// re-evaluated every iteration since a fill may remove an order, a whole
// level or empty a side. The loop terminates because every iteration fully
// executes at least one of the two front orders.
func (e *Engine) match() {
	for {
		topBid, topAsk := e.book.TopBid(), e.book.TopAsk()
		if topBid == nil || topAsk == nil || topBid.Value().Price() < topAsk.Value().Price() {
			break
		}

		bidFront, askFront := topBid.Value().Front(), topAsk.Value().Front()
		if bidFront == nil || askFront == nil {
			e.book.corrupted("empty price level rested in the book")
		}
		bid, ask := bidFront.Value, askFront.Value

		fill := min(bid.restQuantity, ask.restQuantity)

		// Identities are assigned in strictly increasing submission order,
		// so the lower id is the earlier arrived, resting (maker) order.
		// The trade executes at the maker's price.
		maker, taker := bid, ask
		if ask.id < bid.id {
			maker, taker = ask, bid
		}
		trade := Trade{
			MakerID:   maker.id,
			TakerID:   taker.id,
			Price:     maker.price,
			Quantity:  fill,
			Timestamp: time.Now(),
		}
		e.trades.append(trade)
		e.events.PushBack(func() { e.handler.OnExecuteTrade(trade) })

		// Both front orders may drain on an equal fill; each removal
		// completes here, before the bests are looked up again.
		e.executeOrder(topBid, bid, fill)
		e.executeOrder(topAsk, ask, fill)
	}
}

// executeOrder applies one fill to a front order of a top level and
// publishes the resulting structural updates.
func (e *Engine) executeOrder(node *avl.Node[uint64, *PriceLevel], order *Order, quantity uint64) {
	update, removed := e.book.execute(node, order, quantity)
	e.publishPriceLevel(update)
	if removed {
		e.publishOrder(e.handler.OnDeleteOrder, orderUpdate(order))
		e.allocator.PutOrder(order)
	}
}
