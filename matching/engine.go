package matching

import (
	"github.com/gammazero/deque"
)

// Engine is used to manage a single-instrument limit order book with
// automatic matching: every mutation settles the book completely before
// returning, so callers never observe a crossed book or a partially
// applied operation.
// NOTE: Not thread-safe, callers needing concurrency must serialize all
// mutating calls (single coarse lock or a single-writer queue).
type Engine struct {
	handler   Handler
	allocator *Allocator

	// Order book with the locator index
	book *OrderBook

	// Append-only record of executed trades
	trades *TradeLog

	// Amount of cancel requests which missed the book. Reset only on
	// engine construction: upstream cancels legitimately race against
	// fills, so a miss is counted rather than reported as an error.
	missedCancels uint64

	// Notifications buffered during an operation and flushed to the
	// handler only after the book has settled, keeping the matching
	// loop free of observation side effects.
	events deque.Deque[func()]
}

// NewEngine creates and returns new Engine instance.
// A nil handler disables notifications.
func NewEngine(handler Handler) *Engine {
	if handler == nil {
		handler = NopHandler{}
	}
	allocator := NewAllocator()
	return &Engine{
		handler:   handler,
		allocator: allocator,
		book:      NewOrderBook(allocator),
		trades:    NewTradeLog(),
	}
}

////////////////////////////////////////////////////////////////
// Orders management
////////////////////////////////////////////////////////////////

// AddOrder submits a limit order. The order is inserted into its side of
// the book first, then the matching loop runs to quiescence, so an order
// crossing the market is consumed from the top of its own level without a
// separate code path. Zero quantity is a benign no-op; zero price is
// rejected with ErrInvalidOrderPrice; an id colliding with a currently
// resting order is rejected with ErrOrderDuplicate.
func (e *Engine) AddOrder(id uint64, side OrderSide, price uint64, quantity uint64) error {
	if quantity == 0 {
		return nil
	}
	if !side.Valid() {
		return ErrInvalidOrderSide
	}
	if price == 0 {
		return ErrInvalidOrderPrice
	}

	order := e.allocator.GetOrder()
	*order = Order{
		id:           id,
		side:         side,
		price:        price,
		quantity:     quantity,
		restQuantity: quantity,
	}

	update, err := e.book.add(order)
	if err != nil {
		e.allocator.PutOrder(order)
		return err
	}
	e.publishOrder(e.handler.OnAddOrder, orderUpdate(order))
	e.publishPriceLevel(update)

	e.match()
	e.flush()
	return nil
}

// CancelOrder cancels the resting order with given id. An unknown id is
// not an error: the missed-cancel counter is incremented and no other
// state changes.
func (e *Engine) CancelOrder(id uint64) {
	loc, ok := e.book.Find(id)
	if !ok {
		e.missedCancels++
		e.events.PushBack(func() { e.handler.OnMissedCancel(id) })
		e.flush()
		return
	}

	order := loc.Order()
	snapshot := orderUpdate(order)
	update := e.book.remove(loc)
	e.allocator.PutOrder(order)

	e.publishOrder(e.handler.OnDeleteOrder, snapshot)
	e.publishPriceLevel(update)
	e.flush()
}

////////////////////////////////////////////////////////////////
// Queries
////////////////////////////////////////////////////////////////

// Orders returns total amount of currently resting orders.
func (e *Engine) Orders() int {
	return e.book.Size()
}

// BestBid returns price and total volume of the best buy price level.
func (e *Engine) BestBid() (price uint64, volume uint64, ok bool) {
	return e.book.BestBid()
}

// BestAsk returns price and total volume of the best sell price level.
func (e *Engine) BestAsk() (price uint64, volume uint64, ok bool) {
	return e.book.BestAsk()
}

// TopLevels returns aggregate snapshots of up to depth best price levels
// of the given side, best price first.
func (e *Engine) TopLevels(side OrderSide, depth int) []Level {
	return e.book.TopLevels(side, depth)
}

// Trades returns all executed trades in generation order.
// The returned slice is a read-only view and must not be modified.
func (e *Engine) Trades() []Trade {
	return e.trades.Trades()
}

// TradeLog returns the append-only trade log.
func (e *Engine) TradeLog() *TradeLog {
	return e.trades
}

// MissedCancelCount returns the amount of cancel requests which did not
// find their order.
func (e *Engine) MissedCancelCount() uint64 {
	return e.missedCancels
}

////////////////////////////////////////////////////////////////
// Notifications
////////////////////////////////////////////////////////////////

func orderUpdate(order *Order) OrderUpdate {
	return OrderUpdate{
		ID:           order.id,
		Side:         order.side,
		Price:        order.price,
		RestQuantity: order.restQuantity,
	}
}

func (e *Engine) publishOrder(notify func(OrderUpdate), update OrderUpdate) {
	e.events.PushBack(func() { notify(update) })
}

func (e *Engine) publishPriceLevel(update PriceLevelUpdate) {
	switch update.Kind {
	case PriceLevelUpdateKindAdd:
		e.events.PushBack(func() { e.handler.OnAddPriceLevel(update) })
	case PriceLevelUpdateKindUpdate:
		e.events.PushBack(func() { e.handler.OnUpdatePriceLevel(update) })
	case PriceLevelUpdateKindDelete:
		e.events.PushBack(func() { e.handler.OnDeletePriceLevel(update) })
	}
}

// flush delivers buffered notifications after the book has settled.
func (e *Engine) flush() {
	for e.events.Len() > 0 {
		e.events.PopFront()()
	}
}
