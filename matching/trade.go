package matching

import (
	"time"

	"lukechampine.com/uint128"
)

// Trade is an immutable record of a single fill between a resting (maker)
// and an aggressing (taker) order. The trade executes at the maker's price.
type Trade struct {
	MakerID   uint64
	TakerID   uint64
	Price     uint64
	Quantity  uint64
	Timestamp time.Time
}

// Notional returns price*quantity of the trade as a 128-bit value.
func (t Trade) Notional() uint128.Uint128 {
	return uint128.From64(t.Price).Mul64(t.Quantity)
}

// TradeLog is an append-only, insertion-ordered record of executed trades.
// Entries are never edited or removed; the sequence order equals the order
// in which the matching loop generated the trades.
type TradeLog struct {
	trades   []Trade
	volume   uint64
	notional uint128.Uint128
}

// NewTradeLog creates and returns new TradeLog instance.
func NewTradeLog() *TradeLog {
	return &TradeLog{
		trades: make([]Trade, 0, defaultReservedTradeSlots),
	}
}

// append records an executed trade. Engine internal.
func (tl *TradeLog) append(trade Trade) {
	tl.trades = append(tl.trades, trade)
	tl.volume += trade.Quantity
	tl.notional = tl.notional.Add(trade.Notional())
}

// Len returns the amount of recorded trades.
func (tl *TradeLog) Len() int {
	return len(tl.trades)
}

// Trades returns the recorded trades in generation order.
// The returned slice is a read-only view and must not be modified.
func (tl *TradeLog) Trades() []Trade {
	return tl.trades
}

// At returns the trade at the given position.
func (tl *TradeLog) At(i int) Trade {
	return tl.trades[i]
}

// TotalVolume returns the sum of all executed quantities.
func (tl *TradeLog) TotalVolume() uint64 {
	return tl.volume
}

// TotalNotional returns the sum of price*quantity over all trades.
// Kept in 128 bits since the running sum overflows uint64 long before
// any individual field does.
func (tl *TradeLog) TotalNotional() uint128.Uint128 {
	return tl.notional
}
