package matching

// OrderSide is an enumeration of possible trading sides (buy/sell).
type OrderSide uint8

const (
	// OrderSideBuy represents market side which includes only buy orders (bids).
	OrderSideBuy OrderSide = iota + 1
	// OrderSideSell represents market side which includes only sell orders (asks).
	OrderSideSell
)

// Valid returns true if the side is one of the two known values.
func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

func (s OrderSide) String() string {
	switch s {
	case OrderSideBuy:
		return "buy"
	case OrderSideSell:
		return "sell"
	default:
		return "unknown"
	}
}
