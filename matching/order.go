package matching

// Order contains information about a single resting limit order.
// Identity, side and price never change after submission. The rest
// quantity is the only mutable field and it is decreased exclusively
// by the matching loop; once it reaches zero the order is removed
// from every engine structure within the same loop iteration.
type Order struct {
	id           uint64
	side         OrderSide
	price        uint64
	quantity     uint64 // quantity at submission
	restQuantity uint64
}

// ID returns the order ID.
func (o *Order) ID() uint64 {
	return o.id
}

// Side returns the market side of the order.
func (o *Order) Side() OrderSide {
	return o.side
}

// IsBuy returns true if buy order.
func (o *Order) IsBuy() bool {
	return o.side == OrderSideBuy
}

// IsSell returns true if sell order.
func (o *Order) IsSell() bool {
	return o.side == OrderSideSell
}

// Price returns the order limit price.
func (o *Order) Price() uint64 {
	return o.price
}

// Quantity returns the order quantity at submission.
func (o *Order) Quantity() uint64 {
	return o.quantity
}

// RestQuantity returns order remaining quantity.
func (o *Order) RestQuantity() uint64 {
	return o.restQuantity
}

// ExecutedQuantity returns order executed quantity.
func (o *Order) ExecutedQuantity() uint64 {
	return o.quantity - o.restQuantity
}

// IsExecuted returns true if the order is completely executed.
func (o *Order) IsExecuted() bool {
	return o.restQuantity == 0
}
