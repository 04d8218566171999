// Package command parses a text stream of order instructions into commands
// consumable by the matching engine. It is replay glue, not part of the
// matching core: the engine knows nothing about the wire format and only
// requires that add commands get unique, strictly increasing order ids
// assigned before submission.
package command

import (
	"github.com/quantfabric/limitbook/matching"
)

// Kind is an enumeration of possible command kinds (add/cancel).
type Kind uint8

const (
	// KindAdd represents an order submission.
	KindAdd Kind = iota + 1
	// KindCancel represents an order cancellation.
	KindCancel
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Command is one parsed instruction. For add commands the order id is zero
// until the driver assigns one; for cancel commands only ID is meaningful.
type Command struct {
	Kind     Kind
	ID       uint64
	Side     matching.OrderSide
	Price    uint64
	Quantity uint64
}
