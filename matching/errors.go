package matching

import (
	"errors"
)

// Errors used by the package. All of them describe invalid caller input;
// an engine-internal consistency breach is a programming error and panics
// instead of returning one of these.
var (
	ErrOrderDuplicate    = errors.New("order is duplicated")
	ErrInvalidOrderSide  = errors.New("invalid order side")
	ErrInvalidOrderPrice = errors.New("invalid order price")
)
