package matching

// OrderUpdate is a value snapshot of an order passed to handlers.
type OrderUpdate struct {
	ID           uint64
	Side         OrderSide
	Price        uint64
	RestQuantity uint64
}

// Handler receives engine notifications. All notifications are delivered
// after the triggering public call has settled the book, never from inside
// the matching loop, so a handler always observes consistent state.
//
//go:generate mockgen -destination=mocks/handler.go -package=mockmatching . Handler
type Handler interface {

	// Orders handlers
	OnAddOrder(update OrderUpdate)
	OnDeleteOrder(update OrderUpdate)

	// Price level handlers
	OnAddPriceLevel(update PriceLevelUpdate)
	OnUpdatePriceLevel(update PriceLevelUpdate)
	OnDeletePriceLevel(update PriceLevelUpdate)

	// Matching handlers
	OnExecuteTrade(trade Trade)

	// Cancellation handlers
	OnMissedCancel(id uint64)
}

// NopHandler is a Handler discarding all notifications.
type NopHandler struct{}

var _ Handler = NopHandler{}

func (NopHandler) OnAddOrder(OrderUpdate)              {}
func (NopHandler) OnDeleteOrder(OrderUpdate)           {}
func (NopHandler) OnAddPriceLevel(PriceLevelUpdate)    {}
func (NopHandler) OnUpdatePriceLevel(PriceLevelUpdate) {}
func (NopHandler) OnDeletePriceLevel(PriceLevelUpdate) {}
func (NopHandler) OnExecuteTrade(Trade)                {}
func (NopHandler) OnMissedCancel(uint64)               {}
