package matching

const (
	// defaultReservedOrderSlots specifies initial size of hashmap array storing order locators by order id.
	defaultReservedOrderSlots = 1024

	// defaultReservedTradeSlots specifies initial capacity of the trade log.
	defaultReservedTradeSlots = 1024
)
