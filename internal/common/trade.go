package common

import (
	"fmt"
	"time"
)

// Trade records one execution between the head orders of the two best
// price levels. Both resting prices are reported as observed; the engine
// does not normalize them to a single execution price.
type Trade struct {
	ExecID    string // Execution tracked uuid
	BuyID     uint32 // Buy order identifier
	BuyPrice  uint32 // Resting price of the buy order
	SellID    uint32 // Sell order identifier
	SellPrice uint32 // Resting price of the sell order
	Quantity  uint32 // Executed quantity
	Timestamp time.Time
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"MATCH: Buy %d @ %d matches Sell %d @ %d for %d qty",
		t.BuyID,
		t.BuyPrice,
		t.SellID,
		t.SellPrice,
		t.Quantity,
	)
}

// Reporter receives every trade the engine executes.
type Reporter interface {
	ReportTrade(trade Trade) error
}
