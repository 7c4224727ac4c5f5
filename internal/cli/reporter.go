package cli

import (
	"fmt"
	"io"

	"vidar/internal/common"
)

// TradeWriter prints one line per execution in the book's classic format:
//
//	MATCH: Buy 3 @ 101 matches Sell 1 @ 100 for 50 qty
type TradeWriter struct {
	W io.Writer
}

func (t TradeWriter) ReportTrade(trade common.Trade) error {
	_, err := fmt.Fprintln(t.W, trade.String())
	return err
}
