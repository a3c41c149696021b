package strategy

import (
	"errors"
	"math"

	"gridtrade/internal/dto"
)

// ErrInvalidBuyPrice reports a non-positive open price at the buy bar. The
// caller treats the affected (ticker, day) as a skipped contribution.
var ErrInvalidBuyPrice = errors.New("non-positive buy price")

// EvaluateWindow simulates one same-day round trip for a single trading day:
// buy at the open of the first bar inside [buyTime, sellTime], sell at the
// close of the last one. Shares are whole only; the uninvested remainder is
// not tracked. A nil result with nil error means no bar fell inside the
// window, which is a zero-contribution day, not an error.
func EvaluateWindow(dayBars []dto.Bar, buyTime, sellTime dto.TimeOfDay, allocatedCash, feePerTrade float64) (*dto.WindowResult, error) {
	first := -1
	last := -1
	for i, bar := range dayBars {
		tod := dto.TimeOfDayFrom(bar.Timestamp)
		if tod < buyTime || tod > sellTime {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}

	if first == -1 {
		return nil, nil
	}

	buyPrice := dayBars[first].Open
	sellPrice := dayBars[last].Close
	if buyPrice <= 0 {
		return nil, ErrInvalidBuyPrice
	}

	shares := int64(math.Floor(allocatedCash / buyPrice))

	// One fee for the buy, one for the sell.
	profitLoss := (sellPrice-buyPrice)*float64(shares) - 2*feePerTrade

	return &dto.WindowResult{
		Shares:     shares,
		BuyPrice:   buyPrice,
		SellPrice:  sellPrice,
		ProfitLoss: profitLoss,
	}, nil
}
