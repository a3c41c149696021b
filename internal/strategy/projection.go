package strategy

import (
	"fmt"
	"math"

	"gridtrade/internal/dto"
)

// Project derives annualized balance estimates from a per-day average profit.
// tradingDays is the horizon in trading days, 252 for a whole-week strategy or
// 252/5 when only one weekday is traded.
func Project(totalProfit float64, uniqueDayCount int, startingBalance, tradingDays float64) (dto.Projection, error) {
	if uniqueDayCount == 0 {
		return dto.Projection{}, fmt.Errorf("no trading days matched the weekday filter, cannot project returns")
	}
	if startingBalance <= 0 {
		return dto.Projection{}, fmt.Errorf("starting balance must be positive, got %.2f", startingBalance)
	}

	avgDaily := totalProfit / float64(uniqueDayCount)
	pctDaily := avgDaily / startingBalance * 100

	return dto.Projection{
		AvgDailyProfit:        avgDaily,
		PctDaily:              pctDaily,
		BalanceNoCompounding:  startingBalance + startingBalance*pctDaily/100*tradingDays,
		BalanceCompounding:    startingBalance * math.Pow(1+pctDaily/100, tradingDays),
		TradingDaysProjection: tradingDays,
	}, nil
}
