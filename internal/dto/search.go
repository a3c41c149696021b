package dto

import (
	"math"
	"time"
)

// SearchConfig is the user-supplied parameter set for one run. Immutable once
// validated.
type SearchConfig struct {
	Day             string   `json:"day" validate:"required"`
	RandomCount     int      `json:"random_count" validate:"gte=1"`
	StartingBalance float64  `json:"starting_balance" validate:"gt=0"`
	FeePerTrade     float64  `json:"fee_per_trade" validate:"gte=0"`
	Tickers         []string `json:"tickers"`
	Live            bool     `json:"live"`
}

// WindowResult is the outcome of one simulated round trip: buy at the first
// bar's open inside the window, sell at the last bar's close.
type WindowResult struct {
	Shares     int64   `json:"shares"`
	BuyPrice   float64 `json:"buy_price"`
	SellPrice  float64 `json:"sell_price"`
	ProfitLoss float64 `json:"profit_loss"`
}

// PairExtreme is one end of the best/worst record: a (buy, sell) candidate and
// the running total it was recorded at.
type PairExtreme struct {
	BuyTime  TimeOfDay `json:"buy_time"`
	SellTime TimeOfDay `json:"sell_time"`
	Total    float64   `json:"total"`
}

// BestWorstRecord tracks the single best and single worst candidate pair seen
// so far. Best starts at -Inf and only improves, worst starts at +Inf and only
// degrades.
type BestWorstRecord struct {
	Best  PairExtreme `json:"best"`
	Worst PairExtreme `json:"worst"`
}

func NewBestWorstRecord() BestWorstRecord {
	return BestWorstRecord{
		Best:  PairExtreme{Total: math.Inf(-1)},
		Worst: PairExtreme{Total: math.Inf(1)},
	}
}

// HasBest reports whether any candidate has beaten the initial sentinel.
func (r BestWorstRecord) HasBest() bool {
	return !math.IsInf(r.Best.Total, -1)
}

// HasWorst reports whether the worst branch has ever fired.
func (r BestWorstRecord) HasWorst() bool {
	return !math.IsInf(r.Worst.Total, 1)
}

// SearchResult is the outcome of a full grid search for one weekday.
type SearchResult struct {
	Weekday            time.Weekday    `json:"weekday"`
	Record             BestWorstRecord `json:"record"`
	UniqueDays         int             `json:"unique_days"`
	Tickers            []string        `json:"tickers"`
	AllocatedPerTicker float64         `json:"allocated_per_ticker"`
	SkippedTickers     []string        `json:"skipped_tickers,omitempty"`
}

// Projection turns an average per-day profit into annualized balance estimates.
type Projection struct {
	AvgDailyProfit        float64 `json:"avg_daily_profit"`
	PctDaily              float64 `json:"pct_daily"`
	BalanceNoCompounding  float64 `json:"balance_no_compounding"`
	BalanceCompounding    float64 `json:"balance_compounding"`
	TradingDaysProjection float64 `json:"trading_days_projection"`
}

// WeekdayRecord is the persisted best pair for one weekday, the unit written
// to and read from the results directory.
type WeekdayRecord struct {
	Weekday  time.Weekday `json:"weekday"`
	BuyTime  TimeOfDay    `json:"buy_time"`
	SellTime TimeOfDay    `json:"sell_time"`
}

// LiveCheckResult is the outcome of re-validating a persisted pair against a
// fresh single-day fetch.
type LiveCheckResult struct {
	Record     WeekdayRecord  `json:"record"`
	PerTicker  []TickerResult `json:"per_ticker"`
	TotalPL    float64        `json:"total_pl"`
	Evaluated  int            `json:"evaluated"`
	NoTradeFor []string       `json:"no_trade_for,omitempty"`
}

// TickerResult pairs a ticker with its evaluated round trip.
type TickerResult struct {
	Ticker string       `json:"ticker"`
	Result WindowResult `json:"result"`
}

// WeekdayOutcome bundles one weekday's search result with its projections for
// reporting and persistence.
type WeekdayOutcome struct {
	Result          SearchResult `json:"result"`
	BestProjection  *Projection  `json:"best_projection,omitempty"`
	WorstProjection *Projection  `json:"worst_projection,omitempty"`
}
