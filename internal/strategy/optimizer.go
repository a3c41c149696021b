package strategy

import (
	"context"

	"gridtrade/internal/dto"
	"gridtrade/pkg/logger"
)

// Observer is notified whenever the search records a new best or worst pair.
// The optimizer itself never touches the terminal.
type Observer interface {
	OnNewBest(record dto.BestWorstRecord, uniqueDays int)
	OnNewWorst(record dto.BestWorstRecord, uniqueDays int)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnNewBest(dto.BestWorstRecord, int)  {}
func (NopObserver) OnNewWorst(dto.BestWorstRecord, int) {}

// SearchInput carries everything one weekday search needs. DayGroups is keyed
// by ticker and already filtered to the target weekday.
type SearchInput struct {
	Tickers                []string
	DayGroups              map[string]DayGroups
	BuyCandidates          []dto.TimeOfDay
	SellCandidates         []dto.TimeOfDay
	AllocatedCashPerTicker float64
	FeePerTrade            float64
}

// Optimizer is the grid-search core: it enumerates every valid (buy, sell)
// candidate pair, replays each ticker's trading days through the window
// evaluator and tracks the best and worst running totals seen.
type Optimizer struct {
	log      *logger.Logger
	observer Observer
}

func NewOptimizer(log *logger.Logger, observer Observer) *Optimizer {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Optimizer{log: log, observer: observer}
}

// Search runs the full enumeration and returns the best/worst record plus the
// unique trading-day count.
//
// Two behaviors are kept for parity with the historical results this tool is
// trusted against, rather than "fixed":
//
//   - The running total is compared against best/worst after every individual
//     ticker-day contribution, so a recorded extreme may be a partial sum
//     observed mid-accumulation, not the final total of any completed pair.
//     A completed pair still gets a final best-only check.
//   - A single update can move at most one of best/worst: the worst branch is
//     only evaluated when the value is not already a new best.
//
// UniqueDays is the distinct-date count of the last-processed ticker; in
// multi-ticker runs it silently overwrites earlier tickers' counts and is the
// denominator for every per-day average downstream.
func (o *Optimizer) Search(ctx context.Context, in SearchInput) (dto.BestWorstRecord, int) {
	record := dto.NewBestWorstRecord()
	uniqueDays := 0

	// Invalid-price days are reported once per (ticker, day), not once per
	// candidate pair.
	warned := make(map[string]struct{})

	for _, buyTime := range in.BuyCandidates {
		for _, sellTime := range in.SellCandidates {
			if sellTime <= buyTime {
				continue
			}

			runningTotal := 0.0

			for _, ticker := range in.Tickers {
				groups := in.DayGroups[ticker]
				uniqueDays = groups.UniqueDays()

				for _, date := range groups.Dates {
					result, err := EvaluateWindow(groups.Bars[date], buyTime, sellTime, in.AllocatedCashPerTicker, in.FeePerTrade)
					if err != nil {
						key := ticker + "/" + date
						if _, ok := warned[key]; !ok {
							warned[key] = struct{}{}
							o.log.WarnContext(ctx, "Skipping day with invalid price data",
								logger.StringField("ticker", ticker),
								logger.StringField("date", date),
								logger.ErrorField(err))
						}
						continue
					}
					if result == nil {
						continue
					}

					runningTotal += result.ProfitLoss

					if runningTotal > record.Best.Total {
						record.Best = dto.PairExtreme{BuyTime: buyTime, SellTime: sellTime, Total: runningTotal}
						o.observer.OnNewBest(record, uniqueDays)
					} else if runningTotal < record.Worst.Total {
						record.Worst = dto.PairExtreme{BuyTime: buyTime, SellTime: sellTime, Total: runningTotal}
						o.observer.OnNewWorst(record, uniqueDays)
					}
				}
			}

			// Completed-pair check, best side only.
			if runningTotal > record.Best.Total {
				record.Best = dto.PairExtreme{BuyTime: buyTime, SellTime: sellTime, Total: runningTotal}
				o.observer.OnNewBest(record, uniqueDays)
			}
		}
	}

	return record, uniqueDays
}
