package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gridtrade/config"
	"gridtrade/internal/dto"
	"gridtrade/internal/repository"
	"gridtrade/internal/strategy"
	"gridtrade/pkg/logger"
	"gridtrade/pkg/utils"
)

// LiveCheckService re-validates a previously persisted best pair against a
// fresh single-day fetch, without touching the CSV cache.
type LiveCheckService interface {
	Check(ctx context.Context, searchCfg dto.SearchConfig) (*dto.LiveCheckResult, error)
}

type liveCheckService struct {
	cfg     *config.Config
	log     *logger.Logger
	repo    *repository.Repository
	sampler Sampler
}

func NewLiveCheckService(cfg *config.Config, log *logger.Logger, repo *repository.Repository, sampler Sampler) LiveCheckService {
	return &liveCheckService{cfg: cfg, log: log, repo: repo, sampler: sampler}
}

func (s *liveCheckService) Check(ctx context.Context, searchCfg dto.SearchConfig) (*dto.LiveCheckResult, error) {
	if strings.EqualFold(searchCfg.Day, "all") {
		return nil, fmt.Errorf("live check needs a single weekday, not \"all\"")
	}

	weekday, err := utils.ParseWeekday(searchCfg.Day)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.ResultRepo.LoadBestPair(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("no persisted pair for %s, run a search for that day first: %w", weekday, err)
	}

	tickers := searchCfg.Tickers
	if len(tickers) == 0 {
		tickers = s.sampler.Sample(UniverseTickers(), searchCfg.RandomCount)
	}

	allocated := searchCfg.StartingBalance / float64(len(tickers))

	result := &dto.LiveCheckResult{Record: record}
	for _, ticker := range tickers {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))

		windowResult, err := s.checkTicker(ctx, ticker, record, allocated, searchCfg.FeePerTrade)
		if err != nil {
			s.log.WarnContext(ctx, "Live check skipped ticker",
				logger.StringField("ticker", ticker),
				logger.ErrorField(err))
			result.NoTradeFor = append(result.NoTradeFor, ticker)
			continue
		}
		if windowResult == nil {
			result.NoTradeFor = append(result.NoTradeFor, ticker)
			continue
		}

		result.PerTicker = append(result.PerTicker, dto.TickerResult{Ticker: ticker, Result: *windowResult})
		result.TotalPL += windowResult.ProfitLoss
		result.Evaluated++
	}

	return result, nil
}

// checkTicker evaluates the persisted pair against the most recent trading
// day present in a 1-day fetch window.
func (s *liveCheckService) checkTicker(ctx context.Context, ticker string, record dto.WeekdayRecord, allocated, fee float64) (*dto.WindowResult, error) {
	bars, err := s.repo.YahooFinanceRepo.Get(ctx, dto.GetBarsParam{
		Ticker:     ticker,
		PeriodDays: s.cfg.Market.LiveWindowDays,
		Interval:   s.cfg.YahooFinance.Interval,
	})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]dto.Bar)
	for _, bar := range bars {
		key := utils.DateKey(bar.Timestamp)
		byDate[key] = append(byDate[key], bar)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", ticker)
	}

	latest := byDate[dates[len(dates)-1]]
	return strategy.EvaluateWindow(latest, record.BuyTime, record.SellTime, allocated, fee)
}
