package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gridtrade/config"
	"gridtrade/internal/dto"
	"gridtrade/internal/recorder"
	"gridtrade/internal/repository"
	"gridtrade/internal/strategy"
	"gridtrade/pkg/cache"
	"gridtrade/pkg/logger"
	"gridtrade/pkg/utils"
)

// RunContext describes one weekday search for presentation purposes.
type RunContext struct {
	Weekday            time.Weekday
	Tickers            []string
	StartingBalance    float64
	AllocatedPerTicker float64
	FeePerTrade        float64
	TradingDays        float64
}

// ObserverFactory builds a search observer for one weekday run. A nil factory
// runs the search silently.
type ObserverFactory func(rc RunContext) strategy.Observer

// SearchService runs the full grid search for one weekday or for all of them.
type SearchService interface {
	Run(ctx context.Context, searchCfg dto.SearchConfig) ([]dto.WeekdayOutcome, error)
}

type searchService struct {
	cfg             *config.Config
	log             *logger.Logger
	repo            *repository.Repository
	memCache        cache.Cache
	recorder        recorder.Recorder
	sampler         Sampler
	observerFactory ObserverFactory
}

func NewSearchService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	memCache cache.Cache,
	rec recorder.Recorder,
	sampler Sampler,
	observerFactory ObserverFactory,
) SearchService {
	return &searchService{
		cfg:             cfg,
		log:             log,
		repo:            repo,
		memCache:        memCache,
		recorder:        rec,
		sampler:         sampler,
		observerFactory: observerFactory,
	}
}

// ResolveWeekdays expands the --day argument into the weekdays to analyze.
// An unknown day is a configuration error, reported before any fetch happens.
func ResolveWeekdays(day string) ([]time.Weekday, error) {
	if strings.EqualFold(day, "all") {
		return utils.TradingWeekdays, nil
	}

	wd, err := utils.ParseWeekday(day)
	if err != nil {
		return nil, err
	}
	return []time.Weekday{wd}, nil
}

func (s *searchService) Run(ctx context.Context, searchCfg dto.SearchConfig) ([]dto.WeekdayOutcome, error) {
	weekdays, err := ResolveWeekdays(searchCfg.Day)
	if err != nil {
		return nil, err
	}

	tickers := s.selectTickers(searchCfg)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers selected")
	}

	// The balance is split over the selected tickers, whether or not their
	// data ends up being usable.
	allocated := searchCfg.StartingBalance / float64(len(tickers))

	buyCandidates, sellCandidates, err := s.buildGrids()
	if err != nil {
		return nil, err
	}

	barsByTicker, skipped := s.loadAllBars(ctx, tickers, searchCfg.Live)
	if len(barsByTicker) == 0 {
		return nil, fmt.Errorf("no usable bar data for any of the selected tickers")
	}

	usable := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		if _, ok := barsByTicker[ticker]; ok {
			usable = append(usable, ticker)
		}
	}

	// One weekday is a fifth of the trading year.
	tradingDays := float64(s.cfg.Market.TradingDaysPerYear) / float64(len(utils.TradingWeekdays))

	outcomes := make([]dto.WeekdayOutcome, 0, len(weekdays))
	for _, weekday := range weekdays {
		outcome, err := s.runWeekday(ctx, weekday, usable, skipped, barsByTicker, searchCfg, allocated, tradingDays, buyCandidates, sellCandidates)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, *outcome)
	}

	return outcomes, nil
}

func (s *searchService) runWeekday(
	ctx context.Context,
	weekday time.Weekday,
	tickers []string,
	skipped []string,
	barsByTicker map[string][]dto.Bar,
	searchCfg dto.SearchConfig,
	allocated float64,
	tradingDays float64,
	buyCandidates, sellCandidates []dto.TimeOfDay,
) (*dto.WeekdayOutcome, error) {
	dayGroups := make(map[string]strategy.DayGroups, len(tickers))
	for _, ticker := range tickers {
		dayGroups[ticker] = strategy.PartitionByWeekday(barsByTicker[ticker], weekday)
	}

	var observer strategy.Observer
	if s.observerFactory != nil {
		observer = s.observerFactory(RunContext{
			Weekday:            weekday,
			Tickers:            tickers,
			StartingBalance:    searchCfg.StartingBalance,
			AllocatedPerTicker: allocated,
			FeePerTrade:        searchCfg.FeePerTrade,
			TradingDays:        tradingDays,
		})
	}

	optimizer := strategy.NewOptimizer(s.log, observer)
	record, uniqueDays := optimizer.Search(ctx, strategy.SearchInput{
		Tickers:                tickers,
		DayGroups:              dayGroups,
		BuyCandidates:          buyCandidates,
		SellCandidates:         sellCandidates,
		AllocatedCashPerTicker: allocated,
		FeePerTrade:            searchCfg.FeePerTrade,
	})

	result := dto.SearchResult{
		Weekday:            weekday,
		Record:             record,
		UniqueDays:         uniqueDays,
		Tickers:            tickers,
		AllocatedPerTicker: allocated,
		SkippedTickers:     skipped,
	}

	bestProjection, err := strategy.Project(record.Best.Total, uniqueDays, searchCfg.StartingBalance, tradingDays)
	if err != nil {
		return nil, fmt.Errorf("projection for %s: %w", weekday, err)
	}

	outcome := dto.WeekdayOutcome{Result: result, BestProjection: &bestProjection}

	if record.HasWorst() {
		worstProjection, err := strategy.Project(record.Worst.Total, uniqueDays, searchCfg.StartingBalance, tradingDays)
		if err != nil {
			return nil, fmt.Errorf("projection for %s: %w", weekday, err)
		}
		outcome.WorstProjection = &worstProjection
	}

	if record.HasBest() {
		weekdayRecord := dto.WeekdayRecord{
			Weekday:  weekday,
			BuyTime:  record.Best.BuyTime,
			SellTime: record.Best.SellTime,
		}
		if err := s.repo.ResultRepo.SaveBestPair(ctx, weekdayRecord); err != nil {
			return nil, err
		}
	}

	if err := s.recorder.RecordSearch(&recorder.SearchSnapshot{
		Result:          result,
		BestProjection:  outcome.BestProjection,
		WorstProjection: outcome.WorstProjection,
		StartingBalance: searchCfg.StartingBalance,
		FeePerTrade:     searchCfg.FeePerTrade,
	}); err != nil {
		s.log.WarnContext(ctx, "Failed to record search history", logger.ErrorField(err))
	}

	s.log.InfoContext(ctx, "Weekday search completed",
		logger.StringField("weekday", weekday.String()),
		logger.StringField("best_buy", record.Best.BuyTime.String()),
		logger.StringField("best_sell", record.Best.SellTime.String()),
		logger.FloatField("best_total", record.Best.Total),
		logger.IntField("unique_days", uniqueDays))

	return &outcome, nil
}

func (s *searchService) selectTickers(searchCfg dto.SearchConfig) []string {
	if len(searchCfg.Tickers) > 0 {
		tickers := make([]string, 0, len(searchCfg.Tickers))
		for _, t := range searchCfg.Tickers {
			t = strings.ToUpper(strings.TrimSpace(t))
			if t != "" {
				tickers = append(tickers, t)
			}
		}
		return tickers
	}
	return s.sampler.Sample(UniverseTickers(), searchCfg.RandomCount)
}

func (s *searchService) buildGrids() ([]dto.TimeOfDay, []dto.TimeOfDay, error) {
	market := s.cfg.Market

	parse := func(value, name string) (dto.TimeOfDay, error) {
		t, err := dto.ParseTimeOfDay(value)
		if err != nil {
			return 0, fmt.Errorf("market.%s: %w", name, err)
		}
		return t, nil
	}

	buyStart, err := parse(market.BuyWindowStart, "buy_window_start")
	if err != nil {
		return nil, nil, err
	}
	buyEnd, err := parse(market.BuyWindowEnd, "buy_window_end")
	if err != nil {
		return nil, nil, err
	}
	sellStart, err := parse(market.SellWindowStart, "sell_window_start")
	if err != nil {
		return nil, nil, err
	}
	sellEnd, err := parse(market.SellWindowEnd, "sell_window_end")
	if err != nil {
		return nil, nil, err
	}

	buyCandidates := strategy.GenerateTimeGrid(buyStart, buyEnd, market.GridIncrementMinutes)
	sellCandidates := strategy.GenerateTimeGrid(sellStart, sellEnd, market.GridIncrementMinutes)
	if len(buyCandidates) == 0 || len(sellCandidates) == 0 {
		return nil, nil, fmt.Errorf("empty time grid, check market window configuration")
	}
	return buyCandidates, sellCandidates, nil
}

// loadAllBars resolves each ticker's bar series through the memory cache, the
// CSV cache and finally a remote fetch. Tickers with no usable data are
// skipped with a warning, not fatal.
func (s *searchService) loadAllBars(ctx context.Context, tickers []string, live bool) (map[string][]dto.Bar, []string) {
	barsByTicker := make(map[string][]dto.Bar, len(tickers))
	var skipped []string

	for _, ticker := range tickers {
		bars, err := s.loadBars(ctx, ticker, live)
		if err != nil {
			s.log.WarnContext(ctx, "Skipping ticker, no usable data",
				logger.StringField("ticker", ticker),
				logger.ErrorField(err))
			skipped = append(skipped, ticker)
			continue
		}
		barsByTicker[ticker] = bars
	}
	return barsByTicker, skipped
}

func (s *searchService) loadBars(ctx context.Context, ticker string, live bool) ([]dto.Bar, error) {
	key := "bars:" + ticker
	if bars, ok := cache.Get[[]dto.Bar](s.memCache, key); ok {
		return bars, nil
	}

	if s.repo.BarCacheRepo.Exists(ticker) {
		bars, err := s.repo.BarCacheRepo.Load(ctx, ticker)
		if err != nil {
			return nil, err
		}
		if len(bars) == 0 {
			return nil, fmt.Errorf("empty bar cache for %s", ticker)
		}
		s.memCache.Set(key, bars, s.cfg.Cache.DefaultExpiration)
		return bars, nil
	}

	s.log.InfoContext(ctx, "Fetching data for ticker", logger.StringField("ticker", ticker))

	periodDays := s.cfg.Market.HistoricalWindowDays
	if live {
		periodDays = s.cfg.Market.LiveWindowDays
	}

	bars, err := s.repo.YahooFinanceRepo.Get(ctx, dto.GetBarsParam{
		Ticker:     ticker,
		PeriodDays: periodDays,
		Interval:   s.cfg.YahooFinance.Interval,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.BarCacheRepo.Save(ctx, ticker, bars); err != nil {
		s.log.WarnContext(ctx, "Failed to persist bar cache",
			logger.StringField("ticker", ticker),
			logger.ErrorField(err))
	}

	s.memCache.Set(key, bars, s.cfg.Cache.DefaultExpiration)
	return bars, nil
}
