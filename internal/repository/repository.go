package repository

import (
	"gridtrade/config"
	"gridtrade/pkg/logger"
	"gridtrade/pkg/utils"
)

type Repository struct {
	YahooFinanceRepo YahooFinanceRepository
	BarCacheRepo     BarCacheRepository
	ResultRepo       ResultRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) (*Repository, error) {
	loc, err := utils.MarketLocation(cfg.Market.Timezone)
	if err != nil {
		return nil, err
	}

	return &Repository{
		YahooFinanceRepo: NewYahooFinanceRepository(cfg, log, loc),
		BarCacheRepo:     NewBarCacheRepository(cfg.Data.TickerDir, loc),
		ResultRepo:       NewResultRepository(cfg.Data.ResultsDir),
	}, nil
}
