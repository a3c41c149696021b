package cmd

import (
	"gridtrade/config"
	"gridtrade/internal/recorder"
	"gridtrade/internal/repository"
	"gridtrade/pkg/cache"
	"gridtrade/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	cache     cache.Cache
	recorder  recorder.Recorder
	repo      *repository.Repository
}

func NewAppDependency() (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	repo, err := repository.NewRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.History.Enabled {
		rec, err = recorder.NewSQLiteRecorder(cfg.History.DBPath)
		if err != nil {
			return nil, err
		}
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		recorder:  rec,
		repo:      repo,
	}, nil
}

func (d *AppDependency) Close() error {
	if err := d.recorder.Close(); err != nil {
		return err
	}
	// Sync can legitimately fail on a terminal stdout, nothing to do about it.
	_ = d.log.Sync()
	return nil
}
