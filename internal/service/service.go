package service

import (
	"gridtrade/config"
	"gridtrade/internal/recorder"
	"gridtrade/internal/repository"
	"gridtrade/pkg/cache"
	"gridtrade/pkg/logger"
)

type Service struct {
	SearchService    SearchService
	LiveCheckService LiveCheckService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	memCache cache.Cache,
	rec recorder.Recorder,
	sampler Sampler,
	observerFactory ObserverFactory,
) *Service {
	return &Service{
		SearchService:    NewSearchService(cfg, log, repo, memCache, rec, sampler, observerFactory),
		LiveCheckService: NewLiveCheckService(cfg, log, repo, sampler),
	}
}
