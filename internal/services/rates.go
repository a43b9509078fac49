package services

import (
	"context"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// RateSnapshotReader fetches current exchange rates from an external provider.
type RateSnapshotReader interface {
	FetchRates(ctx context.Context, base string) (map[string]float64, error)
}

// RateSnapshotCache caches full exchange-rate snapshots.
type RateSnapshotCache interface {
	GetRates(ctx context.Context, base string) (map[string]float64, error)
	SetRates(ctx context.Context, base string, rates map[string]float64) error
}

// RatesService layers the snapshot cache over the external provider. It
// implements the converter's RateProvider: the converter keeps its last
// good table when this fails, so errors here are never fatal.
type RatesService struct {
	reader RateSnapshotReader
	cache  RateSnapshotCache
}

// NewRatesService creates a new service instance. cache may be nil; the
// provider is then hit on every fetch.
func NewRatesService(reader RateSnapshotReader, cache RateSnapshotCache) *RatesService {
	return &RatesService{reader: reader, cache: cache}
}

// FetchRates returns a rate snapshot, preferring the cache. A fresh
// snapshot is cached best-effort; a cache write failure only logs.
func (s *RatesService) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	if s.cache != nil {
		if rates, err := s.cache.GetRates(ctx, base); err == nil {
			return rates, nil
		}
	}

	rates, err := s.reader.FetchRates(ctx, base)
	if err != nil {
		logger.Log.Errorw("failed to fetch rate snapshot", "base", base, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetRates(ctx, base, rates); err != nil {
			logger.Log.Errorw("failed to cache rate snapshot", "base", base, "error", err)
		}
	}

	return rates, nil
}
