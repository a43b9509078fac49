package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatesService_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateSnapshotReader(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	svc := NewRatesService(reader, cache)

	cached := map[string]float64{"USD": 1, "CAD": 1.35}
	cache.EXPECT().GetRates(gomock.Any(), "USD").Return(cached, nil)
	// The provider must not be hit on a cache hit.

	rates, err := svc.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, cached, rates)
}

func TestRatesService_CacheMissFetchesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateSnapshotReader(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	svc := NewRatesService(reader, cache)

	fresh := map[string]float64{"USD": 1, "EUR": 0.91}
	cache.EXPECT().GetRates(gomock.Any(), "USD").Return(nil, errors.New("not found"))
	reader.EXPECT().FetchRates(gomock.Any(), "USD").Return(fresh, nil)
	cache.EXPECT().SetRates(gomock.Any(), "USD", fresh).Return(nil)

	rates, err := svc.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, fresh, rates)
}

func TestRatesService_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateSnapshotReader(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	svc := NewRatesService(reader, cache)

	fresh := map[string]float64{"USD": 1}
	cache.EXPECT().GetRates(gomock.Any(), "USD").Return(nil, errors.New("not found"))
	reader.EXPECT().FetchRates(gomock.Any(), "USD").Return(fresh, nil)
	cache.EXPECT().SetRates(gomock.Any(), "USD", fresh).Return(errors.New("redis down"))

	rates, err := svc.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, fresh, rates)
}

func TestRatesService_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateSnapshotReader(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	svc := NewRatesService(reader, cache)

	cache.EXPECT().GetRates(gomock.Any(), "USD").Return(nil, errors.New("not found"))
	reader.EXPECT().FetchRates(gomock.Any(), "USD").Return(nil, errors.New("provider down"))

	_, err := svc.FetchRates(context.Background(), "USD")
	assert.Error(t, err)
}

func TestRatesService_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockRateSnapshotReader(ctrl)
	svc := NewRatesService(reader, nil)

	fresh := map[string]float64{"USD": 1}
	reader.EXPECT().FetchRates(gomock.Any(), "USD").Return(fresh, nil)

	rates, err := svc.FetchRates(context.Background(), "USD")
	require.NoError(t, err)
	assert.Equal(t, fresh, rates)
}
