package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// RatesCacheRepository caches full exchange-rate snapshots in Redis.
// Snapshots are stored and replaced whole, never merged, so a reader
// always sees one consistent table.
type RatesCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewRatesCacheRepository creates a new repository instance with the given TTL.
func NewRatesCacheRepository(client *redis.Client, expiration time.Duration) *RatesCacheRepository {
	return &RatesCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRates fetches the cached snapshot for the given base currency.
func (r *RatesCacheRepository) GetRates(ctx context.Context, base string) (map[string]float64, error) {
	key := fmt.Sprintf("rates:%s", base)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("rate snapshot not found in cache for base %s", base)
		}
		return nil, err
	}

	var rates map[string]float64
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(rates),
		"error", nil,
	)

	return rates, nil
}

// SetRates caches a snapshot for the given base currency with expiration.
func (r *RatesCacheRepository) SetRates(ctx context.Context, base string, rates map[string]float64) error {
	key := fmt.Sprintf("rates:%s", base)

	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"currencies", len(rates),
		"result", "ok",
		"error", err,
	)

	return err
}
