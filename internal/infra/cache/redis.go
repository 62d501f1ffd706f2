package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/pkg/config"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const rateKeyPrefix = "rate:opt:v1:"

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type RedisRateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRateCache(client *redis.Client, ttl time.Duration) *RedisRateCache {
	return &RedisRateCache{client: client, ttl: ttl}
}

// cachedRate is the stored form. Amounts are kept as decimal strings.
type cachedRate struct {
	MinCost    decimal.Decimal `json:"minCost"`
	Months     int             `json:"months"`
	Weeks      int             `json:"weeks"`
	Days       int             `json:"days"`
	MonthsCost decimal.Decimal `json:"monthsCost"`
	WeeksCost  decimal.Decimal `json:"weeksCost"`
	DaysCost   decimal.Decimal `json:"daysCost"`
}

func (c *RedisRateCache) Get(ctx context.Context, key shared.RateKey) (rate.Result, bool, error) {
	raw, err := c.client.Get(ctx, rateKeyPrefix+key.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rate.Result{}, false, nil
		}
		return rate.Result{}, false, errs.Wrap(err, "failed to read rate cache")
	}

	var v cachedRate
	if err := json.Unmarshal(raw, &v); err != nil {
		return rate.Result{}, false, errs.Wrap(err, "failed to decode cached rate")
	}

	return rate.Result{
		MinCost:       v.MinCost,
		Decomposition: rate.Decomposition{Months: v.Months, Weeks: v.Weeks, Days: v.Days},
		MonthsCost:    v.MonthsCost,
		WeeksCost:     v.WeeksCost,
		DaysCost:      v.DaysCost,
	}, true, nil
}

func (c *RedisRateCache) Set(ctx context.Context, key shared.RateKey, res rate.Result) error {
	raw, err := json.Marshal(cachedRate{
		MinCost:    res.MinCost,
		Months:     res.Decomposition.Months,
		Weeks:      res.Decomposition.Weeks,
		Days:       res.Decomposition.Days,
		MonthsCost: res.MonthsCost,
		WeeksCost:  res.WeeksCost,
		DaysCost:   res.DaysCost,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode rate")
	}

	if err := c.client.Set(ctx, rateKeyPrefix+key.String(), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write rate cache")
	}
	return nil
}

// NoopRateCache always misses. Used when Redis is not configured.
type NoopRateCache struct{}

func (NoopRateCache) Get(context.Context, shared.RateKey) (rate.Result, bool, error) {
	return rate.Result{}, false, nil
}

func (NoopRateCache) Set(context.Context, shared.RateKey, rate.Result) error {
	return nil
}
