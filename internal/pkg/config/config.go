package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"car-rental-pricing/internal/domain/pricing"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, pricing constants, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	Pricing PricingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

// RedisConfig configures the optimizer cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	RateCacheTTL time.Duration `envconfig:"REDIS_RATE_CACHE_TTL" default:"24h"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type PricingConfig struct {
	TaxPercent                  decimal.Decimal   `envconfig:"PRICING_TAX_PERCENT" default:"10"`
	InsurancePercent            decimal.Decimal   `envconfig:"PRICING_INSURANCE_PERCENT" default:"5"`
	DeliveryFee                 decimal.Decimal   `envconfig:"PRICING_DELIVERY_FEE" default:"50.00"`
	LongDurationTiers           LongDurationTiers `envconfig:"PRICING_LONG_DURATION_TIERS" default:"7:5,30:15"`
	LoyaltyPointValue           decimal.Decimal   `envconfig:"PRICING_LOYALTY_POINT_VALUE" default:"0.01"`
	LoyaltyMaxRedemptionPercent decimal.Decimal   `envconfig:"PRICING_LOYALTY_MAX_REDEMPTION_PERCENT" default:"50"`
	LoyaltyPointsPerUnit        decimal.Decimal   `envconfig:"PRICING_LOYALTY_POINTS_PER_UNIT" default:"1"`
	BaseCostStrategy            string            `envconfig:"PRICING_BASE_COST_STRATEGY" default:"optimized"`
	MaxRentalDays               int               `envconfig:"PRICING_MAX_RENTAL_DAYS" default:"365"`
}

// LongDurationTiers decodes "minDays:percent" pairs, e.g. "7:5,30:15".
type LongDurationTiers []pricing.LongDurationTier

func (t *LongDurationTiers) Decode(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*t = nil
		return nil
	}

	var tiers LongDurationTiers
	for _, pair := range strings.Split(value, ",") {
		days, pct, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return fmt.Errorf("invalid long duration tier %q: expected minDays:percent", pair)
		}
		minDays, err := strconv.Atoi(strings.TrimSpace(days))
		if err != nil {
			return fmt.Errorf("invalid long duration tier days %q: %w", days, err)
		}
		percent, err := decimal.NewFromString(strings.TrimSpace(pct))
		if err != nil {
			return fmt.Errorf("invalid long duration tier percent %q: %w", pct, err)
		}
		tiers = append(tiers, pricing.LongDurationTier{MinDays: minDays, Percent: percent})
	}
	*t = tiers
	return nil
}

// Policy converts the environment settings into a validated pricing policy.
func (c PricingConfig) Policy() (pricing.Policy, error) {
	strategy, err := pricing.ParseStrategy(c.BaseCostStrategy)
	if err != nil {
		return pricing.Policy{}, err
	}

	p := pricing.Policy{
		TaxPercent:                  c.TaxPercent,
		InsurancePercent:            c.InsurancePercent,
		DeliveryFee:                 c.DeliveryFee,
		LongDurationTiers:           []pricing.LongDurationTier(c.LongDurationTiers),
		LoyaltyPointValue:           c.LoyaltyPointValue,
		LoyaltyMaxRedemptionPercent: c.LoyaltyMaxRedemptionPercent,
		LoyaltyPointsPerUnit:        c.LoyaltyPointsPerUnit,
		BaseCostStrategy:            strategy,
		MaxRentalDays:               c.MaxRentalDays,
	}
	if err := p.Validate(); err != nil {
		return pricing.Policy{}, err
	}
	return p, nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			RateCacheTTL: time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Pricing: NewTestPricingConfig(),
	}
}

func NewTestPricingConfig() PricingConfig {
	return PricingConfig{
		TaxPercent:       decimal.NewFromInt(10),
		InsurancePercent: decimal.NewFromInt(5),
		DeliveryFee:      decimal.NewFromInt(50),
		LongDurationTiers: LongDurationTiers{
			{MinDays: 7, Percent: decimal.NewFromInt(5)},
			{MinDays: 30, Percent: decimal.NewFromInt(15)},
		},
		LoyaltyPointValue:           decimal.RequireFromString("0.01"),
		LoyaltyMaxRedemptionPercent: decimal.NewFromInt(50),
		LoyaltyPointsPerUnit:        decimal.NewFromInt(1),
		BaseCostStrategy:            string(pricing.StrategyOptimized),
		MaxRentalDays:               365,
	}
}
