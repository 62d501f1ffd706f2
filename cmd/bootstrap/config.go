package bootstrap

import (
	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPricingPolicy,
	),
)

// NewPricingPolicy fails startup when the pricing constants are inconsistent.
func NewPricingPolicy(cfg config.Config) (pricing.Policy, error) {
	return cfg.Pricing.Policy()
}
