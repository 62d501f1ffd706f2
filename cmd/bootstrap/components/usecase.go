package components

import (
	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/pkg/clock"
	"car-rental-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPipeline,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRateQueries,
		queries.NewAvailabilityQueries,
		queries.NewQuoteQueries,
	),
)

// NewPipeline runs base and extra costs through the cached optimizer.
// It has no gate of its own; quotes bind one to their read transaction.
func NewPipeline(policy pricing.Policy, rates queries.RateQueries, clk clock.Clock) (*pricing.Pipeline, error) {
	return pricing.NewPipeline(policy, nil, rates, clk)
}
