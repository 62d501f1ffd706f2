//go:build unit || e2e

package builder

import (
	"car-rental-pricing/internal/domain/car"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CarBuilder struct {
	ID          uuid.UUID
	Name        string
	Status      car.Status
	DailyRate   decimal.Decimal
	WeeklyRate  decimal.Decimal
	MonthlyRate decimal.Decimal
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:          uuid.New(),
		Name:        "Toyota Corolla",
		Status:      car.StatusActive,
		DailyRate:   decimal.NewFromInt(100),
		WeeklyRate:  decimal.NewFromInt(600),
		MonthlyRate: decimal.NewFromInt(2000),
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) InMaintenance() *CarBuilder {
	b.Status = car.StatusMaintenance
	return b
}

func (b *CarBuilder) BuildCard() (rate.Card, error) {
	return rate.NewCard(b.DailyRate, b.WeeklyRate, b.MonthlyRate)
}

func (b *CarBuilder) BuildDomain() (*car.Car, error) {
	card, err := b.BuildCard()
	if err != nil {
		return nil, err
	}
	return car.NewCar(b.ID, b.Name, b.Status, card)
}

func (b *CarBuilder) BuildSnapshot() *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		Status:      string(b.Status),
		DailyRate:   b.DailyRate,
		WeeklyRate:  b.WeeklyRate,
		MonthlyRate: b.MonthlyRate,
	}
}

func (b *CarBuilder) BuildInfra() query.Cars {
	return query.Cars{
		ID:          b.ID,
		Name:        b.Name,
		Status:      string(b.Status),
		DailyRate:   pgconv.DecimalToNumeric(b.DailyRate),
		WeeklyRate:  pgconv.DecimalToNumeric(b.WeeklyRate),
		MonthlyRate: pgconv.DecimalToNumeric(b.MonthlyRate),
	}
}
