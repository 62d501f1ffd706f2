package readstore

import (
	"context"

	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type CarReadQueries interface {
	GetCarByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Cars, error)
}

type CarReadStore struct {
	queries CarReadQueries
}

func NewCarReadStore(queries CarReadQueries) *CarReadStore {
	return &CarReadStore{
		queries: queries,
	}
}

func (r *CarReadStore) FindByID(ctx context.Context, db query.DBTX, id uuid.UUID) (*shared.CarSnapshot, error) {
	row, err := r.queries.GetCarByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}

	return toCarSnapshotFromRow(row)
}

func toCarSnapshotFromRow(row query.Cars) (*shared.CarSnapshot, error) {
	daily, err := pgconv.DecimalFromNumeric(row.DailyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid daily rate", err, infra.KindCorrupt)
	}
	weekly, err := pgconv.DecimalFromNumeric(row.WeeklyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid weekly rate", err, infra.KindCorrupt)
	}
	monthly, err := pgconv.DecimalFromNumeric(row.MonthlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid monthly rate", err, infra.KindCorrupt)
	}

	return &shared.CarSnapshot{
		ID:          row.ID,
		Name:        row.Name,
		Status:      row.Status,
		DailyRate:   daily,
		WeeklyRate:  weekly,
		MonthlyRate: monthly,
	}, nil
}
