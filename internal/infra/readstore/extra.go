package readstore

import (
	"context"

	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ExtraReadQueries interface {
	GetExtrasByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) ([]query.Extras, error)
}

type ExtraReadStore struct {
	queries ExtraReadQueries
}

func NewExtraReadStore(queries ExtraReadQueries) *ExtraReadStore {
	return &ExtraReadStore{
		queries: queries,
	}
}

// FindByIDs returns the extras that exist. Missing ids are simply absent.
func (r *ExtraReadStore) FindByIDs(ctx context.Context, db query.DBTX, ids []uuid.UUID) ([]shared.ExtraSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		params[i] = pgconv.UUIDToPgtype(id)
	}

	rows, err := r.queries.GetExtrasByIDs(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find extras by IDs", err)
	}

	result := make([]shared.ExtraSnapshot, len(rows))
	for i, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.DailyPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid extra daily price", err, infra.KindCorrupt)
		}
		result[i] = shared.ExtraSnapshot{
			ID:         row.ID,
			Name:       row.Name,
			DailyPrice: price,
		}
	}

	return result, nil
}
