package readstore

import (
	"context"

	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoyaltyReadQueries interface {
	GetLoyaltyAccountByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (query.LoyaltyAccounts, error)
}

type LoyaltyReadStore struct {
	queries LoyaltyReadQueries
}

func NewLoyaltyReadStore(queries LoyaltyReadQueries) *LoyaltyReadStore {
	return &LoyaltyReadStore{
		queries: queries,
	}
}

func (r *LoyaltyReadStore) BalanceByUserID(ctx context.Context, db query.DBTX, userID uuid.UUID) (*shared.LoyaltyBalance, error) {
	row, err := r.queries.GetLoyaltyAccountByUserID(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loyalty account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loyalty account", err)
	}

	return &shared.LoyaltyBalance{
		UserID:          row.UserID,
		AvailablePoints: row.AvailablePoints,
	}, nil
}
