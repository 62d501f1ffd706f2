package readstore

import (
	"context"
	"strings"

	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"
	"car-rental-pricing/internal/usecase/shared"
)

type PromoReadQueries interface {
	GetPromoCodeByCode(ctx context.Context, db query.DBTX, code string) (query.PromoCodes, error)
}

type PromoReadStore struct {
	queries PromoReadQueries
}

func NewPromoReadStore(queries PromoReadQueries) *PromoReadStore {
	return &PromoReadStore{
		queries: queries,
	}
}

func (r *PromoReadStore) FindByCode(ctx context.Context, db query.DBTX, code string) (*shared.PromoSnapshot, error) {
	normalizedCode := strings.ToUpper(strings.TrimSpace(code))
	row, err := r.queries.GetPromoCodeByCode(ctx, db, normalizedCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}

	return toPromoSnapshotFromRow(row)
}

func toPromoSnapshotFromRow(row query.PromoCodes) (*shared.PromoSnapshot, error) {
	amountOff, err := pgconv.DecimalPtrFromNumeric(row.AmountOff)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid promo amount", err, infra.KindCorrupt)
	}
	percentOff, err := pgconv.DecimalPtrFromNumeric(row.PercentOff)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid promo percentage", err, infra.KindCorrupt)
	}

	return &shared.PromoSnapshot{
		ID:         row.ID,
		Code:       row.Code,
		AmountOff:  amountOff,
		PercentOff: percentOff,
		ValidFrom:  pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidTo:    pgconv.TimePtrFromPgtype(row.ValidTo),
	}, nil
}
