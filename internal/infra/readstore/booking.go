package readstore

import (
	"context"

	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	HasOverlappingBooking(ctx context.Context, db query.DBTX, arg query.HasOverlappingBookingParams) (bool, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) HasOverlap(ctx context.Context, db query.DBTX, carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) (bool, error) {
	exists, err := r.queries.HasOverlappingBooking(ctx, db, query.HasOverlappingBookingParams{
		CarID:            carID,
		StartTime:        pgconv.TimeToPgtype(interval.Start()),
		EndTime:          pgconv.TimeToPgtype(interval.End()),
		ExcludeBookingID: pgconv.UUIDPtrToPgtype(excludeBookingID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}
	return exists, nil
}
