package shared

import (
	"context"

	"car-rental-pricing/internal/domain/rental"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// WithinReadOnly: Read-only repeatable-read transaction for consistent multi-table snapshots
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
}

// Reads is everything the pricing side looks up. It never writes.
type Reads interface {
	CarByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
	ExtrasByIDs(ctx context.Context, ids []uuid.UUID) ([]ExtraSnapshot, error)
	PromoByCode(ctx context.Context, code string) (*PromoSnapshot, error)
	LoyaltyBalance(ctx context.Context, userID uuid.UUID) (*LoyaltyBalance, error)
	HasOverlappingBooking(ctx context.Context, carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) (bool, error)
}
