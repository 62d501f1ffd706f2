package queries

import (
	"context"
	"fmt"
	"time"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	Check(ctx context.Context, carID uuid.UUID, start, end time.Time, excludeBookingID *uuid.UUID) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAvailabilityQueries(uow shared.UnitOfWork) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, carID uuid.UUID, start, end time.Time, excludeBookingID *uuid.UUID) (*AvailabilityView, error) {
	interval, err := rental.NewInterval(start, end)
	if err != nil {
		return nil, markDomainErr(err)
	}

	view := &AvailabilityView{CarID: carID, Start: start, End: end}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		snapshot, err := reads.CarByID(ctx, carID)
		if err != nil {
			return readErr(err, errs.ErrCarNotFound, "failed to find car")
		}
		c, err := carFromSnapshot(snapshot)
		if err != nil {
			return err
		}
		if !c.IsRentable() {
			view.Reason = fmt.Sprintf("%s (status: %s)", pricing.ReasonCarNotRentable, c.Status())
			return nil
		}

		available, err := NewReadsGate(reads).IsAvailable(ctx, carID, interval, excludeBookingID)
		if err != nil {
			return err
		}
		view.Available = available
		if !available {
			view.Reason = pricing.ReasonCarBooked
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

type gateKey struct {
	carID   uuid.UUID
	start   int64
	end     int64
	exclude uuid.UUID
}

func newGateKey(carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) gateKey {
	k := gateKey{carID: carID, start: interval.Start().UnixNano(), end: interval.End().UnixNano()}
	if excludeBookingID != nil {
		k.exclude = *excludeBookingID
	}
	return k
}

// readsGate is bound to one transaction, so repeated questions reuse the first answer.
type readsGate struct {
	reads   shared.Reads
	answers map[gateKey]bool
}

// NewReadsGate answers availability from the bookings visible to reads.
func NewReadsGate(reads shared.Reads) pricing.AvailabilityGate {
	return &readsGate{reads: reads, answers: make(map[gateKey]bool)}
}

func (g *readsGate) IsAvailable(ctx context.Context, carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) (bool, error) {
	key := newGateKey(carID, interval, excludeBookingID)
	if available, ok := g.answers[key]; ok {
		return available, nil
	}

	overlapping, err := g.reads.HasOverlappingBooking(ctx, carID, interval, excludeBookingID)
	if err != nil {
		return false, errs.Mark(errs.Wrap(err, "failed to check booking overlap"), errs.ErrDatabaseOperationFailed)
	}
	g.answers[key] = !overlapping
	return !overlapping, nil
}
