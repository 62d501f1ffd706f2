package queries

import (
	"context"
	"log/slog"
	"time"

	"car-rental-pricing/internal/domain/pricing"
	"car-rental-pricing/internal/domain/promo"
	"car-rental-pricing/internal/domain/rate"
	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/infra"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/pkg/metrics"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*pricing.Result, error)
}

type quoteQueriesImpl struct {
	uow      shared.UnitOfWork
	pipeline *pricing.Pipeline
	metrics  *metrics.Metrics
}

func NewQuoteQueries(uow shared.UnitOfWork, pipeline *pricing.Pipeline, m *metrics.Metrics) QuoteQueries {
	return &quoteQueriesImpl{
		uow:      uow,
		pipeline: pipeline,
		metrics:  m,
	}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*pricing.Result, error) {
	started := time.Now()

	res, err := q.quote(ctx, req)
	err = markDomainErr(err)

	outcome := metrics.OutcomeQuoted
	switch {
	case err != nil && isRejection(err):
		outcome = metrics.OutcomeRejected
	case err != nil:
		outcome = metrics.OutcomeFailed
		slog.ErrorContext(ctx, "quote failed",
			"car_id", req.CarID.String(),
			"error", err.Error())
	case !res.Available:
		outcome = metrics.OutcomeUnavailable
	}
	q.metrics.ObserveQuote(outcome, time.Since(started))

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (q *quoteQueriesImpl) quote(ctx context.Context, req QuoteRequest) (*pricing.Result, error) {
	interval, err := rental.NewInterval(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if err := interval.ValidateMaxDays(q.pipeline.Policy().MaxRentalDays); err != nil {
		return nil, err
	}
	if req.LoyaltyPointsToRedeem < 0 {
		return nil, pricing.ErrNegativePoints
	}
	if req.LoyaltyPointsToRedeem > 0 && req.UserID == nil {
		return nil, ErrLoyaltyUserRequired
	}

	var strategy pricing.Strategy
	if req.BaseCostStrategy != "" {
		if strategy, err = pricing.ParseStrategy(req.BaseCostStrategy); err != nil {
			return nil, err
		}
	}

	extraIDs, quantities, err := mergeExtras(req.Extras)
	if err != nil {
		return nil, err
	}

	var promoCode *promo.Code
	if req.PromoCode != nil {
		code, err := promo.NewCode(*req.PromoCode)
		if err != nil {
			return nil, err
		}
		promoCode = &code
	}

	var result pricing.Result
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		in := pricing.Input{
			Interval:              interval,
			PickupBranchID:        req.PickupBranchID,
			ReturnBranchID:        req.ReturnBranchID,
			ExcludeBookingID:      req.ExcludeBookingID,
			LoyaltyPointsToRedeem: req.LoyaltyPointsToRedeem,
			Strategy:              strategy,
		}

		snapshot, err := reads.CarByID(ctx, req.CarID)
		if err != nil {
			return readErr(err, errs.ErrCarNotFound, "failed to find car")
		}
		if in.Car, err = carFromSnapshot(snapshot); err != nil {
			return err
		}

		// Availability is settled before any collaborator lookup can reject the request.
		pipeline := q.pipeline.WithGate(NewReadsGate(reads))
		unavailable, ok, err := pipeline.CheckAvailability(ctx, in.Car, in.Interval, in.ExcludeBookingID)
		if err != nil {
			return err
		}
		if !ok {
			result = unavailable
			return nil
		}

		if in.Extras, err = loadExtras(ctx, reads, extraIDs, quantities); err != nil {
			return err
		}

		if promoCode != nil {
			if in.Promo, err = loadPromo(ctx, reads, *promoCode); err != nil {
				return err
			}
		}

		if req.LoyaltyPointsToRedeem > 0 {
			if in.LoyaltyPointsAvailable, err = loadPoints(ctx, reads, *req.UserID); err != nil {
				return err
			}
		}

		result, err = pipeline.Quote(ctx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// mergeExtras folds duplicate ids into one line, keeping first-seen order.
func mergeExtras(extras []ExtraRequest) ([]uuid.UUID, map[uuid.UUID]int, error) {
	ids := make([]uuid.UUID, 0, len(extras))
	quantities := make(map[uuid.UUID]int, len(extras))
	for _, e := range extras {
		if e.Quantity <= 0 {
			return nil, nil, rate.ErrInvalidQuantity
		}
		if _, seen := quantities[e.ExtraID]; !seen {
			ids = append(ids, e.ExtraID)
		}
		quantities[e.ExtraID] += e.Quantity
	}
	return ids, quantities, nil
}

func loadExtras(ctx context.Context, reads shared.Reads, ids []uuid.UUID, quantities map[uuid.UUID]int) ([]pricing.ExtraSelection, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	snapshots, err := reads.ExtrasByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to find extras"), errs.ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]shared.ExtraSnapshot, len(snapshots))
	for _, s := range snapshots {
		byID[s.ID] = s
	}

	selections := make([]pricing.ExtraSelection, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, errs.Mark(errs.Newf("extra %s not found", id), errs.ErrExtraNotFound)
		}
		selections = append(selections, pricing.ExtraSelection{
			ExtraID:        s.ID,
			Name:           s.Name,
			UnitDailyPrice: s.DailyPrice,
			Quantity:       quantities[id],
		})
	}
	return selections, nil
}

func loadPromo(ctx context.Context, reads shared.Reads, code promo.Code) (*promo.Promo, error) {
	snapshot, err := reads.PromoByCode(ctx, code.String())
	if err != nil {
		return nil, readErr(err, errs.ErrPromoNotFound, "failed to find promo code")
	}

	p, err := promo.NewPromo(
		snapshot.ID,
		snapshot.Code,
		snapshot.AmountOff,
		snapshot.PercentOff,
		snapshot.ValidFrom,
		snapshot.ValidTo,
	)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid promo record "+snapshot.ID.String()), errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

// loadPoints treats a user without a loyalty account as holding no points.
func loadPoints(ctx context.Context, reads shared.Reads, userID uuid.UUID) (int64, error) {
	balance, err := reads.LoyaltyBalance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, errs.Mark(errs.Wrap(err, "failed to read loyalty balance"), errs.ErrDatabaseOperationFailed)
	}
	return balance.AvailablePoints, nil
}
