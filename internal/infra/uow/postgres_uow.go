package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"car-rental-pricing/internal/domain/rental"
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/infra/readstore"
	"car-rental-pricing/internal/pkg/errs"
	"car-rental-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *query.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// RepeatableRead so car, extras, promo, balance and bookings come from one snapshot
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.Reads) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newPgReads(u.q, pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask high bit to keep the value positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- safe after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// pgReads binds the readstores to one connection, either the pool or an open tx.
type pgReads struct {
	dbtx query.DBTX

	cars     *readstore.CarReadStore
	extras   *readstore.ExtraReadStore
	promos   *readstore.PromoReadStore
	loyalty  *readstore.LoyaltyReadStore
	bookings *readstore.BookingReadStore
}

func newPgReads(q *query.Queries, dbtx query.DBTX) *pgReads {
	return &pgReads{
		dbtx:     dbtx,
		cars:     readstore.NewCarReadStore(q),
		extras:   readstore.NewExtraReadStore(q),
		promos:   readstore.NewPromoReadStore(q),
		loyalty:  readstore.NewLoyaltyReadStore(q),
		bookings: readstore.NewBookingReadStore(q),
	}
}

func (r *pgReads) CarByID(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	return r.cars.FindByID(ctx, r.dbtx, id)
}

func (r *pgReads) ExtrasByIDs(ctx context.Context, ids []uuid.UUID) ([]shared.ExtraSnapshot, error) {
	return r.extras.FindByIDs(ctx, r.dbtx, ids)
}

func (r *pgReads) PromoByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	return r.promos.FindByCode(ctx, r.dbtx, code)
}

func (r *pgReads) LoyaltyBalance(ctx context.Context, userID uuid.UUID) (*shared.LoyaltyBalance, error) {
	return r.loyalty.BalanceByUserID(ctx, r.dbtx, userID)
}

func (r *pgReads) HasOverlappingBooking(ctx context.Context, carID uuid.UUID, interval rental.Interval, excludeBookingID *uuid.UUID) (bool, error) {
	return r.bookings.HasOverlap(ctx, r.dbtx, carID, interval, excludeBookingID)
}
