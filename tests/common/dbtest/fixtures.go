//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"car-rental-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestCar(t *testing.T, db DBLike, name, status string, daily, weekly, monthly decimal.Decimal) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO cars (id, name, status, daily_rate, weekly_rate, monthly_rate) VALUES ($1, $2, $3, $4, $5, $6)",
		carID, name, status, pgconv.DecimalToNumeric(daily), pgconv.DecimalToNumeric(weekly), pgconv.DecimalToNumeric(monthly))
	require.NoError(t, err)

	return carID
}

func CreateTestExtra(t *testing.T, db DBLike, name string, dailyPrice decimal.Decimal) uuid.UUID {
	t.Helper()

	extraID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO extras (id, name, daily_price) VALUES ($1, $2, $3)",
		extraID, name, pgconv.DecimalToNumeric(dailyPrice))
	require.NoError(t, err)

	return extraID
}

// CreateTestPromo inserts a promo with exactly one of amountOff and percentOff set.
func CreateTestPromo(t *testing.T, db DBLike, code string, amountOff, percentOff *decimal.Decimal, validFrom, validTo *time.Time) uuid.UUID {
	t.Helper()

	promoID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO promo_codes (id, code, amount_off, percent_off, valid_from, valid_to) VALUES ($1, $2, $3, $4, $5, $6)",
		promoID, code, decimalArg(amountOff), decimalArg(percentOff), validFrom, validTo)
	require.NoError(t, err)

	return promoID
}

func CreateTestLoyaltyAccount(t *testing.T, db DBLike, userID uuid.UUID, points int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO loyalty_accounts (user_id, available_points) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET available_points = EXCLUDED.available_points",
		userID, points)
	require.NoError(t, err)
}

func CreateTestBooking(t *testing.T, db DBLike, carID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, car_id, user_id, period, status) VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6)",
		bookingID, carID, uuid.New(), start, end, status)
	require.NoError(t, err)

	return bookingID
}

func decimalArg(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return pgconv.DecimalToNumeric(*d)
}

// SeedReferenceData inserts the promo codes every suite can rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO promo_codes (code, percent_off) VALUES ('WELCOME10', 10)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
