package query

import "context"

// Only confirmed and active bookings hold the car. Ranges are half-open so a
// booking ending at the requested start does not conflict.
const hasOverlappingBooking = `
SELECT EXISTS (
    SELECT 1
    FROM bookings
    WHERE car_id = $1
      AND status IN ('confirmed', 'active')
      AND period && tstzrange($2::timestamptz, $3::timestamptz, '[)')
      AND ($4::uuid IS NULL OR id <> $4::uuid)
)
`

func (q *Queries) HasOverlappingBooking(ctx context.Context, db DBTX, arg HasOverlappingBookingParams) (bool, error) {
	row := db.QueryRow(ctx, hasOverlappingBooking,
		arg.CarID,
		arg.StartTime,
		arg.EndTime,
		arg.ExcludeBookingID,
	)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}
