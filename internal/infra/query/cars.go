package query

import (
	"context"

	"github.com/google/uuid"
)

const getCarByID = `
SELECT id, name, status, daily_rate, weekly_rate, monthly_rate
FROM cars
WHERE id = $1
`

func (q *Queries) GetCarByID(ctx context.Context, db DBTX, id uuid.UUID) (Cars, error) {
	row := db.QueryRow(ctx, getCarByID, id)
	var i Cars
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Status,
		&i.DailyRate,
		&i.WeeklyRate,
		&i.MonthlyRate,
	)
	return i, err
}
