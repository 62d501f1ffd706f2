package query

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getExtrasByIDs = `
SELECT id, name, daily_price
FROM extras
WHERE id = ANY($1::uuid[])
ORDER BY name
`

func (q *Queries) GetExtrasByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) ([]Extras, error) {
	rows, err := db.Query(ctx, getExtrasByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Extras{}
	for rows.Next() {
		var i Extras
		if err := rows.Scan(&i.ID, &i.Name, &i.DailyPrice); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
