package query

import "context"

const getPromoCodeByCode = `
SELECT id, code, amount_off, percent_off, valid_from, valid_to
FROM promo_codes
WHERE upper(code) = upper($1)
`

func (q *Queries) GetPromoCodeByCode(ctx context.Context, db DBTX, code string) (PromoCodes, error) {
	row := db.QueryRow(ctx, getPromoCodeByCode, code)
	var i PromoCodes
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.AmountOff,
		&i.PercentOff,
		&i.ValidFrom,
		&i.ValidTo,
	)
	return i, err
}
