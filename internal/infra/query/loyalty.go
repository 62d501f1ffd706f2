package query

import (
	"context"

	"github.com/google/uuid"
)

const getLoyaltyAccountByUserID = `
SELECT user_id, available_points
FROM loyalty_accounts
WHERE user_id = $1
`

func (q *Queries) GetLoyaltyAccountByUserID(ctx context.Context, db DBTX, userID uuid.UUID) (LoyaltyAccounts, error) {
	row := db.QueryRow(ctx, getLoyaltyAccountByUserID, userID)
	var i LoyaltyAccounts
	err := row.Scan(&i.UserID, &i.AvailablePoints)
	return i, err
}
