package components

import (
	"car-rental-pricing/internal/infra/query"
	"car-rental-pricing/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Readstores are built per connection inside the unit of work, so only the
// shared query set and the UnitOfWork itself are provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQueries,
		uow.NewPostgresUoW,
	),
)

func NewQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}
