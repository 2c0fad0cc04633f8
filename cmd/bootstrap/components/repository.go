package components

import (
	"ordering-service/internal/infra/db"
	"ordering-service/internal/infra/readstore"
	"ordering-service/internal/infra/uow"
	"ordering-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		NewOrderViewRepoFactory,
	),
)

// NewOrderViewRepoFactory lets the query layer bind the read store to
// whatever read-only transaction it opens.
func NewOrderViewRepoFactory() queries.OrderViewRepoFactory {
	return func(dbtx db.DBTX) queries.OrderViewRepo {
		return readstore.NewOrderReadStore(dbtx)
	}
}
