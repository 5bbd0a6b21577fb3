package components

import (
	"hotel-folio/internal/infra/memstore"
	"hotel-folio/internal/usecase/queries"
	"hotel-folio/internal/usecase/shared"

	"go.uber.org/fx"
)

// One store backs both sides; the write side only sees it through UnitOfWork.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		func(s *memstore.Store) queries.FolioReadStore { return s },
	),
)
