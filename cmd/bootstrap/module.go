package bootstrap

import (
	"hotel-folio/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	DomainModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
