package bootstrap

import (
	"innkeeper/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	DomainModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.WatchModule,
	components.HandlerModule,
)
