package bootstrap

import (
	"shuttlebook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	RedisModule,
	NotifierModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
