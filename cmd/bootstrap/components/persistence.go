package components

import (
	"shuttlebook/internal/infra/readstore"
	"shuttlebook/internal/infra/repository"
	"shuttlebook/internal/infra/uow"
	"shuttlebook/internal/pkg/config"
	"shuttlebook/internal/usecase/queries"
	"shuttlebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(shared.CommandReads)),
		),
		fx.Annotate(
			NewCatalogStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			NewAvailabilityStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		fx.Annotate(
			NewBookingHistoryStore,
			fx.As(new(queries.BookingHistoryReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(shared.BookingRepository)),
		),
		fx.Annotate(
			repository.NewWaitlistRepository,
			fx.As(new(shared.WaitlistRepository)),
		),
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(shared.CourtRepository)),
		),
		fx.Annotate(
			repository.NewCoachRepository,
			fx.As(new(shared.CoachRepository)),
		),
		fx.Annotate(
			repository.NewEquipmentRepository,
			fx.As(new(shared.EquipmentRepository)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(shared.PricingRuleRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, reads shared.CommandReads, cfg config.Config) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, reads, cfg.DB.Transactions)
}

func NewCatalogStore(pool *pgxpool.Pool) *readstore.CatalogStore {
	return readstore.NewCatalogStore(pool)
}

func NewAvailabilityStore(pool *pgxpool.Pool) *readstore.AvailabilityStore {
	return readstore.NewAvailabilityStore(pool)
}

func NewBookingHistoryStore(pool *pgxpool.Pool) *readstore.BookingHistoryStore {
	return readstore.NewBookingHistoryStore(pool)
}
