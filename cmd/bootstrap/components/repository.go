package components

import (
	"request-market/internal/infra/db"
	"request-market/internal/infra/readstore"
	repo_impl "request-market/internal/infra/repository"
	"request-market/internal/pkg/config"
	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/dispatch"
	"request-market/internal/usecase/entitlement"
	"request-market/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewUsageCounter,
		fx.Annotate(
			repo_impl.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
		),
		fx.Annotate(
			repo_impl.NewResponseRepository,
			fx.As(new(commands.ResponseRepository)),
		),
		fx.Annotate(
			repo_impl.NewBusinessDirectoryRepository,
			fx.As(new(dispatch.BusinessDirectory)),
		),
		fx.Annotate(
			repo_impl.NewNotificationOutbox,
			fx.As(new(dispatch.Notifier)),
		),
		fx.Annotate(
			repo_impl.NewCountryConfigRepository,
			fx.As(new(commands.CountryConfigStore)),
		),
		fx.Annotate(
			repo_impl.NewPaymentLedger,
			fx.As(new(commands.PaymentGateway)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewResponseReadStore,
			fx.As(new(queries.ResponseReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewUsageCounter picks the counter backend: Redis when an address is
// configured, otherwise the Postgres upsert counter.
func NewUsageCounter(cfg config.Config, dbtx db.DBTX) entitlement.UsageCounter {
	if cfg.Redis.Addr == "" {
		return repo_impl.NewUsageCounterRepository(dbtx)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	return repo_impl.NewRedisUsageCounter(client, cfg.Redis.Prefix)
}
