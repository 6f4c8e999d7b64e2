package components

import (
	"request-market/internal/domain/business"
	"request-market/internal/domain/matching"
	"request-market/internal/pkg/clock"
	"request-market/internal/pkg/config"
	"request-market/internal/usecase"
	"request-market/internal/usecase/commands"
	"request-market/internal/usecase/dispatch"
	"request-market/internal/usecase/entitlement"
	"request-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	business.NewDefaultClassificationSource,
	matching.NewEngine,
	dispatch.NewDispatcher,
	func(cfg config.Config) entitlement.LimitFunc {
		return entitlement.FixedLimit(cfg.Quota.FreeTierLimit)
	},
	entitlement.NewEvaluator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		commands.NewResponseCommands,
		commands.NewUrgentBoostCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
		queries.NewResponseQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
