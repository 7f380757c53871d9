package components

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/usecase"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(provisionBootstrapAdmin),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		voucher.NewRandomCodeGenerator,
		fx.As(new(voucher.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewTierCommands,
		commands.NewVoucherCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewTierQueries,
		queries.NewEstablishmentQueries,
		func(store queries.VoucherReadStore, cfg config.LedgerConfig) queries.VoucherQueries {
			return queries.NewVoucherQueries(store, cfg.DefaultPageSize)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func provisionBootstrapAdmin(lc fx.Lifecycle, cfg config.LedgerConfig, users queries.UserReadStore, cmds commands.UserCommands, logger *slog.Logger) {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, _, err := users.FindByEmail(ctx, cfg.BootstrapAdminEmail); err == nil {
				logger.Info("Bootstrap admin already exists", "email", cfg.BootstrapAdminEmail)
				return nil
			}
			id, err := cmds.Provision(ctx, commands.ProvisionUserInput{
				Email:    cfg.BootstrapAdminEmail,
				Password: cfg.BootstrapAdminPassword,
				Name:     "Administrator",
				Role:     "admin",
			})
			if err != nil {
				return err
			}
			logger.Info("Bootstrap admin provisioned", "user_id", id, "email", cfg.BootstrapAdminEmail)
			return nil
		},
	})
}
