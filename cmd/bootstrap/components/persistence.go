package components

import (
	"log/slog"

	"voucher-ledger/internal/infra/memstore"
	"voucher-ledger/internal/infra/readstore"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/infra/uow"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is every storage port the use cases need, served by one backend.
type Persistence struct {
	fx.Out

	UnitOfWork     shared.UnitOfWork
	Vouchers       queries.VoucherReadStore
	Tiers          queries.TierReadStore
	Establishments queries.EstablishmentReadStore
	Users          queries.UserReadStore
}

func NewPersistence(cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) Persistence {
	if cfg.Ledger.Storage == config.StorageMemory {
		return newMemoryPersistence(logger)
	}
	return newPostgresPersistence(pool, logger)
}

func newPostgresPersistence(pool *pgxpool.Pool, logger *slog.Logger) Persistence {
	q := sqlc.New()
	return Persistence{
		UnitOfWork:     uow.NewPostgresUoW(pool, q, logger),
		Vouchers:       readstore.NewVoucherReadStore(q, pool, logger),
		Tiers:          readstore.NewTierReadStore(q, pool, logger),
		Establishments: readstore.NewEstablishmentReadStore(q, pool, logger),
		Users:          readstore.NewUserReadStore(q, pool, logger),
	}
}

func newMemoryPersistence(logger *slog.Logger) Persistence {
	store := memstore.New(logger)
	return Persistence{
		UnitOfWork:     store,
		Vouchers:       store.VoucherReadStore(),
		Tiers:          store.TierReadStore(),
		Establishments: store.EstablishmentReadStore(),
		Users:          store.UserReadStore(),
	}
}
