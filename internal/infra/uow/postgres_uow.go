package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"voucher-ledger/internal/infra/repository"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/shared"

	"github.com/avast/retry-go"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxAttempts = 4
	baseBackoff = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// Within runs fn at READ COMMITTED. Status transitions stay safe at this level
// because every write is a conditional UPDATE on the expected status.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
		},
		retry.Context(ctx),
		retry.Attempts(maxAttempts),
		retry.Delay(baseBackoff),
		retry.MaxJitter(baseBackoff/5),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			u.logger.Warn("retrying transaction due to retryable error",
				"attempt", n+1,
				"error", err.Error())
		}),
	)
	if err != nil && isRetryableError(err) && attempt >= maxAttempts {
		u.logger.Error("transaction failed after max retries",
			"attempts", attempt,
			"error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

// Avoids defer accumulation across retries so connections return to the pool.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	tierRepo          shared.TierRepository
	voucherRepo       shared.VoucherRepository
	establishmentRepo shared.EstablishmentRepository
	userRepo          shared.UserRepository
}

func (t *pgTx) Tiers() shared.TierRepository {
	if t.tierRepo == nil {
		t.tierRepo = repository.NewTierRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.tierRepo
}

func (t *pgTx) Vouchers() shared.VoucherRepository {
	if t.voucherRepo == nil {
		t.voucherRepo = repository.NewVoucherRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.voucherRepo
}

func (t *pgTx) Establishments() shared.EstablishmentRepository {
	if t.establishmentRepo == nil {
		t.establishmentRepo = repository.NewEstablishmentRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.establishmentRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.userRepo
}
