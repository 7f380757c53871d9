package repository

import (
	"context"
	"log/slog"
	"time"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update last login", err)
	}
	return nil
}
