package readstore

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX, logger *slog.Logger) *UserReadStore {
	return &UserReadStore{queries: queries, db: db, logger: logger}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find user by id", err)
	}
	return toAuthorizedUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr(r.logger, "failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func toAuthorizedUserView(row sqlc.Users) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:              row.ID,
		Email:           row.Email,
		Name:            row.Name,
		Role:            row.Role,
		EstablishmentID: pgconv.UUIDPtrFromPgtype(row.EstablishmentID),
		IsActive:        row.IsActive,
		LastLogin:       pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
