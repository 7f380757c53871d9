package repository

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type EstablishmentQueries interface {
	EstablishmentExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type EstablishmentRepository struct {
	queries EstablishmentQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewEstablishmentRepository(queries EstablishmentQueries, db sqlc.DBTX, logger *slog.Logger) *EstablishmentRepository {
	return &EstablishmentRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *EstablishmentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := r.queries.EstablishmentExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to check establishment", err)
	}
	return ok, nil
}
