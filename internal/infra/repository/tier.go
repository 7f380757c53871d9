package repository

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TierWriteQueries interface {
	CreateTier(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTierParams) error
	UpdateTier(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateTierParams) (int64, error)
	FindTierByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.VoucherTiers, error)
	ListActiveTiers(ctx context.Context, db sqlc.DBTX, establishmentID pgtype.UUID) ([]sqlc.VoucherTiers, error)
}

type TierRepository struct {
	queries TierWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewTierRepository(queries TierWriteQueries, db sqlc.DBTX, logger *slog.Logger) *TierRepository {
	return &TierRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *TierRepository) Create(ctx context.Context, t *tier.Tier) error {
	if err := r.queries.CreateTier(ctx, r.db, converter.TierToCreateParams(t)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create tier", err)
	}
	return nil
}

func (r *TierRepository) Update(ctx context.Context, t *tier.Tier) error {
	n, err := r.queries.UpdateTier(ctx, r.db, converter.TierToUpdateParams(t))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to update tier", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "tier not found")
	}
	return nil
}

// FindByID locks the row for the rest of the transaction.
func (r *TierRepository) FindByID(ctx context.Context, id uuid.UUID) (*tier.Tier, error) {
	row, err := r.queries.FindTierByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find tier", err)
	}
	return converter.TierFromRow(row)
}

func (r *TierRepository) ListActive(ctx context.Context, establishmentID uuid.UUID) ([]*tier.Tier, error) {
	rows, err := r.queries.ListActiveTiers(ctx, r.db, pgtype.UUID{Bytes: establishmentID, Valid: true})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list active tiers", err)
	}
	tiers := make([]*tier.Tier, 0, len(rows))
	for _, row := range rows {
		t, err := converter.TierFromRow(row)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}
