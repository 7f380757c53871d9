package readstore

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TierViewQueries interface {
	ListActiveTiers(ctx context.Context, db sqlc.DBTX, establishmentID pgtype.UUID) ([]sqlc.VoucherTiers, error)
}

type TierReadStore struct {
	queries TierViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewTierReadStore(queries TierViewQueries, db sqlc.DBTX, logger *slog.Logger) *TierReadStore {
	return &TierReadStore{queries: queries, db: db, logger: logger}
}

func (r *TierReadStore) ListActive(ctx context.Context, establishmentID *uuid.UUID) ([]*queries.TierView, error) {
	rows, err := r.queries.ListActiveTiers(ctx, r.db, pgconv.UUIDPtrToPgtype(establishmentID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list tiers", err)
	}
	views := make([]*queries.TierView, 0, len(rows))
	for _, row := range rows {
		minVolume, err := pgconv.DecimalFromNumeric(row.MinVolume)
		if err != nil {
			return nil, errs.Wrap(err, "tier min volume")
		}
		value, err := pgconv.DecimalFromNumeric(row.Value)
		if err != nil {
			return nil, errs.Wrap(err, "tier value")
		}
		views = append(views, &queries.TierView{
			ID:              row.ID,
			EstablishmentID: row.EstablishmentID,
			Name:            row.Name,
			MinVolume:       minVolume,
			Value:           value,
			Active:          row.Active,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}
