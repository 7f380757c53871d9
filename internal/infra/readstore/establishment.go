package readstore

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"
)

type EstablishmentViewQueries interface {
	ListEstablishments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Establishments, error)
}

type EstablishmentReadStore struct {
	queries EstablishmentViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewEstablishmentReadStore(queries EstablishmentViewQueries, db sqlc.DBTX, logger *slog.Logger) *EstablishmentReadStore {
	return &EstablishmentReadStore{queries: queries, db: db, logger: logger}
}

func (r *EstablishmentReadStore) List(ctx context.Context) ([]*queries.EstablishmentView, error) {
	rows, err := r.queries.ListEstablishments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list establishments", err)
	}
	views := make([]*queries.EstablishmentView, len(rows))
	for i, row := range rows {
		views[i] = &queries.EstablishmentView{
			ID:        row.ID,
			Name:      row.Name,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}
