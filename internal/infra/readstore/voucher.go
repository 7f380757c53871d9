package readstore

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type VoucherViewQueries interface {
	GetVoucherViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.VoucherViews, error)
	GetVoucherViewByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.VoucherViews, error)
	ListVouchersByIssuer(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersByIssuerParams) ([]sqlc.VoucherViews, error)
	ListVouchersByEstablishment(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVouchersByEstablishmentParams) ([]sqlc.VoucherViews, error)
	VoucherStats(ctx context.Context, db sqlc.DBTX, arg sqlc.VoucherStatsParams) ([]sqlc.VoucherStatsRow, error)
}

type VoucherReadStore struct {
	queries VoucherViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewVoucherReadStore(queries VoucherViewQueries, db sqlc.DBTX, logger *slog.Logger) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *VoucherReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to get voucher view by id", err)
	}
	return toVoucherView(row)
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherViewByCode(ctx, r.db, code)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to get voucher view by code", err)
	}
	return toVoucherView(row)
}

func (r *VoucherReadStore) ListByIssuer(ctx context.Context, issuerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.VoucherView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListVouchersByIssuer(ctx, r.db, sqlc.ListVouchersByIssuerParams{
		IssuerID:       issuerID,
		AfterCreatedAt: afterAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list vouchers by issuer", err)
	}
	return toVoucherViews(rows)
}

func (r *VoucherReadStore) ListByEstablishment(ctx context.Context, establishmentID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.VoucherView, error) {
	afterAt, afterID := keysetParams(after)
	rows, err := r.queries.ListVouchersByEstablishment(ctx, r.db, sqlc.ListVouchersByEstablishmentParams{
		EstablishmentID: establishmentID,
		AfterCreatedAt:  afterAt,
		AfterID:         afterID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list vouchers by establishment", err)
	}
	return toVoucherViews(rows)
}

func (r *VoucherReadStore) Stats(ctx context.Context, f queries.StatsFilter) (*queries.VoucherStats, error) {
	rows, err := r.queries.VoucherStats(ctx, r.db, sqlc.VoucherStatsParams{
		EstablishmentID: pgconv.UUIDPtrToPgtype(f.EstablishmentID),
		IssuerID:        pgconv.UUIDPtrToPgtype(f.IssuerID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to aggregate vouchers", err)
	}

	stats := &queries.VoucherStats{
		Issued:    queries.StatusTotals{Value: decimal.Zero},
		Redeemed:  queries.StatusTotals{Value: decimal.Zero},
		Cancelled: queries.StatusTotals{Value: decimal.Zero},
	}
	for _, row := range rows {
		total, err := pgconv.DecimalFromNumeric(row.TotalValue)
		if err != nil {
			return nil, errs.Wrap(err, "voucher stats total")
		}
		totals := queries.StatusTotals{Count: row.VoucherCount, Value: total}
		switch voucher.Status(row.Status) {
		case voucher.StatusIssued:
			stats.Issued = totals
		case voucher.StatusRedeemed:
			stats.Redeemed = totals
		case voucher.StatusCancelled:
			stats.Cancelled = totals
		}
	}
	return stats, nil
}

func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgtype.UUID{Bytes: after.ID, Valid: true}
}

func toVoucherViews(rows []sqlc.VoucherViews) ([]*queries.VoucherView, error) {
	views := make([]*queries.VoucherView, 0, len(rows))
	for _, row := range rows {
		v, err := toVoucherView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toVoucherView(row sqlc.VoucherViews) (*queries.VoucherView, error) {
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return nil, errs.Wrap(err, "voucher view value")
	}
	volume, err := pgconv.DecimalFromNumeric(row.Volume)
	if err != nil {
		return nil, errs.Wrap(err, "voucher view volume")
	}
	return &queries.VoucherView{
		ID:                row.ID,
		Code:              row.Code,
		Value:             value,
		TierID:            pgconv.UUIDPtrFromPgtype(row.TierID),
		TierName:          pgconv.StringPtrFromPgtype(row.TierName),
		Volume:            volume,
		VehiclePlate:      row.VehiclePlate,
		DriverName:        row.DriverName,
		ReceiptNumber:     pgconv.StringPtrFromPgtype(row.ReceiptNumber),
		EstablishmentID:   row.EstablishmentID,
		EstablishmentName: row.EstablishmentName,
		IssuerID:          row.IssuerID,
		IssuerName:        row.IssuerName,
		Status:            row.Status,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		RedeemedAt:        pgconv.TimePtrFromPgtype(row.RedeemedAt),
		RedeemedBy:        pgconv.UUIDPtrFromPgtype(row.RedeemedBy),
		CancelledAt:       pgconv.TimePtrFromPgtype(row.CancelledAt),
	}, nil
}
