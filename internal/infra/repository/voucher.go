package repository

import (
	"context"
	"log/slog"
	"time"

	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/infra/repository/converter"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) error
	FindVoucherByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vouchers, error)
	FindVoucherByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Vouchers, error)
	TransitionVoucherStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionVoucherStatusParams) (int64, error)
	SoftDeleteVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.SoftDeleteVoucherParams) (int64, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX, logger *slog.Logger) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *VoucherRepository) Create(ctx context.Context, v *voucher.Voucher) error {
	if err := r.queries.CreateVoucher(ctx, r.db, converter.VoucherToCreateParams(v)); err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create voucher", err)
	}
	return nil
}

func (r *VoucherRepository) FindByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	row, err := r.queries.FindVoucherByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find voucher by id", err)
	}
	return converter.VoucherFromRow(row)
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error) {
	row, err := r.queries.FindVoucherByCode(ctx, r.db, code.String())
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find voucher by code", err)
	}
	return converter.VoucherFromRow(row)
}

func (r *VoucherRepository) TransitionFrom(ctx context.Context, v *voucher.Voucher, from voucher.Status) (bool, error) {
	n, err := r.queries.TransitionVoucherStatus(ctx, r.db, converter.VoucherToTransitionParams(v, from))
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to transition voucher", err)
	}
	return n == 1, nil
}

func (r *VoucherRepository) SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	n, err := r.queries.SoftDeleteVoucher(ctx, r.db, sqlc.SoftDeleteVoucherParams{
		ID:        id,
		DeletedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to delete voucher", err)
	}
	return n == 1, nil
}
