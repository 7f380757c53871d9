package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateTier(ctx context.Context, db DBTX, arg CreateTierParams) error
	CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error
	CreateVoucher(ctx context.Context, db DBTX, arg CreateVoucherParams) error
	EstablishmentExists(ctx context.Context, db DBTX, id uuid.UUID) (bool, error)
	FindTierByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (VoucherTiers, error)
	FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error)
	FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error)
	FindVoucherByCode(ctx context.Context, db DBTX, code string) (Vouchers, error)
	FindVoucherByID(ctx context.Context, db DBTX, id uuid.UUID) (Vouchers, error)
	GetVoucherViewByCode(ctx context.Context, db DBTX, code string) (VoucherViews, error)
	GetVoucherViewByID(ctx context.Context, db DBTX, id uuid.UUID) (VoucherViews, error)
	ListActiveTiers(ctx context.Context, db DBTX, establishmentID pgtype.UUID) ([]VoucherTiers, error)
	ListEstablishments(ctx context.Context, db DBTX) ([]Establishments, error)
	ListVouchersByEstablishment(ctx context.Context, db DBTX, arg ListVouchersByEstablishmentParams) ([]VoucherViews, error)
	ListVouchersByIssuer(ctx context.Context, db DBTX, arg ListVouchersByIssuerParams) ([]VoucherViews, error)
	SoftDeleteVoucher(ctx context.Context, db DBTX, arg SoftDeleteVoucherParams) (int64, error)
	TransitionVoucherStatus(ctx context.Context, db DBTX, arg TransitionVoucherStatusParams) (int64, error)
	UpdateTier(ctx context.Context, db DBTX, arg UpdateTierParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) error
	VoucherStats(ctx context.Context, db DBTX, arg VoucherStatsParams) ([]VoucherStatsRow, error)
}

var _ Querier = (*Queries)(nil)
