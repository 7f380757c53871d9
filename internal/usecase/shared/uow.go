package shared

import (
	"context"
	"time"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/domain/voucher"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a write transaction. Implementations may retry fn on
	// transient storage conflicts, so fn must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Tiers() TierRepository
	Vouchers() VoucherRepository
	Establishments() EstablishmentRepository
	Users() UserRepository
}

type TierRepository interface {
	Create(ctx context.Context, t *tier.Tier) error
	Update(ctx context.Context, t *tier.Tier) error
	FindByID(ctx context.Context, id uuid.UUID) (*tier.Tier, error)
	ListActive(ctx context.Context, establishmentID uuid.UUID) ([]*tier.Tier, error)
}

type VoucherRepository interface {
	// Create fails with infra.KindDuplicateKey when the code is taken.
	Create(ctx context.Context, v *voucher.Voucher) error
	FindByID(ctx context.Context, id uuid.UUID) (*voucher.Voucher, error)
	FindByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error)
	// TransitionFrom writes v's status and transition stamps only if the
	// stored status is still from. It reports whether the row was updated.
	TransitionFrom(ctx context.Context, v *voucher.Voucher, from voucher.Status) (bool, error)
	// SoftDelete hides a settled voucher. Issued vouchers are never matched.
	SoftDelete(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type EstablishmentRepository interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}
