package queries

import (
	"context"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrVoucherAccess = errs.Kind("not allowed to view these vouchers", errs.ErrForbidden)

type VoucherReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
	ListByIssuer(ctx context.Context, issuerID uuid.UUID, after *Keyset, limit int32) ([]*VoucherView, error)
	ListByEstablishment(ctx context.Context, establishmentID uuid.UUID, after *Keyset, limit int32) ([]*VoucherView, error)
	Stats(ctx context.Context, f StatsFilter) (*VoucherStats, error)
}

type VoucherQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error)
	GetByCode(ctx context.Context, code string) (*VoucherView, error)
	ListByIssuer(ctx context.Context, actor shared.Actor, issuerID uuid.UUID, cursor *Cursor, limit int) (*Page[*VoucherView], error)
	ListByEstablishment(ctx context.Context, actor shared.Actor, establishmentID uuid.UUID, cursor *Cursor, limit int) (*Page[*VoucherView], error)
	Stats(ctx context.Context, actor shared.Actor, f StatsFilter) (*VoucherStats, error)
}

type voucherQueriesImpl struct {
	store       VoucherReadStore
	defaultPage int
}

func NewVoucherQueries(store VoucherReadStore, defaultPage int) VoucherQueries {
	return &voucherQueriesImpl{store: store, defaultPage: defaultPage}
}

func (q *voucherQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VoucherView, error) {
	v, err := q.store.FindByID(ctx, id)
	return v, notFoundAs(err, voucher.ErrVoucherNotFound)
}

// GetByCode is a plain lookup; the code is normalized like on redemption.
func (q *voucherQueriesImpl) GetByCode(ctx context.Context, code string) (*VoucherView, error) {
	v, err := q.store.FindByCode(ctx, voucher.NormalizeCode(code).String())
	return v, notFoundAs(err, voucher.ErrVoucherNotFound)
}

func (q *voucherQueriesImpl) ListByIssuer(ctx context.Context, actor shared.Actor, issuerID uuid.UUID, cursor *Cursor, limit int) (*Page[*VoucherView], error) {
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleCashier:
		if actor.UserID != issuerID {
			return nil, ErrVoucherAccess
		}
	case user.RoleEstablishment:
		return nil, ErrVoucherAccess
	default:
		return nil, ErrVoucherAccess
	}

	limit = ValidateLimit(limit, q.defaultPage)
	return paginate(cursor, limit, (*VoucherView).keyset, func(after *Keyset, n int32) ([]*VoucherView, error) {
		return q.store.ListByIssuer(ctx, issuerID, after, n)
	})
}

func (q *voucherQueriesImpl) ListByEstablishment(ctx context.Context, actor shared.Actor, establishmentID uuid.UUID, cursor *Cursor, limit int) (*Page[*VoucherView], error) {
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleEstablishment:
		if !actor.OwnsEstablishment(establishmentID) {
			return nil, ErrVoucherAccess
		}
	case user.RoleCashier:
		return nil, ErrVoucherAccess
	default:
		return nil, ErrVoucherAccess
	}

	limit = ValidateLimit(limit, q.defaultPage)
	return paginate(cursor, limit, (*VoucherView).keyset, func(after *Keyset, n int32) ([]*VoucherView, error) {
		return q.store.ListByEstablishment(ctx, establishmentID, after, n)
	})
}

// Stats scopes the aggregation by role: cashiers see what they issued,
// establishments what belongs to them, admins whatever they ask for.
func (q *voucherQueriesImpl) Stats(ctx context.Context, actor shared.Actor, f StatsFilter) (*VoucherStats, error) {
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleCashier:
		f = StatsFilter{IssuerID: &actor.UserID, EstablishmentID: f.EstablishmentID}
	case user.RoleEstablishment:
		if actor.EstablishmentID == nil {
			return nil, ErrVoucherAccess
		}
		f = StatsFilter{EstablishmentID: actor.EstablishmentID}
	default:
		return nil, ErrVoucherAccess
	}
	return q.store.Stats(ctx, f)
}

func notFoundAs(err, target error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return target
	}
	return err
}
