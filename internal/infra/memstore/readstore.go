package memstore

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"time"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherReadStore, TierReadStore, EstablishmentReadStore and UserReadStore
// read committed state under the shared lock.
type (
	VoucherReadStore       struct{ s *Store }
	TierReadStore          struct{ s *Store }
	EstablishmentReadStore struct{ s *Store }
	UserReadStore          struct{ s *Store }
)

func (s *Store) VoucherReadStore() *VoucherReadStore             { return &VoucherReadStore{s} }
func (s *Store) TierReadStore() *TierReadStore                   { return &TierReadStore{s} }
func (s *Store) EstablishmentReadStore() *EstablishmentReadStore { return &EstablishmentReadStore{s} }
func (s *Store) UserReadStore() *UserReadStore                   { return &UserReadStore{s} }

func (r *VoucherReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.VoucherView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.data.vouchers[id]
	if !ok || row.deletedAt != nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "voucher not found")
	}
	return r.view(copyVoucher(row.v)), nil
}

func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	r.s.mu.RLock()
	id, ok := r.s.data.voucherCodes[code]
	r.s.mu.RUnlock()
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "voucher not found")
	}
	return r.FindByID(ctx, id)
}

func (r *VoucherReadStore) ListByIssuer(_ context.Context, issuerID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.VoucherView, error) {
	return r.list(func(v *voucher.Voucher) bool { return v.IssuerID() == issuerID }, after, limit), nil
}

func (r *VoucherReadStore) ListByEstablishment(_ context.Context, establishmentID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.VoucherView, error) {
	return r.list(func(v *voucher.Voucher) bool { return v.EstablishmentID() == establishmentID }, after, limit), nil
}

func (r *VoucherReadStore) Stats(_ context.Context, f queries.StatsFilter) (*queries.VoucherStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stats := &queries.VoucherStats{
		Issued:    queries.StatusTotals{Value: decimal.Zero},
		Redeemed:  queries.StatusTotals{Value: decimal.Zero},
		Cancelled: queries.StatusTotals{Value: decimal.Zero},
	}
	for _, row := range r.s.data.vouchers {
		v := &row.v
		if row.deletedAt != nil {
			continue
		}
		if f.EstablishmentID != nil && v.EstablishmentID() != *f.EstablishmentID {
			continue
		}
		if f.IssuerID != nil && v.IssuerID() != *f.IssuerID {
			continue
		}
		var totals *queries.StatusTotals
		switch v.Status() {
		case voucher.StatusIssued:
			totals = &stats.Issued
		case voucher.StatusRedeemed:
			totals = &stats.Redeemed
		case voucher.StatusCancelled:
			totals = &stats.Cancelled
		default:
			continue
		}
		totals.Count++
		totals.Value = totals.Value.Add(v.Value())
	}
	return stats, nil
}

// list orders newest first with id as tie-break, matching the SQL keyset.
func (r *VoucherReadStore) list(match func(*voucher.Voucher) bool, after *queries.Keyset, limit int32) []*queries.VoucherView {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var hits []*voucher.Voucher
	for _, row := range r.s.data.vouchers {
		if row.deletedAt != nil || !match(&row.v) {
			continue
		}
		if after != nil && !keysetBefore(row.v.CreatedAt(), row.v.ID(), after) {
			continue
		}
		hits = append(hits, copyVoucher(row.v))
	}
	slices.SortFunc(hits, func(a, b *voucher.Voucher) int {
		if c := b.CreatedAt().Compare(a.CreatedAt()); c != 0 {
			return c
		}
		ai, bi := a.ID(), b.ID()
		return bytes.Compare(bi[:], ai[:])
	})
	if len(hits) > int(limit) {
		hits = hits[:limit]
	}

	views := make([]*queries.VoucherView, len(hits))
	for i, v := range hits {
		views[i] = r.view(v)
	}
	return views
}

func keysetBefore(createdAt time.Time, id uuid.UUID, after *queries.Keyset) bool {
	if c := createdAt.Compare(after.CreatedAt); c != 0 {
		return c < 0
	}
	return bytes.Compare(id[:], after.ID[:]) < 0
}

// view must be called with the lock held.
func (r *VoucherReadStore) view(v *voucher.Voucher) *queries.VoucherView {
	d := &r.s.data
	var tierName *string
	if tierID := v.TierID(); tierID != nil {
		if t, ok := d.tiers[*tierID]; ok {
			name := t.Name()
			tierName = &name
		}
	}
	return &queries.VoucherView{
		ID:                v.ID(),
		Code:              v.Code().String(),
		Value:             v.Value(),
		TierID:            v.TierID(),
		TierName:          tierName,
		Volume:            v.Volume(),
		VehiclePlate:      v.VehiclePlate(),
		DriverName:        v.DriverName(),
		ReceiptNumber:     v.ReceiptNumber(),
		EstablishmentID:   v.EstablishmentID(),
		EstablishmentName: d.establishments[v.EstablishmentID()].name,
		IssuerID:          v.IssuerID(),
		IssuerName:        v.IssuerName(),
		Status:            v.Status().String(),
		CreatedAt:         v.CreatedAt(),
		RedeemedAt:        v.RedeemedAt(),
		RedeemedBy:        v.RedeemedBy(),
		CancelledAt:       v.CancelledAt(),
	}
}

func (r *TierReadStore) ListActive(_ context.Context, establishmentID *uuid.UUID) ([]*queries.TierView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tiers := activeTiers(&r.s.data, establishmentID)
	tier.SortForCatalog(tiers)
	views := make([]*queries.TierView, len(tiers))
	for i, t := range tiers {
		views[i] = &queries.TierView{
			ID:              t.ID(),
			EstablishmentID: t.EstablishmentID(),
			Name:            t.Name(),
			MinVolume:       t.MinVolume(),
			Value:           t.Value(),
			Active:          t.IsActive(),
			CreatedAt:       t.CreatedAt(),
			UpdatedAt:       t.UpdatedAt(),
		}
	}
	return views, nil
}

func (r *EstablishmentReadStore) List(_ context.Context) ([]*queries.EstablishmentView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	views := make([]*queries.EstablishmentView, 0, len(r.s.data.establishments))
	for _, e := range r.s.data.establishments {
		views = append(views, &queries.EstablishmentView{ID: e.id, Name: e.name, CreatedAt: e.createdAt})
	}
	slices.SortFunc(views, func(a, b *queries.EstablishmentView) int { return cmp.Compare(a.Name, b.Name) })
	return views, nil
}

func (r *UserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.data.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return userView(row), nil
}

func (r *UserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.data.userEmails[email]
	if !ok {
		return nil, "", infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	row := r.s.data.users[id]
	return userView(row), row.passwordHash, nil
}

func userView(row userRow) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:              row.id,
		Email:           row.email,
		Name:            row.name,
		Role:            row.role,
		EstablishmentID: row.establishmentID,
		IsActive:        row.isActive,
		LastLogin:       row.lastLogin,
	}
}
