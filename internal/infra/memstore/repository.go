package memstore

import (
	"context"
	"time"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"

	"github.com/google/uuid"
)

type tierRepo struct{ tx *memTx }

func (r *tierRepo) Create(_ context.Context, t *tier.Tier) error {
	d := r.tx.data
	if _, ok := d.establishments[t.EstablishmentID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "tier establishment does not exist")
	}
	if _, ok := d.tiers[t.ID()]; ok {
		return infra.NewRepoErr(infra.KindDuplicateKey, "tier id already exists")
	}
	put(r.tx, d.tiers, t.ID(), *copyTier(*t))
	return nil
}

func (r *tierRepo) Update(_ context.Context, t *tier.Tier) error {
	d := r.tx.data
	if _, ok := d.tiers[t.ID()]; !ok {
		return infra.NewRepoErr(infra.KindNotFound, "tier not found")
	}
	put(r.tx, d.tiers, t.ID(), *copyTier(*t))
	return nil
}

func (r *tierRepo) FindByID(_ context.Context, id uuid.UUID) (*tier.Tier, error) {
	t, ok := r.tx.data.tiers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "tier not found")
	}
	return copyTier(t), nil
}

func (r *tierRepo) ListActive(_ context.Context, establishmentID uuid.UUID) ([]*tier.Tier, error) {
	out := activeTiers(r.tx.data, &establishmentID)
	tier.SortForCatalog(out)
	return out, nil
}

func activeTiers(d *tables, establishmentID *uuid.UUID) []*tier.Tier {
	out := make([]*tier.Tier, 0, len(d.tiers))
	for _, t := range d.tiers {
		if !t.IsActive() {
			continue
		}
		if establishmentID != nil && t.EstablishmentID() != *establishmentID {
			continue
		}
		out = append(out, copyTier(t))
	}
	return out
}

type voucherRepo struct{ tx *memTx }

func (r *voucherRepo) Create(_ context.Context, v *voucher.Voucher) error {
	d := r.tx.data
	if _, ok := d.establishments[v.EstablishmentID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "voucher establishment does not exist")
	}
	if tierID := v.TierID(); tierID != nil {
		if _, ok := d.tiers[*tierID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "voucher tier does not exist")
		}
	}
	// Codes stay reserved after a soft delete, as with the unique index.
	if _, taken := d.voucherCodes[v.Code().String()]; taken {
		return infra.NewRepoErr(infra.KindDuplicateKey, "voucher code already exists")
	}
	if _, taken := d.vouchers[v.ID()]; taken {
		return infra.NewRepoErr(infra.KindDuplicateKey, "voucher id already exists")
	}
	put(r.tx, d.vouchers, v.ID(), voucherRow{v: *copyVoucher(*v)})
	put(r.tx, d.voucherCodes, v.Code().String(), v.ID())
	return nil
}

func (r *voucherRepo) FindByID(_ context.Context, id uuid.UUID) (*voucher.Voucher, error) {
	row, ok := r.tx.data.vouchers[id]
	if !ok || row.deletedAt != nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "voucher not found")
	}
	return copyVoucher(row.v), nil
}

func (r *voucherRepo) FindByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error) {
	id, ok := r.tx.data.voucherCodes[code.String()]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "voucher not found")
	}
	return r.FindByID(ctx, id)
}

func (r *voucherRepo) TransitionFrom(_ context.Context, v *voucher.Voucher, from voucher.Status) (bool, error) {
	d := r.tx.data
	row, ok := d.vouchers[v.ID()]
	if !ok || row.deletedAt != nil || row.v.Status() != from {
		return false, nil
	}
	row.v = *copyVoucher(*v)
	put(r.tx, d.vouchers, v.ID(), row)
	return true, nil
}

func (r *voucherRepo) SoftDelete(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	d := r.tx.data
	row, ok := d.vouchers[id]
	if !ok || row.deletedAt != nil || row.v.Status() == voucher.StatusIssued {
		return false, nil
	}
	row.deletedAt = &now
	put(r.tx, d.vouchers, id, row)
	return true, nil
}

type establishmentRepo struct{ tx *memTx }

func (r *establishmentRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.tx.data.establishments[id]
	return ok, nil
}

type userRepo struct{ tx *memTx }

func (r *userRepo) Create(_ context.Context, u *user.User) error {
	d := r.tx.data
	email := u.Email().Value()
	if _, taken := d.userEmails[email]; taken {
		return infra.NewRepoErr(infra.KindDuplicateKey, "email already exists")
	}
	if estID := u.EstablishmentID(); estID != nil {
		if _, ok := d.establishments[*estID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "user establishment does not exist")
		}
	}
	put(r.tx, d.users, u.ID(), userRow{
		id:              u.ID(),
		email:           email,
		passwordHash:    u.PasswordHash(),
		name:            u.Name(),
		role:            u.Role().String(),
		establishmentID: u.EstablishmentID(),
		isActive:        u.IsActive(),
		createdAt:       u.CreatedAt(),
		updatedAt:       u.UpdatedAt(),
	})
	put(r.tx, d.userEmails, email, u.ID())
	return nil
}

func (r *userRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID, at time.Time) error {
	d := r.tx.data
	row, ok := d.users[userID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	row.lastLogin = &at
	put(r.tx, d.users, userID, row)
	return nil
}

// copyTier detaches a tier from the stored row.
func copyTier(t tier.Tier) *tier.Tier {
	return tier.Reconstruct(t.ID(), t.EstablishmentID(), t.Name(), t.MinVolume(), t.Value(),
		t.IsActive(), t.CreatedAt(), t.UpdatedAt())
}

// copyVoucher deep-copies the optional fields so neither side can mutate the other.
func copyVoucher(v voucher.Voucher) *voucher.Voucher {
	return voucher.Reconstruct(
		v.ID(), v.Code(), v.Value(), clonePtr(v.TierID()), v.Volume(),
		v.VehiclePlate(), v.DriverName(), clonePtr(v.ReceiptNumber()),
		v.EstablishmentID(), v.IssuerID(), v.IssuerName(),
		v.Status(), v.CreatedAt(), clonePtr(v.RedeemedAt()), clonePtr(v.RedeemedBy()), clonePtr(v.CancelledAt()),
	)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
