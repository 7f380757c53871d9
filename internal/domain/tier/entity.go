package tier

import (
	"strings"
	"time"

	"voucher-ledger/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tier maps a minimum fuel volume to the voucher value it grants at one
// establishment. Tiers are deactivated, never removed.
type Tier struct {
	id              uuid.UUID
	establishmentID uuid.UUID
	name            string
	minVolume       decimal.Decimal
	value           decimal.Decimal
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewTier(establishmentID uuid.UUID, name string, minVolume, value decimal.Decimal, now time.Time) (*Tier, error) {
	if establishmentID == uuid.Nil {
		return nil, ErrMissingEstablishment
	}
	t := &Tier{
		id:              uuid.New(),
		establishmentID: establishmentID,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}
	if err := t.setName(name); err != nil {
		return nil, err
	}
	if err := t.setMinVolume(minVolume); err != nil {
		return nil, err
	}
	if err := t.setValue(value); err != nil {
		return nil, err
	}
	return t, nil
}

func Reconstruct(id, establishmentID uuid.UUID, name string, minVolume, value decimal.Decimal, active bool, createdAt, updatedAt time.Time) *Tier {
	return &Tier{
		id:              id,
		establishmentID: establishmentID,
		name:            name,
		minVolume:       minVolume,
		value:           value,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Patch holds the fields an administrator may change. Nil means unchanged.
type Patch struct {
	Name      *string
	MinVolume *decimal.Decimal
	Value     *decimal.Decimal
	Active    *bool
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.MinVolume == nil && p.Value == nil && p.Active == nil
}

// Apply validates and applies p. On error the tier is left untouched.
// It reports whether anything actually changed.
func (t *Tier) Apply(p Patch, now time.Time) (bool, error) {
	next := *t
	if p.Name != nil {
		if err := next.setName(*p.Name); err != nil {
			return false, err
		}
	}
	if p.MinVolume != nil {
		if err := next.setMinVolume(*p.MinVolume); err != nil {
			return false, err
		}
	}
	if p.Value != nil {
		if err := next.setValue(*p.Value); err != nil {
			return false, err
		}
	}
	next.active = patch.Coalesce(p.Active, t.active)

	changed := next.name != t.name ||
		!next.minVolume.Equal(t.minVolume) ||
		!next.value.Equal(t.value) ||
		patch.Changed(p.Active, t.active)
	if !changed {
		return false, nil
	}

	next.updatedAt = now
	*t = next
	return true, nil
}

func (t *Tier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	t.name = name
	return nil
}

func (t *Tier) setMinVolume(v decimal.Decimal) error {
	if v.IsNegative() {
		return ErrNegativeMinVolume
	}
	t.minVolume = v
	return nil
}

func (t *Tier) setValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return ErrNegativeValue
	}
	t.value = v
	return nil
}

// Admits reports whether volume qualifies for this tier. The lower bound is inclusive.
func (t *Tier) Admits(volume decimal.Decimal) bool {
	return t.active && t.minVolume.LessThanOrEqual(volume)
}

func (t *Tier) ID() uuid.UUID              { return t.id }
func (t *Tier) EstablishmentID() uuid.UUID { return t.establishmentID }
func (t *Tier) Name() string               { return t.name }
func (t *Tier) MinVolume() decimal.Decimal { return t.minVolume }
func (t *Tier) Value() decimal.Decimal     { return t.value }
func (t *Tier) IsActive() bool             { return t.active }
func (t *Tier) CreatedAt() time.Time       { return t.createdAt }
func (t *Tier) UpdatedAt() time.Time       { return t.updatedAt }
