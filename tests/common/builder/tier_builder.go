//go:build unit || e2e

package builder

import (
	"time"

	"voucher-ledger/internal/domain/tier"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TierBuilder struct {
	ID              uuid.UUID
	EstablishmentID uuid.UUID
	Name            string
	MinVolume       decimal.Decimal
	Value           decimal.Decimal
	Active          bool
	CreatedAt       time.Time
}

func NewTierBuilder() *TierBuilder {
	return &TierBuilder{
		ID:              uuid.New(),
		EstablishmentID: uuid.New(),
		Name:            "Faixa 40L",
		MinVolume:       decimal.NewFromInt(40),
		Value:           decimal.NewFromInt(50),
		Active:          true,
		CreatedAt:       time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *TierBuilder) Build() *tier.Tier {
	return tier.Reconstruct(b.ID, b.EstablishmentID, b.Name, b.MinVolume, b.Value, b.Active, b.CreatedAt, b.CreatedAt)
}

func (b *TierBuilder) BuildInfra() sqlc.VoucherTiers {
	return sqlc.VoucherTiers{
		ID:              b.ID,
		EstablishmentID: b.EstablishmentID,
		Name:            b.Name,
		MinVolume:       pgconv.DecimalToNumeric(b.MinVolume),
		Value:           pgconv.DecimalToNumeric(b.Value),
		Active:          b.Active,
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *TierBuilder) BuildView() *queries.TierView {
	return &queries.TierView{
		ID:              b.ID,
		EstablishmentID: b.EstablishmentID,
		Name:            b.Name,
		MinVolume:       b.MinVolume,
		Value:           b.Value,
		Active:          b.Active,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *TierBuilder) WithID(id uuid.UUID) *TierBuilder {
	b.ID = id
	return b
}

func (b *TierBuilder) WithEstablishmentID(id uuid.UUID) *TierBuilder {
	b.EstablishmentID = id
	return b
}

func (b *TierBuilder) WithName(name string) *TierBuilder {
	b.Name = name
	return b
}

func (b *TierBuilder) WithMinVolume(v string) *TierBuilder {
	b.MinVolume = decimal.RequireFromString(v)
	return b
}

func (b *TierBuilder) WithValue(v string) *TierBuilder {
	b.Value = decimal.RequireFromString(v)
	return b
}

func (b *TierBuilder) Inactive() *TierBuilder {
	b.Active = false
	return b
}

func (b *TierBuilder) WithCreatedAt(t time.Time) *TierBuilder {
	b.CreatedAt = t
	return b
}
