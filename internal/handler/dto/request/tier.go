package request

import (
	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTierRequest struct {
	EstablishmentID uuid.UUID       `json:"establishment_id" binding:"required"`
	Name            string          `json:"name" binding:"required,max=100"`
	MinVolume       decimal.Decimal `json:"min_volume"`
	Value           decimal.Decimal `json:"value"`
}

func (r CreateTierRequest) ToInput() commands.AddTierInput {
	return commands.AddTierInput{
		EstablishmentID: r.EstablishmentID,
		Name:            r.Name,
		MinVolume:       r.MinVolume,
		Value:           r.Value,
	}
}

// UpdateTierRequest is a partial update; omitted fields stay as they are.
type UpdateTierRequest struct {
	Name      *string          `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	MinVolume *decimal.Decimal `json:"min_volume,omitempty"`
	Value     *decimal.Decimal `json:"value,omitempty"`
	Active    *bool            `json:"active,omitempty"`
}

func (r UpdateTierRequest) ToPatch() tier.Patch {
	return tier.Patch{
		Name:      r.Name,
		MinVolume: r.MinVolume,
		Value:     r.Value,
		Active:    r.Active,
	}
}

type ResolveTierRequest struct {
	EstablishmentID uuid.UUID       `json:"establishment_id" binding:"required"`
	Volume          decimal.Decimal `json:"volume" binding:"decimal_gt0"`
}

type ListTiersQuery struct {
	EstablishmentID string `form:"establishment_id" binding:"omitempty,uuid"`
}
