package response

import (
	"time"

	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TierResponse struct {
	ID              uuid.UUID       `json:"id"`
	EstablishmentID uuid.UUID       `json:"establishment_id"`
	Name            string          `json:"name"`
	MinVolume       decimal.Decimal `json:"min_volume"`
	Value           decimal.Decimal `json:"value"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromTierView(v *queries.TierView) *TierResponse {
	return &TierResponse{
		ID:              v.ID,
		EstablishmentID: v.EstablishmentID,
		Name:            v.Name,
		MinVolume:       v.MinVolume,
		Value:           v.Value,
		Active:          v.Active,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromTierViews(views []*queries.TierView) []*TierResponse {
	res := make([]*TierResponse, len(views))
	for i, v := range views {
		res[i] = FromTierView(v)
	}
	return res
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
