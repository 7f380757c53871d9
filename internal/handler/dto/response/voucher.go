package response

import (
	"time"

	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherResponse struct {
	ID                uuid.UUID       `json:"id"`
	Code              string          `json:"code"`
	Value             decimal.Decimal `json:"value"`
	TierID            *uuid.UUID      `json:"tier_id,omitempty"`
	TierName          *string         `json:"tier_name,omitempty"`
	Volume            decimal.Decimal `json:"volume"`
	VehiclePlate      string          `json:"vehicle_plate"`
	DriverName        string          `json:"driver_name"`
	ReceiptNumber     *string         `json:"receipt_number,omitempty"`
	EstablishmentID   uuid.UUID       `json:"establishment_id"`
	EstablishmentName string          `json:"establishment_name"`
	IssuerID          uuid.UUID       `json:"issuer_id"`
	IssuerName        string          `json:"issuer_name"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	RedeemedAt        *time.Time      `json:"redeemed_at,omitempty"`
	RedeemedBy        *uuid.UUID      `json:"redeemed_by,omitempty"`
	CancelledAt       *time.Time      `json:"cancelled_at,omitempty"`
}

func FromVoucherView(v *queries.VoucherView) *VoucherResponse {
	return &VoucherResponse{
		ID:                v.ID,
		Code:              v.Code,
		Value:             v.Value,
		TierID:            v.TierID,
		TierName:          v.TierName,
		Volume:            v.Volume,
		VehiclePlate:      v.VehiclePlate,
		DriverName:        v.DriverName,
		ReceiptNumber:     v.ReceiptNumber,
		EstablishmentID:   v.EstablishmentID,
		EstablishmentName: v.EstablishmentName,
		IssuerID:          v.IssuerID,
		IssuerName:        v.IssuerName,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
		RedeemedAt:        v.RedeemedAt,
		RedeemedBy:        v.RedeemedBy,
		CancelledAt:       v.CancelledAt,
	}
}

type VoucherPageResponse struct {
	Items []*VoucherResponse `json:"items"`
	// NextCursor is passed back as ?after= to fetch the following page.
	NextCursor *string `json:"next_cursor,omitempty"`
}

func FromVoucherPage(p *queries.Page[*queries.VoucherView]) *VoucherPageResponse {
	res := &VoucherPageResponse{Items: make([]*VoucherResponse, len(p.Items))}
	for i, v := range p.Items {
		res.Items[i] = FromVoucherView(v)
	}
	if p.Next != nil {
		after := p.Next.After
		res.NextCursor = &after
	}
	return res
}

type StatusTotalsResponse struct {
	Count int64           `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type VoucherStatsResponse struct {
	Issued    StatusTotalsResponse `json:"issued"`
	Redeemed  StatusTotalsResponse `json:"redeemed"`
	Cancelled StatusTotalsResponse `json:"cancelled"`
}

func FromVoucherStats(s *queries.VoucherStats) *VoucherStatsResponse {
	return &VoucherStatsResponse{
		Issued:    StatusTotalsResponse(s.Issued),
		Redeemed:  StatusTotalsResponse(s.Redeemed),
		Cancelled: StatusTotalsResponse(s.Cancelled),
	}
}
