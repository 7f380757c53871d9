package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VoucherView is the read model of a voucher, joined with tier and
// establishment names for display.
type VoucherView struct {
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

func (v *VoucherView) keyset() Keyset { return Keyset{CreatedAt: v.CreatedAt, ID: v.ID} }

type TierView struct {
	ID              uuid.UUID       `json:"id"`
	EstablishmentID uuid.UUID       `json:"establishment_id"`
	Name            string          `json:"name"`
	MinVolume       decimal.Decimal `json:"min_volume"`
	Value           decimal.Decimal `json:"value"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type EstablishmentView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	EstablishmentID *uuid.UUID `json:"establishment_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}

// StatusTotals aggregates the vouchers in one status.
type StatusTotals struct {
	Count int64           `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type VoucherStats struct {
	Issued    StatusTotals `json:"issued"`
	Redeemed  StatusTotals `json:"redeemed"`
	Cancelled StatusTotals `json:"cancelled"`
}

// StatsFilter narrows the dashboard aggregation. Nil fields do not filter.
type StatsFilter struct {
	EstablishmentID *uuid.UUID
	IssuerID        *uuid.UUID
}
