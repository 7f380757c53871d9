package request

import (
	"strings"

	"voucher-ledger/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IssueVoucherRequest prices the voucher from a tier unless CustomValue is set.
type IssueVoucherRequest struct {
	Volume          decimal.Decimal  `json:"volume" binding:"decimal_gt0"`
	VehiclePlate    string           `json:"vehicle_plate" binding:"required,plate"`
	DriverName      string           `json:"driver_name" binding:"required,max=120"`
	ReceiptNumber   *string          `json:"receipt_number,omitempty" binding:"omitempty,max=64"`
	EstablishmentID *uuid.UUID       `json:"establishment_id,omitempty"`
	TierID          *uuid.UUID       `json:"tier_id,omitempty"`
	CustomValue     *decimal.Decimal `json:"custom_value,omitempty" binding:"omitempty,decimal_gt0"`
}

func (r IssueVoucherRequest) ToInput() commands.IssueVoucherInput {
	return commands.IssueVoucherInput{
		Volume:          r.Volume,
		VehiclePlate:    r.VehiclePlate,
		DriverName:      strings.TrimSpace(r.DriverName),
		ReceiptNumber:   trimmedOrNil(r.ReceiptNumber),
		EstablishmentID: r.EstablishmentID,
		TierID:          r.TierID,
		CustomValue:     r.CustomValue,
	}
}

type RedeemVoucherRequest struct {
	Code string `json:"code" binding:"required,max=32"`
}

type ListVouchersQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type StatsQuery struct {
	EstablishmentID string `form:"establishment_id" binding:"omitempty,uuid"`
	IssuerID        string `form:"issuer_id" binding:"omitempty,uuid"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// OptionalUUID parses s, treating the empty string as absent. Callers run it
// after binding has checked the format.
func OptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
