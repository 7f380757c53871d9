//go:build unit || e2e

package builder

import (
	"time"

	"voucher-ledger/internal/domain/voucher"
	reqdto "voucher-ledger/internal/handler/dto/request"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherBuilder struct {
	Code            string
	Value           decimal.Decimal
	TierID          *uuid.UUID
	Volume          decimal.Decimal
	VehiclePlate    string
	DriverName      string
	ReceiptNumber   *string
	EstablishmentID uuid.UUID
	IssuerID        uuid.UUID
	IssuerName      string
	Status          voucher.Status
	CreatedAt       time.Time
	RedeemedAt      *time.Time
	RedeemedBy      *uuid.UUID
	CancelledAt     *time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	tierID := uuid.New()
	receipt := "NF-000123"
	return &VoucherBuilder{
		Code:            "VF-AB12CD34",
		Value:           decimal.NewFromInt(50),
		TierID:          &tierID,
		Volume:          decimal.NewFromInt(45),
		VehiclePlate:    "abc1234",
		DriverName:      "João Silva",
		ReceiptNumber:   &receipt,
		EstablishmentID: uuid.New(),
		IssuerID:        uuid.New(),
		IssuerName:      "Maria Caixa",
		Status:          voucher.StatusIssued,
		CreatedAt:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (v *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(v)
	return v
}

// Build methods
func (v *VoucherBuilder) BuildParams() voucher.IssueParams {
	return voucher.IssueParams{
		Code:            voucher.Code(v.Code),
		Value:           v.Value,
		TierID:          v.TierID,
		Volume:          v.Volume,
		VehiclePlate:    v.VehiclePlate,
		DriverName:      v.DriverName,
		ReceiptNumber:   v.ReceiptNumber,
		EstablishmentID: v.EstablishmentID,
		IssuerID:        v.IssuerID,
		IssuerName:      v.IssuerName,
	}
}

func (v *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	return voucher.Issue(v.BuildParams(), v.CreatedAt)
}

// BuildReconstructed skips issuance validation and keeps Status and the
// redemption stamps as set on the builder.
func (v *VoucherBuilder) BuildReconstructed() *voucher.Voucher {
	return voucher.Reconstruct(uuid.New(), voucher.Code(v.Code), v.Value, v.TierID, v.Volume,
		voucher.ValidatePlate(v.VehiclePlate).Formatted, v.DriverName, v.ReceiptNumber,
		v.EstablishmentID, v.IssuerID, v.IssuerName,
		v.Status, v.CreatedAt, v.RedeemedAt, v.RedeemedBy, v.CancelledAt)
}

func (v *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	return sqlc.Vouchers{
		ID:              uuid.New(),
		Code:            v.Code,
		Value:           pgconv.DecimalToNumeric(v.Value),
		TierID:          pgconv.UUIDPtrToPgtype(v.TierID),
		Volume:          pgconv.DecimalToNumeric(v.Volume),
		VehiclePlate:    voucher.ValidatePlate(v.VehiclePlate).Formatted,
		DriverName:      v.DriverName,
		ReceiptNumber:   pgconv.StringPtrToPgtype(v.ReceiptNumber),
		EstablishmentID: v.EstablishmentID,
		IssuerID:        v.IssuerID,
		IssuerName:      v.IssuerName,
		Status:          v.Status.String(),
		CreatedAt:       pgconv.TimeToPgtype(v.CreatedAt),
		RedeemedAt:      pgconv.TimePtrToPgtype(v.RedeemedAt),
		RedeemedBy:      pgconv.UUIDPtrToPgtype(v.RedeemedBy),
		CancelledAt:     pgconv.TimePtrToPgtype(v.CancelledAt),
	}
}

func (v *VoucherBuilder) BuildView() *queries.VoucherView {
	var tierName *string
	if v.TierID != nil {
		name := "Faixa 40L"
		tierName = &name
	}
	return &queries.VoucherView{
		ID:                uuid.New(),
		Code:              v.Code,
		Value:             v.Value,
		TierID:            v.TierID,
		TierName:          tierName,
		Volume:            v.Volume,
		VehiclePlate:      voucher.ValidatePlate(v.VehiclePlate).Formatted,
		DriverName:        v.DriverName,
		ReceiptNumber:     v.ReceiptNumber,
		EstablishmentID:   v.EstablishmentID,
		EstablishmentName: "Posto Central",
		IssuerID:          v.IssuerID,
		IssuerName:        v.IssuerName,
		Status:            v.Status.String(),
		CreatedAt:         v.CreatedAt,
		RedeemedAt:        v.RedeemedAt,
		RedeemedBy:        v.RedeemedBy,
		CancelledAt:       v.CancelledAt,
	}
}

// BuildDTO is the issue request for a tier-priced voucher.
func (v *VoucherBuilder) BuildDTO() reqdto.IssueVoucherRequest {
	estID := v.EstablishmentID
	return reqdto.IssueVoucherRequest{
		Volume:          v.Volume,
		VehiclePlate:    v.VehiclePlate,
		DriverName:      v.DriverName,
		ReceiptNumber:   v.ReceiptNumber,
		EstablishmentID: &estID,
	}
}

// Fluent builder methods
func (v *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	v.Code = code
	return v
}

func (v *VoucherBuilder) WithValue(value string) *VoucherBuilder {
	v.Value = decimal.RequireFromString(value)
	return v
}

func (v *VoucherBuilder) WithVolume(volume string) *VoucherBuilder {
	v.Volume = decimal.RequireFromString(volume)
	return v
}

func (v *VoucherBuilder) WithPlate(plate string) *VoucherBuilder {
	v.VehiclePlate = plate
	return v
}

func (v *VoucherBuilder) WithDriverName(name string) *VoucherBuilder {
	v.DriverName = name
	return v
}

func (v *VoucherBuilder) WithEstablishmentID(id uuid.UUID) *VoucherBuilder {
	v.EstablishmentID = id
	return v
}

func (v *VoucherBuilder) WithIssuer(id uuid.UUID, name string) *VoucherBuilder {
	v.IssuerID = id
	v.IssuerName = name
	return v
}

func (v *VoucherBuilder) WithoutTier() *VoucherBuilder {
	v.TierID = nil
	return v
}

func (v *VoucherBuilder) WithCreatedAt(t time.Time) *VoucherBuilder {
	v.CreatedAt = t
	return v
}

func (v *VoucherBuilder) AsRedeemed(by uuid.UUID, at time.Time) *VoucherBuilder {
	v.Status = voucher.StatusRedeemed
	v.RedeemedBy = &by
	v.RedeemedAt = &at
	return v
}

func (v *VoucherBuilder) AsCancelled(at time.Time) *VoucherBuilder {
	v.Status = voucher.StatusCancelled
	v.CancelledAt = &at
	return v
}
