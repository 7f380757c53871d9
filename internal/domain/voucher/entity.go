package voucher

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Voucher struct {
	id              uuid.UUID
	code            Code
	value           decimal.Decimal
	tierID          *uuid.UUID
	volume          decimal.Decimal
	vehiclePlate    string
	driverName      string
	receiptNumber   *string
	establishmentID uuid.UUID
	issuerID        uuid.UUID
	issuerName      string
	status          Status
	createdAt       time.Time
	redeemedAt      *time.Time
	redeemedBy      *uuid.UUID
	cancelledAt     *time.Time
}

// IssueParams carries everything needed to issue a voucher. Value is
// already resolved: either copied from a tier or supplied explicitly.
type IssueParams struct {
	Code            Code
	Value           decimal.Decimal
	TierID          *uuid.UUID
	Volume          decimal.Decimal
	VehiclePlate    string
	DriverName      string
	ReceiptNumber   *string
	EstablishmentID uuid.UUID
	IssuerID        uuid.UUID
	IssuerName      string
}

// Issue builds a voucher in status issued. The plate is stored in its
// canonical form.
func Issue(p IssueParams, now time.Time) (*Voucher, error) {
	if err := ValidateIssue(p); err != nil {
		return nil, err
	}

	var receipt *string
	if p.ReceiptNumber != nil {
		if r := strings.TrimSpace(*p.ReceiptNumber); r != "" {
			receipt = &r
		}
	}

	return &Voucher{
		id:              uuid.New(),
		code:            p.Code,
		value:           p.Value,
		tierID:          p.TierID,
		volume:          p.Volume,
		vehiclePlate:    ValidatePlate(p.VehiclePlate).Formatted,
		driverName:      strings.TrimSpace(p.DriverName),
		receiptNumber:   receipt,
		establishmentID: p.EstablishmentID,
		issuerID:        p.IssuerID,
		issuerName:      strings.TrimSpace(p.IssuerName),
		status:          StatusIssued,
		createdAt:       now,
	}, nil
}

// ValidateIssue checks the issuance preconditions that do not depend on the
// code, so callers can fail fast before generating one.
func ValidateIssue(p IssueParams) error {
	if !p.Volume.IsPositive() {
		return ErrNonPositiveVolume
	}
	if p.Value.IsNegative() {
		return ErrNegativeValue
	}
	if !ValidatePlate(p.VehiclePlate).Valid {
		return ErrInvalidPlate
	}
	if strings.TrimSpace(p.DriverName) == "" {
		return ErrEmptyDriverName
	}
	if p.EstablishmentID == uuid.Nil {
		return ErrMissingEstablishment
	}
	if p.IssuerID == uuid.Nil {
		return ErrMissingIssuer
	}
	return nil
}

// Reconstruct rebuilds a persisted voucher.
func Reconstruct(
	id uuid.UUID, code Code, value decimal.Decimal, tierID *uuid.UUID, volume decimal.Decimal,
	vehiclePlate, driverName string, receiptNumber *string,
	establishmentID, issuerID uuid.UUID, issuerName string,
	status Status, createdAt time.Time, redeemedAt *time.Time, redeemedBy *uuid.UUID, cancelledAt *time.Time,
) *Voucher {
	return &Voucher{
		id:              id,
		code:            code,
		value:           value,
		tierID:          tierID,
		volume:          volume,
		vehiclePlate:    vehiclePlate,
		driverName:      driverName,
		receiptNumber:   receiptNumber,
		establishmentID: establishmentID,
		issuerID:        issuerID,
		issuerName:      issuerName,
		status:          status,
		createdAt:       createdAt,
		redeemedAt:      redeemedAt,
		redeemedBy:      redeemedBy,
		cancelledAt:     cancelledAt,
	}
}

// WithCode returns a copy carrying a freshly generated code, used when a
// candidate collided with an existing voucher.
func (v *Voucher) WithCode(c Code) *Voucher {
	cp := *v
	cp.code = c
	return &cp
}

// Redeem moves an issued voucher to redeemed. Persisting the change must be
// conditional on the stored status still being issued.
func (v *Voucher) Redeem(by uuid.UUID, now time.Time) error {
	if err := redemptionError(v.status); err != nil {
		return err
	}
	v.status = StatusRedeemed
	v.redeemedAt = &now
	v.redeemedBy = &by
	return nil
}

func (v *Voucher) Cancel(now time.Time) error {
	if v.status != StatusIssued {
		return ErrNotIssued
	}
	v.status = StatusCancelled
	v.cancelledAt = &now
	return nil
}

// CanDelete guards against removing a voucher that is still spendable.
func (v *Voucher) CanDelete() error {
	if v.status == StatusIssued {
		return ErrDeleteIssued
	}
	return nil
}

// RedemptionError maps the voucher's current status to the error a redeemer
// should see, or nil when it is still redeemable.
func (v *Voucher) RedemptionError() error {
	return redemptionError(v.status)
}

func (v *Voucher) ID() uuid.UUID              { return v.id }
func (v *Voucher) Code() Code                 { return v.code }
func (v *Voucher) Value() decimal.Decimal     { return v.value }
func (v *Voucher) TierID() *uuid.UUID         { return v.tierID }
func (v *Voucher) Volume() decimal.Decimal    { return v.volume }
func (v *Voucher) VehiclePlate() string       { return v.vehiclePlate }
func (v *Voucher) DriverName() string         { return v.driverName }
func (v *Voucher) ReceiptNumber() *string     { return v.receiptNumber }
func (v *Voucher) EstablishmentID() uuid.UUID { return v.establishmentID }
func (v *Voucher) IssuerID() uuid.UUID        { return v.issuerID }
func (v *Voucher) IssuerName() string         { return v.issuerName }
func (v *Voucher) Status() Status             { return v.status }
func (v *Voucher) CreatedAt() time.Time       { return v.createdAt }
func (v *Voucher) RedeemedAt() *time.Time     { return v.redeemedAt }
func (v *Voucher) RedeemedBy() *uuid.UUID     { return v.redeemedBy }
func (v *Voucher) CancelledAt() *time.Time    { return v.cancelledAt }
