package converter

import (
	"voucher-ledger/internal/domain/voucher"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) sqlc.CreateVoucherParams {
	return sqlc.CreateVoucherParams{
		ID:              v.ID(),
		Code:            v.Code().String(),
		Value:           pgconv.DecimalToNumeric(v.Value()),
		TierID:          pgconv.UUIDPtrToPgtype(v.TierID()),
		Volume:          pgconv.DecimalToNumeric(v.Volume()),
		VehiclePlate:    v.VehiclePlate(),
		DriverName:      v.DriverName(),
		ReceiptNumber:   pgconv.StringPtrToPgtype(v.ReceiptNumber()),
		EstablishmentID: v.EstablishmentID(),
		IssuerID:        v.IssuerID(),
		IssuerName:      v.IssuerName(),
		Status:          v.Status().String(),
		CreatedAt:       pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

// VoucherToTransitionParams carries v's new status and stamps, guarded by from.
func VoucherToTransitionParams(v *voucher.Voucher, from voucher.Status) sqlc.TransitionVoucherStatusParams {
	return sqlc.TransitionVoucherStatusParams{
		Status:         v.Status().String(),
		RedeemedAt:     pgconv.TimePtrToPgtype(v.RedeemedAt()),
		RedeemedBy:     pgconv.UUIDPtrToPgtype(v.RedeemedBy()),
		CancelledAt:    pgconv.TimePtrToPgtype(v.CancelledAt()),
		ID:             v.ID(),
		ExpectedStatus: from.String(),
	}
}

func VoucherFromRow(row sqlc.Vouchers) (*voucher.Voucher, error) {
	value, err := pgconv.DecimalFromNumeric(row.Value)
	if err != nil {
		return nil, errs.Wrap(err, "voucher value")
	}
	volume, err := pgconv.DecimalFromNumeric(row.Volume)
	if err != nil {
		return nil, errs.Wrap(err, "voucher volume")
	}
	status, err := voucher.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "voucher %s", row.ID)
	}

	return voucher.Reconstruct(
		row.ID,
		voucher.Code(row.Code),
		value,
		pgconv.UUIDPtrFromPgtype(row.TierID),
		volume,
		row.VehiclePlate,
		row.DriverName,
		pgconv.StringPtrFromPgtype(row.ReceiptNumber),
		row.EstablishmentID,
		row.IssuerID,
		row.IssuerName,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.RedeemedAt),
		pgconv.UUIDPtrFromPgtype(row.RedeemedBy),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}
