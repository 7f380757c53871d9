package voucher

import "voucher-ledger/internal/pkg/errs"

var (
	ErrNonPositiveVolume    = errs.Kind("volume must be greater than zero", errs.ErrValidation)
	ErrNegativeValue        = errs.Kind("voucher value must not be negative", errs.ErrValidation)
	ErrInvalidPlate         = errs.Kind("vehicle plate must be AAA9999 or AAA9A99", errs.ErrValidation)
	ErrEmptyDriverName      = errs.Kind("driver name is required", errs.ErrValidation)
	ErrMissingIssuer        = errs.Kind("issuer is required", errs.ErrValidation)
	ErrMissingEstablishment = errs.Kind("voucher must belong to an establishment", errs.ErrValidation)
	ErrInvalidStatus        = errs.Kind("unknown voucher status", errs.ErrValidation)

	ErrVoucherNotFound    = errs.Kind("voucher not found", errs.ErrNotFound)
	ErrAlreadyRedeemed    = errs.Kind("voucher has already been used", errs.ErrAlreadyRedeemed)
	ErrVoucherCancelled   = errs.Kind("voucher was cancelled and can no longer be used", errs.ErrCancelled)
	ErrNotIssued          = errs.Kind("only issued vouchers can be cancelled", errs.ErrInvalidState)
	ErrDeleteIssued       = errs.Kind("issued vouchers must be cancelled or redeemed before deletion", errs.ErrInvalidState)
	ErrCodeSpaceExhausted = errs.Kind("could not generate a unique voucher code", errs.ErrCodeGeneration)
	ErrWrongEstablishment = errs.Kind("voucher belongs to another establishment", errs.ErrForbidden)
)
