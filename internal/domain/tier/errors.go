package tier

import "voucher-ledger/internal/pkg/errs"

var (
	ErrEmptyName             = errs.Kind("tier name is required", errs.ErrValidation)
	ErrNegativeMinVolume     = errs.Kind("tier minimum volume must not be negative", errs.ErrValidation)
	ErrNegativeValue         = errs.Kind("tier value must not be negative", errs.ErrValidation)
	ErrMissingEstablishment  = errs.Kind("tier must belong to an establishment", errs.ErrValidation)
	ErrTierNotFound          = errs.Kind("tier not found", errs.ErrNotFound)
	ErrNoEligibleTier        = errs.Kind("volume does not qualify for any active tier", errs.ErrIneligible)
	ErrTierInactive          = errs.Kind("tier is not active", errs.ErrIneligible)
	ErrVolumeBelowTier       = errs.Kind("volume is below the tier minimum", errs.ErrIneligible)
	ErrEstablishmentMismatch = errs.Kind("tier belongs to a different establishment", errs.ErrValidation)
)
