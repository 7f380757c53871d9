package commands

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/domain/voucher"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/usecase/shared"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrIssueForbidden       = errs.Kind("role may not issue vouchers", errs.ErrForbidden)
	ErrRedeemForbidden      = errs.Kind("role may not redeem vouchers", errs.ErrForbidden)
	ErrAdminOnly            = errs.Kind("administrator role required", errs.ErrForbidden)
	ErrCustomValueRequired  = errs.Kind("custom vouchers need a value greater than zero", errs.ErrValidation)
	ErrCustomWithTier       = errs.Kind("a voucher takes either a tier or a custom value, not both", errs.ErrValidation)
	ErrEstablishmentMissing = errs.Kind("establishment is required", errs.ErrValidation)
	ErrUnknownTier          = errs.Kind("tier does not exist", errs.ErrValidation)
	ErrUnknownEstablishment = errs.Kind("establishment does not exist", errs.ErrValidation)
)

type IssueVoucherInput struct {
	Volume        decimal.Decimal
	VehiclePlate  string
	DriverName    string
	ReceiptNumber *string
	// EstablishmentID is required unless TierID is given, in which case it
	// must match the tier's establishment when present.
	EstablishmentID *uuid.UUID
	TierID          *uuid.UUID
	// CustomValue switches to custom mode: no tier lookup, explicit value.
	CustomValue *decimal.Decimal
}

type IssueVoucherResult struct {
	VoucherID uuid.UUID
	Code      voucher.Code
}

type RedeemVoucherResult struct {
	VoucherID uuid.UUID
}

type VoucherCommands interface {
	Issue(ctx context.Context, actor shared.Actor, in IssueVoucherInput) (*IssueVoucherResult, error)
	Redeem(ctx context.Context, actor shared.Actor, code string) (*RedeemVoucherResult, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error
	Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type voucherCommandsImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	codes       voucher.CodeGenerator
	maxAttempts uint
	logger      *slog.Logger
}

func NewVoucherCommands(uow shared.UnitOfWork, clk clock.Clock, codes voucher.CodeGenerator, cfg config.LedgerConfig, logger *slog.Logger) VoucherCommands {
	attempts := cfg.CodeMaxAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &voucherCommandsImpl{
		uow:         uow,
		clock:       clk,
		codes:       codes,
		maxAttempts: attempts,
		logger:      logger,
	}
}

func (uc *voucherCommandsImpl) Issue(ctx context.Context, actor shared.Actor, in IssueVoucherInput) (*IssueVoucherResult, error) {
	if !actor.Role.CanIssue() {
		return nil, ErrIssueForbidden
	}

	params := voucher.IssueParams{
		Volume:        in.Volume,
		VehiclePlate:  in.VehiclePlate,
		DriverName:    in.DriverName,
		ReceiptNumber: in.ReceiptNumber,
		IssuerID:      actor.UserID,
		IssuerName:    actor.Name,
	}

	// Pricing runs once. Each code attempt below gets its own transaction
	// because a unique violation aborts the surrounding one.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.price(ctx, tx, in, &params)
	})
	if err != nil {
		return nil, err
	}
	if err := voucher.ValidateIssue(params); err != nil {
		return nil, err
	}

	var issued *voucher.Voucher
	err = retry.Do(
		func() error {
			code, cerr := uc.codes.Next()
			if cerr != nil {
				return cerr
			}
			params.Code = code
			v, verr := voucher.Issue(params, uc.clock.Now())
			if verr != nil {
				return verr
			}
			return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.Vouchers().Create(ctx, v); err != nil {
					return err
				}
				issued = v
				return nil
			})
		},
		retry.Context(ctx),
		retry.Attempts(uc.maxAttempts),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return infra.IsKind(err, infra.KindDuplicateKey)
		}),
		retry.OnRetry(func(n uint, err error) {
			uc.logger.Warn("voucher code collision",
				"attempt", n+1,
				"max_attempts", uc.maxAttempts,
				"code", params.Code.String())
		}),
	)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			uc.logger.Error("voucher code generation exhausted",
				"attempts", uc.maxAttempts,
				"issuer_id", actor.UserID.String(),
				"establishment_id", params.EstablishmentID.String())
			return nil, errs.Mark(errs.Wrap(err, "issue voucher"), voucher.ErrCodeSpaceExhausted)
		}
		return nil, err
	}

	uc.logger.Info("voucher issued",
		"voucher_id", issued.ID().String(),
		"code", issued.Code().String(),
		"value", issued.Value().String(),
		"issuer_id", actor.UserID.String())

	return &IssueVoucherResult{VoucherID: issued.ID(), Code: issued.Code()}, nil
}

// price fills the establishment, tier and value of params.
func (uc *voucherCommandsImpl) price(ctx context.Context, tx shared.Tx, in IssueVoucherInput, params *voucher.IssueParams) error {
	if in.CustomValue != nil {
		if in.TierID != nil {
			return ErrCustomWithTier
		}
		if !in.CustomValue.IsPositive() {
			return ErrCustomValueRequired
		}
		estID, err := uc.requireEstablishment(ctx, tx, in.EstablishmentID)
		if err != nil {
			return err
		}
		params.EstablishmentID = estID
		params.Value = *in.CustomValue
		return nil
	}

	if !in.Volume.IsPositive() {
		return voucher.ErrNonPositiveVolume
	}

	if in.TierID != nil {
		t, err := tx.Tiers().FindByID(ctx, *in.TierID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUnknownTier
			}
			return err
		}
		if in.EstablishmentID != nil && *in.EstablishmentID != t.EstablishmentID() {
			return tier.ErrEstablishmentMismatch
		}
		if !t.IsActive() {
			return tier.ErrTierInactive
		}
		if !t.Admits(in.Volume) {
			return tier.ErrVolumeBelowTier
		}
		params.EstablishmentID = t.EstablishmentID()
		params.TierID = ptr(t.ID())
		params.Value = t.Value()
		return nil
	}

	estID, err := uc.requireEstablishment(ctx, tx, in.EstablishmentID)
	if err != nil {
		return err
	}
	tiers, err := tx.Tiers().ListActive(ctx, estID)
	if err != nil {
		return err
	}
	t, ok := tier.Resolve(in.Volume, tiers)
	if !ok {
		return tier.ErrNoEligibleTier
	}
	params.EstablishmentID = estID
	params.TierID = ptr(t.ID())
	params.Value = t.Value()
	return nil
}

func (uc *voucherCommandsImpl) requireEstablishment(ctx context.Context, tx shared.Tx, id *uuid.UUID) (uuid.UUID, error) {
	if id == nil || *id == uuid.Nil {
		return uuid.Nil, ErrEstablishmentMissing
	}
	ok, err := tx.Establishments().Exists(ctx, *id)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, ErrUnknownEstablishment
	}
	return *id, nil
}

func (uc *voucherCommandsImpl) Redeem(ctx context.Context, actor shared.Actor, rawCode string) (*RedeemVoucherResult, error) {
	if !actor.Role.CanRedeem() {
		return nil, ErrRedeemForbidden
	}
	code := voucher.NormalizeCode(rawCode)

	var redeemedID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := findByCode(ctx, tx, code)
		if err != nil {
			return err
		}
		if !actor.OwnsEstablishment(v.EstablishmentID()) {
			return voucher.ErrWrongEstablishment
		}
		if err := v.Redeem(actor.UserID, uc.clock.Now()); err != nil {
			return err
		}

		ok, err := tx.Vouchers().TransitionFrom(ctx, v, voucher.StatusIssued)
		if err != nil {
			return err
		}
		if !ok {
			// someone else settled it between our read and the update
			current, err := findByCode(ctx, tx, code)
			if err != nil {
				return err
			}
			if rerr := current.RedemptionError(); rerr != nil {
				return rerr
			}
			return voucher.ErrAlreadyRedeemed
		}
		redeemedID = v.ID()
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrAlreadyRedeemed) || errs.Is(err, errs.ErrCancelled) {
			uc.logger.Info("voucher redemption refused",
				"code", code.String(),
				"redeemer_id", actor.UserID.String(),
				"reason", err.Error())
		}
		return nil, err
	}

	uc.logger.Info("voucher redeemed",
		"voucher_id", redeemedID.String(),
		"code", code.String(),
		"redeemer_id", actor.UserID.String())

	return &RedeemVoucherResult{VoucherID: redeemedID}, nil
}

func (uc *voucherCommandsImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !actor.Role.CanAdminister() {
		return ErrAdminOnly
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := v.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		ok, err := tx.Vouchers().TransitionFrom(ctx, v, voucher.StatusIssued)
		if err != nil {
			return err
		}
		if !ok {
			return voucher.ErrNotIssued
		}
		return nil
	})
}

func (uc *voucherCommandsImpl) Delete(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !actor.Role.CanAdminister() {
		return ErrAdminOnly
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := v.CanDelete(); err != nil {
			return err
		}
		ok, err := tx.Vouchers().SoftDelete(ctx, id, uc.clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			// settled vouchers never return to issued, so a miss means a concurrent delete
			return voucher.ErrVoucherNotFound
		}
		return nil
	})
}

func findByCode(ctx context.Context, tx shared.Tx, code voucher.Code) (*voucher.Voucher, error) {
	v, err := tx.Vouchers().FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, voucher.ErrVoucherNotFound
		}
		return nil, err
	}
	return v, nil
}

func findByID(ctx context.Context, tx shared.Tx, id uuid.UUID) (*voucher.Voucher, error) {
	v, err := tx.Vouchers().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, voucher.ErrVoucherNotFound
		}
		return nil, err
	}
	return v, nil
}

func ptr[T any](v T) *T { return &v }
