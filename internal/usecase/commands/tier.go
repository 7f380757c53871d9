package commands

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/tier"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddTierInput struct {
	EstablishmentID uuid.UUID
	Name            string
	MinVolume       decimal.Decimal
	Value           decimal.Decimal
}

type TierCommands interface {
	Add(ctx context.Context, actor shared.Actor, in AddTierInput) (uuid.UUID, error)
	// Update applies a partial change. Issued vouchers keep their frozen value.
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p tier.Patch) error
}

type tierCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewTierCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) TierCommands {
	return &tierCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *tierCommandsImpl) Add(ctx context.Context, actor shared.Actor, in AddTierInput) (uuid.UUID, error) {
	if !actor.Role.CanAdminister() {
		return uuid.Nil, ErrAdminOnly
	}

	t, err := tier.NewTier(in.EstablishmentID, in.Name, in.MinVolume, in.Value, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Establishments().Exists(ctx, in.EstablishmentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnknownEstablishment
		}
		return tx.Tiers().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("tier created",
		"tier_id", t.ID().String(),
		"establishment_id", in.EstablishmentID.String(),
		"min_volume", t.MinVolume().String(),
		"value", t.Value().String())
	return t.ID(), nil
}

func (uc *tierCommandsImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, p tier.Patch) error {
	if !actor.Role.CanAdminister() {
		return ErrAdminOnly
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := tx.Tiers().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return tier.ErrTierNotFound
			}
			return err
		}

		changed, err := t.Apply(p, uc.clock.Now())
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		return tx.Tiers().Update(ctx, t)
	})
}
