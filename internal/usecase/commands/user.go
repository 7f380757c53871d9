package commands

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/password"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.Kind("email already registered", errs.ErrValidation)

type ProvisionUserInput struct {
	Email           string
	Password        string
	Name            string
	Role            string
	EstablishmentID *uuid.UUID
}

// UserCommands is used by operator tooling only; the HTTP API never creates users.
type UserCommands interface {
	Provision(ctx context.Context, in ProvisionUserInput) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *userCommandsImpl) Provision(ctx context.Context, in ProvisionUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hashed, err := password.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(email, hashed, in.Name, role, in.EstablishmentID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if estID := u.EstablishmentID(); estID != nil {
			ok, err := tx.Establishments().Exists(ctx, *estID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrUnknownEstablishment
			}
		}
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("user provisioned", "user_id", u.ID().String(), "role", role.String())
	return u.ID(), nil
}
