package commands

import (
	"context"
	"log/slog"

	"voucher-ledger/internal/domain/auth"
	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/infra"
	"voucher-ledger/internal/pkg/clock"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/pkg/password"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserInactive    = errs.Kind("user inactive", errs.ErrUnauthorized)
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.Kind("token validation failed", errs.ErrUnauthorized)
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, plainPassword)
	if err != nil {
		// malformed input gets the same answer as a wrong password
		return nil, auth.ErrInvalidCredentials
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issuePair(view)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded; only the bookkeeping failed
		a.logger.Warn("failed to update last login", "user_id", view.ID.String(), "error", err.Error())
	}

	return &LoginResult{UserID: view.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role and establishment are re-read so that changes take effect on refresh.
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return a.issuePair(view)
}

func (a *authCommandsImpl) issuePair(view *queries.AuthorizedUserView) (*TokenPair, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	sub := jwt.Subject{
		UserID:          view.ID,
		Name:            view.Name,
		Role:            role,
		EstablishmentID: view.EstablishmentID,
	}

	accessToken, err := a.jwtService.GenerateAccessToken(sub)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(sub)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same error as a password mismatch to avoid user enumeration
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
