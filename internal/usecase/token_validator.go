package usecase

import (
	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/pkg/jwt"
	"voucher-ledger/internal/usecase/shared"
)

// TokenValidator turns an access token into the caller identity for middleware.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAccessToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{
		UserID:          claims.UserID,
		Name:            claims.Name,
		Role:            role,
		EstablishmentID: claims.EstablishmentID,
	}, nil
}
