package bootstrap

import (
	"time"

	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"
	"voucher-ledger/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}

	refreshTokenDuration, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration), nil
}
