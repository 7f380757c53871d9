//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, access time.Duration) *jwt.Service {
	t.Helper()
	if access == 0 {
		var err error
		access, err = time.ParseDuration(h.cfg.AccessTokenDuration)
		require.NoError(t, err)
	}
	refreshDuration, err := time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, access, refreshDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, sub jwt.Subject) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAccessToken(sub)
	require.NoError(t, err)
	return token
}

// TokenFor issues an access token for a fresh user id with the given role.
func (h *JWTHelper) TokenFor(t *testing.T, role user.Role, establishmentID *uuid.UUID) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	return h.GenerateToken(t, jwt.Subject{
		UserID:          userID,
		Name:            role.String() + " user",
		Role:            role,
		EstablishmentID: establishmentID,
	}), userID
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAccessToken(jwt.Subject{UserID: userID, Name: "expired", Role: role})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
