//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", time.Minute, time.Hour)
	estID := uuid.New()
	sub := jwt.Subject{
		UserID:          uuid.New(),
		Name:            "Posto Central",
		Role:            user.RoleEstablishment,
		EstablishmentID: &estID,
	}

	t.Run("access token round trip keeps identity", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(sub)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, sub.UserID, claims.UserID)
		assert.Equal(t, "establishment", claims.Role)
		assert.Equal(t, sub.Name, claims.Name)
		require.NotNil(t, claims.EstablishmentID)
		assert.Equal(t, estID, *claims.EstablishmentID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is typed", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(sub)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := jwt.NewService("other", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(sub)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(sub)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
