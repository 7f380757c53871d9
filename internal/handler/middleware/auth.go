package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/pkg/cookie"
	"voucher-ledger/internal/usecase"
	"voucher-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxActorKey = "actor"
	ctxClaimKey = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Access token required", nil)
			return
		}

		actor, err := m.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Roles are not ordered, so the
// allowed ones are listed explicitly.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, nil, "Internal server error", nil)
			return
		}

		if !slices.Contains(roles, actor.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, httperr.CodeForbidden, nil, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
	claims := map[string]any{
		"user_id": actor.UserID.String(),
		"role":    actor.Role.String(),
	}
	if actor.EstablishmentID != nil {
		claims["establishment_id"] = actor.EstablishmentID.String()
	}
	c.Set(ctxClaimKey, claims)
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}
