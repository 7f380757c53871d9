package response

import (
	"time"

	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	EstablishmentID *uuid.UUID `json:"establishment_id,omitempty"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:              v.ID,
		Email:           v.Email,
		Name:            v.Name,
		Role:            v.Role,
		EstablishmentID: v.EstablishmentID,
		LastLogin:       v.LastLogin,
	}
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
