package request

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest may be empty when the refresh token travels in a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
