package request

import (
	"venue-scheduler/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is the body fallback for clients that cannot send the
// refresh cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
