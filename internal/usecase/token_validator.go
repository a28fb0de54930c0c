package usecase

import (
	"venue-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity carries the authenticated caller's id and role flags through
// the request context.
type Identity struct {
	UserID   uuid.UUID
	IsAdmin  bool
	IsWorker bool
}

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:   claims.UserID,
		IsAdmin:  claims.IsAdmin,
		IsWorker: claims.IsWorker,
	}, nil
}
