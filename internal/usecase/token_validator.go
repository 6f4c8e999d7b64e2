package usecase

import (
	"request-market/internal/domain/user"
	"request-market/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity carries the validated claims the middleware places in the request
// context. CountryCode scopes every marketplace operation.
type Identity struct {
	UserID      uuid.UUID
	Role        user.Role
	CountryCode string
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
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		UserID:      claims.UserID,
		Role:        role,
		CountryCode: claims.CountryCode,
	}, nil
}
