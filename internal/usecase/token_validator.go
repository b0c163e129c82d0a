package usecase

import (
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/pkg/jwt"
	"fleetdesk/internal/usecase/shared"
)

// TokenValidator turns a bearer token into the session passed to every command and query.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Session{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Session{}, jwt.ErrInvalidToken
	}

	return shared.NewSession(claims.UserID, role), nil
}
