package usecase

import (
	"parkpass/internal/domain/auth"
	"parkpass/internal/pkg/jwt"
)

// TokenValidator provides bearer token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Actor{}, err
	}

	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return auth.Actor{}, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return auth.Actor{}, jwt.ErrInvalidToken
	}

	actor := auth.Actor{ID: userID, Role: role}
	if role == auth.RoleOperator {
		actor.Lots = claims.Lots
	}
	return actor, nil
}
