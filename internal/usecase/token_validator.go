package usecase

import (
	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (operator.Operator, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (operator.Operator, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return operator.Operator{}, err
	}
	return claims.Operator()
}
