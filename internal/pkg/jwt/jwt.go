package jwt

import (
	"errors"
	"time"

	"hotel-folio/internal/domain/operator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is stamped on every operator token and required on validation.
const Issuer = "hotel-folio"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims identify the desk operator a token was issued to.
type Claims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	jwt.RegisteredClaims
}

// Operator converts validated claims into the acting operator.
func (c *Claims) Operator() (operator.Operator, error) {
	role, err := operator.NewRole(c.Role)
	if err != nil {
		return operator.Operator{}, err
	}
	return operator.New(c.OperatorID, c.Name, role)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(Issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *Service) GenerateToken(op operator.Operator) (string, error) {
	now := time.Now()
	claims := Claims{
		OperatorID: op.ID(),
		Name:       op.Name(),
		Role:       op.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   op.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
