//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperator(t *testing.T, role operator.Role) operator.Operator {
	t.Helper()
	op, err := operator.New(uuid.New(), "Asha", role)
	require.NoError(t, err)
	return op
}

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	op := newOperator(t, operator.RoleFrontDesk)

	token, err := svc.GenerateToken(op)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, op.ID(), claims.OperatorID)
	assert.Equal(t, op.ID().String(), claims.Subject)
	assert.Equal(t, jwt.Issuer, claims.Issuer)

	got, err := claims.Operator()
	require.NoError(t, err)
	assert.Equal(t, op, got)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	op := newOperator(t, operator.RoleAuditor)

	t.Run("expired", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(op)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Hour).GenerateToken(op)
		require.NoError(t, err)

		_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
			OperatorID: op.ID(),
			Name:       op.Name(),
			Role:       op.Role().String(),
		}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			OperatorID: op.ID(),
			Name:       op.Name(),
			Role:       op.Role().String(),
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "channel-manager",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other HMAC size", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, jwt.Claims{
			OperatorID: op.ID(),
			Role:       op.Role().String(),
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    jwt.Issuer,
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestClaims_Operator_RejectsUnknownRole(t *testing.T) {
	c := &jwt.Claims{OperatorID: uuid.New(), Name: "Asha", Role: "night_auditor"}
	_, err := c.Operator()
	assert.ErrorIs(t, err, operator.ErrInvalidRole)
}
