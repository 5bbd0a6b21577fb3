//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/pkg/config"
	"hotel-folio/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func NewOperator(t *testing.T, name string, role operator.Role) operator.Operator {
	t.Helper()
	op, err := operator.New(uuid.New(), name, role)
	require.NoError(t, err)
	return op
}

func (h *JWTHelper) GenerateToken(t *testing.T, op operator.Operator) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(op)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, op operator.Operator) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(op)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
