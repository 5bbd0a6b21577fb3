//go:build unit

package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/pkg/config"
	"hotel-folio/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperator(t *testing.T) {
	fixedID := uuid.MustParse("7b0f3c1e-2a44-4f6e-9d1a-3c5b8e2f6a10")

	tests := []struct {
		name    string
		args    []string
		want    func(t *testing.T, op operator.Operator)
		errIs   error
		wantErr bool
	}{
		{
			name: "defaults to front desk with a random id",
			args: []string{"-name", "Asha"},
			want: func(t *testing.T, op operator.Operator) {
				assert.Equal(t, "Asha", op.Name())
				assert.Equal(t, operator.RoleFrontDesk, op.Role())
				assert.NotEqual(t, uuid.Nil, op.ID())
			},
		},
		{
			name: "explicit id and role",
			args: []string{"-name", "Ravi", "-role", "auditor", "-id", fixedID.String()},
			want: func(t *testing.T, op operator.Operator) {
				assert.Equal(t, fixedID, op.ID())
				assert.Equal(t, operator.RoleAuditor, op.Role())
				assert.False(t, op.Role().CanWrite())
			},
		},
		{name: "unknown role", args: []string{"-name", "Asha", "-role", "housekeeping"}, errIs: operator.ErrInvalidRole},
		{name: "missing name", args: []string{"-role", "manager"}, errIs: operator.ErrEmptyName},
		{name: "malformed id", args: []string{"-name", "Asha", "-id", "42"}, wantErr: true},
		{name: "unknown flag", args: []string{"-name", "Asha", "-password", "x"}, wantErr: true},
		{name: "stray argument", args: []string{"-name", "Asha", "extra"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := parseOperator(tt.args, io.Discard)

			switch {
			case tt.errIs != nil:
				require.ErrorIs(t, err, tt.errIs)
			case tt.wantErr:
				require.Error(t, err)
			default:
				require.NoError(t, err)
				tt.want(t, op)
			}
		})
	}
}

func TestIssue(t *testing.T) {
	cfg := config.NewTestConfig()
	op, err := parseOperator([]string{"-name", "Asha", "-role", "manager"}, io.Discard)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, issue(cfg, op, &out))

	token := strings.TrimSuffix(out.String(), "\n")
	require.NotEmpty(t, token)
	assert.NotContains(t, token, "\n")

	claims, err := jwt.NewService(cfg.JWT.Secret, 0).ValidateToken(token)
	require.NoError(t, err)
	got, err := claims.Operator()
	require.NoError(t, err)
	assert.Equal(t, op, got)

	t.Run("rejects a bad token duration", func(t *testing.T) {
		bad := config.NewTestConfig()
		bad.JWT.Duration = "forever"
		assert.Error(t, issue(bad, op, io.Discard))
	})
}
