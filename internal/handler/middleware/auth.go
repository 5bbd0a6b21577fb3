package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/handler/httperr"
	"hotel-folio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxOperatorKey = "operator"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
			return
		}

		op, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(ctxOperatorKey, op)
		c.Set(ctxClaimsKey, map[string]any{
			"operator_id": op.ID().String(),
			"operator":    op.Name(),
			"role":        op.Role().String(),
		})
		c.Next()
	}
}

// RequireWriter rejects operators whose role is read-only. Must run after RequireAuth.
func (m *AuthMiddleware) RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		op, ok := GetOperator(c)
		if !ok {
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !op.Role().CanWrite() {
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func GetOperator(c *gin.Context) (operator.Operator, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return operator.Operator{}, false
	}
	op, ok := v.(operator.Operator)
	return op, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
