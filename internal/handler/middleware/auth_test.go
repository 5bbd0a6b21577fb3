//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"hotel-folio/internal/domain/operator"
	"hotel-folio/internal/handler/middleware"
	"hotel-folio/internal/pkg/jwt"
	"hotel-folio/tests/common/authtest"
	"hotel-folio/tests/common/httptest"
	usecasemock "hotel-folio/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	auth := middleware.NewAuthMiddleware(s.mockValidator)

	whoami := func(c *gin.Context) {
		op, ok := middleware.GetOperator(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": op.Name(), "role": op.Role().String()})
	}
	s.router.GET("/read", auth.RequireAuth(), whoami)
	s.router.POST("/write", auth.RequireAuth(), auth.RequireWriter(), whoami)
	s.router.POST("/unauthenticated-write", auth.RequireWriter(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: operator is available to handlers", func() {
		op := authtest.NewOperator(s.T(), "Asha", operator.RoleManager)
		s.mockValidator.EXPECT().ValidateToken("good").Return(op, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "good")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Asha", body["name"])
		s.Equal("manager", body["role"])
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on rejected token", func() {
		s.mockValidator.EXPECT().ValidateToken("stale").Return(operator.Operator{}, jwt.ErrExpiredToken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/read", nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireWriter() {
	cases := []struct {
		role       operator.Role
		expectCode int
	}{
		{operator.RoleFrontDesk, http.StatusOK},
		{operator.RoleManager, http.StatusOK},
		{operator.RoleAuditor, http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run(tc.role.String(), func() {
			op := authtest.NewOperator(s.T(), "Asha", tc.role)
			s.mockValidator.EXPECT().ValidateToken("token").Return(op, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/write", nil, "token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 500 when auth did not run", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/unauthenticated-write", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
