package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"referee-scheduler-backend/internal/auth"
	"referee-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	service    *auth.AuthService
	middleware *auth.AuthMiddleware
	router     *gin.Engine
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	svc, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: "test-secret-key-for-referee-scheduler",
		Issuer:    "referee-scheduler-backend",
		TokenTTL:  time.Hour,
	})
	s.Require().NoError(err)
	s.service = svc
	s.middleware = auth.NewAuthMiddleware(svc)

	s.router = gin.New()
	protected := s.router.Group("/", s.middleware.RequireAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		actor, ok := auth.GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": actor.Role})
	})
	protected.GET("/admin", s.middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func (s *AuthMiddlewareTestSuite) request(path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *AuthMiddlewareTestSuite) tokenFor(refereeID *uuid.UUID, role string) string {
	token, err := s.service.GenerateJWT("user-123", refereeID, role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestMissingHeader() {
	recorder := s.request("/whoami", "")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestMalformedHeader() {
	recorder := s.request("/whoami", "Token abc123")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestInvalidToken() {
	recorder := s.request("/whoami", "Bearer not-a-real-token")
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestValidTokenSetsActor() {
	refereeID := uuid.New()
	recorder := s.request("/whoami", "Bearer "+s.tokenFor(&refereeID, service.RoleReferee))
	s.Equal(http.StatusOK, recorder.Code)
	s.Contains(recorder.Body.String(), service.RoleReferee)
}

func (s *AuthMiddlewareTestSuite) TestRequireAdminRejectsReferee() {
	refereeID := uuid.New()
	recorder := s.request("/admin", "Bearer "+s.tokenFor(&refereeID, service.RoleReferee))
	s.Equal(http.StatusForbidden, recorder.Code)
}

func (s *AuthMiddlewareTestSuite) TestRequireAdminAllowsAdmin() {
	recorder := s.request("/admin", "Bearer "+s.tokenFor(nil, service.RoleAdmin))
	s.Equal(http.StatusOK, recorder.Code)
}
