package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/middleware"
	"github.com/yongxin12/Macrohard/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestAuthService() service.AuthService {
	return service.NewAuthService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 30 * time.Minute,
		Issuer:       "jobcoach-test",
	})
}

func protectedRouter(authService service.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": middleware.GetUsername(c)})
	})
	return r
}

func TestAuthMiddleware_AcceptsIssuedToken(t *testing.T) {
	authService := newTestAuthService()
	r := protectedRouter(authService)

	token, err := authService.Login(context.Background(), service.LoginInput{
		Username: "jobcoach",
		Password: "password123",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobcoach")
}

func TestAuthMiddleware_RejectsMissingHeader(t *testing.T) {
	r := protectedRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RejectsGarbageToken(t *testing.T) {
	r := protectedRouter(newTestAuthService())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	authService := newTestAuthService()
	r := gin.New()
	r.GET("/open", middleware.OptionalAuth(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": middleware.GetUsername(c)})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":""`)
}

func TestOptionalAuth_AttributesUserWhenTokenPresent(t *testing.T) {
	authService := newTestAuthService()
	r := gin.New()
	r.GET("/open", middleware.OptionalAuth(authService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": middleware.GetUsername(c)})
	})

	token, err := authService.Login(context.Background(), service.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
