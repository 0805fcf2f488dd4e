package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/service"
)

func newTestAuthService() service.AuthService {
	return service.NewAuthService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 30 * time.Minute,
		Issuer:       "jobcoach-test",
	})
}

func TestAuthService_LoginSuccess(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.Login(context.Background(), service.LoginInput{
		Username: "jobcoach",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, domain.RoleCoach, token.User.Role)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "jobcoach",
		Password: "nope",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "stranger",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateIssuedToken(t *testing.T) {
	svc := newTestAuthService()

	token, err := svc.Login(context.Background(), service.LoginInput{
		Username: "admin",
		Password: "admin123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_RejectsGarbageToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	issuer := service.NewAuthService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Minute})
	token, err := issuer.Login(context.Background(), service.LoginInput{
		Username: "jobcoach",
		Password: "password123",
	})
	require.NoError(t, err)

	svc := newTestAuthService()
	_, err = svc.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}
