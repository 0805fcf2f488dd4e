package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/yongxin12/Macrohard/internal/config"
	"github.com/yongxin12/Macrohard/internal/domain"
)

// Claims is the JWT claim set issued at login.
type Claims struct {
	jwt.RegisteredClaims
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// Token is the login response payload.
type Token struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *domain.User `json:"user"`
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService defines the authentication contract. The user set is a fixed
// list seeded at startup; there is no registration surface.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	users map[string]*domain.User
	cfg   config.JWTConfig
}

// NewAuthService creates an AuthService over the built-in demo users.
func NewAuthService(cfg config.JWTConfig) AuthService {
	return &authService{
		users: seedUsers(),
		cfg:   cfg,
	}
}

// seedUsers builds the fixed account list. Hashes are computed at startup.
func seedUsers() map[string]*domain.User {
	users := map[string]*domain.User{}
	for _, u := range []struct {
		id, username, fullName, email, password string
		role                                    domain.UserRole
	}{
		{"user1", "jobcoach", "Job Coach User", "coach@example.com", "password123", domain.RoleCoach},
		{"user2", "admin", "Admin User", "admin@example.com", "admin123", domain.RoleAdmin},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("authService: hashing seed password for %s: %v", u.username, err)
			continue
		}
		users[u.username] = &domain.User{
			ID:           u.id,
			Username:     u.username,
			FullName:     u.fullName,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
	}
	return users
}

func (s *authService) Login(_ context.Context, input LoginInput) (*Token, error) {
	user, ok := s.users[input.Username]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, domain.ErrUserDisabled
	}

	now := time.Now()
	expiry := now.Add(s.cfg.AccessExpiry)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
		Username: user.Username,
		Role:     user.Role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("auth.Login: signing token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiry,
		User:        user,
	}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	if _, ok := s.users[claims.Username]; !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
