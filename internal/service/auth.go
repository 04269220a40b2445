package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"khalti-storefront-demo/internal/apperr"
	"khalti-storefront-demo/internal/client"
	"khalti-storefront-demo/internal/dto"
	"khalti-storefront-demo/internal/model"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	// SignOut exists for surface symmetry; session tokens are stateless, so
	// the server has nothing to revoke and the client just discards its copy.
	SignOut(ctx context.Context) error
	ParseToken(token string) (*model.User, error)
}

type authServiceImpl struct {
	identity  client.IdentityClient
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(identity client.IdentityClient, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authServiceImpl{
		identity:  identity,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *authServiceImpl) SignUp(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("identity sign up: %w", err)
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) SignIn(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}

	user, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("identity sign in: %w", err)
	}

	return s.issueToken(user)
}

func (s *authServiceImpl) SignOut(ctx context.Context) error {
	return nil
}

func (s *authServiceImpl) ParseToken(token string) (*model.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, fmt.Errorf("session token missing subject")
	}

	return &model.User{Email: claims.Subject}, nil
}

func (s *authServiceImpl) issueToken(user *model.User) (*dto.AuthResponse, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &dto.AuthResponse{
		Email: user.Email,
		Token: signed,
	}, nil
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return &apperr.ValidationError{Field: "email", Reason: "is malformed"}
	}
	if password == "" {
		return &apperr.ValidationError{Field: "password", Reason: "must not be empty"}
	}
	return nil
}
