// Package jwt wraps token issuance and claim extraction around
// go-chi/jwtauth. Tokens carry the employee ID as subject plus a role
// claim; downstream authorization reads both from the request context.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("missing token claims")

type Service struct {
	auth             *jwtauth.JWTAuth
	accessExpiration time.Duration
}

func NewService(secret, accessExpiration string) (*Service, error) {
	exp, err := time.ParseDuration(accessExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access expiration: %w", err)
	}

	return &Service{
		auth:             jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		accessExpiration: exp,
	}, nil
}

// JWTAuth exposes the underlying verifier for router middleware.
func (s *Service) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

// GenerateAccessToken issues a signed access token for an employee.
func (s *Service) GenerateAccessToken(employeeID string, role user.Role) (string, error) {
	now := time.Now()
	claims := map[string]interface{}{
		"sub":  employeeID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessExpiration).Unix(),
	}

	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode access token: %w", err)
	}

	return tokenString, nil
}

// EmployeeIDFromContext returns the authenticated employee ID from the
// verified token in the request context.
func EmployeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingClaims
	}

	return sub, nil
}

// RoleFromContext returns the authenticated user's role claim.
func RoleFromContext(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token claims: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", ErrMissingClaims
	}

	return user.Role(role), nil
}
