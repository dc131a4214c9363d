package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kelola-hr/leave-ledger-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc, err := NewService("test-secret", "1h")
	require.NoError(t, err)

	tokenString, err := svc.GenerateAccessToken("emp-123", user.RoleManager)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	employeeID, err := EmployeeIDFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "emp-123", employeeID)

	role, err := RoleFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.RoleManager, role)
}

func TestNewService_InvalidExpiration(t *testing.T) {
	_, err := NewService("test-secret", "soon")
	assert.Error(t, err)
}

func TestClaimsFromEmptyContext(t *testing.T) {
	_, err := EmployeeIDFromContext(context.Background())
	assert.Error(t, err)
}
