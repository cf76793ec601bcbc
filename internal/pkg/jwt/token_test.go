package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, Claims{
		Email: "admin@rideflex.test",
		Roles: []string{"Admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	claims, err := Parse(token)

	require.NoError(t, err)
	assert.Equal(t, "admin@rideflex.test", claims.Email)
	assert.Equal(t, []string{"Admin"}, claims.Roles)
	assert.Equal(t, "u1", claims.Subject)
	assert.True(t, exp.Equal(claims.ExpiresAt.Time))
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{
			name:     "Future expiry",
			token:    signToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}),
			expected: false,
		},
		{
			name:     "Past expiry",
			token:    signToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))}),
			expected: true,
		},
		{
			name:     "No expiry claim",
			token:    signToken(t, jwt.RegisteredClaims{Subject: "u1"}),
			expected: false,
		},
		{
			name:     "Opaque token",
			token:    "not-a-jwt",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsExpired(tt.token, now))
		})
	}
}

func TestExpiresAt_Errors(t *testing.T) {
	_, err := ExpiresAt(signToken(t, jwt.RegisteredClaims{Subject: "u1"}))
	assert.ErrorIs(t, err, ErrNoExpiry)

	_, err = ExpiresAt("garbage")
	assert.Error(t, err)
}
