package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry_ReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := signToken(t, jwt.RegisteredClaims{Subject: "1"})

	_, ok := TokenExpiry(token)
	assert.False(t, ok)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("jwt_token_placeholder")
	assert.False(t, ok)
}
