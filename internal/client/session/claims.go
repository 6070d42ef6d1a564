package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim of a JWT bearer token without verifying
// the signature. The result is informational only; the backend remains the
// sole judge of validity. ok is false for opaque or exp-less tokens.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
