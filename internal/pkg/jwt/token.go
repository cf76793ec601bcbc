package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrNoExpiry is returned when a token carries no exp claim
var ErrNoExpiry = errors.New("token has no expiry")

// Claims are the claims the console reads from a backend token.
// The signature is never verified here; the backend stays the authority.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Parse decodes token claims without verifying the signature
func Parse(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of token
func ExpiresAt(token string) (time.Time, error) {
	claims, err := Parse(token)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// IsExpired reports whether token is known to be expired at now.
// Opaque or exp-less tokens are not considered expired.
func IsExpired(token string, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
