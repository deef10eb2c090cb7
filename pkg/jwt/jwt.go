package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors what the dental backend puts into its access tokens.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes the claims of a backend-issued token WITHOUT verifying its
// signature. The dashboard does not hold the signing key; the result is for
// display only and must never be used to authorize anything.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExpiresAt returns the exp claim of tokenString, or nil when the token is
// opaque or carries no expiry.
func ExpiresAt(tokenString string) *time.Time {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	exp := claims.ExpiresAt.Time
	return &exp
}
