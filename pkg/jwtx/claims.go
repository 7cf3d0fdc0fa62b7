// Package jwtx handles signing and verification of the service's access
// tokens. Tokens are HMAC-signed (HS256) with a single process-wide secret
// injected at startup.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued token. The expiry claim is
// always exactly this far after the issued-at claim.
const TokenTTL = 24 * time.Hour

// Claims is the payload embedded in an access token.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric id of the authenticated user. The wire key is
	// "subject" (distinct from the registered "sub" claim) to stay
	// compatible with existing token consumers.
	UserID int64 `json:"subject"`

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`

	// RoleName carried for route-level role gating.
	RoleName string `json:"role_name,omitempty"`
}

// NewClaims builds claims for a user with issued-at now and expiry now+ttl.
func NewClaims(userID int64, username, roleName string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   userID,
		Username: username,
		RoleName: roleName,
	}
}

// ValidateExpiry ensures the token hasn't expired. The parser already
// enforces this; this exists for callers holding already-decoded claims.
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt != nil && time.Now().UTC().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
