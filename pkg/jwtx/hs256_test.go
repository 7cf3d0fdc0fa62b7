package jwtx_test

import (
	"testing"
	"time"

	"github.com/campuskit/rollcall/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewHS256(t *testing.T) {
	t.Run("rejects empty secret", func(t *testing.T) {
		_, err := jwtx.NewHS256(nil)
		require.ErrorIs(t, err, jwtx.ErrEmptySecret)
	})

	t.Run("accepts a secret", func(t *testing.T) {
		s, err := jwtx.NewHS256([]byte("keep it secret, keep it safe"))
		require.NoError(t, err)
		require.Equal(t, "HS256", s.Alg())
	})
}

func TestSignVerifyRoundTrip(t *testing.T) {
	h, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := jwtx.NewClaims(42, "sue", "instructor", jwtx.TokenTTL, now)

	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), decoded.UserID)
	require.Equal(t, "sue", decoded.Username)
	require.Equal(t, "instructor", decoded.RoleName)

	// Expiry is exactly TokenTTL after issuance.
	require.Equal(t, jwtx.TokenTTL,
		decoded.ExpiresAt.Time.Sub(decoded.IssuedAt.Time))
}

func TestVerifyFailures(t *testing.T) {
	h, err := jwtx.NewHS256([]byte("the-right-secret"))
	require.NoError(t, err)

	t.Run("expired token", func(t *testing.T) {
		issued := time.Now().UTC().Add(-25 * time.Hour)
		claims := jwtx.NewClaims(1, "bob", "student", jwtx.TokenTTL, issued)

		token, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("a-different-secret"))
		require.NoError(t, err)

		claims := jwtx.NewClaims(1, "bob", "student", jwtx.TokenTTL, time.Now().UTC())
		token, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := h.Verify("definitely.not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := h.Verify("")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("tampered payload", func(t *testing.T) {
		claims := jwtx.NewClaims(1, "bob", "student", jwtx.TokenTTL, time.Now().UTC())
		token, err := h.Sign(claims)
		require.NoError(t, err)

		_, err = h.Verify(token + "x")
		require.Error(t, err)
	})
}
