package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestNewAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "standard", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), tok.Exp, 5*time.Second)

	claims, err := VerifyAccessToken(testSecret, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "standard", claims.Role)
}

func TestVerifyAccessToken_Failures(t *testing.T) {
	good, err := NewAccessToken(testSecret, 7, "admin", 60)
	require.NoError(t, err)
	expired, err := NewAccessToken(testSecret, 7, "admin", -1)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{name: "wrong secret", secret: "other-secret", raw: good.Token},
		{name: "expired token", secret: testSecret, raw: expired.Token},
		{name: "corrupted signature", secret: testSecret, raw: good.Token + "x"},
		{name: "garbage", secret: testSecret, raw: "not.a.jwt"},
		{name: "empty", secret: testSecret, raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyAccessToken(tt.secret, tt.raw)
			// Every failure mode collapses into the same opaque error, so
			// callers cannot distinguish expired from forged.
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
