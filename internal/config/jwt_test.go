package config

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "admin", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestValidateTokenRejects(t *testing.T) {
	good, err := GenerateToken("secret", "admin", "admin", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken("secret", "admin", "admin", -time.Minute)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{Username: "admin", Role: "admin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]struct {
		secret string
		token  string
	}{
		"wrong secret": {secret: "other", token: good},
		"expired":      {secret: "secret", token: expired},
		"alg none":     {secret: "secret", token: unsigned},
		"garbage":      {secret: "secret", token: "a.b.c"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMissingSecret(t *testing.T) {
	_, err := GenerateToken("", "admin", "admin", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = ValidateToken("", "x")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
