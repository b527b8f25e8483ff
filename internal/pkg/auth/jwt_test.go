package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "coursecraft.test",
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("user_1", "t@test.test")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.UserID)
	assert.Equal(t, "t@test.test", claims.Email)
}

func TestJWTService_Errors(t *testing.T) {
	svc := newTestService(time.Hour)
	expired := newTestService(-time.Minute)
	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})

	expiredToken, _, err := expired.GenerateAccessToken("user_1", "t@test.test")
	require.NoError(t, err)
	foreignToken, _, err := other.GenerateAccessToken("user_1", "t@test.test")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrInvalidToken},
		{name: "malformed", token: "lmaooolol", wantErr: ErrInvalidFormat},
		{name: "expired", token: expiredToken, wantErr: ErrExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAndExtractClaims(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := svc.ValidateAndExtractClaims(foreignToken)
		assert.Error(t, err)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearerToken("  ")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
