package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
)

func newTestAuth(duration time.Duration) AuthService {
	return NewAuthService(config.ServerApp{
		TokenSignKey:  "secret",
		TokenIssuer:   "objsync",
		TokenDuration: duration,
	}, logger.Nop())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(time.Hour)

	token, err := auth.CreateToken(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", token.AccountID)
	assert.NotEmpty(t, token.String())

	parsed, err := auth.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "acc-1", parsed.AccountID)
}

func TestAuthService_CreateToken_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestAuth(time.Hour).CreateToken(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = newTestAuth(0).CreateToken(ctx, "acc-1")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(time.Hour)

	other := NewAuthService(config.ServerApp{TokenSignKey: "other", TokenIssuer: "objsync", TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.CreateToken(ctx, "acc-1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "signed with another key", token: foreign.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
