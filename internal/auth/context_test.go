package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessTokenContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := WithAccessToken(context.Background(), "ya29.token")
		token, ok := AccessTokenFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "ya29.token", token)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := AccessTokenFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("empty token reads as absent", func(t *testing.T) {
		ctx := WithAccessToken(context.Background(), "")
		_, ok := AccessTokenFromContext(ctx)
		assert.False(t, ok)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"standard", "Bearer ya29.token", "ya29.token", true},
		{"case insensitive scheme", "bearer ya29.token", "ya29.token", true},
		{"empty header", "", "", false},
		{"scheme only", "Bearer ", "", false},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", false},
		{"no scheme", "ya29.token", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, token)
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}
