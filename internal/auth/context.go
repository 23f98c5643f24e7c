package auth

import (
	"context"
	"strings"
)

// contextKey is an unexported type for context keys to prevent collisions
type contextKey string

const (
	accessTokenKey contextKey = "ads_access_token"
	requestIDKey   contextKey = "ads_request_id"
)

// WithAccessToken stores a per-request bearer access token in the context.
// The token is opaque to this server; it is forwarded to the Ads API as the
// call credential and never parsed or persisted.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessTokenFromContext retrieves the per-request access token, if any.
func AccessTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(accessTokenKey).(string)
	return token, ok && token != ""
}

// BearerToken extracts the token from an Authorization header value.
// Returns false for non-bearer schemes or an empty token.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

// WithRequestID adds a request ID to the context for tracing
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext retrieves the request ID, or "" if not set.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
