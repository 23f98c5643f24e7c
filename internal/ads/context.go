package ads

import (
	"context"
	"errors"
)

type contextKey string

const resolverKey contextKey = "ads_resolver"

// WithResolver stores the resolver in the context so tool handlers can reach
// it without package-level state.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey, r)
}

// ResolverFromContext retrieves the resolver injected by the server.
func ResolverFromContext(ctx context.Context) (*Resolver, error) {
	r, ok := ctx.Value(resolverKey).(*Resolver)
	if !ok || r == nil {
		return nil, errors.New("ads client resolver not found in context")
	}
	return r, nil
}
