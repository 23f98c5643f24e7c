package tools

import (
	"context"
	"fmt"

	"github.com/digiti/google-ads-mcp/internal/ads"
)

// Client resolves the Ads client handle for the current request. Handlers
// call this only after local validation passed, so no connection is dialed
// for requests that fail fast.
func Client(ctx context.Context) (*ads.Client, error) {
	resolver, err := ads.ResolverFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return resolver.Client(ctx)
}

// RequiredString extracts a required string argument.
func RequiredString(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return value, nil
}

// CustomerID extracts the required customer_id argument with dashes stripped.
func CustomerID(args map[string]interface{}) (string, error) {
	id, err := RequiredString(args, "customer_id")
	if err != nil {
		return "", err
	}
	return ads.NormalizeCustomerID(id), nil
}

// LoginCustomerID extracts the optional login_customer_id argument. The
// override is passed per call to ads.Client.CallContext; the shared handle is
// never mutated.
func LoginCustomerID(args map[string]interface{}) string {
	value, _ := args["login_customer_id"].(string)
	return ads.NormalizeCustomerID(value)
}

// OptionalString extracts an optional string argument, falling back to
// defaultValue when absent or empty.
func OptionalString(args map[string]interface{}, name, defaultValue string) string {
	value, _ := args[name].(string)
	if value == "" {
		return defaultValue
	}
	return value
}

// OptionalInt extracts an optional integer argument. JSON numbers arrive as
// float64.
func OptionalInt(args map[string]interface{}, name string) (int64, bool) {
	switch v := args[name].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// OptionalFloat extracts an optional float argument.
func OptionalFloat(args map[string]interface{}, name string) (float64, bool) {
	v, ok := args[name].(float64)
	return v, ok
}

// StringSlice extracts an array-of-strings argument, nil when absent.
func StringSlice(args map[string]interface{}, name string) []string {
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
