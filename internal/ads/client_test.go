package ads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func outgoingMD(t *testing.T, ctx context.Context) metadata.MD {
	t.Helper()
	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok, "expected outgoing metadata")
	return md
}

func TestCallContext(t *testing.T) {
	client := &Client{developerToken: "dev-token", loginCustomerID: "1111111111"}

	t.Run("default acting account", func(t *testing.T) {
		md := outgoingMD(t, client.CallContext(context.Background(), ""))
		assert.Equal(t, []string{"dev-token"}, md.Get("developer-token"))
		assert.Equal(t, []string{"1111111111"}, md.Get("login-customer-id"))
	})

	t.Run("per-call override wins", func(t *testing.T) {
		md := outgoingMD(t, client.CallContext(context.Background(), "222-222-2222"))
		assert.Equal(t, []string{"2222222222"}, md.Get("login-customer-id"))
	})

	t.Run("override does not mutate the handle", func(t *testing.T) {
		client.CallContext(context.Background(), "2222222222")
		md := outgoingMD(t, client.CallContext(context.Background(), ""))
		assert.Equal(t, []string{"1111111111"}, md.Get("login-customer-id"))
	})

	t.Run("no headers when handle is empty", func(t *testing.T) {
		empty := &Client{}
		ctx := empty.CallContext(context.Background(), "")
		_, ok := metadata.FromOutgoingContext(ctx)
		assert.False(t, ok)
	})
}
