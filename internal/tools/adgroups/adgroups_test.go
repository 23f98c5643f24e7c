package adgroups

import (
	"context"
	"testing"

	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestBuildUpdateOperation(t *testing.T) {
	const resourceName = "customers/1/adGroups/2"

	t.Run("name only", func(t *testing.T) {
		op, err := buildUpdateOperation(resourceName, updateFields{name: "Renamed"})
		require.NoError(t, err)

		assert.Equal(t, []string{"name"}, op.GetUpdateMask().GetPaths())
		assert.Equal(t, "Renamed", op.GetUpdate().GetName())
		assert.Equal(t, resourceName, op.GetUpdate().GetResourceName())
	})

	t.Run("all fields", func(t *testing.T) {
		op, err := buildUpdateOperation(resourceName, updateFields{
			status:       "PAUSED",
			name:         "Renamed",
			cpcBidMicros: 250_000,
			hasCPCBid:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"status", "name", "cpc_bid_micros"}, op.GetUpdateMask().GetPaths())
		assert.Equal(t, enums.AdGroupStatusEnum_PAUSED, op.GetUpdate().GetStatus())
		assert.Equal(t, int64(250_000), op.GetUpdate().GetCpcBidMicros())
	})

	t.Run("zero bid is still an update", func(t *testing.T) {
		op, err := buildUpdateOperation(resourceName, updateFields{cpcBidMicros: 0, hasCPCBid: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"cpc_bid_micros"}, op.GetUpdateMask().GetPaths())
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := buildUpdateOperation(resourceName, updateFields{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "At least one of")
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := buildUpdateOperation(resourceName, updateFields{status: "RUNNING"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})
}

func TestUpdateAdGroupValidation(t *testing.T) {
	reg, ok := tools.GetTool("update_ad_group")
	require.True(t, ok)

	// No update fields at all: fails before any client is resolved.
	result, err := reg.Handler(context.Background(), map[string]interface{}{
		"customer_id": "1234567890",
		"ad_group_id": "42",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
