package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestExecuteGAQLValidation(t *testing.T) {
	reg, ok := tools.GetTool("execute_gaql")
	require.True(t, ok)

	t.Run("missing query", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"customer_id": "1234567890",
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("missing customer_id", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"query": "SELECT campaign.id FROM campaign",
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestSearchAdsValidation(t *testing.T) {
	reg, ok := tools.GetTool("search_ads")
	require.True(t, ok)

	t.Run("empty fields", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"customer_id": "1234567890",
			"resource":    "campaign",
			"fields":      []interface{}{},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("missing resource", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"customer_id": "1234567890",
			"fields":      []interface{}{"campaign.id"},
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
