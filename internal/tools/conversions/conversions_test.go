package conversions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestUploadOfflineConversionValidation(t *testing.T) {
	reg, ok := tools.GetTool("upload_offline_conversion")
	require.True(t, ok)

	base := map[string]interface{}{
		"customer_id":          "1234567890",
		"gclid":                "Cj0KCQjw",
		"conversion_action_id": "987",
		"conversion_date_time": "2025-01-15 12:30:00+00:00",
	}

	for _, missing := range []string{"customer_id", "gclid", "conversion_action_id", "conversion_date_time"} {
		t.Run("missing "+missing, func(t *testing.T) {
			args := make(map[string]interface{}, len(base))
			for k, v := range base {
				if k != missing {
					args[k] = v
				}
			}
			result, err := reg.Handler(context.Background(), args)
			require.NoError(t, err)
			assert.True(t, result.IsError)
		})
	}
}
