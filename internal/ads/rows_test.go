package ads

import (
	"testing"

	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestFormatRow(t *testing.T) {
	row := &services.GoogleAdsRow{
		Campaign: &resources.Campaign{
			Id:     proto.Int64(123),
			Name:   proto.String("Brand"),
			Status: enums.CampaignStatusEnum_ENABLED,
		},
	}

	t.Run("scalar and enum fields", func(t *testing.T) {
		got, err := FormatRow(row, []string{"campaign.id", "campaign.name", "campaign.status"})
		require.NoError(t, err)

		assert.Equal(t, int64(123), got["campaign.id"])
		assert.Equal(t, "Brand", got["campaign.name"])
		assert.Equal(t, "ENABLED", got["campaign.status"])
	})

	t.Run("message field becomes nested map", func(t *testing.T) {
		got, err := FormatRow(row, []string{"campaign"})
		require.NoError(t, err)

		nested, ok := got["campaign"].(map[string]any)
		require.True(t, ok, "expected a map, got %T", got["campaign"])
		assert.Equal(t, "Brand", nested["name"])
		assert.Equal(t, "ENABLED", nested["status"])
	})

	t.Run("unknown field errors", func(t *testing.T) {
		_, err := FormatRow(row, []string{"campaign.no_such_field"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no_such_field")
	})

	t.Run("unset nested message yields empty values", func(t *testing.T) {
		got, err := FormatRow(row, []string{"ad_group.id"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), got["ad_group.id"])
	})
}
