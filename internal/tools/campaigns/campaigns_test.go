package campaigns

import (
	"context"
	"testing"

	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func registeredTool(t *testing.T, name string) *tools.ToolRegistration {
	t.Helper()
	reg, ok := tools.GetTool(name)
	require.True(t, ok, "tool %s not registered", name)
	return reg
}

func TestBuildBudgetOperation(t *testing.T) {
	t.Run("explicit amount", func(t *testing.T) {
		op := buildBudgetOperation("Brand", 5_000_000)
		budget := op.GetCreate()
		require.NotNil(t, budget)
		assert.Equal(t, "Brand Budget", budget.GetName())
		assert.Equal(t, int64(5_000_000), budget.GetAmountMicros())
		assert.Equal(t, enums.BudgetDeliveryMethodEnum_STANDARD, budget.GetDeliveryMethod())
		assert.False(t, budget.GetExplicitlyShared())
	})

	t.Run("defaults amount when omitted", func(t *testing.T) {
		op := buildBudgetOperation("Brand", 0)
		assert.Equal(t, int64(defaultBudgetMicros), op.GetCreate().GetAmountMicros())
	})
}

func TestBuildCampaignOperation(t *testing.T) {
	t.Run("valid enums", func(t *testing.T) {
		op, err := buildCampaignOperation("Brand", "PAUSED", "SEARCH", "customers/1/campaignBudgets/2")
		require.NoError(t, err)

		campaign := op.GetCreate()
		assert.Equal(t, "Brand", campaign.GetName())
		assert.Equal(t, enums.CampaignStatusEnum_PAUSED, campaign.GetStatus())
		assert.Equal(t, enums.AdvertisingChannelTypeEnum_SEARCH, campaign.GetAdvertisingChannelType())
		assert.Equal(t, "customers/1/campaignBudgets/2", campaign.GetCampaignBudget())
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := buildCampaignOperation("Brand", "RUNNING", "SEARCH", "customers/1/campaignBudgets/2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})

	t.Run("invalid channel type", func(t *testing.T) {
		_, err := buildCampaignOperation("Brand", "PAUSED", "BILLBOARD", "customers/1/campaignBudgets/2")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid advertising_channel_type")
	})
}

func TestBuildStatusUpdateOperation(t *testing.T) {
	op, err := buildStatusUpdateOperation("customers/1/campaigns/2", "ENABLED")
	require.NoError(t, err)

	assert.Equal(t, []string{"status"}, op.GetUpdateMask().GetPaths())
	update := op.GetUpdate()
	assert.Equal(t, "customers/1/campaigns/2", update.GetResourceName())
	assert.Equal(t, enums.CampaignStatusEnum_ENABLED, update.GetStatus())
}

func TestCreateCampaignValidation(t *testing.T) {
	reg := registeredTool(t, "create_campaign")

	t.Run("missing name fails before any client use", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"customer_id":              "1234567890",
			"advertising_channel_type": "SEARCH",
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("missing customer_id", func(t *testing.T) {
		result, err := reg.Handler(context.Background(), map[string]interface{}{
			"name":                     "Brand",
			"advertising_channel_type": "SEARCH",
		})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
