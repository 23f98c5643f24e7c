package keywords

import (
	"context"
	"testing"

	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestBuildKeywordOperations(t *testing.T) {
	const adGroup = "customers/1/adGroups/2"

	t.Run("one operation per keyword", func(t *testing.T) {
		ops, err := buildKeywordOperations(adGroup, []string{"running shoes", "trail shoes"}, "EXACT", "PAUSED")
		require.NoError(t, err)
		require.Len(t, ops, 2)

		first := ops[0].GetCreate()
		assert.Equal(t, adGroup, first.GetAdGroup())
		assert.Equal(t, enums.AdGroupCriterionStatusEnum_PAUSED, first.GetStatus())
		assert.Equal(t, "running shoes", first.GetKeyword().GetText())
		assert.Equal(t, enums.KeywordMatchTypeEnum_EXACT, first.GetKeyword().GetMatchType())

		assert.Equal(t, "trail shoes", ops[1].GetCreate().GetKeyword().GetText())
	})

	t.Run("empty keywords", func(t *testing.T) {
		_, err := buildKeywordOperations(adGroup, nil, "BROAD", "ENABLED")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keywords")
	})

	t.Run("invalid match type", func(t *testing.T) {
		_, err := buildKeywordOperations(adGroup, []string{"shoes"}, "FUZZY", "ENABLED")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid match_type")
	})
}

func TestBuildNegativeKeywordOperations(t *testing.T) {
	const campaign = "customers/1/campaigns/2"

	t.Run("negative broad match", func(t *testing.T) {
		ops, err := buildNegativeKeywordOperations(campaign, []string{"free", "cheap"})
		require.NoError(t, err)
		require.Len(t, ops, 2)

		first := ops[0].GetCreate()
		assert.Equal(t, campaign, first.GetCampaign())
		assert.True(t, first.GetNegative())
		assert.Equal(t, "free", first.GetKeyword().GetText())
		assert.Equal(t, enums.KeywordMatchTypeEnum_BROAD, first.GetKeyword().GetMatchType())
	})

	t.Run("empty keywords", func(t *testing.T) {
		_, err := buildNegativeKeywordOperations(campaign, nil)
		assert.Error(t, err)
	})
}

func TestAddKeywordsValidation(t *testing.T) {
	reg, ok := tools.GetTool("add_keywords")
	require.True(t, ok)

	result, err := reg.Handler(context.Background(), map[string]interface{}{
		"customer_id": "1234567890",
		"ad_group_id": "42",
		"keywords":    []interface{}{},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
