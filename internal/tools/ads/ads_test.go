package ads

import (
	"context"
	"testing"

	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestBuildResponsiveSearchAd(t *testing.T) {
	const adGroup = "customers/1/adGroups/2"
	headlines := []string{"Headline one", "Headline two", "Headline three"}
	descriptions := []string{"Description one", "Description two"}
	finalURLs := []string{"https://example.com"}

	t.Run("valid input", func(t *testing.T) {
		adGroupAd, err := buildResponsiveSearchAd(adGroup, headlines, descriptions, finalURLs)
		require.NoError(t, err)

		assert.Equal(t, adGroup, adGroupAd.GetAdGroup())
		assert.Equal(t, enums.AdGroupAdStatusEnum_PAUSED, adGroupAd.GetStatus())
		assert.Equal(t, finalURLs, adGroupAd.GetAd().GetFinalUrls())

		rsa := adGroupAd.GetAd().GetResponsiveSearchAd()
		require.NotNil(t, rsa)
		require.Len(t, rsa.GetHeadlines(), 3)
		assert.Equal(t, "Headline one", rsa.GetHeadlines()[0].GetText())
		require.Len(t, rsa.GetDescriptions(), 2)
		assert.Equal(t, "Description two", rsa.GetDescriptions()[1].GetText())
	})

	t.Run("empty headlines", func(t *testing.T) {
		_, err := buildResponsiveSearchAd(adGroup, nil, descriptions, finalURLs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "headlines")
	})

	t.Run("empty descriptions", func(t *testing.T) {
		_, err := buildResponsiveSearchAd(adGroup, headlines, nil, finalURLs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "descriptions")
	})

	t.Run("empty final urls", func(t *testing.T) {
		_, err := buildResponsiveSearchAd(adGroup, headlines, descriptions, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "final_urls")
	})
}

func TestCreateResponsiveSearchAdValidation(t *testing.T) {
	reg, ok := tools.GetTool("create_responsive_search_ad")
	require.True(t, ok)

	result, err := reg.Handler(context.Background(), map[string]interface{}{
		"customer_id": "1234567890",
		"ad_group_id": "42",
		"headlines":   []interface{}{},
		"descriptions": []interface{}{
			"Description one",
		},
		"final_urls": []interface{}{"https://example.com"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestUpdateAdStatusValidation(t *testing.T) {
	reg, ok := tools.GetTool("update_ad_status")
	require.True(t, ok)

	result, err := reg.Handler(context.Background(), map[string]interface{}{
		"customer_id": "1234567890",
		"ad_id":       "42",
		"status":      "SLEEPING",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
