package ads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessGAQL(t *testing.T) {
	t.Run("appends parameters clause", func(t *testing.T) {
		got := PreprocessGAQL("SELECT a FROM b")
		assert.Equal(t, "SELECT a FROM b PARAMETERS omit_unselected_resource_names=true", got)
	})

	t.Run("extends existing parameters clause", func(t *testing.T) {
		got := PreprocessGAQL("SELECT a FROM b PARAMETERS include_drafts=true")
		assert.Equal(t, "SELECT a FROM b PARAMETERS include_drafts=true omit_unselected_resource_names=true", got)
	})

	t.Run("leaves query alone when already set", func(t *testing.T) {
		query := "SELECT a FROM b PARAMETERS omit_unselected_resource_names=true"
		assert.Equal(t, query, PreprocessGAQL(query))
	})

	t.Run("idempotent", func(t *testing.T) {
		queries := []string{
			"SELECT a FROM b",
			"SELECT a FROM b PARAMETERS include_drafts=true",
			"SELECT campaign.id FROM campaign WHERE campaign.status = 'ENABLED' LIMIT 5",
		}
		for _, query := range queries {
			once := PreprocessGAQL(query)
			assert.Equal(t, once, PreprocessGAQL(once), "query: %s", query)
		}
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("full query", func(t *testing.T) {
		got := BuildQuery(
			"campaign",
			[]string{"campaign.id"},
			[]string{"campaign.status = 'ENABLED'"},
			nil,
			5,
		)
		assert.Equal(t, "SELECT campaign.id FROM campaign WHERE campaign.status = 'ENABLED' LIMIT 5", got)
	})

	t.Run("multiple conditions joined with AND", func(t *testing.T) {
		got := BuildQuery(
			"ad_group",
			[]string{"ad_group.id", "ad_group.name"},
			[]string{"ad_group.status = 'ENABLED'", "campaign.id = 42"},
			nil,
			0,
		)
		assert.Equal(t,
			"SELECT ad_group.id, ad_group.name FROM ad_group "+
				"WHERE ad_group.status = 'ENABLED' AND campaign.id = 42",
			got)
	})

	t.Run("orderings", func(t *testing.T) {
		got := BuildQuery(
			"campaign",
			[]string{"campaign.id", "metrics.clicks"},
			nil,
			[]string{"metrics.clicks DESC"},
			10,
		)
		assert.Equal(t,
			"SELECT campaign.id, metrics.clicks FROM campaign "+
				"ORDER BY metrics.clicks DESC LIMIT 10",
			got)
	})
}
