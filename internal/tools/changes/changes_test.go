package changes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeEventQuery(t *testing.T) {
	t.Run("whole-day window", func(t *testing.T) {
		query := changeEventQuery("2025-01-10", "2025-01-12", "")
		assert.Contains(t, query, "change_event.change_date_time >= '2025-01-10 00:00:00'")
		assert.Contains(t, query, "change_event.change_date_time <= '2025-01-12 23:59:59'")
		assert.Contains(t, query, "ORDER BY change_event.change_date_time DESC")
		assert.Contains(t, query, fmt.Sprintf("LIMIT %d", changeEventLimit))
		assert.Contains(t, query, "LIMIT 10000")
	})

	t.Run("end date defaults to start date", func(t *testing.T) {
		query := changeEventQuery("2025-01-10", "", "")
		assert.Contains(t, query, "change_event.change_date_time <= '2025-01-10 23:59:59'")
	})

	t.Run("resource type filter", func(t *testing.T) {
		query := changeEventQuery("2025-01-10", "", "campaign")
		assert.Contains(t, query, "change_event.change_resource_type = 'CAMPAIGN'")
	})

	t.Run("no filter without resource type", func(t *testing.T) {
		query := changeEventQuery("2025-01-10", "", "")
		assert.NotContains(t, query, "change_resource_type =")
	})
}
