package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/tools"
)

func TestListAccessibleAccountsRegistration(t *testing.T) {
	tool, ok := tools.GetTool("list_accessible_accounts")
	require.True(t, ok)
	assert.Equal(t, "accounts", tool.Category)
	assert.NotNil(t, tool.Handler)
}

func TestListAccessibleAccountsWithoutResolver(t *testing.T) {
	tool, ok := tools.GetTool("list_accessible_accounts")
	require.True(t, ok)

	result, err := tool.Handler(context.Background(), map[string]interface{}{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
