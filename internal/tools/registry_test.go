package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	RegisterTool(&ToolRegistration{
		Name:        "test_tool",
		Description: "A test tool",
		Category:    "testing",
		Schema:      mcp.NewTool("test_tool"),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			return SuccessResult(map[string]interface{}{"ok": true}), nil
		},
	})

	t.Run("GetTool", func(t *testing.T) {
		reg, ok := GetTool("test_tool")
		require.True(t, ok)
		assert.Equal(t, "testing", reg.Category)

		_, ok = GetTool("no_such_tool")
		assert.False(t, ok)
	})

	t.Run("ToolNames sorted", func(t *testing.T) {
		names := ToolNames()
		assert.Contains(t, names, "test_tool")
		for i := 1; i < len(names); i++ {
			assert.LessOrEqual(t, names[i-1], names[i])
		}
	})
}

func TestToJSON(t *testing.T) {
	t.Run("indented output", func(t *testing.T) {
		got := ToJSON(map[string]interface{}{"key": "value"})
		assert.Equal(t, "{\n  \"key\": \"value\"\n}", got)
	})

	t.Run("no html escaping", func(t *testing.T) {
		got := ToJSON(map[string]interface{}{"url": "https://example.com?a=1&b=<2>"})
		assert.Contains(t, got, "https://example.com?a=1&b=<2>")
		assert.NotContains(t, got, "\\u003c")
	})

	t.Run("no trailing newline", func(t *testing.T) {
		got := ToJSON([]string{"a"})
		assert.NotEqual(t, "\n", got[len(got)-1:])
	})
}

func TestResults(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		result := SuccessResult(map[string]interface{}{"id": "123"})
		require.Len(t, result.Content, 1)
		text, ok := mcp.AsTextContent(result.Content[0])
		require.True(t, ok)
		assert.Contains(t, text.Text, "\"id\": \"123\"")
		assert.False(t, result.IsError)
	})

	t.Run("error", func(t *testing.T) {
		result := ErrorResult("campaign not found")
		assert.True(t, result.IsError)
	})

	t.Run("errorf", func(t *testing.T) {
		result := ErrorResultf("Ad not found: %s", "42")
		require.Len(t, result.Content, 1)
		text, ok := mcp.AsTextContent(result.Content[0])
		require.True(t, ok)
		assert.Equal(t, "Ad not found: 42", text.Text)
		assert.True(t, result.IsError)
	})
}
