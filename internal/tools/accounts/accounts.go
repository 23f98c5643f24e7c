package accounts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/services"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterListAccessibleAccounts()
}

// RegisterListAccessibleAccounts registers the list_accessible_accounts tool
func RegisterListAccessibleAccounts() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "list_accessible_accounts",
		Description: "List Google Ads customer IDs directly accessible by the authenticated user",
		Category:    "accounts",
		Schema: mcp.NewTool("list_accessible_accounts",
			mcp.WithDescription("List Google Ads customer IDs directly accessible by the authenticated user. The returned IDs can be used as login_customer_id on other tools."),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}

			cctx := client.CallContext(ctx, "")
			resp, err := client.Customers().ListAccessibleCustomers(cctx, &services.ListAccessibleCustomersRequest{})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			accounts := make([]string, 0, len(resp.GetResourceNames()))
			for _, name := range resp.GetResourceNames() {
				accounts = append(accounts, ads.LastSegment(name))
			}

			return tools.SuccessResult(map[string]interface{}{
				"accounts": accounts,
			}), nil
		},
	})
}
