// Package reporting exposes the GAQL reporting surface: a raw query tool and
// a structured wrapper that composes the query from individual parts.
package reporting

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterExecuteGAQL()
	RegisterSearchAds()
}

// RegisterExecuteGAQL registers the execute_gaql tool
func RegisterExecuteGAQL() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "execute_gaql",
		Description: "Execute a Google Ads Query Language (GAQL) query to get reporting data",
		Category:    "reporting",
		Schema: mcp.NewTool("execute_gaql",
			mcp.WithDescription("Execute a Google Ads Query Language (GAQL) query to get reporting data"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("The GAQL query to execute")),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID being queried (digits only)")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager (MCC) account ID on top of the target account (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			query, err := tools.RequiredString(args, "query")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}

			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))
			rows, err := client.SearchStream(cctx, customerID, ads.PreprocessGAQL(query))
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			if rows == nil {
				rows = []map[string]any{}
			}

			return tools.SuccessResult(map[string]interface{}{
				"data": rows,
			}), nil
		},
	})
}

// RegisterSearchAds registers the search_ads tool
func RegisterSearchAds() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "search_ads",
		Description: "Search Google Ads data using structured parameters instead of raw GAQL",
		Category:    "reporting",
		Schema: mcp.NewTool("search_ads",
			mcp.WithDescription("Search Google Ads data using structured parameters. A convenience wrapper around GAQL that builds the query from individual components."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only, no dashes)")),
			mcp.WithString("resource",
				mcp.Required(),
				mcp.Description("The resource to query (e.g. 'campaign', 'ad_group', 'ad_group_ad', 'keyword_view')")),
			mcp.WithArray("fields",
				mcp.Required(),
				mcp.Description("Fields to select, fully qualified with the resource prefix (e.g. ['campaign.id', 'metrics.clicks'])")),
			mcp.WithArray("conditions",
				mcp.Description("Optional WHERE conditions, combined with AND (e.g. [\"campaign.status = 'ENABLED'\"])")),
			mcp.WithArray("orderings",
				mcp.Description("Optional ORDER BY clauses (e.g. ['metrics.impressions DESC'])")),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of rows to return. Required for change_event queries (max 10000)")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager (MCC) account ID if querying a sub-account (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			resource, err := tools.RequiredString(args, "resource")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			fields := tools.StringSlice(args, "fields")
			if len(fields) == 0 {
				return tools.ErrorResult("fields must not be empty"), nil
			}

			conditions := tools.StringSlice(args, "conditions")
			orderings := tools.StringSlice(args, "orderings")
			limit, _ := tools.OptionalInt(args, "limit")

			query := ads.PreprocessGAQL(ads.BuildQuery(resource, fields, conditions, orderings, limit))

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}

			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))
			rows, err := client.SearchStream(cctx, customerID, query)
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			if rows == nil {
				rows = []map[string]any{}
			}

			return tools.SuccessResult(map[string]interface{}{
				"data":  rows,
				"query": query,
			}), nil
		},
	})
}
