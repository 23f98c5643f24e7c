// Package recommendations provides account recommendation tools.
package recommendations

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/services"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterGetRecommendations()
	RegisterApplyRecommendation()
	RegisterDismissRecommendation()
}

// recommendationQuery builds the recommendation report query, optionally
// filtered to specific recommendation types.
func recommendationQuery(types []string) string {
	query := "SELECT recommendation.resource_name, recommendation.type, " +
		"recommendation.dismissed, recommendation.campaign, " +
		"recommendation.ad_group FROM recommendation"
	if len(types) > 0 {
		quoted := make([]string, 0, len(types))
		for _, t := range types {
			quoted = append(quoted, fmt.Sprintf("'%s'", strings.ToUpper(t)))
		}
		query += fmt.Sprintf(" WHERE recommendation.type IN (%s)", strings.Join(quoted, ", "))
	}
	return query
}

// RegisterGetRecommendations registers the get_recommendations tool
func RegisterGetRecommendations() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_recommendations",
		Description: "List account recommendations",
		Category:    "recommendations",
		Schema: mcp.NewTool("get_recommendations",
			mcp.WithDescription("List account recommendations, optionally filtered by type"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithArray("recommendation_types",
				mcp.Description("Recommendation type enum names to filter on, e.g. KEYWORD, TEXT_AD")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			rows, err := client.SearchStream(cctx, customerID, recommendationQuery(tools.StringSlice(args, "recommendation_types")))
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			if rows == nil {
				rows = []map[string]any{}
			}
			return tools.SuccessResult(map[string]interface{}{
				"recommendations": rows,
			}), nil
		},
	})
}

func recommendationSchema(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer account ID (digits only)")),
		mcp.WithString("recommendation_id",
			mcp.Required(),
			mcp.Description("The recommendation ID (digits only)")),
		mcp.WithString("login_customer_id",
			mcp.Description("Optional manager account ID (digits only)")),
	)
}

// RegisterApplyRecommendation registers the apply_recommendation tool
func RegisterApplyRecommendation() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "apply_recommendation",
		Description: "Apply a recommendation with its default parameters",
		Category:    "recommendations",
		Schema:      recommendationSchema("apply_recommendation", "Apply a recommendation with its default parameters"),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			recommendationID, err := tools.RequiredString(args, "recommendation_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resourceName := ads.RecommendationPath(customerID, recommendationID)
			resp, err := client.Recommendations().ApplyRecommendation(cctx, &services.ApplyRecommendationRequest{
				CustomerId: customerID,
				Operations: []*services.ApplyRecommendationOperation{{
					ResourceName: resourceName,
				}},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"recommendation_resource_name": resp.GetResults()[0].GetResourceName(),
				"applied":                      true,
			}), nil
		},
	})
}

// RegisterDismissRecommendation registers the dismiss_recommendation tool
func RegisterDismissRecommendation() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "dismiss_recommendation",
		Description: "Dismiss a recommendation",
		Category:    "recommendations",
		Schema:      recommendationSchema("dismiss_recommendation", "Dismiss a recommendation"),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			recommendationID, err := tools.RequiredString(args, "recommendation_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resourceName := ads.RecommendationPath(customerID, recommendationID)
			resp, err := client.Recommendations().DismissRecommendation(cctx, &services.DismissRecommendationRequest{
				CustomerId: customerID,
				Operations: []*services.DismissRecommendationRequest_DismissRecommendationOperation{{
					ResourceName: resourceName,
				}},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"recommendation_resource_name": resp.GetResults()[0].GetResourceName(),
				"dismissed":                    true,
			}), nil
		},
	})
}
