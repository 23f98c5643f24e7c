// Package keywords provides keyword and negative keyword management tools.
package keywords

import (
	"context"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/common"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterAddKeywords()
	RegisterUpdateKeywordStatus()
	RegisterAddNegativeKeywords()
}

// buildKeywordOperations builds one create operation per keyword text.
func buildKeywordOperations(adGroupResourceName string, texts []string, matchType, status string) ([]*services.AdGroupCriterionOperation, error) {
	if len(texts) == 0 {
		return nil, errors.New("keywords must not be empty")
	}
	matchValue, err := ads.ParseEnum(enums.KeywordMatchTypeEnum_KeywordMatchType_value, matchType, "match_type")
	if err != nil {
		return nil, err
	}
	statusValue, err := ads.ParseEnum(enums.AdGroupCriterionStatusEnum_AdGroupCriterionStatus_value, status, "status")
	if err != nil {
		return nil, err
	}

	ops := make([]*services.AdGroupCriterionOperation, 0, len(texts))
	for _, text := range texts {
		ops = append(ops, &services.AdGroupCriterionOperation{
			Operation: &services.AdGroupCriterionOperation_Create{
				Create: &resources.AdGroupCriterion{
					AdGroup: proto.String(adGroupResourceName),
					Status:  enums.AdGroupCriterionStatusEnum_AdGroupCriterionStatus(statusValue),
					Criterion: &resources.AdGroupCriterion_Keyword{
						Keyword: &common.KeywordInfo{
							Text:      proto.String(text),
							MatchType: enums.KeywordMatchTypeEnum_KeywordMatchType(matchValue),
						},
					},
				},
			},
		})
	}
	return ops, nil
}

// buildNegativeKeywordOperations builds campaign-level negative keyword
// create operations. Negatives are always BROAD match.
func buildNegativeKeywordOperations(campaignResourceName string, texts []string) ([]*services.CampaignCriterionOperation, error) {
	if len(texts) == 0 {
		return nil, errors.New("keywords must not be empty")
	}
	ops := make([]*services.CampaignCriterionOperation, 0, len(texts))
	for _, text := range texts {
		ops = append(ops, &services.CampaignCriterionOperation{
			Operation: &services.CampaignCriterionOperation_Create{
				Create: &resources.CampaignCriterion{
					Campaign: proto.String(campaignResourceName),
					Negative: proto.Bool(true),
					Criterion: &resources.CampaignCriterion_Keyword{
						Keyword: &common.KeywordInfo{
							Text:      proto.String(text),
							MatchType: enums.KeywordMatchTypeEnum_BROAD,
						},
					},
				},
			},
		})
	}
	return ops, nil
}

// RegisterAddKeywords registers the add_keywords tool
func RegisterAddKeywords() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "add_keywords",
		Description: "Add keywords to an ad group",
		Category:    "keywords",
		Schema: mcp.NewTool("add_keywords",
			mcp.WithDescription("Add keywords to an ad group"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("ad_group_id",
				mcp.Required(),
				mcp.Description("The ad group ID (digits only)")),
			mcp.WithArray("keywords",
				mcp.Required(),
				mcp.Description("Keyword texts to add")),
			mcp.WithString("match_type",
				mcp.Description("Keyword match type enum name (default: BROAD)")),
			mcp.WithString("status",
				mcp.Description("Criterion status enum name (default: ENABLED)")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			adGroupID, err := tools.RequiredString(args, "ad_group_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			matchType := tools.OptionalString(args, "match_type", "BROAD")
			status := tools.OptionalString(args, "status", "ENABLED")

			ops, err := buildKeywordOperations(
				ads.AdGroupPath(customerID, adGroupID),
				tools.StringSlice(args, "keywords"),
				strings.ToUpper(matchType),
				strings.ToUpper(status),
			)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.AdGroupCriteria().MutateAdGroupCriteria(cctx, &services.MutateAdGroupCriteriaRequest{
				CustomerId: customerID,
				Operations: ops,
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			names := make([]string, 0, len(resp.GetResults()))
			for _, result := range resp.GetResults() {
				names = append(names, result.GetResourceName())
			}
			return tools.SuccessResult(map[string]interface{}{
				"criterion_resource_names": names,
			}), nil
		},
	})
}

// RegisterUpdateKeywordStatus registers the update_keyword_status tool
func RegisterUpdateKeywordStatus() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "update_keyword_status",
		Description: "Update a keyword criterion's status",
		Category:    "keywords",
		Schema: mcp.NewTool("update_keyword_status",
			mcp.WithDescription("Update a keyword criterion's status"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("ad_group_id",
				mcp.Required(),
				mcp.Description("The ad group ID (digits only)")),
			mcp.WithString("criterion_id",
				mcp.Required(),
				mcp.Description("The keyword criterion ID (digits only)")),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("Criterion status enum name (e.g. ENABLED, PAUSED, REMOVED)")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			adGroupID, err := tools.RequiredString(args, "ad_group_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			criterionID, err := tools.RequiredString(args, "criterion_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			status, err := tools.RequiredString(args, "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			statusValue, err := ads.ParseEnum(enums.AdGroupCriterionStatusEnum_AdGroupCriterionStatus_value, strings.ToUpper(status), "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resourceName := ads.AdGroupCriterionPath(customerID, adGroupID, criterionID)
			op := &services.AdGroupCriterionOperation{
				UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"status"}},
				Operation: &services.AdGroupCriterionOperation_Update{
					Update: &resources.AdGroupCriterion{
						ResourceName: resourceName,
						Status:       enums.AdGroupCriterionStatusEnum_AdGroupCriterionStatus(statusValue),
					},
				},
			}
			if _, err := client.AdGroupCriteria().MutateAdGroupCriteria(cctx, &services.MutateAdGroupCriteriaRequest{
				CustomerId: customerID,
				Operations: []*services.AdGroupCriterionOperation{op},
			}); err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"criterion_resource_name": resourceName,
				"status":                  strings.ToUpper(status),
			}), nil
		},
	})
}

// RegisterAddNegativeKeywords registers the add_negative_keywords tool
func RegisterAddNegativeKeywords() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "add_negative_keywords",
		Description: "Add campaign-level negative keywords",
		Category:    "keywords",
		Schema: mcp.NewTool("add_negative_keywords",
			mcp.WithDescription("Add campaign-level negative keywords (BROAD match)"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("campaign_id",
				mcp.Required(),
				mcp.Description("The campaign ID (digits only)")),
			mcp.WithArray("keywords",
				mcp.Required(),
				mcp.Description("Keyword texts to exclude")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			campaignID, err := tools.RequiredString(args, "campaign_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			ops, err := buildNegativeKeywordOperations(
				ads.CampaignPath(customerID, campaignID),
				tools.StringSlice(args, "keywords"),
			)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.CampaignCriteria().MutateCampaignCriteria(cctx, &services.MutateCampaignCriteriaRequest{
				CustomerId: customerID,
				Operations: ops,
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			names := make([]string, 0, len(resp.GetResults()))
			for _, result := range resp.GetResults() {
				names = append(names, result.GetResourceName())
			}
			return tools.SuccessResult(map[string]interface{}{
				"criterion_resource_names": names,
			}), nil
		},
	})
}
