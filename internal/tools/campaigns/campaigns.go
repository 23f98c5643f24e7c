// Package campaigns provides campaign and campaign budget management tools.
package campaigns

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

// defaultBudgetMicros is the budget amount used when the caller omits one.
const defaultBudgetMicros = 1_000_000

func init() {
	RegisterCreateCampaign()
	RegisterUpdateCampaignStatus()
	RegisterUpdateCampaignBudget()
}

// buildBudgetOperation builds the create operation for a campaign's dedicated
// budget. The budget is named after the campaign and never shared.
func buildBudgetOperation(campaignName string, amountMicros int64) *services.CampaignBudgetOperation {
	if amountMicros <= 0 {
		amountMicros = defaultBudgetMicros
	}
	return &services.CampaignBudgetOperation{
		Operation: &services.CampaignBudgetOperation_Create{
			Create: &resources.CampaignBudget{
				Name:             proto.String(campaignName + " Budget"),
				DeliveryMethod:   enums.BudgetDeliveryMethodEnum_STANDARD,
				AmountMicros:     proto.Int64(amountMicros),
				ExplicitlyShared: proto.Bool(false),
			},
		},
	}
}

// buildCampaignOperation builds the create operation for a campaign
// referencing an already created budget.
func buildCampaignOperation(name, status, channelType, budgetResourceName string) (*services.CampaignOperation, error) {
	statusValue, err := ads.ParseEnum(enums.CampaignStatusEnum_CampaignStatus_value, status, "status")
	if err != nil {
		return nil, err
	}
	channelValue, err := ads.ParseEnum(enums.AdvertisingChannelTypeEnum_AdvertisingChannelType_value, channelType, "advertising_channel_type")
	if err != nil {
		return nil, err
	}

	return &services.CampaignOperation{
		Operation: &services.CampaignOperation_Create{
			Create: &resources.Campaign{
				Name:                   proto.String(name),
				Status:                 enums.CampaignStatusEnum_CampaignStatus(statusValue),
				AdvertisingChannelType: enums.AdvertisingChannelTypeEnum_AdvertisingChannelType(channelValue),
				CampaignBudget:         proto.String(budgetResourceName),
			},
		},
	}, nil
}

// RegisterCreateCampaign registers the create_campaign tool
func RegisterCreateCampaign() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "create_campaign",
		Description: "Create a new campaign together with its campaign budget",
		Category:    "campaigns",
		Schema: mcp.NewTool("create_campaign",
			mcp.WithDescription("Create a new campaign together with its campaign budget. The campaign starts PAUSED unless another status is given."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The campaign name")),
			mcp.WithString("advertising_channel_type",
				mcp.Required(),
				mcp.Description("Campaign channel enum name, for example SEARCH")),
			mcp.WithString("status",
				mcp.Description("Campaign status enum name. Defaults to PAUSED")),
			mcp.WithNumber("budget_amount_micros",
				mcp.Description("Budget amount in micros. Defaults to 1000000")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			name, err := tools.RequiredString(args, "name")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			channelType, err := tools.RequiredString(args, "advertising_channel_type")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			status := tools.OptionalString(args, "status", "PAUSED")
			budgetMicros, _ := tools.OptionalInt(args, "budget_amount_micros")

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			budgetResp, err := client.CampaignBudgets().MutateCampaignBudgets(cctx, &services.MutateCampaignBudgetsRequest{
				CustomerId: customerID,
				Operations: []*services.CampaignBudgetOperation{buildBudgetOperation(name, budgetMicros)},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			budgetResourceName := budgetResp.GetResults()[0].GetResourceName()

			op, err := buildCampaignOperation(name, status, channelType, budgetResourceName)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			campaignResp, err := client.Campaigns().MutateCampaigns(cctx, &services.MutateCampaignsRequest{
				CustomerId: customerID,
				Operations: []*services.CampaignOperation{op},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			campaignResourceName := campaignResp.GetResults()[0].GetResourceName()

			return tools.SuccessResult(map[string]interface{}{
				"campaign_resource_name": campaignResourceName,
				"campaign_id":            ads.LastSegment(campaignResourceName),
				"budget_resource_name":   budgetResourceName,
				"budget_id":              ads.LastSegment(budgetResourceName),
			}), nil
		},
	})
}

// buildStatusUpdateOperation builds a partial update that only touches the
// campaign status.
func buildStatusUpdateOperation(resourceName, status string) (*services.CampaignOperation, error) {
	statusValue, err := ads.ParseEnum(enums.CampaignStatusEnum_CampaignStatus_value, status, "status")
	if err != nil {
		return nil, err
	}
	return &services.CampaignOperation{
		UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"status"}},
		Operation: &services.CampaignOperation_Update{
			Update: &resources.Campaign{
				ResourceName: resourceName,
				Status:       enums.CampaignStatusEnum_CampaignStatus(statusValue),
			},
		},
	}, nil
}

// RegisterUpdateCampaignStatus registers the update_campaign_status tool
func RegisterUpdateCampaignStatus() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "update_campaign_status",
		Description: "Update the status of an existing campaign",
		Category:    "campaigns",
		Schema: mcp.NewTool("update_campaign_status",
			mcp.WithDescription("Update the status of an existing campaign"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("campaign_id",
				mcp.Required(),
				mcp.Description("The campaign ID (digits only)")),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("Campaign status enum name (e.g. ENABLED, PAUSED, REMOVED)")),
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
			status, err := tools.RequiredString(args, "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			resourceName := ads.CampaignPath(customerID, campaignID)
			op, err := buildStatusUpdateOperation(resourceName, status)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			if _, err := client.Campaigns().MutateCampaigns(cctx, &services.MutateCampaignsRequest{
				CustomerId: customerID,
				Operations: []*services.CampaignOperation{op},
			}); err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"campaign_resource_name": resourceName,
				"status":                 status,
			}), nil
		},
	})
}

// RegisterUpdateCampaignBudget registers the update_campaign_budget tool
func RegisterUpdateCampaignBudget() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "update_campaign_budget",
		Description: "Update the budget amount for a campaign",
		Category:    "campaigns",
		Schema: mcp.NewTool("update_campaign_budget",
			mcp.WithDescription("Update the budget amount for a campaign. Looks up the campaign's budget resource first."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("campaign_id",
				mcp.Required(),
				mcp.Description("The campaign ID (digits only)")),
			mcp.WithNumber("budget_amount_micros",
				mcp.Required(),
				mcp.Description("New budget amount in micros")),
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
			amountMicros, ok := tools.OptionalInt(args, "budget_amount_micros")
			if !ok {
				return tools.ErrorResult("budget_amount_micros parameter is required"), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			query := fmt.Sprintf(
				"SELECT campaign.campaign_budget FROM campaign WHERE campaign.id = %s LIMIT 1",
				campaignID,
			)
			rows, err := client.SearchRows(cctx, customerID, query)
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			if len(rows) == 0 {
				return tools.ErrorResultf("Campaign not found: %s", campaignID), nil
			}
			budgetResourceName := rows[0].GetCampaign().GetCampaignBudget()

			op := &services.CampaignBudgetOperation{
				UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"amount_micros"}},
				Operation: &services.CampaignBudgetOperation_Update{
					Update: &resources.CampaignBudget{
						ResourceName: budgetResourceName,
						AmountMicros: proto.Int64(amountMicros),
					},
				},
			}
			if _, err := client.CampaignBudgets().MutateCampaignBudgets(cctx, &services.MutateCampaignBudgetsRequest{
				CustomerId: customerID,
				Operations: []*services.CampaignBudgetOperation{op},
			}); err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"budget_resource_name": budgetResourceName,
				"amount_micros":        amountMicros,
			}), nil
		},
	})
}
