// Package adgroups provides ad group management tools.
package adgroups

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterCreateAdGroup()
	RegisterUpdateAdGroup()
}

// updateFields holds the optional fields of an ad group update. Only fields
// the caller actually supplied end up in the mask, so unspecified fields are
// left untouched by the remote service.
type updateFields struct {
	status       string
	name         string
	cpcBidMicros int64
	hasCPCBid    bool
}

func (u updateFields) empty() bool {
	return u.status == "" && u.name == "" && !u.hasCPCBid
}

// buildUpdateOperation builds a partial ad group update with an incremental
// field mask.
func buildUpdateOperation(resourceName string, fields updateFields) (*services.AdGroupOperation, error) {
	if fields.empty() {
		return nil, errors.New("At least one of status, name, or cpc_bid_micros is required")
	}

	adGroup := &resources.AdGroup{ResourceName: resourceName}
	mask := &fieldmaskpb.FieldMask{}

	if fields.status != "" {
		statusValue, err := ads.ParseEnum(enums.AdGroupStatusEnum_AdGroupStatus_value, fields.status, "status")
		if err != nil {
			return nil, err
		}
		adGroup.Status = enums.AdGroupStatusEnum_AdGroupStatus(statusValue)
		mask.Paths = append(mask.Paths, "status")
	}
	if fields.name != "" {
		adGroup.Name = proto.String(fields.name)
		mask.Paths = append(mask.Paths, "name")
	}
	if fields.hasCPCBid {
		adGroup.CpcBidMicros = proto.Int64(fields.cpcBidMicros)
		mask.Paths = append(mask.Paths, "cpc_bid_micros")
	}

	return &services.AdGroupOperation{
		UpdateMask: mask,
		Operation:  &services.AdGroupOperation_Update{Update: adGroup},
	}, nil
}

// RegisterCreateAdGroup registers the create_ad_group tool
func RegisterCreateAdGroup() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "create_ad_group",
		Description: "Create an ad group under a campaign",
		Category:    "adgroups",
		Schema: mcp.NewTool("create_ad_group",
			mcp.WithDescription("Create a search ad group under a campaign"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("campaign_id",
				mcp.Required(),
				mcp.Description("The campaign ID (digits only)")),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The ad group name")),
			mcp.WithNumber("cpc_bid_micros",
				mcp.Description("Optional max CPC bid in micros")),
			mcp.WithString("status",
				mcp.Description("Ad group status enum name. Defaults to ENABLED")),
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
			name, err := tools.RequiredString(args, "name")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			status := tools.OptionalString(args, "status", "ENABLED")
			statusValue, err := ads.ParseEnum(enums.AdGroupStatusEnum_AdGroupStatus_value, status, "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			adGroup := &resources.AdGroup{
				Name:     proto.String(name),
				Campaign: proto.String(ads.CampaignPath(customerID, campaignID)),
				Status:   enums.AdGroupStatusEnum_AdGroupStatus(statusValue),
				Type:     enums.AdGroupTypeEnum_SEARCH_STANDARD,
			}
			if cpcBid, ok := tools.OptionalInt(args, "cpc_bid_micros"); ok {
				adGroup.CpcBidMicros = proto.Int64(cpcBid)
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.AdGroups().MutateAdGroups(cctx, &services.MutateAdGroupsRequest{
				CustomerId: customerID,
				Operations: []*services.AdGroupOperation{{
					Operation: &services.AdGroupOperation_Create{Create: adGroup},
				}},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			resourceName := resp.GetResults()[0].GetResourceName()

			return tools.SuccessResult(map[string]interface{}{
				"ad_group_resource_name": resourceName,
				"ad_group_id":            ads.LastSegment(resourceName),
			}), nil
		},
	})
}

// RegisterUpdateAdGroup registers the update_ad_group tool
func RegisterUpdateAdGroup() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "update_ad_group",
		Description: "Update ad group fields (status, name, CPC bid)",
		Category:    "adgroups",
		Schema: mcp.NewTool("update_ad_group",
			mcp.WithDescription("Update ad group fields. At least one of status, name, or cpc_bid_micros must be given; unspecified fields are left untouched."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("ad_group_id",
				mcp.Required(),
				mcp.Description("The ad group ID (digits only)")),
			mcp.WithString("status",
				mcp.Description("Optional ad group status enum name")),
			mcp.WithString("name",
				mcp.Description("Optional new ad group name")),
			mcp.WithNumber("cpc_bid_micros",
				mcp.Description("Optional max CPC bid in micros")),
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

			fields := updateFields{
				status: tools.OptionalString(args, "status", ""),
				name:   tools.OptionalString(args, "name", ""),
			}
			fields.cpcBidMicros, fields.hasCPCBid = tools.OptionalInt(args, "cpc_bid_micros")

			resourceName := ads.AdGroupPath(customerID, adGroupID)
			op, err := buildUpdateOperation(resourceName, fields)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			if _, err := client.AdGroups().MutateAdGroups(cctx, &services.MutateAdGroupsRequest{
				CustomerId: customerID,
				Operations: []*services.AdGroupOperation{op},
			}); err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"ad_group_resource_name": resourceName,
				"ad_group_id":            adGroupID,
			}), nil
		},
	})
}
