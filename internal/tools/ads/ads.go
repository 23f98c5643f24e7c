// Package ads provides ad creation and status management tools.
package ads

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/common"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/fieldmaskpb"

	googleads "github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterCreateResponsiveSearchAd()
	RegisterUpdateAdStatus()
}

// buildResponsiveSearchAd builds the ad group ad for a new responsive search
// ad. New ads are always created PAUSED regardless of caller input, so a bad
// creative never spends before review.
func buildResponsiveSearchAd(adGroupResourceName string, headlines, descriptions, finalURLs []string) (*resources.AdGroupAd, error) {
	if len(headlines) == 0 {
		return nil, errors.New("headlines must not be empty")
	}
	if len(descriptions) == 0 {
		return nil, errors.New("descriptions must not be empty")
	}
	if len(finalURLs) == 0 {
		return nil, errors.New("final_urls must not be empty")
	}

	headlineAssets := make([]*common.AdTextAsset, 0, len(headlines))
	for _, text := range headlines {
		headlineAssets = append(headlineAssets, &common.AdTextAsset{Text: proto.String(text)})
	}
	descriptionAssets := make([]*common.AdTextAsset, 0, len(descriptions))
	for _, text := range descriptions {
		descriptionAssets = append(descriptionAssets, &common.AdTextAsset{Text: proto.String(text)})
	}

	return &resources.AdGroupAd{
		AdGroup: proto.String(adGroupResourceName),
		Status:  enums.AdGroupAdStatusEnum_PAUSED,
		Ad: &resources.Ad{
			FinalUrls: finalURLs,
			AdData: &resources.Ad_ResponsiveSearchAd{
				ResponsiveSearchAd: &common.ResponsiveSearchAdInfo{
					Headlines:    headlineAssets,
					Descriptions: descriptionAssets,
				},
			},
		},
	}, nil
}

// RegisterCreateResponsiveSearchAd registers the create_responsive_search_ad tool
func RegisterCreateResponsiveSearchAd() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "create_responsive_search_ad",
		Description: "Create a responsive search ad in an ad group",
		Category:    "ads",
		Schema: mcp.NewTool("create_responsive_search_ad",
			mcp.WithDescription("Create a responsive search ad in an ad group. The ad is created PAUSED."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("ad_group_id",
				mcp.Required(),
				mcp.Description("The ad group ID (digits only)")),
			mcp.WithArray("headlines",
				mcp.Required(),
				mcp.Description("Headline texts (3-15 entries, max 30 characters each)")),
			mcp.WithArray("descriptions",
				mcp.Required(),
				mcp.Description("Description texts (2-4 entries, max 90 characters each)")),
			mcp.WithArray("final_urls",
				mcp.Required(),
				mcp.Description("Landing page URLs")),
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

			adGroupAd, err := buildResponsiveSearchAd(
				googleads.AdGroupPath(customerID, adGroupID),
				tools.StringSlice(args, "headlines"),
				tools.StringSlice(args, "descriptions"),
				tools.StringSlice(args, "final_urls"),
			)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.AdGroupAds().MutateAdGroupAds(cctx, &services.MutateAdGroupAdsRequest{
				CustomerId: customerID,
				Operations: []*services.AdGroupAdOperation{{
					Operation: &services.AdGroupAdOperation_Create{Create: adGroupAd},
				}},
			})
			if err != nil {
				return tools.ErrorResult(googleads.FlattenError(err)), nil
			}
			resourceName := resp.GetResults()[0].GetResourceName()

			return tools.SuccessResult(map[string]interface{}{
				"ad_group_ad_resource_name": resourceName,
				"ad_id":                     googleads.AdIDFromResourceName(resourceName),
			}), nil
		},
	})
}

// RegisterUpdateAdStatus registers the update_ad_status tool
func RegisterUpdateAdStatus() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "update_ad_status",
		Description: "Update an ad's status through its ad group ad record",
		Category:    "ads",
		Schema: mcp.NewTool("update_ad_status",
			mcp.WithDescription("Update an ad's status through its ad group ad record. Looks up the owning ad group by ad ID first."),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("ad_id",
				mcp.Required(),
				mcp.Description("The ad ID (digits only)")),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("AdGroupAd status enum name (e.g. ENABLED, PAUSED, REMOVED)")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			adID, err := tools.RequiredString(args, "ad_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			status, err := tools.RequiredString(args, "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			statusValue, err := googleads.ParseEnum(enums.AdGroupAdStatusEnum_AdGroupAdStatus_value, status, "status")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			query := fmt.Sprintf(
				"SELECT ad_group.id FROM ad_group_ad WHERE ad_group_ad.ad.id = %s LIMIT 1",
				adID,
			)
			rows, err := client.SearchRows(cctx, customerID, query)
			if err != nil {
				return tools.ErrorResult(googleads.FlattenError(err)), nil
			}
			if len(rows) == 0 {
				return tools.ErrorResultf("Ad not found: %s", adID), nil
			}
			adGroupID := fmt.Sprintf("%d", rows[0].GetAdGroup().GetId())

			resourceName := googleads.AdGroupAdPath(customerID, adGroupID, adID)
			op := &services.AdGroupAdOperation{
				UpdateMask: &fieldmaskpb.FieldMask{Paths: []string{"status"}},
				Operation: &services.AdGroupAdOperation_Update{
					Update: &resources.AdGroupAd{
						ResourceName: resourceName,
						Status:       enums.AdGroupAdStatusEnum_AdGroupAdStatus(statusValue),
					},
				},
			}
			if _, err := client.AdGroupAds().MutateAdGroupAds(cctx, &services.MutateAdGroupAdsRequest{
				CustomerId: customerID,
				Operations: []*services.AdGroupAdOperation{op},
			}); err != nil {
				return tools.ErrorResult(googleads.FlattenError(err)), nil
			}

			return tools.SuccessResult(map[string]interface{}{
				"ad_group_ad_resource_name": resourceName,
				"status":                    status,
			}), nil
		},
	})
}
