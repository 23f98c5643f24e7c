// Package conversions provides offline conversion upload tools.
package conversions

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

func init() {
	RegisterUploadOfflineConversion()
}

// RegisterUploadOfflineConversion registers the upload_offline_conversion tool
func RegisterUploadOfflineConversion() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "upload_offline_conversion",
		Description: "Upload a click conversion keyed by GCLID",
		Category:    "conversions",
		Schema: mcp.NewTool("upload_offline_conversion",
			mcp.WithDescription("Upload an offline click conversion keyed by GCLID"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("gclid",
				mcp.Required(),
				mcp.Description("The Google click ID recorded at click time")),
			mcp.WithString("conversion_action_id",
				mcp.Required(),
				mcp.Description("The conversion action ID (digits only)")),
			mcp.WithString("conversion_date_time",
				mcp.Required(),
				mcp.Description("Conversion time, e.g. 2024-01-15 12:30:00+00:00")),
			mcp.WithNumber("conversion_value",
				mcp.Description("Conversion value in the account currency")),
			mcp.WithString("currency_code",
				mcp.Description("ISO 4217 currency code, e.g. EUR")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			gclid, err := tools.RequiredString(args, "gclid")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			conversionActionID, err := tools.RequiredString(args, "conversion_action_id")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			conversionDateTime, err := tools.RequiredString(args, "conversion_date_time")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			conversion := &services.ClickConversion{
				Gclid:              proto.String(gclid),
				ConversionAction:   proto.String(ads.ConversionActionPath(customerID, conversionActionID)),
				ConversionDateTime: proto.String(conversionDateTime),
			}
			if value, ok := tools.OptionalFloat(args, "conversion_value"); ok {
				conversion.ConversionValue = proto.Float64(value)
			}
			if currency := tools.OptionalString(args, "currency_code", ""); currency != "" {
				conversion.CurrencyCode = proto.String(currency)
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.ConversionUploads().UploadClickConversions(cctx, &services.UploadClickConversionsRequest{
				CustomerId:     customerID,
				Conversions:    []*services.ClickConversion{conversion},
				PartialFailure: true,
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			result := map[string]interface{}{
				"conversion_action":    conversion.GetConversionAction(),
				"conversion_date_time": conversionDateTime,
				"gclid":                gclid,
			}
			if pf := resp.GetPartialFailureError(); pf != nil {
				result["partial_failure_code"] = pf.GetCode()
				result["partial_failure_message"] = pf.GetMessage()
			}
			return tools.SuccessResult(result), nil
		},
	})
}
