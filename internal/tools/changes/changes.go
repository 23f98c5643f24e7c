// Package changes provides change event history tools.
package changes

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

// changeEventLimit caps the result set; the API rejects unbounded
// change_event queries and allows at most 10000 rows.
const changeEventLimit = 10000

func init() {
	RegisterGetChangeEvents()
}

// changeEventQuery builds the change_event report query for a whole-day
// window. endDate defaults to startDate when empty.
func changeEventQuery(startDate, endDate, resourceType string) string {
	if endDate == "" {
		endDate = startDate
	}
	query := "SELECT change_event.change_date_time, change_event.change_resource_type, " +
		"change_event.change_resource_name, change_event.client_type, " +
		"change_event.user_email, change_event.resource_change_operation " +
		"FROM change_event " +
		fmt.Sprintf("WHERE change_event.change_date_time >= '%s 00:00:00' ", startDate) +
		fmt.Sprintf("AND change_event.change_date_time <= '%s 23:59:59'", endDate)
	if resourceType != "" {
		query += fmt.Sprintf(" AND change_event.change_resource_type = '%s'", strings.ToUpper(resourceType))
	}
	query += fmt.Sprintf(" ORDER BY change_event.change_date_time DESC LIMIT %d", changeEventLimit)
	return query
}

// RegisterGetChangeEvents registers the get_change_events tool
func RegisterGetChangeEvents() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "get_change_events",
		Description: "List account change events for a date window",
		Category:    "changes",
		Schema: mcp.NewTool("get_change_events",
			mcp.WithDescription("List who changed what in the account over a date window"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("start_date",
				mcp.Required(),
				mcp.Description("Window start date, YYYY-MM-DD")),
			mcp.WithString("end_date",
				mcp.Description("Window end date, YYYY-MM-DD (default: start_date)")),
			mcp.WithString("resource_type",
				mcp.Description("Optional change resource type filter, e.g. CAMPAIGN, AD_GROUP")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			startDate, err := tools.RequiredString(args, "start_date")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			query := changeEventQuery(
				startDate,
				tools.OptionalString(args, "end_date", ""),
				tools.OptionalString(args, "resource_type", ""),
			)

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
				"events": rows,
			}), nil
		},
	})
}
