// Package planner provides keyword idea generation tools.
package planner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/common"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

// defaultLanguageID is the language constant criterion ID for English.
const defaultLanguageID = "1000"

func init() {
	RegisterGenerateKeywordIdeas()
}

// applySeed sets the request seed from keyword and URL inputs. At least one
// of the two must be present.
func applySeed(request *services.GenerateKeywordIdeasRequest, keywords []string, pageURL string) error {
	switch {
	case len(keywords) > 0 && pageURL != "":
		request.Seed = &services.GenerateKeywordIdeasRequest_KeywordAndUrlSeed{
			KeywordAndUrlSeed: &services.KeywordAndUrlSeed{
				Url:      proto.String(pageURL),
				Keywords: keywords,
			},
		}
	case len(keywords) > 0:
		request.Seed = &services.GenerateKeywordIdeasRequest_KeywordSeed{
			KeywordSeed: &services.KeywordSeed{Keywords: keywords},
		}
	case pageURL != "":
		request.Seed = &services.GenerateKeywordIdeasRequest_UrlSeed{
			UrlSeed: &services.UrlSeed{Url: proto.String(pageURL)},
		}
	default:
		return errors.New("at least one of keywords or page_url is required")
	}
	return nil
}

// monthRange resolves the historical metrics window. It returns nil when the
// caller supplied no date field at all. Missing bounds default to the trailing
// twelve months ending with the current month.
func monthRange(args map[string]interface{}, now time.Time) (*common.YearMonthRange, error) {
	if !hasDateField(args) {
		return nil, nil
	}
	// Anchor on the first of the month so month arithmetic never rolls over.
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	defaultEnd := base
	defaultStart := base.AddDate(0, -11, 0)

	start, err := yearMonth(args, "start_year", "start_month", defaultStart)
	if err != nil {
		return nil, err
	}
	end, err := yearMonth(args, "end_year", "end_month", defaultEnd)
	if err != nil {
		return nil, err
	}
	return &common.YearMonthRange{Start: start, End: end}, nil
}

func hasDateField(args map[string]interface{}) bool {
	for _, key := range []string{"start_year", "start_month", "end_year", "end_month"} {
		if _, ok := args[key]; ok {
			return true
		}
	}
	return false
}

func yearMonth(args map[string]interface{}, yearKey, monthKey string, fallback time.Time) (*common.YearMonth, error) {
	year := int64(fallback.Year())
	if v, ok := tools.OptionalInt(args, yearKey); ok {
		year = v
	}
	monthName := strings.ToUpper(fallback.Month().String())
	if v := tools.OptionalString(args, monthKey, ""); v != "" {
		monthName = strings.ToUpper(v)
	}
	monthValue, err := ads.ParseEnum(enums.MonthOfYearEnum_MonthOfYear_value, monthName, monthKey)
	if err != nil {
		return nil, err
	}
	return &common.YearMonth{
		Year:  year,
		Month: enums.MonthOfYearEnum_MonthOfYear(monthValue),
	}, nil
}

// RegisterGenerateKeywordIdeas registers the generate_keyword_ideas tool
func RegisterGenerateKeywordIdeas() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "generate_keyword_ideas",
		Description: "Generate keyword ideas with historical search metrics",
		Category:    "planner",
		Schema: mcp.NewTool("generate_keyword_ideas",
			mcp.WithDescription("Generate keyword ideas from seed keywords and/or a page URL, with historical search metrics"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithArray("keywords",
				mcp.Description("Seed keyword texts")),
			mcp.WithString("page_url",
				mcp.Description("Seed landing page URL")),
			mcp.WithString("language_id",
				mcp.Description("Language constant criterion ID (default: 1000, English)")),
			mcp.WithArray("geo_target_ids",
				mcp.Description("Geo target constant criterion IDs")),
			mcp.WithNumber("start_year",
				mcp.Description("Historical range start year")),
			mcp.WithString("start_month",
				mcp.Description("Historical range start month name, e.g. JANUARY")),
			mcp.WithNumber("end_year",
				mcp.Description("Historical range end year")),
			mcp.WithString("end_month",
				mcp.Description("Historical range end month name, e.g. DECEMBER")),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of ideas to return")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			yearMonths, err := monthRange(args, time.Now())
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			request := &services.GenerateKeywordIdeasRequest{
				CustomerId:         customerID,
				Language:           proto.String(ads.LanguageConstantPath(tools.OptionalString(args, "language_id", defaultLanguageID))),
				KeywordPlanNetwork: enums.KeywordPlanNetworkEnum_GOOGLE_SEARCH_AND_PARTNERS,
			}
			if yearMonths != nil {
				request.HistoricalMetricsOptions = &common.HistoricalMetricsOptions{
					YearMonthRange: yearMonths,
				}
			}
			for _, geoID := range tools.StringSlice(args, "geo_target_ids") {
				request.GeoTargetConstants = append(request.GeoTargetConstants, ads.GeoTargetConstantPath(geoID))
			}
			if limit, ok := tools.OptionalInt(args, "limit"); ok && limit > 0 {
				request.PageSize = int32(limit)
			}
			if err := applySeed(request,
				tools.StringSlice(args, "keywords"),
				tools.OptionalString(args, "page_url", ""),
			); err != nil {
				return tools.ErrorResult(err.Error()), nil
			}

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.KeywordPlanIdeas().GenerateKeywordIdeas(cctx, request)
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}

			ideas := make([]map[string]interface{}, 0, len(resp.GetResults()))
			for _, result := range resp.GetResults() {
				idea := map[string]interface{}{
					"text": result.GetText(),
				}
				if metrics := result.GetKeywordIdeaMetrics(); metrics != nil {
					idea["avg_monthly_searches"] = metrics.GetAvgMonthlySearches()
					idea["competition"] = metrics.GetCompetition().String()
					idea["competition_index"] = metrics.GetCompetitionIndex()
					idea["low_top_of_page_bid_micros"] = metrics.GetLowTopOfPageBidMicros()
					idea["high_top_of_page_bid_micros"] = metrics.GetHighTopOfPageBidMicros()
					months := make([]map[string]interface{}, 0, len(metrics.GetMonthlySearchVolumes()))
					for _, volume := range metrics.GetMonthlySearchVolumes() {
						months = append(months, map[string]interface{}{
							"year":             volume.GetYear(),
							"month":            volume.GetMonth().String(),
							"monthly_searches": volume.GetMonthlySearches(),
						})
					}
					idea["monthly_search_volumes"] = months
				}
				ideas = append(ideas, idea)
			}

			return tools.SuccessResult(map[string]interface{}{
				"ideas": ideas,
				"count": len(ideas),
			}), nil
		},
	})
}
