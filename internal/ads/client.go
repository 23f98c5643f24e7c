package ads

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"strings"

	"github.com/shenzhencenter/google-ads-pb/services"
	"golang.org/x/oauth2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcoauth "google.golang.org/grpc/credentials/oauth"
	"google.golang.org/grpc/metadata"
)

const apiEndpoint = "googleads.googleapis.com:443"

// Client is an authenticated handle on the Google Ads API: one gRPC
// connection plus the request headers every call needs. It is safe for
// concurrent use; per-call state (the acting manager account) travels through
// CallContext rather than by mutating the handle.
type Client struct {
	conn            *grpc.ClientConn
	developerToken  string
	loginCustomerID string
}

// NewClient dials the Ads API with the given token source. developerToken may
// be empty when the credential source could not furnish one; the remote
// service rejects such calls, which is surfaced like any other fault.
func NewClient(ts oauth2.TokenSource, developerToken, loginCustomerID string) (*Client, error) {
	conn, err := grpc.NewClient(apiEndpoint,
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})),
		grpc.WithPerRPCCredentials(grpcoauth.TokenSource{TokenSource: ts}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", apiEndpoint, err)
	}

	return &Client{
		conn:            conn,
		developerToken:  developerToken,
		loginCustomerID: NormalizeCustomerID(loginCustomerID),
	}, nil
}

// NormalizeCustomerID strips dashes and whitespace from a customer id so
// 123-456-7890 and 1234567890 address the same account.
func NormalizeCustomerID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	return strings.Join(strings.Fields(id), "")
}

// CallContext returns a child context carrying the developer-token and
// login-customer-id headers for one call. A non-empty override replaces the
// handle's default acting account for that call only.
func (c *Client) CallContext(ctx context.Context, loginCustomerID string) context.Context {
	pairs := make([]string, 0, 4)
	if c.developerToken != "" {
		pairs = append(pairs, "developer-token", c.developerToken)
	}
	acting := NormalizeCustomerID(loginCustomerID)
	if acting == "" {
		acting = c.loginCustomerID
	}
	if acting != "" {
		pairs = append(pairs, "login-customer-id", acting)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Typed service accessors. The generated clients are stateless wrappers over
// the shared connection.

func (c *Client) GoogleAds() services.GoogleAdsServiceClient {
	return services.NewGoogleAdsServiceClient(c.conn)
}

func (c *Client) Customers() services.CustomerServiceClient {
	return services.NewCustomerServiceClient(c.conn)
}

func (c *Client) Campaigns() services.CampaignServiceClient {
	return services.NewCampaignServiceClient(c.conn)
}

func (c *Client) CampaignBudgets() services.CampaignBudgetServiceClient {
	return services.NewCampaignBudgetServiceClient(c.conn)
}

func (c *Client) AdGroups() services.AdGroupServiceClient {
	return services.NewAdGroupServiceClient(c.conn)
}

func (c *Client) AdGroupAds() services.AdGroupAdServiceClient {
	return services.NewAdGroupAdServiceClient(c.conn)
}

func (c *Client) AdGroupCriteria() services.AdGroupCriterionServiceClient {
	return services.NewAdGroupCriterionServiceClient(c.conn)
}

func (c *Client) CampaignCriteria() services.CampaignCriterionServiceClient {
	return services.NewCampaignCriterionServiceClient(c.conn)
}

func (c *Client) UserLists() services.UserListServiceClient {
	return services.NewUserListServiceClient(c.conn)
}

func (c *Client) OfflineUserDataJobs() services.OfflineUserDataJobServiceClient {
	return services.NewOfflineUserDataJobServiceClient(c.conn)
}

func (c *Client) ConversionUploads() services.ConversionUploadServiceClient {
	return services.NewConversionUploadServiceClient(c.conn)
}

func (c *Client) KeywordPlanIdeas() services.KeywordPlanIdeaServiceClient {
	return services.NewKeywordPlanIdeaServiceClient(c.conn)
}

func (c *Client) Recommendations() services.RecommendationServiceClient {
	return services.NewRecommendationServiceClient(c.conn)
}

// SearchStream runs a GAQL query over the streaming search endpoint and
// returns every row flattened with FormatRow, keyed by the response field
// mask. ctx must come from CallContext.
func (c *Client) SearchStream(ctx context.Context, customerID, query string) ([]map[string]any, error) {
	stream, err := c.GoogleAds().SearchStream(ctx, &services.SearchGoogleAdsStreamRequest{
		CustomerId: customerID,
		Query:      query,
	})
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	for {
		batch, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		paths := batch.GetFieldMask().GetPaths()
		for _, row := range batch.GetResults() {
			formatted, err := FormatRow(row, paths)
			if err != nil {
				return nil, err
			}
			rows = append(rows, formatted)
		}
	}
	return rows, nil
}

// SearchRows runs a GAQL query over the paginated search endpoint and returns
// the raw rows of the first page. Used for the single-row lookups that
// resolve surrogate ids to resource names.
func (c *Client) SearchRows(ctx context.Context, customerID, query string) ([]*services.GoogleAdsRow, error) {
	resp, err := c.GoogleAds().Search(ctx, &services.SearchGoogleAdsRequest{
		CustomerId: customerID,
		Query:      query,
	})
	if err != nil {
		return nil, err
	}
	return resp.GetResults(), nil
}
