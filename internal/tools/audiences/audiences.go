// Package audiences provides Customer Match user list tools.
//
// Raw emails and phone numbers never leave the process: identifiers are
// normalized and SHA-256 hashed before they are placed in a request.
package audiences

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shenzhencenter/google-ads-pb/common"
	"github.com/shenzhencenter/google-ads-pb/enums"
	"github.com/shenzhencenter/google-ads-pb/resources"
	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/proto"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

// membershipLifeSpanDays is how long a member stays in a list without
// being re-uploaded.
const membershipLifeSpanDays = 30

func init() {
	RegisterCreateCustomerList()
	RegisterAddCustomerListMembers()
	RegisterRemoveCustomerListMembers()
}

// NormalizeAndHash lowercases the identifier, strips surrounding and internal
// whitespace, and returns the hex SHA-256 digest.
func NormalizeAndHash(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.Join(strings.Fields(normalized), "")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// buildUserDataOperations hashes the given emails and phone numbers into
// offline user data job operations. remove selects removal operations
// instead of additions.
func buildUserDataOperations(emails, phones []string, remove bool) ([]*services.OfflineUserDataJobOperation, error) {
	if len(emails) == 0 && len(phones) == 0 {
		return nil, errors.New("at least one of emails or phone_numbers is required")
	}

	identifiers := make([]*common.UserIdentifier, 0, len(emails)+len(phones))
	for _, email := range emails {
		identifiers = append(identifiers, &common.UserIdentifier{
			Identifier: &common.UserIdentifier_HashedEmail{HashedEmail: NormalizeAndHash(email)},
		})
	}
	for _, phone := range phones {
		identifiers = append(identifiers, &common.UserIdentifier{
			Identifier: &common.UserIdentifier_HashedPhoneNumber{HashedPhoneNumber: NormalizeAndHash(phone)},
		})
	}

	ops := make([]*services.OfflineUserDataJobOperation, 0, len(identifiers))
	for _, identifier := range identifiers {
		data := &common.UserData{UserIdentifiers: []*common.UserIdentifier{identifier}}
		op := &services.OfflineUserDataJobOperation{}
		if remove {
			op.Operation = &services.OfflineUserDataJobOperation_Remove{Remove: data}
		} else {
			op.Operation = &services.OfflineUserDataJobOperation_Create{Create: data}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// runMembershipJob creates a Customer Match offline user data job against
// the given user list, adds the operations with partial failure enabled,
// and starts the job.
func runMembershipJob(ctx context.Context, client *ads.Client, customerID, userListResourceName string, ops []*services.OfflineUserDataJobOperation) (map[string]interface{}, error) {
	jobs := client.OfflineUserDataJobs()

	createResp, err := jobs.CreateOfflineUserDataJob(ctx, &services.CreateOfflineUserDataJobRequest{
		CustomerId: customerID,
		Job: &resources.OfflineUserDataJob{
			Type: enums.OfflineUserDataJobTypeEnum_CUSTOMER_MATCH_USER_LIST,
			Metadata: &resources.OfflineUserDataJob_CustomerMatchUserListMetadata{
				CustomerMatchUserListMetadata: &common.CustomerMatchUserListMetadata{
					UserList: proto.String(userListResourceName),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	jobResourceName := createResp.GetResourceName()

	addResp, err := jobs.AddOfflineUserDataJobOperations(ctx, &services.AddOfflineUserDataJobOperationsRequest{
		ResourceName:         jobResourceName,
		EnablePartialFailure: proto.Bool(true),
		Operations:           ops,
	})
	if err != nil {
		return nil, err
	}

	if _, err := jobs.RunOfflineUserDataJob(ctx, &services.RunOfflineUserDataJobRequest{
		ResourceName: jobResourceName,
	}); err != nil {
		return nil, err
	}

	result := map[string]interface{}{
		"job_resource_name": jobResourceName,
		"operation_count":   len(ops),
	}
	if pf := addResp.GetPartialFailureError(); pf != nil {
		result["partial_failure_code"] = pf.GetCode()
		result["partial_failure_message"] = pf.GetMessage()
	}
	return result, nil
}

// RegisterCreateCustomerList registers the create_customer_list tool
func RegisterCreateCustomerList() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "create_customer_list",
		Description: "Create a Customer Match user list",
		Category:    "audiences",
		Schema: mcp.NewTool("create_customer_list",
			mcp.WithDescription("Create a Customer Match user list keyed by contact info"),
			mcp.WithString("customer_id",
				mcp.Required(),
				mcp.Description("The customer account ID (digits only)")),
			mcp.WithString("list_name",
				mcp.Required(),
				mcp.Description("The user list name")),
			mcp.WithString("description",
				mcp.Description("Optional list description")),
			mcp.WithString("login_customer_id",
				mcp.Description("Optional manager account ID (digits only)")),
		),
		Handler: func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
			customerID, err := tools.CustomerID(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			name, err := tools.RequiredString(args, "list_name")
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			description := tools.OptionalString(args, "description", "Customer Match list")

			client, err := tools.Client(ctx)
			if err != nil {
				return tools.ErrorResultf("failed to get Ads client: %v", err), nil
			}
			cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

			resp, err := client.UserLists().MutateUserLists(cctx, &services.MutateUserListsRequest{
				CustomerId: customerID,
				Operations: []*services.UserListOperation{{
					Operation: &services.UserListOperation_Create{
						Create: &resources.UserList{
							Name:               proto.String(name),
							Description:        proto.String(description),
							MembershipLifeSpan: proto.Int64(membershipLifeSpanDays),
							UserList: &resources.UserList_CrmBasedUserList{
								CrmBasedUserList: &common.CrmBasedUserListInfo{
									UploadKeyType: enums.CustomerMatchUploadKeyTypeEnum_CONTACT_INFO,
								},
							},
						},
					},
				}},
			})
			if err != nil {
				return tools.ErrorResult(ads.FlattenError(err)), nil
			}
			resourceName := resp.GetResults()[0].GetResourceName()

			return tools.SuccessResult(map[string]interface{}{
				"user_list_resource_name": resourceName,
				"user_list_id":            ads.LastSegment(resourceName),
			}), nil
		},
	})
}

func memberSchema(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("The customer account ID (digits only)")),
		mcp.WithString("user_list_id",
			mcp.Required(),
			mcp.Description("The user list ID (digits only)")),
		mcp.WithArray("emails",
			mcp.Description("Email addresses; hashed before upload")),
		mcp.WithArray("phone_numbers",
			mcp.Description("Phone numbers in E.164 form; hashed before upload")),
		mcp.WithString("login_customer_id",
			mcp.Description("Optional manager account ID (digits only)")),
	)
}

func memberHandler(remove bool) tools.ToolHandler {
	return func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
		customerID, err := tools.CustomerID(args)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}
		userListID, err := tools.RequiredString(args, "user_list_id")
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}

		ops, err := buildUserDataOperations(
			tools.StringSlice(args, "emails"),
			tools.StringSlice(args, "phone_numbers"),
			remove,
		)
		if err != nil {
			return tools.ErrorResult(err.Error()), nil
		}

		client, err := tools.Client(ctx)
		if err != nil {
			return tools.ErrorResultf("failed to get Ads client: %v", err), nil
		}
		cctx := client.CallContext(ctx, tools.LoginCustomerID(args))

		result, err := runMembershipJob(cctx, client, customerID, ads.UserListPath(customerID, userListID), ops)
		if err != nil {
			return tools.ErrorResult(ads.FlattenError(err)), nil
		}
		return tools.SuccessResult(result), nil
	}
}

// RegisterAddCustomerListMembers registers the add_customer_list_members tool
func RegisterAddCustomerListMembers() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "add_customer_list_members",
		Description: "Add hashed contact identifiers to a Customer Match list",
		Category:    "audiences",
		Schema:      memberSchema("add_customer_list_members", "Add members to a Customer Match user list. Identifiers are hashed before upload."),
		Handler:     memberHandler(false),
	})
}

// RegisterRemoveCustomerListMembers registers the remove_customer_list_members tool
func RegisterRemoveCustomerListMembers() {
	tools.RegisterTool(&tools.ToolRegistration{
		Name:        "remove_customer_list_members",
		Description: "Remove hashed contact identifiers from a Customer Match list",
		Category:    "audiences",
		Schema:      memberSchema("remove_customer_list_members", "Remove members from a Customer Match user list. Identifiers are hashed before upload."),
		Handler:     memberHandler(true),
	})
}
