package ads

import (
	"fmt"
	"strings"
)

// Resource name constructors for the handful of collections the tools address
// by surrogate id. The Ads API treats these as opaque strings; the formats are
// stable and documented per collection.

func CampaignPath(customerID, campaignID string) string {
	return fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID)
}

func CampaignBudgetPath(customerID, budgetID string) string {
	return fmt.Sprintf("customers/%s/campaignBudgets/%s", customerID, budgetID)
}

func AdGroupPath(customerID, adGroupID string) string {
	return fmt.Sprintf("customers/%s/adGroups/%s", customerID, adGroupID)
}

// AdGroupAdPath builds the composite ad group ad resource name. The trailing
// segment joins the ad group id and ad id with "~".
func AdGroupAdPath(customerID, adGroupID, adID string) string {
	return fmt.Sprintf("customers/%s/adGroupAds/%s~%s", customerID, adGroupID, adID)
}

func AdGroupCriterionPath(customerID, adGroupID, criterionID string) string {
	return fmt.Sprintf("customers/%s/adGroupCriteria/%s~%s", customerID, adGroupID, criterionID)
}

func UserListPath(customerID, userListID string) string {
	return fmt.Sprintf("customers/%s/userLists/%s", customerID, userListID)
}

func ConversionActionPath(customerID, conversionActionID string) string {
	return fmt.Sprintf("customers/%s/conversionActions/%s", customerID, conversionActionID)
}

func RecommendationPath(customerID, recommendationID string) string {
	return fmt.Sprintf("customers/%s/recommendations/%s", customerID, recommendationID)
}

func LanguageConstantPath(languageID string) string {
	return fmt.Sprintf("languageConstants/%s", languageID)
}

func GeoTargetConstantPath(geoTargetID string) string {
	return fmt.Sprintf("geoTargetConstants/%s", geoTargetID)
}

// LastSegment returns the trailing path segment of a resource name.
func LastSegment(resourceName string) string {
	idx := strings.LastIndex(resourceName, "/")
	return resourceName[idx+1:]
}

// AdIDFromResourceName extracts the ad id from a composite ad group ad
// resource name (customers/1/adGroupAds/2~3 -> 3).
func AdIDFromResourceName(resourceName string) string {
	idx := strings.LastIndex(resourceName, "~")
	return resourceName[idx+1:]
}
