package ads

import (
	"sort"
	"strings"

	adserrors "github.com/shenzhencenter/google-ads-pb/errors"
	"google.golang.org/grpc/status"
)

// FlattenError turns a gRPC error from the Ads API into a single message with
// one line per underlying failure reason. Non-Ads errors pass through as their
// plain error string. No retry decision is made here: every fault is terminal
// for the call.
func FlattenError(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return err.Error()
	}

	var lines []string
	for _, detail := range st.Details() {
		failure, ok := detail.(*adserrors.GoogleAdsFailure)
		if !ok {
			continue
		}
		for _, adsErr := range failure.GetErrors() {
			if msg := adsErr.GetMessage(); msg != "" {
				lines = append(lines, msg)
			}
		}
	}

	if len(lines) == 0 {
		return st.Message()
	}
	return strings.Join(lines, "\n")
}

// ParseEnum resolves an enum name against a generated protobuf value map. An
// unknown name fails before any request is built, with the valid names in the
// message so the caller can self-correct.
func ParseEnum(values map[string]int32, name, field string) (int32, error) {
	if v, ok := values[name]; ok {
		return v, nil
	}

	valid := make([]string, 0, len(values))
	for k := range values {
		if k == "UNSPECIFIED" || k == "UNKNOWN" {
			continue
		}
		valid = append(valid, k)
	}
	sort.Strings(valid)
	return 0, &InvalidEnumError{Field: field, Value: name, Valid: valid}
}

// InvalidEnumError reports an enum name that does not exist in the target
// enumeration.
type InvalidEnumError struct {
	Field string
	Value string
	Valid []string
}

func (e *InvalidEnumError) Error() string {
	return "invalid " + e.Field + ": " + e.Value + " (valid values: " + strings.Join(e.Valid, ", ") + ")"
}
