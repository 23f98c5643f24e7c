package ads

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenzhencenter/google-ads-pb/services"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// FormatRow flattens one search result row into a map keyed by the requested
// field paths. Values are normalized so the result serializes to plain JSON:
// repeated fields become lists, nested messages become nested maps with enums
// rendered as their symbolic names, enum scalars become name strings, and
// everything else passes through unchanged.
func FormatRow(row *services.GoogleAdsRow, fieldPaths []string) (map[string]any, error) {
	out := make(map[string]any, len(fieldPaths))
	for _, path := range fieldPaths {
		value, err := formatPath(row.ProtoReflect(), strings.Split(path, "."))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", path, err)
		}
		out[path] = value
	}
	return out, nil
}

func formatPath(msg protoreflect.Message, segments []string) (any, error) {
	fields := msg.Descriptor().Fields()
	fd := fields.ByName(protoreflect.Name(segments[0]))
	if fd == nil {
		return nil, fmt.Errorf("unknown field %q on %s", segments[0], msg.Descriptor().FullName())
	}

	if len(segments) > 1 {
		if fd.Kind() != protoreflect.MessageKind || fd.IsList() {
			return nil, fmt.Errorf("field %q is not a nested message", segments[0])
		}
		return formatPath(msg.Get(fd).Message(), segments[1:])
	}

	return formatValue(fd, msg.Get(fd))
}

func formatValue(fd protoreflect.FieldDescriptor, v protoreflect.Value) (any, error) {
	if fd.IsList() {
		list := v.List()
		out := make([]any, 0, list.Len())
		for i := 0; i < list.Len(); i++ {
			elem, err := formatScalar(fd, list.Get(i))
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	}
	return formatScalar(fd, v)
}

func formatScalar(fd protoreflect.FieldDescriptor, v protoreflect.Value) (any, error) {
	switch fd.Kind() {
	case protoreflect.EnumKind:
		if desc := fd.Enum().Values().ByNumber(v.Enum()); desc != nil {
			return string(desc.Name()), nil
		}
		return int32(v.Enum()), nil

	case protoreflect.MessageKind, protoreflect.GroupKind:
		// Round-trip through canonical JSON so nested enums come out as
		// names and well-known types get their JSON shape.
		raw, err := protojson.Marshal(v.Message().Interface())
		if err != nil {
			return nil, err
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, err
		}
		return decoded, nil

	default:
		return v.Interface(), nil
	}
}
