package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// EncodeDocument converts a raw store document into a JSON-safe map. The `_id`
// key is renamed to `id` with a string value, timestamps are rendered as
// RFC 3339 UTC, and opaque identifier types are stringified. Nested maps and
// slices are walked recursively. The transform is idempotent and returns nil
// for nil input.
func EncodeDocument(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if key == "_id" {
			out["id"] = stringifyID(value)
			continue
		}
		out[key] = encodeValue(value)
	}
	return out
}

func encodeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case map[string]any:
		return EncodeDocument(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = encodeValue(item)
		}
		return out
	case string, bool, int, int32, int64, float32, float64, json.Number:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return v
	}
}

func stringifyID(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// DecodeSubmission normalises an inbound form or JSON body. Values for the
// configured structured field names arriving as strings are parsed as JSON;
// on parse failure the raw string is kept so validation can reject it
// downstream. Single-element slices on other fields collapse to the sole
// element, which folds url.Values-style form input into scalars.
func DecodeSubmission(values map[string]any, structured []string) map[string]any {
	if values == nil {
		return nil
	}

	structuredSet := make(map[string]struct{}, len(structured))
	for _, name := range structured {
		structuredSet[name] = struct{}{}
	}

	out := make(map[string]any, len(values))
	for key, value := range values {
		value = collapseSingle(value)

		if _, ok := structuredSet[key]; ok {
			if raw, isString := value.(string); isString {
				var parsed any
				if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
					out[key] = parsed
					continue
				}
			}
		}
		out[key] = value
	}
	return out
}

func collapseSingle(value any) any {
	switch v := value.(type) {
	case []string:
		if len(v) == 1 {
			return v[0]
		}
		return v
	case []any:
		if len(v) == 1 {
			return v[0]
		}
		return v
	default:
		return value
	}
}

// StringSlice coerces a normalised submission value into a string slice,
// accepting []any (from JSON), []string, or a single string.
func StringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
