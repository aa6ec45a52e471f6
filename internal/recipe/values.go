package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

// coerceString flattens a schema.org value to a single string. Values
// appear as plain strings, numbers, lists, or nested objects such as
// {"@type": "Person", "name": "..."}.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return formatNumber(t)
	case []any:
		for _, item := range t {
			if s := coerceString(item); s != "" {
				return s
			}
		}
	case map[string]any:
		for _, key := range []string{"name", "text", "url", "@id"} {
			if s, ok := t[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// coerceURL is coerceString with object keys reordered for image and
// link values, where {"@type": "ImageObject", "url": "..."} is the
// common shape and "name" would be a caption.
func coerceURL(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if s := coerceURL(item); s != "" {
				return s
			}
		}
	case map[string]any:
		for _, key := range []string{"url", "contentUrl", "@id"} {
			if s, ok := t[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// coerceStrings flattens a value into a list of strings, expanding
// nested lists and objects and dropping empties.
func coerceStrings(v any) []string {
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			out = append(out, coerceStrings(item)...)
		}
	default:
		if s := coerceString(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// coerceFloat reads a number that publishers emit as either a JSON
// number or a quoted string ("4.5").
func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// splitCSV splits a comma-separated keyword string into trimmed parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func missing(field string) error {
	return fmt.Errorf("%s: %w", field, ErrMissing)
}
