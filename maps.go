package weetools

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// SnakeKeys returns a copy of m with every string key converted to its
// canonical snake_case form. Nested maps and maps inside slices are
// converted too; values are otherwise left alone.
func SnakeKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return lo.MapEntries(m, func(k string, v any) (string, any) {
		return toSnake(k), snakeValue(v)
	})
}

func snakeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return SnakeKeys(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = snakeValue(e)
		}
		return out
	default:
		return v
	}
}

// toSnake converts CamelCase, kebab-case and space separated keys to
// lower snake_case.
func toSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}

// FlattenErrors flattens a nested validation-error structure into a map of
// dotted field paths to message lists. Leaves may be a string, a list of
// strings, or a map with a "message" string and optional values for
// %{name} placeholders.
func FlattenErrors(errs map[string]any) map[string][]string {
	out := map[string][]string{}
	flattenErrors("", errs, out)
	return out
}

func flattenErrors(prefix string, v any, out map[string][]string) {
	switch t := v.(type) {
	case map[string]any:
		if msg, ok := t["message"].(string); ok {
			out[prefix] = append(out[prefix], interpolate(msg, t))
			return
		}
		for k, child := range t {
			p := k
			if prefix != "" {
				p = prefix + "." + k
			}
			flattenErrors(p, child, out)
		}
	case []any:
		for _, e := range t {
			flattenErrors(prefix, e, out)
		}
	case []string:
		out[prefix] = append(out[prefix], t...)
	case string:
		out[prefix] = append(out[prefix], t)
	default:
		if t != nil {
			out[prefix] = append(out[prefix], fmt.Sprintf("%v", t))
		}
	}
}

// interpolate substitutes %{name} placeholders in msg with the matching
// values from opts. Unknown placeholders are left untouched.
func interpolate(msg string, opts map[string]any) string {
	for k, v := range opts {
		if k == "message" {
			continue
		}
		msg = strings.ReplaceAll(msg, "%{"+k+"}", fmt.Sprintf("%v", v))
	}
	return msg
}
