package value

import "strings"

// ToDisplayString renders v the way string concatenation ("+"), dict-key
// casting, and fallback stringification all need: a single canonical
// textual form per value kind.
func ToDisplayString(v Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.n.String()
	case KindString:
		return v.s
	case KindList:
		parts := make([]string, len(v.List()))
		for i, e := range v.List() {
			parts[i] = ToDisplayString(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		var parts []string
		v.m.Each(func(k string, val Value) {
			parts = append(parts, k+": "+ToDisplayString(val))
		})
		return "{" + strings.Join(parts, ", ") + "}"
	case KindSlice:
		return "slice"
	case KindCallable:
		return "<callable>"
	default:
		return ""
	}
}
