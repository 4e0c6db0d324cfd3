package value

// Truthy implements the notion of truthiness used by and/or/not/if (§4.3).
func Truthy(v Value) bool {
	switch v.Kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return !v.n.IsZero()
	case KindString:
		return v.s != ""
	case KindList:
		return len(v.List()) > 0
	case KindMap:
		return v.m.Len() > 0
	case KindSlice:
		return true
	case KindCallable:
		return true
	default:
		return false
	}
}
