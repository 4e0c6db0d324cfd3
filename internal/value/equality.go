package value

// Equal implements "==" (§4.3). Values of different kinds are never equal
// (except that null only equals null).
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n.Equal(b.n)
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.List()) != len(b.List()) {
			return false
		}
		for i := range a.List() {
			if !Equal(a.List()[i], b.List()[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m.Len() != b.m.Len() {
			return false
		}
		ok := true
		a.m.Each(func(k string, av Value) {
			bv, present := b.m.Get(k)
			if !present || !Equal(av, bv) {
				ok = false
			}
		})
		return ok
	case KindSlice:
		return intPtrEqual(a.sl.Start, b.sl.Start) &&
			intPtrEqual(a.sl.Stop, b.sl.Stop) &&
			intPtrEqual(a.sl.Step, b.sl.Step)
	case KindCallable:
		return false
	default:
		return false
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
