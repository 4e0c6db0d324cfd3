package value

// DeepCopy clones v so that storing it (via Assign, ShortOp,
// __setitem__/__setitem_with_op__) decouples the stored artifact from any
// live host-side reference (§3.5 invariant (d)). Scalars are copied by
// value already; lists and maps are recursively cloned. A callable is
// returned as-is: Python's copy.deepcopy treats functions as atomic, and
// there is nothing meaningful to clone about a closure.
func DeepCopy(v Value) Value {
	switch v.Kind {
	case KindList:
		cloned := make([]Value, len(v.List()))
		for i, e := range v.List() {
			cloned[i] = DeepCopy(e)
		}
		return List(cloned)
	case KindMap:
		return MapVal(v.m.Clone())
	default:
		return v
	}
}
