package value

import (
	"strings"

	"github.com/smartquery/smartquery/internal/sqerr"
)

// Contains implements the "in" operator's membership test (§4.3): list
// membership by element equality, string membership as substring, and
// mapping membership against keys (not values).
func Contains(item, container Value) (bool, error) {
	switch container.Kind {
	case KindList:
		for _, el := range container.List() {
			if Equal(item, el) {
				return true, nil
			}
		}
		return false, nil
	case KindString:
		if item.Kind != KindString {
			return false, sqerr.Runtimef("'in <string>' requires string as left operand, not %s", item.TypeName())
		}
		return strings.Contains(container.s, item.s), nil
	case KindMap:
		key := DictKeyCast(item)
		_, ok := container.m.Get(key)
		return ok, nil
	}
	return false, sqerr.Runtimef("argument of type %q is not iterable", container.TypeName())
}
