package value

import (
	"strings"

	"github.com/smartquery/smartquery/internal/sqerr"
)

// Compare implements the relational operators (<, >, <=, >=). Returns
// -1/0/1, or an error if the two values' kinds can't be ordered against
// each other.
func Compare(a, b Value) (int, error) {
	if a.Kind != b.Kind {
		return 0, sqerr.Runtimef("unsupported comparison between %s and %s", a.TypeName(), b.TypeName())
	}
	switch a.Kind {
	case KindNumber:
		return a.n.Cmp(b.n), nil
	case KindString:
		return strings.Compare(a.s, b.s), nil
	case KindBool:
		ai, bi := 0, 0
		if a.b {
			ai = 1
		}
		if b.b {
			bi = 1
		}
		return ai - bi, nil
	default:
		return 0, sqerr.Runtimef("unsupported comparison for kind %s", a.Kind)
	}
}
