package intrinsics

import (
	"strings"

	"github.com/smartquery/smartquery/internal/config"
	"github.com/smartquery/smartquery/internal/value"
)

// pretty mirrors functions.py::pretty: a map renders as "k: v" lines
// joined by sep (default newline), a list renders each element's display
// form joined by sep (default ", "), a number gets right-to-left digit
// grouping (default space-separated, §6.4), and anything else falls back
// to its canonical display string.
//
// The digit grouping walks str(value) char-by-char from the right in
// groups of three — including the decimal point and fractional digits,
// not just the integer part — exactly reproducing the original's
// (slightly naive) chunking rather than a "nicer" locale-aware grouping.
func pretty(args []value.Value) (value.Value, error) {
	if err := arity("pretty", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	v := args[0]

	switch v.Kind {
	case value.KindMap:
		sep := "\n"
		if len(args) > 1 {
			var err error
			sep, err = strArg(args, 1, "pretty")
			if err != nil {
				return value.Value{}, err
			}
		}
		var parts []string
		v.Map().Each(func(k string, val value.Value) {
			parts = append(parts, k+": "+value.ToDisplayString(val))
		})
		return value.String(strings.Join(parts, sep)), nil

	case value.KindList:
		sep := ", "
		if len(args) > 1 {
			var err error
			sep, err = strArg(args, 1, "pretty")
			if err != nil {
				return value.Value{}, err
			}
		}
		items := v.List()
		parts := make([]string, len(items))
		for i, e := range items {
			parts[i] = value.ToDisplayString(e)
		}
		return value.String(strings.Join(parts, sep)), nil

	case value.KindNumber:
		sep := config.PrettyGroupSeparator
		if len(args) > 1 {
			var err error
			sep, err = strArg(args, 1, "pretty")
			if err != nil {
				return value.Value{}, err
			}
		}
		return value.String(groupDigits(v.Number().String(), sep)), nil
	}

	return value.String(value.ToDisplayString(v)), nil
}

func groupDigits(s, sep string) string {
	negative := strings.HasPrefix(s, "-")
	unsigned := s
	if negative {
		unsigned = s[1:]
	}
	if len(unsigned) < 5 {
		return s
	}

	var chunks []string
	for i := 0; i < len(unsigned); i += 3 {
		from := len(unsigned) - i - 3
		if from < 0 {
			from = 0
		}
		chunks = append([]string{unsigned[from : len(unsigned)-i]}, chunks...)
	}
	joined := strings.Join(chunks, sep)
	if negative {
		return "-" + joined
	}
	return joined
}
