package intrinsics

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/smartquery/smartquery/internal/value"
)

var (
	caseLower = cases.Lower(language.Und)
	caseUpper = cases.Upper(language.Und)
)

// strStartswith/strEndswith mirror str.startswith/str.endswith bound
// methods (§4.5); the receiver arrives first via the dot/pipe calling
// convention (e.g. "name.startswith(\"A\")" lowers to Call("startswith",
// [name, "A"])).
func strStartswith(args []value.Value) (value.Value, error) {
	if err := arity("startswith", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "startswith")
	if err != nil {
		return value.Value{}, err
	}
	prefix, err := strArg(args, 1, "startswith")
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(strings.HasPrefix(s, prefix)), nil
}

func strEndswith(args []value.Value) (value.Value, error) {
	if err := arity("endswith", args, 2, 2); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "endswith")
	if err != nil {
		return value.Value{}, err
	}
	suffix, err := strArg(args, 1, "endswith")
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(strings.HasSuffix(s, suffix)), nil
}

// strLower/strUpper use golang.org/x/text/cases rather than
// strings.ToLower/ToUpper so multi-byte, non-ASCII names (Cyrillic,
// Turkish dotless-i, etc.) case-fold the way Python's str.lower/upper do.
func strLower(args []value.Value) (value.Value, error) {
	if err := arity("lower", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "lower")
	if err != nil {
		return value.Value{}, err
	}
	return value.String(caseLower.String(s)), nil
}

func strUpper(args []value.Value) (value.Value, error) {
	if err := arity("upper", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "upper")
	if err != nil {
		return value.Value{}, err
	}
	return value.String(caseUpper.String(s)), nil
}

func strStrip(args []value.Value) (value.Value, error) {
	if err := arity("strip", args, 1, 1); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "strip")
	if err != nil {
		return value.Value{}, err
	}
	return value.String(strings.TrimSpace(s)), nil
}

// strReplace mirrors functions.py::_replace, where count=-1 (the
// default) means "replace every occurrence" (Python's str.replace count
// semantics, where a negative count also means unlimited).
func strReplace(args []value.Value) (value.Value, error) {
	if err := arity("replace", args, 3, 4); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "replace")
	if err != nil {
		return value.Value{}, err
	}
	old, err := strArg(args, 1, "replace")
	if err != nil {
		return value.Value{}, err
	}
	newS, err := strArg(args, 2, "replace")
	if err != nil {
		return value.Value{}, err
	}
	count, err := intArgDefault(args, 3, -1)
	if err != nil {
		return value.Value{}, err
	}
	if count < 0 {
		count = -1 // strings.Replace treats any negative n as "all"
	}
	return value.String(strings.Replace(s, old, newS, count)), nil
}

// strSplit mirrors functions.py::_split (str.split(sep, maxsplit)).
func strSplit(args []value.Value) (value.Value, error) {
	if err := arity("split", args, 1, 3); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "split")
	if err != nil {
		return value.Value{}, err
	}
	sep := " "
	if len(args) > 1 {
		sep, err = strArg(args, 1, "split")
		if err != nil {
			return value.Value{}, err
		}
	}
	maxSplit, err := intArgDefault(args, 2, -1)
	if err != nil {
		return value.Value{}, err
	}

	var parts []string
	if maxSplit < 0 {
		parts = strings.Split(s, sep)
	} else {
		parts = strings.SplitN(s, sep, maxSplit+1)
	}
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.String(p)
	}
	return value.List(out), nil
}

// strJoin mirrors functions.py::_join, stringifying each element via the
// canonical display form before joining.
func strJoin(args []value.Value) (value.Value, error) {
	if err := arity("join", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	items, err := listArg(args, 0, "join")
	if err != nil {
		return value.Value{}, err
	}
	sep := "\n"
	if len(args) > 1 {
		sep, err = strArg(args, 1, "join")
		if err != nil {
			return value.Value{}, err
		}
	}
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = value.ToDisplayString(v)
	}
	return value.String(strings.Join(parts, sep)), nil
}

