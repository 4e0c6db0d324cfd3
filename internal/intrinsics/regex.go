package intrinsics

import (
	"regexp"
	"strings"
	"time"

	"github.com/smartquery/smartquery/internal/config"
	"github.com/smartquery/smartquery/internal/sqerr"
	"github.com/smartquery/smartquery/internal/value"
)

// compileWithFlags translates the Python original's inline flag string
// ("i", "m", "s") to Go regexp's inline flag syntax (§6.3,
// functions.py::_parse_flags). Go's RE2 has no native per-call timeout and
// cannot pathologically backtrack the way PCRE can, so the timeout bound
// below is enforced operationally rather than by the engine itself.
func compileWithFlags(pattern, flags string) (*regexp.Regexp, error) {
	var goFlags string
	for _, r := range strings.ToLower(flags) {
		switch r {
		case 'i', 'm', 's':
			goFlags += string(r)
		}
	}
	src := pattern
	if goFlags != "" {
		src = "(?" + goFlags + ")" + pattern
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, sqerr.Runtimef("invalid regular expression %q: %s", pattern, err)
	}
	return re, nil
}

// runBounded executes fn on its own goroutine and fails with a Timeout
// error if it doesn't return within config.RegexTimeout (§6.3 "enforces a
// fixed timeout").
func runBounded(fn func()) error {
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-time.After(config.RegexTimeout):
		return sqerr.RegexTimeout("regex operation")
	}
}

func optionalFlagsArg(args []value.Value, i int) (string, error) {
	if i >= len(args) || args[i].IsNull() {
		return "", nil
	}
	return strArg(args, i, "match")
}

// reMatch mirrors functions.py::_match: the first full match, or null.
func reMatch(args []value.Value) (value.Value, error) {
	if err := arity("match", args, 2, 3); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "match")
	if err != nil {
		return value.Value{}, err
	}
	pattern, err := strArg(args, 1, "match")
	if err != nil {
		return value.Value{}, err
	}
	flags, err := optionalFlagsArg(args, 2)
	if err != nil {
		return value.Value{}, err
	}
	re, err := compileWithFlags(pattern, flags)
	if err != nil {
		return value.Value{}, err
	}

	var loc []int
	if err := runBounded(func() { loc = re.FindStringIndex(s) }); err != nil {
		return value.Value{}, err
	}
	if loc == nil {
		return value.Null(), nil
	}
	return value.String(s[loc[0]:loc[1]]), nil
}

// reMatchGroups mirrors functions.py::_match_groups: [full, group1, ...],
// or null if there's no match.
func reMatchGroups(args []value.Value) (value.Value, error) {
	if err := arity("match_groups", args, 2, 3); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "match_groups")
	if err != nil {
		return value.Value{}, err
	}
	pattern, err := strArg(args, 1, "match_groups")
	if err != nil {
		return value.Value{}, err
	}
	flags, err := optionalFlagsArg(args, 2)
	if err != nil {
		return value.Value{}, err
	}
	re, err := compileWithFlags(pattern, flags)
	if err != nil {
		return value.Value{}, err
	}

	var groups []string
	if err := runBounded(func() { groups = re.FindStringSubmatch(s) }); err != nil {
		return value.Value{}, err
	}
	if groups == nil {
		return value.Null(), nil
	}
	out := make([]value.Value, len(groups))
	for i, g := range groups {
		out[i] = value.String(g)
	}
	return value.List(out), nil
}

// reMatchAll mirrors functions.py::_match_all: every non-overlapping
// match's full text.
func reMatchAll(args []value.Value) (value.Value, error) {
	if err := arity("match_all", args, 2, 3); err != nil {
		return value.Value{}, err
	}
	s, err := strArg(args, 0, "match_all")
	if err != nil {
		return value.Value{}, err
	}
	pattern, err := strArg(args, 1, "match_all")
	if err != nil {
		return value.Value{}, err
	}
	flags, err := optionalFlagsArg(args, 2)
	if err != nil {
		return value.Value{}, err
	}
	re, err := compileWithFlags(pattern, flags)
	if err != nil {
		return value.Value{}, err
	}

	var matches []string
	if err := runBounded(func() { matches = re.FindAllString(s, -1) }); err != nil {
		return value.Value{}, err
	}
	out := make([]value.Value, len(matches))
	for i, m := range matches {
		out[i] = value.String(m)
	}
	return value.List(out), nil
}
