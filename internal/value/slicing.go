package value

import "github.com/smartquery/smartquery/internal/sqerr"

// normalizeSlice resolves a Slice descriptor's possibly-absent,
// possibly-negative Start/Stop/Step against a container of the given
// length into concrete (start, stop, step) loop bounds, following
// CPython's PySlice_GetIndicesEx algorithm so "arr[::-1]" reverses and
// "arr[:]" round-trips the whole container (§3.3, §8).
func normalizeSlice(sl Slice, length int) (start, stop, step int, err error) {
	step = 1
	if sl.Step != nil {
		step = *sl.Step
		if step == 0 {
			return 0, 0, 0, sqerr.Runtimef("slice step cannot be zero")
		}
	}

	var lower, upper int
	if step < 0 {
		lower, upper = -1, length-1
	} else {
		lower, upper = 0, length
	}

	if sl.Start == nil {
		if step < 0 {
			start = upper
		} else {
			start = lower
		}
	} else {
		start = *sl.Start
		if start < 0 {
			start += length
			if start < lower {
				start = lower
			}
		} else if start > upper {
			start = upper
		}
	}

	if sl.Stop == nil {
		if step < 0 {
			stop = lower
		} else {
			stop = upper
		}
	} else {
		stop = *sl.Stop
		if stop < 0 {
			stop += length
			if stop < lower {
				stop = lower
			}
		} else if stop > upper {
			stop = upper
		}
	}

	return start, stop, step, nil
}

// SliceList applies a Slice descriptor to a list (§3.3).
func SliceList(items []Value, sl Slice) ([]Value, error) {
	start, stop, step, err := normalizeSlice(sl, len(items))
	if err != nil {
		return nil, err
	}
	var out []Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, items[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// SliceString applies a Slice descriptor to a string, operating on runes
// so multi-byte characters slice correctly.
func SliceString(s string, sl Slice) (string, error) {
	runes := []rune(s)
	start, stop, step, err := normalizeSlice(sl, len(runes))
	if err != nil {
		return "", err
	}
	var out []rune
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, runes[i])
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, runes[i])
		}
	}
	return string(out), nil
}
