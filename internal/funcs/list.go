package funcs

import (
	"regexp"
	"strings"
)

// List returns one entry per registered key in registration order. A
// function with N aliases appears N+1 times, each entry named after its key
// and with no aliases of its own.
func (r *Registry) List() []Definition {
	out := make([]Definition, 0, len(r.table.keys))
	for _, key := range r.table.keys {
		out = append(out, r.table.defs[key].standalone(key))
	}
	return out
}

// ListPattern returns the entries of List whose key matches pattern. The
// pattern is a regular expression that must match the whole canonical key,
// case-insensitively; "day.*" matches day, day_of_month, day_of_week and
// day_of_year. A blank pattern lists everything.
//
// A pattern without escapes or character classes is also tried in its
// normalized spelling, so "DayOf.*" lists the same keys as "day_of.*".
// Patterns using either are matched only as written.
func (r *Registry) ListPattern(pattern string) ([]Definition, error) {
	if strings.TrimSpace(pattern) == "" {
		return r.List(), nil
	}

	res, err := compileListing(pattern)
	if err != nil {
		return nil, err
	}

	out := []Definition{}
	for _, key := range r.table.keys {
		for _, re := range res {
			if re.MatchString(key) {
				out = append(out, r.table.defs[key].standalone(key))
				break
			}
		}
	}
	return out, nil
}

// compileListing compiles pattern and, when it can be normalized safely,
// its normalized spelling.
func compileListing(pattern string) ([]*regexp.Regexp, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	res := []*regexp.Regexp{re}

	if strings.ContainsAny(pattern, `\[`) {
		return res, nil
	}
	if alt := Normalize(pattern); alt != pattern {
		if altRe, err := CompilePattern(alt); err == nil {
			res = append(res, altRe)
		}
	}
	return res, nil
}

// Keys returns every registered key in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.table.keys...)
}

// CompilePattern compiles a listing pattern into an anchored,
// case-insensitive regular expression. The pattern must compile on its own
// first, so an unbalanced group cannot escape the anchors.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	re, err := regexp.Compile(`^(?i:` + pattern + `)$`)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}
