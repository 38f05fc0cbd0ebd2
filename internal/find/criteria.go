package find

import (
	"regexp"
	"sort"
	"strings"

	"github.com/metafind/metafind/internal/config"
)

// Criteria is the set of field constraints for one search request. Pairs are
// held sorted by field name so evaluation order is deterministic.
type Criteria struct {
	pairs []pair
}

type pair struct {
	field   string
	pattern string
	// re is nil when the sanitized pattern failed to compile; such a pair
	// never matches but does not abort the request. err records the
	// failure for diagnostics.
	re  *regexp.Regexp
	err error
}

// Empty reports whether no field constraint was supplied.
func (c Criteria) Empty() bool {
	return len(c.pairs) == 0
}

// Fields returns the constrained field names in evaluation order.
func (c Criteria) Fields() []string {
	out := make([]string, len(c.pairs))
	for i, p := range c.pairs {
		out[i] = p.field
	}
	return out
}

// Summary renders the human-readable criteria record shown on result pages:
// "field=pattern" fragments joined by single spaces, in evaluation order.
func (c Criteria) Summary() string {
	fragments := make([]string, len(c.pairs))
	for i, p := range c.pairs {
		fragments[i] = p.field + "=" + p.pattern
	}
	return strings.Join(fragments, " ")
}

// Issues returns the recovered per-field problems collected while building
// the criteria, in evaluation order. Each is an *InvalidPatternError.
func (c Criteria) Issues() []error {
	var out []error
	for _, p := range c.pairs {
		if p.err != nil {
			out = append(out, p.err)
		}
	}
	return out
}

// BuildCriteria collects the field constraints present in the request: for
// every field whose prefixed parameter carries a non-empty value, the
// sanitized value becomes that field's pattern. Fields without a declaration
// are accepted with string semantics. Patterns compile with
// dot-matches-newline enabled so multi-line field values stay matchable.
func BuildCriteria(cfg *config.Config, params Params) Criteria {
	fields := make(map[string]struct{}, len(params))
	for _, field := range cfg.FieldNames() {
		fields[field] = struct{}{}
	}
	for name := range params {
		if strings.HasPrefix(name, cfg.FieldPrefix) && name != cfg.FieldPrefix {
			fields[strings.TrimPrefix(name, cfg.FieldPrefix)] = struct{}{}
		}
	}

	var c Criteria
	for field := range fields {
		raw := params.Get(cfg.FieldParam(field))
		if raw == "" {
			continue
		}

		pattern := SanitizePattern(raw)
		if pattern == "" {
			continue
		}

		p := pair{field: field, pattern: pattern}
		if re, err := regexp.Compile("(?s)" + pattern); err == nil {
			p.re = re
		} else {
			p.err = &InvalidPatternError{Field: field, Pattern: pattern, Err: err}
		}
		c.pairs = append(c.pairs, p)
	}

	sort.Slice(c.pairs, func(i, j int) bool {
		return c.pairs[i].field < c.pairs[j].field
	})
	return c
}
