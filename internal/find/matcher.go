package find

import "github.com/metafind/metafind/internal/catalog"

// Matches evaluates the conjunction of all field constraints against one
// record. A pair succeeds when its pattern finds a substring match in the
// record's value for that field, with a missing value treated as the empty
// string. Evaluation short-circuits on the first failing field; the pair
// order is fixed by Criteria so the result is deterministic. Empty criteria
// never match through this path.
func Matches(rec catalog.Record, c Criteria) bool {
	if c.Empty() {
		return false
	}

	for _, p := range c.pairs {
		if p.re == nil {
			// Pattern failed to compile after sanitization; the field
			// counts as unmatched rather than failing the request.
			return false
		}
		if !p.re.MatchString(rec.Value(p.field)) {
			return false
		}
	}
	return true
}
