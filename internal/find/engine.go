package find

import (
	"sort"
	"strings"

	"github.com/metafind/metafind/internal/catalog"
	"github.com/metafind/metafind/internal/config"
)

// Engine orchestrates discovery and matching over one catalog.
type Engine struct {
	cfg *config.Config
	cat *catalog.Catalog
}

func NewEngine(cfg *config.Config, cat *catalog.Catalog) *Engine {
	return &Engine{cfg: cfg, cat: cat}
}

// Request carries one search invocation: the scope directory derived from the
// current path and the request parameters.
type Request struct {
	Scope  string
	Params Params
}

// Result is the outcome of one search: the matching item identifiers in
// deterministic order, their count, the display summaries, and diagnostic
// counters.
type Result struct {
	IDs             []string
	Count           int
	CriteriaSummary string
	// SortSummary records the requested sort fields for display. It never
	// reorders IDs; ordering is left to the surrounding rendering layer.
	SortSummary string

	// Candidates is the number of items discovered under the scope before
	// matching.
	Candidates int

	// Issues carries the recovered per-field problems, each an
	// *InvalidPatternError. The affected fields simply never matched.
	Issues []error
}

// Search runs the full pipeline for one request. It returns ErrNotSearch when
// the find trigger is absent or empty after sanitization, and
// ErrEmptyCriteria when the trigger is present but no field constraint
// resolved; both signal a fallback to plain listing, not a failure. No other
// condition is fatal: malformed patterns disqualify their field and invalid
// scopes degrade to site-wide.
func (e *Engine) Search(req Request) (*Result, error) {
	trigger := SanitizeTrigger(req.Params.Get(e.cfg.TriggerParam))
	if strings.TrimSpace(trigger) == "" {
		return nil, ErrNotSearch
	}

	criteria := BuildCriteria(e.cfg, req.Params)
	if criteria.Empty() {
		return nil, ErrEmptyCriteria
	}

	res := &Result{
		CriteriaSummary: criteria.Summary(),
		SortSummary:     e.sortSummary(req.Params),
		Issues:          criteria.Issues(),
	}

	candidates := Discover(e.cat, req.Scope)
	res.Candidates = len(candidates)

	// Walk candidates in sorted order so the found sequence is
	// deterministic; the found set itself stays duplicate-safe.
	ordered := make([]string, 0, len(candidates))
	for id := range candidates {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	seen := make(map[string]struct{}, len(ordered))
	for _, id := range ordered {
		rec, ok := e.cat.Record(id)
		if !ok {
			continue
		}
		if !Matches(rec, criteria) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.IDs = append(res.IDs, id)
	}

	res.Count = len(res.IDs)
	return res, nil
}

// List returns every discoverable item under the scope in sorted order, the
// unfiltered listing used when a request carries no criteria.
func (e *Engine) List(scope string) []string {
	candidates := Discover(e.cat, scope)
	out := make([]string, 0, len(candidates))
	for id := range candidates {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// sortSummary joins the requested sort fields with commas for display, empty
// when no sort parameter is configured or present.
func (e *Engine) sortSummary(params Params) string {
	if e.cfg.SortParam == "" {
		return ""
	}
	return strings.Join(params.List(e.cfg.SortParam), ",")
}
