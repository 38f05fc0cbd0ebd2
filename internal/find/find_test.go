package find

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/metafind/metafind/internal/catalog"
	"github.com/metafind/metafind/internal/config"
)

func writeFile(t testing.TB, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

func newFixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "fiction/a.md", "# A")
	writeFile(t, dir, "fiction/a.md.meta", "Author: Jane Doe\nGenre: classic\n")
	writeFile(t, dir, "fiction/b.md", "# B")
	writeFile(t, dir, "fiction/b.md.meta", "Author: John\n")
	writeFile(t, dir, "fiction/short/c.md", "# C")
	writeFile(t, dir, "fiction/short/c.md.meta", "Author: Jane Austen\n")
	writeFile(t, dir, "nonfiction/d.md", "# D")
	writeFile(t, dir, "nonfiction/d.md.meta", "Author: Jane Doe\n")
	// Orphan sidecar: no content file behind it.
	writeFile(t, dir, "fiction/ghost.md.meta", "Author: Jane\n")

	cat, err := catalog.New(dir, ".md", ".meta")
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}
	return cat
}

func fixtureConfig() *config.Config {
	return &config.Config{
		FieldPrefix:  config.DefaultFieldPrefix,
		TriggerParam: config.DefaultTriggerParam,
		SortParam:    config.DefaultSortParam,
		Fields: map[string]config.FieldSpec{
			"Author": {Type: config.FieldString},
			"Genre":  {Type: config.FieldString},
			"Title":  {Type: config.FieldTitle},
		},
	}
}

func sortedIDs(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func TestTruncateUnsafeIsIdempotent(t *testing.T) {
	cases := map[string]string{
		`Jane"; rm -rf`: "Jane",
		"plain":         "plain",
		"`lead":         "",
		"a'b\"c":        "a",
	}

	for input, want := range cases {
		once := truncateUnsafe(input)
		if once != want {
			t.Fatalf("truncateUnsafe(%q) = %q, want %q", input, once, want)
		}
		if twice := truncateUnsafe(once); twice != once {
			t.Fatalf("truncation not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestSanitizePatternSoftensSlashes(t *testing.T) {
	if got := SanitizePattern("a/b"); got != "a.b" {
		t.Fatalf("expected slash to become wildcard, got %q", got)
	}
	if got := SanitizePattern(`Jane"; rm -rf /`); got != "Jane" {
		t.Fatalf("expected truncation at double quote, got %q", got)
	}
}

func TestDiscoverScopesAndFiltersOrphans(t *testing.T) {
	cat := newFixtureCatalog(t)

	got := sortedIDs(Discover(cat, "fiction"))
	want := []string{"fiction/a", "fiction/b", "fiction/short/c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("scope 'fiction': expected %v, got %v", want, got)
	}

	got = sortedIDs(Discover(cat, ""))
	want = []string{"fiction/a", "fiction/b", "fiction/short/c", "nonfiction/d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("empty scope: expected %v, got %v", want, got)
	}

	if got := Discover(cat, "fiction/short"); len(got) != 1 {
		t.Fatalf("scope 'fiction/short': expected one item, got %v", got)
	}

	if got := Discover(cat, "poetry"); len(got) != 0 {
		t.Fatalf("unmatched scope should yield an empty set, got %v", got)
	}
}

func TestMatchesIsConjunctiveAndMonotonic(t *testing.T) {
	cfg := fixtureConfig()
	rec := catalog.Record{Fields: map[string]string{
		"Author": "Jane Doe",
		"Genre":  "classic",
	}}

	both := BuildCriteria(cfg, Params{
		cfg.FieldParam("Author"): {"Jane"},
		cfg.FieldParam("Genre"):  {"class"},
	})
	if !Matches(rec, both) {
		t.Fatal("expected both constraints to match")
	}

	// Removing a satisfied pair cannot turn a match into a non-match.
	one := BuildCriteria(cfg, Params{cfg.FieldParam("Author"): {"Jane"}})
	if !Matches(rec, one) {
		t.Fatal("expected the reduced criteria to still match")
	}

	failing := BuildCriteria(cfg, Params{
		cfg.FieldParam("Author"): {"Jane"},
		cfg.FieldParam("Genre"):  {"romance"},
	})
	if Matches(rec, failing) {
		t.Fatal("one failing field must fail the conjunction")
	}

	missing := BuildCriteria(cfg, Params{cfg.FieldParam("Title"): {"Anything"}})
	if Matches(rec, missing) {
		t.Fatal("a missing field value matches as the empty string")
	}

	if Matches(rec, Criteria{}) {
		t.Fatal("empty criteria must never match")
	}
}

func TestMatchesDotSpansNewlines(t *testing.T) {
	cfg := fixtureConfig()
	rec := catalog.Record{Fields: map[string]string{
		"Genre": "long\nwinded\nvalue",
	}}

	c := BuildCriteria(cfg, Params{cfg.FieldParam("Genre"): {"long.winded"}})
	if !Matches(rec, c) {
		t.Fatal("expected dot to match across newlines")
	}
}

func TestMatchesTreatsInvalidPatternAsNoMatch(t *testing.T) {
	cfg := fixtureConfig()
	rec := catalog.Record{Fields: map[string]string{"Author": "Jane"}}

	c := BuildCriteria(cfg, Params{cfg.FieldParam("Author"): {"(unclosed"}})
	if c.Empty() {
		t.Fatal("invalid pattern still contributes a pair")
	}
	if Matches(rec, c) {
		t.Fatal("an uncompilable pattern must count as unmatched")
	}

	issues := c.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected one recovered issue, got %v", issues)
	}
	var patternErr *InvalidPatternError
	if !errors.As(issues[0], &patternErr) || patternErr.Field != "Author" {
		t.Fatalf("expected InvalidPatternError for Author, got %v", issues[0])
	}
}

func TestCheckFieldDefaultsToStringSemantics(t *testing.T) {
	cfg := fixtureConfig()

	if err := CheckField(cfg, "Author"); err != nil {
		t.Fatalf("declared field should pass, got %v", err)
	}

	err := CheckField(cfg, "Publisher")
	var unknown *UnknownFieldError
	if !errors.As(err, &unknown) || unknown.Field != "Publisher" {
		t.Fatalf("expected UnknownFieldError for Publisher, got %v", err)
	}

	// The undeclared field still participates in matching.
	rec := catalog.Record{Fields: map[string]string{"Publisher": "Acme Press"}}
	c := BuildCriteria(cfg, Params{cfg.FieldParam("Publisher"): {"Acme"}})
	if !Matches(rec, c) {
		t.Fatal("undeclared field should match with string semantics")
	}
}

func TestCriteriaSummaryIsDeterministic(t *testing.T) {
	cfg := fixtureConfig()
	c := BuildCriteria(cfg, Params{
		cfg.FieldParam("Genre"):  {"classic"},
		cfg.FieldParam("Author"): {"Jane"},
	})

	if got := c.Summary(); got != "Author=Jane Genre=classic" {
		t.Fatalf("unexpected criteria summary %q", got)
	}
	if got := c.Fields(); !reflect.DeepEqual(got, []string{"Author", "Genre"}) {
		t.Fatalf("unexpected field order %v", got)
	}
}

func TestSearchScopedScenario(t *testing.T) {
	cat := newFixtureCatalog(t)
	cfg := fixtureConfig()
	engine := NewEngine(cfg, cat)

	res, err := engine.Search(Request{
		Scope: "fiction",
		Params: Params{
			cfg.TriggerParam:         {"1"},
			cfg.FieldParam("Author"): {"Jane Doe"},
		},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if !reflect.DeepEqual(res.IDs, []string{"fiction/a"}) {
		t.Fatalf("expected only fiction/a, got %v", res.IDs)
	}
	if res.Count != 1 {
		t.Fatalf("expected count 1, got %d", res.Count)
	}
	if res.Candidates != 3 {
		t.Fatalf("expected 3 candidates under fiction, got %d", res.Candidates)
	}
	if res.CriteriaSummary != "Author=Jane Doe" {
		t.Fatalf("unexpected criteria summary %q", res.CriteriaSummary)
	}
}

func TestSearchSanitizesQuotedPatterns(t *testing.T) {
	cat := newFixtureCatalog(t)
	cfg := fixtureConfig()
	engine := NewEngine(cfg, cat)

	res, err := engine.Search(Request{
		Params: Params{
			cfg.TriggerParam:         {"1"},
			cfg.FieldParam("Author"): {`Jane"; rm -rf`},
		},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	want := []string{"fiction/a", "fiction/short/c", "nonfiction/d"}
	if !reflect.DeepEqual(res.IDs, want) {
		t.Fatalf("expected %v, got %v", want, res.IDs)
	}
	if res.CriteriaSummary != "Author=Jane" {
		t.Fatalf("expected sanitized summary, got %q", res.CriteriaSummary)
	}
}

func TestSearchWithoutTriggerOrCriteriaFallsBack(t *testing.T) {
	cat := newFixtureCatalog(t)
	cfg := fixtureConfig()
	engine := NewEngine(cfg, cat)

	if _, err := engine.Search(Request{Params: Params{}}); err != ErrNotSearch {
		t.Fatalf("expected ErrNotSearch, got %v", err)
	}

	// A trigger consisting only of stripped characters is no trigger.
	_, err := engine.Search(Request{Params: Params{cfg.TriggerParam: {`"'`}}})
	if err != ErrNotSearch {
		t.Fatalf("expected ErrNotSearch for quoted trigger, got %v", err)
	}

	_, err = engine.Search(Request{Params: Params{cfg.TriggerParam: {"1"}}})
	if err != ErrEmptyCriteria {
		t.Fatalf("expected ErrEmptyCriteria, got %v", err)
	}

	listing := engine.List("fiction")
	want := []string{"fiction/a", "fiction/b", "fiction/short/c"}
	if !reflect.DeepEqual(listing, want) {
		t.Fatalf("expected unfiltered listing %v, got %v", want, listing)
	}
}

func TestSearchEmptyScopeYieldsEmptyResult(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lone.md", "# Lone")

	cat, err := catalog.New(dir, ".md", ".meta")
	if err != nil {
		t.Fatalf("catalog.New returned error: %v", err)
	}

	cfg := fixtureConfig()
	engine := NewEngine(cfg, cat)

	res, err := engine.Search(Request{
		Scope: "fiction",
		Params: Params{
			cfg.TriggerParam:         {"1"},
			cfg.FieldParam("Author"): {"Jane"},
		},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if res.Count != 0 || len(res.IDs) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestSearchRecordsSortSummaryWithoutReordering(t *testing.T) {
	cat := newFixtureCatalog(t)
	cfg := fixtureConfig()
	engine := NewEngine(cfg, cat)

	res, err := engine.Search(Request{
		Params: Params{
			cfg.TriggerParam:         {"1"},
			cfg.FieldParam("Author"): {"Jane"},
			cfg.SortParam:            {"Author", "", "date"},
		},
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if res.SortSummary != "Author,date" {
		t.Fatalf("expected sort summary 'Author,date', got %q", res.SortSummary)
	}
	// The sequence stays in accumulation order regardless of the summary.
	want := []string{"fiction/a", "fiction/short/c", "nonfiction/d"}
	if !reflect.DeepEqual(res.IDs, want) {
		t.Fatalf("expected %v, got %v", want, res.IDs)
	}
}

func TestHeaderFieldHelpers(t *testing.T) {
	cat := newFixtureCatalog(t)
	cfg := fixtureConfig()
	cfg.DefaultSortOrder = []string{"Author", "date"}
	engine := NewEngine(cfg, cat)

	// No sort request: defaults apply.
	if field, ok := engine.HeaderFieldAt(Params{}, 0); !ok || field != "Author" {
		t.Fatalf("expected default header field Author, got %q ok=%v", field, ok)
	}
	if _, ok := engine.HeaderFieldAt(Params{}, 5); ok {
		t.Fatal("expected no field beyond the configured list")
	}

	// A sort request overrides the defaults.
	params := Params{cfg.SortParam: {"Genre,Title"}}
	if field, ok := engine.HeaderFieldAt(params, 1); !ok || field != "Title" {
		t.Fatalf("expected requested header field Title, got %q ok=%v", field, ok)
	}

	if !engine.FieldWithinHeaderLevel(params, "Genre", 0) {
		t.Fatal("Genre should be within level 0")
	}
	if engine.FieldWithinHeaderLevel(params, "Title", 0) {
		t.Fatal("Title is beyond level 0")
	}
	if !engine.FieldWithinHeaderLevel(params, "Title", 1) {
		t.Fatal("Title should be within level 1")
	}
}
