// Package index builds alphabetical browse indexes over the distinct values
// of one metadata field.
package index

import (
	"sort"
	"strconv"
	"strings"

	"github.com/metafind/metafind/internal/catalog"
	"github.com/metafind/metafind/internal/config"
	"github.com/metafind/metafind/internal/find"
)

// Style selects how the index groups its values.
type Style string

const (
	// StyleShort lists only the distinct first letters, each linking to a
	// starts-with search.
	StyleShort Style = "short"
	// StyleMedium lists every distinct value with an exact-match link.
	StyleMedium Style = "medium"
	// StyleLong groups the medium listing under per-letter headings.
	StyleLong Style = "long"
)

// Entry is one distinct field value paired with the key it sorts under.
type Entry struct {
	Value   string
	SortKey string
}

// Link is one machine-usable index link: the display label and the query
// string that reproduces the matching search.
type Link struct {
	Field string
	Label string
	Query string
}

// Group collects the links for one leading letter in the long style.
type Group struct {
	Letter string
	Links  []Link
}

// Index is the result of one build: the sorted distinct values plus the
// style-appropriate link structure. Links is populated for the short and
// medium styles, Groups for the long style.
type Index struct {
	Field   string
	Style   Style
	Entries []Entry
	Links   []Link
	Groups  []Group
}

// Builder computes indexes over one catalog.
type Builder struct {
	cfg *config.Config
	cat *catalog.Catalog
}

func NewBuilder(cfg *config.Config, cat *catalog.Catalog) *Builder {
	return &Builder{cfg: cfg, cat: cat}
}

// Build gathers the distinct non-empty values of field across the scope,
// sorts them per the field's declared type, and renders the link structure
// for the requested style. A field with no values yields an empty index, and
// an undeclared field gets plain string treatment.
func (b *Builder) Build(field, scope string, style Style) *Index {
	spec := b.cfg.Spec(field)

	distinct := make(map[string]struct{})
	for id := range find.Discover(b.cat, scope) {
		value := b.cat.Field(id, field)
		if value == "" {
			continue
		}
		distinct[value] = struct{}{}
	}

	entries := make([]Entry, 0, len(distinct))
	for value := range distinct {
		entries = append(entries, Entry{Value: value, SortKey: sortKey(spec.Type, value)})
	}
	sortEntries(spec.Type, entries)

	idx := &Index{Field: field, Style: style, Entries: entries}
	switch style {
	case StyleShort:
		idx.Links = b.shortLinks(field, spec, entries)
	case StyleLong:
		idx.Groups = b.longGroups(field, spec, entries)
	default:
		idx.Links = b.mediumLinks(field, spec, entries)
	}
	return idx
}

// sortKey strips one optional leading article from title values; every other
// type sorts under the raw value.
func sortKey(t config.FieldType, value string) string {
	if t != config.FieldTitle {
		return value
	}
	if rest, ok := strings.CutPrefix(value, "The "); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(value, "A "); ok {
		return rest
	}
	return value
}

func sortEntries(t config.FieldType, entries []Entry) {
	switch t {
	case config.FieldNumber:
		sort.SliceStable(entries, func(i, j int) bool {
			a, aOK := parseNumber(entries[i].Value)
			b, bOK := parseNumber(entries[j].Value)
			switch {
			case aOK && bOK:
				if a != b {
					return a < b
				}
				return entries[i].Value < entries[j].Value
			case aOK:
				return true
			case bOK:
				return false
			default:
				return entries[i].Value < entries[j].Value
			}
		})
	case config.FieldTitle:
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].SortKey != entries[j].SortKey {
				return entries[i].SortKey < entries[j].SortKey
			}
			return entries[i].Value < entries[j].Value
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			a := strings.ToUpper(entries[i].SortKey)
			b := strings.ToUpper(entries[j].SortKey)
			if a != b {
				return a < b
			}
			return entries[i].Value < entries[j].Value
		})
	}
}

func parseNumber(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// firstLetter returns the uppercased first character of an entry's sort key.
func firstLetter(e Entry) string {
	runes := []rune(e.SortKey)
	if len(runes) == 0 {
		return ""
	}
	return strings.ToUpper(string(runes[0]))
}

func (b *Builder) shortLinks(field string, spec config.FieldSpec, entries []Entry) []Link {
	links := make([]Link, 0)
	seen := make(map[string]struct{})

	for _, e := range entries {
		letter := firstLetter(e)
		if letter == "" {
			continue
		}
		if _, dup := seen[letter]; dup {
			continue
		}
		seen[letter] = struct{}{}
		links = append(links, Link{
			Field: field,
			Label: letter,
			Query: b.buildQuery(field, startsWithPattern(spec.Type, letter)),
		})
	}

	sort.Slice(links, func(i, j int) bool { return links[i].Label < links[j].Label })
	return links
}

func (b *Builder) mediumLinks(field string, spec config.FieldSpec, entries []Entry) []Link {
	links := make([]Link, 0, len(entries))
	for _, e := range entries {
		links = append(links, Link{
			Field: field,
			Label: e.Value,
			Query: b.buildQuery(field, exactPattern(spec.Type, e.Value)),
		})
	}
	return links
}

func (b *Builder) longGroups(field string, spec config.FieldSpec, entries []Entry) []Group {
	groups := make([]Group, 0)
	for _, e := range entries {
		letter := firstLetter(e)
		if letter == "" {
			continue
		}

		link := Link{
			Field: field,
			Label: e.Value,
			Query: b.buildQuery(field, exactPattern(spec.Type, e.Value)),
		}

		if n := len(groups); n > 0 && groups[n-1].Letter == letter {
			groups[n-1].Links = append(groups[n-1].Links, link)
			continue
		}
		groups = append(groups, Group{Letter: letter, Links: []Link{link}})
	}
	return groups
}
