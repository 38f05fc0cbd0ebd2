package index

import (
	"net/url"
	"strings"

	"github.com/metafind/metafind/internal/config"
)

// titleTolerance lets an anchored title pattern accept values with or without
// a leading article.
const titleTolerance = "(A |The )*"

// escapeValue neutralizes a field value for use inside a generated pattern:
// regex group and class metacharacters are escaped so they match literally,
// and quotes are softened to the single-character wildcard so they cannot
// leak into the query string.
func escapeValue(v string) string {
	replacer := strings.NewReplacer(
		`(`, `\(`,
		`)`, `\)`,
		`[`, `\[`,
		`]`, `\]`,
		`'`, `.`,
		`"`, `.`,
	)
	return replacer.Replace(v)
}

// exactPattern anchors the escaped value at both ends; title fields tolerate
// an optional leading article.
func exactPattern(t config.FieldType, value string) string {
	p := escapeValue(value)
	if t == config.FieldTitle {
		p = titleTolerance + p
	}
	return "^" + p + "$"
}

// startsWithPattern anchors only the start, used by the short style's
// per-letter links.
func startsWithPattern(t config.FieldType, letter string) string {
	p := escapeValue(letter)
	if t == config.FieldTitle {
		p = titleTolerance + p
	}
	return "^" + p
}

// buildQuery assembles the link's query string: the field-prefixed match
// parameter, the find trigger, and, when a sort parameter is configured, the
// sort sequence starting with the indexed field followed by the remaining
// default sort fields. Fragments join with the site's ';' separator
// convention for repeated parameters.
func (b *Builder) buildQuery(field, pattern string) string {
	fragments := []string{
		b.cfg.FieldParam(field) + "=" + url.QueryEscape(pattern),
		b.cfg.TriggerParam + "=1",
	}

	if b.cfg.SortParam != "" {
		for _, sortField := range b.sortSequence(field) {
			fragments = append(fragments, b.cfg.SortParam+"="+url.QueryEscape(sortField))
		}
	}

	return strings.Join(fragments, ";")
}

func (b *Builder) sortSequence(field string) []string {
	out := []string{field}
	for _, f := range b.cfg.DefaultSortOrder {
		if f == field || f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
