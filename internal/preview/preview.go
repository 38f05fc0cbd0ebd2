// Package preview derives display titles for content items shown on result
// pages.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/metafind/metafind/internal/catalog"
)

// Title resolves the display title for an item: the sidecar's "title" field
// when present, else the first markdown heading of the content file, else the
// item identifier itself.
func Title(cat *catalog.Catalog, id string) string {
	if rec, ok := cat.Record(id); ok {
		if title := strings.TrimSpace(rec.Value("title")); title != "" {
			return title
		}
	}

	if heading, err := firstHeading(cat.ContentPath(id)); err == nil && heading != "" {
		return heading
	}
	return id
}

func firstHeading(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file: %w", err)
	}

	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	document := parser.Parse(reader)

	var heading string

	ast.Walk(
		document,
		func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering && heading == "" {
				if h, ok := n.(*ast.Heading); ok {
					heading = strings.TrimSpace(string(h.Text(source)))
					return ast.WalkStop, nil
				}
			}
			return ast.WalkContinue, nil
		},
	)

	return heading, nil
}
