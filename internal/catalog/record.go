package catalog

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
)

// Record is the field to value mapping parsed from one sidecar file. Values
// are flattened to strings; sequences join their elements with a comma.
type Record struct {
	Fields map[string]string

	// Date carries the parsed form of the well-known "date" field, zero
	// when the field is absent or unparseable.
	Date time.Time
}

// Value returns the record's value for a field, empty when absent.
func (r Record) Value(field string) string {
	return r.Fields[field]
}

func parseRecord(data []byte) (Record, error) {
	rec := Record{Fields: make(map[string]string)}
	if len(data) == 0 {
		return rec, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Record{}, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return rec, nil
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return rec, nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		valueNode := mapping.Content[i+1]
		rec.Fields[keyNode.Value] = flattenValue(valueNode)
	}

	if raw := rec.Fields["date"]; raw != "" {
		if parsed, err := dateparse.ParseAny(raw); err == nil {
			rec.Date = parsed
		}
	}

	return rec, nil
}

func flattenValue(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		vals := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			vals = append(vals, child.Value)
		}
		return strings.Join(vals, ", ")
	case yaml.ScalarNode:
		return node.Value
	default:
		return ""
	}
}
