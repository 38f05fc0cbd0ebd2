package find

import "strings"

// Params holds the request parameters handed in by the surrounding page
// layer, one value list per parameter name. It has the same shape as
// url.Values so callers can pass parsed query strings directly.
type Params map[string][]string

// Get returns the first value for the named parameter, empty when absent.
func (p Params) Get(name string) string {
	values, ok := p[name]
	if !ok || len(values) == 0 {
		return ""
	}
	return values[0]
}

// List returns every non-empty value for the named parameter, splitting
// individual values on commas to accept both repeated parameters and the
// comma-joined form.
func (p Params) List(name string) []string {
	values, ok := p[name]
	if !ok {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
