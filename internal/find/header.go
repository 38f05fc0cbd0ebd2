package find

// activeSortFields returns the sort fields governing the current request: the
// request's own sort values when a sort was asked for, otherwise the
// configured default order.
func (e *Engine) activeSortFields(params Params) []string {
	if e.cfg.SortParam != "" {
		if requested := params.List(e.cfg.SortParam); len(requested) > 0 {
			return requested
		}
	}
	return e.cfg.DefaultSortOrder
}

// HeaderFieldAt returns the sort field active at the given zero-based nesting
// level. The boolean is false when the level exceeds the available fields or
// the slot is empty.
func (e *Engine) HeaderFieldAt(params Params, level int) (string, bool) {
	fields := e.activeSortFields(params)
	if level < 0 || level >= len(fields) {
		return "", false
	}
	if fields[level] == "" {
		return "", false
	}
	return fields[level], true
}

// FieldWithinHeaderLevel reports whether field appears among the active sort
// fields at position level or above.
func (e *Engine) FieldWithinHeaderLevel(params Params, field string, level int) bool {
	fields := e.activeSortFields(params)
	for i, f := range fields {
		if i > level {
			break
		}
		if f == field {
			return true
		}
	}
	return false
}
