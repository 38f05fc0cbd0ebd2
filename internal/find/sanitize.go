package find

import "strings"

// truncateUnsafe cuts the input at the first backtick, single quote, or
// double quote. Only the leading run of characters before such a character
// survives; applying the cut twice yields the same result as once.
func truncateUnsafe(raw string) string {
	if i := strings.IndexAny(raw, "`'\""); i >= 0 {
		return raw[:i]
	}
	return raw
}

// SanitizeTrigger cleans the raw find-trigger value. The trigger only needs
// the truncation step; an empty result means the request is not a search.
func SanitizeTrigger(raw string) string {
	return truncateUnsafe(raw)
}

// SanitizePattern prepares a user-supplied pattern for compilation: the input
// is truncated at the first backtick or quote, then any remaining quote or
// slash characters are softened to the single-character wildcard so they can
// never reach a generated query string literally.
func SanitizePattern(raw string) string {
	cleaned := truncateUnsafe(raw)

	replacer := strings.NewReplacer("'", ".", `"`, ".", "/", ".")
	return replacer.Replace(cleaned)
}
