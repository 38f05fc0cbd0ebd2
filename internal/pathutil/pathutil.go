package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	// Replace Windows separators and collapse redundant separators/segments.
	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// DataRelative returns the path to target relative to the provided data root.
// The returned path always uses forward slashes to simplify downstream
// processing and ensure platform agnosticism.
func DataRelative(dataDir, target string) (string, error) {
	base := NormalizePath(dataDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// CleanScope normalizes a scope directory to the slash-joined relative form
// used throughout the module: no leading or trailing separators, empty string
// for the data root itself.
func CleanScope(scope string) string {
	cleaned := strings.ReplaceAll(scope, "\\", "/")
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return ""
	}

	cleaned = filepath.ToSlash(filepath.Clean(filepath.FromSlash(cleaned)))
	cleaned = strings.Trim(cleaned, "/")
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// WithinScope reports whether the slash-joined directory dir falls under
// scope: always for the empty scope, on exact match, or when dir is a proper
// subdirectory of scope.
func WithinScope(dir, scope string) bool {
	if scope == "" {
		return true
	}
	if dir == scope {
		return true
	}
	return strings.HasPrefix(dir, scope+"/")
}
