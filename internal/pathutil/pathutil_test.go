package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDataRelativeReturnsForwardSlashes(t *testing.T) {
	dataParts := []string{"home", "user", "data"}
	fileParts := append(append([]string{}, dataParts...), "fiction", "story.md")

	posixData := filepath.Join(dataParts...)
	posixFile := filepath.Join(fileParts...)

	rel, err := DataRelative(posixData, posixFile)
	if err != nil {
		t.Fatalf("DataRelative returned error for POSIX paths: %v", err)
	}
	if rel != "fiction/story.md" {
		t.Fatalf("expected relative path 'fiction/story.md', got %q", rel)
	}

	windowsData := strings.ReplaceAll(posixData, string(filepath.Separator), "\\")
	windowsFile := strings.ReplaceAll(posixFile, string(filepath.Separator), "\\")

	rel, err = DataRelative(windowsData, windowsFile)
	if err != nil {
		t.Fatalf("DataRelative returned error for Windows paths: %v", err)
	}
	if rel != "fiction/story.md" {
		t.Fatalf("expected relative path 'fiction/story.md', got %q", rel)
	}
}

func TestCleanScopeNormalizesSeparatorsAndRoot(t *testing.T) {
	cases := map[string]string{
		"":                "",
		".":               "",
		"/":               "",
		"fiction":         "fiction",
		"/fiction/":       "fiction",
		"fiction/sub":     "fiction/sub",
		"fiction\\sub":    "fiction/sub",
		"fiction//sub":    "fiction/sub",
		"./fiction/../.":  "",
		"fiction/./short": "fiction/short",
	}

	for input, want := range cases {
		if got := CleanScope(input); got != want {
			t.Fatalf("CleanScope(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWithinScopeMatchesExactAndProperSubdirectories(t *testing.T) {
	if !WithinScope("anything/at/all", "") {
		t.Fatal("empty scope should accept every directory")
	}
	if !WithinScope("fiction", "fiction") {
		t.Fatal("exact scope match should be accepted")
	}
	if !WithinScope("fiction/short", "fiction") {
		t.Fatal("proper subdirectory should be accepted")
	}
	if WithinScope("fictional", "fiction") {
		t.Fatal("sibling directory sharing a prefix should be rejected")
	}
	if WithinScope("nonfiction", "fiction") {
		t.Fatal("unrelated directory should be rejected")
	}
}
