package config_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/metafind/metafind/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestLoadAppliesDefaultsToEmptyConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if cfg.FieldPrefix != config.DefaultFieldPrefix {
		t.Fatalf("expected default field prefix, got %q", cfg.FieldPrefix)
	}
	if cfg.TriggerParam != config.DefaultTriggerParam {
		t.Fatalf("expected default trigger param, got %q", cfg.TriggerParam)
	}
	if cfg.ContentSuffix != config.DefaultContentSuffix || cfg.SidecarSuffix != config.DefaultSidecarSuffix {
		t.Fatalf(
			"expected default suffixes, got %q and %q",
			cfg.ContentSuffix,
			cfg.SidecarSuffix,
		)
	}
}

func TestLoadRejectsInvalidFieldType(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"datadir": filepath.Join(home, "data"),
		"fields": map[string]any{
			"author": map[string]any{"type": "fancy"},
		},
	})

	_, err := config.Load(home)
	if err == nil {
		t.Fatal("expected load to fail for invalid field type")
	}
	if !strings.Contains(err.Error(), "invalid type") {
		t.Fatalf("expected invalid type error, got %v", err)
	}
}

func TestSpecFallsBackToStringForUnknownFields(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"fields": map[string]any{
			"author": map[string]any{"type": "string"},
			"title":  map[string]any{"type": "title"},
			"rating": map[string]any{
				"type":    "limited",
				"allowed": []string{"good", "bad"},
			},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if spec := cfg.Spec("title"); spec.Type != config.FieldTitle {
		t.Fatalf("expected title type, got %q", spec.Type)
	}
	if spec := cfg.Spec("rating"); spec.Type != config.FieldLimited || len(spec.Allowed) != 2 {
		t.Fatalf("expected limited spec with two allowed values, got %+v", spec)
	}
	if spec := cfg.Spec("undeclared"); spec.Type != config.FieldString {
		t.Fatalf("expected unknown field to default to string, got %q", spec.Type)
	}
	if cfg.Known("undeclared") {
		t.Fatal("expected undeclared field to be reported unknown")
	}
}

func TestFieldNamesHonorsDeclaredOrderThenSorts(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		"field_order": []string{"title", "author", "missing", "title"},
		"fields": map[string]any{
			"author": map[string]any{"type": "string"},
			"title":  map[string]any{"type": "title"},
			"year":   map[string]any{"type": "number"},
			"genre":  map[string]any{"type": "string"},
		},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	want := []string{"title", "author", "genre", "year"}
	if got := cfg.FieldNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected field names %v, got %v", want, got)
	}
}

func TestFieldParamUsesConfiguredPrefix(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"field_prefix": "meta_"})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if got := cfg.FieldParam("author"); got != "meta_author" {
		t.Fatalf("expected parameter name 'meta_author', got %q", got)
	}
}
