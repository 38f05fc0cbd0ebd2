package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spf13/viper"
)

// FieldType classifies how a declared field is matched and sorted.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldTitle   FieldType = "title"
	FieldNumber  FieldType = "number"
	FieldText    FieldType = "text"
	FieldLimited FieldType = "limited"
)

var validFieldTypes = map[FieldType]bool{
	FieldString:  true,
	FieldTitle:   true,
	FieldNumber:  true,
	FieldText:    true,
	FieldLimited: true,
}

// FieldSpec declares the type of a searchable field and, for limited fields,
// the ordered set of permitted values.
type FieldSpec struct {
	Type    FieldType `yaml:"type"    json:"type"`
	Allowed []string  `yaml:"allowed" json:"allowed"`
}

// Config is the read-only configuration surface for the whole module. It is
// loaded once at startup and passed by reference into each component; no
// component mutates it.
type Config struct {
	DataDir           string               `yaml:"datadir"             json:"data_dir"`
	BaseURL           string               `yaml:"base_url"            json:"base_url"`
	InfoPath          string               `yaml:"info_path"           json:"info_path"`
	ContentSuffix     string               `yaml:"content_suffix"      json:"content_suffix"`
	SidecarSuffix     string               `yaml:"sidecar_suffix"      json:"sidecar_suffix"`
	FieldPrefix       string               `yaml:"field_prefix"        json:"field_prefix"`
	TriggerParam      string               `yaml:"trigger_param"       json:"trigger_param"`
	SortParam         string               `yaml:"sort_param"          json:"sort_param"`
	SortReversedParam string               `yaml:"sort_reversed_param" json:"sort_reversed_param"`
	DefaultSortOrder  []string             `yaml:"default_sort_order"  json:"default_sort_order"`
	Fields            map[string]FieldSpec `yaml:"fields"              json:"fields"`
	FieldOrder        []string             `yaml:"field_order"         json:"field_order"`
}

const (
	DefaultContentSuffix = ".md"
	DefaultSidecarSuffix = ".meta"
	DefaultFieldPrefix   = "infofind_field_"
	DefaultTriggerParam  = "info_find"
	DefaultSortParam     = "sort"
	DefaultSortReversed  = "sort_reversed"
)

// NewConfig returns a configuration carrying only the defaults.
func NewConfig() *Config {
	return &Config{
		ContentSuffix:     DefaultContentSuffix,
		SidecarSuffix:     DefaultSidecarSuffix,
		FieldPrefix:       DefaultFieldPrefix,
		TriggerParam:      DefaultTriggerParam,
		SortParam:         DefaultSortParam,
		SortReversedParam: DefaultSortReversed,
		Fields:            make(map[string]FieldSpec),
	}
}

func (cfg *Config) ensureDefaults() {
	if cfg.ContentSuffix == "" {
		cfg.ContentSuffix = DefaultContentSuffix
	}
	if cfg.SidecarSuffix == "" {
		cfg.SidecarSuffix = DefaultSidecarSuffix
	}
	if cfg.FieldPrefix == "" {
		cfg.FieldPrefix = DefaultFieldPrefix
	}
	if cfg.TriggerParam == "" {
		cfg.TriggerParam = DefaultTriggerParam
	}
	if cfg.SortReversedParam == "" {
		cfg.SortReversedParam = DefaultSortReversed
	}
	if cfg.Fields == nil {
		cfg.Fields = make(map[string]FieldSpec)
	}
}

func (cfg *Config) validate() error {
	for name, spec := range cfg.Fields {
		if spec.Type == "" {
			spec.Type = FieldString
			cfg.Fields[name] = spec
			continue
		}
		if !validFieldTypes[spec.Type] {
			return fmt.Errorf(
				"config: field %q has invalid type %q; choose from 'string', 'title', 'number', 'text', or 'limited'",
				name,
				spec.Type,
			)
		}
	}

	return nil
}

// Load reads the configuration file under home, applies defaults and
// validation, and mirrors the result into viper so command flags can inspect
// it.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ensureDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) syncViper() {
	viper.Set("datadir", cfg.DataDir)
	viper.Set("base_url", cfg.BaseURL)
	viper.Set("info_path", cfg.InfoPath)
	viper.Set("content_suffix", cfg.ContentSuffix)
	viper.Set("sidecar_suffix", cfg.SidecarSuffix)
	viper.Set("field_prefix", cfg.FieldPrefix)
	viper.Set("trigger_param", cfg.TriggerParam)
	viper.Set("sort_param", cfg.SortParam)
	viper.Set("sort_reversed_param", cfg.SortReversedParam)
	if cfg.DefaultSortOrder == nil {
		viper.Set("default_sort_order", []string{})
	} else {
		viper.Set("default_sort_order", append([]string(nil), cfg.DefaultSortOrder...))
	}
}

// Spec returns the declaration for the named field. Unknown fields fall back
// to plain string semantics.
func (cfg *Config) Spec(field string) FieldSpec {
	if spec, ok := cfg.Fields[field]; ok {
		if spec.Type == "" {
			spec.Type = FieldString
		}
		return spec
	}
	return FieldSpec{Type: FieldString}
}

// Known reports whether the field has an explicit declaration.
func (cfg *Config) Known(field string) bool {
	_, ok := cfg.Fields[field]
	return ok
}

// FieldNames returns the declared field names: the configured display order
// first, then any remaining fields sorted by name.
func (cfg *Config) FieldNames() []string {
	names := make([]string, 0, len(cfg.Fields))
	seen := make(map[string]struct{}, len(cfg.Fields))

	for _, name := range cfg.FieldOrder {
		if _, ok := cfg.Fields[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	rest := make([]string, 0, len(cfg.Fields))
	for name := range cfg.Fields {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

// FieldParam returns the request parameter name carrying the pattern for the
// given field.
func (cfg *Config) FieldParam(field string) string {
	return cfg.FieldPrefix + field
}

// Save writes the configuration back to its file. Used by init only; runtime
// components never call this.
func (cfg *Config) Save(home string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
