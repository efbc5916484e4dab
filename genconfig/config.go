package genconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for config loading.
var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .toml, .yaml, and .yml.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrNoGenerations is returned when the config declares no runs.
	ErrNoGenerations = errors.New("config declares no generations")

	// ErrIncomplete is returned when a generation is missing a required
	// field.
	ErrIncomplete = errors.New("incomplete generation")
)

// Generation describes one table-to-type generation run.
type Generation struct {
	// Type is the name of the generated type. Required.
	Type string `toml:"type" yaml:"type" json:"type"`

	// Table is the path of the source assignment table. Required.
	Table string `toml:"table" yaml:"table" json:"table"`

	// Out is the path the generated source is written to. Empty means
	// standard output.
	Out string `toml:"out" yaml:"out" json:"out"`

	// Repr is the underlying integer type. Default "uint16".
	Repr string `toml:"repr" yaml:"repr" json:"repr"`

	// Doc optionally overrides the generated type's doc comment.
	Doc string `toml:"doc" yaml:"doc" json:"doc"`
}

// Config holds every generation run of one invocation.
type Config struct {
	Generations []Generation `toml:"generation" yaml:"generations" json:"generations"`
}

// Load reads and validates a config file, dispatching on its extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills zero-valued optional fields.
func (c *Config) applyDefaults() {
	for i := range c.Generations {
		if c.Generations[i].Repr == "" {
			c.Generations[i].Repr = "uint16"
		}
	}
}

// Validate checks that every generation names a type and a source table.
func (c *Config) Validate() error {
	if len(c.Generations) == 0 {
		return ErrNoGenerations
	}
	for i, g := range c.Generations {
		if g.Type == "" {
			return fmt.Errorf("%w: generation %d has no type", ErrIncomplete, i)
		}
		if g.Table == "" {
			return fmt.Errorf("%w: generation %q has no table", ErrIncomplete, g.Type)
		}
	}
	return nil
}
