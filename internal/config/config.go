// Package config loads converter settings from TOML or YAML files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "PRE_CONFIG"

// Format is a configuration file format.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML is used for .yaml and .yml files.
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the converter settings.
type Config struct {
	Input  string    `toml:"input" yaml:"input"`   // Source file, "-" for stdin.
	Output string    `toml:"output" yaml:"output"` // Destination file, "-" for stdout.
	Indent string    `toml:"indent" yaml:"indent"` // Indentation per nesting level.
	Log    LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn or error.
	Format string `toml:"format" yaml:"format"` // text or json.
	Timing bool   `toml:"timing" yaml:"timing"` // Log phase durations.
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in every unset field.
func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = "./test/index.pre"
	}
	if c.Output == "" {
		c.Output = "-"
	}
	if c.Indent == "" {
		c.Indent = "  "
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// DetectFormat picks the format from the file extension. Unknown
// extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads the configuration file at path and applies defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	return cfg, nil
}

// Parse decodes content in the given format, applies defaults and
// validates the result.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, errors.Wrap(err, "parse yaml")
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, errors.Wrap(err, "parse toml")
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by PRE_CONFIG or, failing that, the
// first file found in the default locations. Without any file the
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		path = discover()
	}
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// discover returns the first existing default config path.
func discover() string {
	candidates := []string{
		"./pre.toml",
		"./pre.yaml",
		"./pre.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "pre", "config.toml"))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("log.format: unknown format %q", c.Log.Format)
	}

	if strings.TrimSpace(c.Indent) != "" {
		return errors.Errorf("indent: %q must contain only whitespace", c.Indent)
	}

	return nil
}
