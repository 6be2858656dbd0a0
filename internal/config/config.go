package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by mers-cli, the REPL and mers-lsp.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Repl   ReplConfig   `toml:"repl" yaml:"repl"`
}

// OutputConfig selects how parsed trees are rendered
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // tree, sexpr, json or yaml
	Engine string `toml:"engine" yaml:"engine"` // parser or grammar
	Color  bool   `toml:"color" yaml:"color"`
}

type LogConfig struct {
	Verbosity int `toml:"verbosity" yaml:"verbosity"`
}

type ReplConfig struct {
	History string `toml:"history" yaml:"history"`
}

var (
	Formats = []string{"tree", "sexpr", "json", "yaml"}
	Engines = []string{"parser", "grammar"}
)

// DefaultNames are tried in the working directory when no path is given.
var DefaultNames = []string{"mers.toml", "mers.yaml", "mers.yml"}

func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "tree",
			Engine: "parser",
			Color:  true,
		},
		Repl: ReplConfig{
			History: filepath.Join(os.TempDir(), "mers_history"),
		},
	}
}

// Load reads configuration from path, or from the first of DefaultNames
// present when path is empty. Missing keys keep their defaults; with no file
// at all the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		for _, name := range DefaultNames {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := decode(content, detectFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Repl.History = os.ExpandEnv(cfg.Repl.History)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

func decode(content []byte, format string, cfg *Config) error {
	if format == "yaml" {
		return yaml.Unmarshal(content, cfg)
	}
	_, err := toml.Decode(string(content), cfg)
	return err
}

// Validate rejects output formats and engines no command knows about.
func (c *Config) Validate() error {
	if !contains(Formats, c.Output.Format) {
		return fmt.Errorf("invalid output.format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if !contains(Engines, c.Output.Engine) {
		return fmt.Errorf("invalid output.engine %q (want one of %s)", c.Output.Engine, strings.Join(Engines, ", "))
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("invalid log.verbosity %d", c.Log.Verbosity)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
