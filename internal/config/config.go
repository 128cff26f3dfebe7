package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-docinsert/internal/fileutil"
	"github.com/alnah/go-docinsert/internal/logging"
	"github.com/alnah/go-docinsert/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrUnknownStyle    = errors.New("unknown style")
)

// appDir is the directory under the user config dir searched for named configs.
const appDir = "go-docinsert"

// Config holds all settings of a docinsert run.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Render   RenderConfig   `yaml:"render"`
	Log      LogConfig      `yaml:"log"`
}

// InputConfig defines how input is read.
type InputConfig struct {
	Format       string `yaml:"format"`       // "html", "markdown" or empty to detect
	ResolvePaths bool   `yaml:"resolvePaths"` // rewrite relative img/a paths against the input's directory
}

// MarkdownConfig defines Markdown conversion options.
type MarkdownConfig struct {
	Highlight bool   `yaml:"highlight"` // highlight fenced code during conversion
	Style     string `yaml:"style"`     // chroma style for Highlight
}

// RenderConfig defines rendering options.
type RenderConfig struct {
	Trace          bool   `yaml:"trace"`          // log every handler enter and exit
	Highlight      bool   `yaml:"highlight"`      // replace code block content with highlighted spans
	HighlightStyle string `yaml:"highlightStyle"` // chroma style for Highlight
}

// LogConfig defines logger options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Markdown: MarkdownConfig{Style: "github"},
		Render:   RenderConfig{Highlight: true, HighlightStyle: "github"},
		Log:      LogConfig{Level: "warn"},
	}
}

// Validate checks enumerated fields and style names. Called automatically by
// LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Input.Format) {
	case "", "html", "markdown":
	default:
		return fmt.Errorf("%w: input.format %q (must be html or markdown)", ErrInvalidValue, c.Input.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidValue, err)
	}
	if err := validateStyle("markdown.style", c.Markdown.Style); err != nil {
		return err
	}
	if err := validateStyle("render.highlightStyle", c.Render.HighlightStyle); err != nil {
		return err
	}
	return nil
}

// validateStyle rejects style names chroma does not register. Empty is
// allowed and selects the library default.
func validateStyle(field, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles.Registry[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %s: %w %q", ErrInvalidValue, field, ErrUnknownStyle, name)
	}
	return nil
}

// String renders the config as YAML.
func (c *Config) String() string {
	out, err := yamlutil.Marshal(c)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-docinsert/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{""}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, appDir))
	}

	triedPaths := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			path := filepath.Join(dir, name+ext)
			if fileutil.FileExists(path) {
				return path, nil
			}
			triedPaths = append(triedPaths, path)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
