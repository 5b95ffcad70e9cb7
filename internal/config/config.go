package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-mdfix/internal/fileutil"
	"github.com/alnah/go-mdfix/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid workers value")
	ErrInvalidExt      = errors.New("invalid markdown extension")
)

// Field limits.
const (
	MaxPathLength  = 4096
	MaxStyleLength = 64 * 1024 // inline CSS is allowed
	MaxTitleLength = 200
	MaxLangLength  = 35 // BCP 47 tags are short
	MaxExtensions  = 16
	MaxWorkers     = 64
)

// Config holds all configuration for the CLI.
type Config struct {
	Input   InputConfig  `yaml:"input" toml:"input"`
	Output  OutputConfig `yaml:"output" toml:"output"`
	Fix     FixConfig    `yaml:"fix" toml:"fix"`
	Render  RenderConfig `yaml:"render" toml:"render"`
	Workers int          `yaml:"workers" toml:"workers"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir" toml:"defaultDir"` // used when no path is given
	Extensions []string `yaml:"extensions" toml:"extensions"` // empty = .md, .markdown
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // empty = stdout or in place
}

// FixConfig selects which parts of a document are left untouched.
type FixConfig struct {
	ProtectCode          bool `yaml:"protectCode" toml:"protectCode"`
	SkipFrontmatter      bool `yaml:"skipFrontmatter" toml:"skipFrontmatter"`
	NormalizeLineEndings bool `yaml:"normalizeLineEndings" toml:"normalizeLineEndings"`
}

// RenderConfig defines HTML preview options.
type RenderConfig struct {
	Style     string `yaml:"style" toml:"style"`         // name, file path, or inline CSS
	AssetPath string `yaml:"assetPath" toml:"assetPath"` // directory with styles/{name}.css
	Title     string `yaml:"title" toml:"title"`
	Lang      string `yaml:"lang" toml:"lang"`
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.style", c.Render.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.assetPath", c.Render.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.title", c.Render.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.lang", c.Render.Lang, MaxLangLength); err != nil {
		return err
	}

	if len(c.Input.Extensions) > MaxExtensions {
		return fmt.Errorf("%w: %d extensions (max %d)", ErrInvalidExt, len(c.Input.Extensions), MaxExtensions)
	}
	for i, ext := range c.Input.Extensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: input.extensions[%d] %q: %v", ErrInvalidExt, i, ext, err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 = auto)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that fixes everything and renders
// with the built-in style.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Fix:    FixConfig{},
		Render: RenderConfig{Style: "", Lang: "ja"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched for in standard locations.
// The format follows the extension: .toml is TOML, anything else YAML.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || filepath.Ext(nameOrPath) != "" {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
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
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = decodeTOML(data, cfg)
	} else {
		err = yamlutil.UnmarshalStrict(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeTOML mirrors yamlutil.UnmarshalStrict: size-limited and unknown
// keys rejected.
func decodeTOML(data []byte, cfg *Config) error {
	if len(data) > yamlutil.MaxInputSize {
		return fmt.Errorf("toml: input exceeds maximum size: %d bytes (max %d)", len(data), yamlutil.MaxInputSize)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("toml: unknown field(s): %s", strings.Join(keys, ", "))
	}
	return nil
}

// configExtensions is the lookup order for a config name.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// SearchPaths returns the candidate files for a config name, in lookup
// order: the current directory, then {UserConfigDir}/go-mdfix/.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(configExtensions)*2)
	for _, ext := range configExtensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range configExtensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-mdfix", name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
