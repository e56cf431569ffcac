// Package config loads conversion profiles from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2office/internal/fileutil"
	"github.com/alnah/go-md2office/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds a conversion profile for the CLI.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
	Preview    PreviewConfig    `yaml:"preview"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ConversionConfig overrides conversion settings. Zero values mean
// "use the library default".
type ConversionConfig struct {
	Target          string  `yaml:"target"`          // "document" or "deck"
	ContentWidth    float64 `yaml:"contentWidth"`    // inches
	ImageWidth      float64 `yaml:"imageWidth"`      // inches
	TableFont       float64 `yaml:"tableFont"`       // points, nominal size
	TableMinFont    float64 `yaml:"tableMinFont"`    // points, window-fit floor
	MaxListDepth    *int    `yaml:"maxListDepth"`    // 0-2, nil = default
	HorizontalRules *bool   `yaml:"horizontalRules"` // nil = default
}

// PreviewConfig defines HTML preview options.
type PreviewConfig struct {
	Enabled bool `yaml:"enabled"` // write an HTML preview next to each output
}

// DefaultConfig returns a neutral profile with no overrides.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate rejects obviously broken profiles early, before the library's
// own settings validation runs with defaults merged in.
func (c *Config) Validate() error {
	switch c.Conversion.Target {
	case "", "document", "deck":
		// valid
	default:
		return fmt.Errorf("conversion.target: invalid value %q (must be document or deck)", c.Conversion.Target)
	}
	if c.Conversion.ContentWidth < 0 {
		return fmt.Errorf("conversion.contentWidth: must not be negative, got %.2f", c.Conversion.ContentWidth)
	}
	if c.Conversion.ImageWidth < 0 {
		return fmt.Errorf("conversion.imageWidth: must not be negative, got %.2f", c.Conversion.ImageWidth)
	}
	if c.Conversion.TableFont < 0 || c.Conversion.TableMinFont < 0 {
		return fmt.Errorf("conversion table fonts must not be negative")
	}
	if d := c.Conversion.MaxListDepth; d != nil && (*d < 0 || *d > 2) {
		return fmt.Errorf("conversion.maxListDepth: must be 0, 1, or 2, got %d", *d)
	}
	return nil
}

// LoadConfig loads a profile from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in standard locations. Returns an error if the
// file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries extensions in order: .yaml, .yml.
// Tries locations in order: current directory, ~/.config/go-md2office/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2office", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
