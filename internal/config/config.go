package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default style check settings (PEP 8)
const (
	// DefaultMaxLineLength is the PEP 8 line length limit
	DefaultMaxLineLength = 79

	// DefaultIndentMultiple is the required indentation step in spaces
	DefaultIndentMultiple = 4
)

// Default duplication detection settings
const (
	// DefaultMinBlockSize is the duplicate window size in meaningful lines
	DefaultMinBlockSize = 3
)

// Default quality gate settings
const (
	// DefaultMinScore is the lowest acceptable overall score for `check`
	DefaultMinScore = 60.0
)

// Default performance settings for batch analysis
const (
	DefaultMaxGoroutines  = 4
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Style holds PEP 8 style check configuration
	Style StyleConfig `json:"style" mapstructure:"style" yaml:"style"`

	// Duplication holds duplicate-block detection configuration
	Duplication DuplicationConfig `json:"duplication" mapstructure:"duplication" yaml:"duplication"`

	// Check holds quality gate configuration
	Check CheckConfig `json:"check" mapstructure:"check" yaml:"check"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Analysis holds file collection configuration
	Analysis AnalysisConfig `json:"analysis" mapstructure:"analysis" yaml:"analysis"`

	// Performance holds batch execution configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// StyleConfig holds configuration for the PEP 8 style checker
type StyleConfig struct {
	// MaxLineLength is the longest allowed code line
	MaxLineLength int `json:"max_line_length" mapstructure:"max_line_length" yaml:"max_line_length"`

	// IndentMultiple is the required indentation step in spaces
	IndentMultiple int `json:"indent_multiple" mapstructure:"indent_multiple" yaml:"indent_multiple"`
}

// DuplicationConfig holds configuration for duplicate-block detection
type DuplicationConfig struct {
	// MinBlockSize is the fixed comparison window in meaningful lines
	MinBlockSize int `json:"min_block_size" mapstructure:"min_block_size" yaml:"min_block_size"`
}

// CheckConfig holds configuration for the CI quality gate
type CheckConfig struct {
	// MinScore is the lowest acceptable per-file overall score
	MinScore float64 `json:"min_score" mapstructure:"min_score" yaml:"min_score"`

	// FailOnError controls whether unreadable or unparseable files fail the gate
	FailOnError bool `json:"fail_on_error" mapstructure:"fail_on_error" yaml:"fail_on_error"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, html
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-file detail sections are rendered
	ShowDetails bool `json:"show_details" mapstructure:"show_details" yaml:"show_details"`

	// Directory specifies the output directory for saved reports
	Directory string `json:"directory" mapstructure:"directory" yaml:"directory"`
}

// AnalysisConfig holds file collection configuration
type AnalysisConfig struct {
	// IncludePatterns specifies file patterns to include
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies file and directory patterns to exclude
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// Recursive controls whether directories are analyzed recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// RespectGitignore controls whether .gitignore rules are honored when
	// collecting files from a directory
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// PerformanceConfig holds batch execution configuration
type PerformanceConfig struct {
	// MaxGoroutines caps concurrent file analyses
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole batch run
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Style: StyleConfig{
			MaxLineLength:  DefaultMaxLineLength,
			IndentMultiple: DefaultIndentMultiple,
		},
		Duplication: DuplicationConfig{
			MinBlockSize: DefaultMinBlockSize,
		},
		Check: CheckConfig{
			MinScore:    DefaultMinScore,
			FailOnError: true,
		},
		Output: OutputConfig{
			Format:      "text",
			ShowDetails: true,
		},
		Analysis: AnalysisConfig{
			IncludePatterns: []string{"**/*.py"},
			ExcludePatterns: []string{
				// Interpreter caches and build artifacts
				"__pycache__",
				"*.pyc",
				".mypy_cache",
				".pytest_cache",
				".ruff_cache",
				"build",
				"dist",
				"*.egg-info",
				// Virtual environments
				".venv",
				"venv",
				// Version control
				".git",
			},
			Recursive:        true,
			RespectGitignore: false,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	if c.Style.MaxLineLength <= 0 {
		return fmt.Errorf("style.max_line_length must be positive, got %d", c.Style.MaxLineLength)
	}
	if c.Style.IndentMultiple <= 0 {
		return fmt.Errorf("style.indent_multiple must be positive, got %d", c.Style.IndentMultiple)
	}
	if c.Duplication.MinBlockSize <= 0 {
		return fmt.Errorf("duplication.min_block_size must be positive, got %d", c.Duplication.MinBlockSize)
	}
	if c.Check.MinScore < 0 || c.Check.MinScore > 100 {
		return fmt.Errorf("check.min_score must be in [0, 100], got %g", c.Check.MinScore)
	}
	switch c.Output.Format {
	case "text", "json", "yaml", "html":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, html, got %q", c.Output.Format)
	}
	return nil
}

// LoadConfig loads configuration from file or returns the default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context: when no
// explicit path is given, config discovery starts at the analyzed path and
// walks upward before falling back to XDG locations.
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared state between calls
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// searchConfigInDirectory searches for configuration files in a directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common
// locations, starting from the analyzed path and walking up to the root
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		"pygrade.yaml",
		"pygrade.yml",
		".pygrade.yaml",
		".pygrade.yml",
		"pygrade.json",
		".pygrade.json",
	}

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// XDG config directory, then home
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, "pygrade"), candidates); config != "" {
			return config
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if config := searchConfigInDirectory(filepath.Join(home, ".config", "pygrade"), candidates); config != "" {
			return config
		}
	}

	return ""
}
