package service

import (
	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.AnalyzeRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToAnalyzeRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, searching upward from
// the working directory for a project config file first
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.AnalyzeRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err == nil {
		return c.convertToAnalyzeRequest(cfg)
	}

	// Fall back to hardcoded default configuration
	cfg = config.DefaultConfig()
	return c.convertToAnalyzeRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.AnalyzeRequest, override *domain.AnalyzeRequest) *domain.AnalyzeRequest {
	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}

	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	if override.Recursive != base.Recursive {
		merged.Recursive = override.Recursive
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}

	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	return &merged
}

// convertToAnalyzeRequest converts internal config to a domain request
func (c *ConfigurationLoaderImpl) convertToAnalyzeRequest(cfg *config.Config) *domain.AnalyzeRequest {
	return &domain.AnalyzeRequest{
		OutputFormat:    domain.OutputFormat(cfg.Output.Format),
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}
}
