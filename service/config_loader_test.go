package service

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jimbeezz/pygrade/domain"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".pygrade.yaml")
	content := `output:
  format: json
analysis:
  recursive: false
  exclude_patterns:
    - "*_test.py"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	loader := NewConfigurationLoader()
	req, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.OutputFormat != domain.OutputFormatJSON {
		t.Errorf("expected json format, got %q", req.OutputFormat)
	}
	if req.Recursive {
		t.Error("expected recursive disabled")
	}
	if len(req.ExcludePatterns) != 1 || req.ExcludePatterns[0] != "*_test.py" {
		t.Errorf("unexpected exclude patterns: %v", req.ExcludePatterns)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	loader := NewConfigurationLoader()

	_, err := loader.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeConfigError {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	loader := NewConfigurationLoader()

	req := loader.LoadDefaultConfig()
	if req == nil {
		t.Fatal("expected a request from defaults")
	}
	if req.OutputFormat == "" {
		t.Error("expected a default output format")
	}
}

func TestMergeConfig(t *testing.T) {
	loader := NewConfigurationLoader()

	base := &domain.AnalyzeRequest{
		OutputFormat: domain.OutputFormatText,
		Recursive:    true,
	}
	override := &domain.AnalyzeRequest{
		Paths:        []string{"src"},
		OutputFormat: domain.OutputFormatJSON,
		OutputPath:   "report.json",
	}

	merged := loader.MergeConfig(base, override)

	if merged.OutputFormat != domain.OutputFormatJSON {
		t.Errorf("expected override format, got %q", merged.OutputFormat)
	}
	if merged.OutputPath != "report.json" {
		t.Errorf("expected override output path, got %q", merged.OutputPath)
	}
	if !merged.Recursive {
		t.Error("expected base recursive preserved")
	}
	if len(merged.Paths) != 1 || merged.Paths[0] != "src" {
		t.Errorf("expected override paths, got %v", merged.Paths)
	}
}

func TestMergeConfig_EmptyOverride(t *testing.T) {
	loader := NewConfigurationLoader()

	base := &domain.AnalyzeRequest{
		OutputFormat:    domain.OutputFormatYAML,
		ExcludePatterns: []string{"*.pyc"},
	}

	merged := loader.MergeConfig(base, &domain.AnalyzeRequest{})

	if merged.OutputFormat != domain.OutputFormatYAML {
		t.Errorf("expected base format preserved, got %q", merged.OutputFormat)
	}
	if len(merged.ExcludePatterns) != 1 {
		t.Errorf("expected base exclude patterns preserved, got %v", merged.ExcludePatterns)
	}
}
