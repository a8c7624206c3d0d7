package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/config"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

const cleanSource = `"""A small module."""


def add(a, b):
    """Add two numbers."""
    return a + b
`

const messySource = `def processData(x):
    if x > 0:
        if x > 10:
            return "big"
    return "small"
`

func TestAnalyzeSingleFile_CleanSource(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "clean.py", cleanSource)

	svc := NewAnalyzeService(config.DefaultConfig())
	result := svc.AnalyzeSingleFile(path)

	if result.IsError() {
		t.Fatalf("unexpected error record: %s", result.Error)
	}
	if result.FilePath != path {
		t.Errorf("expected path %q, got %q", path, result.FilePath)
	}
	if result.Style == nil || result.Style.Score != 100 {
		t.Errorf("expected style score 100, got %+v", result.Style)
	}
	if result.Docstrings == nil || result.Docstrings.OverallCoverage != 100 {
		t.Errorf("expected full docstring coverage, got %+v", result.Docstrings)
	}
	if result.FunctionsCount != 1 {
		t.Errorf("expected 1 function, got %d", result.FunctionsCount)
	}
	if result.OverallScore != 100 {
		t.Errorf("expected overall score 100, got %.2f", result.OverallScore)
	}
}

func TestAnalyzeSingleFile_MissingFile(t *testing.T) {
	svc := NewAnalyzeService(config.DefaultConfig())
	result := svc.AnalyzeSingleFile(filepath.Join(t.TempDir(), "missing.py"))

	if !result.IsError() {
		t.Fatal("expected error record for missing file")
	}
	if !strings.HasPrefix(result.Error, "failed to read file") {
		t.Errorf("unexpected error message: %s", result.Error)
	}
	if result.Style != nil {
		t.Error("error record should carry no metrics")
	}
}

func TestAnalyzeSingleFile_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "broken.py", "def broken(:\n    pass\n")

	svc := NewAnalyzeService(config.DefaultConfig())
	result := svc.AnalyzeSingleFile(path)

	if !result.IsError() {
		t.Fatal("expected error record for syntax error")
	}
	if result.Error != "failed to parse file (syntax error)" {
		t.Errorf("unexpected error message: %s", result.Error)
	}
}

func TestAnalyzeSingleFile_Deterministic(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "messy.py", messySource)

	svc := NewAnalyzeService(config.DefaultConfig())
	first := svc.AnalyzeSingleFile(path)
	second := svc.AnalyzeSingleFile(path)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical records for identical input")
	}
}

func TestAnalyze_BatchPreservesOrderAndKeepsErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeTestFile(t, dir, "good.py", cleanSource)
	missing := filepath.Join(dir, "missing.py")
	other := writeTestFile(t, dir, "other.py", messySource)

	svc := NewAnalyzeService(config.DefaultConfig())
	resp, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{
		Paths: []string{good, missing, other},
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	if resp.Results[0].FilePath != good || resp.Results[1].FilePath != missing || resp.Results[2].FilePath != other {
		t.Error("results should keep request order")
	}
	if !resp.Results[1].IsError() {
		t.Error("expected the missing file to produce an error record")
	}
	if resp.Summary.FilesAnalyzed != 2 {
		t.Errorf("expected 2 analyzed files, got %d", resp.Summary.FilesAnalyzed)
	}
	if resp.Summary.FilesFailed != 1 {
		t.Errorf("expected 1 failed file, got %d", resp.Summary.FilesFailed)
	}
	if resp.GeneratedAt == "" || resp.Version == "" {
		t.Error("expected generation metadata on the response")
	}
}

func TestAnalyze_EmptyRequest(t *testing.T) {
	svc := NewAnalyzeService(config.DefaultConfig())
	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{})

	if err == nil {
		t.Fatal("expected error for empty path list")
	}
	var domainErr domain.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domain.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT error, got %v", err)
	}
}

func TestBuildSummary(t *testing.T) {
	results := []domain.FileMetrics{
		{FilePath: "a.py", OverallScore: 90},
		{FilePath: "b.py", OverallScore: 60},
		{FilePath: "c.py", Error: "failed to read file: gone"},
		{FilePath: "d.py", OverallScore: 75},
	}

	summary := buildSummary(results)

	if summary.FilesAnalyzed != 3 {
		t.Errorf("expected 3 analyzed, got %d", summary.FilesAnalyzed)
	}
	if summary.FilesFailed != 1 {
		t.Errorf("expected 1 failed, got %d", summary.FilesFailed)
	}
	if summary.AverageScore != 75 {
		t.Errorf("expected average 75, got %.2f", summary.AverageScore)
	}
	if summary.BestFile != "a.py" {
		t.Errorf("expected best file a.py, got %q", summary.BestFile)
	}
	if summary.WorstFile != "b.py" {
		t.Errorf("expected worst file b.py, got %q", summary.WorstFile)
	}
}

func TestBuildSummary_AllErrors(t *testing.T) {
	results := []domain.FileMetrics{
		{FilePath: "a.py", Error: "failed to parse file (syntax error)"},
	}

	summary := buildSummary(results)

	if summary.AverageScore != 0 {
		t.Errorf("expected average 0 with no scored files, got %.2f", summary.AverageScore)
	}
	if summary.BestFile != "" || summary.WorstFile != "" {
		t.Error("expected no best/worst file with no scored files")
	}
}
