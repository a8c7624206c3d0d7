package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimbeezz/pygrade/domain"
	"gopkg.in/yaml.v3"
)

func sampleResponse() *domain.AnalyzeResponse {
	return &domain.AnalyzeResponse{
		Results: []domain.FileMetrics{
			{
				FilePath: "example.py",
				Style: &domain.StyleMetrics{
					Score:           75,
					ViolationsCount: 1,
					Violations: []domain.StyleViolation{
						{Line: 3, Kind: domain.ViolationLineTooLong, Message: "Line too long (85 > 79 characters)"},
					},
				},
				Complexity: &domain.ComplexityMetrics{
					Average: 2.0,
					Max:     3,
					Functions: []domain.FunctionComplexity{
						{Name: "process", Complexity: 3, Line: 1},
						{Name: "helper", Complexity: 1, Line: 10},
					},
				},
				Docstrings: &domain.DocstringMetrics{
					FunctionsCoverage: 50,
					ClassesCoverage:   100,
					OverallCoverage:   50,
					FunctionsWithDoc:  1,
					FunctionsTotal:    2,
				},
				Duplication: &domain.DuplicationMetrics{
					DuplicateBlocks:       0,
					DuplicationPercentage: 0,
				},
				Naming: &domain.NamingMetrics{
					Score:            100,
					FunctionsChecked: 2,
				},
				FunctionsCount: 2,
				LinesOfCode:    20,
				OverallScore:   76.5,
			},
		},
		Summary: domain.AnalyzeSummary{
			FilesAnalyzed: 1,
			AverageScore:  76.5,
			BestFile:      "example.py",
			WorstFile:     "example.py",
		},
		GeneratedAt: "2026-08-29T10:00:00Z",
		Version:     "1.0.0",
	}
}

func TestFormatText(t *testing.T) {
	formatter := NewOutputFormatter()

	output, err := formatter.Format(sampleResponse(), domain.OutputFormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{
		"CODE QUALITY REPORT",
		"Generated: 2026-08-29T10:00:00Z",
		"Files analyzed: 1",
		"Average overall score: 76.50/100",
		"File: example.py",
		"Overall score: 76.50/100",
		"PEP 8 compliance: 75.00/100",
		"- Line 3: Line too long (85 > 79 characters)",
		"Average: 2.00",
		"Maximum: 3",
		"- process (line 1): 3",
		"Docstring coverage: 50.00%",
		"Functions: 1/2",
		"Code duplication: 0.00%",
		"Naming quality: 100.00/100",
		"Lines of code: 20",
		"RECOMMENDATIONS",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatText_ErrorRecord(t *testing.T) {
	formatter := NewOutputFormatter()
	response := &domain.AnalyzeResponse{
		Results: []domain.FileMetrics{
			{FilePath: "broken.py", Error: "failed to parse file (syntax error)"},
		},
		Summary:     domain.AnalyzeSummary{FilesFailed: 1},
		GeneratedAt: "2026-08-29T10:00:00Z",
	}

	output, err := formatter.Format(response, domain.OutputFormatText)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "ERROR: failed to parse file (syntax error)") {
		t.Error("expected error line for the failed file")
	}
}

func TestFormatJSON(t *testing.T) {
	formatter := NewOutputFormatter()

	output, err := formatter.Format(sampleResponse(), domain.OutputFormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.AnalyzeResponse
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].FilePath != "example.py" {
		t.Errorf("unexpected decoded results: %+v", decoded.Results)
	}
	if decoded.Summary.AverageScore != 76.5 {
		t.Errorf("expected average 76.5, got %.2f", decoded.Summary.AverageScore)
	}
	if !strings.Contains(output, "\"overall_score\"") {
		t.Error("expected snake_case JSON keys")
	}
}

func TestFormatYAML(t *testing.T) {
	formatter := NewOutputFormatter()

	output, err := formatter.Format(sampleResponse(), domain.OutputFormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.AnalyzeResponse
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", decoded.Version)
	}
}

func TestFormatHTML(t *testing.T) {
	formatter := NewOutputFormatter()

	output, err := formatter.Format(sampleResponse(), domain.OutputFormatHTML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "<html") {
		t.Error("expected an HTML document")
	}
	if !strings.Contains(output, "example.py") {
		t.Error("expected the file path in the report")
	}
	if !strings.Contains(output, "score-fair") {
		t.Error("expected a fair score class for 76.5")
	}
}

func TestFormatUnsupported(t *testing.T) {
	formatter := NewOutputFormatter()

	_, err := formatter.Format(sampleResponse(), domain.OutputFormat("xml"))
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	r := &domain.FileMetrics{
		FilePath:   "messy.py",
		Style:      &domain.StyleMetrics{Score: 60, ViolationsCount: 8},
		Complexity: &domain.ComplexityMetrics{Average: 7.5, Max: 14},
		Docstrings: &domain.DocstringMetrics{
			OverallCoverage: 25, FunctionsTotal: 4, FunctionsWithDoc: 1,
		},
		Duplication:     &domain.DuplicationMetrics{DuplicationPercentage: 15},
		Naming:          &domain.NamingMetrics{Score: 80, IssuesCount: 2},
		LinesOfCode:     120,
		EmptyLinesRatio: 2,
	}

	recommendations := GenerateRecommendations(r)

	expected := []string{
		"Fix 8 PEP 8 violations to improve readability",
		"Simplify functions with average complexity 7.5 (recommended <=5) by splitting them into smaller functions",
		"Refactor high complexity functions (maximum 14, recommended <=10)",
		"Add docstrings to 3 code elements (current coverage: 25.0%, recommended >=80%)",
		"Reduce code duplication (15.0%, recommended <=10%) by extracting shared logic into functions",
		"Fix naming in 2 places (functions: snake_case, classes: PascalCase)",
		"Add empty lines to improve readability (10-15% is optimal)",
	}

	if len(recommendations) != len(expected) {
		t.Fatalf("expected %d recommendations, got %d: %v", len(expected), len(recommendations), recommendations)
	}
	for i, want := range expected {
		if recommendations[i] != want {
			t.Errorf("recommendation %d:\n  got:  %s\n  want: %s", i, recommendations[i], want)
		}
	}
}

func TestGenerateRecommendations_CleanFile(t *testing.T) {
	r := &domain.FileMetrics{
		FilePath:        "clean.py",
		Style:           &domain.StyleMetrics{Score: 100},
		Complexity:      &domain.ComplexityMetrics{Average: 1.5, Max: 2},
		Docstrings:      &domain.DocstringMetrics{OverallCoverage: 100},
		Duplication:     &domain.DuplicationMetrics{},
		Naming:          &domain.NamingMetrics{Score: 100},
		LinesOfCode:     40,
		EmptyLinesRatio: 12,
	}

	if got := GenerateRecommendations(r); len(got) != 0 {
		t.Errorf("expected no recommendations, got %v", got)
	}
}

func TestGenerateRecommendations_ErrorRecord(t *testing.T) {
	r := &domain.FileMetrics{FilePath: "broken.py", Error: "failed to read file: gone"}

	if got := GenerateRecommendations(r); got != nil {
		t.Errorf("expected nil for error record, got %v", got)
	}
}

func TestGenerateRecommendations_TooManyEmptyLines(t *testing.T) {
	r := &domain.FileMetrics{
		FilePath:        "airy.py",
		Style:           &domain.StyleMetrics{Score: 100},
		Complexity:      &domain.ComplexityMetrics{Average: 1},
		Docstrings:      &domain.DocstringMetrics{OverallCoverage: 100},
		Duplication:     &domain.DuplicationMetrics{},
		Naming:          &domain.NamingMetrics{Score: 100},
		LinesOfCode:     100,
		EmptyLinesRatio: 35,
	}

	recommendations := GenerateRecommendations(r)

	if len(recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %v", recommendations)
	}
	if recommendations[0] != "Too many empty lines (35.0%, 10-15% is optimal)" {
		t.Errorf("unexpected recommendation: %s", recommendations[0])
	}
}

func TestFirstViolationsTruncation(t *testing.T) {
	violations := make([]domain.StyleViolation, 8)
	if got := firstViolations(violations, 5); len(got) != 5 {
		t.Errorf("expected 5 violations, got %d", len(got))
	}
	if got := firstViolations(violations[:3], 5); len(got) != 3 {
		t.Errorf("expected 3 violations, got %d", len(got))
	}
}
