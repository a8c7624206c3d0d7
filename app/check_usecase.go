package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/version"
)

// CheckConfig holds the thresholds for the quality gate
type CheckConfig struct {
	// MinScore is the lowest acceptable per-file overall score
	MinScore float64

	// FailOnError controls whether unreadable or unparseable files fail
	// the gate
	FailOnError bool
}

// CheckUseCase runs the analysis and evaluates it against quality gate
// thresholds. It never writes a report; the caller decides how to present
// the violations.
type CheckUseCase struct {
	service    domain.AnalyzeService
	fileHelper *FileHelper
}

// NewCheckUseCase creates a new check use case
func NewCheckUseCase(service domain.AnalyzeService, fileHelper *FileHelper) *CheckUseCase {
	if fileHelper == nil {
		fileHelper = NewFileHelper()
	}
	return &CheckUseCase{
		service:    service,
		fileHelper: fileHelper,
	}
}

// Execute analyzes the paths and evaluates every file against the gate.
// The returned result carries Passed=false and ExitCode=1 when any
// violation of severity error exists; runtime failures surface as errors
// and map to exit code 2 at the CLI boundary.
func (uc *CheckUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest, cfg CheckConfig) (*domain.CheckResult, error) {
	startTime := time.Now()

	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("no input paths specified", nil)
	}

	files, err := ResolveFilePaths(
		uc.fileHelper,
		req.Paths,
		req.Recursive,
		req.IncludePatterns,
		req.ExcludePatterns,
	)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no Python files found in the specified paths", nil)
	}

	req.Paths = files

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("analysis failed", err)
	}

	result := &domain.CheckResult{
		Passed:      true,
		GeneratedAt: response.GeneratedAt,
		Version:     version.Version,
		Summary: domain.CheckSummary{
			FilesAnalyzed: response.Summary.FilesAnalyzed,
			FilesFailed:   response.Summary.FilesFailed,
			AverageScore:  response.Summary.AverageScore,
			LowestScore:   101,
		},
	}

	for i := range response.Results {
		r := &response.Results[i]
		if r.IsError() {
			severity := "warning"
			if cfg.FailOnError {
				severity = "error"
			}
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:     "no-errors",
				Severity: severity,
				Message:  fmt.Sprintf("analysis failed: %s", r.Error),
				File:     r.FilePath,
				Actual:   r.Error,
			})
			continue
		}

		if r.OverallScore < result.Summary.LowestScore {
			result.Summary.LowestScore = r.OverallScore
		}

		if r.OverallScore < cfg.MinScore {
			result.Violations = append(result.Violations, domain.CheckViolation{
				Rule:      "min-score",
				Severity:  "error",
				Message:   fmt.Sprintf("overall score %.2f is below the minimum %.2f", r.OverallScore, cfg.MinScore),
				File:      r.FilePath,
				Actual:    fmt.Sprintf("%.2f", r.OverallScore),
				Threshold: fmt.Sprintf("%.2f", cfg.MinScore),
			})
		}
	}

	if result.Summary.LowestScore > 100 {
		result.Summary.LowestScore = 0
	}

	result.Summary.TotalViolations = len(result.Violations)
	for _, v := range result.Violations {
		if v.Severity == "error" {
			result.Passed = false
			result.ExitCode = 1
			break
		}
	}

	result.Duration = time.Since(startTime).Milliseconds()

	return result, nil
}
