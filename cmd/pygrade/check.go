package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jimbeezz/pygrade/app"
	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/config"
	"github.com/jimbeezz/pygrade/service"
	"github.com/spf13/cobra"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

var (
	checkMinScore    float64
	checkFailOnError bool
	checkVerbose     bool
	checkJSON        bool
	checkConfigPath  string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Quality gate for CI/CD pipelines",
		Long: `Grade Python files and fail when any falls below the score threshold.

Exit codes:
  0 - All files meet the quality threshold
  1 - One or more files below the threshold
  2 - Analysis error (path not found, no Python files, etc.)

Examples:
  # Gate with the configured minimum score
  pygrade check src/

  # Require at least 75/100
  pygrade check --min-score 75 src/

  # Tolerate unparseable files
  pygrade check --fail-on-error=false src/

  # JSON output for machine parsing
  pygrade check --json src/`,
		RunE:          runCheck,
		SilenceUsage:  true, // Don't print usage on errors (we handle our own output)
		SilenceErrors: true, // Don't print error messages (we handle our own output)
	}

	cmd.Flags().Float64Var(&checkMinScore, "min-score", config.DefaultMinScore,
		"Lowest acceptable overall score per file")
	cmd.Flags().BoolVar(&checkFailOnError, "fail-on-error", true,
		"Fail the gate on unreadable or unparseable files")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &CheckExitError{Code: 2, Message: "no paths specified"}
	}

	// Load configuration
	cfg, err := config.LoadConfigWithTarget(checkConfigPath, args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	// Apply config values for flags not explicitly set on CLI
	if !cmd.Flags().Changed("min-score") {
		checkMinScore = cfg.Check.MinScore
	}
	if !cmd.Flags().Changed("fail-on-error") {
		checkFailOnError = cfg.Check.FailOnError
	}

	// Create progress manager (auto-disabled for JSON output or non-TTY/CI)
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	uc := app.NewCheckUseCase(
		service.NewAnalyzeServiceWithProgress(cfg, pm),
		app.NewFileHelperWithGitignore(cfg.Analysis.RespectGitignore),
	)

	req := domain.AnalyzeRequest{
		Paths:           args,
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	result, err := uc.Execute(context.Background(), req, app.CheckConfig{
		MinScore:    checkMinScore,
		FailOnError: checkFailOnError,
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	if checkJSON {
		return outputCheckJSON(result)
	}

	return outputCheckText(result)
}

func outputCheckText(result *domain.CheckResult) error {
	if result.Passed {
		fmt.Println("PASS: All quality checks passed")
		if checkVerbose {
			fmt.Printf("  Files analyzed: %d\n", result.Summary.FilesAnalyzed)
			fmt.Printf("  Average score: %.2f/100\n", result.Summary.AverageScore)
			fmt.Printf("  Lowest score: %.2f/100\n", result.Summary.LowestScore)
			fmt.Printf("  Duration: %dms\n", result.Duration)
		}
		return nil
	}

	fmt.Println("FAIL: Quality check failed")
	fmt.Printf("  Violations: %d\n", result.Summary.TotalViolations)

	for _, v := range result.Violations {
		severity := "ERROR"
		if v.Severity == "warning" {
			severity = "WARN"
		}
		fmt.Printf("  [%s] %s: %s\n", severity, v.Rule, v.Message)
		if checkVerbose && v.File != "" {
			fmt.Printf("         at %s\n", v.File)
		}
	}

	if checkVerbose {
		fmt.Printf("\nSummary:\n")
		fmt.Printf("  Files: %d\n", result.Summary.FilesAnalyzed)
		fmt.Printf("  Failed files: %d\n", result.Summary.FilesFailed)
		fmt.Printf("  Average score: %.2f/100\n", result.Summary.AverageScore)
		fmt.Printf("  Lowest score: %.2f/100\n", result.Summary.LowestScore)
		fmt.Printf("  Duration: %dms\n", result.Duration)
	}

	return &CheckExitError{Code: 1, Message: ""}
}

func outputCheckJSON(result *domain.CheckResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to encode JSON: %v", err)}
	}

	if !result.Passed {
		return &CheckExitError{Code: 1, Message: ""}
	}
	return nil
}
