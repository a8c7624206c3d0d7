package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jimbeezz/pygrade/app"
	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/config"
	"github.com/jimbeezz/pygrade/service"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	outputPath   string
	configPath   string
	jsonOutput   bool
	htmlOutput   bool
	noRecursive  bool
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [path...]",
		Short: "Analyze Python files and grade their quality",
		Long: `Analyze Python files for PEP 8 compliance, cyclomatic complexity,
docstring coverage, code duplication, and naming conventions.

Examples:
  pygrade analyze src/
  pygrade analyze main.py utils.py
  pygrade analyze --format json src/
  pygrade analyze --format html --output report.html src/`,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "",
		"Output format: text, json, yaml, html")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default: stdout, pygrade-report.html for HTML)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().BoolVar(&htmlOutput, "html", false,
		"Output results as HTML (shorthand for --format html)")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false,
		"Don't descend into subdirectories")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	// Load configuration, searching upward from the first target
	cfg, err := config.LoadConfigWithTarget(configPath, args[0])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := resolveFormat(cfg)

	// HTML reports go to a file so they can be opened in a browser
	resolvedOutputPath := outputPath
	if format == domain.OutputFormatHTML && resolvedOutputPath == "" {
		resolvedOutputPath = "pygrade-report.html"
	}

	// Progress bars only make sense for human-readable terminal output
	pm := service.NewProgressManager(format == domain.OutputFormatText && resolvedOutputPath == "")
	defer pm.Close()

	uc, err := app.NewAnalyzeUseCaseBuilder().
		WithService(service.NewAnalyzeServiceWithProgress(cfg, pm)).
		WithFormatter(service.NewOutputFormatter()).
		WithConfigLoader(service.NewConfigurationLoader()).
		WithFileHelper(app.NewFileHelperWithGitignore(cfg.Analysis.RespectGitignore)).
		Build()
	if err != nil {
		return err
	}

	req := domain.AnalyzeRequest{
		Paths:           args,
		OutputFormat:    format,
		OutputWriter:    cmd.OutOrStdout(),
		OutputPath:      resolvedOutputPath,
		ConfigPath:      configPath,
		Recursive:       cfg.Analysis.Recursive && !noRecursive,
		IncludePatterns: cfg.Analysis.IncludePatterns,
		ExcludePatterns: cfg.Analysis.ExcludePatterns,
	}

	response, err := uc.Execute(context.Background(), req)
	if err != nil {
		return err
	}

	if resolvedOutputPath != "" {
		displayPath := resolvedOutputPath
		if absPath, absErr := filepath.Abs(resolvedOutputPath); absErr == nil {
			displayPath = absPath
		}
		fmt.Fprintf(os.Stderr, "Report saved to: %s\n", displayPath)
	}

	// Short completion summary on stderr so it never corrupts piped output
	if response.Summary.FilesAnalyzed > 0 {
		fmt.Fprintf(os.Stderr, "\nAnalysis complete. Average score: %.2f/100\n", response.Summary.AverageScore)
	}

	return nil
}

// resolveFormat picks the output format from shorthand flags, the --format
// flag, then the config file
func resolveFormat(cfg *config.Config) domain.OutputFormat {
	switch {
	case jsonOutput:
		return domain.OutputFormatJSON
	case htmlOutput:
		return domain.OutputFormatHTML
	case outputFormat != "":
		return domain.OutputFormat(outputFormat)
	case cfg.Output.Format != "":
		return domain.OutputFormat(cfg.Output.Format)
	default:
		return domain.OutputFormatText
	}
}
