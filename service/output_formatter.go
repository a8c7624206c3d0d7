package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/constants"
	"gopkg.in/yaml.v3"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Format formats the analysis response according to the specified format
func (f *OutputFormatterImpl) Format(response *domain.AnalyzeResponse, format domain.OutputFormat) (string, error) {
	var sb strings.Builder
	if err := f.Write(response, format, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write writes the formatted output to the writer
func (f *OutputFormatterImpl) Write(response *domain.AnalyzeResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	case domain.OutputFormatHTML:
		return f.writeHTML(response, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// writeYAML writes the response as YAML
func (f *OutputFormatterImpl) writeYAML(response *domain.AnalyzeResponse, writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(response)
}

// writeText writes the full plain text report: header, batch summary,
// per-file sections, then per-file recommendations.
func (f *OutputFormatterImpl) writeText(response *domain.AnalyzeResponse, writer io.Writer) error {
	rule := strings.Repeat("=", 80)
	subRule := strings.Repeat("-", 80)

	fmt.Fprintf(writer, "%s\n", rule)
	fmt.Fprintf(writer, "CODE QUALITY REPORT\n")
	fmt.Fprintf(writer, "%s\n", rule)
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "\n")

	if len(response.Results) > 0 {
		fmt.Fprintf(writer, "Files analyzed: %d\n", len(response.Results))
		fmt.Fprintf(writer, "Average overall score: %.2f/100\n", response.Summary.AverageScore)
		fmt.Fprintf(writer, "\n")
	}

	for i := range response.Results {
		r := &response.Results[i]
		if r.IsError() {
			fmt.Fprintf(writer, "\nFile: %s\n", r.FilePath)
			fmt.Fprintf(writer, "ERROR: %s\n", r.Error)
			continue
		}

		fmt.Fprintf(writer, "%s\n", subRule)
		fmt.Fprintf(writer, "File: %s\n", r.FilePath)
		fmt.Fprintf(writer, "%s\n", subRule)

		fmt.Fprintf(writer, "\nOverall score: %.2f/100\n", r.OverallScore)

		fmt.Fprintf(writer, "\nPEP 8 compliance: %.2f/100\n", r.Style.Score)
		fmt.Fprintf(writer, "  Violations: %d\n", r.Style.ViolationsCount)
		if len(r.Style.Violations) > 0 {
			fmt.Fprintf(writer, "  Issues:\n")
			for _, v := range firstViolations(r.Style.Violations, 5) {
				fmt.Fprintf(writer, "    - Line %d: %s\n", v.Line, v.Message)
			}
		}

		fmt.Fprintf(writer, "\nCyclomatic complexity:\n")
		fmt.Fprintf(writer, "  Average: %.2f\n", r.Complexity.Average)
		fmt.Fprintf(writer, "  Maximum: %d\n", r.Complexity.Max)
		if len(r.Complexity.Functions) > 0 {
			fmt.Fprintf(writer, "  Functions:\n")
			for _, fn := range firstFunctions(r.Complexity.Functions, 5) {
				fmt.Fprintf(writer, "    - %s (line %d): %d\n", fn.Name, fn.Line, fn.Complexity)
			}
		}

		fmt.Fprintf(writer, "\nDocstring coverage: %.2f%%\n", r.Docstrings.OverallCoverage)
		fmt.Fprintf(writer, "  Functions: %d/%d\n", r.Docstrings.FunctionsWithDoc, r.Docstrings.FunctionsTotal)
		fmt.Fprintf(writer, "  Classes: %d/%d\n", r.Docstrings.ClassesWithDoc, r.Docstrings.ClassesTotal)

		fmt.Fprintf(writer, "\nCode duplication: %.2f%%\n", r.Duplication.DuplicationPercentage)
		fmt.Fprintf(writer, "  Duplicate blocks: %d\n", r.Duplication.DuplicateBlocks)

		fmt.Fprintf(writer, "\nNaming quality: %.2f/100\n", r.Naming.Score)
		fmt.Fprintf(writer, "  Functions checked: %d\n", r.Naming.FunctionsChecked)
		fmt.Fprintf(writer, "  Classes checked: %d\n", r.Naming.ClassesChecked)
		if r.Naming.IssuesCount > 0 {
			fmt.Fprintf(writer, "  Naming issues: %d\n", r.Naming.IssuesCount)
		}

		fmt.Fprintf(writer, "\nCode statistics:\n")
		fmt.Fprintf(writer, "  Lines of code: %d\n", r.LinesOfCode)
		fmt.Fprintf(writer, "  Functions: %d\n", r.FunctionsCount)
		fmt.Fprintf(writer, "  Classes: %d\n", r.ClassesCount)
		if r.EmptyLinesRatio > 0 {
			fmt.Fprintf(writer, "  Empty lines ratio: %.2f%%\n", r.EmptyLinesRatio)
		}

		fmt.Fprintf(writer, "\n")
	}

	fmt.Fprintf(writer, "%s\n", rule)
	fmt.Fprintf(writer, "RECOMMENDATIONS\n")
	fmt.Fprintf(writer, "%s\n", rule)

	for i := range response.Results {
		r := &response.Results[i]
		if r.IsError() {
			continue
		}
		recommendations := GenerateRecommendations(r)
		if len(recommendations) > 0 {
			fmt.Fprintf(writer, "\n%s:\n", r.FilePath)
			for _, rec := range recommendations {
				fmt.Fprintf(writer, "  - %s\n", rec)
			}
		}
	}

	return nil
}

// GenerateRecommendations derives actionable suggestions from one file's
// metrics, ordered by impact on the overall score.
func GenerateRecommendations(r *domain.FileMetrics) []string {
	if r.IsError() {
		return nil
	}

	var recommendations []string

	if r.Style != nil && r.Style.Score < constants.StyleRecommendationScore && r.Style.ViolationsCount > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Fix %d PEP 8 violations to improve readability", r.Style.ViolationsCount))
	}

	if r.Complexity != nil {
		if r.Complexity.Average > constants.AvgComplexityRecommendation {
			recommendations = append(recommendations, fmt.Sprintf(
				"Simplify functions with average complexity %.1f (recommended <=%d) by splitting them into smaller functions",
				r.Complexity.Average, constants.AvgComplexityRecommendation))
		}
		if r.Complexity.Max > constants.MaxComplexityRecommendation {
			recommendations = append(recommendations, fmt.Sprintf(
				"Refactor high complexity functions (maximum %d, recommended <=%d)",
				r.Complexity.Max, constants.MaxComplexityRecommendation))
		}
	}

	if r.Docstrings != nil && r.Docstrings.OverallCoverage < constants.CoverageRecommendationPct {
		missing := r.Docstrings.FunctionsTotal - r.Docstrings.FunctionsWithDoc
		missing += r.Docstrings.ClassesTotal - r.Docstrings.ClassesWithDoc
		recommendations = append(recommendations, fmt.Sprintf(
			"Add docstrings to %d code elements (current coverage: %.1f%%, recommended >=%d%%)",
			missing, r.Docstrings.OverallCoverage, constants.CoverageRecommendationPct))
	}

	if r.Duplication != nil && r.Duplication.DuplicationPercentage > constants.DuplicationRecommendationPct {
		recommendations = append(recommendations, fmt.Sprintf(
			"Reduce code duplication (%.1f%%, recommended <=%d%%) by extracting shared logic into functions",
			r.Duplication.DuplicationPercentage, constants.DuplicationRecommendationPct))
	}

	if r.Naming != nil && r.Naming.Score < constants.NamingRecommendationScore && r.Naming.IssuesCount > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Fix naming in %d places (functions: snake_case, classes: PascalCase)", r.Naming.IssuesCount))
	}

	if r.EmptyLinesRatio > constants.EmptyLinesHighPct {
		recommendations = append(recommendations, fmt.Sprintf(
			"Too many empty lines (%.1f%%, 10-15%% is optimal)", r.EmptyLinesRatio))
	} else if r.EmptyLinesRatio < constants.EmptyLinesLowPct && r.LinesOfCode > constants.EmptyLinesMinFileSize {
		recommendations = append(recommendations,
			"Add empty lines to improve readability (10-15% is optimal)")
	}

	return recommendations
}

func firstViolations(violations []domain.StyleViolation, n int) []domain.StyleViolation {
	if len(violations) > n {
		return violations[:n]
	}
	return violations
}

func firstFunctions(functions []domain.FunctionComplexity, n int) []domain.FunctionComplexity {
	if len(functions) > n {
		return functions[:n]
	}
	return functions
}
