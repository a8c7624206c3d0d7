package domain

import "encoding/json"

// ViolationKind identifies the style rule a violation belongs to
type ViolationKind string

const (
	ViolationLineTooLong        ViolationKind = "line_too_long"
	ViolationTrailingWhitespace ViolationKind = "trailing_whitespace"
	ViolationIndentation        ViolationKind = "indentation"
)

// NamingIssueKind identifies the naming convention an issue belongs to
type NamingIssueKind string

const (
	NamingIssueFunction NamingIssueKind = "function_naming"
	NamingIssueClass    NamingIssueKind = "class_naming"
)

// StyleViolation represents a single style rule violation on one line
type StyleViolation struct {
	Line    int           `json:"line" yaml:"line"`
	Kind    ViolationKind `json:"type" yaml:"type"`
	Message string        `json:"message" yaml:"message"`
}

// StyleMetrics holds the PEP 8 compliance result for one file
type StyleMetrics struct {
	Score           float64          `json:"score" yaml:"score"`
	Violations      []StyleViolation `json:"violations" yaml:"violations"`
	ViolationsCount int              `json:"violations_count" yaml:"violations_count"`
}

// FunctionComplexity is the cyclomatic complexity of a single function,
// listed in tree encounter order
type FunctionComplexity struct {
	Name       string `json:"name" yaml:"name"`
	Complexity int    `json:"complexity" yaml:"complexity"`
	Line       int    `json:"line" yaml:"line"`
}

// ComplexityMetrics aggregates per-function complexity for one file
type ComplexityMetrics struct {
	Average   float64              `json:"average" yaml:"average"`
	Max       int                  `json:"max" yaml:"max"`
	Functions []FunctionComplexity `json:"functions" yaml:"functions"`
}

// DocstringMetrics holds docstring coverage counts and percentages.
//
// Per-category coverage defaults to 100 when the category is empty, while
// the overall coverage defaults to 0 when there is nothing to document at
// all.
type DocstringMetrics struct {
	FunctionsCoverage float64 `json:"functions_coverage" yaml:"functions_coverage"`
	ClassesCoverage   float64 `json:"classes_coverage" yaml:"classes_coverage"`
	OverallCoverage   float64 `json:"overall_coverage" yaml:"overall_coverage"`
	FunctionsWithDoc  int     `json:"functions_with_doc" yaml:"functions_with_doc"`
	FunctionsTotal    int     `json:"functions_total" yaml:"functions_total"`
	ClassesWithDoc    int     `json:"classes_with_doc" yaml:"classes_with_doc"`
	ClassesTotal      int     `json:"classes_total" yaml:"classes_total"`
}

// DuplicateBlock is one pair of matching line windows. Occurrence positions
// are 1-indexed into the meaningful-line sequence (blank lines and comments
// removed), not raw file lines.
type DuplicateBlock struct {
	Sequence         string `json:"sequence" yaml:"sequence"`
	Length           int    `json:"length" yaml:"length"`
	FirstOccurrence  int    `json:"first_occurrence" yaml:"first_occurrence"`
	SecondOccurrence int    `json:"second_occurrence" yaml:"second_occurrence"`
}

// DuplicationMetrics holds the duplicated-block result for one file
type DuplicationMetrics struct {
	DuplicateBlocks       int              `json:"duplicate_blocks" yaml:"duplicate_blocks"`
	DuplicationPercentage float64          `json:"duplication_percentage" yaml:"duplication_percentage"`
	Duplicates            []DuplicateBlock `json:"duplicates" yaml:"duplicates"`
}

// NamingIssue is one naming convention violation
type NamingIssue struct {
	Kind    NamingIssueKind `json:"type" yaml:"type"`
	Name    string          `json:"name" yaml:"name"`
	Line    int             `json:"line" yaml:"line"`
	Message string          `json:"issue" yaml:"issue"`
}

// NamingMetrics holds the naming convention result for one file
type NamingMetrics struct {
	Score            float64       `json:"score" yaml:"score"`
	IssuesCount      int           `json:"issues_count" yaml:"issues_count"`
	Issues           []NamingIssue `json:"issues" yaml:"issues"`
	FunctionsChecked int           `json:"functions_checked" yaml:"functions_checked"`
	ClassesChecked   int           `json:"classes_checked" yaml:"classes_checked"`
}

// FileMetrics is the complete analysis record for one file. When Error is
// non-empty only FilePath and Error are meaningful; every metric pointer is
// nil and renderers must skip the metric sections.
type FileMetrics struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`

	Style       *StyleMetrics       `json:"pep8,omitempty" yaml:"pep8,omitempty"`
	Complexity  *ComplexityMetrics  `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Docstrings  *DocstringMetrics   `json:"docstring_coverage,omitempty" yaml:"docstring_coverage,omitempty"`
	Duplication *DuplicationMetrics `json:"code_duplication,omitempty" yaml:"code_duplication,omitempty"`
	Naming      *NamingMetrics      `json:"naming_quality,omitempty" yaml:"naming_quality,omitempty"`

	FunctionsCount  int     `json:"functions_count" yaml:"functions_count"`
	ClassesCount    int     `json:"classes_count" yaml:"classes_count"`
	LinesOfCode     int     `json:"lines_of_code" yaml:"lines_of_code"`
	EmptyLinesRatio float64 `json:"empty_lines_ratio" yaml:"empty_lines_ratio"`

	OverallScore float64 `json:"overall_score" yaml:"overall_score"`
}

// IsError reports whether this record is an error record rather than a
// successful analysis
func (m *FileMetrics) IsError() bool {
	return m.Error != ""
}

// errorRecord is the reduced wire shape for a failed file: no zero-valued
// counters that could be mistaken for real metrics
type errorRecord struct {
	FilePath string `json:"file_path" yaml:"file_path"`
	Error    string `json:"error" yaml:"error"`
}

// MarshalJSON serializes error records as {file_path, error} only
func (m FileMetrics) MarshalJSON() ([]byte, error) {
	if m.Error != "" {
		return json.Marshal(errorRecord{FilePath: m.FilePath, Error: m.Error})
	}
	type plain FileMetrics
	return json.Marshal(plain(m))
}

// MarshalYAML keeps the YAML error shape in step with the JSON one
func (m FileMetrics) MarshalYAML() (interface{}, error) {
	if m.Error != "" {
		return errorRecord{FilePath: m.FilePath, Error: m.Error}, nil
	}
	type plain FileMetrics
	return plain(m), nil
}
