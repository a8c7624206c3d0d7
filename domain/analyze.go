package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// Score thresholds used to classify an overall score in reports
const (
	ScoreThresholdGood = 80
	ScoreThresholdFair = 60
)

// AnalyzeRequest represents a request for quality analysis
type AnalyzeRequest struct {
	// Input files or directories to analyze
	Paths []string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string // Path to save output file (for HTML format)

	// Configuration
	ConfigPath string

	// Analysis options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
}

// AnalyzeSummary aggregates the batch-level statistics. Averages cover only
// files that produced a valid overall score.
type AnalyzeSummary struct {
	FilesAnalyzed int     `json:"files_analyzed" yaml:"files_analyzed"`
	FilesFailed   int     `json:"files_failed" yaml:"files_failed"`
	AverageScore  float64 `json:"average_score" yaml:"average_score"`
	BestFile      string  `json:"best_file,omitempty" yaml:"best_file,omitempty"`
	WorstFile     string  `json:"worst_file,omitempty" yaml:"worst_file,omitempty"`
}

// AnalyzeResponse represents the complete analysis result for a batch.
// Results are ordered by file discovery order.
type AnalyzeResponse struct {
	Results []FileMetrics  `json:"results" yaml:"results"`
	Summary AnalyzeSummary `json:"summary" yaml:"summary"`

	// Metadata
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Version     string `json:"version" yaml:"version"`
}

// AnalyzeService defines the core business logic for quality analysis
type AnalyzeService interface {
	// Analyze runs the full metric suite over every file in the request
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)

	// AnalyzeFile analyzes a single Python file
	AnalyzeFile(ctx context.Context, filePath string, req AnalyzeRequest) (*AnalyzeResponse, error)
}

// FileReader defines the interface for reading and collecting Python files
type FileReader interface {
	// CollectPythonFiles recursively finds all Python files in the given paths
	CollectPythonFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadFile reads the content of a file
	ReadFile(path string) ([]byte, error)

	// IsValidPythonFile checks if a file is a valid Python file
	IsValidPythonFile(path string) bool

	// FileExists checks if a file exists and returns an error if not
	FileExists(path string) (bool, error)
}

// OutputFormatter defines the interface for formatting analysis results
type OutputFormatter interface {
	// Format formats the analysis response according to the specified format
	Format(response *AnalyzeResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *AnalyzeResponse, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*AnalyzeRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *AnalyzeRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *AnalyzeRequest, override *AnalyzeRequest) *AnalyzeRequest
}
