package domain

// CheckResult represents the result of a quality gate check
type CheckResult struct {
	Passed      bool             `json:"passed"`
	ExitCode    int              `json:"exit_code"`
	Violations  []CheckViolation `json:"violations"`
	Summary     CheckSummary     `json:"summary"`
	Duration    int64            `json:"duration_ms"`
	GeneratedAt string           `json:"generated_at"`
	Version     string           `json:"version"`
}

// CheckViolation represents a single threshold violation
type CheckViolation struct {
	Rule      string `json:"rule"`     // min-score, no-errors
	Severity  string `json:"severity"` // error, warning
	Message   string `json:"message"`  // Human-readable description
	File      string `json:"file,omitempty"`
	Actual    string `json:"actual"`
	Threshold string `json:"threshold,omitempty"`
}

// CheckSummary provides aggregate statistics for the gate run
type CheckSummary struct {
	FilesAnalyzed   int     `json:"files_analyzed"`
	FilesFailed     int     `json:"files_failed"`
	TotalViolations int     `json:"total_violations"`
	AverageScore    float64 `json:"average_score"`
	LowestScore     float64 `json:"lowest_score"`
}
