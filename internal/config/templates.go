package config

import "fmt"

// Strictness selects how demanding the generated quality gate is
type Strictness string

const (
	StrictnessLenient  Strictness = "lenient"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// minScoreFor maps a strictness level to a gate threshold
func minScoreFor(strictness Strictness) float64 {
	switch strictness {
	case StrictnessLenient:
		return 40
	case StrictnessStrict:
		return 75
	default:
		return DefaultMinScore
	}
}

// GetFullConfigTemplate returns a documented YAML config with every option
func GetFullConfigTemplate(strictness Strictness) string {
	return fmt.Sprintf(`# pygrade configuration
# Python code quality grading for student submissions.

style:
  # PEP 8 line length limit. Comment-only lines are exempt.
  max_line_length: 79
  # Required indentation step in spaces.
  indent_multiple: 4

duplication:
  # Comparison window in meaningful (non-blank, non-comment) lines.
  min_block_size: 3

check:
  # Lowest acceptable overall score for 'pygrade check'.
  min_score: %g
  # Treat unreadable or unparseable files as gate failures.
  fail_on_error: true

output:
  # text, json, yaml, or html
  format: text
  show_details: true

analysis:
  include_patterns:
    - "**/*.py"
  exclude_patterns:
    - "__pycache__"
    - ".venv"
    - "venv"
    - ".git"
  recursive: true
  # Honor .gitignore rules inside analyzed directories.
  respect_gitignore: false

performance:
  max_goroutines: 4
  timeout_seconds: 300
`, minScoreFor(strictness))
}

// GetMinimalConfigTemplate returns a short config with essential options
func GetMinimalConfigTemplate() string {
	return `# pygrade configuration
check:
  min_score: 60

output:
  format: text
`
}
