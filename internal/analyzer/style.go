package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style rule constants from PEP 8
const (
	// DefaultMaxLineLength is the PEP 8 line length limit
	DefaultMaxLineLength = 79

	// DefaultIndentMultiple is the required indentation step in spaces
	DefaultIndentMultiple = 4
)

// Violation kinds reported by the style checker
const (
	ViolationLineTooLong        = "line_too_long"
	ViolationTrailingWhitespace = "trailing_whitespace"
	ViolationIndentation        = "indentation"
)

// StyleViolation is one style rule violation on one line
type StyleViolation struct {
	Line    int
	Kind    string
	Message string
}

// StyleResult holds the style compliance metrics for one file
type StyleResult struct {
	Score           float64
	Violations      []StyleViolation
	ViolationsCount int
}

// StyleChecker scans raw source lines for PEP 8 rule violations
type StyleChecker struct {
	maxLineLength  int
	indentMultiple int
}

// NewStyleChecker creates a style checker with PEP 8 defaults
func NewStyleChecker() *StyleChecker {
	return &StyleChecker{
		maxLineLength:  DefaultMaxLineLength,
		indentMultiple: DefaultIndentMultiple,
	}
}

// NewStyleCheckerWithLimits creates a style checker with explicit limits
func NewStyleCheckerWithLimits(maxLineLength, indentMultiple int) *StyleChecker {
	if maxLineLength <= 0 {
		maxLineLength = DefaultMaxLineLength
	}
	if indentMultiple <= 0 {
		indentMultiple = DefaultIndentMultiple
	}
	return &StyleChecker{
		maxLineLength:  maxLineLength,
		indentMultiple: indentMultiple,
	}
}

// Check runs the three line-level passes over raw source text. Each pass
// emits violations in line order; the passes run one after another, so the
// final list is ordered by rule first, line second.
func (c *StyleChecker) Check(source string) *StyleResult {
	lines := SplitLines(source)
	var violations []StyleViolation

	// Line length in characters, not bytes. Comment-only lines may run
	// long, code may not.
	for i, line := range lines {
		lineNum := i + 1
		length := utf8.RuneCountInString(line)
		if length > c.maxLineLength && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			violations = append(violations, StyleViolation{
				Line:    lineNum,
				Kind:    ViolationLineTooLong,
				Message: fmt.Sprintf("line %d exceeds %d characters (currently %d)", lineNum, c.maxLineLength, length),
			})
		}
	}

	// Trailing whitespace on non-blank lines. Unicode whitespace counts,
	// the way Python's rstrip treats it.
	for i, line := range lines {
		lineNum := i + 1
		if strings.TrimRightFunc(line, unicode.IsSpace) != line && strings.TrimSpace(line) != "" {
			violations = append(violations, StyleViolation{
				Line:    lineNum,
				Kind:    ViolationTrailingWhitespace,
				Message: fmt.Sprintf("line %d has trailing whitespace", lineNum),
			})
		}
	}

	// Indentation must be a multiple of the indent step. Only top-level
	// comment lines are exempt; zero indentation is always valid.
	for i, line := range lines {
		lineNum := i + 1
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		leading := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		if leading > 0 && leading%c.indentMultiple != 0 {
			violations = append(violations, StyleViolation{
				Line:    lineNum,
				Kind:    ViolationIndentation,
				Message: fmt.Sprintf("line %d: bad indentation (must be a multiple of %d spaces)", lineNum, c.indentMultiple),
			})
		}
	}

	return &StyleResult{
		Score:           styleScore(len(violations), len(lines)),
		Violations:      violations,
		ViolationsCount: len(violations),
	}
}

// styleScore normalizes the violation count against file size. An empty
// file scores a clean 100.
func styleScore(violations, totalLines int) float64 {
	if totalLines == 0 {
		return 100
	}
	score := 100 - float64(violations)/float64(totalLines)*100
	if score < 0 {
		score = 0
	}
	return round2(score)
}
