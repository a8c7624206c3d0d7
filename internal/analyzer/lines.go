package analyzer

import (
	"math"
	"strings"
)

// SplitLines splits source into lines the way Python's str.splitlines does:
// a trailing newline does not produce a final empty line, and an empty
// source has zero lines. Only \n and \r\n are treated as line boundaries;
// the rarer Unicode breaks (form feed, U+2028) are not.
func SplitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// MeaningfulLines strips every line and drops blanks and full-line comments,
// preserving order. This is the sequence the duplication detector scans.
func MeaningfulLines(source string) []string {
	var meaningful []string
	for _, line := range SplitLines(source) {
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}
		meaningful = append(meaningful, stripped)
	}
	return meaningful
}

// LinesOfCode counts raw source lines
func LinesOfCode(source string) int {
	return len(SplitLines(source))
}

// EmptyLinesRatio returns the percentage of blank lines, 0 for empty source
func EmptyLinesRatio(source string) float64 {
	lines := SplitLines(source)
	if len(lines) == 0 {
		return 0.0
	}

	emptyCount := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			emptyCount++
		}
	}

	return round2(float64(emptyCount) / float64(len(lines)) * 100)
}

// round2 rounds to two decimal places; every reported score and percentage
// goes through this at assembly time
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
