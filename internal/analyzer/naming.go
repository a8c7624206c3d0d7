package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jimbeezz/pygrade/internal/parser"
)

// Issue kinds reported by the naming checker
const (
	NamingIssueFunction = "function_naming"
	NamingIssueClass    = "class_naming"
)

// MaxReportedNamingIssues caps the issue list carried in the record
const MaxReportedNamingIssues = 5

// NamingIssue is one naming convention violation
type NamingIssue struct {
	Kind    string
	Name    string
	Line    int
	Message string
}

// NamingResult holds the naming quality metrics for one file
type NamingResult struct {
	Score            float64
	IssuesCount      int
	Issues           []NamingIssue
	FunctionsChecked int
	ClassesChecked   int
}

// CheckNaming walks the tree checking function names against
// lowercase-with-underscores and class names against a capitalized first
// letter. Only camel-case function names with an internal capital are
// flagged; a separator anywhere, or no uppercase at all, passes.
func CheckNaming(tree *parser.Node) *NamingResult {
	result := &NamingResult{}
	var issues []NamingIssue

	tree.WalkBFS(func(n *parser.Node) bool {
		if n.IsFunctionDef() {
			result.FunctionsChecked++
			if isCamelCaseFunction(n.Name) {
				issues = append(issues, NamingIssue{
					Kind:    NamingIssueFunction,
					Name:    n.Name,
					Line:    n.Location.StartLine,
					Message: fmt.Sprintf("function %q does not follow snake_case", n.Name),
				})
			}
		}
		return true
	})

	tree.WalkBFS(func(n *parser.Node) bool {
		if n.IsClassDef() {
			result.ClassesChecked++
			if !startsUppercase(n.Name) {
				issues = append(issues, NamingIssue{
					Kind:    NamingIssueClass,
					Name:    n.Name,
					Line:    n.Location.StartLine,
					Message: fmt.Sprintf("class %q must start with an uppercase letter", n.Name),
				})
			}
		}
		return true
	})

	result.IssuesCount = len(issues)
	if len(issues) > MaxReportedNamingIssues {
		issues = issues[:MaxReportedNamingIssues]
	}
	result.Issues = issues
	result.Score = namingScore(result.IssuesCount, result.FunctionsChecked+result.ClassesChecked)

	return result
}

// isCamelCaseFunction reports whether a function name violates snake_case:
// not all-lowercase, no separator, and an uppercase letter past position 0
func isCamelCaseFunction(name string) bool {
	if name == strings.ToLower(name) || strings.Contains(name, "_") {
		return false
	}
	runes := []rune(name)
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// startsUppercase reports whether the first rune is an uppercase letter
func startsUppercase(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}

// namingScore normalizes the issue count against the number of checked
// definitions, defaulting to 100 when there is nothing to check
func namingScore(issues, totalChecked int) float64 {
	if totalChecked == 0 {
		return 100
	}
	score := 100 - float64(issues)/float64(totalChecked)*100
	if score < 0 {
		score = 0
	}
	return round2(score)
}
