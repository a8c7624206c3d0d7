package analyzer

import (
	"github.com/jimbeezz/pygrade/internal/parser"
)

// DocstringResult holds docstring coverage for one file
type DocstringResult struct {
	FunctionsCoverage float64
	ClassesCoverage   float64
	OverallCoverage   float64
	FunctionsWithDoc  int
	FunctionsTotal    int
	ClassesWithDoc    int
	ClassesTotal      int
}

// AnalyzeDocstrings walks the tree counting functions and classes and
// whether each carries a docstring as its first body statement.
//
// Per-category coverage defaults to 100 when the category has no members;
// overall coverage defaults to 0 when there is nothing documentable at all.
// The asymmetry is deliberate and must not be unified.
func AnalyzeDocstrings(tree *parser.Node) *DocstringResult {
	result := &DocstringResult{}

	tree.WalkBFS(func(n *parser.Node) bool {
		switch {
		case n.IsFunctionDef():
			result.FunctionsTotal++
			if n.HasDocstring() {
				result.FunctionsWithDoc++
			}
		case n.IsClassDef():
			result.ClassesTotal++
			if n.HasDocstring() {
				result.ClassesWithDoc++
			}
		}
		return true
	})

	result.FunctionsCoverage = coverage(result.FunctionsWithDoc, result.FunctionsTotal, 100.0)
	result.ClassesCoverage = coverage(result.ClassesWithDoc, result.ClassesTotal, 100.0)

	totalItems := result.FunctionsTotal + result.ClassesTotal
	result.OverallCoverage = coverage(result.FunctionsWithDoc+result.ClassesWithDoc, totalItems, 0.0)

	return result
}

// coverage computes documented/total as a percentage, falling back to the
// given default when total is zero
func coverage(documented, total int, zeroDefault float64) float64 {
	if total == 0 {
		return zeroDefault
	}
	return round2(float64(documented) / float64(total) * 100)
}
