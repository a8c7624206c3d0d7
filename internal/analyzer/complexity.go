package analyzer

import (
	"github.com/jimbeezz/pygrade/internal/parser"
)

// FunctionComplexity is the cyclomatic complexity of one function
type FunctionComplexity struct {
	Name       string
	Complexity int
	Line       int
}

// ComplexityResult aggregates per-function complexity for one file
type ComplexityResult struct {
	Average   float64
	Max       int
	Functions []FunctionComplexity
}

// MeasureComplexity computes cyclomatic complexity for every function
// definition in the tree, in encounter order.
//
// A nested def is reported as its own entry and its branch points also
// count toward the enclosing function: the per-function walk does not stop
// at nested definition boundaries.
func MeasureComplexity(tree *parser.Node) *ComplexityResult {
	var functions []FunctionComplexity

	tree.WalkBFS(func(n *parser.Node) bool {
		if n.IsFunctionDef() {
			functions = append(functions, FunctionComplexity{
				Name:       n.Name,
				Complexity: functionComplexity(n),
				Line:       n.Location.StartLine,
			})
		}
		return true
	})

	if len(functions) == 0 {
		return &ComplexityResult{Average: 0, Max: 0, Functions: nil}
	}

	total := 0
	max := 0
	for _, fc := range functions {
		total += fc.Complexity
		if fc.Complexity > max {
			max = fc.Complexity
		}
	}

	return &ComplexityResult{
		Average:   round2(float64(total) / float64(len(functions))),
		Max:       max,
		Functions: functions,
	}
}

// functionComplexity computes the complexity of a single function: base 1,
// +1 per branch point (if, elif, loop, exception handler), +(N-1) per
// boolean combinator with N operands.
func functionComplexity(fn *parser.Node) int {
	complexity := 1

	fn.Walk(func(n *parser.Node) bool {
		switch n.Type {
		case parser.NodeIf, parser.NodeElifClause, parser.NodeWhile, parser.NodeFor, parser.NodeExcept:
			complexity++
		case parser.NodeBoolOp:
			if len(n.Values) > 1 {
				complexity += len(n.Values) - 1
			}
		}
		return true
	})

	return complexity
}
