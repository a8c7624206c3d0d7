package analyzer

import (
	"github.com/jimbeezz/pygrade/internal/parser"
)

// CountDefinitions returns the number of function and class definitions in
// the tree, using the same encounter rules as the metric walks
func CountDefinitions(tree *parser.Node) (functions, classes int) {
	tree.WalkBFS(func(n *parser.Node) bool {
		switch {
		case n.IsFunctionDef():
			functions++
		case n.IsClassDef():
			classes++
		}
		return true
	})
	return functions, classes
}
