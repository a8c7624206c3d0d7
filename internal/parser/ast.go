package parser

import "fmt"

// NodeType represents the type of AST node
type NodeType string

// Python AST node types. Every construct the analyzers care about has its
// own type; everything else becomes NodeGeneric and is still traversed.
const (
	// Program structure
	NodeModule NodeType = "Module"

	// Definitions
	NodeFunctionDef NodeType = "FunctionDef"
	NodeClassDef    NodeType = "ClassDef"

	// Control flow
	NodeIf         NodeType = "If"
	NodeElifClause NodeType = "ElifClause"
	NodeElseClause NodeType = "ElseClause"
	NodeFor        NodeType = "For"
	NodeWhile      NodeType = "While"
	NodeTry        NodeType = "Try"
	NodeExcept     NodeType = "ExceptHandler"
	NodeFinally    NodeType = "FinallyClause"
	NodeWith       NodeType = "With"

	// Expressions
	NodeBoolOp              NodeType = "BoolOp"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeStringLiteral       NodeType = "StringLiteral"

	// Anything else
	NodeGeneric NodeType = "Generic"
)

// Boolean operator names as they appear in source
const (
	BoolOpAnd = "and"
	BoolOpOr  = "or"
)

// Location represents the position of a node in the source code
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// String returns a string representation of the location
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.StartLine, l.StartCol)
}

// Node represents a Python AST node
type Node struct {
	Type     NodeType
	Location Location
	Parent   *Node

	// Name of the function or class for definition nodes
	Name string

	// Async marks `async def` definitions; async defs are excluded from
	// function-like metrics
	Async bool

	// Children holds generic child nodes in source order
	Children []*Node

	// Body holds the statement list of a definition's block
	Body []*Node

	// Op and Values describe a boolean combinator; chained operators of the
	// same kind are flattened so `a and b and c` has three values
	Op     string
	Values []*Node
}

// NewNode creates a new AST node
func NewNode(nodeType NodeType) *Node {
	return &Node{Type: nodeType}
}

// AddChild adds a generic child node
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AddBody adds a statement to the definition body
func (n *Node) AddBody(stmt *Node) {
	if stmt == nil {
		return
	}
	stmt.Parent = n
	n.Body = append(n.Body, stmt)
}

// AddValue adds an operand to a boolean combinator
func (n *Node) AddValue(value *Node) {
	if value == nil {
		return
	}
	value.Parent = n
	n.Values = append(n.Values, value)
}

// children returns all direct child nodes in source order
func (n *Node) children() []*Node {
	out := make([]*Node, 0, len(n.Children)+len(n.Body)+len(n.Values))
	out = append(out, n.Children...)
	out = append(out, n.Body...)
	out = append(out, n.Values...)
	return out
}

// Walk traverses the AST depth-first and calls the visitor for each node.
// If the visitor returns false, traversal of that branch is stopped.
func (n *Node) Walk(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	if !visitor(n) {
		return
	}
	for _, child := range n.children() {
		child.Walk(visitor)
	}
}

// WalkBFS traverses the AST breadth-first, the order Python's ast.walk
// visits nodes. Definition collection depends on this order: a nested
// function is encountered after every definition at its parent's depth.
func (n *Node) WalkBFS(visitor func(*Node) bool) {
	if n == nil {
		return
	}
	queue := []*Node{n}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if !visitor(current) {
			continue
		}
		queue = append(queue, current.children()...)
	}
}

// String returns a string representation of the node
func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s) at %s", n.Type, n.Name, n.Location)
	}
	return fmt.Sprintf("%s at %s", n.Type, n.Location)
}

// IsFunctionDef reports whether the node is a function-like definition that
// participates in metrics
func (n *Node) IsFunctionDef() bool {
	return n.Type == NodeFunctionDef && !n.Async
}

// IsClassDef reports whether the node is a class definition
func (n *Node) IsClassDef() bool {
	return n.Type == NodeClassDef
}

// HasDocstring reports whether a definition's first body statement is a
// standalone string literal expression
func (n *Node) HasDocstring() bool {
	if len(n.Body) == 0 {
		return false
	}
	first := n.Body[0]
	if first.Type != NodeExpressionStatement || len(first.Children) == 0 {
		return false
	}
	return first.Children[0].Type == NodeStringLiteral
}
