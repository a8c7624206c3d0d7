package parser

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// ASTBuilder builds our internal AST from the tree-sitter CST
type ASTBuilder struct {
	filename string
	source   []byte
}

// NewASTBuilder creates a new AST builder
func NewASTBuilder(filename string, source []byte) *ASTBuilder {
	return &ASTBuilder{
		filename: filename,
		source:   source,
	}
}

// Build builds the AST from a tree-sitter node
func (b *ASTBuilder) Build(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}
	return b.buildNode(tsNode)
}

// buildNode converts a tree-sitter node to our internal AST node
func (b *ASTBuilder) buildNode(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}

	switch tsNode.Type() {
	case "module":
		return b.buildModule(tsNode)
	case "decorated_definition":
		// Unwrap to the definition, keeping decorator expressions attached
		// so traversal still reaches conditions nested inside them
		if def := tsNode.ChildByFieldName("definition"); def != nil {
			node := b.buildNode(def)
			if node != nil {
				for i := 0; i < int(tsNode.NamedChildCount()); i++ {
					if child := tsNode.NamedChild(i); child.Type() == "decorator" {
						node.AddChild(b.buildNode(child))
					}
				}
			}
			return node
		}
		return b.buildGenericNode(tsNode)
	case "function_definition":
		return b.buildFunctionDef(tsNode)
	case "class_definition":
		return b.buildClassDef(tsNode)
	case "if_statement":
		return b.buildTyped(tsNode, NodeIf)
	case "elif_clause":
		return b.buildTyped(tsNode, NodeElifClause)
	case "else_clause":
		return b.buildTyped(tsNode, NodeElseClause)
	case "for_statement":
		return b.buildTyped(tsNode, NodeFor)
	case "while_statement":
		return b.buildTyped(tsNode, NodeWhile)
	case "try_statement":
		return b.buildTyped(tsNode, NodeTry)
	case "except_clause", "except_group_clause":
		return b.buildTyped(tsNode, NodeExcept)
	case "finally_clause":
		return b.buildTyped(tsNode, NodeFinally)
	case "with_statement":
		return b.buildTyped(tsNode, NodeWith)
	case "boolean_operator":
		return b.buildBoolOp(tsNode)
	case "expression_statement":
		return b.buildTyped(tsNode, NodeExpressionStatement)
	case "string", "concatenated_string":
		return b.buildLeaf(tsNode, NodeStringLiteral)
	case "comment":
		return nil
	default:
		return b.buildGenericNode(tsNode)
	}
}

// buildModule builds the root module node. Top-level statements go into
// Body so the module docstring check sees them the same way definition
// bodies are seen.
func (b *ASTBuilder) buildModule(tsNode *sitter.Node) *Node {
	node := NewNode(NodeModule)
	node.Location = b.getLocation(tsNode)
	b.addBlockStatements(node, tsNode)
	return node
}

// buildFunctionDef builds a function definition node. The body block is
// flattened into Body so docstring checks can look at the first statement.
func (b *ASTBuilder) buildFunctionDef(tsNode *sitter.Node) *Node {
	node := NewNode(NodeFunctionDef)
	node.Location = b.getLocation(tsNode)

	if nameNode := tsNode.ChildByFieldName("name"); nameNode != nil {
		node.Name = nameNode.Content(b.source)
	}

	// `async def` keeps the same CST node type with an extra keyword token
	for i := 0; i < int(tsNode.ChildCount()); i++ {
		if tsNode.Child(i).Type() == "async" {
			node.Async = true
			break
		}
	}

	// Parameters may carry default-value expressions
	if params := tsNode.ChildByFieldName("parameters"); params != nil {
		b.addNamedChildren(node, params)
	}

	if body := tsNode.ChildByFieldName("body"); body != nil {
		b.addBlockStatements(node, body)
	}

	return node
}

// buildClassDef builds a class definition node
func (b *ASTBuilder) buildClassDef(tsNode *sitter.Node) *Node {
	node := NewNode(NodeClassDef)
	node.Location = b.getLocation(tsNode)

	if nameNode := tsNode.ChildByFieldName("name"); nameNode != nil {
		node.Name = nameNode.Content(b.source)
	}

	if supers := tsNode.ChildByFieldName("superclasses"); supers != nil {
		b.addNamedChildren(node, supers)
	}

	if body := tsNode.ChildByFieldName("body"); body != nil {
		b.addBlockStatements(node, body)
	}

	return node
}

// buildBoolOp builds a boolean combinator. tree-sitter parses boolean
// chains as left-nested binary operators; same-operator chains are
// flattened into one node so `a and b and c` carries three operands, the
// way Python's own AST represents it.
func (b *ASTBuilder) buildBoolOp(tsNode *sitter.Node) *Node {
	node := NewNode(NodeBoolOp)
	node.Location = b.getLocation(tsNode)

	if opNode := tsNode.ChildByFieldName("operator"); opNode != nil {
		node.Op = opNode.Content(b.source)
	}

	left := b.buildNode(tsNode.ChildByFieldName("left"))
	right := b.buildNode(tsNode.ChildByFieldName("right"))

	if left != nil && left.Type == NodeBoolOp && left.Op == node.Op {
		for _, v := range left.Values {
			node.AddValue(v)
		}
	} else {
		node.AddValue(left)
	}
	node.AddValue(right)

	return node
}

// buildTyped builds a node of a fixed type with all named children attached
func (b *ASTBuilder) buildTyped(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := NewNode(nodeType)
	node.Location = b.getLocation(tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

// buildLeaf builds a node of a fixed type without descending further
func (b *ASTBuilder) buildLeaf(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := NewNode(nodeType)
	node.Location = b.getLocation(tsNode)
	return node
}

// buildGenericNode builds a pass-through node so traversal still reaches
// boolean operators and definitions nested in arbitrary expressions
func (b *ASTBuilder) buildGenericNode(tsNode *sitter.Node) *Node {
	node := NewNode(NodeGeneric)
	node.Location = b.getLocation(tsNode)
	b.addNamedChildren(node, tsNode)
	return node
}

// addNamedChildren builds and attaches every named child of the CST node
func (b *ASTBuilder) addNamedChildren(node *Node, tsNode *sitter.Node) {
	for i := 0; i < int(tsNode.NamedChildCount()); i++ {
		node.AddChild(b.buildNode(tsNode.NamedChild(i)))
	}
}

// addBlockStatements attaches the statements of a block CST node as Body
func (b *ASTBuilder) addBlockStatements(node *Node, block *sitter.Node) {
	for i := 0; i < int(block.NamedChildCount()); i++ {
		node.AddBody(b.buildNode(block.NamedChild(i)))
	}
}

// getLocation extracts location information from a tree-sitter node
func (b *ASTBuilder) getLocation(tsNode *sitter.Node) Location {
	return Location{
		File:      b.filename,
		StartLine: int(tsNode.StartPoint().Row) + 1,
		StartCol:  int(tsNode.StartPoint().Column),
		EndLine:   int(tsNode.EndPoint().Row) + 1,
		EndCol:    int(tsNode.EndPoint().Column),
	}
}
