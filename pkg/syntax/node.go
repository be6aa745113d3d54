package syntax

import (
	"fmt"
	"strings"

	"github.com/codetidy/codetidy/pkg/token"
)

// NodeKind identifies the syntactic category of a Node.
type NodeKind int

// Node kinds produced by the parser.
const (
	KindFile NodeKind = iota
	KindClassDecl
	KindInterfaceDecl
	KindFuncDecl
	KindParameter
	KindFieldDecl
	KindVarDecl
	KindBlock
	KindConditional
	KindLoop
	KindReturn
	KindAssign
	KindCall
	KindUnary
	KindBinary
	KindIdentifier
	KindLiteral
	KindComment
)

// kindNames maps node kinds to their string representations.
var kindNames = map[NodeKind]string{
	KindFile:          "File",
	KindClassDecl:     "ClassDecl",
	KindInterfaceDecl: "InterfaceDecl",
	KindFuncDecl:      "FuncDecl",
	KindParameter:     "Parameter",
	KindFieldDecl:     "FieldDecl",
	KindVarDecl:       "VarDecl",
	KindBlock:         "Block",
	KindConditional:   "Conditional",
	KindLoop:          "Loop",
	KindReturn:        "Return",
	KindAssign:        "Assign",
	KindCall:          "Call",
	KindUnary:         "Unary",
	KindBinary:        "Binary",
	KindIdentifier:    "Identifier",
	KindLiteral:       "Literal",
	KindComment:       "Comment",
}

// String returns a human-readable representation of the node kind.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// Node is a syntax element in the generic model. Children are owned
// exclusively by their parent; the tree has no back-references and no
// shared nodes. Ancestor lookups are provided by the lint walk, never
// stored here.
type Node struct {
	Kind     NodeKind
	Span     token.Span
	Children []*Node

	// Kind-specific payload. Only the fields relevant to Kind are set.
	Name       string // declarations, identifiers, calls
	TypeName   string // declared type for fields, vars, params, func returns
	Visibility string // "public", "private", "protected", or "" if unqualified
	Operator   string // unary/binary/assign operator text
	Text       string // comment body, literal source text
	Value      string // literal value ("true", "42", ...)
	Static     bool   // static declarations
}

// NewNode creates a node of the given kind with a span.
func NewNode(kind NodeKind, span token.Span) *Node {
	return &Node{Kind: kind, Span: span}
}

// Append adds children to the node, skipping nils.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
}

// IsScope returns true if the node introduces a lexical scope.
func (n *Node) IsScope() bool {
	switch n.Kind {
	case KindFile, KindClassDecl, KindInterfaceDecl, KindFuncDecl, KindBlock:
		return true
	default:
		return false
	}
}

// IsDeclaration returns true if the node declares a named symbol.
func (n *Node) IsDeclaration() bool {
	switch n.Kind {
	case KindClassDecl, KindInterfaceDecl, KindFuncDecl, KindParameter,
		KindFieldDecl, KindVarDecl:
		return true
	default:
		return false
	}
}

// IsBoolean reports whether a declaration is boolean-typed, either by its
// declared type or by a boolean literal initializer.
func (n *Node) IsBoolean() bool {
	switch strings.ToLower(n.TypeName) {
	case "bool", "boolean":
		return true
	}
	for _, c := range n.Children {
		if c.Kind == KindLiteral && (c.Value == "true" || c.Value == "false") {
			return true
		}
	}
	return false
}

// LineCount returns the number of source lines the node spans.
func (n *Node) LineCount() int {
	return n.Span.Lines()
}

// Body returns the node's block child, if any. Useful for FuncDecl,
// Conditional, and Loop nodes.
func (n *Node) Body() *Node {
	for _, c := range n.Children {
		if c.Kind == KindBlock {
			return c
		}
	}
	return nil
}

// Parameters returns the Parameter children of a FuncDecl.
func (n *Node) Parameters() []*Node {
	var params []*Node
	for _, c := range n.Children {
		if c.Kind == KindParameter {
			params = append(params, c)
		}
	}
	return params
}

// Condition returns the guard expression of a Conditional or Loop node.
// The guard is the first non-block child.
func (n *Node) Condition() *Node {
	for _, c := range n.Children {
		if c.Kind != KindBlock {
			return c
		}
	}
	return nil
}
