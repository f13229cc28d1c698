// Package ast defines the arena-allocated abstract syntax tree produced
// by pkg/parser: top-level items, statements, expressions, and types.
//
// Every node is a small tagged struct implementing the Node interface
// (and one of TopLevel/Statement/Expression/Type) rather than a
// polymorphic visitor hierarchy — exhaustive type switches over the
// concrete node types are the expected way to walk the tree.
package ast

import "github.com/zoid-lang/zoidc/internal/location"

// Node is implemented by every AST node; it carries the node's source
// location for diagnostics.
type Node interface {
	Location() location.Location
}

// baseNode is embedded by every concrete node to provide its Location
// and a settable position without repeating the field everywhere.
type baseNode struct {
	Loc location.Location
}

func (b *baseNode) Location() location.Location { return b.Loc }

// WithLoc sets the node's location during parsing. It returns nothing.
func (b *baseNode) WithLoc(loc location.Location) {
	b.Loc = loc
}

// Program is an ordered sequence of top-level items — the parser's
// output for one translation unit.
type Program struct {
	Items []TopLevel
}

// TopLevel is any item that can appear directly in a Program.
type TopLevel interface {
	Node
	isTopLevel()
}

// Import is `import "path";`.
type Import struct {
	baseNode
	Path string
}

func (*Import) isTopLevel() {}

// ImportC is `importc "path";`.
type ImportC struct {
	baseNode
	Path string
}

func (*ImportC) isTopLevel() {}

// VariableDeclarationTop is a global `let name (: type)? = expr;`.
type VariableDeclarationTop struct {
	baseNode
	Name  string
	Value Expr
	Type  Type // nil if omitted
}

func (*VariableDeclarationTop) isTopLevel() {}

// ExternFunction is `extern "abi" fn name(params): ret;`.
type ExternFunction struct {
	baseNode
	Name       string
	ABI        string
	ParamTypes []Type
	ParamNames []string // "" where the extern arg was a bare type
	Return     Type
	Variadic   bool
}

func (*ExternFunction) isTopLevel() {}

// Param is one `name: type` parameter of a Function.
type Param struct {
	Name string
	Type Type
}

// Function is `fn name(params): ret { body }`.
type Function struct {
	baseNode
	Name     string
	Params   []Param
	Return   Type
	Body     []Stmt
	Variadic bool
}

func (*Function) isTopLevel() {}
