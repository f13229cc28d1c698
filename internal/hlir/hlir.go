// Package hlir is the typed mirror of package ast that pkg/lowering
// produces: every expression, literal, and variable carries a HLIRType,
// which is either a resolved primitive or an as-yet-unresolved type
// variable.
//
// HLIRType intentionally only covers the primitive set plus Var — it
// has no Pointer/Function/Const/Volatile case. Casts and pointer
// operators that involve a compound type are accepted syntactically but
// their HLIR type is a best-effort primitive rather than a fully modeled
// compound type; see DESIGN.md.
package hlir

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/ast"
)

// HLIRType is a resolved primitive or an unresolved type variable.
type HLIRType struct {
	isVar bool
	varID int
	prim  ast.Primitive
}

// Prim wraps a concrete primitive type.
func Prim(p ast.Primitive) HLIRType {
	return HLIRType{prim: p}
}

// Var returns a fresh, as-yet-unresolved type variable with the given id.
func Var(id int) HLIRType {
	return HLIRType{isVar: true, varID: id}
}

// IsVar reports whether t is still an unresolved type variable.
func (t HLIRType) IsVar() bool { return t.isVar }

// VarID returns the variable id; only meaningful when IsVar is true.
func (t HLIRType) VarID() int { return t.varID }

// Primitive returns the resolved primitive; only meaningful when IsVar
// is false.
func (t HLIRType) Primitive() ast.Primitive { return t.prim }

func (t HLIRType) String() string {
	if t.isVar {
		return fmt.Sprintf("Var(%d)", t.varID)
	}
	return t.prim.String()
}

// Equal reports whether t and other are the same type: the same
// primitive, or the same variable id.
func (t HLIRType) Equal(other HLIRType) bool {
	if t.isVar != other.isVar {
		return false
	}
	if t.isVar {
		return t.varID == other.varID
	}
	return t.prim == other.prim
}

// Prototype is a function's externally visible signature.
type Prototype struct {
	Params []HLIRType
	Return HLIRType
}

// Program is the fully lowered translation unit: a read-only value for
// an external backend to consume once the solver reaches Done.
type Program struct {
	Globals    map[string]HLIRType
	Prototypes map[string]Prototype
	Functions  []*Function
	Externs    []*ExternFunction
	Imports    []string
	ImportCs   []string
}

// NewProgram returns an empty Program ready to be filled in by lowering.
func NewProgram() *Program {
	return &Program{
		Globals:    make(map[string]HLIRType),
		Prototypes: make(map[string]Prototype),
	}
}

// ExternFunction mirrors ast.ExternFunction; its types are carried
// through from the AST unlowered, since externs have no body to infer
// types over.
type ExternFunction struct {
	Name       string
	ABI        string
	ParamTypes []ast.Type
	Return     ast.Type
	Variadic   bool
}

// Param is one lowered function parameter.
type Param struct {
	Name string
	Type HLIRType
}

// Function is a fully lowered function: every statement and expression
// inside Body carries a resolved HLIRType once the solver completes.
type Function struct {
	Name   string
	Params []Param
	Return HLIRType
	Body   []Stmt
}

// Stmt is any lowered statement node.
type Stmt interface {
	isStmt()
}

// VariableDeclaration is a lowered `let`.
type VariableDeclaration struct {
	Name  string
	Type  HLIRType
	Value Expr
}

func (*VariableDeclaration) isStmt() {}

// ExprStmt wraps a lowered expression statement.
type ExprStmt struct {
	X Expr
}

func (*ExprStmt) isStmt() {}

// Return is a lowered `return`.
type Return struct {
	Value Expr // nil for bare `return;`
}

func (*Return) isStmt() {}

// If is a lowered conditional.
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*If) isStmt() {}

// While is a lowered loop.
type While struct {
	Cond Expr
	Body Stmt
}

func (*While) isStmt() {}

// Block is a lowered `{ ... }`.
type Block struct {
	Stmts []Stmt
}

func (*Block) isStmt() {}

// Break is a lowered `break;`.
type Break struct{}

func (*Break) isStmt() {}

// Continue is a lowered `continue;`.
type Continue struct{}

func (*Continue) isStmt() {}

// Expr is any lowered expression node; every variant carries its
// resolved (or, mid-solve, still-variable) HLIRType.
type Expr interface {
	Type() HLIRType
}

// Variable is a lowered identifier reference.
type Variable struct {
	Name string
	Ty   HLIRType
}

func (e *Variable) Type() HLIRType { return e.Ty }

// IntegerLit is a lowered integer literal.
type IntegerLit struct {
	Text string
	Ty   HLIRType
}

func (e *IntegerLit) Type() HLIRType { return e.Ty }

// FloatLit is a lowered float literal.
type FloatLit struct {
	Text string
	Ty   HLIRType
}

func (e *FloatLit) Type() HLIRType { return e.Ty }

// BoolLit is a lowered boolean literal; always type Bool.
type BoolLit struct {
	Value bool
	Ty    HLIRType
}

func (e *BoolLit) Type() HLIRType { return e.Ty }

// StringLit is a lowered string literal.
type StringLit struct {
	Value string
	Ty    HLIRType
}

func (e *StringLit) Type() HLIRType { return e.Ty }

// CStringLit is a lowered C-string literal.
type CStringLit struct {
	Value string
	Ty    HLIRType
}

func (e *CStringLit) Type() HLIRType { return e.Ty }

// CharLit is a lowered char literal.
type CharLit struct {
	Value string
	Ty    HLIRType
}

func (e *CharLit) Type() HLIRType { return e.Ty }

// UnaryPrefix is a lowered prefix-operator expression.
type UnaryPrefix struct {
	Op ast.PrefixOp
	X  Expr
	Ty HLIRType
}

func (e *UnaryPrefix) Type() HLIRType { return e.Ty }

// UnaryPostfix is a lowered postfix-operator expression.
type UnaryPostfix struct {
	Op ast.PostfixOp
	X  Expr
	Ty HLIRType
}

func (e *UnaryPostfix) Type() HLIRType { return e.Ty }

// Binary is a lowered binary-operator expression.
type Binary struct {
	Op  ast.BinaryOp
	LHS Expr
	RHS Expr
	Ty  HLIRType
}

func (e *Binary) Type() HLIRType { return e.Ty }

// Call is a lowered function call.
type Call struct {
	Callee Expr
	Args   []Expr
	Ty     HLIRType
}

func (e *Call) Type() HLIRType { return e.Ty }

// Index is a lowered index expression.
type Index struct {
	LHS Expr
	RHS Expr
	Ty  HLIRType
}

func (e *Index) Type() HLIRType { return e.Ty }

// Cast is a lowered explicit cast.
type Cast struct {
	X  Expr
	Ty HLIRType
}

func (e *Cast) Type() HLIRType { return e.Ty }
