package lowering

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// lowerExpr lowers one expression, allocating a fresh type variable for
// every literal and deferring its resolution to unification.
func (c *Context) lowerExpr(e ast.Expr, env map[string]hlir.HLIRType) hlir.Expr {
	switch x := e.(type) {
	case *ast.IntegerLit:
		return &hlir.IntegerLit{Text: x.Text, Ty: c.freshVar(varKindInteger)}

	case *ast.FloatLit:
		return &hlir.FloatLit{Text: x.Text, Ty: c.freshVar(varKindFloat)}

	case *ast.BoolLit:
		return &hlir.BoolLit{Value: x.Value, Ty: hlir.Prim(ast.Bool)}

	// String-shaped literals are not modeled in numeric inference; they
	// get a fixed best-effort element type rather than a fresh variable,
	// since the HLIR has no pointer/array type to give them a real one.
	case *ast.StringLit:
		return &hlir.StringLit{Value: x.Value, Ty: hlir.Prim(ast.Char)}

	case *ast.CStringLit:
		return &hlir.CStringLit{Value: x.Value, Ty: hlir.Prim(ast.Char)}

	case *ast.CharLit:
		return &hlir.CharLit{Value: x.Value, Ty: hlir.Prim(ast.Char)}

	case *ast.Variable:
		ty, ok := env[x.Name]
		if !ok {
			ty = c.freshVar(varKindUnknown)
		}
		return &hlir.Variable{Name: x.Name, Ty: ty}

	case *ast.UnaryPrefix:
		operand := c.lowerExpr(x.X, env)
		ty := operand.Type()
		if x.Op == ast.Not {
			c.constrain(ty, hlir.Prim(ast.Bool))
			ty = hlir.Prim(ast.Bool)
		}
		return &hlir.UnaryPrefix{Op: x.Op, X: operand, Ty: ty}

	case *ast.UnaryPostfix:
		// Pointer-level postfix operators (.&, .*, .?) are accepted
		// syntactically; tracking a distinct pointee type for them would
		// require a Pointer case the HLIR does not have, so the operand's
		// own type passes through unchanged.
		operand := c.lowerExpr(x.X, env)
		return &hlir.UnaryPostfix{Op: x.Op, X: operand, Ty: operand.Type()}

	case *ast.Binary:
		lhs := c.lowerExpr(x.LHS, env)
		rhs := c.lowerExpr(x.RHS, env)
		return &hlir.Binary{Op: x.Op, LHS: lhs, RHS: rhs, Ty: c.constrainBinary(x.Op, lhs.Type(), rhs.Type())}

	case *ast.Call:
		callee := c.lowerExpr(x.Callee, env)
		args := make([]hlir.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = c.lowerExpr(a, env)
		}
		return &hlir.Call{Callee: callee, Args: args, Ty: c.callResultType(x.Callee)}

	case *ast.Index:
		lhs := c.lowerExpr(x.LHS, env)
		rhs := c.lowerExpr(x.RHS, env)
		return &hlir.Index{LHS: lhs, RHS: rhs, Ty: c.freshVar(varKindUnknown)}

	case *ast.Cast:
		operand := c.lowerExpr(x.X, env)
		ty, ok := astTypeToHLIR(x.Type)
		if !ok {
			ty = hlir.Prim(ast.Void)
		}
		return &hlir.Cast{X: operand, Ty: ty}

	default:
		panic(fmt.Sprintf("lowering: unhandled expression %T", e))
	}
}

// constrainBinary emits the operand-agreement constraint shared by every
// binary operator, then either fixes the result at bool (comparisons and
// logical and/or) or ties it to a fresh variable shared with both
// operands (arithmetic, bitwise, and shift operators).
func (c *Context) constrainBinary(op ast.BinaryOp, lhsTy, rhsTy hlir.HLIRType) hlir.HLIRType {
	c.constrain(lhsTy, rhsTy)
	if op.IsComparison() {
		return hlir.Prim(ast.Bool)
	}
	result := c.freshVar(varKindUnknown)
	c.constrain(lhsTy, result)
	c.constrain(rhsTy, result)
	return result
}

// callResultType resolves a call's result type from the callee's
// registered prototype or extern signature. An unresolvable callee
// (anything other than a bare name, or a name with no prototype) gets a
// fresh variable, which unification will either pin down or default.
func (c *Context) callResultType(callee ast.Expr) hlir.HLIRType {
	v, ok := callee.(*ast.Variable)
	if !ok {
		return c.freshVar(varKindUnknown)
	}
	if proto, ok := c.hlirProgram.Prototypes[v.Name]; ok {
		return proto.Return
	}
	if ext, ok := c.externs[v.Name]; ok {
		if ty, ok := astTypeToHLIR(ext.Return); ok {
			return ty
		}
	}
	return c.freshVar(varKindUnknown)
}
