package lowering

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/hlir"
)

// propagate is phase 3: every type field in the HLIR program is
// rewritten in place to its fully resolved type.
func (c *Context) propagate() *hlir.Program {
	for name, ty := range c.hlirProgram.Globals {
		c.hlirProgram.Globals[name] = c.resolve(ty)
	}
	for name, proto := range c.hlirProgram.Prototypes {
		for i, p := range proto.Params {
			proto.Params[i] = c.resolve(p)
		}
		proto.Return = c.resolve(proto.Return)
		c.hlirProgram.Prototypes[name] = proto
	}
	for _, fn := range c.hlirProgram.Functions {
		for i, p := range fn.Params {
			fn.Params[i].Type = c.resolve(p.Type)
		}
		fn.Return = c.resolve(fn.Return)
		for i, s := range fn.Body {
			fn.Body[i] = c.propagateStmt(s)
		}
	}
	return c.hlirProgram
}

func (c *Context) propagateStmt(s hlir.Stmt) hlir.Stmt {
	switch st := s.(type) {
	case *hlir.VariableDeclaration:
		st.Type = c.resolve(st.Type)
		st.Value = c.propagateExpr(st.Value)
		return st

	case *hlir.ExprStmt:
		st.X = c.propagateExpr(st.X)
		return st

	case *hlir.Return:
		if st.Value != nil {
			st.Value = c.propagateExpr(st.Value)
		}
		return st

	case *hlir.If:
		st.Cond = c.propagateExpr(st.Cond)
		st.Then = c.propagateStmt(st.Then)
		if st.Else != nil {
			st.Else = c.propagateStmt(st.Else)
		}
		return st

	case *hlir.While:
		st.Cond = c.propagateExpr(st.Cond)
		st.Body = c.propagateStmt(st.Body)
		return st

	case *hlir.Block:
		for i, inner := range st.Stmts {
			st.Stmts[i] = c.propagateStmt(inner)
		}
		return st

	case *hlir.Break:
		return st

	case *hlir.Continue:
		return st

	default:
		panic(fmt.Sprintf("lowering: unhandled HLIR statement %T", s))
	}
}

func (c *Context) propagateExpr(e hlir.Expr) hlir.Expr {
	switch x := e.(type) {
	case *hlir.Variable:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.IntegerLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.FloatLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.BoolLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.StringLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.CStringLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.CharLit:
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.UnaryPrefix:
		x.X = c.propagateExpr(x.X)
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.UnaryPostfix:
		x.X = c.propagateExpr(x.X)
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.Binary:
		x.LHS = c.propagateExpr(x.LHS)
		x.RHS = c.propagateExpr(x.RHS)
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.Call:
		x.Callee = c.propagateExpr(x.Callee)
		for i, a := range x.Args {
			x.Args[i] = c.propagateExpr(a)
		}
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.Index:
		x.LHS = c.propagateExpr(x.LHS)
		x.RHS = c.propagateExpr(x.RHS)
		x.Ty = c.resolve(x.Ty)
		return x
	case *hlir.Cast:
		x.X = c.propagateExpr(x.X)
		return x
	default:
		panic(fmt.Sprintf("lowering: unhandled HLIR expression %T", e))
	}
}
