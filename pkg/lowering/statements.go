package lowering

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// lowerStmt lowers one statement, mutating env with any name it binds
// so later statements in the same (or a nested) scope see it.
func (c *Context) lowerStmt(s ast.Stmt, env map[string]hlir.HLIRType, returnType hlir.HLIRType) hlir.Stmt {
	switch st := s.(type) {
	case *ast.VariableDeclaration:
		declTy := c.declaredOrFreshType(st.Type)
		value := c.lowerExpr(st.Value, env)
		c.constrain(declTy, value.Type())
		env[st.Name] = declTy
		return &hlir.VariableDeclaration{Name: st.Name, Type: declTy, Value: value}

	case *ast.ExprStmt:
		return &hlir.ExprStmt{X: c.lowerExpr(st.X, env)}

	case *ast.Return:
		if st.Value == nil {
			if !returnType.Equal(hlir.Prim(ast.Void)) {
				panic(fmt.Sprintf("lowering: bare return in a function returning %s, not void", returnType))
			}
			return &hlir.Return{}
		}
		value := c.lowerExpr(st.Value, env)
		c.constrain(value.Type(), returnType)
		return &hlir.Return{Value: value}

	case *ast.If:
		cond := c.lowerExpr(st.Cond, env)
		c.constrain(cond.Type(), hlir.Prim(ast.Bool))
		then := c.lowerStmt(st.Then, env, returnType)
		var elseStmt hlir.Stmt
		if st.Else != nil {
			elseStmt = c.lowerStmt(st.Else, env, returnType)
		}
		return &hlir.If{Cond: cond, Then: then, Else: elseStmt}

	case *ast.While:
		cond := c.lowerExpr(st.Cond, env)
		c.constrain(cond.Type(), hlir.Prim(ast.Bool))
		body := c.lowerStmt(st.Body, env, returnType)
		return &hlir.While{Cond: cond, Body: body}

	case *ast.Block:
		inner := make(map[string]hlir.HLIRType, len(env))
		for name, ty := range env {
			inner[name] = ty
		}
		stmts := make([]hlir.Stmt, 0, len(st.Stmts))
		for _, nested := range st.Stmts {
			stmts = append(stmts, c.lowerStmt(nested, inner, returnType))
		}
		return &hlir.Block{Stmts: stmts}

	case *ast.Break:
		return &hlir.Break{}

	case *ast.Continue:
		return &hlir.Continue{}

	default:
		panic(fmt.Sprintf("lowering: unhandled statement %T", s))
	}
}
