package lowering

import (
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// collect is phase 1. It runs in two passes over the top-level items:
// first every prototype (user function and extern) and every global is
// registered, then every function body is lowered against the complete
// set of prototypes — so forward references and mutual recursion between
// functions resolve correctly.
func (c *Context) collect() {
	c.hlirProgram = hlir.NewProgram()
	c.globalEnv = make(map[string]hlir.HLIRType)
	c.externs = make(map[string]*ast.ExternFunction)

	var functions []*ast.Function

	for _, item := range c.program.Items {
		switch t := item.(type) {
		case *ast.Import:
			c.hlirProgram.Imports = append(c.hlirProgram.Imports, t.Path)
		case *ast.ImportC:
			c.hlirProgram.ImportCs = append(c.hlirProgram.ImportCs, t.Path)
		case *ast.ExternFunction:
			c.collectExtern(t)
		case *ast.VariableDeclarationTop:
			c.collectGlobal(t)
		case *ast.Function:
			c.registerPrototype(t)
			functions = append(functions, t)
		}
	}

	for _, fn := range functions {
		c.lowerFunctionBody(fn)
	}
}

// collectExtern carries an extern declaration's types through
// unlowered: an extern has no body to infer over, so there is nothing
// for the solver to do with it.
func (c *Context) collectExtern(t *ast.ExternFunction) {
	c.hlirProgram.Externs = append(c.hlirProgram.Externs, &hlir.ExternFunction{
		Name:       t.Name,
		ABI:        t.ABI,
		ParamTypes: t.ParamTypes,
		Return:     t.Return,
		Variadic:   t.Variadic,
	})
	c.externs[t.Name] = t
}

// collectGlobal lowers a top-level `let`, constraining its declared (or
// fresh) type against its initializer's type. Only the resolved type is
// retained in the HLIR program; the initializer expression itself is not
// kept once its type has been unified.
func (c *Context) collectGlobal(t *ast.VariableDeclarationTop) {
	declTy := c.declaredOrFreshType(t.Type)
	value := c.lowerExpr(t.Value, c.globalEnv)
	c.constrain(declTy, value.Type())
	c.hlirProgram.Globals[t.Name] = declTy
	c.globalEnv[t.Name] = declTy
}

// registerPrototype lowers fn's signature and records it before any
// function body is lowered, so every call site can resolve a concrete
// result type regardless of definition order.
func (c *Context) registerPrototype(fn *ast.Function) {
	params := make([]hlir.HLIRType, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = c.lowerConcreteType(p.Type, "function "+fn.Name)
	}
	ret := hlir.Prim(ast.Void)
	if fn.Return != nil {
		ret = c.lowerConcreteType(fn.Return, "function "+fn.Name)
	}
	c.hlirProgram.Prototypes[fn.Name] = hlir.Prototype{Params: params, Return: ret}
}

// lowerFunctionBody lowers one function's statements against an
// environment seeded with the global scope and the function's own
// parameters.
func (c *Context) lowerFunctionBody(fn *ast.Function) {
	proto := c.hlirProgram.Prototypes[fn.Name]

	env := make(map[string]hlir.HLIRType, len(c.globalEnv)+len(fn.Params))
	for name, ty := range c.globalEnv {
		env[name] = ty
	}
	params := make([]hlir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = hlir.Param{Name: p.Name, Type: proto.Params[i]}
		env[p.Name] = proto.Params[i]
	}

	body := make([]hlir.Stmt, 0, len(fn.Body))
	for _, stmt := range fn.Body {
		body = append(body, c.lowerStmt(stmt, env, proto.Return))
	}

	c.hlirProgram.Functions = append(c.hlirProgram.Functions, &hlir.Function{
		Name:   fn.Name,
		Params: params,
		Return: proto.Return,
		Body:   body,
	})
}
