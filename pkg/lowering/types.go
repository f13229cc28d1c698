package lowering

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// astTypeToHLIR maps an AST primitive type to its HLIR equivalent.
// HLIRType has no Pointer/Const/Volatile/Function case, so any compound
// type reports ok=false.
func astTypeToHLIR(t ast.Type) (hlir.HLIRType, bool) {
	prim, ok := t.(*ast.PrimitiveType)
	if !ok {
		return hlir.HLIRType{}, false
	}
	return hlir.Prim(prim.Kind), true
}

// lowerConcreteType resolves t to a HLIRType or panics: used for
// function parameter and return types, which phase 1 requires to be
// fully representable in the HLIR before a body can be lowered at all.
func (c *Context) lowerConcreteType(t ast.Type, context string) hlir.HLIRType {
	ty, ok := astTypeToHLIR(t)
	if !ok {
		panic(fmt.Sprintf("lowering: %s references a type %s the HLIR cannot represent", context, t.String()))
	}
	return ty
}

// declaredOrFreshType resolves an optional `let` type annotation: a
// declared type must be HLIR-representable, and an absent one becomes a
// fresh, as-yet-unconstrained type variable.
func (c *Context) declaredOrFreshType(t ast.Type) hlir.HLIRType {
	if t == nil {
		return c.freshVar(varKindUnknown)
	}
	return c.lowerConcreteType(t, "a let binding")
}
