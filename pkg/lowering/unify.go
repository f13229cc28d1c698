package lowering

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// unifyAll is phase 2: every constraint collected during phase 1 is
// processed in insertion order, since later equalities may observe
// substitutions produced by earlier ones.
func (c *Context) unifyAll() {
	for _, con := range c.constraints {
		c.unify(con.A, con.B)
	}
	c.compressSubstitutions()
	c.constraints = nil
}

// unify resolves both sides through the current substitution and then:
// no-ops if they are the same variable, binds whichever side is a
// variable to the other concrete type if exactly one is, or fails if
// both are concrete and different.
func (c *Context) unify(a, b hlir.HLIRType) {
	a = c.applySubstitution(a)
	b = c.applySubstitution(b)

	switch {
	case a.IsVar() && b.IsVar():
		if a.VarID() == b.VarID() {
			return
		}
		// Carry a literal's origin over to the variable it is bound to,
		// so resolve can still default it by origin.
		if k, ok := c.varKind[a.VarID()]; ok {
			if _, has := c.varKind[b.VarID()]; !has {
				c.varKind[b.VarID()] = k
			}
		}
		c.substitution[a.VarID()] = b
	case a.IsVar():
		c.substitution[a.VarID()] = b
	case b.IsVar():
		c.substitution[b.VarID()] = a
	default:
		if a.Primitive() != b.Primitive() {
			panic(fmt.Sprintf("lowering: cannot unify %s and %s", a, b))
		}
	}
}

// applySubstitution follows t's substitution chain to its image,
// path-compressing as it recurses so repeated lookups stay cheap.
func (c *Context) applySubstitution(t hlir.HLIRType) hlir.HLIRType {
	if !t.IsVar() {
		return t
	}
	if resolved, ok := c.substitution[t.VarID()]; ok {
		image := c.applySubstitution(resolved)
		c.substitution[t.VarID()] = image
		return image
	}
	return t
}

// compressSubstitutions rewrites every entry in the substitution map to
// its fully resolved image, so propagation never needs to chase a chain.
func (c *Context) compressSubstitutions() {
	for id, ty := range c.substitution {
		c.substitution[id] = c.applySubstitution(ty)
	}
}

// resolve is applySubstitution plus a default for a variable that comes
// out the other end still unresolved: an under-constrained literal
// (e.g. `let x = 1;` with no further use) defaults to i32 or f64 by
// origin rather than failing the whole translation unit, per the open
// question on unconstrained-literal defaulting.
func (c *Context) resolve(t hlir.HLIRType) hlir.HLIRType {
	resolved := c.applySubstitution(t)
	if !resolved.IsVar() {
		return resolved
	}
	if c.varKind[resolved.VarID()] == varKindFloat {
		return hlir.Prim(ast.F64)
	}
	return hlir.Prim(ast.I32)
}
