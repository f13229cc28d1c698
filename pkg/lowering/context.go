package lowering

import (
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
)

// state is the lowering state machine: transitions are total and each
// phase consumes the prior phase's output. A Context is not reentrant —
// Lower may only be called once.
type state int

const (
	stateFresh state = iota
	stateCollecting
	stateUnifying
	statePropagating
	stateDone
)

// varKind records why a fresh type variable was allocated, so an
// unconstrained residual variable can be defaulted sensibly instead of
// treated as a hard failure.
type varKind int

const (
	varKindUnknown varKind = iota
	varKindInteger
	varKindFloat
)

// equalConstraint is one `Equal(a, b)` constraint collected during
// phase 1, processed in insertion order during phase 2.
type equalConstraint struct {
	A, B hlir.HLIRType
}

// Context owns everything phase 1 through phase 3 need: the program
// being lowered, the in-progress HLIR program, and the solver's
// substitution map and constraint list. None of this outlives Lower.
type Context struct {
	program *ast.Program
	source  string

	hlirProgram *hlir.Program

	substitution map[int]hlir.HLIRType
	varKind      map[int]varKind
	constraints  []equalConstraint
	nextVarID    int

	globalEnv map[string]hlir.HLIRType
	externs   map[string]*ast.ExternFunction

	state state
}

// New builds a Context ready to lower program. source is retained only
// for future diagnostic-rendering use; lowering failures are currently
// fatal panics rather than diagnostic.Diagnostic values (see the
// error-handling design notes).
func New(program *ast.Program, source string) *Context {
	return &Context{
		program:      program,
		source:       source,
		substitution: make(map[int]hlir.HLIRType),
		varKind:      make(map[int]varKind),
		state:        stateFresh,
	}
}

// Lower runs collection, unification, and propagation in order,
// returning the fully substituted HLIR program. It panics on any
// unification conflict or return-type mismatch.
func (c *Context) Lower() *hlir.Program {
	if c.state != stateFresh {
		panic("lowering: Lower called more than once on the same Context")
	}

	c.state = stateCollecting
	c.collect()

	c.state = stateUnifying
	c.unifyAll()

	c.state = statePropagating
	result := c.propagate()

	c.state = stateDone
	return result
}

func (c *Context) freshVar(kind varKind) hlir.HLIRType {
	id := c.nextVarID
	c.nextVarID++
	if kind != varKindUnknown {
		c.varKind[id] = kind
	}
	return hlir.Var(id)
}

func (c *Context) constrain(a, b hlir.HLIRType) {
	c.constraints = append(c.constraints, equalConstraint{A: a, B: b})
}
