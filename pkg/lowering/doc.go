// Package lowering implements the two-pass type-inference lowering that
// turns an internal/ast.Program into a fully substituted internal/hlir.Program.
//
// A Context moves through a one-way state machine — Fresh, Collecting,
// Unifying, Propagating, Done — matching the three phases described in
// the design notes:
//
//  1. Collect walks every top-level item, lowering parameter and
//     return types, recording function prototypes and extern
//     signatures, and lowering statements and expressions while
//     emitting Equal(a, b) constraints for every place two types must
//     agree (a let binding against its initializer, a return against
//     its function's return type, both sides of a binary operator
//     against each other and, for arithmetic, bitwise, and shift
//     operators, against the operator's result).
//  2. Unify walks the constraint list in insertion order, resolving
//     each side through the current substitution with path compression
//     and binding type variables to concrete types as it goes.
//  3. Propagate rebuilds every statement and expression, replacing each
//     type field with its fully resolved type. A type variable that
//     survives propagation unconstrained is defaulted rather than
//     rejected — i32 for an integer literal, f64 for a float literal,
//     i32 otherwise — per the open question on unconstrained-literal
//     defaulting.
//
// Unification conflicts and return-type mismatches are fatal: Lower
// panics, since they indicate either a parser bug or a genuine type
// contradiction the language's minimal inference layer cannot recover
// from (see the error-handling design notes).
package lowering
