// Package parser implements a recursive-descent parser with
// precedence-climbing expression parsing for the Language's front end.
//
// The parser consumes a pkg/lexer token stream and builds an
// internal/ast.Program. Top-level items are extern declarations,
// functions, globals, and imports; statement and expression grammars
// follow the precedence table in the design notes, with cast (`:`)
// folded into binary parsing as the highest-precedence form.
//
// Parsing never aborts on a single malformed production: a failed
// expect records a diagnostic.Diagnostic and returns an "absent"
// sentinel (nil) that propagates up one level, where the caller either
// also bails out or — at top level — recovers by skipping to the next
// item starter. Parse always returns a Program; callers check
// p.HasErrors() to decide whether to proceed to lowering.
package parser
