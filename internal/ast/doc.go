// Package ast holds the tagged-variant node types the parser builds and
// the pretty-printer that renders a Program back to canonical surface
// syntax.
package ast
