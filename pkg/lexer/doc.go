// Package lexer provides lexical analysis for the Language's front end.
//
// The lexer is the first stage of the zoidc pipeline: it turns raw
// source text into a stream of Tokens that the parser consumes one at a
// time via NextToken. Each Token carries a precise location so later
// diagnostics can point back at the exact source span responsible.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: if, else, fn, let, return, for, while, break, continue,
//     in, struct, enum, union, impl, trait, where, async, await, gen,
//     yield, import, importc, extern, const, static, type, volatile
//   - Word operators: and, or, not
//   - Literals: integers, floats, booleans, strings, C-strings, raw
//     strings, chars
//   - Operators: arithmetic, bitwise, shift, comparison, logical,
//     address-of (.&), deref (.*), unwrap (.?), ranges (.. ..< ..=),
//     variadic (...)
//   - Delimiters: ( ) { } [ ] <: :> : ; ,
//
// Comment Handling:
//   - Single-line comments starting with "//"
//   - Multi-line comments enclosed in /* */, correctly nesting
//   - Comments are skipped during tokenization
//
// Position Tracking:
//   - 1-based line and column for every token
//   - Half-open byte range [start, end) into the source buffer
//
// Error Handling:
//   - A byte that cannot start any token yields an *UnknownTokenError
//     instead of a Token; the lexer has already advanced past it, so a
//     subsequent NextToken call resumes cleanly.
package lexer
