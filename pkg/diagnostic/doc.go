// Package diagnostic renders structured lex/parse/lowering errors with
// ANSI color: a header line, an arrow pointing at the file:line:col, a
// few lines of source context, and a caret run under the offending span.
package diagnostic
