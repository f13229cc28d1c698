// Package location carries source-position information for tokens, AST
// nodes, and diagnostics: a file name, a 1-based line/column pair, and a
// half-open byte range into the source buffer.
package location

// Location is a value type; copying it is always safe and cheap.
type Location struct {
	File   string
	Line   int
	Column int
	Start  int
	End    int
}

// New builds a Location for a span starting at (line, column) and
// covering the byte range [start, end).
func New(file string, line, column, start, end int) Location {
	return Location{File: file, Line: line, Column: column, Start: start, End: end}
}

// Len returns the byte length of the span, end - start.
func (l Location) Len() int {
	return l.End - l.Start
}

// WithLine returns a copy of l with Line replaced.
func (l Location) WithLine(line int) Location {
	l.Line = line
	return l
}

// WithColumn returns a copy of l with Column replaced.
func (l Location) WithColumn(column int) Location {
	l.Column = column
	return l
}

// ExtendRange returns a copy of l whose End is replaced by end, which
// widens a zero-width starting location out to cover a whole token once
// its extent is known.
func (l Location) ExtendRange(end int) Location {
	l.End = end
	return l
}

// NewRange returns a copy of l with both Start and End replaced.
func (l Location) NewRange(start, end int) Location {
	l.Start = start
	l.End = end
	return l
}
