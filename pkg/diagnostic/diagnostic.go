// Package diagnostic implements error/warning/info records produced
// during lexing, parsing, and lowering, and their ANSI-colored rendering
// to a terminal.
package diagnostic

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zoid-lang/zoidc/internal/location"
)

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// color returns the *color.Color this severity renders its header and
// caret run in: blue for Info, yellow for Warning, red for Error.
func (s Severity) color() *color.Color {
	switch s {
	case Info:
		return color.New(color.FgBlue, color.Bold)
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// ErrorCode identifies the specific condition a Diagnostic reports.
type ErrorCode int

const (
	UnknownToken ErrorCode = iota
	UnexpectedToken
	UnexpectedEOF
)

func (c ErrorCode) String() string {
	switch c {
	case UnknownToken:
		return "E0001"
	case UnexpectedToken:
		return "E0002"
	case UnexpectedEOF:
		return "E0003"
	default:
		return "E0000"
	}
}

// Diagnostic is a single structured error, warning, or informational
// record, with enough context to render a caret under the offending span.
type Diagnostic struct {
	Severity Severity
	Code     ErrorCode
	Loc      location.Location
	Message  string
	// Source is the full text of the file the diagnostic's Loc refers
	// to, used only to recover the surrounding context lines at render
	// time.
	Source string
}

// New builds a Diagnostic.
func New(severity Severity, code ErrorCode, loc location.Location, source, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Loc: loc, Message: message, Source: source}
}

// Errorf builds an Error-severity Diagnostic with a formatted message.
func Errorf(code ErrorCode, loc location.Location, source, format string, args ...interface{}) Diagnostic {
	return New(Error, code, loc, source, fmt.Sprintf(format, args...))
}

// Render writes the diagnostic to w in the format:
//
//	error[E0002]: unexpected token
//	 --> main.zoid:3:5
//	   2 | fn f() {
//	   3 |     retrun x;
//	     |     ^^^^^^
//	   4 | }
func (d Diagnostic) Render(w io.Writer) {
	c := d.Severity.color()

	c.Fprintf(w, "%s[%s]", d.Severity, d.Code)
	fmt.Fprintf(w, ": %s\n", d.Message)
	fmt.Fprintf(w, " --> %s:%d:%d\n", d.Loc.File, d.Loc.Line, d.Loc.Column)

	lines := strings.Split(d.Source, "\n")
	targetIdx := d.Loc.Line - 1

	startIdx := targetIdx - 1
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := targetIdx + 1
	if endIdx >= len(lines) {
		endIdx = len(lines) - 1
	}

	for i := startIdx; i <= endIdx && i < len(lines); i++ {
		fmt.Fprintf(w, "%4d | %s\n", i+1, lines[i])
		if i == targetIdx {
			caretLen := d.Loc.Len()
			if caretLen < 1 {
				caretLen = 1
			}
			pad := strings.Repeat(" ", d.Loc.Column-1)
			caret := strings.Repeat("^", caretLen)
			fmt.Fprintf(w, "     | %s", pad)
			c.Fprintf(w, "%s\n", caret)
		}
	}
}
