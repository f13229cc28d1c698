// Package parser implements a recursive-descent, arena-allocating parser
// for the Language: it consumes pkg/lexer tokens and builds the
// internal/ast tree, folding cast and binary-operator parsing into a
// single precedence-climbing pass.
//
// A Parser never aborts on a malformed production: expect records a
// diagnostic and returns ok=false, which the caller
// treats as an "absent" sentinel and propagates up without panicking.
// Parse recovers at top-level granularity by advancing one token at a
// time until it finds a new item starter or EOF, so one bad top-level
// item does not prevent the rest of the file from being parsed.
package parser

import (
	"errors"

	"github.com/zoid-lang/zoidc/internal/arena"
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/location"
	"github.com/zoid-lang/zoidc/pkg/diagnostic"
	"github.com/zoid-lang/zoidc/pkg/lexer"
)

// Parser turns a token stream into an internal/ast.Program, accumulating
// diagnostics for anything that does not parse rather than failing the
// whole translation unit.
type Parser struct {
	arena *arena.Arena
	lex   *lexer.Lexer
	file  string
	source string

	cur  lexer.Token
	peek lexer.Token

	Diagnostics []diagnostic.Diagnostic
}

// New constructs a Parser over source, attributing diagnostics to file
// and allocating AST nodes and interned strings out of a.
func New(a *arena.Arena, file, source string) *Parser {
	p := &Parser{
		arena:  a,
		file:   file,
		source: source,
		lex:    lexer.New(file, source),
	}
	p.advance()
	p.advance()
	return p
}

// Parse consumes the entire token stream, returning the Program it
// built. It always returns normally; check p.Diagnostics (or
// p.HasErrors) for parse failures.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Kind != lexer.TokenEOF {
		var item ast.TopLevel
		switch p.cur.Kind {
		case lexer.TokenKeywordExtern:
			item = p.parseExternFunction()
		case lexer.TokenKeywordFn:
			item = p.parseFunction()
		case lexer.TokenKeywordLet:
			item = p.parseGlobalLet()
		case lexer.TokenKeywordImport:
			item = p.parseImport()
		case lexer.TokenKeywordImportC:
			item = p.parseImportC()
		default:
			p.addDiagnostic(diagnostic.UnexpectedToken, p.cur.Loc, "expected a top-level item, found %s", p.cur.Kind)
			p.advance()
			continue
		}
		if item != nil {
			prog.Items = append(prog.Items, item)
		}
	}
	return prog
}

// HasErrors reports whether Parse recorded at least one diagnostic.
func (p *Parser) HasErrors() bool {
	return len(p.Diagnostics) > 0
}

// advance shifts peek into cur and pulls a fresh token into peek,
// silently absorbing any run of UnknownTokenError by recording a
// diagnostic per bad byte and retrying — the lexer itself already
// resumed past the offending character.
func (p *Parser) advance() {
	p.cur = p.peek
	for {
		tok, err := p.lex.NextToken()
		if err == nil {
			p.peek = tok
			return
		}
		var ute *lexer.UnknownTokenError
		if errors.As(err, &ute) {
			p.addDiagnostic(diagnostic.UnknownToken, ute.Loc, "unknown token starter %q", ute.Char)
			continue
		}
		p.addDiagnostic(diagnostic.UnexpectedEOF, p.lex.Location(), "%s", err.Error())
		p.peek = lexer.Token{Kind: lexer.TokenEOF, Loc: p.lex.Location()}
		return
	}
}

// expect consumes cur if it has the given kind, advancing and returning
// it. Otherwise it records an UnexpectedToken (or UnexpectedEOF at end
// of input) diagnostic and returns the zero Token with ok=false.
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, bool) {
	if p.cur.Kind == kind {
		tok := p.cur
		p.advance()
		return tok, true
	}
	if p.cur.Kind == lexer.TokenEOF {
		p.addDiagnostic(diagnostic.UnexpectedEOF, p.lex.Location(), "expected %s, found end of file", kind)
	} else {
		p.addDiagnostic(diagnostic.UnexpectedToken, p.cur.Loc, "expected %s, found %s", kind, p.cur.Kind)
	}
	return lexer.Token{}, false
}

func (p *Parser) addDiagnostic(code diagnostic.ErrorCode, loc location.Location, format string, args ...interface{}) {
	p.Diagnostics = append(p.Diagnostics, diagnostic.Errorf(code, loc, p.source, format, args...))
}
