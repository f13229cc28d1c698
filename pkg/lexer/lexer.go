// Package lexer implements the streaming tokenizer for the Language's
// front end.
//
// The Lexer is a single-pass, non-restartable scanner: NextToken reads
// exactly as many bytes as the next token needs, advancing its internal
// cursor, and can be called repeatedly until it reports TokenEOF. Byte
// offsets, 1-based line numbers, and 1-based column numbers are tracked
// for every character consumed, so every returned token carries a
// location precise enough to render a caret diagnostic.
//
// Multi-character operators are resolved by one character of lookahead,
// using a maximal-munch dispatch table generalized to the Language's
// much larger operator set.
package lexer

import (
	"fmt"

	"github.com/zoid-lang/zoidc/internal/location"
)

// Token is a single lexical unit: its classification, the literal text
// it was scanned from, and its source location.
type Token struct {
	Kind    TokenKind
	Literal string
	Loc     location.Location
}

// Lexer is a stateful cursor over one source buffer.
type Lexer struct {
	file         string
	input        string
	position     int // offset of ch
	readPosition int // offset of the next byte to read
	ch           byte
	line         int
	column       int
}

// New creates a Lexer over source, attributing all locations to file.
func New(file, source string) *Lexer {
	l := &Lexer{
		file:   file,
		input:  source,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// Location returns the lexer's current position, for use by the parser
// when it needs to synthesize a zero-width location (e.g. UnexpectedEOF)
// with no token to copy one from.
func (l *Lexer) Location() location.Location {
	return location.New(l.file, l.line, l.column, l.position, l.position)
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// peekAt returns the byte offset bytes past the current character (so
// peekAt(1) is the same byte as peekChar), or 0 at EOF.
func (l *Lexer) peekAt(offset int) byte {
	idx := l.readPosition + offset - 1
	if idx < 0 || idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment consumes a "//" comment up to but not including the
// terminating newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// skipBlockComment consumes a "/*" comment, counting nested "/*"/"*/"
// pairs so that `/* a /* b */ c */` closes only after both pairs are
// balanced.
func (l *Lexer) skipBlockComment() {
	depth := 1
	l.readChar() // consume '*' of the opening "/*"
	l.readChar()

	for depth > 0 && l.ch != 0 {
		if l.ch == '/' && l.peekChar() == '*' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '*' && l.peekChar() == '/' {
			depth--
			l.readChar()
			l.readChar()
			continue
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber consumes an integer literal, optionally upgraded to a
// float literal by a fractional part and/or an exponent.
func (l *Lexer) readNumber() (string, TokenKind) {
	start := l.position
	kind := TokenIntLiteral

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = TokenFloatLiteral
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		save := l.position
		// Tentatively consume the exponent; only commit if it's well-formed.
		offset := 1
		if l.peekAt(offset) == '+' || l.peekAt(offset) == '-' {
			offset++
		}
		if isDigit(l.peekAt(offset)) {
			kind = TokenFloatLiteral
			l.readChar() // e/E
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		} else {
			_ = save
		}
	}

	return l.input[start:l.position], kind
}

// readEscapedRun consumes characters up to (not including) the closing
// byte, passing `\`-escapes through uninterpreted: the backslash and the
// character following it are both consumed without inspection. Returns
// the raw content between the open and close delimiters.
func (l *Lexer) readEscapedRun(close byte) string {
	start := l.position

	for {
		if l.ch == close || l.ch == 0 {
			break
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				break
			}
		}
		l.readChar()
	}

	return l.input[start:l.position]
}

// readRawString scans `r#*"…"#*` where the literal closes at a `"`
// immediately followed by the same number of `#` characters as opened it.
func (l *Lexer) readRawString() string {
	l.readChar() // consume 'r'

	hashes := 0
	for l.ch == '#' {
		hashes++
		l.readChar()
	}
	l.readChar() // consume opening '"'

	start := l.position
	for l.ch != 0 {
		if l.ch == '"' {
			closed := true
			for i := 0; i < hashes; i++ {
				if l.peekAt(i+1) != '#' {
					closed = false
					break
				}
			}
			if closed {
				content := l.input[start:l.position]
				l.readChar() // closing '"'
				for i := 0; i < hashes; i++ {
					l.readChar()
				}
				return content
			}
		}
		l.readChar()
	}

	return l.input[start:l.position]
}

// NextToken returns the next token in the stream, or an error if the
// current character cannot start any token. The offending character has
// already been consumed when an error is returned, so the lexer is
// immediately ready to produce the following token on the next call.
func (l *Lexer) NextToken() (Token, error) {
	for {
		l.skipWhitespace()
		if l.ch == '/' && l.peekChar() == '/' {
			l.skipLineComment()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.skipBlockComment()
			continue
		}
		break
	}

	line, col, start := l.line, l.column, l.position

	tok := func(kind TokenKind, literal string) Token {
		return Token{Kind: kind, Literal: literal, Loc: location.New(l.file, line, col, start, l.position)}
	}

	switch {
	case l.ch == 0:
		return tok(TokenEOF, ""), nil

	case l.ch == '<':
		if l.peekChar() == ':' {
			l.readChar()
			l.readChar()
			return tok(TokenLGenericBracket, "<:"), nil
		}
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(TokenOpLeq, "<="), nil
		}
		if l.peekChar() == '<' {
			l.readChar()
			l.readChar()
			return tok(TokenOpShl, "<<"), nil
		}
		l.readChar()
		return tok(TokenOpLt, "<"), nil

	case l.ch == ':':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return tok(TokenRGenericBracket, ":>"), nil
		}
		l.readChar()
		return tok(TokenColon, ":"), nil

	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(TokenOpGeq, ">="), nil
		}
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return tok(TokenOpShr, ">>"), nil
		}
		l.readChar()
		return tok(TokenOpGt, ">"), nil

	case l.ch == '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(TokenOpEq, "=="), nil
		}
		l.readChar()
		return tok(TokenOpAssign, "="), nil

	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return tok(TokenOpNe, "!="), nil
		}
		l.readChar()
		return tok(TokenOpNot, "!"), nil

	case l.ch == '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return tok(TokenOpAndAnd, "&&"), nil
		}
		l.readChar()
		return tok(TokenOpBitAnd, "&"), nil

	case l.ch == '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return tok(TokenOpOrOr, "||"), nil
		}
		l.readChar()
		return tok(TokenOpBitOr, "|"), nil

	case l.ch == '/':
		// "//" and "/*" are consumed by the comment-skipping loop above.
		l.readChar()
		return tok(TokenOpDiv, "/"), nil

	case l.ch == '.':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return tok(TokenOpAddressOf, ".&"), nil
		}
		if l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			return tok(TokenOpDeref, ".*"), nil
		}
		if l.peekChar() == '?' {
			l.readChar()
			l.readChar()
			return tok(TokenOpUnwrap, ".?"), nil
		}
		if l.peekChar() == '.' {
			l.readChar() // first '.'
			l.readChar() // second '.'
			switch l.ch {
			case '<':
				l.readChar()
				return tok(TokenOpRangeExclusive, "..<"), nil
			case '.':
				l.readChar()
				return tok(TokenOpVaArgs, "..."), nil
			case '=':
				l.readChar()
				return tok(TokenOpRangeInclusive, "..="), nil
			default:
				return tok(TokenOpRangeExclusive, ".."), nil
			}
		}
		l.readChar()
		return tok(TokenOpDot, "."), nil

	case l.ch == '~':
		l.readChar()
		return tok(TokenOpBitNot, "~"), nil
	case l.ch == '+':
		l.readChar()
		return tok(TokenOpAdd, "+"), nil
	case l.ch == '-':
		l.readChar()
		return tok(TokenOpSub, "-"), nil
	case l.ch == '*':
		l.readChar()
		return tok(TokenOpMul, "*"), nil
	case l.ch == '%':
		l.readChar()
		return tok(TokenOpMod, "%"), nil
	case l.ch == ';':
		l.readChar()
		return tok(TokenSemicolon, ";"), nil
	case l.ch == ',':
		l.readChar()
		return tok(TokenComma, ","), nil
	case l.ch == '(':
		l.readChar()
		return tok(TokenLParen, "("), nil
	case l.ch == ')':
		l.readChar()
		return tok(TokenRParen, ")"), nil
	case l.ch == '{':
		l.readChar()
		return tok(TokenLBrace, "{"), nil
	case l.ch == '}':
		l.readChar()
		return tok(TokenRBrace, "}"), nil
	case l.ch == '[':
		l.readChar()
		return tok(TokenLBracket, "["), nil
	case l.ch == ']':
		l.readChar()
		return tok(TokenRBracket, "]"), nil

	case l.ch == '"':
		l.readChar()
		literal := l.readEscapedRun('"')
		if l.ch == '"' {
			l.readChar()
		}
		return tok(TokenStringLiteral, literal), nil

	case l.ch == '\'':
		l.readChar()
		literal := l.readEscapedRun('\'')
		if l.ch == '\'' {
			l.readChar()
		}
		return tok(TokenCharLiteral, literal), nil

	case l.ch == 'c' && l.peekChar() == '"':
		l.readChar() // 'c'
		l.readChar() // opening '"'
		literal := l.readEscapedRun('"')
		if l.ch == '"' {
			l.readChar()
		}
		return tok(TokenCStringLiteral, literal), nil

	case l.ch == 'r' && (l.peekChar() == '#' || l.peekChar() == '"'):
		literal := l.readRawString()
		return tok(TokenRawStringLiteral, literal), nil

	case isLetter(l.ch):
		literal := l.readIdentifier()
		return Token{Kind: LookupIdent(literal), Literal: literal, Loc: location.New(l.file, line, col, start, l.position)}, nil

	case isDigit(l.ch):
		literal, kind := l.readNumber()
		return Token{Kind: kind, Literal: literal, Loc: location.New(l.file, line, col, start, l.position)}, nil

	default:
		bad := l.ch
		l.readChar()
		return Token{}, &UnknownTokenError{
			Char: bad,
			Loc:  location.New(l.file, line, col, start, l.position),
		}
	}
}

// UnknownTokenError reports a byte that cannot start any token. The
// lexer has already consumed it by the time this error is returned, so
// the next NextToken call resumes cleanly from the following byte.
type UnknownTokenError struct {
	Char byte
	Loc  location.Location
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token starter %q", e.Char)
}
