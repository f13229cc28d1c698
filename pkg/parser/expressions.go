package parser

import (
	"strings"

	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/pkg/diagnostic"
	"github.com/zoid-lang/zoidc/pkg/lexer"
)

// parseExpr is the precedence-climbing entry point: it parses a prefix
// expression, then repeatedly folds in any binary operator or cast
// whose precedence is at least minPrec, recursing at prec+1 for the
// right-hand side so that same-precedence operators associate left
// (except cast, which has no higher level above it and so naturally
// right-leans when chained, and assign, which climbs at its own level
// again on the right by design — see 9 in the design notes).
func (p *Parser) parseExpr(minPrec int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for {
		prec := precedenceOf(p.cur.Kind)
		if prec == precLowest || prec < minPrec {
			break
		}

		if p.cur.Kind == lexer.TokenColon {
			left = p.parseCast(left)
			if left == nil {
				return nil
			}
			continue
		}

		op, ok := binaryOps[p.cur.Kind]
		if !ok {
			break
		}
		opLoc := p.cur.Loc
		p.advance()
		nextMin := prec + 1
		if op == ast.Assign {
			nextMin = prec
		}
		right := p.parseExpr(nextMin)
		if right == nil {
			return nil
		}
		bin := &ast.Binary{Op: op, LHS: left, RHS: right}
		bin.WithLoc(opLoc)
		left = bin
	}

	return left
}

func (p *Parser) parseCast(x ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // ':'
	ty := p.parseType()
	if ty == nil {
		return nil
	}
	n := &ast.Cast{Type: ty, X: x}
	n.WithLoc(loc)
	return n
}

// parsePrefix handles the three prefix operators, recursing on itself
// so that e.g. `!!x` and `-!x` both parse.
func (p *Parser) parsePrefix() ast.Expr {
	var op ast.PrefixOp
	switch p.cur.Kind {
	case lexer.TokenOpNot:
		op = ast.Not
	case lexer.TokenOpBitNot:
		op = ast.BitNot
	case lexer.TokenOpSub:
		op = ast.Negate
	default:
		return p.parsePostfix()
	}
	loc := p.cur.Loc
	p.advance()
	x := p.parsePrefix()
	if x == nil {
		return nil
	}
	n := &ast.UnaryPrefix{Op: op, X: x}
	n.WithLoc(loc)
	return n
}

// parsePostfix parses a primary expression followed by any run of
// postfix pointer operators, calls, or indexing — generalized from the
// "identifier immediately followed by (" rule to any postfix chain, so
// that `f()()` and `arr[0].&` parse uniformly.
func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	if x == nil {
		return nil
	}
	for {
		switch p.cur.Kind {
		case lexer.TokenOpAddressOf:
			x = p.wrapPostfixOp(ast.AddressOf, x)
		case lexer.TokenOpDeref:
			x = p.wrapPostfixOp(ast.Deref, x)
		case lexer.TokenOpUnwrap:
			x = p.wrapPostfixOp(ast.Unwrap, x)
		case lexer.TokenLParen:
			x = p.parseCallArgs(x)
			if x == nil {
				return nil
			}
		case lexer.TokenLBracket:
			x = p.parseIndex(x)
			if x == nil {
				return nil
			}
		default:
			return x
		}
	}
}

func (p *Parser) wrapPostfixOp(op ast.PostfixOp, x ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance()
	n := &ast.UnaryPostfix{Op: op, X: x}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseCallArgs(callee ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '('
	var args []ast.Expr
	for p.cur.Kind != lexer.TokenRParen && p.cur.Kind != lexer.TokenEOF {
		arg := p.parseExpr(precLowest)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.cur.Kind == lexer.TokenComma {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(lexer.TokenRParen); !ok {
		return nil
	}
	n := &ast.Call{Callee: callee, Args: args}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseIndex(lhs ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '['
	rhs := p.parseExpr(precLowest)
	if rhs == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TokenRBracket); !ok {
		return nil
	}
	n := &ast.Index{LHS: lhs, RHS: rhs}
	n.WithLoc(loc)
	return n
}

// parsePrimary parses a literal, a parenthesized expression, or an
// identifier reference.
func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case lexer.TokenIntLiteral:
		n := &ast.IntegerLit{Text: p.cur.Literal}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenFloatLiteral:
		n := &ast.FloatLit{Text: p.cur.Literal}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenBoolLiteral:
		n := &ast.BoolLit{Value: p.cur.Literal == "true"}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenStringLiteral:
		n := &ast.StringLit{Value: unescapeMinimal(p.cur.Literal)}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenCStringLiteral:
		n := &ast.CStringLit{Value: unescapeMinimal(p.cur.Literal)}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenRawStringLiteral:
		n := &ast.StringLit{Value: p.cur.Literal}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenCharLiteral:
		n := &ast.CharLit{Value: p.cur.Literal}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenIdent:
		n := &ast.Variable{Name: p.arena.Intern(p.cur.Literal)}
		n.WithLoc(p.cur.Loc)
		p.advance()
		return n

	case lexer.TokenLParen:
		p.advance()
		inner := p.parseExpr(precLowest)
		if inner == nil {
			return nil
		}
		p.expect(lexer.TokenRParen)
		return inner

	default:
		if p.cur.Kind == lexer.TokenEOF {
			p.addDiagnostic(diagnostic.UnexpectedEOF, p.lex.Location(), "expected an expression, found end of file")
		} else {
			p.addDiagnostic(diagnostic.UnexpectedToken, p.cur.Loc, "expected an expression, found %s", p.cur.Kind)
		}
		return nil
	}
}

// unescapeMinimal resolves only "\n", per the design notes' first open
// question: broader escape handling is unspecified.
func unescapeMinimal(s string) string {
	if !strings.Contains(s, `\n`) {
		return s
	}
	return strings.ReplaceAll(s, `\n`, "\n")
}
