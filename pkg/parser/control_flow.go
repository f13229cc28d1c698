package parser

import (
	"github.com/zoid-lang/zoidc/internal/arena"
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/pkg/diagnostic"
	"github.com/zoid-lang/zoidc/pkg/lexer"
)

// parseType parses a (possibly compound) type expression: a pointer, a
// const/volatile qualifier, a parenthesized type, or a primitive name.
// An unresolvable identifier records a diagnostic and returns nil.
func (p *Parser) parseType() ast.Type {
	switch p.cur.Kind {
	case lexer.TokenOpMul:
		loc := p.cur.Loc
		p.advance()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		t := &ast.PointerType{Inner: inner}
		t.WithLoc(loc)
		return t

	case lexer.TokenKeywordConst:
		loc := p.cur.Loc
		p.advance()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		t := &ast.ConstType{Inner: inner}
		t.WithLoc(loc)
		return t

	case lexer.TokenKeywordVolatile:
		loc := p.cur.Loc
		p.advance()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		t := &ast.VolatileType{Inner: inner}
		t.WithLoc(loc)
		return t

	case lexer.TokenLParen:
		p.advance()
		inner := p.parseType()
		if inner == nil {
			return nil
		}
		p.expect(lexer.TokenRParen)
		return inner

	case lexer.TokenIdent:
		name, loc := p.cur.Literal, p.cur.Loc
		prim, ok := ast.LookupPrimitive(name)
		if !ok {
			p.addDiagnostic(diagnostic.UnexpectedToken, loc, "unknown type %q", name)
			p.advance()
			return nil
		}
		p.advance()
		t := &ast.PrimitiveType{Kind: prim}
		t.WithLoc(loc)
		return t

	default:
		if p.cur.Kind == lexer.TokenEOF {
			p.addDiagnostic(diagnostic.UnexpectedEOF, p.lex.Location(), "expected a type, found end of file")
		} else {
			p.addDiagnostic(diagnostic.UnexpectedToken, p.cur.Loc, "expected a type, found %s", p.cur.Kind)
		}
		return nil
	}
}

// parseExternFunction parses `extern "abi" fn name(params): ret;`.
func (p *Parser) parseExternFunction() ast.TopLevel {
	start := p.cur.Loc
	p.advance() // 'extern'

	abiTok, ok := p.expect(lexer.TokenStringLiteral)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokenKeywordFn); !ok {
		return nil
	}
	nameTok, ok := p.expect(lexer.TokenIdent)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokenLParen); !ok {
		return nil
	}

	var paramTypes []ast.Type
	var paramNames []string
	variadic := false
	for p.cur.Kind != lexer.TokenRParen && p.cur.Kind != lexer.TokenEOF {
		if p.cur.Kind == lexer.TokenOpVaArgs {
			variadic = true
			p.advance()
			break
		}
		name := ""
		if p.cur.Kind == lexer.TokenIdent && p.peek.Kind == lexer.TokenColon {
			name = p.arena.Intern(p.cur.Literal)
			p.advance()
			p.advance() // ':'
		}
		ty := p.parseType()
		if ty == nil {
			return nil
		}
		paramTypes = append(paramTypes, ty)
		paramNames = append(paramNames, name)
		if p.cur.Kind == lexer.TokenComma {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(lexer.TokenRParen); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokenColon); !ok {
		return nil
	}
	ret := p.parseType()
	if ret == nil {
		return nil
	}
	if _, ok := p.expect(lexer.TokenSemicolon); !ok {
		return nil
	}

	fn := arena.Alloc[ast.ExternFunction](p.arena)
	fn.WithLoc(start)
	fn.Name = p.arena.Intern(nameTok.Literal)
	fn.ABI = abiTok.Literal
	fn.ParamTypes = paramTypes
	fn.ParamNames = paramNames
	fn.Return = ret
	fn.Variadic = variadic
	return fn
}

// parseFunction parses `fn name(params): ret { body }`.
func (p *Parser) parseFunction() ast.TopLevel {
	start := p.cur.Loc
	p.advance() // 'fn'

	nameTok, ok := p.expect(lexer.TokenIdent)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokenLParen); !ok {
		return nil
	}

	var params []ast.Param
	variadic := false
	for p.cur.Kind != lexer.TokenRParen && p.cur.Kind != lexer.TokenEOF {
		if p.cur.Kind == lexer.TokenOpVaArgs {
			variadic = true
			p.advance()
			break
		}
		nameTok, ok := p.expect(lexer.TokenIdent)
		if !ok {
			return nil
		}
		if _, ok := p.expect(lexer.TokenColon); !ok {
			return nil
		}
		ty := p.parseType()
		if ty == nil {
			return nil
		}
		params = append(params, ast.Param{Name: p.arena.Intern(nameTok.Literal), Type: ty})
		if p.cur.Kind == lexer.TokenComma {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(lexer.TokenRParen); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.TokenColon); !ok {
		return nil
	}
	ret := p.parseType()
	if ret == nil {
		return nil
	}
	body := p.parseBlockStmts()

	fn := arena.Alloc[ast.Function](p.arena)
	fn.WithLoc(start)
	fn.Name = p.arena.Intern(nameTok.Literal)
	fn.Params = params
	fn.Return = ret
	fn.Body = body
	fn.Variadic = variadic
	return fn
}

func (p *Parser) parseImport() ast.TopLevel {
	loc := p.cur.Loc
	p.advance() // 'import'
	pathTok, ok := p.expect(lexer.TokenStringLiteral)
	if !ok {
		return nil
	}
	p.expect(lexer.TokenSemicolon)
	n := &ast.Import{Path: pathTok.Literal}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseImportC() ast.TopLevel {
	loc := p.cur.Loc
	p.advance() // 'importc'
	pathTok, ok := p.expect(lexer.TokenStringLiteral)
	if !ok {
		return nil
	}
	p.expect(lexer.TokenSemicolon)
	n := &ast.ImportC{Path: pathTok.Literal}
	n.WithLoc(loc)
	return n
}

// parseLetParts parses the shared body of a `let` production — the
// name, optional type annotation, and initializer — used by both the
// top-level and statement forms.
func (p *Parser) parseLetParts() (name string, declType ast.Type, value ast.Expr, ok bool) {
	p.advance() // 'let'
	nameTok, ok := p.expect(lexer.TokenIdent)
	if !ok {
		return "", nil, nil, false
	}
	if p.cur.Kind == lexer.TokenColon {
		p.advance()
		declType = p.parseType()
		if declType == nil {
			return "", nil, nil, false
		}
	}
	if _, ok := p.expect(lexer.TokenOpAssign); !ok {
		return "", nil, nil, false
	}
	value = p.parseExpr(precLowest)
	if value == nil {
		return "", nil, nil, false
	}
	p.expect(lexer.TokenSemicolon)
	return p.arena.Intern(nameTok.Literal), declType, value, true
}

func (p *Parser) parseGlobalLet() ast.TopLevel {
	loc := p.cur.Loc
	name, ty, value, ok := p.parseLetParts()
	if !ok {
		return nil
	}
	n := &ast.VariableDeclarationTop{Name: name, Type: ty, Value: value}
	n.WithLoc(loc)
	return n
}

// parseBlockStmts consumes `{ stmt* }`, returning the parsed statements.
func (p *Parser) parseBlockStmts() []ast.Stmt {
	if _, ok := p.expect(lexer.TokenLBrace); !ok {
		return nil
	}
	var stmts []ast.Stmt
	for p.cur.Kind != lexer.TokenRBrace && p.cur.Kind != lexer.TokenEOF {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(lexer.TokenRBrace)
	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case lexer.TokenLBrace:
		loc := p.cur.Loc
		stmts := p.parseBlockStmts()
		n := &ast.Block{Stmts: stmts}
		n.WithLoc(loc)
		return n

	case lexer.TokenKeywordBreak:
		loc := p.cur.Loc
		p.advance()
		p.expect(lexer.TokenSemicolon)
		n := &ast.Break{}
		n.WithLoc(loc)
		return n

	case lexer.TokenKeywordContinue:
		loc := p.cur.Loc
		p.advance()
		p.expect(lexer.TokenSemicolon)
		n := &ast.Continue{}
		n.WithLoc(loc)
		return n

	case lexer.TokenKeywordIf:
		return p.parseIf()

	case lexer.TokenKeywordWhile:
		return p.parseWhile()

	case lexer.TokenKeywordReturn:
		return p.parseReturn()

	case lexer.TokenKeywordLet:
		loc := p.cur.Loc
		name, ty, value, ok := p.parseLetParts()
		if !ok {
			return nil
		}
		n := &ast.VariableDeclaration{Name: name, Type: ty, Value: value}
		n.WithLoc(loc)
		return n

	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIf() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'if'
	cond := p.parseExpr(precLowest)
	if cond == nil {
		return nil
	}
	then := p.parseStmt()
	if then == nil {
		return nil
	}
	var elseStmt ast.Stmt
	if p.cur.Kind == lexer.TokenKeywordElse {
		p.advance()
		elseStmt = p.parseStmt()
	}
	n := &ast.If{Cond: cond, Then: then, Else: elseStmt}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseWhile() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'while'
	cond := p.parseExpr(precLowest)
	if cond == nil {
		return nil
	}
	body := p.parseStmt()
	if body == nil {
		return nil
	}
	n := &ast.While{Cond: cond, Body: body}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseReturn() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'return'
	var value ast.Expr
	if p.cur.Kind != lexer.TokenSemicolon {
		value = p.parseExpr(precLowest)
	}
	p.expect(lexer.TokenSemicolon)
	n := &ast.Return{Value: value}
	n.WithLoc(loc)
	return n
}

func (p *Parser) parseExprStmt() ast.Stmt {
	loc := p.cur.Loc
	expr := p.parseExpr(precLowest)
	if expr == nil {
		p.advance()
		return nil
	}
	p.expect(lexer.TokenSemicolon)
	n := &ast.ExprStmt{X: expr}
	n.WithLoc(loc)
	return n
}
