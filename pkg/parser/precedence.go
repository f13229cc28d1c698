package parser

import (
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/pkg/lexer"
)

// Binding powers for precedence-climbing expression parsing. Cast binds
// tightest and right-leans; assignment binds loosest.
const (
	precLowest         = 0
	precAssign         = 5
	precLogical        = 10
	precComparison     = 20
	precBitwise        = 30
	precShift          = 40
	precAdditive       = 50
	precMultiplicative = 60
	precCast           = 100
)

// binaryPrecedence gives the binding power of every token that can
// continue an expression as a binary operator or cast. A token absent
// from this table has precedence precLowest and terminates the climb.
var binaryPrecedence = map[lexer.TokenKind]int{
	lexer.TokenColon:    precCast,
	lexer.TokenOpMul:    precMultiplicative,
	lexer.TokenOpDiv:    precMultiplicative,
	lexer.TokenOpMod:    precMultiplicative,
	lexer.TokenOpAdd:    precAdditive,
	lexer.TokenOpSub:    precAdditive,
	lexer.TokenOpShl:    precShift,
	lexer.TokenOpShr:    precShift,
	lexer.TokenOpBitAnd: precBitwise,
	lexer.TokenOpBitOr:  precBitwise,
	lexer.TokenOpLeq:    precComparison,
	lexer.TokenOpLt:     precComparison,
	lexer.TokenOpGeq:    precComparison,
	lexer.TokenOpGt:     precComparison,
	lexer.TokenOpEq:     precComparison,
	lexer.TokenOpNe:     precComparison,
	lexer.TokenWordAnd:  precLogical,
	lexer.TokenWordOr:   precLogical,
	lexer.TokenOpAssign: precAssign,
}

// binaryOps maps a token kind directly to the ast.BinaryOp it produces.
// TokenColon is handled separately by parseCast, not through this table.
var binaryOps = map[lexer.TokenKind]ast.BinaryOp{
	lexer.TokenOpMul:    ast.Mul,
	lexer.TokenOpDiv:    ast.Div,
	lexer.TokenOpMod:    ast.Mod,
	lexer.TokenOpAdd:    ast.Add,
	lexer.TokenOpSub:    ast.Sub,
	lexer.TokenOpShl:    ast.Shl,
	lexer.TokenOpShr:    ast.Shr,
	lexer.TokenOpBitAnd: ast.BitAnd,
	lexer.TokenOpBitOr:  ast.BitOr,
	lexer.TokenOpLeq:    ast.Leq,
	lexer.TokenOpLt:     ast.Lt,
	lexer.TokenOpGeq:    ast.Geq,
	lexer.TokenOpGt:     ast.Gt,
	lexer.TokenOpEq:     ast.Eq,
	lexer.TokenOpNe:     ast.Ne,
	lexer.TokenWordAnd:  ast.And,
	lexer.TokenWordOr:   ast.Or,
	lexer.TokenOpAssign: ast.Assign,
}

// precedenceOf reports kind's binding power, or precLowest if kind
// cannot continue an expression.
func precedenceOf(kind lexer.TokenKind) int {
	if p, ok := binaryPrecedence[kind]; ok {
		return p
	}
	return precLowest
}
