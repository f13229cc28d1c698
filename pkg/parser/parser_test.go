package parser

import (
	"testing"

	"github.com/zoid-lang/zoidc/internal/arena"
	"github.com/zoid-lang/zoidc/internal/ast"
)

func parseProgram(t *testing.T, source string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(arena.New(), "test.zoid", source)
	prog := p.Parse()
	return prog, p
}

func requireNoErrors(t *testing.T, p *Parser) {
	t.Helper()
	if p.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", p.Errors())
	}
}

func TestParseSimpleFunction(t *testing.T) {
	prog, p := parseProgram(t, `fn f(x: i32): i32 { return x; }`)
	requireNoErrors(t, p)
	if len(prog.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(prog.Items))
	}
	fn, ok := prog.Items[0].(*ast.Function)
	if !ok {
		t.Fatalf("expected *ast.Function, got %T", prog.Items[0])
	}
	if fn.Name != "f" || len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}
}

// S2 — operator table: `a + b * c` parses as Binary(+, a, Binary(*, b, c)).
func TestOperatorPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { return a + b * c; }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	add, ok := ret.Value.(*ast.Binary)
	if !ok || add.Op != ast.Add {
		t.Fatalf("expected outer Add, got %#v", ret.Value)
	}
	mul, ok := add.RHS.(*ast.Binary)
	if !ok || mul.Op != ast.Mul {
		t.Fatalf("expected inner Mul on the RHS, got %#v", add.RHS)
	}
}

func TestOperatorPrecedenceIsLeftAssociative(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { return a - b - c; }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	outer, ok := ret.Value.(*ast.Binary)
	if !ok || outer.Op != ast.Sub {
		t.Fatalf("expected outer Sub, got %#v", ret.Value)
	}
	if _, ok := outer.LHS.(*ast.Binary); !ok {
		t.Fatalf("expected left-leaning tree, got LHS %#v", outer.LHS)
	}
	if _, ok := outer.RHS.(*ast.Variable); !ok {
		t.Fatalf("expected bare variable RHS for left-associativity, got %#v", outer.RHS)
	}
}

// S3 — extern: variadic printf prototype.
func TestParseExternVariadic(t *testing.T) {
	prog, p := parseProgram(t, `extern "C" fn printf(fmt: *const char, ...): i32;`)
	requireNoErrors(t, p)
	ext, ok := prog.Items[0].(*ast.ExternFunction)
	if !ok {
		t.Fatalf("expected *ast.ExternFunction, got %T", prog.Items[0])
	}
	if ext.Name != "printf" || ext.ABI != "C" || !ext.Variadic {
		t.Fatalf("unexpected extern shape: %+v", ext)
	}
	if len(ext.ParamTypes) != 1 {
		t.Fatalf("expected 1 named param type, got %d", len(ext.ParamTypes))
	}
	ptr, ok := ext.ParamTypes[0].(*ast.PointerType)
	if !ok {
		t.Fatalf("expected pointer param type, got %T", ext.ParamTypes[0])
	}
	if _, ok := ptr.Inner.(*ast.ConstType); !ok {
		t.Fatalf("expected const inner type, got %T", ptr.Inner)
	}
	if ext.Return.String() != "i32" {
		t.Fatalf("expected i32 return, got %s", ext.Return)
	}
}

// S4 — let with no declared type still parses; type inference is
// pkg/lowering's job, not the parser's.
func TestParseLetWithoutDeclaredType(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { let x = 1; return x; }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	decl, ok := fn.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclaration, got %T", fn.Body[0])
	}
	if decl.Name != "x" || decl.Type != nil {
		t.Fatalf("unexpected let shape: %+v", decl)
	}
	if lit, ok := decl.Value.(*ast.IntegerLit); !ok || lit.Text != "1" {
		t.Fatalf("expected integer literal 1, got %#v", decl.Value)
	}
}

// S5 — cast: `(x : i64)` parses to Cast(I64, Variable("x")).
func TestParseCastExpression(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i64 { return (x : i64); }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	cast, ok := ret.Value.(*ast.Cast)
	if !ok {
		t.Fatalf("expected *ast.Cast, got %T", ret.Value)
	}
	if cast.Type.String() != "i64" {
		t.Fatalf("expected cast to i64, got %s", cast.Type)
	}
	if v, ok := cast.X.(*ast.Variable); !ok || v.Name != "x" {
		t.Fatalf("expected cast of variable x, got %#v", cast.X)
	}
}

func TestParseCallExpression(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { return g(1, 2); }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", ret.Value)
	}
	if callee, ok := call.Callee.(*ast.Variable); !ok || callee.Name != "g" {
		t.Fatalf("expected callee g, got %#v", call.Callee)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	prog, p := parseProgram(t, `
		fn f(): i32 {
			if a > b {
				return a;
			} else {
				return b;
			}
			while a > 0 {
				a = a - 1;
			}
			return a;
		}
	`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ifStmt, ok := fn.Body[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", fn.Body[0])
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected an else branch")
	}
	if cond, ok := ifStmt.Cond.(*ast.Binary); !ok || cond.Op != ast.Gt {
		t.Fatalf("expected Gt condition, got %#v", ifStmt.Cond)
	}
	if _, ok := fn.Body[1].(*ast.While); !ok {
		t.Fatalf("expected *ast.While, got %T", fn.Body[1])
	}
}

func TestParseUnaryAndPostfixOperators(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { return (-x).&; }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body[0].(*ast.Return)
	post, ok := ret.Value.(*ast.UnaryPostfix)
	if !ok || post.Op != ast.AddressOf {
		t.Fatalf("expected address-of postfix, got %#v", ret.Value)
	}
	if _, ok := post.X.(*ast.UnaryPrefix); !ok {
		t.Fatalf("expected negated prefix inside parens, got %#v", post.X)
	}
}

func TestParseAssignmentIsLowestPrecedenceAndRightLeaning(t *testing.T) {
	prog, p := parseProgram(t, `fn f(): i32 { a = b = c; return a; }`)
	requireNoErrors(t, p)
	fn := prog.Items[0].(*ast.Function)
	stmt, ok := fn.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected expr statement, got %T", fn.Body[0])
	}
	outer, ok := stmt.X.(*ast.Binary)
	if !ok || outer.Op != ast.Assign {
		t.Fatalf("expected outer Assign, got %#v", stmt.X)
	}
	if _, ok := outer.RHS.(*ast.Binary); !ok {
		t.Fatalf("expected nested Assign on the RHS, got %#v", outer.RHS)
	}
}

func TestUnexpectedTokenRecordsDiagnosticAndRecovers(t *testing.T) {
	prog, p := parseProgram(t, `struct Foo {} fn f(): i32 { return 1; }`)
	if !p.HasErrors() {
		t.Fatalf("expected a diagnostic for the unsupported top-level item")
	}
	if len(prog.Items) != 1 {
		t.Fatalf("expected recovery to still find the trailing function, got %d items", len(prog.Items))
	}
	if _, ok := prog.Items[0].(*ast.Function); !ok {
		t.Fatalf("expected *ast.Function after recovery, got %T", prog.Items[0])
	}
}

func TestMissingSemicolonRecordsUnexpectedTokenDiagnostic(t *testing.T) {
	_, p := parseProgram(t, `fn f(): i32 { return 1 }`)
	if !p.HasErrors() {
		t.Fatalf("expected a diagnostic for the missing semicolon")
	}
}

func TestUnexpectedEOFDuringExpression(t *testing.T) {
	_, p := parseProgram(t, `fn f(): i32 { return`)
	if !p.HasErrors() {
		t.Fatalf("expected a diagnostic for truncated input")
	}
}

func TestParseGlobalLetAndImports(t *testing.T) {
	prog, p := parseProgram(t, "import \"std\";\nimportc \"stdio.h\";\nlet answer: i32 = 42;\n")
	requireNoErrors(t, p)
	if len(prog.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(prog.Items))
	}
	if _, ok := prog.Items[0].(*ast.Import); !ok {
		t.Fatalf("expected *ast.Import, got %T", prog.Items[0])
	}
	if _, ok := prog.Items[1].(*ast.ImportC); !ok {
		t.Fatalf("expected *ast.ImportC, got %T", prog.Items[1])
	}
	global, ok := prog.Items[2].(*ast.VariableDeclarationTop)
	if !ok {
		t.Fatalf("expected *ast.VariableDeclarationTop, got %T", prog.Items[2])
	}
	if global.Name != "answer" || global.Type == nil || global.Type.String() != "i32" {
		t.Fatalf("unexpected global shape: %+v", global)
	}
}
