package lowering

import (
	"testing"

	"github.com/zoid-lang/zoidc/internal/arena"
	"github.com/zoid-lang/zoidc/internal/ast"
	"github.com/zoid-lang/zoidc/internal/hlir"
	"github.com/zoid-lang/zoidc/pkg/parser"
)

func lowerSource(t *testing.T, source string) *hlir.Program {
	t.Helper()
	p := parser.New(arena.New(), "test.zoid", source)
	prog := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", p.Errors())
	}
	return New(prog, source).Lower()
}

// S4 — let with inference: `x` and the literal `1` both get type i32.
func TestLetWithoutAnnotationInfersFromLiteral(t *testing.T) {
	prog := lowerSource(t, `fn f(): i32 { let x = 1; return x; }`)
	fn := prog.Functions[0]
	decl := fn.Body[0].(*hlir.VariableDeclaration)
	if decl.Type.Primitive() != ast.I32 {
		t.Fatalf("expected x: i32, got %s", decl.Type)
	}
	lit := decl.Value.(*hlir.IntegerLit)
	if lit.Type().Primitive() != ast.I32 {
		t.Fatalf("expected literal 1: i32, got %s", lit.Type())
	}
}

func TestLetWithExplicitTypeConstrainsLiteral(t *testing.T) {
	prog := lowerSource(t, `fn f(): i64 { let x: i64 = 1; return x; }`)
	fn := prog.Functions[0]
	decl := fn.Body[0].(*hlir.VariableDeclaration)
	if decl.Type.Primitive() != ast.I64 {
		t.Fatalf("expected x: i64, got %s", decl.Type)
	}
	if decl.Value.Type().Primitive() != ast.I64 {
		t.Fatalf("expected literal 1: i64 (unified through x), got %s", decl.Value.Type())
	}
}

func TestBinaryOperandsUnifyAndResultSharesType(t *testing.T) {
	prog := lowerSource(t, `fn f(): i32 { let x: i32 = 1; let y = x + 2; return y; }`)
	fn := prog.Functions[0]
	y := fn.Body[1].(*hlir.VariableDeclaration)
	if y.Type.Primitive() != ast.I32 {
		t.Fatalf("expected y: i32, got %s", y.Type)
	}
	bin := y.Value.(*hlir.Binary)
	if bin.Type().Primitive() != ast.I32 {
		t.Fatalf("expected binary result i32, got %s", bin.Type())
	}
}

func TestComparisonAlwaysProducesBoolRegardlessOfOperandType(t *testing.T) {
	prog := lowerSource(t, `fn f(a: i64, b: i64): bool { return a < b; }`)
	fn := prog.Functions[0]
	ret := fn.Body[0].(*hlir.Return)
	cmp := ret.Value.(*hlir.Binary)
	if cmp.Op != ast.Lt {
		t.Fatalf("expected Lt, got %s", cmp.Op)
	}
	if cmp.Type().Primitive() != ast.Bool {
		t.Fatalf("expected comparison result bool, got %s", cmp.Type())
	}
}

func TestIfConditionMustBeBool(t *testing.T) {
	prog := lowerSource(t, `
		fn f(): i32 {
			if true {
				return 1;
			} else {
				return 2;
			}
		}
	`)
	fn := prog.Functions[0]
	ifStmt := fn.Body[0].(*hlir.If)
	if ifStmt.Cond.Type().Primitive() != ast.Bool {
		t.Fatalf("expected bool condition, got %s", ifStmt.Cond.Type())
	}
}

func TestCallResolvesReturnTypeFromPrototype(t *testing.T) {
	prog := lowerSource(t, `
		fn helper(): i32 { return 1; }
		fn f(): i32 { return helper(); }
	`)
	var f *hlir.Function
	for _, fn := range prog.Functions {
		if fn.Name == "f" {
			f = fn
		}
	}
	if f == nil {
		t.Fatalf("expected a function named f")
	}
	ret := f.Body[0].(*hlir.Return)
	call := ret.Value.(*hlir.Call)
	if call.Type().Primitive() != ast.I32 {
		t.Fatalf("expected call result i32, got %s", call.Type())
	}
}

func TestForwardReferencedFunctionResolves(t *testing.T) {
	prog := lowerSource(t, `
		fn f(): i32 { return helper(); }
		fn helper(): i32 { return 1; }
	`)
	var f *hlir.Function
	for _, fn := range prog.Functions {
		if fn.Name == "f" {
			f = fn
		}
	}
	ret := f.Body[0].(*hlir.Return)
	call := ret.Value.(*hlir.Call)
	if call.Type().Primitive() != ast.I32 {
		t.Fatalf("expected forward-referenced call result i32, got %s", call.Type())
	}
}

func TestCastProducesItsDeclaredTypeIndependentOfOperand(t *testing.T) {
	prog := lowerSource(t, `fn f(): i64 { let x: i32 = 1; return (x : i64); }`)
	fn := prog.Functions[0]
	ret := fn.Body[1].(*hlir.Return)
	cast := ret.Value.(*hlir.Cast)
	if cast.Type().Primitive() != ast.I64 {
		t.Fatalf("expected cast result i64, got %s", cast.Type())
	}
}

func TestUnconstrainedFloatLiteralDefaultsToF64(t *testing.T) {
	prog := lowerSource(t, `fn f(): void { let x = 1.5; return; }`)
	fn := prog.Functions[0]
	decl := fn.Body[0].(*hlir.VariableDeclaration)
	if decl.Type.Primitive() != ast.F64 {
		t.Fatalf("expected unconstrained float literal to default to f64, got %s", decl.Type)
	}
}

func TestBareReturnRequiresVoidFunction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a bare return in a non-void function")
		}
	}()
	lowerSource(t, `fn f(): i32 { return; }`)
}

func TestMismatchedUnificationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for an unresolvable type conflict")
		}
	}()
	lowerSource(t, `fn f(): i32 { let x: i32 = 1; let y: bool = x; return y; }`)
}

func TestNoResidualTypeVariablesAfterLowering(t *testing.T) {
	prog := lowerSource(t, `
		fn f(a: i32, b: i32): i32 {
			let x = a + b;
			while x > 0 {
				x = x - 1;
			}
			return x;
		}
	`)
	fn := prog.Functions[0]
	walkAndAssertResolved(t, fn.Body)
}

func walkAndAssertResolved(t *testing.T, stmts []hlir.Stmt) {
	t.Helper()
	for _, s := range stmts {
		switch st := s.(type) {
		case *hlir.VariableDeclaration:
			assertResolved(t, st.Type)
			assertResolved(t, st.Value.Type())
		case *hlir.ExprStmt:
			assertResolved(t, st.X.Type())
		case *hlir.Return:
			if st.Value != nil {
				assertResolved(t, st.Value.Type())
			}
		case *hlir.If:
			assertResolved(t, st.Cond.Type())
			walkAndAssertResolved(t, []hlir.Stmt{st.Then})
			if st.Else != nil {
				walkAndAssertResolved(t, []hlir.Stmt{st.Else})
			}
		case *hlir.While:
			assertResolved(t, st.Cond.Type())
			walkAndAssertResolved(t, []hlir.Stmt{st.Body})
		case *hlir.Block:
			walkAndAssertResolved(t, st.Stmts)
		}
	}
}

func assertResolved(t *testing.T, ty hlir.HLIRType) {
	t.Helper()
	if ty.IsVar() {
		t.Fatalf("expected no residual type variable, got %s", ty)
	}
}
