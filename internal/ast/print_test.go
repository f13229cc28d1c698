package ast

import (
	"strings"
	"testing"
)

func TestPrettyPrintSimpleFunction(t *testing.T) {
	prog := &Program{
		Items: []TopLevel{
			&Function{
				Name: "f",
				Params: []Param{
					{Name: "x", Type: &PrimitiveType{Kind: I32}},
				},
				Return: &PrimitiveType{Kind: I32},
				Body: []Stmt{
					&VariableDeclaration{Name: "y", Value: &IntegerLit{Text: "1"}},
					&Return{Value: &Variable{Name: "y"}},
				},
			},
		},
	}

	out := prog.PrettyPrint()

	if !strings.Contains(out, "fn f(x: i32): i32 {") {
		t.Fatalf("missing function signature, got:\n%s", out)
	}
	if !strings.Contains(out, "let y = 1;") {
		t.Fatalf("missing let statement, got:\n%s", out)
	}
	if !strings.Contains(out, "return y;") {
		t.Fatalf("missing return statement, got:\n%s", out)
	}
}

func TestPrettyPrintBinaryPrecedenceIsExplicitlyParenthesized(t *testing.T) {
	expr := &Binary{
		Op:  Add,
		LHS: &Variable{Name: "a"},
		RHS: &Binary{Op: Mul, LHS: &Variable{Name: "b"}, RHS: &Variable{Name: "c"}},
	}

	got := writeExpr(expr)
	want := "(a + (b * c))"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPrettyPrintCast(t *testing.T) {
	expr := &Cast{Type: &PrimitiveType{Kind: I64}, X: &Variable{Name: "x"}}

	got := writeExpr(expr)
	want := "(x : i64)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
