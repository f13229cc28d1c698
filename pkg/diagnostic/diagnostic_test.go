package diagnostic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zoid-lang/zoidc/internal/location"
)

func TestErrorSeverityString(t *testing.T) {
	if Error.String() != "error" {
		t.Fatalf("expected %q, got %q", "error", Error.String())
	}
	if Warning.String() != "warning" {
		t.Fatalf("expected %q, got %q", "warning", Warning.String())
	}
	if Info.String() != "info" {
		t.Fatalf("expected %q, got %q", "info", Info.String())
	}
}

func TestErrorCodeString(t *testing.T) {
	if UnexpectedToken.String() != "E0002" {
		t.Fatalf("expected E0002, got %s", UnexpectedToken.String())
	}
}

func TestRenderIncludesHeaderArrowAndCaret(t *testing.T) {
	source := "fn f() {\n    retrun x;\n}\n"
	loc := location.New("main.zoid", 2, 5, 13, 19)
	d := Errorf(UnexpectedToken, loc, source, "unexpected token %q", "retrun")

	var buf bytes.Buffer
	d.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "error[E0002]") {
		t.Fatalf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "--> main.zoid:2:5") {
		t.Fatalf("missing arrow line, got:\n%s", out)
	}
	if !strings.Contains(out, "retrun x;") {
		t.Fatalf("missing target source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret run, got:\n%s", out)
	}
}

func TestRenderClampsContextAtFileBoundaries(t *testing.T) {
	source := "fn f();\n"
	loc := location.New("main.zoid", 1, 1, 0, 2)
	d := Errorf(UnexpectedToken, loc, source, "boom")

	var buf bytes.Buffer
	d.Render(&buf)
	out := buf.String()

	if !strings.Contains(out, "1 | fn f();") {
		t.Fatalf("expected the single source line rendered, got:\n%s", out)
	}
}
