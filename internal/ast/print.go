package ast

import (
	"fmt"
	"strings"
)

// PrettyPrint renders p as a canonical, indented textual form.
func (p *Program) PrettyPrint() string {
	var b strings.Builder
	for _, item := range p.Items {
		writeTopLevel(&b, item, 0)
		b.WriteByte('\n')
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func writeTopLevel(b *strings.Builder, item TopLevel, depth int) {
	indent(b, depth)
	switch t := item.(type) {
	case *Import:
		fmt.Fprintf(b, "import %q;", t.Path)
	case *ImportC:
		fmt.Fprintf(b, "importc %q;", t.Path)
	case *VariableDeclarationTop:
		fmt.Fprintf(b, "let %s", t.Name)
		if t.Type != nil {
			fmt.Fprintf(b, ": %s", t.Type.String())
		}
		fmt.Fprintf(b, " = %s;", writeExpr(t.Value))
	case *ExternFunction:
		fmt.Fprintf(b, "extern %q fn %s(", t.ABI, t.Name)
		writeExternParams(b, t)
		fmt.Fprintf(b, "): %s;", t.Return.String())
	case *Function:
		fmt.Fprintf(b, "fn %s(", t.Name)
		for i, param := range t.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s: %s", param.Name, param.Type.String())
		}
		if t.Variadic {
			if len(t.Params) > 0 {
				b.WriteString(", ")
			}
			b.WriteString("...")
		}
		fmt.Fprintf(b, "): %s {\n", t.Return.String())
		for _, stmt := range t.Body {
			writeStmt(b, stmt, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "<unknown top-level %T>", item)
	}
}

func writeExternParams(b *strings.Builder, t *ExternFunction) {
	for i, ty := range t.ParamTypes {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(t.ParamNames) && t.ParamNames[i] != "" {
			fmt.Fprintf(b, "%s: %s", t.ParamNames[i], ty.String())
		} else {
			b.WriteString(ty.String())
		}
	}
	if t.Variadic {
		if len(t.ParamTypes) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
}

func writeStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch st := s.(type) {
	case *VariableDeclaration:
		fmt.Fprintf(b, "let %s", st.Name)
		if st.Type != nil {
			fmt.Fprintf(b, ": %s", st.Type.String())
		}
		fmt.Fprintf(b, " = %s;", writeExpr(st.Value))
	case *ExprStmt:
		fmt.Fprintf(b, "%s;", writeExpr(st.X))
	case *Return:
		if st.Value != nil {
			fmt.Fprintf(b, "return %s;", writeExpr(st.Value))
		} else {
			b.WriteString("return;")
		}
	case *If:
		fmt.Fprintf(b, "if %s ", writeExpr(st.Cond))
		b.WriteString(strings.TrimLeft(stmtBody(st.Then, depth), " "))
		if st.Else != nil {
			b.WriteString(" else ")
			b.WriteString(strings.TrimLeft(stmtBody(st.Else, depth), " "))
		}
	case *While:
		fmt.Fprintf(b, "while %s ", writeExpr(st.Cond))
		b.WriteString(strings.TrimLeft(stmtBody(st.Body, depth), " "))
	case *Block:
		b.WriteString("{\n")
		for _, inner := range st.Stmts {
			writeStmt(b, inner, depth+1)
			b.WriteByte('\n')
		}
		indent(b, depth)
		b.WriteString("}")
	case *Break:
		b.WriteString("break;")
	case *Continue:
		b.WriteString("continue;")
	default:
		fmt.Fprintf(b, "<unknown stmt %T>", s)
	}
}

func stmtBody(s Stmt, depth int) string {
	var b strings.Builder
	writeStmt(&b, s, depth)
	return b.String()
}

func writeExpr(e Expr) string {
	switch x := e.(type) {
	case *Variable:
		return x.Name
	case *StringLit:
		return fmt.Sprintf("%q", x.Value)
	case *CStringLit:
		return fmt.Sprintf("c%q", x.Value)
	case *CharLit:
		return fmt.Sprintf("'%s'", x.Value)
	case *IntegerLit:
		return x.Text
	case *FloatLit:
		return x.Text
	case *BoolLit:
		if x.Value {
			return "true"
		}
		return "false"
	case *UnaryPrefix:
		return fmt.Sprintf("(%s%s)", x.Op, writeExpr(x.X))
	case *UnaryPostfix:
		return fmt.Sprintf("(%s%s)", writeExpr(x.X), x.Op)
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", writeExpr(x.LHS), x.Op, writeExpr(x.RHS))
	case *Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = writeExpr(a)
		}
		return fmt.Sprintf("%s(%s)", writeExpr(x.Callee), strings.Join(args, ", "))
	case *Index:
		return fmt.Sprintf("%s[%s]", writeExpr(x.LHS), writeExpr(x.RHS))
	case *Cast:
		return fmt.Sprintf("(%s : %s)", writeExpr(x.X), x.Type.String())
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}
