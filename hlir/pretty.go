package hlir

import (
	"fmt"
	"strings"
)

// PrettyStmt renders a statement as a single-line diagnostic string. It is
// never used for anything but human-readable output; pretty-printing is
// explicitly non-semantic.
func PrettyStmt(s Stmt) string {
	switch n := s.(type) {
	case *Let:
		return fmt.Sprintf("let %s = %s", n.Name, PrettyExpr(n.Value))
	case *Assign:
		return fmt.Sprintf("%s = %s", prettyLValue(n.Target), PrettyExpr(n.Value))
	case *DerefAssign:
		return fmt.Sprintf("*%s = %s", PrettyExpr(n.Target), PrettyExpr(n.Value))
	case *ExprStmt:
		return PrettyExpr(n.X)
	case *Print:
		return fmt.Sprintf("print(%s)", prettyExprList(n.Args))
	case *Return:
		if n.Value == nil {
			return "return"
		}
		return fmt.Sprintf("return %s", PrettyExpr(n.Value))
	case *If:
		return fmt.Sprintf("if (%s)", PrettyExpr(n.Cond))
	case *While:
		return fmt.Sprintf("while (%s)", PrettyExpr(n.Cond))
	case *Break:
		return "break"
	case *Continue:
		return "continue"
	case *FunctionDecl:
		return fmt.Sprintf("fun %s(%s)", n.Name, strings.Join(n.Params, ", "))
	case *StructDecl:
		return fmt.Sprintf("struct %s", n.Name)
	case *Block:
		return "block"
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

func prettyLValue(l LValue) string {
	switch n := l.(type) {
	case *VarLValue:
		return n.Name
	case *DerefLValue:
		return "*" + PrettyExpr(n.Ptr)
	case *FieldLValue:
		return PrettyExpr(n.Object) + "." + n.Field
	case *IndexLValue:
		return fmt.Sprintf("%s[%s]", PrettyExpr(n.Array), PrettyExpr(n.Index))
	default:
		return fmt.Sprintf("<%T>", l)
	}
}

// PrettyExpr renders an expression as a single-line diagnostic string.
func PrettyExpr(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch n := e.(type) {
	case *VarRef:
		return n.Name
	case *Literal:
		return prettyLiteral(n)
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", PrettyExpr(n.Left), n.Op, PrettyExpr(n.Right))
	case *Conditional:
		return fmt.Sprintf("(%s ? %s : %s)", PrettyExpr(n.Cond), PrettyExpr(n.Then), PrettyExpr(n.Else))
	case *Call:
		return fmt.Sprintf("%s(%s)", PrettyExpr(n.Callee), prettyExprList(n.Args))
	case *Record:
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, PrettyExpr(f.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *Array:
		return "[" + prettyExprList(n.Elements) + "]"
	case *Index:
		return fmt.Sprintf("%s[%s]", PrettyExpr(n.Array), PrettyExpr(n.Idx))
	case *Field:
		return fmt.Sprintf("%s.%s", PrettyExpr(n.Object), n.Name)
	case *Ref:
		return "&" + PrettyExpr(n.Operand)
	case *Deref:
		return "*" + PrettyExpr(n.Operand)
	case *Paren:
		return "(" + PrettyExpr(n.Inner) + ")"
	case *InlinedFunction:
		return fmt.Sprintf("fun(%s) {...}", strings.Join(n.Params, ", "))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

func prettyLiteral(n *Literal) string {
	switch n.Kind {
	case LiteralNumber:
		return fmt.Sprintf("%g", n.Num)
	case LiteralBool:
		return fmt.Sprintf("%t", n.Bool)
	case LiteralString:
		return fmt.Sprintf("%q", n.Str)
	case LiteralNone:
		return "none"
	default:
		return "<literal>"
	}
}

func prettyExprList(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = PrettyExpr(e)
	}
	return strings.Join(parts, ", ")
}
