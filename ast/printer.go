package ast

import (
	"fmt"
	"strings"
)

// Format renders expr in parenthesized prefix form, e.g.
// (* (- 123) (group 45.67)).
func Format(expr Expr) string {
	switch v := expr.(type) {
	case Literal:
		if v.Value == nil {
			return "nil"
		}
		return v.Value.String()
	case Grouping:
		return parenthesize("group", v.Expression)
	case Unary:
		return parenthesize(v.Operator.Lexeme, v.Right)
	case Binary:
		return parenthesize(v.Operator.Lexeme, v.Left, v.Right)
	case Variable:
		return fmt.Sprintf("(var %s)", v.Name.Lexeme)
	case Assign:
		return parenthesize("assign "+v.Name.Lexeme, v.Value)
	}

	panic(fmt.Sprintf("unhandled expression %T", expr))
}

// FormatStmt renders a statement in the same style as Format.
func FormatStmt(stmt Stmt) string {
	switch v := stmt.(type) {
	case Expression:
		return parenthesize(";", v.Expression)
	case Print:
		return parenthesize("print", v.Expression)
	case Var:
		if v.Initializer == nil {
			return fmt.Sprintf("(var %s)", v.Name.Lexeme)
		}
		return parenthesize("var "+v.Name.Lexeme, v.Initializer)
	case Block:
		var b strings.Builder
		b.WriteString("(block")
		for _, inner := range v.Statements {
			b.WriteString(" ")
			b.WriteString(FormatStmt(inner))
		}
		b.WriteString(")")
		return b.String()
	}

	panic(fmt.Sprintf("unhandled statement %T", stmt))
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(Format(expr))
	}
	b.WriteString(")")
	return b.String()
}
