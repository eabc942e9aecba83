package ast

import (
	"testing"

	"github.com/pontaoski/lox/runtime"
	"github.com/pontaoski/lox/types"
)

func tok(kind types.TokenKind, lexeme string) types.Token {
	return types.Token{Kind: kind, Lexeme: lexeme, Line: 1}
}

func TestFormat(t *testing.T) {
	expr := Binary{
		Left: Unary{
			Operator: tok(types.MINUS, "-"),
			Right:    Literal{runtime.Number(123)},
		},
		Operator: tok(types.STAR, "*"),
		Right:    Grouping{Literal{runtime.Number(45.67)}},
	}

	if got := Format(expr); got != "(* (- 123) (group 45.67))" {
		t.Fatalf("got %s", got)
	}
}

func TestFormatVariables(t *testing.T) {
	expr := Assign{
		Name:  tok(types.IDENT, "a"),
		Value: Binary{Variable{tok(types.IDENT, "b")}, tok(types.PLUS, "+"), Literal{runtime.String("s")}},
	}

	if got := Format(expr); got != "(assign a (+ (var b) s))" {
		t.Fatalf("got %s", got)
	}
}

func TestFormatStmt(t *testing.T) {
	cases := []struct {
		stmt Stmt
		want string
	}{
		{Print{Literal{runtime.Nil{}}}, "(print nil)"},
		{Expression{Literal{runtime.Bool(true)}}, "(; true)"},
		{Var{Name: tok(types.IDENT, "x")}, "(var x)"},
		{Var{Name: tok(types.IDENT, "x"), Initializer: Literal{runtime.Number(2.5)}}, "(var x 2.5)"},
		{
			Block{[]Stmt{
				Var{Name: tok(types.IDENT, "y")},
				Print{Variable{tok(types.IDENT, "y")}},
			}},
			"(block (var y) (print (var y)))",
		},
	}

	for _, c := range cases {
		if got := FormatStmt(c.stmt); got != c.want {
			t.Errorf("got %s, want %s", got, c.want)
		}
	}
}
