package lexer

import (
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

func kindsOf(tokens []types.Token) []types.TokenKind {
	var ret []types.TokenKind
	for _, tok := range tokens {
		ret = append(ret, tok.Kind)
	}
	return ret
}

func sameKinds(a, b []types.TokenKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexer(t *testing.T) {
	tokens, err := NewLexer("var answer = (1 + 2) * 3; // comment\nprint answer >= 9 != !true;").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []types.TokenKind{
		types.VAR, types.IDENT, types.EQUAL, types.LPAREN, types.NUMBER, types.PLUS, types.NUMBER,
		types.RPAREN, types.STAR, types.NUMBER, types.SEMICOLON,
		types.PRINT, types.IDENT, types.GREATER_EQUAL, types.NUMBER, types.BANG_EQUAL, types.BANG,
		types.TRUE, types.SEMICOLON, types.EOF,
	}
	if got := kindsOf(tokens); !sameKinds(got, expected) {
		t.Fatalf("got %s", repr.String(got))
	}
	if tokens[11].Line != 2 {
		t.Fatalf("print should be on line 2, got %d", tokens[11].Line)
	}
	if last := tokens[len(tokens)-1]; last.Lexeme != "" {
		t.Fatalf("EOF lexeme should be empty, got %q", last.Lexeme)
	}
}

func TestNumbers(t *testing.T) {
	cases := map[string]float64{
		"0":       0,
		"123":     123,
		"45.67":   45.67,
		"007":     7,
		"3.14159": 3.14159,
	}

	for src, want := range cases {
		tokens, err := NewLexer(src).ScanTokens()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", src, err)
		}
		if len(tokens) != 2 || tokens[0].Kind != types.NUMBER {
			t.Fatalf("%s: got %s", src, repr.String(tokens))
		}
		if tokens[0].Literal.(float64) != want {
			t.Fatalf("%s: literal %v, want %v", src, tokens[0].Literal, want)
		}
	}
}

func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	tokens, err := NewLexer("1.").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []types.TokenKind{types.NUMBER, types.DOT, types.EOF}
	if got := kindsOf(tokens); !sameKinds(got, expected) {
		t.Fatalf("got %s", repr.String(got))
	}
	if tokens[0].Lexeme != "1" {
		t.Fatalf("lexeme %q", tokens[0].Lexeme)
	}
}

func TestStrings(t *testing.T) {
	tokens, err := NewLexer(`"hello \n world" ""`).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Literal.(string) != `hello \n world` {
		t.Fatalf("got %q", tokens[0].Literal)
	}
	if tokens[1].Kind != types.STRING || tokens[1].Literal.(string) != "" {
		t.Fatalf("got %s", repr.String(tokens[1]))
	}
}

func TestMultilineString(t *testing.T) {
	tokens, err := NewLexer("\"a\nb\"\nx").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Literal.(string) != "a\nb" || tokens[0].Line != 2 {
		t.Fatalf("got %s", repr.String(tokens[0]))
	}
	if tokens[1].Line != 3 {
		t.Fatalf("identifier should be on line 3, got %d", tokens[1].Line)
	}
}

func TestUnterminatedString(t *testing.T) {
	tokens, err := NewLexer("\"abc").ScanTokens()
	list, ok := err.(errors.List)
	if !ok || len(list) != 1 || list[0].Message != "Unterminated string." {
		t.Fatalf("got %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != types.EOF {
		t.Fatalf("no token expected before EOF, got %s", repr.String(tokens))
	}
}

func TestUnexpectedCharactersAccumulate(t *testing.T) {
	tokens, err := NewLexer("a @ b\n# c").ScanTokens()
	list, ok := err.(errors.List)
	if !ok || len(list) != 2 {
		t.Fatalf("expected two errors, got %v", err)
	}
	if list[0].Line != 1 || list[1].Line != 2 {
		t.Fatalf("wrong lines: %s", repr.String(list))
	}
	if list[0].Error() != "[line 1] Error: Unexpected character." {
		t.Fatalf("got %q", list[0].Error())
	}

	expected := []types.TokenKind{types.IDENT, types.IDENT, types.IDENT, types.EOF}
	if got := kindsOf(tokens); !sameKinds(got, expected) {
		t.Fatalf("got %s", repr.String(got))
	}
}

func TestKeywords(t *testing.T) {
	for word, kind := range types.Keywords {
		tokens, err := NewLexer(word).ScanTokens()
		if err != nil {
			t.Fatalf("%s: %v", word, err)
		}
		if tokens[0].Kind != kind {
			t.Fatalf("%s: got %s", word, tokens[0].Kind)
		}
	}

	tokens, _ := NewLexer("classy _var9").ScanTokens()
	if tokens[0].Kind != types.IDENT || tokens[1].Kind != types.IDENT {
		t.Fatalf("got %s", repr.String(tokens))
	}
}

func TestSlashAndComment(t *testing.T) {
	tokens, err := NewLexer("4 / 2 // 8 / 4").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []types.TokenKind{types.NUMBER, types.SLASH, types.NUMBER, types.EOF}
	if got := kindsOf(tokens); !sameKinds(got, expected) {
		t.Fatalf("got %s", repr.String(got))
	}
}

func TestTokenString(t *testing.T) {
	tokens, _ := NewLexer(`123 "hi" x`).ScanTokens()
	want := []string{"NUMBER 123 123", `STRING "hi" hi`, "IDENTIFIER x null", "EOF  null"}
	for i, w := range want {
		if got := tokens[i].String(); got != w {
			t.Fatalf("token %d: got %q, want %q", i, got, w)
		}
	}
}
