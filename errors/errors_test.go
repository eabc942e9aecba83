package errors

import (
	"bytes"
	"testing"

	"github.com/pontaoski/lox/types"
)

func TestAt(t *testing.T) {
	semi := types.Token{Kind: types.SEMICOLON, Lexeme: ";", Line: 3}
	if got := At(semi, "Expect expression.").Error(); got != "[line 3] Error at ';': Expect expression." {
		t.Fatalf("got %q", got)
	}

	eof := types.Token{Kind: types.EOF, Line: 4}
	if got := At(eof, "Expect ';' after value.").Error(); got != "[line 4] Error at end: Expect ';' after value." {
		t.Fatalf("got %q", got)
	}
}

func TestListErr(t *testing.T) {
	var empty List
	if empty.Err() != nil {
		t.Fatalf("empty list should be a nil error")
	}

	list := List{{Line: 1, Message: "a"}, {Line: 2, Message: "b"}}
	if got := list.Err().Error(); got != "[line 1] Error: a\n[line 2] Error: b" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterReporter(&buf, false)

	err := ReportAll(r, List{{Line: 1, Message: "Unexpected character."}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HadError() || r.HadRuntimeError() {
		t.Fatalf("wrong flags after syntax error")
	}

	err = ReportAll(r, RuntimeError{
		Token:   types.Token{Kind: types.MINUS, Lexeme: "-", Line: 9},
		Message: "Operand must be a number.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HadRuntimeError() {
		t.Fatalf("runtime flag not set")
	}

	want := "[line 1] Error: Unexpected character.\nOperand must be a number.\n[line 9]\n"
	if buf.String() != want {
		t.Fatalf("got %q", buf.String())
	}

	r.Reset()
	if r.HadError() || r.HadRuntimeError() {
		t.Fatalf("flags not reset")
	}
}

func TestReportAllPassesOtherErrors(t *testing.T) {
	r := NewWriterReporter(&bytes.Buffer{}, false)
	other := List{}.Err()
	if ReportAll(r, other) != nil {
		t.Fatalf("nil should stay nil")
	}

	type custom struct{ error }
	if ReportAll(r, custom{}) == nil {
		t.Fatalf("unknown errors should be returned")
	}
	if r.HadError() {
		t.Fatalf("unknown errors are not diagnostics")
	}
}
