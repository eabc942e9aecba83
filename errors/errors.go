package errors

import (
	"fmt"
	"strings"

	"github.com/pontaoski/lox/types"
)

// SyntaxError is reported by the lexer and the parser. Where is empty,
// " at end" or " at '<lexeme>'".
type SyntaxError struct {
	Line    int
	Where   string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// At builds a SyntaxError located at tok.
func At(tok types.Token, message string) SyntaxError {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == types.EOF {
		where = " at end"
	}
	return SyntaxError{
		Line:    tok.Line,
		Where:   where,
		Message: message,
	}
}

type RuntimeError struct {
	Token   types.Token
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// List collects the syntax errors of a single scan or parse pass.
type List []SyntaxError

func (l List) Error() string {
	var msgs []string
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Err returns nil for an empty list so callers can compare against nil.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
