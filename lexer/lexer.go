package lexer

import (
	"strconv"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lox", "lexer")

type Lexer struct {
	source  []rune
	start   int
	current int
	line    int
	errs    errors.List
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		source: []rune(source),
		line:   1,
	}
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) advance() rune {
	r := l.source[l.current]
	l.current++
	return r
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string {
	return string(l.source[l.start:l.current])
}

func (l *Lexer) kinded(t types.TokenKind) types.Token {
	return l.literal(t, nil)
}

func (l *Lexer) literal(t types.TokenKind, lit interface{}) types.Token {
	return types.Token{
		Kind:    t,
		Lexeme:  l.lexeme(),
		Literal: lit,
		Line:    l.line,
	}
}

func (l *Lexer) errorf(message string) {
	plog.Debugf("line %d: %s", l.line, message)
	l.errs = append(l.errs, errors.SyntaxError{
		Line:    l.line,
		Message: message,
	})
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func firstChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

func (l *Lexer) lexIdent() types.Token {
	for otherChar(l.peek()) {
		l.advance()
	}

	if kind, ok := types.Keywords[l.lexeme()]; ok {
		return l.kinded(kind)
	}
	return l.kinded(types.IDENT)
}

func (l *Lexer) lexNumber() types.Token {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// literals beyond float64 range become +Inf
	parsed, _ := strconv.ParseFloat(l.lexeme(), 64)
	return l.literal(types.NUMBER, parsed)
}

// lexString should be called with the lexer past the opening quote.
func (l *Lexer) lexString() (types.Token, bool) {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.atEnd() {
		l.errorf("Unterminated string.")
		return types.Token{}, false
	}

	l.advance()

	lit := string(l.source[l.start+1 : l.current-1])
	return l.literal(types.STRING, lit), true
}

var singles = map[rune]types.TokenKind{
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
	',': types.COMMA,
	'.': types.DOT,
	'-': types.MINUS,
	'+': types.PLUS,
	';': types.SEMICOLON,
	'*': types.STAR,
}

// doubles maps a character to the kinds it produces alone and when
// followed by '='.
var doubles = map[rune][2]types.TokenKind{
	'!': {types.BANG, types.BANG_EQUAL},
	'=': {types.EQUAL, types.EQUAL_EQUAL},
	'<': {types.LESS, types.LESS_EQUAL},
	'>': {types.GREATER, types.GREATER_EQUAL},
}

// Lex returns the next token. Once the input is exhausted it keeps
// returning EOF.
func (l *Lexer) Lex() types.Token {
	for !l.atEnd() {
		l.start = l.current
		r := l.advance()

		if kind, ok := singles[r]; ok {
			return l.kinded(kind)
		}
		if kinds, ok := doubles[r]; ok {
			if l.match('=') {
				return l.kinded(kinds[1])
			}
			return l.kinded(kinds[0])
		}

		switch r {
		case '/':
			if !l.match('/') {
				return l.kinded(types.SLASH)
			}
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			continue
		case ' ', '\r', '\t':
			continue
		case '\n':
			l.line++
			continue
		case '"':
			if tok, ok := l.lexString(); ok {
				return tok
			}
			continue
		}

		switch {
		case isDigit(r):
			return l.lexNumber()
		case firstChar(r):
			return l.lexIdent()
		}

		l.errorf("Unexpected character.")
	}

	return types.Token{
		Kind: types.EOF,
		Line: l.line,
	}
}

// ScanTokens lexes the whole source. The result always ends with a single
// EOF token; the error, if any, is an errors.List.
func (l *Lexer) ScanTokens() ([]types.Token, error) {
	var tokens []types.Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			break
		}
	}

	plog.Tracef("scanned %d tokens over %d lines with %d errors", len(tokens), l.line, len(l.errs))
	return tokens, l.errs.Err()
}
