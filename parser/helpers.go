package parser

import (
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

func (p *Parser) peek() types.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() types.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == types.EOF
}

func (p *Parser) advance() types.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind types.TokenKind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...types.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind types.TokenKind, message string) (types.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return types.Token{}, p.error(p.peek(), message)
}

// error records a syntax error at tok and returns it.
func (p *Parser) error(tok types.Token, message string) error {
	err := errors.At(tok, message)
	p.errs = append(p.errs, err)
	return err
}

// synchronize discards tokens until the start of the next statement
// looks plausible.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == types.SEMICOLON {
			break
		}

		switch p.peek().Kind {
		case types.CLASS, types.FUN, types.VAR, types.FOR, types.IF, types.WHILE, types.PRINT, types.RETURN:
			plog.Debugf("synchronized before %s on line %d", p.peek().Kind, p.peek().Line)
			return
		}

		p.advance()
	}

	plog.Debugf("synchronized on line %d", p.peek().Line)
}
