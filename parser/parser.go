package parser

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/runtime"
	"github.com/pontaoski/lox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lox", "parser")

type Parser struct {
	tokens  []types.Token
	current int
	errs    errors.List
}

// NewParser expects tokens to end with an EOF token, as produced by the
// lexer.
func NewParser(tokens []types.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != types.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, types.Token{Kind: types.EOF, Line: line})
	}

	return &Parser{tokens: tokens}
}

func recoverInternal(err *error) {
	if r := recover(); r != nil {
		rerr, ok := r.(error)
		if ok {
			*err = tracerr.Wrap(rerr)
		} else {
			panic(r)
		}
	}
}

// Parse parses a whole program. Statements that fail to parse are left out
// of the result; all of their errors are returned together as an
// errors.List.
func (p *Parser) Parse() (stmts []ast.Stmt, err error) {
	defer recoverInternal(&err)

	for !p.atEnd() {
		stmt, derr := p.declaration()
		if derr != nil {
			continue
		}
		stmts = append(stmts, stmt)
	}

	plog.Tracef("parsed %d statements with %d errors", len(stmts), len(p.errs))
	return stmts, p.errs.Err()
}

// ParseExpression parses a single expression that must span every token.
func (p *Parser) ParseExpression() (expr ast.Expr, err error) {
	defer recoverInternal(&err)

	expr, err = p.expression()
	if err != nil {
		return nil, p.errs
	}
	if !p.atEnd() {
		p.error(p.peek(), "Expect end of expression.")
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return expr, nil
}

func (p *Parser) declaration() (ast.Stmt, error) {
	var stmt ast.Stmt
	var err error

	if p.match(types.VAR) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(types.IDENT, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(types.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(types.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(types.PRINT):
		return p.printStatement()
	case p.match(types.LBRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.Block{Statements: stmts}, nil
	}

	return p.expressionStatement()
}

// block should be called with the parser past the opening brace.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.check(types.RBRACE) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			continue
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(types.RBRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(types.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.Print{Expression: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(types.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.Expression{Expression: expr}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	if p.match(types.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(ast.Variable); ok {
			return ast.Assign{Name: v.Name, Value: value}, nil
		}

		// reported, but there is nothing to resynchronize
		p.error(equals, "Invalid assignment target.")
		return value, nil
	}

	return expr, nil
}

// binary parses one left-associative precedence level.
func (p *Parser) binary(operand func() (ast.Expr, error), kinds ...types.TokenKind) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Operator: op, Right: right}
	}

	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, types.BANG_EQUAL, types.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, types.GREATER, types.GREATER_EQUAL, types.LESS, types.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, types.MINUS, types.PLUS)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, types.SLASH, types.STAR)
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(types.BANG, types.MINUS) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Operator: op, Right: right}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(types.FALSE):
		return ast.Literal{Value: runtime.Bool(false)}, nil
	case p.match(types.TRUE):
		return ast.Literal{Value: runtime.Bool(true)}, nil
	case p.match(types.NIL):
		return ast.Literal{Value: runtime.Nil{}}, nil
	case p.match(types.NUMBER, types.STRING):
		return ast.Literal{Value: runtime.FromLiteral(p.previous().Literal)}, nil
	case p.match(types.IDENT):
		return ast.Variable{Name: p.previous()}, nil
	case p.match(types.LPAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(types.RPAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.Grouping{Expression: expr}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}
