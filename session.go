package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/sanity-io/litter"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/interpreter"
	"github.com/pontaoski/lox/lexer"
	"github.com/pontaoski/lox/parser"
	"github.com/pontaoski/lox/runtime"
	"github.com/pontaoski/lox/types"
)

const (
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
)

// session owns one interpreter, so globals survive from one run to the
// next, and one reporter whose flags the caller resets between runs.
type session struct {
	out      io.Writer
	reporter *errors.WriterReporter
	interp   *interpreter.Interpreter
	settings loxSettings
}

func newSession(out, diag io.Writer, settings loxSettings) *session {
	return &session{
		out:      out,
		reporter: errors.NewWriterReporter(diag, settings.Color),
		interp:   interpreter.New(out),
		settings: settings,
	}
}

func (s *session) scan(source string) ([]types.Token, error) {
	tokens, err := lexer.NewLexer(source).ScanTokens()
	return tokens, errors.ReportAll(s.reporter, err)
}

// run pushes source through the whole pipeline. Syntax errors suppress
// interpretation; other failures are returned.
func (s *session) run(source string) error {
	tokens, err := s.scan(source)
	if err != nil {
		return err
	}
	if s.settings.EchoTokens {
		s.printTokens(tokens)
	}

	stmts, err := parser.NewParser(tokens).Parse()
	if err := errors.ReportAll(s.reporter, err); err != nil {
		return err
	}
	if s.reporter.HadError() {
		plog.Debugf("skipping interpretation after syntax errors")
		return nil
	}

	return errors.ReportAll(s.reporter, s.interp.Interpret(stmts))
}

// echo evaluates source when it is a bare expression and prints the
// result. It reports false when source is not an expression.
func (s *session) echo(source string) (bool, error) {
	tokens, err := lexer.NewLexer(source).ScanTokens()
	if err != nil {
		return false, nil
	}
	expr, err := parser.NewParser(tokens).ParseExpression()
	if err != nil {
		return false, nil
	}

	value, err := s.interp.Evaluate(expr, s.interp.Globals())
	if err != nil {
		return true, errors.ReportAll(s.reporter, err)
	}
	_, err = fmt.Fprintln(s.out, value.String())
	return true, tracerr.Wrap(err)
}

// exitStatus maps the reporter flags to the process exit code.
func (s *session) exitStatus() int {
	switch {
	case s.reporter.HadError():
		return exitSyntax
	case s.reporter.HadRuntimeError():
		return exitRuntime
	}
	return 0
}

func (s *session) runPrompt(in io.Reader) error {
	lines := bufio.NewScanner(in)

	for {
		fmt.Fprint(s.out, s.settings.Prompt)
		if !lines.Scan() {
			break
		}

		s.reporter.Reset()
		line := lines.Text()

		echoed, err := s.echo(line)
		if err != nil {
			return err
		}
		if echoed {
			continue
		}
		if err := s.run(line); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out)
	return tracerr.Wrap(lines.Err())
}

func (s *session) printTokens(tokens []types.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(s.out, tok.String())
	}
}

func (s *session) dumpTokens(source string, raw bool) error {
	tokens, err := s.scan(source)
	if err != nil {
		return err
	}

	if raw {
		repr.New(s.out).Println(tokens)
	} else {
		s.printTokens(tokens)
	}
	return nil
}

func (s *session) dumpAST(source string, raw bool) error {
	tokens, err := s.scan(source)
	if err != nil {
		return err
	}
	stmts, err := parser.NewParser(tokens).Parse()
	if err := errors.ReportAll(s.reporter, err); err != nil {
		return err
	}

	if raw {
		fmt.Fprintln(s.out, litter.Sdump(stmts))
		return nil
	}
	for _, stmt := range stmts {
		fmt.Fprintln(s.out, ast.FormatStmt(stmt))
	}
	return nil
}

// demoExpression is the tree printed by --print-ast.
func demoExpression() ast.Expr {
	return ast.Binary{
		Left: ast.Unary{
			Operator: types.Token{Kind: types.MINUS, Lexeme: "-", Line: 1},
			Right:    ast.Literal{Value: runtime.Number(123)},
		},
		Operator: types.Token{Kind: types.STAR, Lexeme: "*", Line: 1},
		Right:    ast.Grouping{Expression: ast.Literal{Value: runtime.Number(45.67)}},
	}
}
