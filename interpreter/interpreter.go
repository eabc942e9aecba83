package interpreter

import (
	"fmt"
	"io"

	"github.com/coreos/pkg/capnslog"

	"github.com/pontaoski/lox/ast"
	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/runtime"
	"github.com/pontaoski/lox/types"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lox", "interpreter")

// Interpreter walks statements against an environment chain rooted at a
// global frame that lives as long as the interpreter.
type Interpreter struct {
	globals *runtime.Environment
	out     io.Writer
}

func New(out io.Writer) *Interpreter {
	return &Interpreter{
		globals: runtime.NewEnvironment(nil),
		out:     out,
	}
}

func (i *Interpreter) Globals() *runtime.Environment {
	return i.globals
}

// Interpret executes stmts in order in the global frame. The first runtime
// error stops execution and is returned as an errors.RuntimeError.
func (i *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.execute(stmt, i.globals); err != nil {
			plog.Debugf("aborting: %v", err)
			return err
		}
	}
	plog.Debugf("globals: %v", i.globals.Names())
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt, env *runtime.Environment) error {
	switch s := stmt.(type) {
	case ast.Expression:
		_, err := i.Evaluate(s.Expression, env)
		return err
	case ast.Print:
		value, err := i.Evaluate(s.Expression, env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(i.out, value.String())
		return err
	case ast.Var:
		var value runtime.Value = runtime.Nil{}
		if s.Initializer != nil {
			v, err := i.Evaluate(s.Initializer, env)
			if err != nil {
				return err
			}
			value = v
		}
		env.Define(s.Name.Lexeme, value)
		return nil
	case ast.Block:
		return i.executeBlock(s.Statements, runtime.NewEnvironment(env))
	}

	panic(fmt.Sprintf("unhandled statement %T", stmt))
}

// executeBlock runs stmts in scope. The caller's frame is untouched since
// scope only lives for this call.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, scope *runtime.Environment) error {
	plog.Tracef("entering block at depth %d with %d statements", depth(scope), len(stmts))
	defer plog.Tracef("leaving block")

	for _, stmt := range stmts {
		if err := i.execute(stmt, scope); err != nil {
			return err
		}
	}
	return nil
}

// depth counts the frames enclosing env; the global frame is at depth 0.
func depth(env *runtime.Environment) int {
	n := 0
	for e := env.Enclosing(); e != nil; e = e.Enclosing() {
		n++
	}
	return n
}

// Evaluate computes the value of expr in env.
func (i *Interpreter) Evaluate(expr ast.Expr, env *runtime.Environment) (runtime.Value, error) {
	switch e := expr.(type) {
	case ast.Literal:
		if e.Value == nil {
			return runtime.Nil{}, nil
		}
		return e.Value, nil
	case ast.Grouping:
		return i.Evaluate(e.Expression, env)
	case ast.Unary:
		return i.unary(e, env)
	case ast.Binary:
		return i.binary(e, env)
	case ast.Variable:
		return env.Get(e.Name)
	case ast.Assign:
		value, err := i.Evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	}

	panic(fmt.Sprintf("unhandled expression %T", expr))
}

func (i *Interpreter) unary(e ast.Unary, env *runtime.Environment) (runtime.Value, error) {
	right, err := i.Evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case types.MINUS:
		if right.Kind() != runtime.KindNumber {
			plog.Debugf("cannot negate %s", right.Kind())
			return nil, fail(e.Operator, "Operand must be a number.")
		}
		return -right.(runtime.Number), nil
	case types.BANG:
		return runtime.Bool(!runtime.Truthy(right)), nil
	}

	return nil, fail(e.Operator, fmt.Sprintf("Unknown unary operator '%s'.", e.Operator.Lexeme))
}

func (i *Interpreter) binary(e ast.Binary, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.Evaluate(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.Evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case types.EQUAL_EQUAL:
		return runtime.Bool(runtime.Equal(left, right)), nil
	case types.BANG_EQUAL:
		return runtime.Bool(!runtime.Equal(left, right)), nil
	case types.PLUS:
		return add(e.Operator, left, right)
	}

	l, r, err := numberOperands(e.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case types.MINUS:
		return l - r, nil
	case types.STAR:
		return l * r, nil
	case types.SLASH:
		return l / r, nil
	case types.GREATER:
		return runtime.Bool(l > r), nil
	case types.GREATER_EQUAL:
		return runtime.Bool(l >= r), nil
	case types.LESS:
		return runtime.Bool(l < r), nil
	case types.LESS_EQUAL:
		return runtime.Bool(l <= r), nil
	}

	return nil, fail(e.Operator, fmt.Sprintf("Unknown binary operator '%s'.", e.Operator.Lexeme))
}

func add(op types.Token, left, right runtime.Value) (runtime.Value, error) {
	if left.Kind() == right.Kind() {
		switch l := left.(type) {
		case runtime.Number:
			return l + right.(runtime.Number), nil
		case runtime.String:
			return l + right.(runtime.String), nil
		}
	}

	plog.Debugf("cannot add %s and %s", left.Kind(), right.Kind())
	return nil, fail(op, "Operands must be two numbers or two strings.")
}

func numberOperands(op types.Token, left, right runtime.Value) (runtime.Number, runtime.Number, error) {
	if left.Kind() != runtime.KindNumber || right.Kind() != runtime.KindNumber {
		plog.Debugf("'%s' on %s and %s", op.Lexeme, left.Kind(), right.Kind())
		return 0, 0, fail(op, "Operands must be numbers.")
	}
	return left.(runtime.Number), right.(runtime.Number), nil
}

func fail(tok types.Token, message string) error {
	return errors.RuntimeError{
		Token:   tok,
		Message: message,
	}
}
