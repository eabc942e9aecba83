package runtime

import (
	"fmt"
	"sort"

	"github.com/pontaoski/lox/errors"
	"github.com/pontaoski/lox/types"
)

// Environment is one lexical scope frame.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a frame nested under enclosing, which may be nil
// for the global frame.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// Define inserts or overwrites a binding in this frame only.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get searches outward through the frame chain.
func (e *Environment) Get(name types.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, undefined(name)
}

// Assign overwrites the binding in the nearest frame that holds name.
func (e *Environment) Assign(name types.Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}
	return undefined(name)
}

// Names returns this frame's bindings in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func undefined(name types.Token) error {
	return errors.RuntimeError{
		Token:   name,
		Message: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme),
	}
}
