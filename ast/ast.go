// Package ast holds the syntax tree produced by the parser. Expressions
// and statements are sealed interfaces; consumers type-switch over the
// variants in ast_gen.go.
//
// A Var with a nil Initializer declares its name bound to nil.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.types ../ast/ast_gen.go ast"
