// Package cql3parser parses CQL3, the query language used by Apache
// Cassandra, into an abstract syntax tree.
//
// Basic usage:
//
//	stmt, err := cql3parser.Parse("SELECT * FROM users WHERE id = ?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cql3parser.String(stmt))
//
// Walking the AST:
//
//	cql3parser.Walk(stmt, func(node ast.Node) bool {
//	    if col, ok := node.(*ast.Column); ok {
//	        fmt.Println(col.Name.Text())
//	    }
//	    return true
//	})
package cql3parser

import (
	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/format"
	"github.com/dreid/cql3parser/parser"
	"github.com/dreid/cql3parser/visitor"
)

// Parse parses a single CQL3 statement. The parser uses internal
// pooling for efficiency.
func Parse(cql string) (ast.Statement, error) {
	p := parser.Get(cql)
	stmt, err := p.Parse()
	parser.Put(p)
	return stmt, err
}

// ParseRule parses input as a single named grammar rule, returning
// its AST node without requiring the whole input to be consumed. See
// parser.ParseRule for the set of recognized rule names.
func ParseRule(input, rule string) (ast.Node, error) {
	return parser.ParseRule(input, rule)
}

// String formats an AST node back to CQL3 text.
func String(node ast.Node) string {
	return format.String(node)
}

// Walk traverses the AST calling fn for each node. If fn returns
// false, that node's children are not visited.
func Walk(node ast.Node, fn func(ast.Node) bool) {
	visitor.WalkFunc(node, fn)
}

// Rewrite traverses the AST in post-order, allowing node replacement.
// fn returns the replacement node, or the node unchanged to keep it.
// See visitor.Rewrite for which children are visited; replacements
// are made in place in the given tree.
func Rewrite(node ast.Node, fn func(ast.Node) ast.Node) ast.Node {
	return visitor.Rewrite(node, fn)
}

// Statement is the interface implemented by every CQL3 statement.
type Statement = ast.Statement

// Node is the base interface implemented by every AST node.
type Node = ast.Node

// ParseError reports the position and expectation that made parsing
// fail.
type ParseError = parser.ParseError
