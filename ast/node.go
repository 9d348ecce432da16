// Package ast defines the abstract syntax tree produced by the CQL3
// parser: a closed, tagged-variant tree with structural equality.
// Nodes carry only their own attributes; there are no parent
// pointers, and the parser never mutates a node after constructing it
// (§3). visitor.Rewrite is the exception: it stores replacement
// children into the nodes of the tree it is given.
package ast

import "github.com/dreid/cql3parser/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}

// Statement is a top-level parser output (§3, "Statement nodes").
type Statement interface {
	Node
	statementNode()
}

// Term is any value usable where an expression is allowed: a
// Binding, a literal, a collection literal, or a reference node
// (§3, "Terms").
type Term interface {
	Node
	termNode()
}

// Ref is a reference node: Keyspace, Table, Index, Column,
// CollectionItem, User, Token, or Function (§3, "Reference nodes").
// Every Ref is also usable as a Term.
type Ref interface {
	Term
	refNode()
}

// Name is either an Identifier or a QuotedName (§4.3).
type Name interface {
	Node
	nameNode()
	Text() string
}

// Selector is one element of a SELECT statement's column list:
// SelectAll, Count, a Column, or a Function (§3, "Select.selectors").
type Selector interface {
	Node
	selectorNode()
}
