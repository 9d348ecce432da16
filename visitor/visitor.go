// Package visitor provides AST traversal over the CQL3 node set.
package visitor

import "github.com/dreid/cql3parser/ast"

// Visitor is the interface for AST traversal.
type Visitor interface {
	Visit(node ast.Node) Visitor
}

// Walk traverses an AST in depth-first order.
func Walk(v Visitor, node ast.Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	walkChildren(v, node)
}

func walkChildren(v Visitor, node ast.Node) {
	switch n := node.(type) {
	case *ast.Use:
		Walk(v, n.Keyspace)

	case *ast.Select:
		for _, sel := range n.Selectors {
			Walk(v, sel)
		}
		Walk(v, n.From)
		for _, r := range n.Where {
			Walk(v, r)
		}
		if n.Order != nil {
			Walk(v, n.Order.Column)
		}

	case *ast.Insert:
		Walk(v, n.Table)
		for _, col := range n.Columns {
			Walk(v, col)
		}
		for _, val := range n.Values {
			Walk(v, val)
		}
		for _, opt := range n.Using {
			Walk(v, opt)
		}

	case *ast.Update:
		Walk(v, n.Table)
		for _, opt := range n.Using {
			Walk(v, opt)
		}
		for _, a := range n.Set {
			Walk(v, a.Target)
			Walk(v, a.Value)
		}
		for _, r := range n.Where {
			Walk(v, r)
		}

	case *ast.Delete:
		for _, col := range n.Columns {
			Walk(v, col)
		}
		Walk(v, n.Table)
		for _, opt := range n.Using {
			Walk(v, opt)
		}
		for _, r := range n.Where {
			Walk(v, r)
		}

	case *ast.Truncate:
		Walk(v, n.Table)

	case *ast.CreateKeyspace:
		Walk(v, n.Keyspace)
		Walk(v, n.Properties)

	case *ast.AlterKeyspace:
		Walk(v, n.Keyspace)
		Walk(v, n.Properties)

	case *ast.Drop:
		Walk(v, n.Target)

	case *ast.CreateIndex:
		if n.Index != nil {
			Walk(v, n.Index)
		}
		Walk(v, n.Table)
		Walk(v, n.Column)

	case *ast.CreateUser:
		Walk(v, n.User)

	case *ast.AlterUser:
		Walk(v, n.User)

	case *ast.Grant:
		Walk(v, n.Permission)
		Walk(v, n.Resource)
		Walk(v, n.User)

	case *ast.Revoke:
		Walk(v, n.Permission)
		Walk(v, n.Resource)
		Walk(v, n.User)

	case *ast.Batch:
		for _, opt := range n.Using {
			Walk(v, opt)
		}
		for _, stmt := range n.Statements {
			Walk(v, stmt)
		}

	case *ast.Table:
		if n.Keyspace != nil {
			Walk(v, n.Keyspace)
		}
		Walk(v, n.Name)

	case *ast.Keyspace:
		Walk(v, n.Name)

	case *ast.Index:
		Walk(v, n.Name)

	case *ast.Column:
		Walk(v, n.Name)

	case *ast.User:
		Walk(v, n.Name)

	case *ast.CollectionItem:
		Walk(v, n.Column)
		Walk(v, n.Key)

	case *ast.TokenCall:
		for _, a := range n.Args {
			Walk(v, a)
		}

	case *ast.Function:
		Walk(v, n.Arg)

	case *ast.MapLiteral:
		for _, e := range n.Entries {
			Walk(v, e.Key)
			Walk(v, e.Value)
		}

	case *ast.ListLiteral:
		for _, item := range n.Items {
			Walk(v, item)
		}

	case *ast.SetLiteral:
		for _, item := range n.Items {
			Walk(v, item)
		}

	case *ast.Relation:
		Walk(v, n.LHS)
		if n.Op == ast.OpIN {
			for _, item := range n.RHSList {
				Walk(v, item)
			}
		} else {
			Walk(v, n.RHS)
		}

	case *ast.Properties:
		for _, p := range n.List {
			Walk(v, p)
		}

	case *ast.Property:
		Walk(v, n.Key)
		Walk(v, n.Value)

		// Identifier, QuotedName, Binding, NativeType, IntLiteral, FloatLiteral,
		// StringLiteral, BoolLiteral, UUIDLiteral, SelectAll, Count, Timestamp,
		// Ttl, Permission, AllPermissions, AllKeyspaces, Users: leaves, nothing
		// to walk.
	}
}

// WalkFunc calls fn for every node reached from node; fn returning
// false skips that node's children.
func WalkFunc(node ast.Node, fn func(ast.Node) bool) {
	Walk(&funcVisitor{fn: fn}, node)
}

type funcVisitor struct {
	fn func(ast.Node) bool
}

func (v *funcVisitor) Visit(node ast.Node) Visitor {
	if v.fn(node) {
		return v
	}
	return nil
}

// Inspect calls f for each node in the AST rooted at node.
func Inspect(node ast.Node, f func(ast.Node) bool) {
	WalkFunc(node, f)
}
