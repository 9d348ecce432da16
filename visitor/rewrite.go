package visitor

import "github.com/dreid/cql3parser/ast"

// ApplyFunc is called for each node during rewriting. Return the
// replacement node, or the node unchanged to keep it.
type ApplyFunc func(ast.Node) ast.Node

// Rewrite traverses the AST in post-order (children first, then the
// node itself) and returns the possibly-replaced node. It descends
// only into term positions: INSERT values, UPDATE SET values, the
// sides of WHERE relations, BATCH statements, collection-item keys,
// TOKEN arguments, and collection literal elements. Other children
// (tables, columns, selectors, names, properties, USING options,
// assignment targets, DELETE columns) and the Relation nodes
// themselves are never passed to f. Replacements are stored into the
// input tree in place.
func Rewrite(node ast.Node, f ApplyFunc) ast.Node {
	if node == nil {
		return nil
	}
	rewriteChildren(node, f)
	return f(node)
}

func rewriteChildren(node ast.Node, f ApplyFunc) {
	switch n := node.(type) {
	case *ast.Insert:
		for i, val := range n.Values {
			if r := Rewrite(val, f); r != nil {
				n.Values[i] = r.(ast.Term)
			}
		}

	case *ast.Update:
		for _, a := range n.Set {
			if r := Rewrite(a.Value, f); r != nil {
				a.Value = r.(ast.Term)
			}
		}
		for _, rel := range n.Where {
			rewriteRelation(rel, f)
		}

	case *ast.Delete:
		for _, rel := range n.Where {
			rewriteRelation(rel, f)
		}

	case *ast.Select:
		for _, rel := range n.Where {
			rewriteRelation(rel, f)
		}

	case *ast.Batch:
		for i, stmt := range n.Statements {
			if r := Rewrite(stmt, f); r != nil {
				n.Statements[i] = r.(ast.Statement)
			}
		}

	case *ast.CollectionItem:
		if r := Rewrite(n.Key, f); r != nil {
			n.Key = r.(ast.Term)
		}

	case *ast.TokenCall:
		for i, a := range n.Args {
			if r := Rewrite(a, f); r != nil {
				n.Args[i] = r.(ast.Term)
			}
		}

	case *ast.MapLiteral:
		for i := range n.Entries {
			if r := Rewrite(n.Entries[i].Key, f); r != nil {
				n.Entries[i].Key = r.(ast.Term)
			}
			if r := Rewrite(n.Entries[i].Value, f); r != nil {
				n.Entries[i].Value = r.(ast.Term)
			}
		}

	case *ast.ListLiteral:
		for i, item := range n.Items {
			if r := Rewrite(item, f); r != nil {
				n.Items[i] = r.(ast.Term)
			}
		}

	case *ast.SetLiteral:
		for i, item := range n.Items {
			if r := Rewrite(item, f); r != nil {
				n.Items[i] = r.(ast.Term)
			}
		}
	}
}

func rewriteRelation(r *ast.Relation, f ApplyFunc) {
	if result := Rewrite(r.LHS, f); result != nil {
		r.LHS = result.(ast.Term)
	}
	if r.Op == ast.OpIN {
		for i, item := range r.RHSList {
			if result := Rewrite(item, f); result != nil {
				r.RHSList[i] = result.(ast.Term)
			}
		}
		return
	}
	if r.RHS != nil {
		if result := Rewrite(r.RHS, f); result != nil {
			r.RHS = result.(ast.Term)
		}
	}
}

// RewriteTerm rewrites only Term nodes, leaving everything else
// unchanged — the common case of substituting bound placeholders.
func RewriteTerm(term ast.Term, f func(ast.Term) ast.Term) ast.Term {
	result := Rewrite(term, func(n ast.Node) ast.Node {
		if t, ok := n.(ast.Term); ok {
			return f(t)
		}
		return n
	})
	if result == nil {
		return nil
	}
	return result.(ast.Term)
}
