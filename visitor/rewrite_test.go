package visitor_test

import (
	"testing"

	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/format"
	"github.com/dreid/cql3parser/parser"
	"github.com/dreid/cql3parser/visitor"
)

func TestRewriteReplacesBindings(t *testing.T) {
	stmt, err := parser.New("INSERT INTO foo (a, b) VALUES (?, 'x')").Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	replaced := 0
	result := visitor.Rewrite(stmt, func(n ast.Node) ast.Node {
		if _, ok := n.(*ast.Binding); ok {
			replaced++
			return &ast.IntLiteral{Value: 42}
		}
		return n
	})

	ins, ok := result.(*ast.Insert)
	if !ok {
		t.Fatalf("expected *ast.Insert, got %T", result)
	}
	if replaced != 1 {
		t.Fatalf("expected to replace 1 binding, got %d", replaced)
	}
	lit, ok := ins.Values[0].(*ast.IntLiteral)
	if !ok || lit.Value != 42 {
		t.Errorf("expected first value to become IntLiteral(42), got %#v", ins.Values[0])
	}
}

func TestRewriteTermHelperOnlyTouchesTerms(t *testing.T) {
	term := ast.Term(&ast.ListLiteral{Items: []ast.Term{
		&ast.IntLiteral{Value: 1},
		&ast.Binding{},
		&ast.IntLiteral{Value: 3},
	}})

	out := visitor.RewriteTerm(term, func(t ast.Term) ast.Term {
		if _, ok := t.(*ast.Binding); ok {
			return &ast.IntLiteral{Value: 2}
		}
		return t
	})

	list, ok := out.(*ast.ListLiteral)
	if !ok {
		t.Fatalf("expected *ast.ListLiteral, got %T", out)
	}
	for i, item := range list.Items {
		lit, ok := item.(*ast.IntLiteral)
		if !ok {
			t.Fatalf("item %d: expected IntLiteral, got %T", i, item)
		}
		if lit.Value != int64(i+1) {
			t.Errorf("item %d: got %d, want %d", i, lit.Value, i+1)
		}
	}
}

func TestRewriteOverWhereRelations(t *testing.T) {
	stmt, err := parser.New("DELETE FROM t WHERE k = ?").Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	result := visitor.Rewrite(stmt, func(n ast.Node) ast.Node {
		if _, ok := n.(*ast.Binding); ok {
			return &ast.StringLiteral{Value: "bound"}
		}
		return n
	})

	del := result.(*ast.Delete)
	rhs, ok := del.Where[0].RHS.(*ast.StringLiteral)
	if !ok || rhs.Value != "bound" {
		t.Errorf("expected WHERE relation RHS to be rewritten, got %#v", del.Where[0].RHS)
	}

	out := format.String(del)
	if out == "" {
		t.Errorf("expected non-empty formatted output after rewrite")
	}
}

func TestRewriteNilNodeReturnsNil(t *testing.T) {
	if got := visitor.Rewrite(nil, func(n ast.Node) ast.Node { return n }); got != nil {
		t.Errorf("expected nil, got %#v", got)
	}
}
