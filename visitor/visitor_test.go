package visitor_test

import (
	"testing"

	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/parser"
	"github.com/dreid/cql3parser/visitor"
)

func TestWalkCountsColumns(t *testing.T) {
	stmt, err := parser.New("SELECT a, b FROM t WHERE c = 1 AND d = 2").Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var columns []string
	visitor.Inspect(stmt, func(n ast.Node) bool {
		if col, ok := n.(*ast.Column); ok {
			columns = append(columns, col.Name.Text())
		}
		return true
	})

	want := []string{"a", "b", "c", "d"}
	if len(columns) != len(want) {
		t.Fatalf("got columns %v, want %v", columns, want)
	}
	for i, name := range want {
		if columns[i] != name {
			t.Errorf("column %d: got %q, want %q", i, columns[i], name)
		}
	}
}

func TestWalkFuncStopsDescentWhenFnReturnsFalse(t *testing.T) {
	stmt, err := parser.New("SELECT a FROM t WHERE c = 1").Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var sawRelation, sawColumnInsideRelation bool
	visitor.WalkFunc(stmt, func(n ast.Node) bool {
		if _, ok := n.(*ast.Relation); ok {
			sawRelation = true
			return false // skip descending into the relation
		}
		if _, ok := n.(*ast.Column); ok {
			if col := n.(*ast.Column); col.Name.Text() == "c" {
				sawColumnInsideRelation = true
			}
		}
		return true
	})

	if !sawRelation {
		t.Fatalf("expected to visit the Relation node")
	}
	if sawColumnInsideRelation {
		t.Errorf("expected Relation's LHS column not to be visited after returning false")
	}
}

func TestWalkOverBatch(t *testing.T) {
	const input = "BEGIN BATCH INSERT INTO t (a) VALUES (1); UPDATE t SET b = 2 WHERE a = 1; APPLY BATCH"
	stmt, err := parser.New(input).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var statementTypes []string
	visitor.Inspect(stmt, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Insert:
			statementTypes = append(statementTypes, "insert")
		case *ast.Update:
			statementTypes = append(statementTypes, "update")
		}
		return true
	})

	if len(statementTypes) != 2 || statementTypes[0] != "insert" || statementTypes[1] != "update" {
		t.Errorf("expected [insert update], got %v", statementTypes)
	}
}

func TestWalkNilNodeIsNoOp(t *testing.T) {
	calls := 0
	visitor.Inspect(nil, func(ast.Node) bool {
		calls++
		return true
	})
	if calls != 0 {
		t.Errorf("expected no visits for a nil root, got %d", calls)
	}
}
