package cql3parser_test

import (
	"testing"

	cql3parser "github.com/dreid/cql3parser"
	"github.com/dreid/cql3parser/ast"
)

func TestParseAndString(t *testing.T) {
	stmt, err := cql3parser.Parse("SELECT * FROM users WHERE id = ?")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := stmt.(*ast.Select); !ok {
		t.Fatalf("expected *ast.Select, got %T", stmt)
	}
	out := cql3parser.String(stmt)
	if out == "" {
		t.Fatalf("expected non-empty formatted output")
	}

	reStmt, err := cql3parser.Parse(out)
	if err != nil {
		t.Fatalf("re-parsing formatted output %q failed: %v", out, err)
	}
	if cql3parser.String(reStmt) != out {
		t.Errorf("round trip mismatch: got %q, want %q", cql3parser.String(reStmt), out)
	}
}

func TestParseEmptyInputReturnsNilStatement(t *testing.T) {
	stmt, err := cql3parser.Parse("")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if stmt != nil {
		t.Errorf("expected nil statement for empty input, got %#v", stmt)
	}
}

func TestParseSyntaxErrorReturnsParseError(t *testing.T) {
	_, err := cql3parser.Parse("SELECT FROM FROM")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, ok := err.(cql3parser.ParseError); !ok {
		t.Fatalf("expected cql3parser.ParseError, got %T", err)
	}
}

func TestParseRule(t *testing.T) {
	node, err := cql3parser.ParseRule("myks.mytable", "table")
	if err != nil {
		t.Fatalf("ParseRule error: %v", err)
	}
	tbl, ok := node.(*ast.Table)
	if !ok {
		t.Fatalf("expected *ast.Table, got %T", node)
	}
	if tbl.Keyspace == nil || tbl.Keyspace.Name.Text() != "myks" || tbl.Name.Text() != "mytable" {
		t.Errorf("unexpected table: %+v", tbl)
	}
}

func TestWalkVisitsColumns(t *testing.T) {
	stmt, err := cql3parser.Parse("SELECT a, b FROM t")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	var names []string
	cql3parser.Walk(stmt, func(n ast.Node) bool {
		if col, ok := n.(*ast.Column); ok {
			names = append(names, col.Name.Text())
		}
		return true
	})
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected [a b], got %v", names)
	}
}

func TestRewriteReplacesBinding(t *testing.T) {
	stmt, err := cql3parser.Parse("INSERT INTO t (a) VALUES (?)")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	result := cql3parser.Rewrite(stmt, func(n ast.Node) ast.Node {
		if _, ok := n.(*ast.Binding); ok {
			return &ast.IntLiteral{Value: 7}
		}
		return n
	})
	ins := result.(*ast.Insert)
	lit, ok := ins.Values[0].(*ast.IntLiteral)
	if !ok || lit.Value != 7 {
		t.Errorf("expected value to become IntLiteral(7), got %#v", ins.Values[0])
	}
}
