package lexer

import (
	"testing"

	"github.com/dreid/cql3parser/token"
)

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Item
	}{
		{
			input: "SELECT * FROM users",
			expected: []token.Item{
				{Type: token.SELECT, Value: "SELECT"},
				{Type: token.STAR, Value: "*"},
				{Type: token.FROM, Value: "FROM"},
				{Type: token.USERS, Value: "USERS"},
				{Type: token.EOF, Value: ""},
			},
		},
		{
			input: "SELECT * FROM users WHERE id = 1 AND k2 >= 0 AND k2 <= 10",
			expected: []token.Item{
				{Type: token.SELECT, Value: "SELECT"},
				{Type: token.STAR, Value: "*"},
				{Type: token.FROM, Value: "FROM"},
				{Type: token.USERS, Value: "USERS"},
				{Type: token.WHERE, Value: "WHERE"},
				{Type: token.IDENT, Value: "id"},
				{Type: token.EQ, Value: "="},
				{Type: token.INT, Value: "1"},
				{Type: token.AND, Value: "AND"},
				{Type: token.IDENT, Value: "k2"},
				{Type: token.GTE, Value: ">="},
				{Type: token.INT, Value: "0"},
				{Type: token.AND, Value: "AND"},
				{Type: token.IDENT, Value: "k2"},
				{Type: token.LTE, Value: "<="},
				{Type: token.INT, Value: "10"},
				{Type: token.EOF, Value: ""},
			},
		},
		{
			input: "select Select SELECT",
			expected: []token.Item{
				{Type: token.SELECT, Value: "SELECT"},
				{Type: token.SELECT, Value: "SELECT"},
				{Type: token.SELECT, Value: "SELECT"},
				{Type: token.EOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			for i, exp := range tt.expected {
				got := l.Next()
				if got.Type != exp.Type {
					t.Errorf("token %d: expected type %v, got %v", i, exp.Type, got.Type)
				}
				if got.Value != exp.Value {
					t.Errorf("token %d: expected value %q, got %q", i, exp.Value, got.Value)
				}
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{"123", token.Item{Type: token.INT, Value: "123"}},
		{"-123", token.Item{Type: token.INT, Value: "-123"}},
		{"123.456", token.Item{Type: token.FLOAT, Value: "123.456"}},
		{"-123.456", token.Item{Type: token.FLOAT, Value: "-123.456"}},
		{"1e10", token.Item{Type: token.FLOAT, Value: "1e10"}},
		{"1E10", token.Item{Type: token.FLOAT, Value: "1E10"}},
		{"1.5e+10", token.Item{Type: token.FLOAT, Value: "1.5e+10"}},
		{"1.5e-10", token.Item{Type: token.FLOAT, Value: "1.5e-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{`'hello'`, token.Item{Type: token.STRING, Value: "hello"}},
		{`'hello world'`, token.Item{Type: token.STRING, Value: "hello world"}},
		{`'it''s here'`, token.Item{Type: token.STRING, Value: "it's here"}},
		{`''`, token.Item{Type: token.STRING, Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerQuotedNames(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Item
	}{
		{`"Foo"`, token.Item{Type: token.QIDENT, Value: "Foo"}},
		{`"a""b"`, token.Item{Type: token.QIDENT, Value: `a"b`}},
		{`"SELECT"`, token.Item{Type: token.QIDENT, Value: "SELECT"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := New(tt.input)
			got := l.Next()
			if got.Type != tt.expected.Type {
				t.Errorf("expected type %v, got %v", tt.expected.Type, got.Type)
			}
			if got.Value != tt.expected.Value {
				t.Errorf("expected value %q, got %q", tt.expected.Value, got.Value)
			}
		})
	}
}

func TestLexerUUID(t *testing.T) {
	const u = "550e8400-e29b-41d4-a716-446655440000"
	l := New(u)
	got := l.Next()
	if got.Type != token.UUID {
		t.Fatalf("expected UUID, got %v", got.Type)
	}
	if got.Value != u {
		t.Errorf("expected value %q, got %q", u, got.Value)
	}
}

func TestLexerUUIDNotConfusedWithIdentifier(t *testing.T) {
	// a plain hyphenated word-like identifier should not be a UUID:
	// too short to match the 8-4-4-4-12 shape.
	l := New("abcdefab-1234-1234")
	got := l.Next()
	if got.Type == token.UUID {
		t.Fatalf("expected non-UUID token, got UUID")
	}
}

func TestLexerCaseFoldingOfKeywordsPreservesCanonicalSpelling(t *testing.T) {
	for _, spelling := range []string{"select", "Select", "SELECT", "sElEcT"} {
		l := New(spelling)
		got := l.Next()
		if got.Type != token.SELECT {
			t.Fatalf("%q: expected SELECT token, got %v", spelling, got.Type)
		}
		if got.Value != "SELECT" {
			t.Errorf("%q: expected canonical value SELECT, got %q", spelling, got.Value)
		}
	}
}

func TestLexerIdentifiersAreLowerCased(t *testing.T) {
	l := New("MyTable")
	got := l.Next()
	if got.Type != token.IDENT {
		t.Fatalf("expected IDENT, got %v", got.Type)
	}
	if got.Value != "mytable" {
		t.Errorf("expected lower-cased value, got %q", got.Value)
	}
}

func TestLexerBinding(t *testing.T) {
	l := New("?")
	got := l.Next()
	if got.Type != token.BINDING {
		t.Fatalf("expected BINDING, got %v", got.Type)
	}
}

func TestLexerWhitespaceSkipped(t *testing.T) {
	l := New("  \t\n  select\n  ")
	got := l.Next()
	if got.Type != token.SELECT {
		t.Fatalf("expected SELECT, got %v", got.Type)
	}
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	l := New("select from")
	peeked := l.Peek()
	if peeked.Type != token.SELECT {
		t.Fatalf("expected SELECT, got %v", peeked.Type)
	}
	got := l.Next()
	if got.Type != token.SELECT {
		t.Fatalf("Next after Peek: expected SELECT, got %v", got.Type)
	}
	next := l.Next()
	if next.Type != token.FROM {
		t.Fatalf("expected FROM, got %v", next.Type)
	}
}

func TestGetPutReset(t *testing.T) {
	l := Get("select")
	got := l.Next()
	if got.Type != token.SELECT {
		t.Fatalf("expected SELECT, got %v", got.Type)
	}
	Put(l)

	l2 := Get("from")
	got2 := l2.Next()
	if got2.Type != token.FROM {
		t.Fatalf("expected FROM, got %v", got2.Type)
	}
	Put(l2)
}
