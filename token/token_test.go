package token

import "testing"

func TestLookupIdentKeywordsCaseInsensitive(t *testing.T) {
	for _, lower := range []string{"select", "insert", "truncate", "grant"} {
		if tok := LookupIdent(lower); tok == IDENT {
			t.Errorf("LookupIdent(%q) = IDENT, want a keyword token", lower)
		}
	}
}

func TestLookupIdentUnknownIsIdent(t *testing.T) {
	if tok := LookupIdent("frobnicate"); tok != IDENT {
		t.Errorf("LookupIdent(unknown) = %v, want IDENT", tok)
	}
}

func TestIsUnreserved(t *testing.T) {
	for _, tok := range []Token{KEY, TTL, COUNT, VALUES, USER} {
		if !IsUnreserved(tok) {
			t.Errorf("%v: expected unreserved", tok)
		}
	}
	for _, tok := range []Token{SELECT, FROM, WHERE, INSERT} {
		if IsUnreserved(tok) {
			t.Errorf("%v: expected reserved", tok)
		}
	}
}

func TestNativeTypeClassCoversAllSixteenTypes(t *testing.T) {
	names := []string{
		"ASCII", "BIGINT", "BLOB", "BOOLEAN", "COUNTER", "DECIMAL",
		"DOUBLE", "FLOAT", "INET", "INT", "TEXT", "TIMESTAMP", "UUID",
		"VARCHAR", "VARINT", "TIMEUUID",
	}
	for _, name := range names {
		class, ok := NativeTypeClass(name)
		if !ok {
			t.Errorf("NativeTypeClass(%q): not found", name)
			continue
		}
		if class == "" {
			t.Errorf("NativeTypeClass(%q): empty class name", name)
		}
	}
}

func TestNativeTypeClassDoubleIsNotAReservedKeyword(t *testing.T) {
	// DOUBLE has a marshaller class but no reserved keyword token: it
	// only ever arrives as IDENT text (see keywords.go doc comment).
	if _, ok := keywords["double"]; ok {
		t.Fatalf("DOUBLE unexpectedly registered as a reserved keyword")
	}
	if _, ok := NativeTypeClass("DOUBLE"); !ok {
		t.Fatalf("NativeTypeClass(DOUBLE) not found")
	}
}

func TestNativeTypeClassUnknown(t *testing.T) {
	if _, ok := NativeTypeClass("NOTATYPE"); ok {
		t.Errorf("expected NOTATYPE to be unknown")
	}
}

func TestTokenString(t *testing.T) {
	if SELECT.String() != "SELECT" {
		t.Errorf("SELECT.String() = %q, want SELECT", SELECT.String())
	}
	if EQ.String() != "=" {
		t.Errorf("EQ.String() = %q, want =", EQ.String())
	}
}

func TestPosIsValid(t *testing.T) {
	if (Pos{}).IsValid() {
		t.Errorf("zero Pos should be invalid")
	}
	if !(Pos{Line: 1, Column: 1}).IsValid() {
		t.Errorf("Pos{Line: 1} should be valid")
	}
}
