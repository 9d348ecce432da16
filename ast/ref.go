package ast

import "github.com/dreid/cql3parser/token"

// Keyspace names a keyspace (§3, §4.3).
type Keyspace struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     Name // Identifier or QuotedName
}

func (*Keyspace) termNode()        {}
func (*Keyspace) refNode()         {}
func (k *Keyspace) Pos() token.Pos { return k.StartPos }
func (k *Keyspace) End() token.Pos { return k.EndPos }

// Table names a table, optionally qualified by a keyspace (§3, §4.3).
type Table struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     Name      // Identifier or QuotedName
	Keyspace *Keyspace // nil if unqualified
}

func (*Table) termNode()        {}
func (*Table) refNode()         {}
func (t *Table) Pos() token.Pos { return t.StartPos }
func (t *Table) End() token.Pos { return t.EndPos }

// Index names a secondary index (§3, §4.3).
type Index struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     Name
}

func (*Index) termNode()        {}
func (*Index) refNode()         {}
func (i *Index) Pos() token.Pos { return i.StartPos }
func (i *Index) End() token.Pos { return i.EndPos }

// Column names a column (§3, §4.3).
type Column struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     Name
}

func (*Column) termNode()        {}
func (*Column) refNode()         {}
func (*Column) selectorNode()    {}
func (c *Column) Pos() token.Pos { return c.StartPos }
func (c *Column) End() token.Pos { return c.EndPos }

// CollectionItem is a subscript `c[k]` reference (§3).
type CollectionItem struct {
	StartPos token.Pos
	EndPos   token.Pos
	Column   *Column
	Key      Term
}

func (*CollectionItem) termNode()        {}
func (*CollectionItem) refNode()         {}
func (c *CollectionItem) Pos() token.Pos { return c.StartPos }
func (c *CollectionItem) End() token.Pos { return c.EndPos }

// User names a role/user. Name holds an *Identifier or *QuotedName
// when the source used a bare name, or a *StringLiteral when the
// source gave a quoted string ('username') — the string form is
// still a distinct Term, never folded into Identifier (§4.3).
type User struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     Term
}

func (*User) termNode()        {}
func (*User) refNode()         {}
func (u *User) Pos() token.Pos { return u.StartPos }
func (u *User) End() token.Pos { return u.EndPos }

// TokenCall is the TOKEN(args) reference/expression (§3, §4.4). Args
// holds Column references on the left-hand side of a token relation,
// or Terms on the right-hand side.
type TokenCall struct {
	StartPos token.Pos
	EndPos   token.Pos
	Args     []Term
}

func (*TokenCall) termNode()        {}
func (*TokenCall) refNode()         {}
func (t *TokenCall) Pos() token.Pos { return t.StartPos }
func (t *TokenCall) End() token.Pos { return t.EndPos }

// Function is a WRITETIME/TTL/COUNT-style call over a single column
// (§3, §4.4). SelectAll and Count get their own dedicated node types;
// Function covers WRITETIME(col) and TTL(col).
type Function struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string // canonical uppercase, e.g. "WRITETIME"
	Arg      *Column
}

func (*Function) termNode()          {}
func (*Function) refNode()           {}
func (*Function) selectorNode()      {}
func (f *Function) Pos() token.Pos   { return f.StartPos }
func (f *Function) End() token.Pos   { return f.EndPos }

// SelectAll is the `*` selector (§3, §4.7).
type SelectAll struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*SelectAll) selectorNode()      {}
func (s *SelectAll) Pos() token.Pos   { return s.StartPos }
func (s *SelectAll) End() token.Pos   { return s.EndPos }

// Count is the canonicalized form of COUNT(*) and COUNT(1) (§3, §4.4,
// §4.8).
type Count struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*Count) selectorNode()      {}
func (c *Count) Pos() token.Pos   { return c.StartPos }
func (c *Count) End() token.Pos   { return c.EndPos }
