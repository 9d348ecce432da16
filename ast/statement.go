package ast

import "github.com/dreid/cql3parser/token"

// Use is a `USE keyspace` statement (§3, §4.7).
type Use struct {
	StartPos token.Pos
	EndPos   token.Pos
	Keyspace *Keyspace
}

func (*Use) statementNode()    {}
func (u *Use) Pos() token.Pos  { return u.StartPos }
func (u *Use) End() token.Pos  { return u.EndPos }

// Select is a `SELECT ... FROM ...` statement (§3, §4.7). Any
// optional clause not present in the source is nil.
type Select struct {
	StartPos       token.Pos
	EndPos         token.Pos
	Selectors      []Selector // singleton {SelectAll} or {Count}, or a non-empty Column/Function list
	From           *Table
	Where          []*Relation    // nil if absent
	Order          *OrderBy       // nil if absent
	Limit          *Limit         // nil if absent
	AllowFiltering *AllowFiltering // nil if absent
}

func (*Select) statementNode()   {}
func (s *Select) Pos() token.Pos { return s.StartPos }
func (s *Select) End() token.Pos { return s.EndPos }

// Insert is an `INSERT INTO ... VALUES ...` statement (§3, §4.7).
type Insert struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *Table
	Columns  []*Column
	Values   []Term // len(Values) == len(Columns)
	Using    []UsingOption
}

func (*Insert) statementNode()   {}
func (i *Insert) Pos() token.Pos { return i.StartPos }
func (i *Insert) End() token.Pos { return i.EndPos }

// Assignment is one `column = term` or `column[key] = term` element
// of an UPDATE's SET clause (§3, §4.7).
type Assignment struct {
	StartPos token.Pos
	EndPos   token.Pos
	Target   Term // *Column or *CollectionItem
	Value    Term
}

func (a *Assignment) Pos() token.Pos { return a.StartPos }
func (a *Assignment) End() token.Pos { return a.EndPos }

// Update is an `UPDATE ... SET ... WHERE ...` statement (§3, §4.7).
type Update struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *Table
	Using    []UsingOption
	Set      []*Assignment
	Where    []*Relation
}

func (*Update) statementNode()   {}
func (u *Update) Pos() token.Pos { return u.StartPos }
func (u *Update) End() token.Pos { return u.EndPos }

// Delete is a `DELETE ... FROM ... WHERE ...` statement (§3, §4.7).
// Columns is nil for a whole-row delete.
type Delete struct {
	StartPos token.Pos
	EndPos   token.Pos
	Columns  []Term // *Column or *CollectionItem; nil means whole row
	Table    *Table
	Using    []UsingOption
	Where    []*Relation
}

func (*Delete) statementNode()   {}
func (d *Delete) Pos() token.Pos { return d.StartPos }
func (d *Delete) End() token.Pos { return d.EndPos }

// Truncate is a `TRUNCATE table` statement (§3, §4.7).
type Truncate struct {
	StartPos token.Pos
	EndPos   token.Pos
	Table    *Table
}

func (*Truncate) statementNode()   {}
func (t *Truncate) Pos() token.Pos { return t.StartPos }
func (t *Truncate) End() token.Pos { return t.EndPos }

// CreateKeyspace is a `CREATE KEYSPACE ... WITH ...` statement (§3,
// §4.7).
type CreateKeyspace struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Keyspace   *Keyspace
	Properties *Properties
}

func (*CreateKeyspace) statementNode()   {}
func (c *CreateKeyspace) Pos() token.Pos { return c.StartPos }
func (c *CreateKeyspace) End() token.Pos { return c.EndPos }

// AlterKeyspace is an `ALTER KEYSPACE ... WITH ...` statement (§3,
// §4.7).
type AlterKeyspace struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Keyspace   *Keyspace
	Properties *Properties
}

func (*AlterKeyspace) statementNode()   {}
func (a *AlterKeyspace) Pos() token.Pos { return a.StartPos }
func (a *AlterKeyspace) End() token.Pos { return a.EndPos }

// Drop is a `DROP (KEYSPACE|TABLE|INDEX|USER) name` statement (§3,
// §4.7) — a single wrapper variant over DropTarget.
type Drop struct {
	StartPos token.Pos
	EndPos   token.Pos
	Target   DropTarget
}

func (*Drop) statementNode()   {}
func (d *Drop) Pos() token.Pos { return d.StartPos }
func (d *Drop) End() token.Pos { return d.EndPos }

// CreateIndex is a `CREATE INDEX [name] ON table (column)` statement
// (§3, §4.7). Index is nil when the name was omitted.
type CreateIndex struct {
	StartPos token.Pos
	EndPos   token.Pos
	Index    *Index
	Table    *Table
	Column   *Column
}

func (*CreateIndex) statementNode()   {}
func (c *CreateIndex) Pos() token.Pos { return c.StartPos }
func (c *CreateIndex) End() token.Pos { return c.EndPos }

// CreateUser is a `CREATE USER ...` statement (§3, §4.7). Password is
// nil when absent; Superuser is nil when neither SUPERUSER nor
// NOSUPERUSER was given, else points at true/false.
type CreateUser struct {
	StartPos  token.Pos
	EndPos    token.Pos
	User      *User
	Password  *string
	Superuser *bool
}

func (*CreateUser) statementNode()   {}
func (c *CreateUser) Pos() token.Pos { return c.StartPos }
func (c *CreateUser) End() token.Pos { return c.EndPos }

// AlterUser is an `ALTER USER ...` statement (§3, §4.7), with the
// same three-valued Password/Superuser shape as CreateUser.
type AlterUser struct {
	StartPos  token.Pos
	EndPos    token.Pos
	User      *User
	Password  *string
	Superuser *bool
}

func (*AlterUser) statementNode()   {}
func (a *AlterUser) Pos() token.Pos { return a.StartPos }
func (a *AlterUser) End() token.Pos { return a.EndPos }

// Grant is a `GRANT permission_set ON resource TO user` statement
// (§3, §4.7).
type Grant struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Permission PermissionSet
	Resource   Resource
	User       *User
}

func (*Grant) statementNode()   {}
func (g *Grant) Pos() token.Pos { return g.StartPos }
func (g *Grant) End() token.Pos { return g.EndPos }

// Revoke is a `REVOKE permission_set ON resource FROM user` statement
// (§3, §4.7).
type Revoke struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Permission PermissionSet
	Resource   Resource
	User       *User
}

func (*Revoke) statementNode()   {}
func (r *Revoke) Pos() token.Pos { return r.StartPos }
func (r *Revoke) End() token.Pos { return r.EndPos }

// List is a `LIST ...` statement (§3, §4.7). Of holds the LIST
// target; today the grammar defines only LIST USERS.
type List struct {
	StartPos token.Pos
	EndPos   token.Pos
	Of       *Users
}

func (*List) statementNode()   {}
func (l *List) Pos() token.Pos { return l.StartPos }
func (l *List) End() token.Pos { return l.EndPos }

// Batch is a `BEGIN [UNLOGGED] BATCH ... APPLY BATCH` statement (§3,
// §4.7) wrapping a sequence of INSERT/UPDATE/DELETE statements.
type Batch struct {
	StartPos   token.Pos
	EndPos     token.Pos
	Unlogged   bool
	Using      []UsingOption
	Statements []Statement
}

func (*Batch) statementNode()   {}
func (b *Batch) Pos() token.Pos { return b.StartPos }
func (b *Batch) End() token.Pos { return b.EndPos }
