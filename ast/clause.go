package ast

import "github.com/dreid/cql3parser/token"

// Property is one `key = value` pair of a WITH clause (§3, §4.5).
type Property struct {
	StartPos token.Pos
	EndPos   token.Pos
	Key      *Identifier
	Value    Term
}

func (p *Property) Pos() token.Pos { return p.StartPos }
func (p *Property) End() token.Pos { return p.EndPos }

// Properties is an ordered `prop AND prop ...` sequence (§3, §4.5).
type Properties struct {
	StartPos token.Pos
	EndPos   token.Pos
	List     []*Property
}

func (p *Properties) Pos() token.Pos { return p.StartPos }
func (p *Properties) End() token.Pos { return p.EndPos }

// RelOp is a relation's comparison operator (§3, invariants).
type RelOp string

const (
	OpEQ RelOp = "="
	OpLT RelOp = "<"
	OpLE RelOp = "<="
	OpGT RelOp = ">"
	OpGE RelOp = ">="
	OpIN RelOp = "in"
)

// Relation is one WHERE-clause predicate (§3, §4.6). LHS is a Column
// or a TokenCall; RHS is a single Term for OpEQ/OpLT/OpLE/OpGT/OpGE
// and a TokenCall, or []Term for OpIN.
type Relation struct {
	StartPos token.Pos
	EndPos   token.Pos
	LHS      Term
	Op       RelOp
	RHS      Term   // set for every operator except OpIN
	RHSList  []Term // set only for OpIN
}

func (r *Relation) Pos() token.Pos { return r.StartPos }
func (r *Relation) End() token.Pos { return r.EndPos }

// OrderBy is an `ORDER BY column direction` clause (§3, §4.7).
type OrderBy struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Column    *Column
	Direction string // "ASC" or "DESC"
}

func (o *OrderBy) Pos() token.Pos { return o.StartPos }
func (o *OrderBy) End() token.Pos { return o.EndPos }

// Limit is a `LIMIT n` clause (§3, §4.7).
type Limit struct {
	StartPos token.Pos
	EndPos   token.Pos
	N        int64
}

func (l *Limit) Pos() token.Pos { return l.StartPos }
func (l *Limit) End() token.Pos { return l.EndPos }

// AllowFiltering marks an `ALLOW FILTERING` clause (§3, §4.7).
type AllowFiltering struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (a *AllowFiltering) Pos() token.Pos { return a.StartPos }
func (a *AllowFiltering) End() token.Pos { return a.EndPos }

// UsingOption is one element of an `INSERT/UPDATE ... USING opt AND
// opt ...` list: either Timestamp or Ttl (§3, §4.7).
type UsingOption interface {
	Node
	usingOptionNode()
}

// Timestamp is a `TIMESTAMP n` USING option (§3, §4.7).
type Timestamp struct {
	StartPos token.Pos
	EndPos   token.Pos
	N        int64
}

func (*Timestamp) usingOptionNode()  {}
func (t *Timestamp) Pos() token.Pos  { return t.StartPos }
func (t *Timestamp) End() token.Pos  { return t.EndPos }

// Ttl is a `TTL n` USING option (§3, §4.7).
type Ttl struct {
	StartPos token.Pos
	EndPos   token.Pos
	N        int64
}

func (*Ttl) usingOptionNode()  {}
func (t *Ttl) Pos() token.Pos  { return t.StartPos }
func (t *Ttl) End() token.Pos  { return t.EndPos }

// PermissionSet is the permission_set production of GRANT/REVOKE
// (§3, §4.7): either AllPermissions or a single Permission.
type PermissionSet interface {
	Node
	permissionSetNode()
}

// Permission names one of the six grantable CQL3 permissions (§3,
// §4.7).
type Permission struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string // CREATE, ALTER, DROP, SELECT, MODIFY, AUTHORIZE
}

func (*Permission) permissionSetNode() {}
func (p *Permission) Pos() token.Pos   { return p.StartPos }
func (p *Permission) End() token.Pos   { return p.EndPos }

// AllPermissions is `ALL [PERMISSIONS]` (§3, §4.7).
type AllPermissions struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*AllPermissions) permissionSetNode() {}
func (a *AllPermissions) Pos() token.Pos   { return a.StartPos }
func (a *AllPermissions) End() token.Pos   { return a.EndPos }

// Resource is the resource production of GRANT/REVOKE (§3, §4.7):
// AllKeyspaces, a Keyspace, or a Table.
type Resource interface {
	Node
	resourceNode()
}

func (*AllKeyspaces) resourceNode() {}
func (*Keyspace) resourceNode()     {}
func (*Table) resourceNode()        {}

// AllKeyspaces is `ALL KEYSPACES` (§3, §4.7).
type AllKeyspaces struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (a *AllKeyspaces) Pos() token.Pos { return a.StartPos }
func (a *AllKeyspaces) End() token.Pos { return a.EndPos }

// Users is the marker value of `LIST USERS` (§3, §4.7).
type Users struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (u *Users) Pos() token.Pos { return u.StartPos }
func (u *Users) End() token.Pos { return u.EndPos }

// DropTarget is the target of a DROP statement (§3, §4.7): a
// Keyspace, Table, Index, or User.
type DropTarget interface {
	Node
	dropTargetNode()
}

func (*Keyspace) dropTargetNode() {}
func (*Table) dropTargetNode()    {}
func (*Index) dropTargetNode()    {}
func (*User) dropTargetNode()     {}
