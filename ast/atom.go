package ast

import "github.com/dreid/cql3parser/token"

// Identifier is an unquoted name, case-folded to lower case on scan
// (§3, §4.1).
type Identifier struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string // always lower-case
}

func (*Identifier) nameNode()            {}
func (*Identifier) termNode()            {}
func (i *Identifier) Pos() token.Pos     { return i.StartPos }
func (i *Identifier) End() token.Pos     { return i.EndPos }
func (i *Identifier) Text() string       { return i.Name }

// QuotedName is a double-quoted name with inner "" collapsed to a
// single ", case preserved exactly as written (§3, §4.1).
type QuotedName struct {
	StartPos token.Pos
	EndPos   token.Pos
	Name     string
}

func (*QuotedName) nameNode()        {}
func (*QuotedName) termNode()        {}
func (q *QuotedName) Pos() token.Pos { return q.StartPos }
func (q *QuotedName) End() token.Pos { return q.EndPos }
func (q *QuotedName) Text() string   { return q.Name }

// Binding is the `?` bind-variable placeholder term (§3, §4.4).
type Binding struct {
	StartPos token.Pos
	EndPos   token.Pos
}

func (*Binding) termNode()        {}
func (b *Binding) Pos() token.Pos { return b.StartPos }
func (b *Binding) End() token.Pos { return b.EndPos }

// NativeType names one of CQL3's primitive scalar types, tagged with
// its fully-qualified Cassandra marshaller class name (§3, §6).
type NativeType struct {
	StartPos  token.Pos
	EndPos    token.Pos
	Keyword   string // canonical uppercase keyword, e.g. "ASCII"
	ClassName string // e.g. "org.apache.cassandra.db.marshal.AsciiType"
}

func (*NativeType) termNode()        {}
func (n *NativeType) Pos() token.Pos { return n.StartPos }
func (n *NativeType) End() token.Pos { return n.EndPos }
