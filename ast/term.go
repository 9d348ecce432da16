package ast

import (
	"github.com/dreid/cql3parser/token"
	"github.com/google/uuid"
)

// IntLiteral is a signed decimal integer term (§4.1).
type IntLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    int64
}

func (*IntLiteral) termNode()        {}
func (n *IntLiteral) Pos() token.Pos { return n.StartPos }
func (n *IntLiteral) End() token.Pos { return n.EndPos }

// FloatLiteral is a binary floating-point term (§4.1).
type FloatLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    float64
}

func (*FloatLiteral) termNode()        {}
func (n *FloatLiteral) Pos() token.Pos { return n.StartPos }
func (n *FloatLiteral) End() token.Pos { return n.EndPos }

// StringLiteral is a decoded string term (§4.1): '' escapes already
// collapsed to a single quote.
type StringLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    string
}

func (*StringLiteral) termNode()        {}
func (n *StringLiteral) Pos() token.Pos { return n.StartPos }
func (n *StringLiteral) End() token.Pos { return n.EndPos }

// BoolLiteral is a TRUE/FALSE term (§4.1).
type BoolLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    bool
}

func (*BoolLiteral) termNode()        {}
func (n *BoolLiteral) Pos() token.Pos { return n.StartPos }
func (n *BoolLiteral) End() token.Pos { return n.EndPos }

// UUIDLiteral is a parsed UUID or timeuuid term (§4.1). The parser
// does not distinguish UUID versions; it returns whatever value the
// text encodes.
type UUIDLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Value    uuid.UUID
}

func (*UUIDLiteral) termNode()        {}
func (n *UUIDLiteral) Pos() token.Pos { return n.StartPos }
func (n *UUIDLiteral) End() token.Pos { return n.EndPos }

// MapEntry is one key:value pair of a MapLiteral.
type MapEntry struct {
	Key   Term
	Value Term
}

// MapLiteral is a `{ k:v, ... }` collection term (§4.4). Empty `{}`
// is resolved to MapLiteral with no entries, per the map-first
// precedence documented in spec.md §9.
type MapLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Entries  []MapEntry
}

func (*MapLiteral) termNode()        {}
func (n *MapLiteral) Pos() token.Pos { return n.StartPos }
func (n *MapLiteral) End() token.Pos { return n.EndPos }

// ListLiteral is a `[ t1, t2, ... ]` collection term (§4.4).
type ListLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Items    []Term
}

func (*ListLiteral) termNode()        {}
func (n *ListLiteral) Pos() token.Pos { return n.StartPos }
func (n *ListLiteral) End() token.Pos { return n.EndPos }

// SetLiteral is a `{ t1, t2, ... }` collection term (§4.4),
// distinguished from MapLiteral by the absence of any `:`.
type SetLiteral struct {
	StartPos token.Pos
	EndPos   token.Pos
	Items    []Term
}

func (*SetLiteral) termNode()        {}
func (n *SetLiteral) Pos() token.Pos { return n.StartPos }
func (n *SetLiteral) End() token.Pos { return n.EndPos }
