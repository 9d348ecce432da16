package parser

import (
	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/token"
)

// parseName implements `identifier ::= Identifier | QuotedName` (§4.3).
// The source grammar's reserved-word list (§6) is not actually enforced
// in name positions (original_source/cql3parser/test_grammar.py:157,
// :243-248 accept `table` and `keyspace.table` as identifiers), so any
// keyword token — reserved or unreserved — is also accepted here,
// folded to lower case like any other identifier.
func (p *Parser) parseName() ast.Name {
	switch {
	case p.curIs(token.QIDENT):
		return p.parseQuotedName()
	case p.curIs(token.IDENT):
		return p.parseIdentifier()
	case p.cur.Type.IsKeyword():
		start := p.pos()
		text := p.cur.Value
		p.advance()
		return &ast.Identifier{StartPos: start, EndPos: start, Name: toLowerASCII(text)}
	default:
		p.errorf("expected identifier, got %v", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	if !p.curIs(token.IDENT) {
		if p.cur.Type.IsKeyword() {
			start := p.pos()
			text := toLowerASCII(p.cur.Value)
			p.advance()
			return &ast.Identifier{StartPos: start, EndPos: start, Name: text}
		}
		p.errorf("expected identifier, got %v", p.cur.Type)
		return nil
	}
	item := p.expect(token.IDENT)
	return &ast.Identifier{StartPos: item.Pos, EndPos: item.Pos, Name: item.Value}
}

func (p *Parser) parseQuotedName() *ast.QuotedName {
	item := p.expect(token.QIDENT)
	return &ast.QuotedName{StartPos: item.Pos, EndPos: item.Pos, Name: item.Value}
}

// parseKeyspace implements `keyspace ::= identifier` (§4.3).
func (p *Parser) parseKeyspace() *ast.Keyspace {
	start := p.pos()
	name := p.parseName()
	return &ast.Keyspace{StartPos: start, EndPos: p.lastEnd(), Name: name}
}

// parseTable implements `table ::= (keyspace '.')? identifier` (§4.3).
func (p *Parser) parseTable() *ast.Table {
	start := p.pos()
	first := p.parseName()
	if p.curIs(token.DOT) {
		p.advance()
		name := p.parseName()
		return &ast.Table{
			StartPos: start,
			EndPos:   p.lastEnd(),
			Name:     name,
			Keyspace: &ast.Keyspace{StartPos: start, EndPos: start, Name: first},
		}
	}
	return &ast.Table{StartPos: start, EndPos: p.lastEnd(), Name: first}
}

// parseIndex implements `index ::= identifier` (§4.3).
func (p *Parser) parseIndex() *ast.Index {
	start := p.pos()
	name := p.parseName()
	return &ast.Index{StartPos: start, EndPos: p.lastEnd(), Name: name}
}

// parseColumn implements `column ::= identifier` (§4.3).
func (p *Parser) parseColumn() *ast.Column {
	start := p.pos()
	name := p.parseName()
	return &ast.Column{StartPos: start, EndPos: p.lastEnd(), Name: name}
}

// parseUser implements `user ::= identifier | string` (§4.3). A
// string literal is stored unwrapped as a StringLiteral term, never
// folded into Identifier.
func (p *Parser) parseUser() *ast.User {
	start := p.pos()
	if p.curIs(token.STRING) {
		item := p.cur
		p.advance()
		return &ast.User{
			StartPos: start,
			EndPos:   item.Pos,
			Name:     &ast.StringLiteral{StartPos: item.Pos, EndPos: item.Pos, Value: item.Value},
		}
	}
	name := p.parseName()
	return &ast.User{StartPos: start, EndPos: p.lastEnd(), Name: name}
}

// parseNativeType implements `native_type` (§4.2, §6): a keyword or
// bare word whose upper-cased spelling names one of the 16 native
// types, tagged with its marshaller class name.
func (p *Parser) parseNativeType() *ast.NativeType {
	start := p.pos()
	text := p.cur.Value
	upper := text
	if p.curIs(token.IDENT) {
		upper = toUpperASCII(text)
	}
	class, ok := token.NativeTypeClass(upper)
	if !ok {
		p.errorf("expected native type, got %v", p.cur.Type)
		return nil
	}
	p.advance()
	return &ast.NativeType{StartPos: start, EndPos: start, Keyword: upper, ClassName: class}
}

// lastEnd stands in for the end position of the token just consumed.
// Since Parser doesn't retain a lookbehind item, it returns the start
// position of the current (not yet consumed) token; exact enough for a parser
// that never needs byte-accurate node spans downstream (§3 lifecycle:
// consumed by the caller, never mutated, no positional arithmetic
// required of it).
func (p *Parser) lastEnd() token.Pos {
	return p.cur.Pos
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}
