package parser

import (
	"strconv"

	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/token"
	"github.com/google/uuid"
)

// parseTerm implements the `term` production (§4.4). Alternative
// order matters: float before integer (the decimal point rejects the
// integer alternative), UUID before identifier/reference (hyphenation
// distinguishes it) — both already resolved lexically by the lexer,
// which emits a single FLOAT/UUID token rather than forcing the
// parser to backtrack between alternatives.
func (p *Parser) parseTerm() ast.Term {
	start := p.pos()
	switch p.cur.Type {
	case token.BINDING:
		p.advance()
		return &ast.Binding{StartPos: start, EndPos: start}
	case token.FLOAT:
		val, err := strconv.ParseFloat(p.cur.Value, 64)
		if err != nil {
			p.errorf("invalid float literal %q", p.cur.Value)
			return nil
		}
		p.advance()
		return &ast.FloatLiteral{StartPos: start, EndPos: start, Value: val}
	case token.INT:
		val, err := strconv.ParseInt(p.cur.Value, 10, 64)
		if err != nil {
			p.errorf("invalid integer literal %q", p.cur.Value)
			return nil
		}
		p.advance()
		return &ast.IntLiteral{StartPos: start, EndPos: start, Value: val}
	case token.TRUE, token.FALSE:
		val := p.cur.Type == token.TRUE
		p.advance()
		return &ast.BoolLiteral{StartPos: start, EndPos: start, Value: val}
	case token.UUID:
		u, err := uuid.Parse(p.cur.Value)
		if err != nil {
			p.errorf("invalid uuid literal %q", p.cur.Value)
			return nil
		}
		p.advance()
		return &ast.UUIDLiteral{StartPos: start, EndPos: start, Value: u}
	case token.STRING:
		val := p.cur.Value
		p.advance()
		return &ast.StringLiteral{StartPos: start, EndPos: start, Value: val}
	case token.LBRACE:
		return p.parseMapOrSetLiteral()
	case token.LBRACK:
		return p.parseListLiteral()
	case token.TOKEN:
		return p.parseTokenCall()
	case token.WRITETIME, token.TTL:
		return p.parseFunctionCall()
	default:
		return p.parseReferenceTerm()
	}
}

// parseReferenceTerm parses a bare name as a term. A plain name is its
// own Identifier/QuotedName term (original_source/cql3parser/
// test_grammar.py:195-196: `foo = bar` is Property(Identifier('foo'),
// Identifier('bar')), not a Column-wrapped value) — it only becomes a
// Column wrapper when immediately subscripted, since CollectionItem's
// Column field requires one (§3, §4.4).
func (p *Parser) parseReferenceTerm() ast.Term {
	start := p.pos()
	if !p.curIs(token.IDENT) && !p.curIs(token.QIDENT) && !p.cur.Type.IsKeyword() {
		p.errorf("unexpected token %v in term", p.cur.Type)
		return nil
	}
	name := p.parseName()
	if p.curIs(token.LBRACK) {
		col := &ast.Column{StartPos: start, EndPos: p.lastEnd(), Name: name}
		return p.parseCollectionItem(start, col)
	}
	return name.(ast.Term)
}

func (p *Parser) parseCollectionItem(start token.Pos, col *ast.Column) *ast.CollectionItem {
	p.expect(token.LBRACK)
	key := p.parseTerm()
	p.expect(token.RBRACK)
	return &ast.CollectionItem{StartPos: start, EndPos: p.lastEnd(), Column: col, Key: key}
}

// parseMapOrSetLiteral implements the map/set literal productions
// (§4.4). Empty `{}` resolves to the empty map, per the map-first
// precedence documented in spec.md §9.
func (p *Parser) parseMapOrSetLiteral() ast.Term {
	start := p.expect(token.LBRACE).Pos

	if p.curIs(token.RBRACE) {
		p.advance()
		return &ast.MapLiteral{StartPos: start, EndPos: p.lastEnd()}
	}

	first := p.parseTerm()
	if p.curIs(token.COLON) {
		p.advance()
		firstVal := p.parseTerm()
		entries := []ast.MapEntry{{Key: first, Value: firstVal}}
		for p.curIs(token.COMMA) {
			p.advance()
			k := p.parseTerm()
			p.expect(token.COLON)
			v := p.parseTerm()
			entries = append(entries, ast.MapEntry{Key: k, Value: v})
		}
		p.expect(token.RBRACE)
		return &ast.MapLiteral{StartPos: start, EndPos: p.lastEnd(), Entries: entries}
	}

	items := []ast.Term{first}
	for p.curIs(token.COMMA) {
		p.advance()
		items = append(items, p.parseTerm())
	}
	p.expect(token.RBRACE)
	return &ast.SetLiteral{StartPos: start, EndPos: p.lastEnd(), Items: items}
}

// parseListLiteral implements the list literal production (§4.4).
func (p *Parser) parseListLiteral() *ast.ListLiteral {
	start := p.expect(token.LBRACK).Pos
	if p.curIs(token.RBRACK) {
		p.advance()
		return &ast.ListLiteral{StartPos: start, EndPos: p.lastEnd()}
	}
	items := []ast.Term{p.parseTerm()}
	for p.curIs(token.COMMA) {
		p.advance()
		items = append(items, p.parseTerm())
	}
	p.expect(token.RBRACK)
	return &ast.ListLiteral{StartPos: start, EndPos: p.lastEnd(), Items: items}
}

// parseTokenCall implements `TOKEN(args)` with term arguments (§4.4),
// the form used on the right-hand side of a relation and in term
// position; a bare name argument is an Identifier term. The
// left-hand-side form, whose args are columns, is parsed by
// parseRelation.
func (p *Parser) parseTokenCall() *ast.TokenCall {
	start := p.expect(token.TOKEN).Pos
	p.expect(token.LPAREN)
	args := []ast.Term{p.parseTerm()}
	for p.curIs(token.COMMA) {
		p.advance()
		args = append(args, p.parseTerm())
	}
	p.expect(token.RPAREN)
	return &ast.TokenCall{StartPos: start, EndPos: p.lastEnd(), Args: args}
}

// parseFunctionCall implements `WRITETIME(col)` and `TTL(col)` (§4.4).
func (p *Parser) parseFunctionCall() *ast.Function {
	start := p.pos()
	name := p.cur.Value
	p.advance()
	p.expect(token.LPAREN)
	col := p.parseColumn()
	p.expect(token.RPAREN)
	return &ast.Function{StartPos: start, EndPos: p.lastEnd(), Name: name, Arg: col}
}

// parseRelation implements one of the three relation shapes (§4.6).
func (p *Parser) parseRelation() *ast.Relation {
	start := p.pos()

	var lhs ast.Term
	if p.curIs(token.TOKEN) {
		tstart := p.expect(token.TOKEN).Pos
		p.expect(token.LPAREN)
		args := []ast.Term{p.parseColumn()}
		for p.curIs(token.COMMA) {
			p.advance()
			args = append(args, p.parseColumn())
		}
		p.expect(token.RPAREN)
		lhs = &ast.TokenCall{StartPos: tstart, EndPos: p.lastEnd(), Args: args}
	} else {
		lhs = p.parseColumn()
	}

	switch p.cur.Type {
	case token.EQ, token.LT, token.LTE, token.GT, token.GTE:
		op := relOpFor(p.cur.Type)
		p.advance()
		var rhs ast.Term
		if p.curIs(token.TOKEN) {
			rhs = p.parseTokenCall()
		} else {
			rhs = p.parseTerm()
		}
		return &ast.Relation{StartPos: start, EndPos: p.lastEnd(), LHS: lhs, Op: op, RHS: rhs}
	case token.IN:
		p.advance()
		p.expect(token.LPAREN)
		items := []ast.Term{p.parseTerm()}
		for p.curIs(token.COMMA) {
			p.advance()
			items = append(items, p.parseTerm())
		}
		p.expect(token.RPAREN)
		return &ast.Relation{StartPos: start, EndPos: p.lastEnd(), LHS: lhs, Op: ast.OpIN, RHSList: items}
	default:
		p.errorf("expected relational operator, got %v", p.cur.Type)
		return nil
	}
}

func relOpFor(t token.Token) ast.RelOp {
	switch t {
	case token.EQ:
		return ast.OpEQ
	case token.LT:
		return ast.OpLT
	case token.LTE:
		return ast.OpLE
	case token.GT:
		return ast.OpGT
	case token.GTE:
		return ast.OpGE
	}
	return ""
}

// parseRelations implements `relations ::= relation (AND relation)*`
// (§4.6).
func (p *Parser) parseRelations() []*ast.Relation {
	rels := []*ast.Relation{p.parseRelation()}
	for p.curIs(token.AND) {
		p.advance()
		rels = append(rels, p.parseRelation())
	}
	return rels
}

// parseProperties implements `properties ::= property (AND property)*`
// where `property ::= identifier '=' term` (§4.5). The REPLICATION
// key is canonicalized to Identifier('replication') regardless of
// input case (§4.7, §4.8).
func (p *Parser) parseProperties() *ast.Properties {
	start := p.pos()
	props := []*ast.Property{p.parseProperty()}
	for p.curIs(token.AND) {
		p.advance()
		props = append(props, p.parseProperty())
	}
	return &ast.Properties{StartPos: start, EndPos: p.lastEnd(), List: props}
}

// parseProperty implements `property ::= identifier '=' term` (§4.5).
// Ordinary identifier case-folding (§4.1, every Identifier stores its
// text lower-cased) already canonicalizes any spelling of REPLICATION
// to Identifier('replication') — no separate special-case is needed
// here (§4.7, §4.8).
func (p *Parser) parseProperty() *ast.Property {
	start := p.pos()
	key := p.parseIdentifier()
	p.expect(token.EQ)
	value := p.parseTerm()
	return &ast.Property{StartPos: start, EndPos: p.lastEnd(), Key: key, Value: value}
}
