package parser

import (
	"strconv"

	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/token"
)

// parseUse implements `USE keyspace` (§4.7).
func (p *Parser) parseUse() *ast.Use {
	start := p.expect(token.USE).Pos
	ks := p.parseKeyspace()
	return &ast.Use{StartPos: start, EndPos: p.lastEnd(), Keyspace: ks}
}

// parseSelect implements the SELECT grammar (§4.7). Missing optional
// clauses leave the corresponding field nil.
func (p *Parser) parseSelect() *ast.Select {
	start := p.expect(token.SELECT).Pos
	selectors := p.parseSelectors()
	p.expect(token.FROM)
	from := p.parseTable()

	sel := &ast.Select{StartPos: start, Selectors: selectors, From: from}

	if p.curIs(token.WHERE) {
		p.advance()
		sel.Where = p.parseRelations()
	}
	if p.curIs(token.ORDER) {
		p.advance()
		p.expect(token.BY)
		col := p.parseColumn()
		dir := "ASC"
		if p.curIs(token.ASC) {
			p.advance()
		} else if p.curIs(token.DESC) {
			dir = "DESC"
			p.advance()
		}
		sel.Order = &ast.OrderBy{StartPos: col.Pos(), EndPos: p.lastEnd(), Column: col, Direction: dir}
	}
	if p.curIs(token.LIMIT) {
		lstart := p.pos()
		p.advance()
		n := p.parseIntValue()
		sel.Limit = &ast.Limit{StartPos: lstart, EndPos: p.lastEnd(), N: n}
	}
	if p.curIs(token.ALLOW) {
		astart := p.pos()
		p.advance()
		p.expect(token.FILTERING)
		sel.AllowFiltering = &ast.AllowFiltering{StartPos: astart, EndPos: p.lastEnd()}
	}
	sel.EndPos = p.lastEnd()
	return sel
}

// parseSelectors implements the `selectors` alternatives: `*`,
// `COUNT(*|1)` (canonicalized to Count), or a non-empty Column/
// Function list (§3, §4.4, §4.7, §4.8).
func (p *Parser) parseSelectors() []ast.Selector {
	start := p.pos()
	if p.curIs(token.STAR) {
		p.advance()
		return []ast.Selector{&ast.SelectAll{StartPos: start, EndPos: start}}
	}
	if p.curIs(token.COUNT) {
		p.advance()
		p.expect(token.LPAREN)
		if !p.tryCountArg() {
			p.errorf("expected * or 1 in COUNT(...)")
		}
		p.expect(token.RPAREN)
		return []ast.Selector{&ast.Count{StartPos: start, EndPos: p.lastEnd()}}
	}

	first := p.parseSelector()
	sels := []ast.Selector{first}
	for p.curIs(token.COMMA) {
		p.advance()
		sels = append(sels, p.parseSelector())
	}
	return sels
}

func (p *Parser) tryCountArg() bool {
	if p.curIs(token.STAR) {
		p.advance()
		return true
	}
	if p.curIs(token.INT) && p.cur.Value == "1" {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) parseSelector() ast.Selector {
	if p.curIs(token.WRITETIME) || p.curIs(token.TTL) {
		return p.parseFunctionCall()
	}
	return p.parseColumn()
}

// parseInsert implements `INSERT INTO table (col,...) VALUES
// (term,...) [USING opt (AND opt)*]` (§4.7).
func (p *Parser) parseInsert() *ast.Insert {
	start := p.expect(token.INSERT).Pos
	p.expect(token.INTO)
	table := p.parseTable()

	p.expect(token.LPAREN)
	cols := []*ast.Column{p.parseColumn()}
	for p.curIs(token.COMMA) {
		p.advance()
		cols = append(cols, p.parseColumn())
	}
	p.expect(token.RPAREN)

	p.expect(token.VALUES)
	p.expect(token.LPAREN)
	vals := []ast.Term{p.parseTerm()}
	for p.curIs(token.COMMA) {
		p.advance()
		vals = append(vals, p.parseTerm())
	}
	p.expect(token.RPAREN)

	ins := &ast.Insert{StartPos: start, Table: table, Columns: cols, Values: vals}
	if p.curIs(token.USING) {
		ins.Using = p.parseUsingOptions()
	}
	ins.EndPos = p.lastEnd()
	return ins
}

// parseUsingOptions implements `USING opt (AND opt)*` where opt is
// `TIMESTAMP integer` or `TTL integer` (§4.7).
func (p *Parser) parseUsingOptions() []ast.UsingOption {
	p.expect(token.USING)
	opts := []ast.UsingOption{p.parseUsingOption()}
	for p.curIs(token.AND) {
		p.advance()
		opts = append(opts, p.parseUsingOption())
	}
	return opts
}

func (p *Parser) parseUsingOption() ast.UsingOption {
	start := p.pos()
	switch p.cur.Type {
	case token.TIMESTAMP:
		p.advance()
		n := p.parseIntValue()
		return &ast.Timestamp{StartPos: start, EndPos: p.lastEnd(), N: n}
	case token.TTL:
		p.advance()
		n := p.parseIntValue()
		return &ast.Ttl{StartPos: start, EndPos: p.lastEnd(), N: n}
	default:
		p.errorf("expected TIMESTAMP or TTL, got %v", p.cur.Type)
		return nil
	}
}

func (p *Parser) parseIntValue() int64 {
	if !p.curIs(token.INT) {
		p.errorf("expected integer, got %v", p.cur.Type)
		return 0
	}
	n, err := strconv.ParseInt(p.cur.Value, 10, 64)
	if err != nil {
		p.errorf("invalid integer literal %q", p.cur.Value)
		return 0
	}
	p.advance()
	return n
}

// parseUpdate implements `UPDATE table [USING options] SET
// assignment (, assignment)* WHERE relations` (§4.7).
func (p *Parser) parseUpdate() *ast.Update {
	start := p.expect(token.UPDATE).Pos
	table := p.parseTable()

	upd := &ast.Update{StartPos: start, Table: table}
	if p.curIs(token.USING) {
		upd.Using = p.parseUsingOptions()
	}
	p.expect(token.SET)
	upd.Set = []*ast.Assignment{p.parseAssignment()}
	for p.curIs(token.COMMA) {
		p.advance()
		upd.Set = append(upd.Set, p.parseAssignment())
	}
	p.expect(token.WHERE)
	upd.Where = p.parseRelations()
	upd.EndPos = p.lastEnd()
	return upd
}

// parseAssignment implements `column = term | column[key] = term`
// (§4.7).
func (p *Parser) parseAssignment() *ast.Assignment {
	start := p.pos()
	col := p.parseColumn()
	var target ast.Term = col
	if p.curIs(token.LBRACK) {
		target = p.parseCollectionItem(start, col)
	}
	p.expect(token.EQ)
	value := p.parseTerm()
	return &ast.Assignment{StartPos: start, EndPos: p.lastEnd(), Target: target, Value: value}
}

// parseDelete implements `DELETE [column_or_subscript,...] FROM table
// [USING TIMESTAMP integer] WHERE relations` (§4.7). Absent column
// list means a whole-row delete (Columns == nil).
func (p *Parser) parseDelete() *ast.Delete {
	start := p.expect(token.DELETE).Pos

	del := &ast.Delete{StartPos: start}
	if !p.curIs(token.FROM) {
		del.Columns = []ast.Term{p.parseColumnOrSubscript()}
		for p.curIs(token.COMMA) {
			p.advance()
			del.Columns = append(del.Columns, p.parseColumnOrSubscript())
		}
	}
	p.expect(token.FROM)
	del.Table = p.parseTable()

	if p.curIs(token.USING) {
		del.Using = p.parseUsingOptions()
	}
	p.expect(token.WHERE)
	del.Where = p.parseRelations()
	del.EndPos = p.lastEnd()
	return del
}

func (p *Parser) parseColumnOrSubscript() ast.Term {
	start := p.pos()
	col := p.parseColumn()
	if p.curIs(token.LBRACK) {
		return p.parseCollectionItem(start, col)
	}
	return col
}

// parseTruncate implements `TRUNCATE table` (§4.7).
func (p *Parser) parseTruncate() *ast.Truncate {
	start := p.expect(token.TRUNCATE).Pos
	table := p.parseTable()
	return &ast.Truncate{StartPos: start, EndPos: p.lastEnd(), Table: table}
}

// parseBatch implements `BEGIN [UNLOGGED] BATCH [USING TIMESTAMP
// integer] statement (; statement)* [;] APPLY BATCH` (§4.7).
func (p *Parser) parseBatch() *ast.Batch {
	start := p.expect(token.BEGIN).Pos
	batch := &ast.Batch{StartPos: start}
	if p.curIs(token.UNLOGGED) {
		p.advance()
		batch.Unlogged = true
	}
	p.expect(token.BATCH)
	if p.curIs(token.USING) {
		batch.Using = p.parseUsingOptions()
	}

	batch.Statements = append(batch.Statements, p.parseBatchableStatement())
	for p.curIs(token.SEMI) {
		p.advance()
		if p.curIs(token.APPLY) {
			break
		}
		batch.Statements = append(batch.Statements, p.parseBatchableStatement())
	}
	p.expect(token.APPLY)
	p.expect(token.BATCH)
	batch.EndPos = p.lastEnd()
	return batch
}

func (p *Parser) parseBatchableStatement() ast.Statement {
	switch p.cur.Type {
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	default:
		p.errorf("expected INSERT, UPDATE, or DELETE in BATCH, got %v", p.cur.Type)
		return nil
	}
}
