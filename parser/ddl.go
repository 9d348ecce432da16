package parser

import (
	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/token"
)

// parseCreate dispatches `CREATE (KEYSPACE|SCHEMA|TABLE|COLUMNFAMILY|
// INDEX|USER) ...` (§4.7). CREATE TABLE/COLUMNFAMILY are not part of
// this grammar (spec.md §9, Open Question (b): the subset documented
// in SPEC_FULL.md); encountering them is a ParseError like any other
// unsupported construct.
func (p *Parser) parseCreate() ast.Statement {
	start := p.expect(token.CREATE).Pos
	switch p.cur.Type {
	case token.KEYSPACE, token.SCHEMA:
		return p.finishCreateKeyspace(start)
	case token.INDEX:
		return p.finishCreateIndex(start)
	case token.USER:
		return p.finishCreateUser(start)
	default:
		p.errorf("expected KEYSPACE, INDEX, or USER after CREATE, got %v", p.cur.Type)
		return nil
	}
}

// parseCreateKeyspace is the `create_keyspace` named-rule entry point
// (§6); it parses the whole `CREATE (KEYSPACE|SCHEMA) ...` statement.
func (p *Parser) parseCreateKeyspace() *ast.CreateKeyspace {
	start := p.expect(token.CREATE).Pos
	p.advanceKeywordPair(token.KEYSPACE, token.SCHEMA)
	return p.finishCreateKeyspace(start)
}

func (p *Parser) advanceKeywordPair(a, b token.Token) {
	if p.curIs(a) || p.curIs(b) {
		p.advance()
		return
	}
	p.errorf("expected KEYSPACE, got %v", p.cur.Type)
}

// finishCreateKeyspace implements `CREATE KEYSPACE keyspace WITH
// properties` (§4.7) with CREATE (KEYSPACE|SCHEMA) already consumed.
func (p *Parser) finishCreateKeyspace(start token.Pos) *ast.CreateKeyspace {
	ks := p.parseKeyspace()
	p.expect(token.WITH)
	props := p.parseProperties()
	return &ast.CreateKeyspace{StartPos: start, EndPos: p.lastEnd(), Keyspace: ks, Properties: props}
}

// parseAlterKeyspace is the `alter_keyspace` named-rule entry point;
// it parses the whole `ALTER (KEYSPACE|SCHEMA) ...` statement.
// parseAlter handles the same form inline.
func (p *Parser) parseAlterKeyspace() *ast.AlterKeyspace {
	start := p.expect(token.ALTER).Pos
	p.advanceKeywordPair(token.KEYSPACE, token.SCHEMA)
	ks := p.parseKeyspace()
	p.expect(token.WITH)
	props := p.parseProperties()
	return &ast.AlterKeyspace{StartPos: start, EndPos: p.lastEnd(), Keyspace: ks, Properties: props}
}

// parseAlter dispatches `ALTER (KEYSPACE|SCHEMA|USER) ...` (§4.7).
// ALTER TABLE/COLUMNFAMILY column operations (RENAME/ADD/TYPE) are
// outside this grammar's subset, same as CREATE TABLE.
func (p *Parser) parseAlter() ast.Statement {
	start := p.expect(token.ALTER).Pos
	switch p.cur.Type {
	case token.KEYSPACE, token.SCHEMA:
		p.advance()
		ks := p.parseKeyspace()
		p.expect(token.WITH)
		props := p.parseProperties()
		return &ast.AlterKeyspace{StartPos: start, EndPos: p.lastEnd(), Keyspace: ks, Properties: props}
	case token.USER:
		return p.finishAlterUser(start)
	default:
		p.errorf("expected KEYSPACE or USER after ALTER, got %v", p.cur.Type)
		return nil
	}
}

// parseDrop implements `DROP (KEYSPACE|SCHEMA|TABLE|COLUMNFAMILY|
// INDEX|USER) name` (§4.7).
func (p *Parser) parseDrop() *ast.Drop {
	start := p.expect(token.DROP).Pos
	var target ast.DropTarget
	switch p.cur.Type {
	case token.KEYSPACE, token.SCHEMA:
		p.advance()
		target = p.parseKeyspace()
	case token.TABLE, token.COLUMNFAMILY:
		p.advance()
		target = p.parseTable()
	case token.INDEX:
		p.advance()
		target = p.parseIndex()
	case token.USER:
		p.advance()
		target = p.parseUser()
	default:
		p.errorf("expected KEYSPACE, TABLE, INDEX, or USER after DROP, got %v", p.cur.Type)
		return nil
	}
	return &ast.Drop{StartPos: start, EndPos: p.lastEnd(), Target: target}
}

// parseCreateIndex is the `create_index` named-rule entry point.
func (p *Parser) parseCreateIndex() *ast.CreateIndex {
	start := p.expect(token.CREATE).Pos
	p.expect(token.INDEX)
	return p.finishCreateIndex(start)
}

// finishCreateIndex implements `CREATE INDEX [name] ON table (column)`
// (§4.7) with CREATE INDEX already consumed.
func (p *Parser) finishCreateIndex(start token.Pos) *ast.CreateIndex {
	var idx *ast.Index
	if !p.curIs(token.ON) {
		idx = p.parseIndex()
	}
	p.expect(token.ON)
	table := p.parseTable()
	p.expect(token.LPAREN)
	col := p.parseColumn()
	p.expect(token.RPAREN)
	return &ast.CreateIndex{StartPos: start, EndPos: p.lastEnd(), Index: idx, Table: table, Column: col}
}

// parseCreateUser is the `create_user` named-rule entry point.
func (p *Parser) parseCreateUser() *ast.CreateUser {
	start := p.expect(token.CREATE).Pos
	p.expect(token.USER)
	return p.finishCreateUser(start)
}

// finishCreateUser implements `CREATE USER user [WITH PASSWORD
// string] [SUPERUSER|NOSUPERUSER]` (§4.7) with CREATE USER already
// consumed.
func (p *Parser) finishCreateUser(start token.Pos) *ast.CreateUser {
	user := p.parseUser()
	cu := &ast.CreateUser{StartPos: start, User: user}
	if p.curIs(token.WITH) {
		p.advance()
		p.expect(token.PASSWORD)
		pw := p.expect(token.STRING).Value
		cu.Password = &pw
	}
	switch p.cur.Type {
	case token.SUPERUSER:
		p.advance()
		v := true
		cu.Superuser = &v
	case token.NOSUPERUSER:
		p.advance()
		v := false
		cu.Superuser = &v
	}
	cu.EndPos = p.lastEnd()
	return cu
}

// parseAlterUser is the `alter_user` named-rule entry point.
func (p *Parser) parseAlterUser() *ast.AlterUser {
	start := p.expect(token.ALTER).Pos
	p.expect(token.USER)
	return p.finishAlterUser(start)
}

// finishAlterUser implements `ALTER USER user [WITH PASSWORD string]
// [SUPERUSER|NOSUPERUSER]` (§4.7) with ALTER USER already consumed.
func (p *Parser) finishAlterUser(start token.Pos) *ast.AlterUser {
	user := p.parseUser()
	au := &ast.AlterUser{StartPos: start, User: user}
	if p.curIs(token.WITH) {
		p.advance()
		p.expect(token.PASSWORD)
		pw := p.expect(token.STRING).Value
		au.Password = &pw
	}
	switch p.cur.Type {
	case token.SUPERUSER:
		p.advance()
		v := true
		au.Superuser = &v
	case token.NOSUPERUSER:
		p.advance()
		v := false
		au.Superuser = &v
	}
	au.EndPos = p.lastEnd()
	return au
}

// parsePermissionSet implements `permission_set ::= ALL [PERMISSIONS]
// | permission` (§4.7).
func (p *Parser) parsePermissionSet() ast.PermissionSet {
	start := p.pos()
	if p.curIs(token.ALL) {
		p.advance()
		if p.curIs(token.PERMISSION) || p.curIs(token.PERMISSIONS) {
			p.advance()
		}
		return &ast.AllPermissions{StartPos: start, EndPos: p.lastEnd()}
	}
	name, ok := p.permissionName()
	if !ok {
		p.errorf("expected a permission name, got %v", p.cur.Type)
		return nil
	}
	p.advance()
	if p.curIs(token.PERMISSION) || p.curIs(token.PERMISSIONS) {
		p.advance()
	}
	return &ast.Permission{StartPos: start, EndPos: p.lastEnd(), Name: name}
}

func (p *Parser) permissionName() (string, bool) {
	switch p.cur.Type {
	case token.CREATE:
		return "CREATE", true
	case token.ALTER:
		return "ALTER", true
	case token.DROP:
		return "DROP", true
	case token.SELECT:
		return "SELECT", true
	case token.MODIFY:
		return "MODIFY", true
	case token.AUTHORIZE:
		return "AUTHORIZE", true
	default:
		return "", false
	}
}

// parseResource implements `resource ::= ALL KEYSPACES | KEYSPACE
// keyspace | [TABLE] table` (§4.7).
func (p *Parser) parseResource() ast.Resource {
	start := p.pos()
	switch p.cur.Type {
	case token.ALL:
		p.advance()
		p.expect(token.KEYSPACES)
		return &ast.AllKeyspaces{StartPos: start, EndPos: p.lastEnd()}
	case token.KEYSPACE:
		p.advance()
		return p.parseKeyspace()
	case token.TABLE, token.COLUMNFAMILY:
		p.advance()
		return p.parseTable()
	default:
		return p.parseTable()
	}
}

// parseGrant implements `GRANT permission_set ON resource TO user`
// (§4.7).
func (p *Parser) parseGrant() *ast.Grant {
	start := p.expect(token.GRANT).Pos
	perm := p.parsePermissionSet()
	p.expect(token.ON)
	res := p.parseResource()
	p.expect(token.TO)
	user := p.parseUser()
	return &ast.Grant{StartPos: start, EndPos: p.lastEnd(), Permission: perm, Resource: res, User: user}
}

// parseRevoke implements `REVOKE permission_set ON resource FROM
// user` (§4.7).
func (p *Parser) parseRevoke() *ast.Revoke {
	start := p.expect(token.REVOKE).Pos
	perm := p.parsePermissionSet()
	p.expect(token.ON)
	res := p.parseResource()
	p.expect(token.FROM)
	user := p.parseUser()
	return &ast.Revoke{StartPos: start, EndPos: p.lastEnd(), Permission: perm, Resource: res, User: user}
}

// parseListUsers implements `LIST USERS` (§4.7); today it is the only
// LIST target defined by the grammar.
func (p *Parser) parseListUsers() *ast.List {
	start := p.expect(token.LIST).Pos
	p.expect(token.USERS)
	users := &ast.Users{StartPos: start, EndPos: p.lastEnd()}
	return &ast.List{StartPos: start, EndPos: p.lastEnd(), Of: users}
}
