// Package parser implements a recursive-descent parser for CQL3
// (§2, §4). It consumes a token stream from lexer.Lexer and builds
// the ast package's tagged-variant tree; it performs no execution,
// schema validation, or value coercion (§1, non-goals).
package parser

import (
	"fmt"
	"sync"

	"github.com/dreid/cql3parser/ast"
	"github.com/dreid/cql3parser/lexer"
	"github.com/dreid/cql3parser/token"
)

// Parser holds the mutable state of one parse. It fails at the first
// syntax error; there is no error recovery (§7).
type Parser struct {
	lexer *lexer.Lexer
	errs  []ParseError
	cur   token.Item
}

// ParseError reports the position and expectation that made parsing
// fail (§7).
type ParseError struct {
	Pos     token.Pos
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// New creates a Parser over input and primes its first token.
func New(input string) *Parser {
	p := &Parser{lexer: lexer.New(input)}
	p.advance()
	return p
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a pooled Parser for input. Call Put when done.
func Get(input string) *Parser {
	p := parserPool.Get().(*Parser)
	p.lexer = lexer.Get(input)
	p.errs = p.errs[:0]
	p.cur = token.Item{}
	p.advance()
	return p
}

// Put returns p and its lexer to their pools.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	parserPool.Put(p)
}

// Parse parses one statement, the generic top-level `statement` rule
// (§6, "Entry point"). The whole input must be consumed; trailing
// unconsumed tokens are a ParseError.
func (p *Parser) Parse() (ast.Statement, error) {
	if p.curIs(token.EOF) {
		return nil, nil
	}
	stmt := p.parseStatement()
	if err := p.firstError(); err != nil {
		return nil, err
	}
	if !p.curIs(token.EOF) {
		p.errorf("unexpected token %v after statement", p.cur.Type)
		return nil, p.firstError()
	}
	return stmt, nil
}

// ParseRule parses a single named grammar rule (§6, "Entry point":
// `parse(input, rule_name)`) and returns its AST node. It does not
// require the whole input to be consumed, matching the source
// grammar's per-rule entry points exercised directly by tests (e.g.
// `CQL3(input).identifier()`).
func ParseRule(input, rule string) (ast.Node, error) {
	p := New(input)
	node := p.parseRule(rule)
	if err := p.firstError(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) firstError() error {
	if len(p.errs) == 0 {
		return nil
	}
	return p.errs[0]
}

// --- token navigation ---

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) peek() token.Item {
	return p.lexer.Peek()
}

func (p *Parser) curIs(t token.Token) bool {
	return p.cur.Type == t
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.peek().Type == t
}

func (p *Parser) expect(t token.Token) token.Item {
	if !p.curIs(t) {
		p.errorf("expected %v, got %v", t, p.cur.Type)
		return p.cur
	}
	item := p.cur
	p.advance()
	return item
}

func (p *Parser) errorf(format string, args ...interface{}) {
	if len(p.errs) > 0 {
		return // first error wins (§7: no multi-error accumulation)
	}
	p.errs = append(p.errs, ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)})
}

// k matches a keyword token case-insensitively (the lexer already
// folds keyword case) and returns its canonical uppercase spelling,
// advancing past it (§4.1, rule `k(name)`).
func (p *Parser) k(t token.Token) (string, bool) {
	if p.cur.Type != t {
		return "", false
	}
	val := p.cur.Value
	p.advance()
	return val, true
}

func (p *Parser) pos() token.Pos {
	return p.cur.Pos
}

// parseStatement dispatches the generic `statement` rule (§2, §4.7).
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.USE:
		return p.parseUse()
	case token.SELECT:
		return p.parseSelect()
	case token.INSERT:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.GRANT:
		return p.parseGrant()
	case token.REVOKE:
		return p.parseRevoke()
	case token.LIST:
		return p.parseListUsers()
	case token.BEGIN:
		return p.parseBatch()
	default:
		p.errorf("unexpected token %v at start of statement", p.cur.Type)
		return nil
	}
}

// parseRule dispatches ParseRule's named-rule entry point. Names
// follow the source grammar's own rule names (see
// original_source/cql3parser/grammar.py and test_grammar.py).
func (p *Parser) parseRule(rule string) ast.Node {
	switch rule {
	case "statement":
		return p.parseStatement()
	case "use":
		return p.parseUse()
	case "select":
		return p.parseSelect()
	case "insert":
		return p.parseInsert()
	case "update":
		return p.parseUpdate()
	case "delete":
		return p.parseDelete()
	case "truncate":
		return p.parseTruncate()
	case "batch":
		return p.parseBatch()
	case "create_keyspace":
		return p.parseCreateKeyspace()
	case "alter_keyspace":
		return p.parseAlterKeyspace()
	case "drop":
		return p.parseDrop()
	case "create_index":
		return p.parseCreateIndex()
	case "create_user":
		return p.parseCreateUser()
	case "alter_user":
		return p.parseAlterUser()
	case "grant":
		return p.parseGrant()
	case "revoke":
		return p.parseRevoke()
	case "list_users":
		return p.parseListUsers()
	case "permission_set":
		return p.parsePermissionSet()
	case "resource":
		return p.parseResource()
	case "identifier":
		return p.parseIdentifier()
	case "quoted_name":
		return p.parseQuotedName()
	case "keyspace":
		return p.parseKeyspace()
	case "table":
		return p.parseTable()
	case "index":
		return p.parseIndex()
	case "user":
		return p.parseUser()
	case "term":
		return p.parseTerm()
	case "properties":
		return p.parseProperties()
	case "relations":
		return relationsNode(p.parseRelations())
	case "native_type":
		return p.parseNativeType()
	default:
		p.errorf("unknown rule %q", rule)
		return nil
	}
}

// relationsNode adapts a []*ast.Relation to a single ast.Node so
// ParseRule's signature can stay uniform.
type relationsNode []*ast.Relation

func (relationsNode) Pos() token.Pos { return token.Pos{} }
func (relationsNode) End() token.Pos { return token.Pos{} }
