// Package format renders a CQL3 AST back to source text.
package format

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/dreid/cql3parser/ast"
)

// Options controls formatting behavior.
type Options struct {
	Uppercase bool // uppercase keywords
}

// DefaultOptions matches the canonical uppercase keyword spelling the
// lexer itself produces.
var DefaultOptions = Options{Uppercase: true}

// Formatter renders AST nodes to CQL3 text.
type Formatter struct {
	buf  bytes.Buffer
	opts Options
}

// New creates a Formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// String renders node using DefaultOptions.
func String(node ast.Node) string {
	f := New(DefaultOptions)
	f.Format(node)
	return f.String()
}

// String returns the text accumulated so far.
func (f *Formatter) String() string {
	return f.buf.String()
}

// Format renders node to the internal buffer.
func (f *Formatter) Format(node ast.Node) {
	if node == nil {
		return
	}
	switch n := node.(type) {
	case ast.Statement:
		f.formatStatement(n)
	case *ast.Identifier:
		f.writeIdent(n.Name)
	case *ast.QuotedName:
		f.writeQuoted(n.Name)
	case *ast.Keyspace:
		f.Format(n.Name)
	case *ast.Table:
		if n.Keyspace != nil {
			f.Format(n.Keyspace)
			f.write(".")
		}
		f.Format(n.Name)
	case *ast.Index:
		f.Format(n.Name)
	case *ast.Column:
		f.Format(n.Name)
	case *ast.User:
		f.Format(n.Name)
	case *ast.Binding:
		f.write("?")
	case *ast.NativeType:
		f.writeKeyword(n.Keyword)
	case *ast.IntLiteral:
		f.write(strconv.FormatInt(n.Value, 10))
	case *ast.FloatLiteral:
		f.write(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *ast.StringLiteral:
		f.formatStringLiteral(n.Value)
	case *ast.BoolLiteral:
		if n.Value {
			f.writeKeyword("true")
		} else {
			f.writeKeyword("false")
		}
	case *ast.UUIDLiteral:
		f.write(n.Value.String())
	case *ast.MapLiteral:
		f.formatMapLiteral(n)
	case *ast.ListLiteral:
		f.formatListLiteral(n)
	case *ast.SetLiteral:
		f.formatSetLiteral(n)
	case *ast.CollectionItem:
		f.Format(n.Column)
		f.write("[")
		f.Format(n.Key)
		f.write("]")
	case *ast.TokenCall:
		f.writeKeyword("token")
		f.write("(")
		f.formatTermList(n.Args)
		f.write(")")
	case *ast.Function:
		f.writeKeyword(n.Name)
		f.write("(")
		f.Format(n.Arg)
		f.write(")")
	case *ast.SelectAll:
		f.write("*")
	case *ast.Count:
		f.writeKeyword("COUNT")
		f.write("(*)")
	case *ast.Relation:
		f.formatRelation(n)
	case *ast.Property:
		f.Format(n.Key)
		f.write(" = ")
		f.Format(n.Value)
	case *ast.Properties:
		f.formatSeparated(propertiesToNodes(n.List), " AND ")
	case *ast.Timestamp:
		f.writeKeyword("TIMESTAMP")
		f.write(" ")
		f.write(strconv.FormatInt(n.N, 10))
	case *ast.Ttl:
		f.writeKeyword("TTL")
		f.write(" ")
		f.write(strconv.FormatInt(n.N, 10))
	case *ast.Permission:
		f.writeKeyword(n.Name)
	case *ast.AllPermissions:
		f.writeKeyword("ALL PERMISSIONS")
	case *ast.AllKeyspaces:
		f.writeKeyword("ALL KEYSPACES")
	}
}

func (f *Formatter) formatStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Use:
		f.writeKeyword("USE")
		f.write(" ")
		f.Format(s.Keyspace)
	case *ast.Select:
		f.formatSelect(s)
	case *ast.Insert:
		f.formatInsert(s)
	case *ast.Update:
		f.formatUpdate(s)
	case *ast.Delete:
		f.formatDelete(s)
	case *ast.Truncate:
		f.writeKeyword("TRUNCATE")
		f.write(" ")
		f.Format(s.Table)
	case *ast.CreateKeyspace:
		f.writeKeyword("CREATE KEYSPACE")
		f.write(" ")
		f.Format(s.Keyspace)
		f.write(" ")
		f.writeKeyword("WITH")
		f.write(" ")
		f.Format(s.Properties)
	case *ast.AlterKeyspace:
		f.writeKeyword("ALTER KEYSPACE")
		f.write(" ")
		f.Format(s.Keyspace)
		f.write(" ")
		f.writeKeyword("WITH")
		f.write(" ")
		f.Format(s.Properties)
	case *ast.Drop:
		f.formatDrop(s)
	case *ast.CreateIndex:
		f.formatCreateIndex(s)
	case *ast.CreateUser:
		f.writeKeyword("CREATE USER")
		f.write(" ")
		f.formatUserOptions(s.User, s.Password, s.Superuser)
	case *ast.AlterUser:
		f.writeKeyword("ALTER USER")
		f.write(" ")
		f.formatUserOptions(s.User, s.Password, s.Superuser)
	case *ast.Grant:
		f.writeKeyword("GRANT")
		f.write(" ")
		f.Format(s.Permission)
		f.write(" ")
		f.writeKeyword("ON")
		f.write(" ")
		f.Format(s.Resource)
		f.write(" ")
		f.writeKeyword("TO")
		f.write(" ")
		f.Format(s.User)
	case *ast.Revoke:
		f.writeKeyword("REVOKE")
		f.write(" ")
		f.Format(s.Permission)
		f.write(" ")
		f.writeKeyword("ON")
		f.write(" ")
		f.Format(s.Resource)
		f.write(" ")
		f.writeKeyword("FROM")
		f.write(" ")
		f.Format(s.User)
	case *ast.List:
		f.writeKeyword("LIST USERS")
	case *ast.Batch:
		f.formatBatch(s)
	}
}

func (f *Formatter) formatSelect(s *ast.Select) {
	f.writeKeyword("SELECT")
	f.write(" ")
	for i, sel := range s.Selectors {
		if i > 0 {
			f.write(", ")
		}
		f.Format(sel)
	}
	f.write(" ")
	f.writeKeyword("FROM")
	f.write(" ")
	f.Format(s.From)
	if s.Where != nil {
		f.write(" ")
		f.writeKeyword("WHERE")
		f.write(" ")
		f.formatRelations(s.Where)
	}
	if s.Order != nil {
		f.write(" ")
		f.writeKeyword("ORDER BY")
		f.write(" ")
		f.Format(s.Order.Column)
		f.write(" ")
		f.writeKeyword(s.Order.Direction)
	}
	if s.Limit != nil {
		f.write(" ")
		f.writeKeyword("LIMIT")
		f.write(" ")
		f.write(strconv.FormatInt(s.Limit.N, 10))
	}
	if s.AllowFiltering != nil {
		f.write(" ")
		f.writeKeyword("ALLOW FILTERING")
	}
}

func (f *Formatter) formatInsert(s *ast.Insert) {
	f.writeKeyword("INSERT INTO")
	f.write(" ")
	f.Format(s.Table)
	f.write(" (")
	for i, col := range s.Columns {
		if i > 0 {
			f.write(", ")
		}
		f.Format(col)
	}
	f.write(") ")
	f.writeKeyword("VALUES")
	f.write(" (")
	f.formatTermList(s.Values)
	f.write(")")
	f.formatUsing(s.Using)
}

func (f *Formatter) formatUpdate(s *ast.Update) {
	f.writeKeyword("UPDATE")
	f.write(" ")
	f.Format(s.Table)
	f.formatUsing(s.Using)
	f.write(" ")
	f.writeKeyword("SET")
	f.write(" ")
	for i, a := range s.Set {
		if i > 0 {
			f.write(", ")
		}
		f.Format(a.Target)
		f.write(" = ")
		f.Format(a.Value)
	}
	f.write(" ")
	f.writeKeyword("WHERE")
	f.write(" ")
	f.formatRelations(s.Where)
}

func (f *Formatter) formatDelete(s *ast.Delete) {
	f.writeKeyword("DELETE")
	if len(s.Columns) > 0 {
		f.write(" ")
		f.formatTermList(s.Columns)
	}
	f.write(" ")
	f.writeKeyword("FROM")
	f.write(" ")
	f.Format(s.Table)
	f.formatUsing(s.Using)
	f.write(" ")
	f.writeKeyword("WHERE")
	f.write(" ")
	f.formatRelations(s.Where)
}

func (f *Formatter) formatDrop(s *ast.Drop) {
	f.writeKeyword("DROP")
	f.write(" ")
	switch t := s.Target.(type) {
	case *ast.Keyspace:
		f.writeKeyword("KEYSPACE")
		f.write(" ")
		f.Format(t)
	case *ast.Table:
		f.writeKeyword("TABLE")
		f.write(" ")
		f.Format(t)
	case *ast.Index:
		f.writeKeyword("INDEX")
		f.write(" ")
		f.Format(t)
	case *ast.User:
		f.writeKeyword("USER")
		f.write(" ")
		f.Format(t)
	}
}

func (f *Formatter) formatCreateIndex(s *ast.CreateIndex) {
	f.writeKeyword("CREATE INDEX")
	if s.Index != nil {
		f.write(" ")
		f.Format(s.Index)
	}
	f.write(" ")
	f.writeKeyword("ON")
	f.write(" ")
	f.Format(s.Table)
	f.write(" (")
	f.Format(s.Column)
	f.write(")")
}

func (f *Formatter) formatUserOptions(user *ast.User, password *string, superuser *bool) {
	f.Format(user)
	if password != nil {
		f.write(" ")
		f.writeKeyword("WITH PASSWORD")
		f.write(" ")
		f.formatStringLiteral(*password)
	}
	if superuser != nil {
		f.write(" ")
		if *superuser {
			f.writeKeyword("SUPERUSER")
		} else {
			f.writeKeyword("NOSUPERUSER")
		}
	}
}

func (f *Formatter) formatBatch(s *ast.Batch) {
	f.writeKeyword("BEGIN")
	if s.Unlogged {
		f.write(" ")
		f.writeKeyword("UNLOGGED")
	}
	f.write(" ")
	f.writeKeyword("BATCH")
	f.formatUsing(s.Using)
	for _, stmt := range s.Statements {
		f.write(" ")
		f.formatStatement(stmt)
		f.write(";")
	}
	f.write(" ")
	f.writeKeyword("APPLY BATCH")
}

func (f *Formatter) formatUsing(opts []ast.UsingOption) {
	if len(opts) == 0 {
		return
	}
	f.write(" ")
	f.writeKeyword("USING")
	f.write(" ")
	for i, opt := range opts {
		if i > 0 {
			f.write(" ")
			f.writeKeyword("AND")
			f.write(" ")
		}
		f.Format(opt)
	}
}

func (f *Formatter) formatRelation(r *ast.Relation) {
	f.Format(r.LHS)
	f.write(" ")
	if r.Op == ast.OpIN {
		f.writeKeyword("IN")
		f.write(" (")
		f.formatTermList(r.RHSList)
		f.write(")")
		return
	}
	f.write(string(r.Op))
	f.write(" ")
	f.Format(r.RHS)
}

func (f *Formatter) formatRelations(rels []*ast.Relation) {
	for i, r := range rels {
		if i > 0 {
			f.write(" ")
			f.writeKeyword("AND")
			f.write(" ")
		}
		f.formatRelation(r)
	}
}

func (f *Formatter) formatMapLiteral(m *ast.MapLiteral) {
	f.write("{")
	for i, e := range m.Entries {
		if i > 0 {
			f.write(", ")
		}
		f.Format(e.Key)
		f.write(": ")
		f.Format(e.Value)
	}
	f.write("}")
}

func (f *Formatter) formatListLiteral(l *ast.ListLiteral) {
	f.write("[")
	f.formatTermList(l.Items)
	f.write("]")
}

func (f *Formatter) formatSetLiteral(s *ast.SetLiteral) {
	f.write("{")
	f.formatTermList(s.Items)
	f.write("}")
}

func (f *Formatter) formatTermList(terms []ast.Term) {
	for i, t := range terms {
		if i > 0 {
			f.write(", ")
		}
		f.Format(t)
	}
}

func propertiesToNodes(props []*ast.Property) []ast.Node {
	nodes := make([]ast.Node, len(props))
	for i, p := range props {
		nodes[i] = p
	}
	return nodes
}

func (f *Formatter) formatSeparated(nodes []ast.Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			f.write(sep)
		}
		f.Format(n)
	}
}

func (f *Formatter) write(s string) {
	f.buf.WriteString(s)
}

func (f *Formatter) writeKeyword(kw string) {
	if f.opts.Uppercase {
		f.buf.WriteString(strings.ToUpper(kw))
	} else {
		f.buf.WriteString(strings.ToLower(kw))
	}
}

func (f *Formatter) writeIdent(id string) {
	f.buf.WriteString(id)
}

func (f *Formatter) writeQuoted(name string) {
	f.buf.WriteByte('"')
	f.buf.WriteString(strings.ReplaceAll(name, `"`, `""`))
	f.buf.WriteByte('"')
}

func (f *Formatter) formatStringLiteral(s string) {
	f.buf.WriteByte('\'')
	f.buf.WriteString(strings.ReplaceAll(s, "'", "''"))
	f.buf.WriteByte('\'')
}
