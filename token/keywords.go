package token

// keywords maps the lower-cased spelling of every reserved keyword to
// its token. Built once in init, mirroring the teacher's LookupIdent
// table in shape (a single map, case folded on lookup).
var keywords map[string]Token

// keywordName is the inverse of keywords, giving back the canonical
// uppercase spelling Token.String() reports.
var keywordName map[Token]string

// unreserved is the subset of keyword tokens that may additionally
// appear in identifier positions (§6, "Unreserved keywords").
var unreserved map[Token]bool

func init() {
	keywords = map[string]Token{
		"select":       SELECT,
		"from":         FROM,
		"where":        WHERE,
		"and":          AND,
		"key":          KEY,
		"insert":       INSERT,
		"update":       UPDATE,
		"with":         WITH,
		"limit":        LIMIT,
		"using":        USING,
		"use":          USE,
		"count":        COUNT,
		"set":          SET,
		"begin":        BEGIN,
		"unlogged":     UNLOGGED,
		"batch":        BATCH,
		"apply":        APPLY,
		"truncate":     TRUNCATE,
		"delete":       DELETE,
		"in":           IN,
		"create":       CREATE,
		"keyspace":     KEYSPACE,
		"schema":       SCHEMA,
		"keyspaces":    KEYSPACES,
		"columnfamily": COLUMNFAMILY,
		"table":        TABLE,
		"index":        INDEX,
		"on":           ON,
		"to":           TO,
		"drop":         DROP,
		"primary":      PRIMARY,
		"into":         INTO,
		"values":       VALUES,
		"timestamp":    TIMESTAMP,
		"ttl":          TTL,
		"alter":        ALTER,
		"rename":       RENAME,
		"add":          ADD,
		"type":         TYPE,
		"compact":      COMPACT,
		"storage":      STORAGE,
		"order":        ORDER,
		"by":           BY,
		"asc":          ASC,
		"desc":         DESC,
		"allow":        ALLOW,
		"filtering":    FILTERING,
		"grant":        GRANT,
		"all":          ALL,
		"permission":   PERMISSION,
		"permissions":  PERMISSIONS,
		"of":           OF,
		"revoke":       REVOKE,
		"modify":       MODIFY,
		"authorize":    AUTHORIZE,
		"norecursive":  NORECURSIVE,
		"user":         USER,
		"users":        USERS,
		"superuser":    SUPERUSER,
		"nosuperuser":  NOSUPERUSER,
		"password":     PASSWORD,
		"clustering":   CLUSTERING,
		"ascii":        ASCII,
		"bigint":       BIGINT,
		"blob":         BLOB,
		"boolean":      BOOLEAN,
		"counter":      COUNTER,
		"decimal":      DECIMAL,
		"float":        FLOAT_KW,
		"inet":         INET,
		"int":          INT_KW,
		"text":         TEXT,
		"uuid":         UUID_KW,
		"varchar":      VARCHAR,
		"varint":       VARINT,
		"timeuuid":     TIMEUUID,
		"token":        TOKEN,
		"writetime":    WRITETIME,
		"map":          MAP,
		"list":         LIST,
		"true":         TRUE,
		"false":        FALSE,
	}

	keywordName = make(map[Token]string, len(keywords))
	for text, tok := range keywords {
		keywordName[tok] = toUpperASCII(text)
	}

	unreserved = map[Token]bool{
		KEY:         true,
		CLUSTERING:  true,
		COUNT:       true,
		TTL:         true,
		COMPACT:     true,
		STORAGE:     true,
		TYPE:        true,
		VALUES:      true,
		WRITETIME:   true,
		MAP:         true,
		LIST:        true,
		FILTERING:   true,
		PERMISSION:  true,
		PERMISSIONS: true,
		KEYSPACES:   true,
		ALL:         true,
		USER:        true,
		USERS:       true,
		SUPERUSER:   true,
		NOSUPERUSER: true,
		PASSWORD:    true,
	}
}

// LookupIdent returns the keyword token for a case-folded identifier
// spelling, or IDENT if it names no keyword.
func LookupIdent(lower string) Token {
	if tok, ok := keywords[lower]; ok {
		return tok
	}
	return IDENT
}

// IsUnreserved reports whether t is in the unreserved-keyword set
// (§6). The parser does not consult it: its name rules accept every
// keyword token, reserved or not, as an identifier.
func IsUnreserved(t Token) bool {
	return unreserved[t]
}

// NativeTypeClass maps the canonical uppercase spelling of a
// native-type keyword to its fully qualified Cassandra marshaller
// class name (§6). Matched against the upper-cased text of whatever
// token the lexer produced (IDENT or a reserved keyword): most native
// type names double as reserved keywords (ASCII, INT, TEXT, ...), but
// DOUBLE is not reserved in the source grammar and so only ever
// arrives as IDENT text, matching the original `types.py` table
// exactly as inherited.
func NativeTypeClass(upperName string) (string, bool) {
	class, ok := nativeTypes[upperName]
	return class, ok
}

var nativeTypes = map[string]string{
	"ASCII":    "org.apache.cassandra.db.marshal.AsciiType",
	"BIGINT":   "org.apache.cassandra.db.marshal.LongType",
	"BLOB":     "org.apache.cassandra.db.marshal.BytesType",
	"BOOLEAN":  "org.apache.cassandra.db.marshal.BooleanType",
	"COUNTER":  "org.apache.cassandra.db.marshal.CounterColumnType",
	"DECIMAL":  "org.apache.cassandra.db.marshal.DecimalType",
	"DOUBLE":   "org.apache.cassandra.db.marshal.DoubleType",
	"FLOAT":    "org.apache.cassandra.db.marshal.FloatType",
	"INET":     "org.apache.cassandra.db.marshal.InetAddressType",
	"INT":      "org.apache.cassandra.db.marshal.Int32Type",
	"TEXT":     "org.apache.cassandra.db.marshal.UTF8Type",
	"TIMESTAMP": "org.apache.cassandra.db.marshal.DateType",
	"UUID":     "org.apache.cassandra.db.marshal.UUIDType",
	"VARCHAR":  "org.apache.cassandra.db.marshal.UTF8Type",
	"VARINT":   "org.apache.cassandra.db.marshal.IntegerType",
	"TIMEUUID": "org.apache.cassandra.db.marshal.TimeUUIDType",
}

func toUpperASCII(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 32
		}
		b[i] = c
	}
	return string(b)
}
