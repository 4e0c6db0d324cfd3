package cache

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/smartquery/smartquery/internal/ast"
)

func init() {
	gob.Register(&ast.ValueNode{})
	gob.Register(&ast.NameNode{})
	gob.Register(&ast.CodeNode{})
	gob.Register(&ast.NoOpNode{})
	gob.Register(&ast.BinOpNode{})
	gob.Register(&ast.UnaryOpNode{})
	gob.Register(&ast.AssignNode{})
	gob.Register(&ast.ShortOpNode{})
	gob.Register(&ast.IfNode{})
	gob.Register(&ast.SliceNode{})
	gob.Register(&ast.CallNode{})
	gob.Register(&ast.DictNode{})
	gob.Register(&ast.LambdaNode{})
}

// SQLite is a parser.Cache backed by a modernc.org/sqlite database, so a
// host process that restarts (a CLI invoked once per request, a
// short-lived worker) doesn't lose previously-parsed ASTs. Encoding goes
// through encoding/gob; see internal/value/gob.go for the restriction
// that keeps this simple (only scalar ValueNode literals are persisted,
// which is everything a real parse ever produces).
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenSQLite opens (creating if needed) a sqlite database at path holding
// the parse cache table.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS parse_cache (
		source TEXT PRIMARY KEY,
		ast_blob BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (c *SQLite) Close() error {
	return c.db.Close()
}

func (c *SQLite) Get(source string) (ast.Node, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var blob []byte
	err := c.db.QueryRow(`SELECT ast_blob FROM parse_cache WHERE source = ?`, source).Scan(&blob)
	if err != nil {
		return nil, false
	}
	var boxed nodeBox
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(&boxed); err != nil {
		return nil, false
	}
	return boxed.Node, true
}

func (c *SQLite) Put(source string, n ast.Node) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(nodeBox{Node: n}); err != nil {
		// Unencodable ASTs (containing non-scalar ValueNode literals,
		// which a real parse never produces) simply aren't persisted;
		// the caller still gets correct behavior via a cache miss.
		return
	}
	_, _ = c.db.Exec(`INSERT INTO parse_cache (source, ast_blob) VALUES (?, ?)
		ON CONFLICT(source) DO UPDATE SET ast_blob = excluded.ast_blob`, source, buf.Bytes())
}

// nodeBox lets gob encode/decode the ast.Node interface value itself
// (gob requires a concrete field to carry a registered interface type).
type nodeBox struct {
	Node ast.Node
}
