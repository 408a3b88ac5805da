package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens the document repository at dbPath, creating the file and
// the docs schema when missing. Foreign keys are enforced on every
// connection, so deleting a doc also deletes its sentences.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, "PRAGMA foreign_keys = ON;", nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open doc repository %s: %w", dbPath, err)
	}

	if err := CreateSchemas(pool, DocSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("doc repository %s: %w", dbPath, err)
	}

	return pool, nil
}
