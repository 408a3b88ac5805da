package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// DocSchema holds the docs and sentences tables. Its statements are
// idempotent.
const DocSchema = "docs.sql"

// CreateSchemas runs the schema script named schemaName in one savepoint.
func CreateSchemas(pool *sqlitex.Pool, schemaName string) error {
	scripts, err := fs.Sub(sqlFiles, "sql")
	if err != nil {
		return err
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScriptFS(conn, scripts, schemaName, nil); err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}
	return nil
}
