package zombiezen

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	sent "github.com/revelaction/conllspan/sentence"
	"github.com/revelaction/conllspan/storage"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// Hash returns the hex blake3 digest of the document content. Id and Title
// are not part of the content.
func Hash(doc sent.Doc) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []sent.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, doc_key FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docs = append(docs, sent.Doc{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
				DocId: stmt.ColumnText(2),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, doc_key, corefs FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.DocId = stmt.ColumnText(1)
			return json.Unmarshal([]byte(stmt.ColumnText(2)), &doc.Corefs)
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []any{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var sentence sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &sentence); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, sentence)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

// Write inserts the document and its sentences in one transaction. A document
// whose title or content hash is already stored is rejected with
// storage.ErrDocExists.
func (h *DocStore) Write(doc sent.Doc) (err error) {
	hash, err := Hash(doc)
	if err != nil {
		return err
	}

	corefs, err := json.Marshal(doc.Corefs)
	if err != nil {
		return err
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, doc_key, hash, corefs) VALUES (?, ?, ?, ?) ON CONFLICT DO NOTHING", &sqlitex.ExecOptions{
		Args: []any{doc.Title, doc.DocId, hash, string(corefs)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	if conn.Changes() == 0 {
		return fmt.Errorf("%w: %s", storage.ErrDocExists, doc.Title)
	}
	docID := conn.LastInsertRowID()

	for _, sentence := range doc.Sentences {
		data, err := json.Marshal(sentence)
		if err != nil {
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []any{docID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}
