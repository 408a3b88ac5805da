package storage

import (
	"errors"

	sent "github.com/revelaction/conllspan/sentence"
)

var (
	// ErrNotFound is returned when a document id does not exist
	ErrNotFound = errors.New("doc not found")

	// ErrDocExists is returned by writers that refuse to store the same
	// document content twice
	ErrDocExists = errors.New("doc already exists")
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title) of all documents.
	// Content (Sentences, Corefs) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document under its Title
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
