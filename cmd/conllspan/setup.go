package main

import (
	"fmt"
	"os"

	"github.com/revelaction/conllspan/storage"
	"github.com/revelaction/conllspan/storage/filesystem"
	"github.com/revelaction/conllspan/storage/sqlite/zombiezen"
)

// NewDocRepository returns a filesystem store for a directory and a SQLite
// store for any other file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("no document repository given, use --doc-path or %s", envDocPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}
