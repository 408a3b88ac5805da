package filesystem

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"

	sent "github.com/revelaction/conllspan/sentence"
	"github.com/revelaction/conllspan/storage"
)

const (
	jsonExt = ".json"
	xzExt   = ".json.xz"
)

type DocStore struct {
	docDir string

	// metadata only, contents are read on demand
	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store. All *.json and *.json.xz
// files below docDir are documents, titled by their path relative to docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	var titles []string
	err := filepath.WalkDir(docDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !IsDocFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(docDir, path)
		if err != nil {
			return err
		}

		titles = append(titles, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(titles)

	docs := make([]sent.Doc, 0, len(titles))
	for idx, title := range titles {
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: title,
		})
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// IsDocFile reports whether name has a document extension.
func IsDocFile(name string) bool {
	return strings.HasSuffix(name, jsonExt) || strings.HasSuffix(name, xzExt)
}

// Dir returns the root directory of the store.
func (h *DocStore) Dir() string {
	return h.docDir
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("%w: id out of range: %d", storage.ErrNotFound, id)
	}

	meta := h.docs[id]
	doc, err := ReadDoc(filepath.Join(h.docDir, filepath.FromSlash(meta.Title)))
	if err != nil {
		return sent.Doc{}, fmt.Errorf("%s: %w", meta.Title, err)
	}

	doc.Id = meta.Id
	doc.Title = meta.Title
	return doc, nil
}

// Write stores doc as indented JSON under its Title.
func (h *DocStore) Write(doc sent.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc %q has no title", doc.DocId)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	targetPath := filepath.Join(h.docDir, filepath.FromSlash(doc.Title))
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", targetPath, err)
	}

	h.docs = append(h.docs, sent.Doc{Id: len(h.docs), Title: doc.Title})
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it. Paths
// ending in .xz are decompressed first.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return sent.Doc{}, fmt.Errorf("xz error: %w", err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(data, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
