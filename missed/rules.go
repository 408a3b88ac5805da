package missed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Annotate reads every rule log of cfg and appends a Hit to the entries it
// names. A rule log is a JSON array of [[doc, sent, begin, end], extra]
// records. Logs that do not exist are skipped.
func (r *Report) Annotate(cfg Config) error {
	for _, name := range cfg.Files {
		path := filepath.Join(cfg.Dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("rule log not found", "file", path)
			continue
		}
		if err != nil {
			return fmt.Errorf("IO error: %w", err)
		}

		n, err := r.AnnotateLog(name, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		slog.Debug("rule log read", "file", path, "hits", n)
	}

	return nil
}

// AnnotateLog adds the hits of one rule log and returns their number.
func (r *Report) AnnotateLog(name string, data []byte) (int, error) {
	var records [][]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("JSON decoding error: %w", err)
	}

	hits := 0
	for i, rec := range records {
		if len(rec) == 0 {
			return hits, fmt.Errorf("record %d is empty", i)
		}

		var k [4]int
		if err := json.Unmarshal(rec[0], &k); err != nil {
			return hits, fmt.Errorf("record %d: JSON decoding error: %w", i, err)
		}

		hit := Hit{Log: name}
		if len(rec) > 1 && !emptyExtra(rec[1]) {
			hit.Extra = rec[1]
		}

		if r.add(Key{Doc: k[0], Sent: k[1], Begin: k[2], End: k[3]}, hit) {
			hits++
		}
	}

	return hits, nil
}

func emptyExtra(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", `""`, "[]", "{}", "false", "0":
		return true
	}
	return false
}
