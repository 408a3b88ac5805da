package conll

import (
	"fmt"
	"log/slog"

	"github.com/revelaction/conllspan/bracket"
	"github.com/revelaction/conllspan/span"
)

// Spans decodes the bracket column c of lines into a span set. Span
// boundaries are indices into lines.
func Spans(lines []Line, c Column) (span.Set, error) {
	d := bracket.NewUntaggedDecoder()
	if c.Tagged {
		d = bracket.NewTaggedDecoder()
	}

	for i, field := range c.Fields(lines) {
		if err := d.Feed(i, field); err != nil {
			return nil, fmt.Errorf("%s column: %w", c.Name, err)
		}
	}

	if n := d.Open(); n > 0 {
		slog.Warn("unclosed brackets dropped", "column", c.Name, "count", n)
	}

	return d.Spans(), nil
}

// SpansFile reads the CoNLL file at path and decodes its column c.
func SpansFile(path string, c Column) ([]Line, span.Set, error) {
	lines, err := ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	spans, err := Spans(lines, c)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, spans, nil
}
