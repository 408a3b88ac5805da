package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	beginMarker = "#begin"
	endMarker   = "#end"

	maxLineSize = 1024 * 1024
)

// Line is one non blank line of a CoNLL file.
type Line struct {
	// Doc is the index of the document the line belongs to, counting
	// "#begin document" markers from 0.
	Doc int

	// Sent is the index of the sentence inside the document. The end marker
	// counts as one more sentence.
	Sent int

	// Marker is true for "#begin document" and "#end document" lines
	Marker bool

	Text   string
	Fields []string
}

// TokenIndex returns the word number (column 3) of the line.
func (l Line) TokenIndex() (int, error) {
	if l.Marker || len(l.Fields) < 3 {
		return 0, fmt.Errorf("line %q has no word number", l.Text)
	}
	return strconv.Atoi(l.Fields[2])
}

// ReadLines reads all non blank lines of a CoNLL file.
func ReadLines(r io.Reader) ([]Line, error) {
	var lines []Line
	doc, sentIdx := -1, 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			sentIdx++
			continue
		}

		l := Line{Text: text, Fields: strings.Split(text, "\t")}
		if strings.HasPrefix(text, beginMarker) {
			doc++
			sentIdx = 0
			l.Marker = true
		} else if strings.HasPrefix(text, endMarker) {
			l.Marker = true
		}

		// lines before any header belong to the first document
		l.Doc = max(doc, 0)
		l.Sent = sentIdx
		lines = append(lines, l)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	return lines, nil
}

// ReadFile reads the non blank lines of the CoNLL file at path.
func ReadFile(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	return ReadLines(f)
}

// Column selects one bracket column of a CoNLL file.
type Column struct {
	Name string

	// Index is the 0-based field index; -1 selects the last field.
	Index int

	// MinFields is the minimum number of fields of a token line. Shorter
	// lines yield an empty field.
	MinFields int

	// Tagged columns carry labels in their brackets.
	Tagged bool
}

var (
	ParseColumn = Column{Name: "parse", Index: 5, MinFields: 6, Tagged: true}
	NERColumn   = Column{Name: "ner", Index: 10, MinFields: 11, Tagged: true}
	CorefColumn = Column{Name: "coref", Index: -1, MinFields: 12}
)

// Columns returns the supported bracket columns.
func Columns() []Column {
	return []Column{ParseColumn, NERColumn, CorefColumn}
}

// ColumnNames returns the names of the supported bracket columns.
func ColumnNames() []string {
	var names []string
	for _, c := range Columns() {
		names = append(names, c.Name)
	}
	return names
}

// ColumnByName returns the column with the given name.
func ColumnByName(name string) (Column, error) {
	for _, c := range Columns() {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, fmt.Errorf("unknown column %q, allowed values are %s", name, strings.Join(ColumnNames(), ", "))
}

// Field returns the column field of a line, or "" for markers and short
// lines.
func (c Column) Field(l Line) string {
	if l.Marker || len(l.Fields) < c.MinFields {
		return ""
	}

	if c.Index < 0 {
		return l.Fields[len(l.Fields)-1]
	}
	return l.Fields[c.Index]
}

// Fields returns the column field of every line, one per line.
func (c Column) Fields(lines []Line) []string {
	fields := make([]string, len(lines))
	for i, l := range lines {
		fields[i] = c.Field(l)
	}
	return fields
}
