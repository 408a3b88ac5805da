package span

import "strings"

// Empty is the overlay placeholder for a token that no span touches.
const Empty = "-"

// marks holds the labels opening, closing or fully covering one token.
type marks struct {
	begin     []string
	singleton []string
	end       []string
}

// Index maps every (sentence, token) position to the span labels that open,
// close or cover it. Positions are dense per sentence, so the index is a
// slice of slices rather than a map.
type Index struct {
	sentences [][]marks
}

// NewIndex builds the overlay index for spans. The input slice is not
// modified; a sorted copy decides the label order at each position. Any
// invalid span fails the whole index with ErrInvalidSpan.
func NewIndex(spans []Span) (*Index, error) {
	for _, s := range spans {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	Sort(sorted)

	idx := &Index{}
	for _, s := range sorted {
		if s.IsSingleton() {
			m := idx.at(s.Sentence, s.Start)
			m.singleton = append(m.singleton, s.Label)
			continue
		}

		b := idx.at(s.Sentence, s.Start)
		b.begin = append(b.begin, s.Label)

		e := idx.at(s.Sentence, s.End)
		e.end = append(e.end, s.Label)
	}

	return idx, nil
}

// at returns the marks for a position, growing the index as needed.
func (idx *Index) at(sent, tok int) *marks {
	for len(idx.sentences) <= sent {
		idx.sentences = append(idx.sentences, nil)
	}

	row := idx.sentences[sent]
	for len(row) <= tok {
		row = append(row, marks{})
	}
	idx.sentences[sent] = row

	return &row[tok]
}

// Fragment renders the coreference column of one token. Opening labels come
// first, then singletons, then closing labels, all joined with "|". A token
// without marks renders as Empty.
func (idx *Index) Fragment(sent, tok int) string {
	if sent < 0 || sent >= len(idx.sentences) {
		return Empty
	}

	row := idx.sentences[sent]
	if tok < 0 || tok >= len(row) {
		return Empty
	}

	m := row[tok]
	parts := make([]string, 0, len(m.begin)+len(m.singleton)+len(m.end))
	for _, l := range m.begin {
		parts = append(parts, "("+l)
	}

	for _, l := range m.singleton {
		parts = append(parts, "("+l+")")
	}

	for _, l := range m.end {
		parts = append(parts, l+")")
	}

	if len(parts) == 0 {
		return Empty
	}

	return strings.Join(parts, "|")
}
