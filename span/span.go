// Package span holds token spans over sentences, their canonical ordering,
// the per-token bracket overlay built from them and the span sets used for
// scoring.
package span

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidSpan is returned for spans with a negative position or an end
// before their start.
var ErrInvalidSpan = errors.New("invalid span")

// Span is a labelled run of tokens inside one sentence. Start and End are
// 0-based token indices, both inclusive.
type Span struct {
	Sentence int    `json:"sentence"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Label    string `json:"label,omitempty"`
}

// IsSingleton reports whether the span covers exactly one token.
func (s Span) IsSingleton() bool {
	return s.Start == s.End
}

// Validate reports a span that cannot be placed in a sentence.
func (s Span) Validate() error {
	if s.Sentence < 0 || s.Start < 0 || s.End < s.Start {
		return fmt.Errorf("%w: %s", ErrInvalidSpan, s)
	}
	return nil
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d-%d]", s.Label, s.Sentence, s.Start, s.End)
}

// Less orders spans by sentence, then start, then end descending, so that an
// outer span sharing its start with an inner one comes first.
func Less(a, b Span) bool {
	if a.Sentence != b.Sentence {
		return a.Sentence < b.Sentence
	}

	if a.Start != b.Start {
		return a.Start < b.Start
	}

	return a.End > b.End
}

// Sort sorts spans in place with Less. Spans with identical boundaries keep
// their input order.
func Sort(spans []Span) {
	sort.SliceStable(spans, func(i, j int) bool {
		return Less(spans[i], spans[j])
	})
}
