// Package missed explains the gold spans a prediction did not find: it
// locates each one in the gold file and collects the rule logs that name it.
package missed

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/revelaction/conllspan/conll"
	"github.com/revelaction/conllspan/span"
)

// DefaultWindow is the number of lines of context on each side of a span
const DefaultWindow = 20

// Key locates a missed span by document, sentence and word numbers. End is
// exclusive.
type Key struct {
	Doc   int `json:"doc"`
	Sent  int `json:"sent"`
	Begin int `json:"begin"`
	End   int `json:"end"`
}

func (k Key) Less(o Key) bool {
	if k.Doc != o.Doc {
		return k.Doc < o.Doc
	}
	if k.Sent != o.Sent {
		return k.Sent < o.Sent
	}
	if k.Begin != o.Begin {
		return k.Begin < o.Begin
	}
	return k.End < o.End
}

func (k Key) String() string {
	return fmt.Sprintf("%d:%d:%d-%d", k.Doc, k.Sent, k.Begin, k.End)
}

// Hit is a rule log naming a missed span.
type Hit struct {
	Log   string          `json:"log"`
	Extra json.RawMessage `json:"extra,omitempty"`
}

type Entry struct {
	Key     Key      `json:"key"`
	Context []string `json:"context"`
	Rules   []Hit    `json:"rules"`
}

// Report holds the entries of all missed spans, ordered by Key.
type Report struct {
	Entries []Entry

	index map[Key]int
}

// Analyze builds the report for the missed spans of a gold file. Span
// boundaries are indexes into lines; window lines of context are kept on
// each side.
func Analyze(lines []conll.Line, missed span.Set, window int) (*Report, error) {
	if window < 0 {
		window = 0
	}

	var entries []Entry
	for _, k := range missed.Keys() {
		if k.Start < 0 || k.End >= len(lines) || k.Start > k.End {
			return nil, fmt.Errorf("span %d-%d outside of %d lines", k.Start, k.End, len(lines))
		}

		first, last := lines[k.Start], lines[k.End]
		begin, err := first.TokenIndex()
		if err != nil {
			return nil, err
		}
		end, err := last.TokenIndex()
		if err != nil {
			return nil, err
		}

		key := Key{Doc: first.Doc, Sent: first.Sent, Begin: begin, End: end + 1}

		from := max(0, k.Start-window)
		to := min(k.End+window, len(lines))
		context := make([]string, 0, to-from)
		for _, l := range lines[from:to] {
			context = append(context, l.Text)
		}

		entries = append(entries, Entry{Key: key, Context: context})
	}

	return NewReport(entries...), nil
}

// NewReport orders entries by Key. Entries with a repeated Key are dropped.
func NewReport(entries ...Entry) *Report {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Less(sorted[j].Key)
	})

	r := &Report{index: map[Key]int{}}
	for _, e := range sorted {
		if _, ok := r.index[e.Key]; ok {
			continue
		}
		r.index[e.Key] = len(r.Entries)
		r.Entries = append(r.Entries, e)
	}
	return r
}

// Lookup returns the entry of k.
func (r *Report) Lookup(k Key) (Entry, bool) {
	i, ok := r.index[k]
	if !ok {
		return Entry{}, false
	}
	return r.Entries[i], true
}

// Len returns the number of entries.
func (r *Report) Len() int {
	return len(r.Entries)
}

// add records a rule hit and reports whether k is a missed span.
func (r *Report) add(k Key, hit Hit) bool {
	i, ok := r.index[k]
	if !ok {
		return false
	}
	r.Entries[i].Rules = append(r.Entries[i].Rules, hit)
	return true
}
