package sentence

import (
	"sort"

	"github.com/revelaction/conllspan/span"
)

// Doc is a CoreNLP annotated document: sentences with their parse and
// tokens, plus the coreference clusters of the whole document.
type Doc struct {
	// Id and Title identify the document inside a repository. Title is the
	// file name (or the stored name) of the document.
	Id    int    `json:"-"`
	Title string `json:"-"`

	DocId     string               `json:"docId"`
	Corefs    map[string][]Mention `json:"corefs"`
	Sentences []Sentence           `json:"sentences"`
}

type Sentence struct {
	Index int `json:"index"`

	// Parse is the bracketed constituency tree of the sentence
	Parse string `json:"parse"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// The index of the word in the sentence, starting at 1.
	Index int `json:"index"`

	// The normalized word, f.ex. "-LRB-" for "("
	Word string `json:"word"`

	// The unmodified word
	OriginalText string `json:"originalText,omitempty"`

	Lemma   string `json:"lemma"`
	Pos     string `json:"pos"`
	Ner     string `json:"ner"`
	Speaker string `json:"speaker"`
}

// Mention is one coreference mention. SentNum, StartIndex and EndIndex are
// 1-based, and EndIndex is exclusive.
type Mention struct {
	Id         int    `json:"id,omitempty"`
	Text       string `json:"text,omitempty"`
	Type       string `json:"type,omitempty"`
	SentNum    int    `json:"sentNum"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
	HeadIndex  int    `json:"headIndex,omitempty"`

	IsRepresentativeMention bool `json:"isRepresentativeMention,omitempty"`
}

// Span converts the mention to a 0-based span with inclusive end, labelled
// with the cluster name.
func (m Mention) Span(cluster string) span.Span {
	return span.Span{
		Sentence: m.SentNum - 1,
		Start:    m.StartIndex - 1,
		End:      m.EndIndex - 2,
		Label:    cluster,
	}
}

// Clusters returns the coreference cluster names in sorted order.
func (d Doc) Clusters() []string {
	names := make([]string, 0, len(d.Corefs))
	for name := range d.Corefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mentions returns the spans of all coreference mentions of the document.
func (d Doc) Mentions() []span.Span {
	var spans []span.Span
	for _, name := range d.Clusters() {
		for _, m := range d.Corefs[name] {
			spans = append(spans, m.Span(name))
		}
	}
	return spans
}

// NumTokens returns the number of tokens of the document.
func (d Doc) NumTokens() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	return n
}
