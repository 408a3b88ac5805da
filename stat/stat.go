package stat

import (
	"github.com/revelaction/conllspan/bracket"
	sent "github.com/revelaction/conllspan/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumClusters          int
	NumMentions          int
	NumSingletonMentions int

	// NumEntities counts named entity runs, by label
	NumEntities map[string]int
}

func (h *Handler) Get() Stats {
	s := h.stats
	if s.NumSentences > 0 {
		s.TokensPerSentenceMean = s.NumTokens / s.NumSentences
	}
	return s
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		NumEntities:          map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the counts of doc to the handler stats.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += len(doc.Sentences)
	h.stats.NumTokens += doc.NumTokens()

	for _, sentence := range doc.Sentences {
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		last := bracket.NoEntity
		for _, token := range sentence.Tokens {
			if token.Ner != last && token.Ner != bracket.NoEntity {
				h.stats.NumEntities[token.Ner]++
			}
			last = token.Ner
		}
	}

	h.stats.NumClusters += len(doc.Corefs)
	for _, m := range doc.Mentions() {
		h.stats.NumMentions++
		if m.IsSingleton() {
			h.stats.NumSingletonMentions++
		}
	}
}
