package sentence

import (
	"encoding/json"
	"testing"

	"github.com/revelaction/conllspan/span"
)

const coreNLPDoc = `{
  "docId": "wsj_0001",
  "corefs": {
    "4": [
      {"id": 4, "text": "Pierre Vinken", "sentNum": 1, "startIndex": 1, "endIndex": 3, "isRepresentativeMention": true},
      {"id": 7, "text": "he", "sentNum": 2, "startIndex": 1, "endIndex": 2}
    ],
    "12": [
      {"id": 12, "text": "the board", "sentNum": 1, "startIndex": 4, "endIndex": 6}
    ]
  },
  "sentences": [
    {"index": 0, "parse": "(ROOT (S (NP (NNP Pierre) (NNP Vinken)) (VP (VBZ joins) (NP (DT the) (NN board)))))",
     "tokens": [
       {"index": 1, "word": "Pierre", "lemma": "Pierre", "pos": "NNP", "ner": "PERSON", "speaker": "PER0"},
       {"index": 2, "word": "Vinken", "lemma": "Vinken", "pos": "NNP", "ner": "PERSON", "speaker": "PER0"},
       {"index": 3, "word": "joins", "lemma": "join", "pos": "VBZ", "ner": "O", "speaker": "PER0"},
       {"index": 4, "word": "the", "lemma": "the", "pos": "DT", "ner": "O", "speaker": "PER0"},
       {"index": 5, "word": "board", "lemma": "board", "pos": "NN", "ner": "O", "speaker": "PER0"}
     ]},
    {"index": 1, "parse": "(ROOT (S (NP (PRP He)) (VP (VBZ smiles))))",
     "tokens": [
       {"index": 1, "word": "He", "lemma": "he", "pos": "PRP", "ner": "O", "speaker": "PER0"},
       {"index": 2, "word": "smiles", "lemma": "smile", "pos": "VBZ", "ner": "O", "speaker": "PER0"}
     ]}
  ]
}`

func TestUnmarshalCoreNLP(t *testing.T) {
	var doc Doc
	if err := json.Unmarshal([]byte(coreNLPDoc), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if doc.DocId != "wsj_0001" {
		t.Errorf("expected docId wsj_0001, got %q", doc.DocId)
	}

	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}

	if doc.NumTokens() != 7 {
		t.Errorf("expected 7 tokens, got %d", doc.NumTokens())
	}

	if got := doc.Sentences[0].Tokens[2].Lemma; got != "join" {
		t.Errorf("expected lemma join, got %q", got)
	}
}

func TestMentionSpan(t *testing.T) {
	m := Mention{SentNum: 1, StartIndex: 1, EndIndex: 3}
	got := m.Span("4")
	want := span.Span{Sentence: 0, Start: 0, End: 1, Label: "4"}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	single := Mention{SentNum: 2, StartIndex: 1, EndIndex: 2}.Span("4")
	if !single.IsSingleton() {
		t.Errorf("expected singleton span, got %v", single)
	}
}

func TestMentions(t *testing.T) {
	var doc Doc
	if err := json.Unmarshal([]byte(coreNLPDoc), &doc); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	got := doc.Mentions()
	want := []span.Span{
		{Sentence: 0, Start: 3, End: 4, Label: "12"},
		{Sentence: 0, Start: 0, End: 1, Label: "4"},
		{Sentence: 1, Start: 0, End: 0, Label: "4"},
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d mentions, got %d", len(want), len(got))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mention %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
