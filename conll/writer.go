// Package conll writes CoreNLP documents as CoNLL-2012 tabular files and
// reads the columns of such files back.
//
// Columns:
//
//	 1 Document ID
//	 2 Part number
//	 3 Word number
//	 4 Word itself
//	 5 Part-of-Speech
//	 6 Parse bit
//	 7 Predicate lemma
//	 8 Predicate Frameset ID
//	 9 Word sense
//	10 Speaker / Author
//	11 Named Entities
//	12 Coreference
package conll

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/conllspan/bracket"
	sent "github.com/revelaction/conllspan/sentence"
	"github.com/revelaction/conllspan/span"
)

const (
	DefaultPart = "000"

	// placeholder for empty columns
	dash = "-"
)

// Writer renders documents to an io.Writer.
type Writer struct {
	w io.Writer

	part      string
	noMention bool
}

type Option func(*Writer)

// WithPart sets the part number of the document header.
func WithPart(part string) Option {
	return func(cw *Writer) {
		cw.part = part
	}
}

// WithoutMentions writes a placeholder instead of the coreference column.
func WithoutMentions() Option {
	return func(cw *Writer) {
		cw.noMention = true
	}
}

func NewWriter(w io.Writer, opts ...Option) *Writer {
	cw := &Writer{w: w, part: DefaultPart}
	for _, o := range opts {
		o(cw)
	}
	return cw
}

// WriteDoc writes one document. The document is rendered completely before
// anything is written, so a malformed sentence leaves the writer untouched.
func (cw *Writer) WriteDoc(doc sent.Doc) error {
	part, err := partNumber(cw.part)
	if err != nil {
		return err
	}

	idx, err := span.NewIndex(doc.Mentions())
	if err != nil {
		return fmt.Errorf("document %s, mention: %w", doc.DocId, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "#begin document (%s); part %s\n", doc.DocId, cw.part)

	for sentIdx, s := range doc.Sentences {
		parse, err := bracket.EncodeParse(s.Parse, len(s.Tokens))
		if err != nil {
			return fmt.Errorf("document %s, sentence %d: %w", doc.DocId, sentIdx, err)
		}

		labels := make([]string, len(s.Tokens))
		for i, token := range s.Tokens {
			labels[i] = token.Ner
		}
		ner := bracket.MergeNER(labels, bracket.NoEntity)

		for tokIdx, token := range s.Tokens {
			coref := dash
			if !cw.noMention {
				coref = idx.Fragment(sentIdx, tokIdx)
			}

			columns := []string{
				doc.DocId,
				part,
				strconv.Itoa(tokIdx),
				orDash(token.Word),
				orDash(token.Pos),
				orDash(parse[tokIdx]),
				lemma(token),
				dash,
				dash,
				orDash(token.Speaker),
				ner[tokIdx],
				coref,
			}

			buf.WriteString(strings.Join(columns, "\t"))
			buf.WriteString("\n")
		}

		// one empty line after each sentence
		buf.WriteString("\n")
	}

	buf.WriteString("#end document\n")

	_, err = buf.WriteTo(cw.w)
	return err
}

// partNumber strips the leading zeros of the header part number.
func partNumber(part string) (string, error) {
	n, err := strconv.Atoi(part)
	if err != nil {
		return "", fmt.Errorf("invalid part number %q: %w", part, err)
	}
	return strconv.Itoa(n), nil
}

func orDash(s string) string {
	if s == "" {
		return dash
	}
	return s
}

// lemma is shown only when it differs from the word
func lemma(t sent.Token) string {
	if t.Lemma == "" || t.Lemma == t.Word {
		return dash
	}
	return t.Lemma
}
