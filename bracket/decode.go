package bracket

import (
	"fmt"
	"strings"

	"github.com/revelaction/conllspan/span"
)

type opening struct {
	label string
	line  int
}

// Decoder matches opening and closing brackets of a bracket column, one
// field per line, and collects the resulting spans. Tagged decoders read
// parse bits and NER fields ("(NP(DT*", "*))"); untagged decoders read
// coreference fields ("(12|(3)", "12)") and ignore the labels.
type Decoder struct {
	tagged bool
	stack  []opening
	spans  span.Set
}

func NewTaggedDecoder() *Decoder {
	return &Decoder{tagged: true, spans: make(span.Set)}
}

func NewUntaggedDecoder() *Decoder {
	return &Decoder{spans: make(span.Set)}
}

// Feed decodes the field found at line.
func (d *Decoder) Feed(line int, field string) error {
	if d.tagged {
		return d.feedTagged(line, field)
	}
	return d.feedUntagged(line, field)
}

func (d *Decoder) feedUntagged(line int, field string) error {
	for _, r := range field {
		switch r {
		case '(':
			d.stack = append(d.stack, opening{line: line})
		case ')':
			o, err := d.pop(line)
			if err != nil {
				return err
			}
			d.spans.Add(span.Key{Start: o.line, End: line})
		}
	}
	return nil
}

func (d *Decoder) feedTagged(line int, field string) error {
	if field == span.Empty {
		return nil
	}

	closeCount := 0
	left := field
	for len(left) > 0 {
		c := left[len(left)-1]
		if c != ')' && c != '*' {
			break
		}
		if c == ')' {
			closeCount++
		}
		left = left[:len(left)-1]
	}

	for _, label := range strings.Split(left, "(") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		d.stack = append(d.stack, opening{label: label, line: line})
	}

	for i := 0; i < closeCount; i++ {
		o, err := d.pop(line)
		if err != nil {
			return err
		}
		d.spans.Add(span.Key{Label: o.label, Start: o.line, End: line})
	}
	return nil
}

func (d *Decoder) pop(line int) (opening, error) {
	if len(d.stack) == 0 {
		return opening{}, fmt.Errorf("%w: closing bracket without opening at line %d", ErrUnbalancedBrackets, line)
	}
	o := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return o, nil
}

// Spans returns the spans closed so far.
func (d *Decoder) Spans() span.Set {
	return d.spans
}

// Open returns the number of brackets still waiting for their closing
// bracket. They never become spans.
func (d *Decoder) Open() int {
	return len(d.stack)
}

// DecodeUntagged decodes a coreference column. fields[i] is the field of
// line i.
func DecodeUntagged(fields []string) (span.Set, error) {
	return decodeAll(NewUntaggedDecoder(), fields)
}

// DecodeTagged decodes a parse bit or NER column. fields[i] is the field of
// line i.
func DecodeTagged(fields []string) (span.Set, error) {
	return decodeAll(NewTaggedDecoder(), fields)
}

func decodeAll(d *Decoder, fields []string) (span.Set, error) {
	for line, field := range fields {
		if err := d.Feed(line, field); err != nil {
			return nil, err
		}
	}
	return d.Spans(), nil
}
