package bracket

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type event int

const (
	eventNone event = iota
	eventOpen
	eventClose
)

// parseState is the fold state of one EncodeParse scan.
type parseState struct {
	// pending is the text of the label or word being read
	pending []byte

	// stack holds labels and words not yet written to any fragment
	stack []string

	last      event
	fragments []string
	leaves    int
}

// flush moves pending text onto the stack.
func (st parseState) flush() parseState {
	if len(st.pending) > 0 {
		st.stack = append(st.stack, string(st.pending))
		st.pending = st.pending[:0]
	}
	return st
}

// step feeds one character of the parse string to the encoder.
func step(st parseState, r rune) (parseState, error) {
	switch {
	case r == '(':
		st = st.flush()
		st.last = eventOpen

	case r == ')':
		st = st.flush()
		if st.last == eventOpen {
			// a leaf: (TAG word)
			if len(st.stack) < 2 {
				return st, fmt.Errorf("%w: leaf %d has no tag or word", ErrMalformedParseTree, st.leaves)
			}
			st.stack = st.stack[:len(st.stack)-2]
			st.leaves++

			// every label left on the stack is an ancestor opened at this leaf
			var prefix strings.Builder
			for _, label := range st.stack {
				prefix.WriteString("(")
				prefix.WriteString(label)
			}
			prefix.WriteString("*")
			st.stack = st.stack[:0]

			st.fragments = append(st.fragments, prefix.String())
		} else {
			if len(st.fragments) == 0 {
				return st, fmt.Errorf("%w: closing bracket before the first leaf", ErrMalformedParseTree)
			}
			st.fragments[len(st.fragments)-1] += ")"
		}
		st.last = eventClose

	case unicode.IsSpace(r):
		st = st.flush()

	default:
		st.pending = utf8.AppendRune(st.pending, r)
	}

	return st, nil
}

// EncodeParse turns a bracketed constituency parse into one parse bit per
// leaf, e.g.
//
//	(ROOT (S (NP (DT The) (NN cat)) (VP (VBD sat))))
//
// becomes
//
//	(ROOT(S(NP*  *)  (VP*)))
//
// leafCount is the number of tokens of the sentence. A parse that yields a
// different number of leaves returns ErrMalformedParseTree.
func EncodeParse(parse string, leafCount int) ([]string, error) {
	st := parseState{fragments: make([]string, 0, leafCount)}

	var err error
	for _, r := range parse {
		st, err = step(st, r)
		if err != nil {
			return nil, err
		}
	}

	if st.leaves != leafCount {
		return nil, fmt.Errorf("%w: parse has %d leaves, sentence has %d tokens", ErrMalformedParseTree, st.leaves, leafCount)
	}

	return st.fragments, nil
}
