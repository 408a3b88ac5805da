package bracket

import "strings"

// NoEntity is the CoreNLP label of tokens outside any named entity.
const NoEntity = "O"

type nerState struct {
	last string
}

// nerStep consumes the label of one token. closePrev reports that the run
// ending at the previous token must be closed before fragment is appended.
func nerStep(st nerState, label, none string) (next nerState, closePrev bool, fragment string) {
	next = nerState{last: label}

	if label == st.last {
		// inside a run, or still outside any entity
		return next, false, "*"
	}

	closePrev = st.last != none
	if label == none {
		return next, closePrev, "*"
	}

	return next, closePrev, "(" + label + "*"
}

// closeFragment closes the run ending at fragment. A run that opened at the
// same token turns "(LOC*" into "(LOC)", a longer run turns "*" into "*)".
func closeFragment(fragment string) string {
	if strings.HasPrefix(fragment, "(") {
		return strings.TrimSuffix(fragment, "*") + ")"
	}
	return fragment + ")"
}

// MergeNER renders per token entity labels as bracket fragments, merging
// consecutive tokens with the same label into one run. none is the label of
// tokens outside any entity.
//
//	PERSON PERSON O LOC  ->  (PERSON*  *)  *  (LOC)
func MergeNER(labels []string, none string) []string {
	out := make([]string, 0, len(labels))
	st := nerState{last: none}

	for _, label := range labels {
		var closePrev bool
		var fragment string
		st, closePrev, fragment = nerStep(st, label, none)

		if closePrev && len(out) > 0 {
			out[len(out)-1] = closeFragment(out[len(out)-1])
		}
		out = append(out, fragment)
	}

	if st.last != none && len(out) > 0 {
		out[len(out)-1] = closeFragment(out[len(out)-1])
	}

	return out
}
