package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/revelaction/conllspan/missed"
	"github.com/revelaction/conllspan/score"
	"github.com/revelaction/conllspan/span"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}

// Renderer writes scoring results and missed span reports.
type Renderer interface {
	Score(res score.Result) error
	Report(rep *missed.Report) error
}

// New returns the Renderer for format.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "", FormatText:
		return NewTextRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}
	return nil, fmt.Errorf("unknown format %q, supported: %s", format, strings.Join(SupportedFormats(), ", "))
}

type TextRenderer struct {
	W io.Writer

	HasColor bool

	// ShowMissed lists the missed gold spans after the metrics
	ShowMissed bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

// Score writes recall, precision and f1, one per line.
func (r *TextRenderer) Score(res score.Result) error {
	var str strings.Builder
	fmt.Fprintf(&str, "recall: %s\n", Float(res.Recall))
	fmt.Fprintf(&str, "precision: %s\n", Float(res.Precision))
	fmt.Fprintf(&str, "f1: %s\n", Float(res.F1))

	if r.ShowMissed {
		for _, k := range res.Missed.Keys() {
			fmt.Fprintf(&str, "missed: %s\n", r.spanKey(k))
		}
	}

	_, err := io.WriteString(r.W, str.String())
	return err
}

// Report writes every entry of rep followed by two blank lines.
func (r *TextRenderer) Report(rep *missed.Report) error {
	for _, e := range rep.Entries {
		if _, err := io.WriteString(r.W, r.EntryString(e)+"\n\n"); err != nil {
			return err
		}
	}
	return nil
}

// EntryString renders the key lines, the context block and the rule hits of
// e, blocks separated by a blank line.
func (r *TextRenderer) EntryString(e missed.Entry) string {
	var str strings.Builder
	fmt.Fprintf(&str, "%s %d\n", r.color("doc_id:", Yellow256), e.Key.Doc)
	fmt.Fprintf(&str, "%s %d\n", r.color("sent_id:", Yellow256), e.Key.Sent)
	fmt.Fprintf(&str, "%s %d\n", r.color("bidx:", Yellow256), e.Key.Begin)
	fmt.Fprintf(&str, "%s %d\n", r.color("eidx:", Yellow256), e.Key.End)

	str.WriteString(strings.Join(e.Context, "\n"))
	str.WriteString("\n\n")

	for _, h := range e.Rules {
		str.WriteString(r.color(h.Log, Green256))
		str.WriteString("\n\n")
		if h.Extra != nil {
			str.Write(h.Extra)
			str.WriteString("\n\n")
		}
	}

	return str.String()
}

func (r *TextRenderer) spanKey(k span.Key) string {
	s := fmt.Sprintf("%d-%d", k.Start, k.End)
	if k.Label == "" {
		return s
	}
	return s + " " + r.color(k.Label, Grey256)
}

func (r *TextRenderer) color(s, c string) string {
	if !r.HasColor {
		return s
	}
	return c + s + Off
}

// Float formats f with the shortest representation that keeps a decimal
// point: 1 is "1.0", 2/3 is "0.6666666666666666".
func Float(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// compile-time interface check
var _ Renderer = (*TextRenderer)(nil)
