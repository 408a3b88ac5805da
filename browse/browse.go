// Package browse is an interactive prompt over a missed span report.
package browse

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/conllspan/missed"
	"github.com/revelaction/conllspan/render"
)

const (
	cmdList        = "list"
	cmdUnexplained = "unexplained"
	cmdRules       = "rules"
	cmdQuit        = "quit"
)

var errEmptyInput = errors.New("empty input")

type Handler struct {
	Report   *missed.Report
	Renderer *render.TextRenderer
	Out      io.Writer
}

func NewHandler(rep *missed.Report, r *render.TextRenderer, out io.Writer) *Handler {
	return &Handler{
		Report:   rep,
		Renderer: r,
		Out:      out,
	}
}

func (h *Handler) Run() error {

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle color, 🔧 list, unexplained, rules, <doc:sent:begin-end>, <rule log>, quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("conllspan missed"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Fprintf(h.Out, "Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if quit {
			return nil
		}
		if err != nil && !errors.Is(err, errEmptyInput) {
			fmt.Fprintf(h.Out, "%v\n", err)
		}
	}
}

// Exec runs one prompt line. It returns true when the line asks to quit.
func (h *Handler) Exec(in string) (bool, error) {
	in = strings.TrimSpace(in)
	switch in {
	case "":
		return false, errEmptyInput
	case cmdQuit:
		return true, nil
	case cmdList:
		h.list(h.Report.Entries)
		return false, nil
	case cmdUnexplained:
		var entries []missed.Entry
		for _, e := range h.Report.Entries {
			if len(e.Rules) == 0 {
				entries = append(entries, e)
			}
		}
		h.list(entries)
		return false, nil
	case cmdRules:
		counts := h.ruleCounts()
		for _, name := range sortedKeys(counts) {
			fmt.Fprintf(h.Out, "%5d %s\n", counts[name], name)
		}
		return false, nil
	}

	if k, err := parseKey(in); err == nil {
		e, ok := h.Report.Lookup(k)
		if !ok {
			return false, fmt.Errorf("no missed span %s", k)
		}
		_, err := io.WriteString(h.Out, h.Renderer.EntryString(e))
		return false, err
	}

	if _, ok := h.ruleCounts()[in]; ok {
		var entries []missed.Entry
		for _, e := range h.Report.Entries {
			for _, hit := range e.Rules {
				if hit.Log == in {
					entries = append(entries, e)
					break
				}
			}
		}
		h.list(entries)
		return false, nil
	}

	return false, fmt.Errorf("unknown command %q", in)
}

func (h *Handler) list(entries []missed.Entry) {
	for _, e := range entries {
		logs := make([]string, 0, len(e.Rules))
		for _, hit := range e.Rules {
			logs = append(logs, hit.Log)
		}
		fmt.Fprintf(h.Out, "%-16s %s\n", e.Key, strings.Join(logs, " "))
	}
}

func (h *Handler) ruleCounts() map[string]int {
	counts := map[string]int{}
	for _, e := range h.Report.Entries {
		seen := map[string]bool{}
		for _, hit := range e.Rules {
			if !seen[hit.Log] {
				counts[hit.Log]++
				seen[hit.Log] = true
			}
		}
	}
	return counts
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" || strings.Contains(befCursor, " ") {
		return s
	}

	for _, cmd := range []string{cmdList, cmdUnexplained, cmdRules, cmdQuit} {
		s = append(s, prompt.Suggest{Text: cmd, Description: "🔧"})
	}

	counts := h.ruleCounts()
	for _, name := range sortedKeys(counts) {
		s = append(s, prompt.Suggest{Text: name, Description: fmt.Sprintf("🔖 %d", counts[name])})
	}

	for _, e := range h.Report.Entries {
		s = append(s, prompt.Suggest{Text: e.Key.String(), Description: fmt.Sprintf("%d rules", len(e.Rules))})
	}

	return prompt.FilterHasPrefix(s, befCursor, false)
}

// parseKey parses the doc:sent:begin-end form of Key.String.
func parseKey(s string) (missed.Key, error) {
	var k missed.Key
	n, err := fmt.Sscanf(s, "%d:%d:%d-%d", &k.Doc, &k.Sent, &k.Begin, &k.End)
	if err != nil {
		return k, err
	}
	if n != 4 || k.String() != s {
		return k, fmt.Errorf("invalid key %q", s)
	}
	return k, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
