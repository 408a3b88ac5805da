package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/conllspan/missed"
	"github.com/revelaction/conllspan/score"
	"github.com/revelaction/conllspan/span"
)

// JSONRenderer writes results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer

	// ShowMissed adds the missed gold spans to the score object
	ShowMissed bool
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type scoreJSON struct {
	score.Result
	Missed []span.Key `json:"missed,omitempty"`
}

// Score serializes the result counts and metrics as a JSON object.
func (r *JSONRenderer) Score(res score.Result) error {
	out := scoreJSON{Result: res}
	if r.ShowMissed {
		out.Missed = res.Missed.Keys()
	}
	return json.NewEncoder(r.W).Encode(out)
}

// Report serializes the missed span entries as a JSON array.
func (r *JSONRenderer) Report(rep *missed.Report) error {
	entries := rep.Entries
	if entries == nil {
		entries = []missed.Entry{}
	}
	return json.NewEncoder(r.W).Encode(entries)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
