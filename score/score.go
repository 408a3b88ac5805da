// Package score compares a predicted span set against a gold span set with
// exact boundary matching.
package score

import (
	"github.com/revelaction/conllspan/span"
)

// Result holds the comparison of a predicted and a gold span set.
type Result struct {
	TruePositives span.Set `json:"-"`
	Missed        span.Set `json:"-"`

	NumPredicted     int `json:"predicted"`
	NumGold          int `json:"gold"`
	NumTruePositives int `json:"true_positives"`

	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Compare scores predicted against gold. A metric whose denominator is zero
// (an empty set, or precision and recall both zero) is 0.
func Compare(predicted, gold span.Set) Result {
	tp := predicted.Intersect(gold)

	r := Result{
		TruePositives:    tp,
		Missed:           gold.Difference(predicted),
		NumPredicted:     predicted.Len(),
		NumGold:          gold.Len(),
		NumTruePositives: tp.Len(),
	}

	if r.NumGold > 0 {
		r.Recall = float64(r.NumTruePositives) / float64(r.NumGold)
	}
	if r.NumPredicted > 0 {
		r.Precision = float64(r.NumTruePositives) / float64(r.NumPredicted)
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}

	return r
}

// Defined reports whether both span sets were non empty, so that precision
// and recall are not the zero fallback.
func (r Result) Defined() bool {
	return r.NumGold > 0 && r.NumPredicted > 0
}
