package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortOuterSpanFirst(t *testing.T) {
	a := Span{Sentence: 0, Start: 2, End: 5, Label: "A"}
	b := Span{Sentence: 0, Start: 2, End: 3, Label: "B"}

	spans := []Span{b, a}
	Sort(spans)

	assert.Equal(t, []Span{a, b}, spans)
	assert.True(t, Less(a, b))
	assert.False(t, Less(b, a))
}

func TestSortKeys(t *testing.T) {
	spans := []Span{
		{Sentence: 1, Start: 0, End: 0, Label: "x"},
		{Sentence: 0, Start: 4, End: 6, Label: "y"},
		{Sentence: 0, Start: 1, End: 1, Label: "z"},
		{Sentence: 0, Start: 1, End: 3, Label: "w"},
	}
	Sort(spans)

	var labels []string
	for _, s := range spans {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"w", "z", "y", "x"}, labels)
}

func TestSortStableOnEqualBoundaries(t *testing.T) {
	spans := []Span{
		{Sentence: 0, Start: 1, End: 2, Label: "first"},
		{Sentence: 0, Start: 0, End: 0, Label: "lead"},
		{Sentence: 0, Start: 1, End: 2, Label: "second"},
		{Sentence: 0, Start: 1, End: 2, Label: "third"},
	}
	Sort(spans)

	assert.Equal(t, "lead", spans[0].Label)
	assert.Equal(t, "first", spans[1].Label)
	assert.Equal(t, "second", spans[2].Label)
	assert.Equal(t, "third", spans[3].Label)
}

func TestIndexSingletonAndRange(t *testing.T) {
	idx, err := NewIndex([]Span{
		{Sentence: 0, Start: 1, End: 1, Label: "3"},
		{Sentence: 0, Start: 3, End: 5, Label: "7"},
	})
	require.NoError(t, err)

	want := []string{"-", "(3)", "-", "(7", "-", "7)", "-"}
	for tok, w := range want {
		assert.Equal(t, w, idx.Fragment(0, tok), "token %d", tok)
	}
}

func TestIndexGroupOrder(t *testing.T) {
	// token 2: "1" ends, "2" starts, "4" is a singleton
	idx, err := NewIndex([]Span{
		{Sentence: 0, Start: 0, End: 2, Label: "1"},
		{Sentence: 0, Start: 2, End: 4, Label: "2"},
		{Sentence: 0, Start: 2, End: 2, Label: "4"},
	})
	require.NoError(t, err)

	assert.Equal(t, "(2|(4)|1)", idx.Fragment(0, 2))
	assert.Equal(t, "(1", idx.Fragment(0, 0))
	assert.Equal(t, "2)", idx.Fragment(0, 4))
}

func TestIndexNestedSameStart(t *testing.T) {
	idx, err := NewIndex([]Span{
		{Sentence: 2, Start: 0, End: 1, Label: "inner"},
		{Sentence: 2, Start: 0, End: 3, Label: "outer"},
	})
	require.NoError(t, err)

	assert.Equal(t, "(outer|(inner", idx.Fragment(2, 0))
	assert.Equal(t, "inner)", idx.Fragment(2, 1))
	assert.Equal(t, "outer)", idx.Fragment(2, 3))
}

func TestIndexOutOfRange(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	assert.Equal(t, Empty, idx.Fragment(0, 0))
	assert.Equal(t, Empty, idx.Fragment(-1, 3))

	idx, err = NewIndex([]Span{{Sentence: 1, Start: 0, End: 0, Label: "a"}})
	require.NoError(t, err)
	assert.Equal(t, Empty, idx.Fragment(0, 0))
	assert.Equal(t, Empty, idx.Fragment(1, 9))
	assert.Equal(t, Empty, idx.Fragment(5, 0))
}

func TestNewIndexDoesNotReorderInput(t *testing.T) {
	spans := []Span{
		{Sentence: 1, Start: 0, End: 0, Label: "b"},
		{Sentence: 0, Start: 0, End: 0, Label: "a"},
	}
	_, err := NewIndex(spans)
	require.NoError(t, err)
	require.Equal(t, "b", spans[0].Label)
}

func TestNewIndexInvalidSpan(t *testing.T) {
	tests := []struct {
		name string
		span Span
	}{
		{name: "negative sentence", span: Span{Sentence: -1, Start: 0, End: 1, Label: "a"}},
		{name: "negative start", span: Span{Sentence: 0, Start: -1, End: 0, Label: "a"}},
		{name: "end before start", span: Span{Sentence: 0, Start: 1, End: 0, Label: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid := Span{Sentence: 0, Start: 0, End: 0, Label: "ok"}
			idx, err := NewIndex([]Span{valid, tt.span})
			assert.ErrorIs(t, err, ErrInvalidSpan)
			assert.Nil(t, idx)
		})
	}
}

func TestSetAlgebra(t *testing.T) {
	pred := NewSet(Key{Start: 0, End: 2})
	gold := NewSet(Key{Start: 0, End: 2}, Key{Start: 3, End: 5})

	tp := pred.Intersect(gold)
	assert.Equal(t, 1, tp.Len())
	assert.True(t, tp.Has(Key{Start: 0, End: 2}))

	missed := gold.Difference(pred)
	assert.Equal(t, []Key{{Start: 3, End: 5}}, missed.Keys())
}

func TestSetLabelsDistinguishKeys(t *testing.T) {
	s := NewSet(Key{Label: "NP", Start: 0, End: 1}, Key{Label: "S", Start: 0, End: 1})
	s.Add(Key{Label: "NP", Start: 0, End: 1})

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Key{{Label: "NP", Start: 0, End: 1}, {Label: "S", Start: 0, End: 1}}, s.Keys())
}

func TestSetKeysOrder(t *testing.T) {
	s := NewSet(Key{Start: 4, End: 4}, Key{Start: 0, End: 1}, Key{Start: 0, End: 6})
	assert.Equal(t, []Key{{Start: 0, End: 6}, {Start: 0, End: 1}, {Start: 4, End: 4}}, s.Keys())
}
