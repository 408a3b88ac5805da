package span

import "sort"

// Key identifies a decoded span by its boundaries. Start and End are line
// indices in a CoNLL file. Label is empty for untagged spans.
type Key struct {
	Label string `json:"label,omitempty"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Set is an unordered collection of span keys.
type Set map[Key]struct{}

func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Intersect returns the keys present in both s and o.
func (s Set) Intersect(o Set) Set {
	small, big := s, o
	if len(big) < len(small) {
		small, big = big, small
	}

	out := make(Set)
	for k := range small {
		if big.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Difference returns the keys of s that are not in o.
func (s Set) Difference(o Set) Set {
	out := make(Set)
	for k := range s {
		if !o.Has(k) {
			out.Add(k)
		}
	}
	return out
}

// Keys returns the keys ordered by start, end descending, then label.
func (s Set) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Start != keys[j].Start {
			return keys[i].Start < keys[j].Start
		}
		if keys[i].End != keys[j].End {
			return keys[i].End > keys[j].End
		}
		return keys[i].Label < keys[j].Label
	})

	return keys
}
