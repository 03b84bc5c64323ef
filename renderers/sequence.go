// Package renderers converts statement models into SQL text plus an ordered,
// named parameter map, using a pluggable rendering strategy for bind-marker
// syntax.
package renderers

import "sync/atomic"

// Sequence produces the parameter numbers for one top-level statement
// render. It is shared by pointer into every nested render (subqueries,
// paging, insert-select) so generated names stay unique across the whole
// statement, and is safe under parallel clause rendering.
type Sequence struct {
	n atomic.Int64
}

// NewSequence creates a sequence whose first value is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next value, strictly increasing.
func (s *Sequence) Next() int {
	return int(s.n.Add(1))
}
