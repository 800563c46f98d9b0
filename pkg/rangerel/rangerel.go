package rangerel

import "cmp"

// Algebra evaluates the thirteen Allen relations between spans over T.
// All methods are pure over their arguments and safe for concurrent use.
// Results for malformed spans (start ranking above end) are unspecified.
type Algebra[T any] struct {
	cmp func(a, b T) int
}

// New returns an Algebra over an ordered primitive domain.
func New[T cmp.Ordered]() Algebra[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an Algebra over a domain ordered by cmp, for types that
// carry their own comparison, e.g. NewFunc(netip.Addr.Compare) or
// NewFunc(time.Time.Compare).
func NewFunc[T any](cmp func(a, b T) int) Algebra[T] {
	return Algebra[T]{cmp: cmp}
}

// Before reports whether l ends below the start of r, leaving a gap.
func (a Algebra[T]) Before(l, r Span[T]) bool {
	le, rs := l.EndBound(), r.StartBound()
	return le.Less(rs, a.cmp) && !le.Abuts(rs, a.cmp)
}

// Meets reports whether l ends exactly where r starts, tiling with no gap
// and no shared point.
func (a Algebra[T]) Meets(l, r Span[T]) bool {
	return l.EndBound().Abuts(r.StartBound(), a.cmp)
}

// Overlaps reports whether l starts first, r starts inside l, and r ends
// last, with neither span containing the other.
func (a Algebra[T]) Overlaps(l, r Span[T]) bool {
	ls, le := l.StartBound(), l.EndBound()
	rs, re := r.StartBound(), r.EndBound()
	return ls.Less(rs, a.cmp) && rs.Compare(le, a.cmp) <= 0 && le.Less(re, a.cmp)
}

// Starts reports whether l and r start together and l ends first.
func (a Algebra[T]) Starts(l, r Span[T]) bool {
	ls, le := l.StartBound(), l.EndBound()
	rs, re := r.StartBound(), r.EndBound()
	return ls.Equal(rs, a.cmp) && le.Less(re, a.cmp)
}

// During reports whether l lies strictly inside r.
func (a Algebra[T]) During(l, r Span[T]) bool {
	ls, le := l.StartBound(), l.EndBound()
	rs, re := r.StartBound(), r.EndBound()
	return rs.Less(ls, a.cmp) && le.Less(re, a.cmp)
}

// Finishes reports whether l starts after r and both end together.
func (a Algebra[T]) Finishes(l, r Span[T]) bool {
	ls, le := l.StartBound(), l.EndBound()
	rs, re := r.StartBound(), r.EndBound()
	return rs.Less(ls, a.cmp) && le.Equal(re, a.cmp)
}

// Equals reports whether l and r have identical boundaries.
func (a Algebra[T]) Equals(l, r Span[T]) bool {
	ls, le := l.StartBound(), l.EndBound()
	rs, re := r.StartBound(), r.EndBound()
	return ls.Equal(rs, a.cmp) && le.Equal(re, a.cmp)
}

// Intersects reports whether l and r interact at all: they share a point
// or tile with no gap. Equivalent to neither being before the other.
func (a Algebra[T]) Intersects(l, r Span[T]) bool {
	return !a.Before(l, r) && !a.Before(r, l)
}

// Disjoint is the negation of Intersects.
func (a Algebra[T]) Disjoint(l, r Span[T]) bool {
	return !a.Intersects(l, r)
}

// The reciprocal relations are argument swaps into the base relation, so
// the symmetry rel(l, r) == reciprocal(r, l) holds by construction.

func (a Algebra[T]) After(l, r Span[T]) bool        { return a.Before(r, l) }
func (a Algebra[T]) MetBy(l, r Span[T]) bool        { return a.Meets(r, l) }
func (a Algebra[T]) OverlappedBy(l, r Span[T]) bool { return a.Overlaps(r, l) }
func (a Algebra[T]) StartedBy(l, r Span[T]) bool    { return a.Starts(r, l) }
func (a Algebra[T]) Contains(l, r Span[T]) bool     { return a.During(r, l) }
func (a Algebra[T]) FinishedBy(l, r Span[T]) bool   { return a.Finishes(r, l) }
