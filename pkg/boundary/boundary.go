package boundary

import "fmt"

// Kind discriminates the marker variants of a Boundary.
type Kind uint8

const (
	// KindNegInf ranks below every finite marker.
	KindNegInf Kind = iota
	// KindExclusive marks an edge that extends up to, but not including,
	// its value. At equal values it ranks below the inclusive marker.
	KindExclusive
	// KindInclusive marks an edge whose value belongs to the interval.
	KindInclusive
	// KindInf ranks above every finite marker.
	KindInf
)

// Boundary is an ordinal marker for one edge of an interval over the
// domain T. The zero value is NegInf.
type Boundary[T any] struct {
	kind  Kind
	value T
}

// NegInf returns the marker ranking below every finite marker.
func NegInf[T any]() Boundary[T] {
	return Boundary[T]{kind: KindNegInf}
}

// Inf returns the marker ranking above every finite marker.
func Inf[T any]() Boundary[T] {
	return Boundary[T]{kind: KindInf}
}

// Inclusive returns the marker for an edge that includes v.
func Inclusive[T any](v T) Boundary[T] {
	return Boundary[T]{kind: KindInclusive, value: v}
}

// Exclusive returns the marker for an upper edge that extends up to, but
// not including, v. It ranks strictly between every marker at values
// below v and Inclusive(v).
func Exclusive[T any](v T) Boundary[T] {
	return Boundary[T]{kind: KindExclusive, value: v}
}

func (b Boundary[T]) Kind() Kind { return b.kind }

// Value returns the finite value of b. ok is false for the infinite kinds.
func (b Boundary[T]) Value() (T, bool) {
	if b.kind == KindNegInf || b.kind == KindInf {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Compare returns 0 if b == o, -1 if b ranks below o, and +1 if b ranks
// above o, comparing finite values with cmp.
func (b Boundary[T]) Compare(o Boundary[T], cmp func(a, b T) int) int {
	switch {
	case b.kind == o.kind:
		if b.kind == KindNegInf || b.kind == KindInf {
			return 0
		}
		return cmp(b.value, o.value)
	case b.kind == KindNegInf || o.kind == KindInf:
		return -1
	case b.kind == KindInf || o.kind == KindNegInf:
		return 1
	}
	// one exclusive, one inclusive
	if c := cmp(b.value, o.value); c != 0 {
		return c
	}
	if b.kind == KindExclusive {
		return -1
	}
	return 1
}

// Less reports whether b ranks below o.
func (b Boundary[T]) Less(o Boundary[T], cmp func(a, b T) int) bool {
	return b.Compare(o, cmp) < 0
}

// Equal reports whether b and o are the same marker.
func (b Boundary[T]) Equal(o Boundary[T], cmp func(a, b T) int) bool {
	return b.Compare(o, cmp) == 0
}

// Abuts reports whether b, read as an end marker, tiles into s, read as a
// start marker, with no gap and no shared point: b excludes a value that
// s includes.
func (b Boundary[T]) Abuts(s Boundary[T], cmp func(a, b T) int) bool {
	return b.kind == KindExclusive && s.kind == KindInclusive &&
		cmp(b.value, s.value) == 0
}

func (b Boundary[T]) String() string {
	switch b.kind {
	case KindNegInf:
		return "-inf"
	case KindInf:
		return "+inf"
	case KindExclusive:
		return fmt.Sprintf("<%v", b.value)
	default:
		return fmt.Sprintf("%v", b.value)
	}
}
