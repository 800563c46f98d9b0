package interval

import (
	"fmt"

	"github.com/henderiw/rangerel/pkg/boundary"
)

// ClosedOpen is the interval [Start, End).
type ClosedOpen[T any] struct {
	Start T
	End   T
}

// New returns the half-open interval [start, end).
func New[T any](start, end T) ClosedOpen[T] {
	return ClosedOpen[T]{Start: start, End: end}
}

func (i ClosedOpen[T]) StartBound() boundary.Boundary[T] { return boundary.Inclusive(i.Start) }
func (i ClosedOpen[T]) EndBound() boundary.Boundary[T]   { return boundary.Exclusive(i.End) }

func (i ClosedOpen[T]) String() string {
	return fmt.Sprintf("[%v,%v)", i.Start, i.End)
}

// Closed is the interval [Start, End].
type Closed[T any] struct {
	Start T
	End   T
}

// NewClosed returns the closed interval [start, end].
func NewClosed[T any](start, end T) Closed[T] {
	return Closed[T]{Start: start, End: end}
}

func (i Closed[T]) StartBound() boundary.Boundary[T] { return boundary.Inclusive(i.Start) }
func (i Closed[T]) EndBound() boundary.Boundary[T]   { return boundary.Inclusive(i.End) }

func (i Closed[T]) String() string {
	return fmt.Sprintf("[%v,%v]", i.Start, i.End)
}

// LessThan is the interval (-inf, End).
type LessThan[T any] struct {
	End T
}

// NewLessThan returns the interval (-inf, end).
func NewLessThan[T any](end T) LessThan[T] {
	return LessThan[T]{End: end}
}

func (i LessThan[T]) StartBound() boundary.Boundary[T] { return boundary.NegInf[T]() }
func (i LessThan[T]) EndBound() boundary.Boundary[T]   { return boundary.Exclusive(i.End) }

func (i LessThan[T]) String() string {
	return fmt.Sprintf("(-inf,%v)", i.End)
}

// AtMost is the interval (-inf, End].
type AtMost[T any] struct {
	End T
}

// NewAtMost returns the interval (-inf, end].
func NewAtMost[T any](end T) AtMost[T] {
	return AtMost[T]{End: end}
}

func (i AtMost[T]) StartBound() boundary.Boundary[T] { return boundary.NegInf[T]() }
func (i AtMost[T]) EndBound() boundary.Boundary[T]   { return boundary.Inclusive(i.End) }

func (i AtMost[T]) String() string {
	return fmt.Sprintf("(-inf,%v]", i.End)
}

// AtLeast is the interval [Start, +inf).
type AtLeast[T any] struct {
	Start T
}

// NewAtLeast returns the interval [start, +inf).
func NewAtLeast[T any](start T) AtLeast[T] {
	return AtLeast[T]{Start: start}
}

func (i AtLeast[T]) StartBound() boundary.Boundary[T] { return boundary.Inclusive(i.Start) }
func (i AtLeast[T]) EndBound() boundary.Boundary[T]   { return boundary.Inf[T]() }

func (i AtLeast[T]) String() string {
	return fmt.Sprintf("[%v,+inf)", i.Start)
}

// Full is the interval (-inf, +inf).
type Full[T any] struct{}

func (Full[T]) StartBound() boundary.Boundary[T] { return boundary.NegInf[T]() }
func (Full[T]) EndBound() boundary.Boundary[T]   { return boundary.Inf[T]() }

func (Full[T]) String() string {
	return "(-inf,+inf)"
}

// Bounds is an interval given directly as a boundary pair.
type Bounds[T any] struct {
	Start boundary.Boundary[T]
	End   boundary.Boundary[T]
}

func (i Bounds[T]) StartBound() boundary.Boundary[T] { return i.Start }
func (i Bounds[T]) EndBound() boundary.Boundary[T]   { return i.End }

func (i Bounds[T]) String() string {
	return fmt.Sprintf("(%s,%s)", i.Start, i.End)
}
