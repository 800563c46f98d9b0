package rangerel

import "github.com/henderiw/rangerel/pkg/boundary"

// Span is implemented by any value that can report its edges as boundary
// markers over the domain T. Two spans over the same domain are comparable
// regardless of their concrete type.
type Span[T any] interface {
	StartBound() boundary.Boundary[T]
	EndBound() boundary.Boundary[T]
}
