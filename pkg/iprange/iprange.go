package iprange

import (
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangerel/pkg/boundary"
	"github.com/henderiw/rangerel/pkg/rangerel"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Algebra evaluates relations between address ranges.
var Algebra = rangerel.NewFunc(netip.Addr.Compare)

// Range adapts a netipx.IPRange, inclusive on both ends, to the span
// capability over netip.Addr.
type Range struct {
	r netipx.IPRange
}

func New(r netipx.IPRange) Range {
	return Range{r: r}
}

// Parse parses a range in from-to notation, e.g. "10.0.0.10-10.0.0.20".
func Parse(s string) (Range, error) {
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return Range{}, err
	}
	return Range{r: r}, nil
}

// FromPrefix returns the range of addresses covered by p.
func FromPrefix(p netip.Prefix) Range {
	return Range{r: netipx.RangeOfPrefix(p)}
}

func (r Range) IPRange() netipx.IPRange { return r.r }

func (r Range) StartBound() boundary.Boundary[netip.Addr] {
	return boundary.Inclusive(r.r.From())
}

func (r Range) EndBound() boundary.Boundary[netip.Addr] {
	return boundary.Inclusive(r.r.To())
}

func (r Range) String() string { return r.r.String() }

// RelatedRoutes returns the routes whose prefix bears rel to pfx. A non-nil
// selector narrows the candidates by their labels first.
func RelatedRoutes(routes table.Routes, pfx netip.Prefix, rel rangerel.Relation, selector labels.Selector) table.Routes {
	q := FromPrefix(pfx)

	var out table.Routes
	for _, route := range routes {
		if selector != nil && !selector.Matches(route.Labels()) {
			continue
		}
		if Algebra.Eval(FromPrefix(route.Prefix()), q, rel) {
			out = append(out, route)
		}
	}
	return out
}

// QueryRoutes is RelatedRoutes with the relation supplied as free-form
// text; an unrecognized keyword returns the dispatch error.
func QueryRoutes(routes table.Routes, pfx netip.Prefix, relName string, selector labels.Selector) (table.Routes, error) {
	rel, err := rangerel.ParseRelation(relName)
	if err != nil {
		return nil, err
	}
	return RelatedRoutes(routes, pfx, rel, selector), nil
}
