package timerange

import (
	"fmt"
	"strings"
	"time"

	"github.com/henderiw/rangerel/pkg/boundary"
	"github.com/henderiw/rangerel/pkg/rangerel"
)

// Algebra evaluates relations between time periods.
var Algebra = rangerel.NewFunc(time.Time.Compare)

// Period is the half-open time interval [From, To).
type Period struct {
	From time.Time
	To   time.Time
}

func New(from, to time.Time) Period {
	return Period{From: from, To: to}
}

// Parse parses a period in ISO 8601 interval notation with RFC 3339
// endpoints, e.g. "2020-01-01T00:00:00Z/2020-03-01T00:00:00Z".
func Parse(s string) (Period, error) {
	h := strings.IndexByte(s, '/')
	if h == -1 {
		return Period{}, fmt.Errorf("no slash in period %q", s)
	}
	from, err := time.Parse(time.RFC3339, s[:h])
	if err != nil {
		return Period{}, fmt.Errorf("invalid from time %q in period %q", s[:h], s)
	}
	to, err := time.Parse(time.RFC3339, s[h+1:])
	if err != nil {
		return Period{}, fmt.Errorf("invalid to time %q in period %q", s[h+1:], s)
	}
	return Period{From: from, To: to}, nil
}

func (p Period) StartBound() boundary.Boundary[time.Time] {
	return boundary.Inclusive(p.From)
}

func (p Period) EndBound() boundary.Boundary[time.Time] {
	return boundary.Exclusive(p.To)
}

func (p Period) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}

func (p Period) String() string {
	return fmt.Sprintf("%s/%s", p.From.Format(time.RFC3339), p.To.Format(time.RFC3339))
}
