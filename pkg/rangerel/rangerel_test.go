package rangerel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/rangerel/pkg/interval"
	"github.com/stretchr/testify/assert"
)

// spans enumerates every shape over a small integer universe.
func spans() []Span[int] {
	const max = 4
	var out []Span[int]
	for a := 0; a <= max; a++ {
		for b := a; b <= max; b++ {
			if a < b {
				out = append(out, interval.New(a, b))
			}
			out = append(out, interval.NewClosed(a, b))
		}
		out = append(out,
			interval.NewLessThan(a),
			interval.NewAtMost(a),
			interval.NewAtLeast(a),
		)
	}
	out = append(out, interval.Full[int]{})
	return out
}

func TestScenarios(t *testing.T) {
	a := New[int]()

	cases := map[string]struct {
		l        Span[int]
		r        Span[int]
		expected map[string]bool
	}{
		"OverlappingHalfOpen": {
			l: interval.New(1, 10),
			r: interval.New(5, 15),
			expected: map[string]bool{
				"overlaps":   true,
				"starts":     false,
				"before":     false,
				"intersects": true,
			},
		},
		"SharedStart": {
			l: interval.New(1, 4),
			r: interval.New(1, 3),
			expected: map[string]bool{
				"startedby": true,
				"starts":    false,
				"equals":    false,
			},
		},
		"Adjacent": {
			l: interval.New(1, 10),
			r: interval.New(10, 20),
			expected: map[string]bool{
				"meets":      true,
				"before":     false,
				"overlaps":   false,
				"intersects": true,
			},
		},
		"EqualClosed": {
			l: interval.NewClosed(1, 10),
			r: interval.NewClosed(1, 10),
			expected: map[string]bool{
				"equals":   true,
				"starts":   false,
				"finishes": false,
			},
		},
		"ClosedTouchingAtPoint": {
			l: interval.NewClosed(1, 10),
			r: interval.NewClosed(10, 20),
			expected: map[string]bool{
				"overlaps": true,
				"meets":    false,
				"before":   false,
			},
		},
		"Gap": {
			l: interval.New(1, 5),
			r: interval.New(7, 9),
			expected: map[string]bool{
				"before":     true,
				"meets":      false,
				"intersects": false,
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := map[string]bool{}
			for rel := range tc.expected {
				ok, err := a.Query(tc.l, tc.r, rel)
				assert.NoError(t, err)
				got[rel] = ok
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s vs %s: -want +got:\n%s", tc.l, tc.r, diff)
			}
		})
	}
}

func TestFractionalStartedBy(t *testing.T) {
	a := New[float64]()

	l := interval.New(1.0, 4.7)
	r := interval.New(1.0, 3.8)
	assert.True(t, a.StartedBy(l, r))
	assert.True(t, a.Starts(r, l))
}

func TestReciprocals(t *testing.T) {
	a := New[int]()

	ss := spans()
	for _, l := range ss {
		for _, r := range ss {
			assert.Equal(t, a.Starts(l, r), a.StartedBy(r, l))
			assert.Equal(t, a.Meets(l, r), a.MetBy(r, l))
			assert.Equal(t, a.Finishes(l, r), a.FinishedBy(r, l))
			assert.Equal(t, a.After(l, r), a.Before(r, l))
			assert.Equal(t, a.Contains(l, r), a.During(r, l))
			assert.Equal(t, a.Overlaps(l, r), a.OverlappedBy(r, l))
		}
	}
}

func TestFloatReciprocals(t *testing.T) {
	a := New[float64]()

	l := interval.New(1.0, 10.0)
	r := interval.New(5.0, 15.0)
	assert.Equal(t, a.Starts(l, r), a.StartedBy(r, l))
	assert.Equal(t, a.Meets(l, r), a.MetBy(r, l))
	assert.Equal(t, a.Finishes(l, r), a.FinishedBy(r, l))
	assert.Equal(t, a.After(l, r), a.Before(r, l))
	assert.Equal(t, a.Contains(l, r), a.During(r, l))
	assert.Equal(t, a.Overlaps(l, r), a.OverlappedBy(r, l))
}

func TestPartitionProperty(t *testing.T) {
	a := New[int]()

	base := []struct {
		name string
		fn   func(l, r Span[int]) bool
	}{
		{"before", a.Before},
		{"after", a.After},
		{"meets", a.Meets},
		{"metby", a.MetBy},
		{"overlaps", a.Overlaps},
		{"overlappedby", a.OverlappedBy},
		{"starts", a.Starts},
		{"startedby", a.StartedBy},
		{"during", a.During},
		{"contains", a.Contains},
		{"finishes", a.Finishes},
		{"finishedby", a.FinishedBy},
		{"equals", a.Equals},
	}

	ss := spans()
	for _, l := range ss {
		for _, r := range ss {
			var held []string
			for _, rel := range base {
				if rel.fn(l, r) {
					held = append(held, rel.name)
				}
			}
			if len(held) != 1 {
				t.Fatalf("%s vs %s: expected exactly one relation, got %v", l, r, held)
			}
		}
	}
}

func TestDisjointIntersectsDuality(t *testing.T) {
	a := New[int]()

	ss := spans()
	for _, l := range ss {
		for _, r := range ss {
			assert.Equal(t, !a.Intersects(l, r), a.Disjoint(l, r))
		}
	}
}

func TestEqualsReflexive(t *testing.T) {
	a := New[int]()

	for _, s := range spans() {
		assert.True(t, a.Equals(s, s), "expected %s to equal itself", s)
	}
}

func TestMixedShapes(t *testing.T) {
	a := New[int]()

	// (-inf,3) meets [3,+inf); together they tile the whole line
	assert.True(t, a.Meets(interval.NewLessThan(3), interval.NewAtLeast(3)))
	// [1,5) lies inside (-inf,+inf)
	assert.True(t, a.During(interval.New(1, 5), interval.Full[int]{}))
	// explicit boundary pair behaves like its native shape
	assert.True(t, a.Equals(
		interval.New(1, 5),
		interval.Bounds[int]{Start: interval.New(1, 5).StartBound(), End: interval.New(1, 5).EndBound()},
	))
}
