package rangerel

import (
	"errors"
	"fmt"
	"strings"
)

// Relation enumerates the relation predicates addressable by name.
type Relation uint8

const (
	Intersects Relation = iota
	Disjoint
	Before
	After
	Meets
	MetBy
	Overlaps
	OverlappedBy
	Starts
	StartedBy
	During
	Contains
	Finishes
	FinishedBy
	Equals
)

var relationNames = [...]string{
	Intersects:   "intersects",
	Disjoint:     "disjoint",
	Before:       "before",
	After:        "after",
	Meets:        "meets",
	MetBy:        "metby",
	Overlaps:     "overlaps",
	OverlappedBy: "overlappedby",
	Starts:       "starts",
	StartedBy:    "startedby",
	During:       "during",
	Contains:     "contains",
	Finishes:     "finishes",
	FinishedBy:   "finishedby",
	Equals:       "equals",
}

func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return fmt.Sprintf("relation(%d)", uint8(r))
}

// ErrUnknownRelation is returned when a relation keyword does not resolve.
var ErrUnknownRelation = errors.New("unknown relation keyword")

var relationKeywords = map[string]Relation{
	"intersects":   Intersects,
	"anyinteracts": Intersects,
	"disjoint":     Disjoint,
	"before":       Before,
	"after":        After,
	"meets":        Meets,
	"meeets":       Meets, // historical misspelling, kept for existing callers
	"metby":        MetBy,
	"overlaps":     Overlaps,
	"overlappedby": OverlappedBy,
	"starts":       Starts,
	"startedby":    StartedBy,
	"during":       During,
	"contains":     Contains,
	"finishes":     Finishes,
	"finishedby":   FinishedBy,
	"equals":       Equals,
}

// ParseRelation resolves free-form text to a Relation. Matching is
// case-insensitive and ignores any underscore-separated prefix, so
// "range_intersects" and "Intersects" resolve to the same relation.
// An unrecognized keyword returns an error wrapping ErrUnknownRelation;
// it indicates a programming mistake, not a runtime data condition.
func ParseRelation(s string) (Relation, error) {
	name := strings.ToLower(s)
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		name = name[i+1:]
	}
	rel, ok := relationKeywords[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRelation, s)
	}
	return rel, nil
}

// Eval invokes the predicate selected by rel. It panics on a Relation
// value outside the enumeration.
func (a Algebra[T]) Eval(l, r Span[T], rel Relation) bool {
	switch rel {
	case Intersects:
		return a.Intersects(l, r)
	case Disjoint:
		return a.Disjoint(l, r)
	case Before:
		return a.Before(l, r)
	case After:
		return a.After(l, r)
	case Meets:
		return a.Meets(l, r)
	case MetBy:
		return a.MetBy(l, r)
	case Overlaps:
		return a.Overlaps(l, r)
	case OverlappedBy:
		return a.OverlappedBy(l, r)
	case Starts:
		return a.Starts(l, r)
	case StartedBy:
		return a.StartedBy(l, r)
	case During:
		return a.During(l, r)
	case Contains:
		return a.Contains(l, r)
	case Finishes:
		return a.Finishes(l, r)
	case FinishedBy:
		return a.FinishedBy(l, r)
	case Equals:
		return a.Equals(l, r)
	}
	panic(fmt.Sprintf("rangerel: invalid relation %d", uint8(rel)))
}

// Query resolves name with ParseRelation and evaluates it against l and r.
func (a Algebra[T]) Query(l, r Span[T], name string) (bool, error) {
	rel, err := ParseRelation(name)
	if err != nil {
		return false, err
	}
	return a.Eval(l, r, rel), nil
}
