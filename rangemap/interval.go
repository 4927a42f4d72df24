// Package rangemap rewrites half-open integer ranges through ordered tables
// of partial interval substitutions without visiting individual values.
package rangemap

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInvalidInterval is returned for an interval with a non-positive
	// length, a negative start, or an end that overflows T.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrOverlappingRules is returned by NewTable when two rules cover a
	// common source value.
	ErrOverlappingRules = errors.New("overlapping rules")
)

// Interval is the half-open range [Start, Start+Len).
type Interval[T constraints.Integer] struct {
	Start T
	Len   T
}

// NewInterval returns the interval [start, start+n).
func NewInterval[T constraints.Integer](start, n T) (Interval[T], error) {
	in := Interval[T]{Start: start, Len: n}
	if err := in.Validate(); err != nil {
		return Interval[T]{}, err
	}
	return in, nil
}

// Span returns the interval [start, end).
func Span[T constraints.Integer](start, end T) (Interval[T], error) {
	if end <= start {
		return Interval[T]{}, fmt.Errorf("%w: [%v,%v)", ErrInvalidInterval, start, end)
	}
	return NewInterval(start, end-start)
}

// Validate reports whether in is a well formed interval.
func (in Interval[T]) Validate() error {
	switch {
	case in.Start < 0:
		return fmt.Errorf("%w: negative start %v", ErrInvalidInterval, in.Start)
	case in.Len <= 0:
		return fmt.Errorf("%w: length %v at %v", ErrInvalidInterval, in.Len, in.Start)
	case in.Start+in.Len < in.Start:
		return fmt.Errorf("%w: %v+%v overflows", ErrInvalidInterval, in.Start, in.Len)
	}
	return nil
}

// End returns the first value after in.
func (in Interval[T]) End() T {
	return in.Start + in.Len
}

// Contains reports whether v is in in.
func (in Interval[T]) Contains(v T) bool {
	return v >= in.Start && v < in.End()
}

// Overlap returns the intersection of in and b. ok is false if they are
// disjoint.
func (in Interval[T]) Overlap(b Interval[T]) (_ Interval[T], ok bool) {
	lo := max(in.Start, b.Start)
	hi := min(in.End(), b.End())
	if lo >= hi {
		return Interval[T]{}, false
	}
	return Interval[T]{Start: lo, Len: hi - lo}, true
}

func (in Interval[T]) String() string {
	return fmt.Sprintf("[%v,%v)", in.Start, in.End())
}

// TotalLen returns the sum of the lengths of ins.
func TotalLen[T constraints.Integer](ins []Interval[T]) T {
	var n T
	for _, in := range ins {
		n += in.Len
	}
	return n
}

// MinStart returns the smallest start in ins. It returns false if ins is
// empty.
func MinStart[T constraints.Integer](ins []Interval[T]) (T, bool) {
	if len(ins) == 0 {
		var zero T
		return zero, false
	}
	lo := ins[0].Start
	for _, in := range ins[1:] {
		lo = min(lo, in.Start)
	}
	return lo, true
}

// Normalize returns ins sorted by start with overlapping and adjacent
// intervals merged. The input is not modified.
func Normalize[T constraints.Integer](ins []Interval[T]) []Interval[T] {
	if len(ins) == 0 {
		return nil
	}
	sorted := slices.Clone(ins)
	slices.SortFunc(sorted, func(a, b Interval[T]) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})
	out := sorted[:1]
	for _, in := range sorted[1:] {
		last := &out[len(out)-1]
		if in.Start <= last.End() {
			if e := in.End(); e > last.End() {
				last.Len = e - last.Start
			}
			continue
		}
		out = append(out, in)
	}
	return out
}
