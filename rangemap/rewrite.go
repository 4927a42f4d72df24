package rangemap

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Rule maps every value v in Source to Dest + (v - Source.Start).
type Rule[T constraints.Integer] struct {
	Source Interval[T]
	Dest   T
}

// Map returns the image of v under r. ok is false if v is outside
// r.Source.
func (r Rule[T]) Map(v T) (_ T, ok bool) {
	if !r.Source.Contains(v) {
		return v, false
	}
	return v - r.Source.Start + r.Dest, true
}

func (r Rule[T]) String() string {
	return fmt.Sprintf("%v->%v", r.Source, r.Dest)
}

// RewriteOne applies r to in. If they do not overlap, unmapped is just in
// and ok is false. Otherwise mapped is the translated overlap and unmapped
// holds the parts of in before and after it.
func RewriteOne[T constraints.Integer](r Rule[T], in Interval[T]) (unmapped []Interval[T], mapped Interval[T], ok bool) {
	o, ok := in.Overlap(r.Source)
	if !ok {
		return []Interval[T]{in}, Interval[T]{}, false
	}
	if in.Start < o.Start {
		unmapped = append(unmapped, Interval[T]{Start: in.Start, Len: o.Start - in.Start})
	}
	if e := in.End(); e > o.End() {
		unmapped = append(unmapped, Interval[T]{Start: o.End(), Len: e - o.End()})
	}
	mapped = Interval[T]{Start: o.Start - r.Source.Start + r.Dest, Len: o.Len}
	return unmapped, mapped, true
}

// Table is a named set of rules with disjoint sources. Values outside
// every source map to themselves.
type Table[T constraints.Integer] struct {
	Name  string
	rules []Rule[T]
}

// NewTable returns a table of rules. It fails if any rule has an invalid
// source or two sources overlap.
func NewTable[T constraints.Integer](name string, rules ...Rule[T]) (*Table[T], error) {
	for _, r := range rules {
		if err := r.Source.Validate(); err != nil {
			return nil, fmt.Errorf("%s: rule %v: %w", name, r, err)
		}
		if _, err := NewInterval(r.Dest, r.Source.Len); err != nil {
			return nil, fmt.Errorf("%s: rule %v destination: %w", name, r, err)
		}
	}
	sorted := slices.Clone(rules)
	slices.SortFunc(sorted, func(a, b Rule[T]) int {
		switch {
		case a.Source.Start < b.Source.Start:
			return -1
		case a.Source.Start > b.Source.Start:
			return 1
		}
		return 0
	})
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Source.Start < prev.Source.End() {
			return nil, fmt.Errorf("%s: %w: %v and %v", name, ErrOverlappingRules, prev, cur)
		}
	}
	return &Table[T]{Name: name, rules: sorted}, nil
}

// Rules returns a copy of the table's rules ordered by source start.
func (t *Table[T]) Rules() []Rule[T] {
	return slices.Clone(t.rules)
}

// Map returns the image of v under t.
func (t *Table[T]) Map(v T) T {
	i, found := slices.BinarySearchFunc(t.rules, v, func(r Rule[T], v T) int {
		switch {
		case r.Source.End() <= v:
			return -1
		case r.Source.Start > v:
			return 1
		}
		return 0
	})
	if !found {
		return v
	}
	out, _ := t.rules[i].Map(v)
	return out
}

// Rewrite returns the image of ins under t. The result covers exactly as
// many values as ins, in no particular order.
func (t *Table[T]) Rewrite(ins []Interval[T]) ([]Interval[T], error) {
	for _, in := range ins {
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
	}
	done, pending := foldRules(t.rules, nil, slices.Clone(ins))
	// Whatever no rule touched maps to itself.
	return append(done, pending...), nil
}

// foldRules applies each rule to the pending intervals in turn. Mapped
// parts move to done; leftovers stay pending for the next rule.
func foldRules[T constraints.Integer](rules []Rule[T], done, pending []Interval[T]) ([]Interval[T], []Interval[T]) {
	for _, r := range rules {
		var next []Interval[T]
		for _, in := range pending {
			unmapped, mapped, ok := RewriteOne(r, in)
			if ok {
				done = append(done, mapped)
			}
			next = append(next, unmapped...)
		}
		pending = next
	}
	return done, pending
}

// Pipeline is an ordered sequence of tables.
type Pipeline[T constraints.Integer] []*Table[T]

// Map folds v through every table in order.
func (p Pipeline[T]) Map(v T) T {
	for _, t := range p {
		v = t.Map(v)
	}
	return v
}

// Rewrite folds ins through every table in order.
func (p Pipeline[T]) Rewrite(ins []Interval[T]) ([]Interval[T], error) {
	for _, in := range ins {
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}
	cur := slices.Clone(ins)
	for _, t := range p {
		out, err := t.Rewrite(cur)
		if err != nil {
			return nil, err
		}
		cur = out
	}
	return cur, nil
}
