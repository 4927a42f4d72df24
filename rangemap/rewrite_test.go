package rangemap

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"testing"
)

func iv(start, end int) Interval[int] {
	return Interval[int]{Start: start, Len: end - start}
}

func mustTable(t *testing.T, name string, rules ...Rule[int]) *Table[int] {
	t.Helper()
	tbl, err := NewTable(name, rules...)
	if err != nil {
		t.Fatalf("NewTable(%q): %v", name, err)
	}
	return tbl
}

func sameSet(a, b []Interval[int]) bool {
	return slices.Equal(Normalize(a), Normalize(b))
}

func TestRewriteOne(t *testing.T) {
	tests := []struct {
		name         string
		rule         Rule[int]
		in           Interval[int]
		wantUnmapped []Interval[int]
		wantMapped   Interval[int]
		wantOK       bool
	}{
		{
			name:         "split",
			rule:         Rule[int]{Source: iv(10, 20), Dest: 100},
			in:           iv(5, 25),
			wantUnmapped: []Interval[int]{iv(5, 10), iv(20, 25)},
			wantMapped:   iv(100, 110),
			wantOK:       true,
		},
		{
			name:       "full-cover",
			rule:       Rule[int]{Source: iv(0, 100), Dest: 50},
			in:         iv(10, 20),
			wantMapped: iv(60, 70),
			wantOK:     true,
		},
		{
			name:         "left-overhang",
			rule:         Rule[int]{Source: iv(10, 20), Dest: 0},
			in:           iv(5, 15),
			wantUnmapped: []Interval[int]{iv(5, 10)},
			wantMapped:   iv(0, 5),
			wantOK:       true,
		},
		{
			name:         "right-overhang",
			rule:         Rule[int]{Source: iv(10, 20), Dest: 30},
			in:           iv(15, 40),
			wantUnmapped: []Interval[int]{iv(20, 40)},
			wantMapped:   iv(35, 40),
			wantOK:       true,
		},
		{
			name:         "touching-is-disjoint",
			rule:         Rule[int]{Source: iv(10, 20), Dest: 30},
			in:           iv(20, 25),
			wantUnmapped: []Interval[int]{iv(20, 25)},
		},
		{
			name:         "disjoint",
			rule:         Rule[int]{Source: iv(10, 20), Dest: 30},
			in:           iv(0, 3),
			wantUnmapped: []Interval[int]{iv(0, 3)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unmapped, mapped, ok := RewriteOne(tt.rule, tt.in)
			if ok != tt.wantOK {
				t.Fatalf("RewriteOne(%v, %v) ok = %v, want %v", tt.rule, tt.in, ok, tt.wantOK)
			}
			if !slices.Equal(unmapped, tt.wantUnmapped) {
				t.Errorf("RewriteOne(%v, %v) unmapped = %v, want %v", tt.rule, tt.in, unmapped, tt.wantUnmapped)
			}
			if ok && mapped != tt.wantMapped {
				t.Errorf("RewriteOne(%v, %v) mapped = %v, want %v", tt.rule, tt.in, mapped, tt.wantMapped)
			}
			if got := TotalLen(unmapped) + mapped.Len; got != tt.in.Len {
				t.Errorf("RewriteOne(%v, %v) covers %d values, want %d", tt.rule, tt.in, got, tt.in.Len)
			}
		})
	}
}

func TestTableRewrite(t *testing.T) {
	tbl := mustTable(t, "seed-to-soil",
		Rule[int]{Source: iv(98, 100), Dest: 50},
		Rule[int]{Source: iv(50, 98), Dest: 52},
	)
	tests := []struct {
		in   []Interval[int]
		want []Interval[int]
	}{
		{in: []Interval[int]{iv(0, 10)}, want: []Interval[int]{iv(0, 10)}},
		{in: []Interval[int]{iv(79, 93)}, want: []Interval[int]{iv(81, 95)}},
		{in: []Interval[int]{iv(55, 68)}, want: []Interval[int]{iv(57, 70)}},
		{in: []Interval[int]{iv(96, 102)}, want: []Interval[int]{iv(98, 100), iv(50, 52), iv(100, 102)}},
		{in: []Interval[int]{iv(40, 60), iv(99, 101)}, want: []Interval[int]{iv(40, 50), iv(52, 62), iv(51, 52), iv(100, 101)}},
	}
	for _, tt := range tests {
		got, err := tbl.Rewrite(tt.in)
		if err != nil {
			t.Fatalf("Rewrite(%v): %v", tt.in, err)
		}
		if !sameSet(got, tt.want) {
			t.Errorf("Rewrite(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if TotalLen(got) != TotalLen(tt.in) {
			t.Errorf("Rewrite(%v) total length = %d, want %d", tt.in, TotalLen(got), TotalLen(tt.in))
		}
	}
}

func TestTableRewriteDoesNotMutateInput(t *testing.T) {
	tbl := mustTable(t, "a", Rule[int]{Source: iv(0, 5), Dest: 10})
	in := []Interval[int]{iv(0, 10), iv(20, 30)}
	orig := slices.Clone(in)
	if _, err := tbl.Rewrite(in); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(in, orig) {
		t.Errorf("input mutated: got %v, want %v", in, orig)
	}
}

func TestEmptyTableIsIdentity(t *testing.T) {
	tbl := mustTable(t, "empty")
	in := []Interval[int]{iv(3, 7), iv(100, 200), iv(0, 1)}
	got, err := tbl.Rewrite(in)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, in) {
		t.Errorf("Rewrite(%v) = %v, want unchanged", in, got)
	}
}

func TestPipelineRewrite(t *testing.T) {
	p := Pipeline[int]{
		mustTable(t, "stage1", Rule[int]{Source: iv(0, 10), Dest: 100}),
		mustTable(t, "stage2", Rule[int]{Source: iv(100, 105), Dest: 1000}),
	}
	got, err := p.Rewrite([]Interval[int]{iv(0, 10)})
	if err != nil {
		t.Fatal(err)
	}
	want := []Interval[int]{iv(1000, 1005), iv(105, 110)}
	if !sameSet(got, want) {
		t.Errorf("Rewrite = %v, want %v", got, want)
	}
	if lo, _ := MinStart(got); lo != 105 {
		t.Errorf("MinStart = %d, want 105", lo)
	}
	if v := p.Map(3); v != 1003 {
		t.Errorf("Map(3) = %d, want 1003", v)
	}
	if v := p.Map(7); v != 107 {
		t.Errorf("Map(7) = %d, want 107", v)
	}
}

func TestLargeRanges(t *testing.T) {
	const big = int64(1) << 40
	tbl, err := NewTable("big", Rule[int64]{Source: Interval[int64]{Start: big, Len: big}, Dest: 0})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Pipeline[int64]{tbl}.Rewrite([]Interval[int64]{{Start: 0, Len: 3 * big}})
	if err != nil {
		t.Fatal(err)
	}
	if n := TotalLen(got); n != 3*big {
		t.Errorf("TotalLen = %d, want %d", n, 3*big)
	}
	if len(got) != 3 {
		t.Errorf("got %d intervals, want 3: %v", len(got), got)
	}
}

func TestErrors(t *testing.T) {
	if _, err := NewInterval(5, 0); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewInterval(5, 0) err = %v, want ErrInvalidInterval", err)
	}
	if _, err := NewInterval(-1, 3); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewInterval(-1, 3) err = %v, want ErrInvalidInterval", err)
	}
	if _, err := NewInterval[uint8](250, 10); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewInterval[uint8](250, 10) err = %v, want ErrInvalidInterval", err)
	}
	if _, err := Span(7, 7); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Span(7, 7) err = %v, want ErrInvalidInterval", err)
	}
	if _, err := NewTable("zero", Rule[int]{Source: Interval[int]{Start: 4}, Dest: 9}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("NewTable with empty source err = %v, want ErrInvalidInterval", err)
	}
	_, err := NewTable("overlap",
		Rule[int]{Source: iv(0, 10), Dest: 100},
		Rule[int]{Source: iv(9, 12), Dest: 200},
	)
	if !errors.Is(err, ErrOverlappingRules) {
		t.Errorf("NewTable with overlapping sources err = %v, want ErrOverlappingRules", err)
	}
	tbl := mustTable(t, "ok", Rule[int]{Source: iv(0, 10), Dest: 100})
	if _, err := tbl.Rewrite([]Interval[int]{{Start: 3, Len: 0}}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Rewrite of empty interval err = %v, want ErrInvalidInterval", err)
	}
	if _, err := (Pipeline[int]{}).Rewrite([]Interval[int]{{Start: 3, Len: -2}}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("Pipeline.Rewrite of negative interval err = %v, want ErrInvalidInterval", err)
	}
}

func TestNormalize(t *testing.T) {
	in := []Interval[int]{iv(10, 20), iv(0, 5), iv(5, 8), iv(15, 30), iv(40, 41)}
	want := []Interval[int]{iv(0, 8), iv(10, 30), iv(40, 41)}
	if got := Normalize(in); !slices.Equal(got, want) {
		t.Errorf("Normalize(%v) = %v, want %v", in, got, want)
	}
	if in[0] != iv(10, 20) {
		t.Errorf("Normalize mutated its input: %v", in)
	}
}

// randomTable returns a table over [0, limit) with disjoint sources.
func randomTable(r *rand.Rand, limit int) *Table[int] {
	var rules []Rule[int]
	for at := 0; at < limit; {
		n := 1 + r.Intn(8)
		if r.Intn(3) > 0 {
			rules = append(rules, Rule[int]{Source: Interval[int]{Start: at, Len: n}, Dest: r.Intn(2 * limit)})
		}
		at += n + r.Intn(4)
	}
	tbl, err := NewTable("random", rules...)
	if err != nil {
		panic(err)
	}
	return tbl
}

// values returns the multiset of values covered by ins.
func values(ins []Interval[int]) map[int]int {
	m := make(map[int]int)
	for _, in := range ins {
		for v := in.Start; v < in.End(); v++ {
			m[v]++
		}
	}
	return m
}

func TestPointwiseEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const limit = 60
	for i := 0; i < 200; i++ {
		p := Pipeline[int]{randomTable(r, limit), randomTable(r, 2*limit), randomTable(r, 3*limit)}
		var ins []Interval[int]
		for j := 0; j < 1+r.Intn(3); j++ {
			start := r.Intn(limit)
			ins = append(ins, Interval[int]{Start: start, Len: 1 + r.Intn(limit)})
		}

		got, err := p.Rewrite(ins)
		if err != nil {
			t.Fatal(err)
		}
		want := make(map[int]int)
		for _, in := range ins {
			for v := in.Start; v < in.End(); v++ {
				want[p.Map(v)]++
			}
		}
		if !maps.Equal(values(got), want) {
			t.Fatalf("pipeline %d: Rewrite(%v) = %v, disagrees with Map", i, ins, got)
		}
		if TotalLen(got) != TotalLen(ins) {
			t.Fatalf("pipeline %d: total length %d, want %d", i, TotalLen(got), TotalLen(ins))
		}

		// A single value rewrites to exactly its scalar image.
		v := ins[0].Start
		one, err := p[0].Rewrite([]Interval[int]{{Start: v, Len: 1}})
		if err != nil {
			t.Fatal(err)
		}
		if w := p[0].Map(v); len(one) != 1 || one[0] != (Interval[int]{Start: w, Len: 1}) {
			t.Fatalf("Rewrite([%d,%d)) = %v, want [%d,%d)", v, v+1, one, w, w+1)
		}
	}
}
