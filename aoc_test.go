package aoc

import (
	"testing"
	"testing/fstest"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input

other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=42`,
			want: sample{
				want: "42",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, want %+v", tt.comment, got, tt.want)
		}
	}
	if _, ok := parseSample("// no sample here"); ok {
		t.Error("parseSample found a sample in a plain comment")
	}
}

const daySrc = `package main

/*
want=3

1
2
*/
func (s solver) D1p1() any { return nil }

// want=2
func (s solver) D1p2() any { return nil }

// helper is not a solver.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	fsys := fstest.MapFS{
		"day01.go":  {Data: []byte(daySrc)},
		"notes.txt": {Data: []byte("want=7\n")},
	}
	samples := extractAllSamples(fsys)
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2: %v", len(samples), samples)
	}
	want := sample{want: "3", input: "1\n2\n"}
	if got := samples["D1p1"]; got != want {
		t.Errorf("D1p1 sample = %+v, want %+v", got, want)
	}
	want.want = "2"
	if got := samples["D1p2"]; got != want {
		t.Errorf("D1p2 sample = %+v, want %+v (input reused)", got, want)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p1() any { return len(s.Lines()) }
func (s testSolver) D2p2() any { return "two" }
func (s testSolver) D10p1() any { return 10 }
func (s testSolver) Helper() any { return nil }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d := days[2]
	if len(d.parts) != 2 || d.parts[0].Part != "1" || d.parts[1].Part != "2" {
		t.Errorf("day 2 parts = %+v, want parts 1 and 2", d.parts)
	}
	if got := d.parts[1].fn(); got != "two" {
		t.Errorf("day 2 part 2 = %v, want two", got)
	}
	if _, ok := days[10]; !ok {
		t.Error("day 10 not found")
	}
}

func TestPuzzleSampleMode(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		samples:    map[string]sample{"D2p1": {want: "2", input: "a\nb\n"}},
		solver:     partSolver{Name: "D2p1"},
		input:      func() []byte { return []byte("x\ny\nz\n") },
	}
	s := testSolver{p}
	if got := s.D2p1(); got != 2 {
		t.Errorf("sample lines = %v, want 2", got)
	}
	p.SampleMode = false
	if got := s.D2p1(); got != 3 {
		t.Errorf("input lines = %v, want 3", got)
	}
}
