// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the want= samples found in the doc comments of
// the funcs declared in src. A sample without input reuses the previous
// one's input.
func extractSamples(name string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractAllSamples runs extractSamples on every .go file in src.
func extractAllSamples(src fs.FS) map[string]sample {
	names := MustGet(fs.Glob(src, "*.go"))
	slices.Sort(names)
	all := make(map[string]sample)
	for _, name := range names {
		samples := MustGet(extractSamples(name, MustGet(fs.ReadFile(src, name))))
		for k, v := range samples {
			all[k] = v
		}
	}
	return all
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	// Debugf logs when -debug is set.
	Debugf logger.Logf

	solver  partSolver
	samples map[string]sample
	input   func() []byte
}

// Input returns the puzzle input, or the current part's sample in
// SampleMode.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.input()
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) { lines = append(lines, line) })
	return lines
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) map[int]day {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInput      string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInput, "input", "", `input file; "-" reads stdin (default "<year>/<day>.input")`)
}

var initFlags = sync.OnceFunc(flag.Parse)

var stdin = sync.OnceValue(func() []byte {
	return MustGet(io.ReadAll(os.Stdin))
})

// inputFor returns a loader for the real input of the given day.
func inputFor(year, day int) func() []byte {
	return sync.OnceValue(func() []byte {
		switch flagInput {
		case "-":
			return stdin()
		case "":
			return MustGet(os.ReadFile(fmt.Sprintf("%d/%d.input", year, day)))
		}
		return MustGet(os.ReadFile(flagInput))
	})
}

func debugLogf(day int) logger.Logf {
	if !flagDebug {
		return logger.Discard
	}
	return logger.WithPrefix(log.Printf, fmt.Sprintf("day %d: ", day))
}

// runDay runs every part of day against its sample and its input. It
// reports whether all samples matched.
func runDay(w io.Writer, slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
		Debugf:  debugLogf(day.day),
		input:   inputFor(year, day.day),
	}
	fmt.Fprintln(w, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(w, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Fprintf(w, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(w, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// Run solves the puzzles of year using the D{day}p{part} methods of
// slvr, which must be a pointer to a struct embedding *Puzzle. Samples
// are read from the doc comments in the .go files of src.
func Run(year int, src fs.FS, slvr any) {
	samples := extractAllSamples(src)
	days := extractMethods(slvr)
	initFlags()

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		if !runDay(os.Stdout, slvr, year, day, samples) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	ok := true
	for _, day := range dayNums {
		ok = runDay(os.Stdout, slvr, year, days[day], samples) && ok
		fmt.Println()
	}
	if !ok {
		os.Exit(1)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
