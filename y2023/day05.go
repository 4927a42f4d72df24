package main

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc23"
	"github.com/maisem/aoc23/rangemap"
)

// almanac is the parsed day 5 input: a list of seeds and the chain of
// category maps that leads from seed to location.
type almanac struct {
	seeds  []int
	stages rangemap.Pipeline[int]
}

var errMalformed = errors.New("malformed almanac")

// parseAlmanac parses a "seeds:" line followed by "X-to-Y map:" blocks of
// "dest src len" triples. Each block's source category must be the
// previous block's destination.
func parseAlmanac(lines []string) (*almanac, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", errMalformed)
	}
	seedStr, ok := strings.CutPrefix(lines[0], "seeds:")
	if !ok {
		return nil, fmt.Errorf("%w: line 1: want seeds, got %q", errMalformed, lines[0])
	}
	seeds, err := aoc.ParseInts(seedStr)
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %v", errMalformed, err)
	}
	a := &almanac{seeds: seeds}

	var (
		name, from, to string
		rules          []rangemap.Rule[int]
		inMap          bool
	)
	flush := func() error {
		if !inMap {
			return nil
		}
		t, err := rangemap.NewTable(name, rules...)
		if err != nil {
			return err
		}
		a.stages = append(a.stages, t)
		rules, inMap = nil, false
		return nil
	}
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if h, ok := strings.CutSuffix(line, " map:"); ok {
			if err := flush(); err != nil {
				return nil, err
			}
			f, t, ok := strings.Cut(h, "-to-")
			if !ok {
				return nil, fmt.Errorf("%w: line %d: bad header %q", errMalformed, lineNo, line)
			}
			if to != "" && f != to {
				return nil, fmt.Errorf("%w: line %d: map from %q follows map to %q", errMalformed, lineNo, f, to)
			}
			name, from, to, inMap = h, f, t, true
			continue
		}
		if !inMap {
			return nil, fmt.Errorf("%w: line %d: mapping before any header", errMalformed, lineNo)
		}
		nums, err := aoc.ParseInts(line)
		if err != nil || len(nums) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 integers in %q map, got %q", errMalformed, lineNo, from, line)
		}
		rules = append(rules, rangemap.Rule[int]{
			Source: rangemap.Interval[int]{Start: nums[1], Len: nums[2]},
			Dest:   nums[0],
		})
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return a, nil
}

// lowestLocation returns the lowest location of any single seed.
func (a *almanac) lowestLocation() int {
	lowest := -1
	for _, s := range a.seeds {
		if loc := a.stages.Map(s); lowest < 0 || loc < lowest {
			lowest = loc
		}
	}
	return lowest
}

// seedRanges reads the seeds as (start, length) pairs.
func (a *almanac) seedRanges() ([]rangemap.Interval[int], error) {
	if len(a.seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed values (%d)", errMalformed, len(a.seeds))
	}
	var out []rangemap.Interval[int]
	for i := 0; i < len(a.seeds); i += 2 {
		in, err := rangemap.NewInterval(a.seeds[i], a.seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed range %d: %w", i/2, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// lowestRangeLocation returns the lowest location of any seed in the
// seed ranges.
func (a *almanac) lowestRangeLocation() (int, error) {
	seeds, err := a.seedRanges()
	if err != nil {
		return 0, err
	}
	locs, err := a.stages.Rewrite(seeds)
	if err != nil {
		return 0, err
	}
	lo, ok := rangemap.MinStart(locs)
	if !ok {
		return 0, fmt.Errorf("%w: no seeds", errMalformed)
	}
	return lo, nil
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := aoc.MustGet(parseAlmanac(s.Lines()))
	s.Debugf("%d seeds through %d maps", len(a.seeds), len(a.stages))
	return a.lowestLocation()
}

// want=46
func (s solver) D5p2() any {
	a := aoc.MustGet(parseAlmanac(s.Lines()))
	return aoc.MustGet(a.lowestRangeLocation())
}
