package main

import (
	aoc "github.com/maisem/aoc23"
)

// schematic is an engine schematic: digits, symbols and '.' for empty.
type schematic struct {
	grid aoc.Grid[rune]
	nums []partNumber
}

// partNumber is a run of digits and where it sits in the grid.
type partNumber struct {
	value int
	aoc.Window
}

func isSymbol(r rune) bool {
	return r != '.' && !aoc.IsDigit(r)
}

func parseSchematic(lines []string) (*schematic, error) {
	g, err := aoc.ParseGrid(lines, func(r rune) rune { return r })
	if err != nil {
		return nil, err
	}
	return &schematic{grid: g, nums: scanNumbers(g)}, nil
}

// scanNumbers returns every maximal horizontal run of digits in g, in
// row-major order.
func scanNumbers(g aoc.Grid[rune]) []partNumber {
	var out []partNumber
	for y, row := range g {
		var cur *partNumber
		for x, r := range row {
			if !aoc.IsDigit(r) {
				cur = nil
				continue
			}
			if cur == nil {
				out = append(out, partNumber{Window: aoc.Window{At: aoc.Pt{X: x, Y: y}}})
				cur = &out[len(out)-1]
			}
			cur.value = cur.value*10 + aoc.Digit(r)
			cur.Width++
		}
	}
	return out
}

// nextToSymbol reports whether any cell around n holds a symbol.
func (s *schematic) nextToSymbol(n partNumber) bool {
	found := false
	n.ForNeighbors(func(p aoc.Pt) bool {
		if r, ok := s.grid.AtOk(p); ok && isSymbol(r) {
			found = true
		}
		return !found
	})
	return found
}

func (s *schematic) partSum() int {
	sum := 0
	for _, n := range s.nums {
		if s.nextToSymbol(n) {
			sum += n.value
		}
	}
	return sum
}

// gearRatios sums the products of the numbers around each '*' that
// touches exactly two numbers.
func (s *schematic) gearRatios() int {
	sum := 0
	s.grid.ForEach(func(p aoc.Pt, r rune) {
		if r != '*' {
			return
		}
		var adj []int
		for _, n := range s.nums {
			if n.Touches(p) {
				adj = append(adj, n.value)
			}
		}
		if len(adj) == 2 {
			sum += aoc.Product(adj...)
		}
	})
	return sum
}

func (s solver) schematic() *schematic {
	sc := aoc.MustGet(parseSchematic(s.Lines()))
	s.Debugf("schematic %v: %v with %d numbers", sc.grid.Hash(), sc.grid.Size(), len(sc.nums))
	return sc
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return s.schematic().partSum()
}

// want=467835
func (s solver) D3p2() any {
	return s.schematic().gearRatios()
}
