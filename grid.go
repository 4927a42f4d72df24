package aoc

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major 2D grid, indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk returns the cell at p, or false if p is out of bounds.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	size := g.Size()
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines, converting each rune with cell.
// All lines must have the same width.
func ParseGrid[T any](lines []string, cell func(rune) T) (Grid[T], error) {
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, cell(r))
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("line %d: width %d, want %d", y+1, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	return g, nil
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for each cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a structural hash of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Window is a horizontal run of Width cells starting at At.
type Window struct {
	At    Pt
	Width int
}

// Contains reports whether p is one of the window's cells.
func (w Window) Contains(p Pt) bool {
	return p.Y == w.At.Y && p.X >= w.At.X && p.X < w.At.X+w.Width
}

// Touches reports whether p is outside w but among the 8-neighbors of one
// of its cells.
func (w Window) Touches(p Pt) bool {
	if w.Contains(p) {
		return false
	}
	return AbsDiff(p.Y, w.At.Y) <= 1 && p.X >= w.At.X-1 && p.X <= w.At.X+w.Width
}

// ForNeighbors calls f for each point surrounding w, which may be out of
// bounds of any grid.
func (w Window) ForNeighbors(f func(Pt) (keepGoing bool)) {
	for x := w.At.X - 1; x <= w.At.X+w.Width; x++ {
		if !f(Pt{x, w.At.Y - 1}) || !f(Pt{x, w.At.Y + 1}) {
			return
		}
	}
	if !f(Pt{w.At.X - 1, w.At.Y}) {
		return
	}
	f(Pt{w.At.X + w.Width, w.At.Y})
}
