// Command y2023 solves the 2023 puzzles. Run with -day N to solve a
// single day and -input - to read the input from stdin.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc23"
)

func main() {
	aoc.Run(2023, sources, &solver{})
}

//go:embed day*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
