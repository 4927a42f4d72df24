package main

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc23"
	"tailscale.com/util/set"
)

type card struct {
	id      int
	winning set.Set[int]
	have    []int
}

// matches returns how many of the numbers on c are winning numbers.
func (c card) matches() int {
	n := 0
	for _, v := range c.have {
		if c.winning.Contains(v) {
			n++
		}
	}
	return n
}

func (c card) points() int {
	if m := c.matches(); m > 0 {
		return 1 << (m - 1)
	}
	return 0
}

// parseCard parses "Card 1: 41 48 83 | 83 86  6".
func parseCard(line string) (card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return card{}, fmt.Errorf("missing colon in %q", line)
	}
	idStr, ok := strings.CutPrefix(header, "Card")
	if !ok {
		return card{}, fmt.Errorf("bad card header %q", header)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return card{}, fmt.Errorf("bad card id: %w", err)
	}
	winStr, haveStr, ok := strings.Cut(body, "|")
	if !ok {
		return card{}, fmt.Errorf("card %d: missing '|'", id)
	}
	win, err := aoc.ParseInts(winStr)
	if err != nil {
		return card{}, fmt.Errorf("card %d: %w", id, err)
	}
	have, err := aoc.ParseInts(haveStr)
	if err != nil {
		return card{}, fmt.Errorf("card %d: %w", id, err)
	}
	c := card{id: id, winning: make(set.Set[int]), have: have}
	for _, v := range win {
		c.winning.Add(v)
	}
	return c, nil
}

func parseCards(lines []string) ([]card, error) {
	cards := make([]card, 0, len(lines))
	for _, line := range lines {
		c, err := parseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// totalCards returns how many cards there are once every card with m
// matches has won a copy of each of the next m cards.
func totalCards(cards []card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.matches() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	cards := aoc.MustGet(parseCards(s.Lines()))
	return aoc.Fold(cards, func(sum int, c card) int { return sum + c.points() }, 0)
}

// want=30
func (s solver) D4p2() any {
	return totalCards(aoc.MustGet(parseCards(s.Lines())))
}
