package main

import (
	"fmt"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc23"
)

type cubes struct {
	red, green, blue int
}

// fits reports whether every count in c is at most the one in bag.
func (c cubes) fits(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id     int
	rounds []cubes
}

// minBag returns the fewest cubes of each color that make g possible.
func (g game) minBag() cubes {
	return aoc.Fold(g.rounds, func(acc, r cubes) cubes {
		return cubes{
			red:   max(acc.red, r.red),
			green: max(acc.green, r.green),
			blue:  max(acc.blue, r.blue),
		}
	}, cubes{})
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green".
func parseGame(line string) (game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return game{}, fmt.Errorf("missing colon in %q", line)
	}
	idStr, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return game{}, fmt.Errorf("bad game header %q", header)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return game{}, fmt.Errorf("bad game id: %w", err)
	}
	g := game{id: id}
	for _, round := range strings.Split(body, ";") {
		var c cubes
		for _, draw := range strings.Split(round, ",") {
			var n int
			var color string
			if _, err := fmt.Sscanf(strings.TrimSpace(draw), "%d %s", &n, &color); err != nil {
				return game{}, fmt.Errorf("game %d: bad draw %q: %w", id, draw, err)
			}
			switch color {
			case "red":
				c.red = n
			case "green":
				c.green = n
			case "blue":
				c.blue = n
			default:
				return game{}, fmt.Errorf("game %d: unknown color %q", id, color)
			}
		}
		g.rounds = append(g.rounds, c)
	}
	return g, nil
}

func parseGames(lines []string) ([]game, error) {
	games := make([]game, 0, len(lines))
	for _, line := range lines {
		g, err := parseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

var bag = cubes{red: 12, green: 13, blue: 14}

func possibleGames(games []game, bag cubes) int {
	sum := 0
	for _, g := range games {
		if g.minBag().fits(bag) {
			sum += g.id
		}
	}
	return sum
}

func totalPower(games []game) int {
	sum := 0
	for _, g := range games {
		sum += g.minBag().power()
	}
	return sum
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	return possibleGames(aoc.MustGet(parseGames(s.Lines())), bag)
}

// want=2286
func (s solver) D2p2() any {
	return totalPower(aoc.MustGet(parseGames(s.Lines())))
}
