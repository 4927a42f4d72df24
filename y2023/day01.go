package main

import (
	"fmt"
	"regexp"
	"strconv"

	aoc "github.com/maisem/aoc23"
)

const digitWords = `one|two|three|four|five|six|seven|eight|nine`

var (
	firstDigitRx = regexp.MustCompile(`(\d)`)
	lastDigitRx  = regexp.MustCompile(`.*(\d)`)

	// The greedy .* makes lastWordRx find the rightmost match, even when
	// it overlaps an earlier one as in "twone".
	firstWordRx = regexp.MustCompile(`(\d|` + digitWords + `)`)
	lastWordRx  = regexp.MustCompile(`.*(\d|` + digitWords + `)`)
)

var wordValues = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9,
}

func digitValue(s string) (int, error) {
	if v, ok := wordValues[s]; ok {
		return v, nil
	}
	return strconv.Atoi(s)
}

// calibration returns the two-digit number formed by the first and last
// digit in line.
func calibration(line string, first, last *regexp.Regexp) (int, error) {
	a := first.FindStringSubmatch(line)
	b := last.FindStringSubmatch(line)
	if a == nil || b == nil {
		return 0, fmt.Errorf("no digit in %q", line)
	}
	x, err := digitValue(a[1])
	if err != nil {
		return 0, err
	}
	y, err := digitValue(b[1])
	if err != nil {
		return 0, err
	}
	return 10*x + y, nil
}

func sumCalibrations(lines []string, first, last *regexp.Regexp) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := calibration(line, first, last)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.MustGet(sumCalibrations(s.Lines(), firstDigitRx, lastDigitRx))
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.MustGet(sumCalibrations(s.Lines(), firstWordRx, lastWordRx))
}
