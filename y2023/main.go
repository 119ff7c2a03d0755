package main

import (
	"bytes"
	_ "embed"
	"os"

	aoc "github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/cubegame"
	"github.com/maisem/aoc2023/trebuchet"
)

func main() {
	if !aoc.Run(2023, source, &solver{}) {
		os.Exit(1)
	}
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) calibration(r trebuchet.Rule) (any, error) {
	in, err := s.Input()
	if err != nil {
		return nil, err
	}
	return trebuchet.Sum(bytes.NewReader(in), r)
}

func (s solver) games() ([]cubegame.Game, error) {
	in, err := s.Input()
	if err != nil {
		return nil, err
	}
	games, err := cubegame.Parse(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	s.Debugf("parsed %d games", len(games))
	return games, nil
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() (any, error) {
	return s.calibration(trebuchet.Numeric)
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
func (s solver) D1p2() (any, error) {
	return s.calibration(trebuchet.Spelled)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		s.Debugf("game %d: possible=%v", g.ID, g.Possible(cubegame.Threshold))
	}
	return cubegame.SumPossible(games, cubegame.Threshold), nil
}

// want=2286
func (s solver) D2p2() (any, error) {
	games, err := s.games()
	if err != nil {
		return nil, err
	}
	return cubegame.SumPowers(games), nil
}
