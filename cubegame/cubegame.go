// Package cubegame parses records of cube games and checks them against a
// bag's contents.
//
// A game line looks like:
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Each "; "-separated group is a draw of colored cubes from the bag.
package cubegame

import (
	"fmt"
	"io"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

// ColorCounts is the number of cubes of each color in one draw.
type ColorCounts struct {
	Red, Green, Blue int
}

// Threshold is the bag the games are checked against.
var Threshold = ColorCounts{Red: 12, Green: 13, Blue: 14}

// Set returns a copy of c with color set to n.
func (c ColorCounts) Set(color string, n int) (ColorCounts, error) {
	switch color {
	case "red":
		c.Red = n
	case "green":
		c.Green = n
	case "blue":
		c.Blue = n
	default:
		return c, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return c, nil
}

// Within reports whether no color of c exceeds the one in limit.
func (c ColorCounts) Within(limit ColorCounts) bool {
	return c.Red <= limit.Red && c.Green <= limit.Green && c.Blue <= limit.Blue
}

// Max returns the per-color maximum of c and o.
func (c ColorCounts) Max(o ColorCounts) ColorCounts {
	return ColorCounts{
		Red:   max(c.Red, o.Red),
		Green: max(c.Green, o.Green),
		Blue:  max(c.Blue, o.Blue),
	}
}

// Power is the product of the three counts.
func (c ColorCounts) Power() int {
	return c.Red * c.Green * c.Blue
}

// String formats c the way draws are written in a game line, leaving out
// colors with a zero count.
func (c ColorCounts) String() string {
	var parts []string
	for _, cc := range []struct {
		n    int
		name string
	}{
		{c.Red, "red"},
		{c.Green, "green"},
		{c.Blue, "blue"},
	} {
		if cc.n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", cc.n, cc.name))
		}
	}
	return strings.Join(parts, ", ")
}

// Game is one parsed game line.
type Game struct {
	ID    int
	Draws []ColorCounts
}

// Possible reports whether every draw of g fits in limit.
func (g Game) Possible(limit ColorCounts) bool {
	for _, d := range g.Draws {
		if !d.Within(limit) {
			return false
		}
	}
	return true
}

// MinimumSet returns the fewest cubes of each color the bag must have held
// for g to be played.
func (g Game) MinimumSet() ColorCounts {
	var m ColorCounts
	for _, d := range g.Draws {
		m = m.Max(d)
	}
	return m
}

// Parse parses one game per line read from in. It returns the first
// error it encounters, as a *ParseError, and no games in that case.
func Parse(in io.Reader) ([]Game, error) {
	var games []Game
	s := aoc.NewScanner(in)
	n := 0
	for s.Scan() {
		n++
		g, err := ParseGame(s.Text())
		if err != nil {
			return nil, withLine(err, n)
		}
		games = append(games, g)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading games: %w", err)
	}
	return games, nil
}

// ParseString is like Parse but reads from a string.
func ParseString(s string) ([]Game, error) {
	return Parse(strings.NewReader(s))
}

// SumPossible returns the sum of the IDs of the games that fit in limit.
func SumPossible(games []Game, limit ColorCounts) int {
	var ids []int
	for _, g := range games {
		if g.Possible(limit) {
			ids = append(ids, g.ID)
		}
	}
	return aoc.Sum(ids...)
}

// SumPowers returns the sum of the powers of the minimum sets of games.
func SumPowers(games []Game) int {
	var ps []int
	for _, g := range games {
		ps = append(ps, g.MinimumSet().Power())
	}
	return aoc.Sum(ps...)
}
