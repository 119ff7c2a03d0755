package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors classifying a ParseError. Use errors.Is.
var (
	ErrMissingSeparator = errors.New(`missing ": " separator`)
	ErrInvalidID        = errors.New("invalid game id")
	ErrInvalidCube      = errors.New("invalid cube")
	ErrInvalidCount     = errors.New("invalid cube count")
	ErrInvalidColor     = errors.New("invalid color")
)

// ParseError is returned by the parsing functions of this package.
type ParseError struct {
	Line  int    // 1-based line number, or 0 if not known
	Input string // the offending text
	Err   error  // wraps one of the Err* sentinels
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v in %q", e.Line, e.Err, e.Input)
	}
	return fmt.Sprintf("%v in %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func withLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = line
		return pe
	}
	return fmt.Errorf("line %d: %w", line, err)
}

// ParseGame parses a line of the form
// "Game <id>: <draw>; <draw>; ...".
func ParseGame(line string) (Game, error) {
	header, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, &ParseError{Input: line, Err: ErrMissingSeparator}
	}
	f := strings.Fields(header)
	if len(f) < 2 {
		return Game{}, &ParseError{Input: header, Err: ErrInvalidID}
	}
	id, err := strconv.Atoi(strings.TrimRight(f[1], ":"))
	if err != nil {
		return Game{}, &ParseError{Input: header, Err: fmt.Errorf("%w: %w", ErrInvalidID, err)}
	}
	g := Game{ID: id}
	for _, ds := range strings.Split(body, "; ") {
		d, err := ParseDraw(ds)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// ParseDraw parses a draw of the form "<n> <color>, <n> <color>, ...".
// If a color appears more than once, the last count wins.
func ParseDraw(s string) (ColorCounts, error) {
	var c ColorCounts
	for _, cube := range strings.Split(s, ", ") {
		num, color, ok := strings.Cut(cube, " ")
		if !ok {
			return ColorCounts{}, &ParseError{Input: cube, Err: ErrInvalidCube}
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return ColorCounts{}, &ParseError{Input: cube, Err: fmt.Errorf("%w: %w", ErrInvalidCount, err)}
		}
		if n < 0 {
			return ColorCounts{}, &ParseError{Input: cube, Err: fmt.Errorf("%w: negative", ErrInvalidCount)}
		}
		c, err = c.Set(color, n)
		if err != nil {
			return ColorCounts{}, &ParseError{Input: cube, Err: err}
		}
	}
	return c, nil
}
