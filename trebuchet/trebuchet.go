// Package trebuchet recovers calibration values from lines of text.
//
// A calibration value is the two digit number formed by the first and the
// last digit of a line.
package trebuchet

import (
	"fmt"
	"io"
	"strings"

	aoc "github.com/maisem/aoc2023"
)

// Rule selects what counts as a digit.
type Rule int

const (
	// Numeric only recognizes the characters '0' through '9'.
	Numeric Rule = iota
	// Spelled additionally recognizes the words "one" through "nine".
	Spelled
)

func (r Rule) String() string {
	switch r {
	case Numeric:
		return "numeric"
	case Spelled:
		return "spelled"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// digitWords maps index i to the digit i+1.
var digitWords = [...]string{
	"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
}

// NoDigitError is returned when a line has no digit under the active Rule.
type NoDigitError struct {
	Line int // 1-based
	Text string
	Rule Rule
}

func (e *NoDigitError) Error() string {
	return fmt.Sprintf("line %d: no %v digit in %q", e.Line, e.Rule, e.Text)
}

// digitAt reports the digit that starts at offset i of line.
func digitAt(line string, i int, r Rule) (int, bool) {
	if r == Spelled {
		rest := line[i:]
		for j, w := range digitWords {
			if strings.HasPrefix(rest, w) {
				return j + 1, true
			}
		}
	}
	return aoc.Digit(rune(line[i]))
}

// Value returns the calibration value of line. It reports false if the
// line contains no digit.
//
// Every offset is tested, so overlapping words such as "eightwo" yield
// both 8 and 2.
func Value(line string, r Rule) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, r); ok {
			first = d
			break
		}
	}
	if first == -1 {
		return 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, r); ok {
			last = d
			break
		}
	}
	return 10*first + last, true
}

// Sum returns the sum of the calibration values of every line read from
// in. It stops at the first line without a digit and returns a
// *NoDigitError for it.
func Sum(in io.Reader, r Rule) (int, error) {
	var vals []int
	s := aoc.NewScanner(in)
	n := 0
	for s.Scan() {
		n++
		v, ok := Value(s.Text(), r)
		if !ok {
			return 0, &NoDigitError{Line: n, Text: s.Text(), Rule: r}
		}
		vals = append(vals, v)
	}
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("reading calibration document: %w", err)
	}
	return aoc.Sum(vals...), nil
}

// SumString is like Sum but reads from a string.
func SumString(doc string, r Rule) (int, error) {
	return Sum(strings.NewReader(doc), r)
}
