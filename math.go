package aoc

import (
	"bufio"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune, and false if r is not an
// ASCII decimal digit.
func Digit(r rune) (int, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Int returns the int value of the string, ignoring surrounding space.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// NewScanner returns a line scanner over r with no limit on line length.
func NewScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(nil, math.MaxInt32)
	return s
}
