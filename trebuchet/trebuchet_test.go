package trebuchet

import (
	"errors"
	"strings"
	"testing"
)

func TestValueNumeric(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"0zero9", 9},
		{"two1nine", 11},
	}
	for _, tt := range tests {
		got, ok := Value(tt.line, Numeric)
		if !ok || got != tt.want {
			t.Errorf("Value(%q, Numeric) = %v, %v; want %v, true", tt.line, got, ok, tt.want)
		}
	}
}

func TestValueSpelled(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
		{"eightwo", 82},
		{"oneight", 18},
		{"nine", 99},
		{"ONE2", 22},
	}
	for _, tt := range tests {
		got, ok := Value(tt.line, Spelled)
		if !ok || got != tt.want {
			t.Errorf("Value(%q, Spelled) = %v, %v; want %v, true", tt.line, got, ok, tt.want)
		}
	}
}

func TestValueNoDigit(t *testing.T) {
	for _, tc := range []struct {
		line string
		r    Rule
	}{
		{"", Numeric},
		{"", Spelled},
		{"abc", Numeric},
		{"onetwo", Numeric},
		{"onx twx", Spelled},
	} {
		if got, ok := Value(tc.line, tc.r); ok {
			t.Errorf("Value(%q, %v) = %v, true; want false", tc.line, tc.r, got)
		}
	}
}

const numericSample = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

const spelledSample = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		r    Rule
		want int
	}{
		{"numeric", numericSample, Numeric, 142},
		{"spelled", spelledSample, Spelled, 281},
		{"spelled-numeric-doc", numericSample, Spelled, 142},
		{"empty", "", Numeric, 0},
		{"empty-spelled", "", Spelled, 0},
		{"no-trailing-newline", "1abc2\ntreb7uchet", Numeric, 89},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SumString(tt.doc, tt.r)
			if err != nil {
				t.Fatalf("SumString: %v", err)
			}
			if got != tt.want {
				t.Errorf("SumString = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSumOrderIndependent(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(spelledSample), "\n")
	want, err := SumString(spelledSample, Spelled)
	if err != nil {
		t.Fatal(err)
	}
	for i := range lines {
		// Rotate the lines by i.
		rot := append(append([]string(nil), lines[i:]...), lines[:i]...)
		got, err := SumString(strings.Join(rot, "\n"), Spelled)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("rotation %d: sum = %v, want %v", i, got, want)
		}
	}
}

func TestSumNoDigitError(t *testing.T) {
	_, err := SumString("1abc2\nnothing here\ntreb7uchet\n", Numeric)
	var nde *NoDigitError
	if !errors.As(err, &nde) {
		t.Fatalf("err = %v; want *NoDigitError", err)
	}
	if nde.Line != 2 || nde.Text != "nothing here" || nde.Rule != Numeric {
		t.Errorf("got %+v", nde)
	}

	// The same line is fine once words count.
	if _, err := SumString("1abc2\nnothing here one\n", Spelled); err != nil {
		t.Errorf("Spelled: unexpected error %v", err)
	}

	_, err = SumString("7\n\n8\n", Spelled)
	if !errors.As(err, &nde) || nde.Line != 2 {
		t.Errorf("blank line: err = %v; want *NoDigitError on line 2", err)
	}
}

func TestSumLongLine(t *testing.T) {
	line := "1" + strings.Repeat("a", 70000) + "2"
	got, err := SumString(line+"\ntreb7uchet\n", Numeric)
	if err != nil {
		t.Fatalf("SumString: %v", err)
	}
	if got != 12+77 {
		t.Errorf("SumString = %v, want %v", got, 12+77)
	}
}
