// Package aoc are quick & dirty utilities for running Advent of Code 2023
// solvers. (forked from maisem/aoc, which forked bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded in a solver struct. It gives the solver methods
// access to the input of the part being run.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	// Logf is used by Debugf. It is never nil while a part runs, and
	// prefixes each line with the part.
	Logf logger.Logf

	solver  partSolver
	samples map[string]sample
}

// Input returns the input of the running part: its sample in sample mode,
// otherwise the day's puzzle input.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	return fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Scanner returns a line scanner over Input.
func (p *Puzzle) Scanner() (*bufio.Scanner, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	return NewScanner(bytes.NewReader(in)), nil
}

// ForLinesY calls onLine for each line of input, stopping at the first
// error. The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	s, err := p.Scanner()
	if err != nil {
		return err
	}
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// Debugf logs only when running a sample with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		p.Logf(format, args...)
	}
}

func (p *Puzzle) Sample() (sample, error) {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		return sample, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return sample, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of the struct pointed to by x named
// D{day}p{part}. The methods must be of type func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got %T; want pointer to struct", x)
	}
	// The pointer's method set includes value receiver methods too.
	rt := rv.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < rt.NumMethod(); i++ {
		mn := rt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := rv.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("method %s is %v; want func() (any, error)", mn, rv.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d, err := Int(day)
		if err != nil {
			return nil, err
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs each part of day, sample first. It returns false if a part
// failed or did not match its sample.
func runDay(r *runner, day day) bool {
	p := Puzzle{
		year:    r.year,
		day:     day,
		samples: r.samples,
	}
	log := r.log.With().Int("day", day.day).Logger()
	fmt.Fprintln(r.out, "Running day", day.day)
	sr := reflect.ValueOf(r.slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if r.part != "" && ps.Part != r.part {
			continue
		}
		p.Logf = logger.WithPrefix(logf(log), "part "+ps.Part+": ")

		for _, sm := range []bool{true, false} {
			if !sm && r.onlySample {
				continue
			} else if sm && r.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				if _, err := p.Input(); err != nil {
					log.Error().Err(err).Str("part", ps.Part).Msg("reading input")
					return false
				}
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				log.Error().Err(err).Str("part", ps.Part).Bool("sample", sm).Msg("solver failed")
				return false
			}
			if sm {
				sample, err := p.Sample()
				if err != nil {
					log.Error().Err(err).Str("part", ps.Part).Msg("sample")
					return false
				}
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return false
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// logf adapts a zerolog logger to a logger.Logf.
func logf(l zerolog.Logger) logger.Logf {
	return func(format string, args ...any) {
		l.Debug().Msgf(format, args...)
	}
}

// Run runs the days of slvr selected by the command line flags. slvr must
// be a pointer to a struct that embeds *Puzzle; src is the source of the
// file defining its methods, used to find the samples.
//
// It reports whether every part that ran succeeded.
func Run(year int, src []byte, slvr any) bool {
	initFlags()
	log := newLogger(flagDebug)

	r, err := newRunner(year, src, slvr, log)
	if err != nil {
		log.Error().Err(err).Msg("setting up solver")
		return false
	}
	return r.run(flagCurDay)
}
