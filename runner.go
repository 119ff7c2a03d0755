package aoc

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

type runner struct {
	year    int
	slvr    any
	samples map[string]sample
	days    map[int]day
	log     zerolog.Logger
	out     io.Writer

	part       string
	onlySample bool
	skipSample bool
}

func newRunner(year int, src []byte, slvr any, log zerolog.Logger) (*runner, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	if err := checkPuzzleField(slvr); err != nil {
		return nil, err
	}
	return &runner{
		year:       year,
		slvr:       slvr,
		samples:    samples,
		days:       days,
		log:        log,
		out:        os.Stdout,
		part:       flagPart,
		onlySample: flagOnlySample,
		skipSample: flagSkipSample,
	}, nil
}

// run runs curDay, or every day in order if curDay is -1.
func (r *runner) run(curDay int) bool {
	if curDay != -1 {
		day, ok := r.days[curDay]
		if !ok {
			r.log.Error().Int("day", curDay).Msg("no such day")
			return false
		}
		return runDay(r, day)
	}

	dayNums := maps.Keys(r.days)
	slices.Sort(dayNums)
	ok := true
	for _, day := range dayNums {
		if !runDay(r, r.days[day]) {
			ok = false
		}
		fmt.Fprintln(r.out)
	}
	return ok
}

var puzzlePtrType = reflect.TypeOf((*Puzzle)(nil))

// checkPuzzleField reports an error if slvr, a pointer to a struct, does
// not have a settable Puzzle field of type *Puzzle.
func checkPuzzleField(slvr any) error {
	st := reflect.TypeOf(slvr).Elem()
	f, ok := st.FieldByName("Puzzle")
	if !ok || f.Type != puzzlePtrType || !f.IsExported() {
		return fmt.Errorf("%v must embed *aoc.Puzzle", st)
	}
	return nil
}
