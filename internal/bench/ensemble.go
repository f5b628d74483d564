package bench

import (
	"context"
	"math"
	"math/rand"
	"sync"

	"github.com/pkg/errors"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/visual"
)

// ErrInvalidRuns is returned when an ensemble asks for fewer than one run.
var ErrInvalidRuns = errors.New("bench: number of runs must be at least 1")

// Stats aggregates the counters of many runs of one algorithm.
type Stats struct {
	Algorithm   string
	Runs        int
	Comparisons Summary
	Swaps       Summary
}

type Summary struct {
	Min, Max int
	Mean     float64
}

func summarize(xs []int) Summary {
	s := Summary{Min: math.MaxInt, Max: math.MinInt}
	total := 0
	for _, x := range xs {
		total += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	if len(xs) > 0 {
		s.Mean = float64(total) / float64(len(xs))
	} else {
		s.Min, s.Max = 0, 0
	}
	return s
}

// Ensemble sorts numRuns random sequences of one size with every
// algorithm, without pauses. Run i uses seedStart+i, so all algorithms see
// the same inputs.
type Ensemble struct {
	count     int
	numRuns   int
	seedStart int64
	registry  *sorting.Registry
}

func NewEnsemble(count, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{count: count, numRuns: numRuns, seedStart: seedStart, registry: sorting.NewRegistry()}
}

func (e *Ensemble) Run(ctx context.Context, algorithms ...string) ([]Stats, error) {
	if e.numRuns < 1 {
		return nil, errors.Wrapf(ErrInvalidRuns, "runs %d", e.numRuns)
	}
	if len(algorithms) == 0 {
		algorithms = e.registry.Names()
	}
	out := make([]Stats, 0, len(algorithms))
	for _, name := range algorithms {
		st, err := e.runOne(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (e *Ensemble) runOne(ctx context.Context, algorithm string) (Stats, error) {
	name, err := e.registry.Resolve(algorithm)
	if err != nil {
		return Stats{}, errors.Wrap(err, "bench")
	}

	comparisons := make([]int, e.numRuns)
	swaps := make([]int, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := driver.New(driver.Options{
				Scheduler:        visual.Instant{},
				Logger:           logging.Discard(),
				Rand:             rand.New(rand.NewSource(e.seedStart + int64(idx))),
				Registry:         e.registry,
				MergeSortEnabled: true,
			})
			if err := s.Generate(e.count); err != nil {
				errs[idx] = err
				return
			}
			res, err := s.StartSort(ctx, name, string(visual.Fast))
			if err != nil {
				errs[idx] = errors.Wrapf(err, "run %d", idx)
				return
			}
			comparisons[idx], swaps[idx] = res.Comparisons, res.Swaps
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Stats{}, err
		}
	}

	return Stats{
		Algorithm:   name,
		Runs:        e.numRuns,
		Comparisons: summarize(comparisons),
		Swaps:       summarize(swaps),
	}, nil
}
