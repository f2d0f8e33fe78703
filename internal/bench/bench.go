// Package bench runs comparative benchmarks of the frame shift generator
// against the reference sieve: repeated timed runs per range, mean/stddev
// statistics, and correctness validation of every count.
package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"frameshift/internal/reference"
	"frameshift/sieve"
)

// DefaultRuns is the number of timed repetitions per range.
const DefaultRuns = 5

// Case is one benchmark range.
type Case struct {
	Start       uint64 `json:"start" yaml:"start"`
	Stop        uint64 `json:"stop" yaml:"stop"`
	Description string `json:"description" yaml:"description"`
}

// Stats summarizes the timed runs of one implementation over one case.
type Stats struct {
	Mean   float64 `json:"mean_s"`
	Stddev float64 `json:"stddev_s"`
	Min    float64 `json:"min_s"`
	Max    float64 `json:"max_s"`
}

// Result is the outcome of one case: counts from both implementations,
// their timings, and whether they agree.
type Result struct {
	Case
	Primes    uint64 `json:"primes"`
	Reference uint64 `json:"reference"`
	Match     bool   `json:"match"`
	Frame     Stats  `json:"frame"`
	Ref       Stats  `json:"ref"`

	// Ratio is frame mean time over reference mean time; above 1 the
	// reference sieve is faster.
	Ratio float64 `json:"ratio"`
}

// Runner executes benchmark cases. Each case drives its own Generators, so
// cases may run concurrently without sharing sieve buffers.
type Runner struct {
	Runs        int
	Parallelism int
	Params      sieve.Params
	Logger      *logrus.Logger
}

// NewRunner returns a Runner with runs repetitions per case and the given
// parameters. Runs below 1 falls back to DefaultRuns.
func NewRunner(runs, parallelism int, params sieve.Params, logger *logrus.Logger) *Runner {
	if runs < 1 {
		runs = DefaultRuns
	}
	if parallelism < 1 {
		parallelism = 1
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Runner{
		Runs:        runs,
		Parallelism: parallelism,
		Params:      params,
		Logger:      logger,
	}
}

// Run executes all cases and returns their results in case order.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.Parallelism)

	for i, c := range cases {
		i, c := i, c
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := r.runCase(c)
			if err != nil {
				return fmt.Errorf("case %q [%d, %d]: %w", c.Description, c.Start, c.Stop, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runCase(c Case) (Result, error) {
	r.Logger.Infof("Benchmarking range [%d, %d] (%s)", c.Start, c.Stop, c.Description)

	res := Result{Case: c}

	refTimes := make([]float64, r.Runs)
	for run := 0; run < r.Runs; run++ {
		begin := time.Now()
		count := reference.Count(c.Start, c.Stop)
		refTimes[run] = time.Since(begin).Seconds()
		if run == 0 {
			res.Reference = count
		}
	}

	frameTimes := make([]float64, r.Runs)
	for run := 0; run < r.Runs; run++ {
		begin := time.Now()
		count, err := r.countFrame(c.Start, c.Stop)
		if err != nil {
			return Result{}, err
		}
		frameTimes[run] = time.Since(begin).Seconds()
		if run == 0 {
			res.Primes = count
		}
	}

	res.Match = res.Primes == res.Reference
	res.Frame = computeStats(frameTimes)
	res.Ref = computeStats(refTimes)
	if res.Ref.Mean > 0 {
		res.Ratio = res.Frame.Mean / res.Ref.Mean
	}

	if !res.Match {
		r.Logger.Errorf("Count mismatch on [%d, %d]: frame=%d reference=%d",
			c.Start, c.Stop, res.Primes, res.Reference)
	}

	return res, nil
}

// countFrame drains a dedicated generator rather than sieve.Count so the
// runner's explicit parameters apply and init failures surface as errors.
func (r *Runner) countFrame(start, stop uint64) (uint64, error) {
	g, err := sieve.NewGeneratorWithParams(start, stop, r.Params)
	if err != nil {
		return 0, err
	}
	defer g.Close()

	var count uint64
	for g.Next() != 0 {
		count++
	}
	return count, nil
}

func computeStats(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	s := Stats{Min: samples[0], Max: samples[0]}
	sum := 0.0
	for _, t := range samples {
		sum += t
		if t < s.Min {
			s.Min = t
		}
		if t > s.Max {
			s.Max = t
		}
	}
	s.Mean = sum / float64(len(samples))

	variance := 0.0
	for _, t := range samples {
		variance += (t - s.Mean) * (t - s.Mean)
	}
	s.Stddev = math.Sqrt(variance / float64(len(samples)))

	return s
}
