package bench

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSuiteRunning is returned when Run is called on a suite that is already running.
var ErrSuiteRunning = errors.New("suite is already running")

// ErrNoCases is returned when Run is called on an empty suite.
var ErrNoCases = errors.New("suite has no cases")

// maxIterations caps calibration so a case that is too fast for the clock still ends.
const maxIterations = 1 << 30

// SuiteState tracks a suite through idle -> running -> complete (or aborted).
type SuiteState string

const (
	StateIdle     SuiteState = "idle"
	StateRunning  SuiteState = "running"
	StateComplete SuiteState = "complete"
	StateAborted  SuiteState = "aborted"
)

// Case is a named body measured by the suite. Returning an error aborts the suite.
type Case struct {
	Name string
	Fn   func() error
}

// Suite is one measurement session.
type Suite struct {
	Name string

	opts       Options
	gc         func()
	now        func() time.Time
	cases      []Case
	results    []Result
	state      SuiteState
	onCycle    []func(Result)
	onComplete []func(*Suite)
}

// NewSuite creates an idle suite.
func NewSuite(name string, opts ...Option) *Suite {
	s := &Suite{
		Name:  name,
		opts:  DefaultOptions(),
		now:   time.Now,
		state: StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a case.
func (s *Suite) Add(name string, fn func() error) *Suite {
	s.cases = append(s.cases, Case{Name: name, Fn: fn})
	return s
}

// OnCycle registers a callback invoked as each case completes.
func (s *Suite) OnCycle(fn func(Result)) *Suite {
	s.onCycle = append(s.onCycle, fn)
	return s
}

// OnComplete registers a callback invoked once every case has completed.
func (s *Suite) OnComplete(fn func(*Suite)) *Suite {
	s.onComplete = append(s.onComplete, fn)
	return s
}

// State returns the current lifecycle state.
func (s *Suite) State() SuiteState {
	return s.state
}

// Options returns the effective measurement options.
func (s *Suite) Options() Options {
	return s.opts
}

// Cases returns the registered case names in order.
func (s *Suite) Cases() []string {
	names := make([]string, len(s.cases))
	for i, c := range s.cases {
		names[i] = c.Name
	}
	return names
}

// Results returns the completed results in case order.
func (s *Suite) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Fastest returns the results with the highest throughput. Ties are all returned.
func (s *Suite) Fastest() []Result {
	var best []Result
	for _, r := range s.results {
		switch {
		case len(best) == 0 || r.Hz > best[0].Hz:
			best = []Result{r}
		case r.Hz == best[0].Hz:
			best = append(best, r)
		}
	}
	return best
}

// Run measures every case in order.
func (s *Suite) Run(ctx context.Context) error {
	if s.state == StateRunning {
		return ErrSuiteRunning
	}
	if len(s.cases) == 0 {
		return ErrNoCases
	}

	s.state = StateRunning
	s.results = s.results[:0]

	if s.gc != nil {
		s.gc()
	}

	for _, c := range s.cases {
		res, err := s.measure(ctx, c)
		if err != nil {
			s.state = StateAborted
			return fmt.Errorf("case %q: %w", c.Name, err)
		}
		s.results = append(s.results, res)
		for _, fn := range s.onCycle {
			fn(res)
		}
	}

	s.state = StateComplete
	for _, fn := range s.onComplete {
		fn(s)
	}
	return nil
}

func (s *Suite) measure(ctx context.Context, c Case) (Result, error) {
	started := s.now()

	n, err := s.calibrate(ctx, c)
	if err != nil {
		return Result{}, err
	}

	var samples []float64
	budgetStart := s.now()
	for len(samples) < s.opts.MinSamples || s.now().Sub(budgetStart) < s.opts.MaxTime {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		elapsed, err := s.cycle(c, n)
		if err != nil {
			return Result{}, err
		}
		samples = append(samples, elapsed.Seconds()/float64(n))
	}

	stats := summarize(samples)
	var hz float64
	if stats.Mean > 0 {
		hz = 1 / stats.Mean
	}
	return Result{
		Name:       c.Name,
		Hz:         hz,
		RME:        stats.RME,
		Samples:    len(samples),
		Iterations: n,
		Elapsed:    s.now().Sub(started),
		Stats:      stats,
	}, nil
}

// calibrate finds an iteration count whose cycle lasts at least MinSampleTime.
func (s *Suite) calibrate(ctx context.Context, c Case) (int, error) {
	n := 1
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		elapsed, err := s.cycle(c, n)
		if err != nil {
			return 0, err
		}
		if elapsed >= s.opts.MinSampleTime || n >= maxIterations {
			return n, nil
		}

		next := n * 100
		if elapsed > 0 {
			// Aim 10% past the target so the next cycle usually clears it.
			scaled := int(float64(n)*float64(s.opts.MinSampleTime)/float64(elapsed)*1.1) + 1
			if scaled < next {
				next = scaled
			}
		}
		if next <= n {
			next = n + 1
		}
		n = min(next, maxIterations)
	}
}

func (s *Suite) cycle(c Case, n int) (time.Duration, error) {
	start := s.now()
	for i := 0; i < n; i++ {
		if err := c.Fn(); err != nil {
			return 0, err
		}
	}
	return s.now().Sub(start), nil
}
