package turtlebench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/aretw0/turtlebench/internal/logging"
	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/check"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/aretw0/turtlebench/pkg/report"
	"github.com/aretw0/turtlebench/pkg/strategy"
	"github.com/google/uuid"
)

// DefaultLockKey is the lock key used when WithLocker is given an empty key.
const DefaultLockKey = "run"

// Harness runs the benchmark sessions of one variant.
// It builds the fixture once and shares it, read-only, between every case.
type Harness struct {
	variant    domain.Variant
	names      []string
	custom     []strategy.Strategy
	strategies []strategy.Strategy
	scenarios  []domain.Scenario
	arena      *domain.Arena

	reporter  ports.Reporter
	logger    *slog.Logger
	benchOpts []bench.Option
	forceGC   *bool
	gc        func()
	runID     string

	locker  ports.RunLocker
	lockKey string
	lockTTL time.Duration
}

// Option defines a functional option for configuring the Harness.
type Option func(*Harness)

// WithVariant selects the variant to run (default: cyclic).
func WithVariant(v domain.Variant) Option {
	return func(h *Harness) {
		h.variant = v
	}
}

// WithStrategies overrides the variant's strategy list by name.
func WithStrategies(names ...string) Option {
	return func(h *Harness) {
		h.names = names
	}
}

// WithStrategySet runs the given strategies instead of looking names up.
// Useful for comparing an implementation that is not built in.
func WithStrategySet(strategies ...strategy.Strategy) Option {
	return func(h *Harness) {
		h.custom = strategies
	}
}

// WithScenarios restricts the run to the given scenarios.
func WithScenarios(scenarios ...domain.Scenario) Option {
	return func(h *Harness) {
		h.scenarios = scenarios
	}
}

// WithReporter sets where session events are sent.
func WithReporter(r ports.Reporter) Option {
	return func(h *Harness) {
		h.reporter = r
	}
}

// WithLogger sets a custom structured logger for the harness.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithBenchOptions sets the measurement options of every session.
func WithBenchOptions(o bench.Options) Option {
	return func(h *Harness) {
		h.benchOpts = append(h.benchOpts, bench.WithOptions(o))
	}
}

// WithSuiteOptions passes raw options to every suite, e.g. bench.WithClock.
func WithSuiteOptions(opts ...bench.Option) Option {
	return func(h *Harness) {
		h.benchOpts = append(h.benchOpts, opts...)
	}
}

// WithForceGC overrides whether a collection is forced before each session.
func WithForceGC(enabled bool) Option {
	return func(h *Harness) {
		h.forceGC = &enabled
	}
}

// WithGCFunc replaces runtime.GC as the collection hook.
func WithGCFunc(gc func()) Option {
	return func(h *Harness) {
		h.gc = gc
	}
}

// WithRunID sets the run identifier (default: a random UUID).
func WithRunID(id string) Option {
	return func(h *Harness) {
		h.runID = id
	}
}

// WithLocker serializes whole runs through locker. The lock expires after ttl.
func WithLocker(locker ports.RunLocker, key string, ttl time.Duration) Option {
	return func(h *Harness) {
		h.locker = locker
		h.lockKey = key
		h.lockTTL = ttl
	}
}

// New builds the fixture and resolves the strategies of the selected variant.
// It refuses strategies that cannot handle a cyclic fixture.
func New(opts ...Option) (*Harness, error) {
	h := &Harness{
		variant:   domain.VariantCyclic,
		scenarios: domain.Scenarios(),
		reporter:  report.Nop{},
		gc:        runtime.GC,
		lockTTL:   10 * time.Minute,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.runID == "" {
		h.runID = uuid.NewString()
	}
	if h.logger == nil {
		h.logger = logging.NewNop()
	}
	h.logger = logging.ForRun(h.logger, h.runID).With("variant", h.variant.Name)
	if h.lockKey == "" {
		h.lockKey = DefaultLockKey
	}

	if len(h.names) > 0 {
		h.variant.Strategies = append([]string(nil), h.names...)
	}
	if h.forceGC != nil {
		h.variant.ForceGC = *h.forceGC
	}
	if !h.variant.Check.Valid() {
		return nil, fmt.Errorf("unknown check mode %q", h.variant.Check)
	}
	if len(h.scenarios) == 0 {
		return nil, errors.New("no scenarios to run")
	}

	if len(h.custom) > 0 {
		if err := strategy.Compatible(h.custom, h.variant.Fixture.Cyclic); err != nil {
			return nil, err
		}
		h.strategies = h.custom
		names := make([]string, len(h.custom))
		for i, s := range h.custom {
			names[i] = s.Name
		}
		h.variant.Strategies = names
	} else {
		resolved, err := strategy.Resolve(h.variant.Strategies, h.variant.Fixture.Cyclic)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve strategies for %q: %w", h.variant.Name, err)
		}
		h.strategies = resolved
	}
	if len(h.strategies) == 0 {
		return nil, fmt.Errorf("variant %q has no strategies", h.variant.Name)
	}

	h.arena = domain.NewFixture(h.variant.Fixture)
	return h, nil
}

// RunID returns the run identifier.
func (h *Harness) RunID() string {
	return h.runID
}

// Variant returns the effective variant after overrides.
func (h *Harness) Variant() domain.Variant {
	return h.variant
}

// Fixture returns the shared fixture.
func (h *Harness) Fixture() *domain.Arena {
	return h.arena
}

// Run executes one session per scenario, in order. It stops at the first failing session.
func (h *Harness) Run(ctx context.Context) ([]ports.SessionSummary, error) {
	if h.locker != nil {
		h.logger.Debug("acquiring run lock", "key", h.lockKey)
		unlock, err := h.locker.Lock(ctx, h.lockKey, h.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire run lock: %w", err)
		}
		defer func() {
			if err := unlock(context.Background()); err != nil {
				h.logger.Warn("failed to release run lock", "error", err)
			}
		}()
	}

	h.logger.Info("run started", "strategies", h.variant.Strategies, "check", h.variant.Check)
	summaries := make([]ports.SessionSummary, 0, len(h.scenarios))
	for _, sc := range h.scenarios {
		summary, err := h.session(ctx, sc)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}
	h.logger.Info("run completed", "sessions", len(summaries))
	return summaries, nil
}

func (h *Harness) session(ctx context.Context, sc domain.Scenario) (ports.SessionSummary, error) {
	logger := h.logger.With("scenario", sc.Name)
	checker := check.New(h.variant.Check, sc)

	opts := append([]bench.Option(nil), h.benchOpts...)
	if h.variant.ForceGC && h.gc != nil {
		opts = append(opts, bench.WithGC(h.gc))
	}
	suite := bench.NewSuite(sc.Name, opts...)

	root := h.arena.Root()
	for _, s := range h.strategies {
		update, err := s.For(sc)
		if err != nil {
			return ports.SessionSummary{}, err
		}
		name := domain.CaseName(sc, s.Name)
		suite.Add(name, checker.Guard(name, root, update))
	}

	info := ports.SessionInfo{
		RunID:    h.runID,
		Variant:  h.variant.Name,
		Scenario: sc.Name,
		Cases:    suite.Cases(),
	}
	var summary ports.SessionSummary
	started := time.Now()
	suite.OnCycle(func(r bench.Result) {
		logger.Debug("case completed", "case", r.Name, "hz", r.Hz, "rme", r.RME, "samples", r.Samples)
		h.reporter.CaseCompleted(ctx, info, r)
	})
	suite.OnComplete(func(s *bench.Suite) {
		fastest := s.Fastest()
		names := make([]string, len(fastest))
		for i, r := range fastest {
			names[i] = r.Name
		}
		summary = ports.SessionSummary{
			SessionInfo: info,
			Results:     s.Results(),
			Fastest:     names,
			Elapsed:     time.Since(started),
		}
		h.reporter.SessionCompleted(ctx, summary)
	})

	h.reporter.SessionStarted(ctx, info)
	if err := suite.Run(ctx); err != nil {
		logger.Error("session failed", "error", err)
		h.reporter.SessionFailed(ctx, info, err)
		return ports.SessionSummary{}, fmt.Errorf("session %q: %w", sc.Name, err)
	}
	return summary, nil
}

// CheckOutcome is the result of running one case once through the predicate.
type CheckOutcome struct {
	Scenario string            `json:"scenario"`
	Strategy string            `json:"strategy"`
	Case     string            `json:"case"`
	Diff     *domain.StateDiff `json:"diff,omitempty"`

	// Intact reports whether the shared fixture still held its original values
	// after the update.
	Intact bool  `json:"intact"`
	Err    error `json:"-"`
}

// Check runs every case exactly once, without timing, and reports what each update
// copied and shared. The returned error joins every violation found.
func (h *Harness) Check(ctx context.Context) ([]CheckOutcome, error) {
	var (
		outcomes []CheckOutcome
		errs     []error
	)
	for _, sc := range h.scenarios {
		checker := check.New(h.variant.Check, sc)
		root := h.arena.Root()
		before, err := checker.Before(root)
		if err != nil {
			return outcomes, err
		}
		for _, s := range h.strategies {
			if err := ctx.Err(); err != nil {
				return outcomes, err
			}
			update, err := s.For(sc)
			if err != nil {
				return outcomes, err
			}

			name := domain.CaseName(sc, s.Name)
			result := update(root)

			outcome := CheckOutcome{
				Scenario: sc.Name,
				Strategy: s.Name,
				Case:     name,
				Diff:     domain.Diff(root, result),
				Intact:   h.arena.Intact(),
				Err:      checker.Check(name, root, before, result),
			}
			if outcome.Err != nil {
				h.logger.Warn("check failed", "case", name, "error", outcome.Err)
				errs = append(errs, outcome.Err)
			}
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes, errors.Join(errs...)
}
