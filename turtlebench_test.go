package turtlebench_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/turtlebench"
	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/aretw0/turtlebench/pkg/report"
	"github.com/aretw0/turtlebench/pkg/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// quick keeps sessions short; tests assert behavior, not throughput.
var quick = bench.Options{
	MinSamples:    2,
	MinSampleTime: time.Millisecond,
	MaxTime:       time.Millisecond,
}

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) SessionStarted(ctx context.Context, info ports.SessionInfo) {
	m.Called(info.Scenario)
}

func (m *mockReporter) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	m.Called(info.Scenario, result.Name)
}

func (m *mockReporter) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	m.Called(summary.Scenario)
}

func (m *mockReporter) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {
	m.Called(info.Scenario, err)
}

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	args := m.Called(key, ttl)
	unlock, _ := args.Get(0).(ports.UnlockFunc)
	return unlock, args.Error(1)
}

// inPlace writes to the state it is given and returns it.
var inPlace = strategy.Strategy{
	Name:           "in-place",
	SupportsCycles: true,
	Shallow: func(state *domain.Node) *domain.Node {
		state.Foo++
		return state
	},
	Deep: func(state *domain.Node) *domain.Node {
		n, _ := domain.At(state, domain.DeepLevel)
		n.Foo++
		return state
	},
}

// leaky returns a copy but also writes to the original.
var leaky = strategy.Strategy{
	Name:           "leaky",
	SupportsCycles: true,
	Shallow: func(state *domain.Node) *domain.Node {
		next := *state
		next.Foo++
		state.Foo++
		return &next
	},
}

func TestHarness_RunAcyclic(t *testing.T) {
	collector := report.NewCollector()
	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantAcyclic),
		turtlebench.WithBenchOptions(quick),
		turtlebench.WithReporter(collector),
		turtlebench.WithRunID("run-1"),
	)
	require.NoError(t, err)
	assert.Equal(t, "run-1", h.RunID())

	summaries, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "set property", summaries[0].Scenario)
	assert.Equal(t, "set deep property", summaries[1].Scenario)
	assert.Equal(t, []string{
		"set deep property (optics)",
		"set deep property (draft)",
		"set deep property (manual)",
	}, summaries[1].Cases)

	for _, s := range summaries {
		require.Len(t, s.Results, 3)
		require.NotEmpty(t, s.Fastest)
		for _, r := range s.Results {
			assert.Greater(t, r.Hz, 0.0)
			assert.GreaterOrEqual(t, r.Samples, 2)
		}
	}

	snap := collector.Snapshot()
	require.Len(t, snap.Completed, 2)
	assert.Equal(t, summaries, snap.Completed, "the reporter sees the summary Run returns")
	assert.Empty(t, snap.Failures)
	assert.True(t, h.Fixture().Intact(), "no strategy may write to the shared fixture")
}

func TestHarness_RunCyclic(t *testing.T) {
	gcCalls := 0
	h, err := turtlebench.New(
		turtlebench.WithBenchOptions(quick),
		turtlebench.WithGCFunc(func() { gcCalls++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, "cyclic", h.Variant().Name)
	assert.True(t, h.Fixture().Options.Cyclic)
	assert.NotEmpty(t, h.RunID())

	summaries, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Len(t, summaries[1].Results, 2)
	assert.Equal(t, 2, gcCalls, "one forced collection per session")
	assert.True(t, h.Fixture().Intact())
}

func TestHarness_ForceGCOverride(t *testing.T) {
	gcCalls := 0
	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantCyclic),
		turtlebench.WithForceGC(false),
		turtlebench.WithBenchOptions(quick),
		turtlebench.WithScenarios(domain.ScenarioShallow),
		turtlebench.WithGCFunc(func() { gcCalls++ }),
	)
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, gcCalls)
}

func TestNew_RefusesManualOnCycle(t *testing.T) {
	_, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantCyclic),
		turtlebench.WithStrategies(domain.StrategyOptics, domain.StrategyManual),
	)
	assert.ErrorIs(t, err, domain.ErrCyclicUnsupported)

	_, err = turtlebench.New(
		turtlebench.WithVariant(domain.VariantCyclic),
		turtlebench.WithStrategySet(strategy.Manual()),
	)
	assert.ErrorIs(t, err, domain.ErrCyclicUnsupported)
}

func TestNew_Errors(t *testing.T) {
	_, err := turtlebench.New(turtlebench.WithStrategies("clone"))
	assert.ErrorIs(t, err, domain.ErrUnknownStrategy)

	broken := domain.VariantAcyclic
	broken.Check = "partial"
	_, err = turtlebench.New(turtlebench.WithVariant(broken))
	assert.Error(t, err)

	_, err = turtlebench.New(turtlebench.WithScenarios())
	assert.Error(t, err)
}

func TestHarness_InPlaceStrategyFailsBeforeTiming(t *testing.T) {
	tests := []struct {
		name     string
		strategy strategy.Strategy
		kind     domain.ViolationKind
	}{
		{"Same Object", inPlace, domain.KindIdentity},
		{"Mutated Original", leaky, domain.KindMutation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter := &mockReporter{}
			reporter.On("SessionStarted", "set property").Once()
			reporter.On("SessionFailed", "set property", mock.Anything).Once()

			h, err := turtlebench.New(
				turtlebench.WithVariant(domain.VariantAcyclic),
				turtlebench.WithStrategySet(tt.strategy),
				turtlebench.WithScenarios(domain.ScenarioShallow),
				turtlebench.WithBenchOptions(quick),
				turtlebench.WithReporter(reporter),
			)
			require.NoError(t, err)

			summaries, err := h.Run(context.Background())
			require.Error(t, err)
			assert.Empty(t, summaries)
			assert.ErrorIs(t, err, domain.ErrAssertion)

			var v *domain.AssertionViolation
			require.True(t, errors.As(err, &v))
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, "set property ("+tt.strategy.Name+")", v.Case)

			reporter.AssertExpectations(t)
			reporter.AssertNotCalled(t, "CaseCompleted", mock.Anything, mock.Anything)
			reporter.AssertNotCalled(t, "SessionCompleted", mock.Anything)
		})
	}
}

func TestHarness_SessionCompletedFromSuiteCallback(t *testing.T) {
	reporter := &mockReporter{}
	var order []string
	reporter.On("SessionStarted", "set property").Run(func(mock.Arguments) { order = append(order, "start") }).Once()
	reporter.On("CaseCompleted", "set property", mock.Anything).Run(func(mock.Arguments) { order = append(order, "case") }).Twice()
	reporter.On("SessionCompleted", "set property").Run(func(mock.Arguments) { order = append(order, "complete") }).Once()

	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantRelaxed),
		turtlebench.WithScenarios(domain.ScenarioShallow),
		turtlebench.WithStrategies(domain.StrategyOptics, domain.StrategyDraft),
		turtlebench.WithBenchOptions(quick),
		turtlebench.WithReporter(reporter),
	)
	require.NoError(t, err)

	summaries, err := h.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Len(t, summaries[0].Results, 2)
	assert.NotEmpty(t, summaries[0].Fastest)
	assert.Equal(t, []string{"start", "case", "case", "complete"}, order)
	reporter.AssertExpectations(t)
}

func TestHarness_Locker(t *testing.T) {
	released := false
	locker := &mockLocker{}
	locker.On("Lock", "bench", time.Minute).Return(ports.UnlockFunc(func(context.Context) error {
		released = true
		return nil
	}), nil).Once()

	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantRelaxed),
		turtlebench.WithScenarios(domain.ScenarioShallow),
		turtlebench.WithBenchOptions(quick),
		turtlebench.WithLocker(locker, "bench", time.Minute),
	)
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, released)
	locker.AssertExpectations(t)
}

func TestHarness_LockerError(t *testing.T) {
	locker := &mockLocker{}
	locker.On("Lock", turtlebench.DefaultLockKey, time.Second).Return(nil, context.DeadlineExceeded)

	reporter := &mockReporter{}
	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantAcyclic),
		turtlebench.WithReporter(reporter),
		turtlebench.WithLocker(locker, "", time.Second),
	)
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	reporter.AssertNotCalled(t, "SessionStarted", mock.Anything)
}

func TestHarness_Cancelled(t *testing.T) {
	h, err := turtlebench.New(turtlebench.WithVariant(domain.VariantAcyclic))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = h.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHarness_Check(t *testing.T) {
	h, err := turtlebench.New(turtlebench.WithVariant(domain.VariantAcyclic))
	require.NoError(t, err)

	outcomes, err := h.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 6)

	for _, o := range outcomes {
		assert.NoError(t, o.Err, o.Case)
		assert.True(t, o.Intact, o.Case)
		require.NotNil(t, o.Diff)
		switch o.Scenario {
		case "set property":
			assert.Equal(t, 1, o.Diff.Copied, o.Case)
			assert.Equal(t, domain.FixtureDepth-1, o.Diff.Shared, o.Case)
			assert.Equal(t, []domain.FieldChange{{Depth: 0, Field: "foo", Old: 0, New: 1}}, o.Diff.Changes)
		case "set deep property":
			assert.Equal(t, domain.FixtureDepth, o.Diff.Copied, o.Case)
			assert.Zero(t, o.Diff.Shared, o.Case)
			assert.Equal(t, []domain.FieldChange{{Depth: 9, Field: "foo", Old: 9, New: 10}}, o.Diff.Changes)
		}
	}
}

func TestHarness_CheckReportsViolations(t *testing.T) {
	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantAcyclic),
		turtlebench.WithStrategySet(inPlace),
	)
	require.NoError(t, err)

	outcomes, err := h.Check(context.Background())
	require.Len(t, outcomes, 2)
	assert.ErrorIs(t, err, domain.ErrAssertion)
	assert.False(t, outcomes[0].Intact)

	var v *domain.AssertionViolation
	require.ErrorAs(t, outcomes[0].Err, &v)
	assert.Equal(t, domain.KindIdentity, v.Kind)
}
