package report_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/aretw0/turtlebench/pkg/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	info = ports.SessionInfo{
		RunID:    "run-1",
		Variant:  "acyclic",
		Scenario: "set property",
		Cases:    []string{"set property (optics)", "set property (draft)"},
	}
	optics = bench.Result{Name: "set property (optics)", Hz: 1000, RME: 1.5, Samples: 10}
	draft  = bench.Result{Name: "set property (draft)", Hz: 2500, RME: 0.25, Samples: 12}
)

// replay drives a reporter through one successful session.
func replay(r ports.Reporter) {
	ctx := context.Background()
	r.SessionStarted(ctx, info)
	r.CaseCompleted(ctx, info, optics)
	r.CaseCompleted(ctx, info, draft)
	r.SessionCompleted(ctx, ports.SessionSummary{
		SessionInfo: info,
		Results:     []bench.Result{optics, draft},
		Fastest:     []string{draft.Name},
	})
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	replay(report.NewText(&buf))
	report.NewText(&buf).SessionFailed(context.Background(), info, errors.New("ignored"))

	want := "set property\n" +
		"set property (optics) x 1,000 ops/sec ±1.50% (10 runs sampled)\n" +
		"set property (draft) x 2,500 ops/sec ±0.25% (12 runs sampled)\n" +
		"Fastest is 'set property (draft)'\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewJSON(&buf, nil)
	replay(r)
	r.SessionFailed(context.Background(), info, &domain.AssertionViolation{
		Kind: domain.KindIdentity,
		Case: "set property (draft)",
	})

	var events []report.Event
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var e report.Event
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e))
		events = append(events, e)
	}

	require.Len(t, events, 5)
	assert.Equal(t, report.EventSessionStart, events[0].Event)
	assert.Equal(t, "run-1", events[0].Session.RunID)
	assert.Equal(t, report.EventCycle, events[1].Event)
	require.NotNil(t, events[1].Result)
	assert.Equal(t, optics.Name, events[1].Result.Name)
	assert.Equal(t, report.EventSessionComplete, events[3].Event)
	assert.Equal(t, []string{draft.Name}, events[3].Fastest)

	assert.Equal(t, report.EventError, events[4].Event)
	assert.Equal(t, "SAME STATE OBJECT: set property (draft)", events[4].Error)
	require.NotNil(t, events[4].Violation)
	assert.Equal(t, domain.KindIdentity, events[4].Violation.Kind)
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewMarkdown(&buf, func(s string) (string, error) {
		return "RENDERED\n" + s, nil
	})
	replay(r)

	out := buf.String()
	assert.Contains(t, out, "RENDERED")
	assert.Contains(t, out, "### set property")
	assert.Contains(t, out, "| set property (draft) | 2,500 | 0.25% | 12 | ✓ |")
	assert.Contains(t, out, "| set property (optics) | 1,000 | 1.50% | 10 |  |")
	assert.Contains(t, out, "_variant: acyclic_")
}

func TestMarkdown_RendererErrorFallsBack(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewMarkdown(&buf, func(string) (string, error) {
		return "", errors.New("no terminal")
	})
	replay(r)
	assert.Contains(t, buf.String(), "| Case | ops/sec |")
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := report.NewMetrics(reg)
	replay(m)
	m.SessionFailed(context.Background(), info, &domain.AssertionViolation{Kind: domain.KindMutation})
	m.SessionFailed(context.Background(), info, errors.New("cancelled"))

	count, err := testutil.GatherAndCount(reg, "turtlebench_case_ops_per_second")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "case" || lp.GetName() == "status" || lp.GetName() == "kind" {
					key += "/" + lp.GetValue()
				}
			}
			switch {
			case metric.GetGauge() != nil:
				values[key] = metric.GetGauge().GetValue()
			case metric.GetCounter() != nil:
				values[key] = metric.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 2500.0, values["turtlebench_case_ops_per_second/set property (draft)"])
	assert.Equal(t, 1.5, values["turtlebench_case_relative_margin_of_error_percent/set property (optics)"])
	assert.Equal(t, 12.0, values["turtlebench_case_samples/set property (draft)"])
	assert.Equal(t, 1.0, values["turtlebench_session_total/completed"])
	assert.Equal(t, 2.0, values["turtlebench_session_total/failed"])
	assert.Equal(t, 1.0, values["turtlebench_check_violations_total/mutation"])
}

func TestCollector(t *testing.T) {
	c := report.NewCollector()
	ctx := context.Background()

	c.SessionStarted(ctx, info)
	c.CaseCompleted(ctx, info, optics)

	snap := c.Snapshot()
	require.NotNil(t, snap.Running)
	assert.Len(t, snap.Running.Results, 1)
	assert.Empty(t, snap.Completed)

	c.CaseCompleted(ctx, info, draft)
	c.SessionCompleted(ctx, ports.SessionSummary{SessionInfo: info, Results: []bench.Result{optics, draft}})
	c.SessionFailed(ctx, info, errors.New("boom"))

	snap = c.Snapshot()
	assert.Nil(t, snap.Running)
	require.Len(t, snap.Completed, 1)
	assert.Len(t, snap.Completed[0].Results, 2)
	require.Len(t, snap.Failures, 1)
	assert.Equal(t, "boom", snap.Failures[0].Error)
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	replay(report.Multi{report.NewText(&a), report.NewText(&b), report.Nop{}})
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
