package report

import (
	"context"
	"errors"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "turtlebench"

// Metrics exports results as Prometheus metrics.
type Metrics struct {
	// opsPerSecond is the mean throughput of the last completed run of a case.
	// Labels: variant, scenario, case
	opsPerSecond *prometheus.GaugeVec

	// marginOfError is the relative margin of error in percent.
	// Labels: variant, scenario, case
	marginOfError *prometheus.GaugeVec

	// samples is the number of samples behind the last result.
	// Labels: variant, scenario, case
	samples *prometheus.GaugeVec

	// sessions counts finished sessions.
	// Labels: variant, status (completed, failed)
	sessions *prometheus.CounterVec

	// violations counts correctness failures.
	// Labels: variant, kind (identity, mutation, value)
	violations *prometheus.CounterVec
}

// NewMetrics registers the harness metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	caseLabels := []string{"variant", "scenario", "case"}
	return &Metrics{
		opsPerSecond: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "case",
			Name:      "ops_per_second",
			Help:      "Mean operations per second of the last measurement",
		}, caseLabels),
		marginOfError: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "case",
			Name:      "relative_margin_of_error_percent",
			Help:      "Relative margin of error of the mean at 95% confidence",
		}, caseLabels),
		samples: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "case",
			Name:      "samples",
			Help:      "Number of samples behind the last measurement",
		}, caseLabels),
		sessions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "session",
			Name:      "total",
			Help:      "Finished measurement sessions",
		}, []string{"variant", "status"}),
		violations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "check",
			Name:      "violations_total",
			Help:      "Correctness violations raised by the predicate",
		}, []string{"variant", "kind"}),
	}
}

func (m *Metrics) SessionStarted(ctx context.Context, info ports.SessionInfo) {}

func (m *Metrics) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	m.opsPerSecond.WithLabelValues(info.Variant, info.Scenario, result.Name).Set(result.Hz)
	m.marginOfError.WithLabelValues(info.Variant, info.Scenario, result.Name).Set(result.RME)
	m.samples.WithLabelValues(info.Variant, info.Scenario, result.Name).Set(float64(result.Samples))
}

func (m *Metrics) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	m.sessions.WithLabelValues(summary.Variant, "completed").Inc()
}

func (m *Metrics) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {
	m.sessions.WithLabelValues(info.Variant, "failed").Inc()
	var v *domain.AssertionViolation
	if errors.As(err, &v) {
		m.violations.WithLabelValues(info.Variant, string(v.Kind)).Inc()
	}
}
