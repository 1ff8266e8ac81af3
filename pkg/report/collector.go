package report

import (
	"context"
	"sync"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/ports"
)

// Failure records a session that ended with an error.
type Failure struct {
	Session ports.SessionInfo `json:"session"`
	Error   string            `json:"error"`
}

// Snapshot is the collector's state at one point in time.
type Snapshot struct {
	Completed []ports.SessionSummary `json:"completed"`
	Running   *ports.SessionSummary  `json:"running,omitempty"`
	Failures  []Failure              `json:"failures,omitempty"`
}

// Collector keeps results in memory. It is safe to read while a run is in progress.
type Collector struct {
	mu        sync.RWMutex
	completed []ports.SessionSummary
	running   *ports.SessionSummary
	failures  []Failure
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) SessionStarted(ctx context.Context, info ports.SessionInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = &ports.SessionSummary{SessionInfo: info}
}

func (c *Collector) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running == nil {
		c.running = &ports.SessionSummary{SessionInfo: info}
	}
	c.running.Results = append(c.running.Results, result)
}

func (c *Collector) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completed = append(c.completed, summary)
	c.running = nil
}

func (c *Collector) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = append(c.failures, Failure{Session: info, Error: err.Error()})
	c.running = nil
}

// Snapshot returns a copy of the collected results.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := Snapshot{
		Completed: append([]ports.SessionSummary(nil), c.completed...),
		Failures:  append([]Failure(nil), c.failures...),
	}
	if c.running != nil {
		running := *c.running
		running.Results = append([]bench.Result(nil), c.running.Results...)
		snap.Running = &running
	}
	return snap
}
