package report

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/ports"
)

// Event types emitted by the JSON reporter.
const (
	EventSessionStart    = "session_start"
	EventCycle           = "cycle"
	EventSessionComplete = "session_complete"
	EventError           = "error"
)

// Event is one NDJSON line.
type Event struct {
	Event     string                     `json:"event"`
	Session   ports.SessionInfo          `json:"session"`
	Result    *bench.Result              `json:"result,omitempty"`
	Fastest   []string                   `json:"fastest,omitempty"`
	Error     string                     `json:"error,omitempty"`
	Violation *domain.AssertionViolation `json:"violation,omitempty"`
}

// JSON writes one event per line.
type JSON struct {
	Encoder *json.Encoder
	Logger  *slog.Logger

	mu sync.Mutex
}

// NewJSON creates a JSON reporter. A nil writer means os.Stdout.
func NewJSON(w io.Writer, logger *slog.Logger) *JSON {
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &JSON{Encoder: json.NewEncoder(w), Logger: logger}
}

func (j *JSON) emit(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.Encoder.Encode(e); err != nil {
		j.Logger.Warn("Failed to write event", "event", e.Event, "error", err)
	}
}

func (j *JSON) SessionStarted(ctx context.Context, info ports.SessionInfo) {
	j.emit(Event{Event: EventSessionStart, Session: info})
}

func (j *JSON) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	j.emit(Event{Event: EventCycle, Session: info, Result: &result})
}

func (j *JSON) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	j.emit(Event{Event: EventSessionComplete, Session: summary.SessionInfo, Fastest: summary.Fastest})
}

func (j *JSON) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {
	e := Event{Event: EventError, Session: info, Error: err.Error()}
	var v *domain.AssertionViolation
	if errors.As(err, &v) {
		e.Violation = v
	}
	j.emit(e)
}
