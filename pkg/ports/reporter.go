package ports

import (
	"context"
	"time"

	"github.com/aretw0/turtlebench/pkg/bench"
)

// SessionInfo identifies one measurement session.
type SessionInfo struct {
	RunID    string   `json:"run_id"`
	Variant  string   `json:"variant"`
	Scenario string   `json:"scenario"`
	Cases    []string `json:"cases"`
}

// SessionSummary is reported once every case of a session has completed.
type SessionSummary struct {
	SessionInfo
	Results []bench.Result `json:"results"`
	Fastest []string       `json:"fastest"`
	Elapsed time.Duration  `json:"elapsed"`
}

// Reporter receives session events in order. Calls are made synchronously from the
// goroutine running the session.
type Reporter interface {
	SessionStarted(ctx context.Context, info SessionInfo)
	CaseCompleted(ctx context.Context, info SessionInfo, result bench.Result)
	SessionCompleted(ctx context.Context, summary SessionSummary)
	SessionFailed(ctx context.Context, info SessionInfo, err error)
}
