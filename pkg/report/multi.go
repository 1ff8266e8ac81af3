package report

import (
	"context"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/ports"
)

// Multi fans events out to every reporter in order.
type Multi []ports.Reporter

func (m Multi) SessionStarted(ctx context.Context, info ports.SessionInfo) {
	for _, r := range m {
		r.SessionStarted(ctx, info)
	}
}

func (m Multi) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	for _, r := range m {
		r.CaseCompleted(ctx, info, result)
	}
}

func (m Multi) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	for _, r := range m {
		r.SessionCompleted(ctx, summary)
	}
}

func (m Multi) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {
	for _, r := range m {
		r.SessionFailed(ctx, info, err)
	}
}

// Nop discards every event.
type Nop struct{}

func (Nop) SessionStarted(context.Context, ports.SessionInfo) {}
func (Nop) CaseCompleted(context.Context, ports.SessionInfo, bench.Result) {}
func (Nop) SessionCompleted(context.Context, ports.SessionSummary) {}
func (Nop) SessionFailed(context.Context, ports.SessionInfo, error) {}
