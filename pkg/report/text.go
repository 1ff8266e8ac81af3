package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/ports"
)

// Text writes the plain console report.
type Text struct {
	Writer io.Writer
}

// NewText creates a text reporter. A nil writer means os.Stdout.
func NewText(w io.Writer) *Text {
	if w == nil {
		w = os.Stdout
	}
	return &Text{Writer: w}
}

func (t *Text) SessionStarted(ctx context.Context, info ports.SessionInfo) {
	fmt.Fprintln(t.Writer, info.Scenario)
}

func (t *Text) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {
	fmt.Fprintln(t.Writer, result.String())
}

func (t *Text) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	fmt.Fprintf(t.Writer, "Fastest is '%s'\n", strings.Join(summary.Fastest, ","))
	fmt.Fprintln(t.Writer)
}

// SessionFailed writes nothing; the caller reports the error and exits.
func (t *Text) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {}
