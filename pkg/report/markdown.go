package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/ports"
)

// ContentRenderer transforms markdown before it is written (e.g. to ANSI).
type ContentRenderer func(string) (string, error)

// Markdown writes a table per completed session.
type Markdown struct {
	Writer   io.Writer
	Renderer ContentRenderer
}

// NewMarkdown creates a markdown reporter. A nil writer means os.Stdout; a nil
// renderer writes the raw markdown.
func NewMarkdown(w io.Writer, renderer ContentRenderer) *Markdown {
	if w == nil {
		w = os.Stdout
	}
	return &Markdown{Writer: w, Renderer: renderer}
}

func (m *Markdown) SessionStarted(ctx context.Context, info ports.SessionInfo) {}

func (m *Markdown) CaseCompleted(ctx context.Context, info ports.SessionInfo, result bench.Result) {}

func (m *Markdown) SessionCompleted(ctx context.Context, summary ports.SessionSummary) {
	output := Table(summary)
	if m.Renderer != nil {
		// Fall back to raw markdown if rendering fails.
		if rendered, err := m.Renderer(output); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(m.Writer, strings.TrimRight(output, "\n"))
}

func (m *Markdown) SessionFailed(ctx context.Context, info ports.SessionInfo, err error) {}

// Table formats a session summary as a markdown table.
func Table(summary ports.SessionSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "### %s\n\n", summary.Scenario)
	sb.WriteString("| Case | ops/sec | ± | Samples | Fastest |\n")
	sb.WriteString("|---|---:|---:|---:|:---:|\n")
	for _, r := range summary.Results {
		mark := ""
		if slices.Contains(summary.Fastest, r.Name) {
			mark = "✓"
		}
		fmt.Fprintf(&sb, "| %s | %s | %.2f%% | %d | %s |\n", r.Name, bench.FormatHz(r.Hz), r.RME, r.Samples, mark)
	}
	if summary.Variant != "" {
		fmt.Fprintf(&sb, "\n_variant: %s_\n", summary.Variant)
	}
	return sb.String()
}
