package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/turtlebench"
	"github.com/aretw0/turtlebench/internal/config"
)

// checkLine is the JSON form of one check outcome.
type checkLine struct {
	turtlebench.CheckOutcome
	Error string `json:"error,omitempty"`
}

// RunCheck handles the 'check' command: every case runs once through the predicate,
// untimed, and the outcome of each is printed.
func RunCheck(ctx context.Context, opts RunOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	variant, err := cfg.ResolveVariant()
	if err != nil {
		return err
	}

	h, err := turtlebench.New(
		turtlebench.WithVariant(variant),
		turtlebench.WithLogger(createLogger(opts.Debug)),
	)
	if err != nil {
		return err
	}

	outcomes, checkErr := h.Check(ctx)
	out := opts.stdout()

	if cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(out)
		for _, o := range outcomes {
			line := checkLine{CheckOutcome: o}
			if o.Err != nil {
				line.Error = o.Err.Error()
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
		return checkErr
	}

	for _, o := range outcomes {
		mark := "ok"
		if o.Err != nil {
			mark = "FAIL"
		}
		var copied, shared int
		if o.Diff != nil {
			copied, shared = o.Diff.Copied, o.Diff.Shared
		}
		fmt.Fprintf(out, "%-4s %s: copied %d, shared %d", mark, o.Case, copied, shared)
		if o.Err != nil {
			fmt.Fprintf(out, " (%v)", o.Err)
		}
		fmt.Fprintln(out)
	}
	return checkErr
}
