package bench

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Result is the outcome of one measured case.
type Result struct {
	Name string `json:"name"`

	// Hz is operations per second, derived from the mean time per operation.
	Hz float64 `json:"hz"`

	// RME is the relative margin of error of the mean, in percent.
	RME float64 `json:"rme"`

	Samples    int           `json:"samples"`
	Iterations int           `json:"iterations"` // calls per sample
	Elapsed    time.Duration `json:"elapsed"`
	Stats      Stats         `json:"stats"`
}

// String formats the result as "<name> x 1,234,567 ops/sec ±0.52% (87 runs sampled)".
func (r Result) String() string {
	runs := "runs"
	if r.Samples == 1 {
		runs = "run"
	}
	return fmt.Sprintf("%s x %s ops/sec ±%.2f%% (%d %s sampled)", r.Name, FormatHz(r.Hz), r.RME, r.Samples, runs)
}

// FormatHz formats ops/sec with thousands separators; rates below 100 keep two decimals.
func FormatHz(hz float64) string {
	if hz < 100 {
		return humanize.CommafWithDigits(hz, 2)
	}
	return humanize.Comma(int64(math.Round(hz)))
}

// PerOp returns the mean time per operation.
func (r Result) PerOp() time.Duration {
	return time.Duration(r.Stats.Mean * float64(time.Second))
}
