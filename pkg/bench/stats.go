package bench

import (
	"math"

	"golang.org/x/perf/benchmath"
)

// confidence is the level of the interval reported as the margin of error.
const confidence = 0.95

// Stats summarizes per-operation times in seconds.
type Stats struct {
	Mean      float64 `json:"mean"`
	Deviation float64 `json:"deviation"`
	SEM       float64 `json:"sem"`
	MOE       float64 `json:"moe"`
	RME       float64 `json:"rme"`
}

// summarize computes the mean and its Student-t confidence interval.
// A single sample has no spread, so its margin of error is zero.
func summarize(samples []float64) Stats {
	n := len(samples)
	if n == 0 {
		return Stats{}
	}

	// NewSample sorts in place; keep the caller's order.
	sample := benchmath.NewSample(append([]float64(nil), samples...), &benchmath.DefaultThresholds)
	summary := benchmath.AssumeNormal.Summary(sample, confidence)

	mean := summary.Center
	if n == 1 {
		return Stats{Mean: mean}
	}

	var variance float64
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	sd := math.Sqrt(variance)

	moe := (summary.Hi - summary.Lo) / 2
	if math.IsNaN(moe) || math.IsInf(moe, 0) {
		moe = 0
	}

	var rme float64
	if mean > 0 {
		rme = moe / mean * 100
	}

	return Stats{
		Mean:      mean,
		Deviation: sd,
		SEM:       sd / math.Sqrt(float64(n)),
		MOE:       moe,
		RME:       rme,
	}
}
