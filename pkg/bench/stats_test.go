package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	samples := []float64{5, 1, 4, 2, 3}
	got := summarize(samples)

	assert.InDelta(t, 3, got.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), got.Deviation, 1e-12)
	assert.InDelta(t, math.Sqrt(2.5)/math.Sqrt(5), got.SEM, 1e-12)
	// t(0.975, df=4) = 2.776
	assert.InDelta(t, got.SEM*2.776, got.MOE, 1e-3)
	assert.InDelta(t, got.MOE/3*100, got.RME, 1e-9)
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, samples, "input order is preserved")
}

func TestSummarize_LargeSample(t *testing.T) {
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = float64(i%2) + 1
	}
	got := summarize(samples)

	assert.InDelta(t, 1.5, got.Mean, 1e-12)
	// approaches the normal critical value
	assert.InDelta(t, got.SEM*1.972, got.MOE, 1e-3)
}

func TestSummarize_Degenerate(t *testing.T) {
	assert.Equal(t, Stats{}, summarize(nil))

	single := summarize([]float64{0.5})
	assert.Equal(t, 0.5, single.Mean)
	assert.Zero(t, single.MOE)
	assert.Zero(t, single.RME)

	flat := summarize([]float64{2, 2, 2})
	assert.Equal(t, 2.0, flat.Mean)
	assert.Zero(t, flat.MOE)
	assert.Zero(t, flat.RME)
}
