package bench

import "time"

// Options controls how long each case is measured.
type Options struct {
	// MinSamples is the minimum number of samples per case.
	MinSamples int `json:"min_samples" mapstructure:"min_samples"`

	// MinSampleTime is the minimum duration of one sample; calibration grows the
	// iteration count until a sample takes at least this long.
	MinSampleTime time.Duration `json:"min_sample_time" mapstructure:"min_sample_time"`

	// MaxTime is the sampling budget per case. Sampling continues past it only to
	// reach MinSamples.
	MaxTime time.Duration `json:"max_time" mapstructure:"max_time"`
}

// DefaultOptions mirrors common JS harness defaults, scaled down for a CLI run.
func DefaultOptions() Options {
	return Options{
		MinSamples:    5,
		MinSampleTime: 50 * time.Millisecond,
		MaxTime:       time.Second,
	}
}

// Option defines a functional option for configuring a Suite.
type Option func(*Suite)

// WithOptions replaces the measurement options. Zero fields keep their defaults.
func WithOptions(o Options) Option {
	return func(s *Suite) {
		if o.MinSamples > 0 {
			s.opts.MinSamples = o.MinSamples
		}
		if o.MinSampleTime > 0 {
			s.opts.MinSampleTime = o.MinSampleTime
		}
		if o.MaxTime > 0 {
			s.opts.MaxTime = o.MaxTime
		}
	}
}

// WithGC registers a collection hook invoked once before the first case runs.
func WithGC(gc func()) Option {
	return func(s *Suite) {
		s.gc = gc
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Suite) {
		s.now = now
	}
}
