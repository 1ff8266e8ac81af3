package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/turtlebench/pkg/bench"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/strategy"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputRich = "rich"
)

// File is the harness configuration (turtlebench.yaml).
type File struct {
	Variant    string        `yaml:"variant" json:"variant" mapstructure:"variant"`
	Strategies []string      `yaml:"strategies" json:"strategies" mapstructure:"strategies"`
	Check      string        `yaml:"check" json:"check" mapstructure:"check"`
	ForceGC    *bool         `yaml:"force_gc" json:"force_gc" mapstructure:"force_gc"`
	Output     string        `yaml:"output" json:"output" mapstructure:"output"`
	Bench      bench.Options `yaml:"bench" json:"bench" mapstructure:"bench"`
	Metrics    MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
	Lock       LockConfig    `yaml:"lock" json:"lock" mapstructure:"lock"`
}

// MetricsConfig configures the HTTP metrics endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" json:"addr" mapstructure:"addr"`
}

// LockConfig configures the cross-process run lock. An empty Redis disables it.
type LockConfig struct {
	Redis  string        `yaml:"redis" json:"redis" mapstructure:"redis"`
	Prefix string        `yaml:"prefix" json:"prefix" mapstructure:"prefix"`
	Key    string        `yaml:"key" json:"key" mapstructure:"key"`
	TTL    time.Duration `yaml:"ttl" json:"ttl" mapstructure:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Variant: domain.VariantCyclic.Name,
		Output:  OutputText,
		Bench:   bench.DefaultOptions(),
		Lock: LockConfig{
			Prefix: "turtlebench:",
			Key:    "run",
			TTL:    10 * time.Minute,
		},
	}
}

// Load reads a YAML or JSON file on top of Default and validates the result.
// An empty path returns the defaults.
func Load(path string) (File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return File{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return File{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Apply(raw); err != nil {
		return File{}, err
	}
	return cfg, cfg.Validate()
}

// Apply decodes a generic map (file contents or flag overrides) on top of f.
// Keys that are absent keep their current value.
func (f *File) Apply(values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           f,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ResolveVariant returns the selected built-in variant with overrides applied.
func (f File) ResolveVariant() (domain.Variant, error) {
	v, err := domain.LookupVariant(f.Variant)
	if err != nil {
		return domain.Variant{}, err
	}
	if len(f.Strategies) > 0 {
		v.Strategies = append([]string(nil), f.Strategies...)
	}
	if f.Check != "" {
		v.Check = domain.CheckMode(f.Check)
	}
	if f.ForceGC != nil {
		v.ForceGC = *f.ForceGC
	}
	return v, nil
}

// Validate checks that the configuration describes a runnable benchmark.
func (f File) Validate() error {
	v, err := f.ResolveVariant()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !v.Check.Valid() {
		return fmt.Errorf("%w: unknown check mode %q", ErrInvalidConfig, v.Check)
	}
	if _, err := strategy.Resolve(v.Strategies, v.Fixture.Cyclic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch f.Output {
	case OutputText, OutputJSON, OutputRich:
	default:
		return fmt.Errorf("%w: unknown output %q", ErrInvalidConfig, f.Output)
	}

	if f.Bench.MinSamples < 1 {
		return fmt.Errorf("%w: bench.min_samples must be at least 1", ErrInvalidConfig)
	}
	if f.Bench.MinSampleTime <= 0 || f.Bench.MaxTime <= 0 {
		return fmt.Errorf("%w: bench durations must be positive", ErrInvalidConfig)
	}
	if f.Lock.Redis != "" && f.Lock.TTL <= 0 {
		return fmt.Errorf("%w: lock.ttl must be positive", ErrInvalidConfig)
	}
	return nil
}
