package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turtlebench"
	httpAdapter "github.com/aretw0/turtlebench/internal/adapters/http"
	"github.com/aretw0/turtlebench/internal/config"
	"github.com/aretw0/turtlebench/internal/presentation/tui"
	redisAdapter "github.com/aretw0/turtlebench/pkg/adapters/redis"
	"github.com/aretw0/turtlebench/pkg/ports"
	"github.com/aretw0/turtlebench/pkg/report"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	backend "github.com/redis/go-redis/v9"
)

// RunOptions contains all the configuration for the run and check commands.
type RunOptions struct {
	// ConfigPath is an optional YAML or JSON file.
	ConfigPath string

	// Overrides are flag values, keyed like the config file, applied on top of it.
	Overrides map[string]any

	Debug bool

	// Stdout receives the report; Stderr receives system messages. Both default to
	// the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (o RunOptions) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

func (o RunOptions) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}
	return o.Stderr
}

// LoadConfig reads the config file and applies flag overrides.
func LoadConfig(path string, overrides map[string]any) (config.File, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.File{}, err
	}
	if err := cfg.Apply(overrides); err != nil {
		return config.File{}, err
	}
	return cfg, cfg.Validate()
}

// RunBench handles the 'run' command: it measures every session of the configured
// variant and reports in the configured output format.
func RunBench(ctx context.Context, opts RunOptions) error {
	cfg, err := LoadConfig(opts.ConfigPath, opts.Overrides)
	if err != nil {
		return err
	}
	variant, err := cfg.ResolveVariant()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := createLogger(opts.Debug)
	out := opts.stdout()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := report.NewCollector()
	reporter := report.Multi{
		newReporter(cfg.Output, out, logger),
		report.NewMetrics(registry),
		collector,
	}

	if cfg.Metrics.Addr != "" {
		srv, err := httpAdapter.Start(cfg.Metrics.Addr, httpAdapter.NewHandler(registry, collector, turtlebench.Version), logger)
		if err != nil {
			return err
		}
		printSystemMessage(opts.stderr(), "Serving metrics on http://%s/metrics", srv.Addr())
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				logger.Warn("metrics server shutdown failed", "error", err)
			}
		}()
	}

	harnessOpts := []turtlebench.Option{
		turtlebench.WithVariant(variant),
		turtlebench.WithBenchOptions(cfg.Bench),
		turtlebench.WithReporter(reporter),
		turtlebench.WithLogger(logger),
		turtlebench.WithRunID(runID),
	}

	if cfg.Lock.Redis != "" {
		client := backend.NewClient(&backend.Options{Addr: cfg.Lock.Redis})
		defer client.Close()
		locker := redisAdapter.NewLocker(client, cfg.Lock.Prefix, runID)
		harnessOpts = append(harnessOpts, turtlebench.WithLocker(locker, cfg.Lock.Key, cfg.Lock.TTL))
	}

	h, err := turtlebench.New(harnessOpts...)
	if err != nil {
		return err
	}

	if cfg.Output == config.OutputRich {
		tui.PrintBanner(out, turtlebench.Version)
	}

	_, err = h.Run(ctx)
	var sig os.Signal
	if sc, ok := ctx.(*SignalContext); ok {
		sig = sc.Signal()
	}
	return handleExecutionError(opts.stderr(), err, sig)
}

// newReporter selects the primary reporter for the output format.
func newReporter(output string, w io.Writer, logger *slog.Logger) ports.Reporter {
	switch output {
	case config.OutputJSON:
		return report.NewJSON(w, logger)
	case config.OutputRich:
		return report.NewMarkdown(w, tui.NewRenderer(tui.Width(os.Stdout)))
	default:
		return report.NewText(w)
	}
}
