package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addRunFlags registers the measurement flags on cmd.
func addRunFlags(flags *pflag.FlagSet) {
	flags.StringSlice("strategies", nil, "Strategies to compare (optics, draft, manual)")
	flags.String("check", "", "Check mode: full, relaxed or none")
	flags.Bool("gc", false, "Force a garbage collection before each session")
	flags.Bool("json", false, "Emit NDJSON events instead of the text report")
	flags.Bool("rich", false, "Render a markdown report in the terminal")
	flags.Int("min-samples", 0, "Minimum samples per case")
	flags.Duration("min-sample-time", 0, "Minimum duration of one sample")
	flags.Duration("max-time", 0, "Sampling budget per case")
	flags.String("metrics-addr", "", "Serve /metrics, /results and /healthz on this address during the run")
	flags.String("lock-redis", "", "Redis address used to serialize runs sharing a host")
}

// overrides collects the flags the user set, keyed like the config file, so they
// take precedence over it.
func overrides(cmd *cobra.Command) map[string]any {
	flags := cmd.Flags()
	out := map[string]any{}
	bench := map[string]any{}

	if flags.Changed("variant") {
		out["variant"], _ = flags.GetString("variant")
	}
	if flags.Lookup("strategies") == nil {
		return out
	}

	if flags.Changed("strategies") {
		out["strategies"], _ = flags.GetStringSlice("strategies")
	}
	if flags.Changed("check") {
		out["check"], _ = flags.GetString("check")
	}
	if flags.Changed("gc") {
		out["force_gc"], _ = flags.GetBool("gc")
	}
	if rich, _ := flags.GetBool("rich"); rich {
		out["output"] = "rich"
	}
	if jsonMode, _ := flags.GetBool("json"); jsonMode {
		out["output"] = "json"
	}
	if flags.Changed("min-samples") {
		bench["min_samples"], _ = flags.GetInt("min-samples")
	}
	if flags.Changed("min-sample-time") {
		bench["min_sample_time"], _ = flags.GetDuration("min-sample-time")
	}
	if flags.Changed("max-time") {
		bench["max_time"], _ = flags.GetDuration("max-time")
	}
	if len(bench) > 0 {
		out["bench"] = bench
	}
	if flags.Changed("metrics-addr") {
		addr, _ := flags.GetString("metrics-addr")
		out["metrics"] = map[string]any{"addr": addr}
	}
	if flags.Changed("lock-redis") {
		addr, _ := flags.GetString("lock-redis")
		out["lock"] = map[string]any{"redis": addr}
	}
	return out
}
