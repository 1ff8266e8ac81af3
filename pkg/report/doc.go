/*
Package report provides the ports.Reporter implementations used by the CLI.

  - Text: the plain console report (scenario line, one line per case, fastest line).
  - JSON: one JSON object per event (NDJSON) for scripting.
  - Markdown: a per-session table passed through a ContentRenderer (e.g. glamour).
  - Metrics: Prometheus gauges and counters.
  - Collector: keeps completed summaries in memory for the HTTP results endpoint.

Reporters are combined with Multi.
*/
package report
