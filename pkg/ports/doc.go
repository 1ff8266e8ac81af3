/*
Package ports defines the driven ports (interfaces) of the turtlebench harness.

These interfaces decouple the measurement loop from where results go and from how runs
on a shared host are kept apart.

# Key Interfaces

  - Reporter: Receives session lifecycle events (text, NDJSON, metrics, markdown).
  - RunLocker: Provides a cross-process lock so only one run measures at a time.
*/
package ports
