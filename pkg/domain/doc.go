/*
Package domain contains the core models of the turtlebench harness.

It defines the nested state being updated, the fixed fixture that every benchmark case
reads, the named scenarios and variants, and the assertion errors raised when an update
strategy misbehaves. This package is kept pure and free of I/O so strategies, the
correctness predicate and the timing harness can all depend on it.

# Key Entities

  - Node: one level of the state tree (foo, optional bar, and a turtle to the next level).
  - Arena: the fixture's nodes addressed by their stable depth identifier.
  - Scenario: which field is incremented (root or deepest level).
  - Variant: fixture shape, check mode and strategy set of one benchmark configuration.
  - AssertionViolation: identity, mutation or value failure of a named case.
*/
package domain
