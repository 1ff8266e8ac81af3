/*
Package turtlebench measures how fast different immutable-update strategies produce a
modified copy of a deeply nested, optionally self-referencing state.

The state is a chain of ten "turtles" (see pkg/domain). Each level holds a numeric foo,
an optional bar and a pointer to the next level. In the cyclic variant the deepest
turtle points back at the root. Strategies that do not declare cycle support are kept
off the cyclic variant by the harness; manual is one of them, even though it copies a
fixed number of levels and would terminate.

# Strategies

  - optics: composed lenses that copy only the levels on the path (pkg/optics).
  - draft: a copy-on-write proxy that materializes touched levels (pkg/draft).
  - manual: explicit per-level copies, offered for acyclic state only.

# Sessions

Every run executes two sessions, one per scenario: "set property" increments foo on the
root and "set deep property" increments foo nine levels down. Each case is wrapped by the
correctness predicate (pkg/check) and timed by the suite (pkg/bench). A violation aborts
the run with a *domain.AssertionViolation.

# Usage

	h, err := turtlebench.New(
		turtlebench.WithVariant(domain.VariantAcyclic),
		turtlebench.WithReporter(report.NewText(os.Stdout)),
	)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := h.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package turtlebench
