package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/turtlebench/internal/presentation/graph"
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/strategy"
)

// FixtureOptions configures the 'fixture' command.
type FixtureOptions struct {
	Variant string

	// Scenario and Strategy, when both set, render the state after that update with
	// the copied levels highlighted.
	Scenario string
	Strategy string

	Out io.Writer
}

// RunFixture prints the variant's fixture as a Mermaid graph.
func RunFixture(opts FixtureOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	variant, err := domain.LookupVariant(opts.Variant)
	if err != nil {
		return err
	}
	root := domain.NewFixture(variant.Fixture).Root()

	if opts.Scenario == "" && opts.Strategy == "" {
		fmt.Fprint(out, graph.GenerateMermaid(root, nil))
		return nil
	}
	if opts.Scenario == "" || opts.Strategy == "" {
		return fmt.Errorf("--scenario and --strategy must be used together")
	}

	sc, err := domain.LookupScenario(opts.Scenario)
	if err != nil {
		return err
	}
	strategies, err := strategy.Resolve([]string{opts.Strategy}, variant.Fixture.Cyclic)
	if err != nil {
		return err
	}
	update, err := strategies[0].For(sc)
	if err != nil {
		return err
	}

	next := update(root)
	fmt.Fprint(out, graph.GenerateMermaid(next, graph.OverlayFromDiff(domain.Diff(root, next), sc.Depth)))
	return nil
}
