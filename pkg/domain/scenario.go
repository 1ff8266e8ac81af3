package domain

import "fmt"

// Scenario is one measurement session: which level's foo gets incremented.
type Scenario struct {
	Key   string
	Name  string
	Depth int
}

var (
	ScenarioShallow = Scenario{Key: "shallow", Name: "set property", Depth: 0}
	ScenarioDeep    = Scenario{Key: "deep", Name: "set deep property", Depth: DeepLevel}
)

// Scenarios returns the scenarios in the order they are run.
func Scenarios() []Scenario {
	return []Scenario{ScenarioShallow, ScenarioDeep}
}

// LookupScenario finds a scenario by key.
func LookupScenario(key string) (Scenario, error) {
	for _, s := range Scenarios() {
		if s.Key == key {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", key)
}

// CaseName is the label of one strategy inside a scenario, e.g. "set property (draft)".
func CaseName(scenario Scenario, strategy string) string {
	return fmt.Sprintf("%s (%s)", scenario.Name, strategy)
}
