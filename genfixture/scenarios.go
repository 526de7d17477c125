package genfixture

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// ScenarioSpec is one of spec.md §8's named fixed-shape graphs (S1-S6):
// a small graph plus the verdict a correct recognizer must produce for it.
type ScenarioSpec struct {
	Description string   `yaml:"description"`
	N           int      `yaml:"n"`
	Edges       [][2]int `yaml:"edges"`
	ExpectSP    bool     `yaml:"expectSP"`
	ExpectKind  string   `yaml:"expectKind"`
}

var namedScenarios map[string]ScenarioSpec

func init() {
	namedScenarios = make(map[string]ScenarioSpec)
	if err := yaml.Unmarshal(scenariosYAML, &namedScenarios); err != nil {
		panic(fmt.Errorf("genfixture: embedded scenarios.yaml is malformed: %w", err))
	}
}

// NamedScenarios returns spec.md §8's S1-S6 fixtures, keyed by name. The
// returned map is a fresh copy per call; callers may mutate it freely.
func NamedScenarios() map[string]ScenarioSpec {
	out := make(map[string]ScenarioSpec, len(namedScenarios))
	for k, v := range namedScenarios {
		out[k] = v
	}
	return out
}

// Scenario looks up a single named scenario by name.
func Scenario(name string) (ScenarioSpec, error) {
	s, ok := namedScenarios[name]
	if !ok {
		return ScenarioSpec{}, fmt.Errorf("genfixture.Scenario: %q: %w", name, ErrUnknownScenario)
	}
	return s, nil
}
