package data

import (
	_ "embed"
	"fmt"

	"hostel-franchise/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios.yaml
var embeddedScenarios []byte

type scenarioFile struct {
	Scenarios []model.ScenarioPreset `yaml:"scenarios"`
}

// Scenarios returns the preset scenario cards in carousel order.
func Scenarios() ([]model.ScenarioPreset, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(embeddedScenarios, &f); err != nil {
		return nil, fmt.Errorf("embedded scenarios.yaml: %w", err)
	}
	return f.Scenarios, nil
}
