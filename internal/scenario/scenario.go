package scenario

import (
	"fmt"

	"hostel-franchise/internal/model"
)

// Card is what a scenario slide displays.
type Card struct {
	Key     string                 `json:"key"`
	Preset  model.ScenarioPreset   `json:"preset"`
	Low     int64                  `json:"low"`
	High    int64                  `json:"high"`
	Display string                 `json:"display"`
	INR     string                 `json:"inr"`
	Custom  bool                   `json:"custom"`
	Inputs  *model.RateAssumptions `json:"inputs,omitempty"`
	Point   int64                  `json:"point,omitempty"`
}

type Scenario interface {
	Key() string
	Card(in model.CalculatorInputs) Card
}

// DefaultCustomInputs are the starting values of the custom card.
var DefaultCustomInputs = model.CalculatorInputs{Beds: 60, ADR: 460, OccupancyPct: 70}

// Build turns presets into scenarios, keeping carousel order.
func Build(presets []model.ScenarioPreset) []Scenario {
	out := make([]Scenario, 0, len(presets))
	for _, p := range presets {
		if p.Custom {
			out = append(out, &CustomScenario{Preset: p, Bounds: model.CustomBounds})
			continue
		}
		out = append(out, &StaticScenario{Preset: p})
	}
	return out
}

func Lookup(all []Scenario, key string) (Scenario, error) {
	for _, s := range all {
		if s.Key() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scenario: %q", key)
}
