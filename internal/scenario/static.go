package scenario

import (
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/model"
)

// StaticScenario shows a fixed, pre-researched monthly revenue range.
type StaticScenario struct {
	Preset model.ScenarioPreset
}

func (s *StaticScenario) Key() string { return s.Preset.Key }

// Card ignores the inputs; preset ranges do not react to the form.
func (s *StaticScenario) Card(model.CalculatorInputs) Card {
	return Card{
		Key:     s.Preset.Key,
		Preset:  s.Preset,
		Low:     s.Preset.RevMin,
		High:    s.Preset.RevMax,
		Display: currency.FormatRange(s.Preset.RevMin, s.Preset.RevMax),
		INR:     currency.FormatLakhRange(s.Preset.RevMin, s.Preset.RevMax),
	}
}
