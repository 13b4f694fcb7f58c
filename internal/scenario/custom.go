package scenario

import (
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/estimator"
	"hostel-franchise/internal/model"
)

// CustomScenario computes a ±8% band from user-supplied beds, ADR and
// occupancy, clamped to Bounds.
type CustomScenario struct {
	Preset model.ScenarioPreset
	Bounds model.Bounds
}

func (s *CustomScenario) Key() string { return s.Preset.Key }

func (s *CustomScenario) Card(in model.CalculatorInputs) Card {
	a := in.ToAssumptions(s.Bounds)
	est := estimator.EstimateBand(a)
	return Card{
		Key:     s.Preset.Key,
		Preset:  s.Preset,
		Low:     est.Band.Low,
		High:    est.Band.High,
		Display: currency.FormatRange(est.Band.Low, est.Band.High),
		INR:     currency.FormatLakh(float64(est.Rounded)),
		Custom:  true,
		Inputs:  &est.Assumptions,
		Point:   est.Rounded,
	}
}
