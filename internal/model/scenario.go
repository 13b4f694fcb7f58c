package model

// ScenarioPreset is one card of the scenario carousel. Preset cards carry a
// fixed revenue range; the custom card computes its own from user inputs.
type ScenarioPreset struct {
	Key       string   `json:"key" yaml:"key"`
	Emoji     string   `json:"emoji" yaml:"emoji"`
	Title     string   `json:"title" yaml:"title"`
	Tagline   string   `json:"tagline" yaml:"tagline"`
	ADR       string   `json:"adr" yaml:"adr"`
	Occupancy string   `json:"occupancy" yaml:"occupancy"`
	RevMin    int64    `json:"rev_min" yaml:"rev_min"`
	RevMax    int64    `json:"rev_max" yaml:"rev_max"`
	Bullets   []string `json:"bullets" yaml:"bullets"`
	Custom    bool     `json:"custom,omitempty" yaml:"custom"`
}
