package model

import "math"

// Range is a closed numeric interval. A zero Range means "unbounded".
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

// Clamp pulls x into [Min, Max]. A zero Range returns x unchanged, except
// that NaN and ±Inf are treated as 0.
func (r Range) Clamp(x float64) float64 {
	x = finite(x)
	if r.IsZero() {
		return x
	}
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

// Mid is the midpoint rounded to the nearest whole unit (slider default).
func (r Range) Mid() float64 {
	return math.Round((r.Min + r.Max) / 2)
}
