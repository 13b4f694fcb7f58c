package model

import (
	"errors"
	"math"
)

// RateAssumptions defines the inputs of a single revenue calculation.
// Units:
// - InventoryUnits: sellable beds (rooms x beds per room)
// - AverageDailyRate: THB per occupied bed per night
// - OccupancyFraction: fraction 0..1
// - PeriodDays: nights in the period (30 for a month)
type RateAssumptions struct {
	InventoryUnits    int     `json:"inventory_units" yaml:"inventory_units"`
	AverageDailyRate  float64 `json:"average_daily_rate" yaml:"average_daily_rate"`
	OccupancyFraction float64 `json:"occupancy_fraction" yaml:"occupancy_fraction"`
	PeriodDays        int     `json:"period_days" yaml:"period_days"`
}

// Clamp returns a copy with every field pulled into its valid domain.
// Negative counts and rates become 0; occupancy is clamped to [0,1].
// NaN and ±Inf become 0.
func (a RateAssumptions) Clamp() RateAssumptions {
	out := a
	if out.InventoryUnits < 0 {
		out.InventoryUnits = 0
	}
	out.AverageDailyRate = finite(out.AverageDailyRate)
	if out.AverageDailyRate < 0 {
		out.AverageDailyRate = 0
	}
	out.OccupancyFraction = clamp01(out.OccupancyFraction)
	if out.PeriodDays < 0 {
		out.PeriodDays = 0
	}
	return out
}

// Validate reports the first field outside its domain. The estimator never
// calls this (it clamps instead); config loading does.
func (a RateAssumptions) Validate() error {
	if a.InventoryUnits < 1 {
		return errors.New("InventoryUnits must be >= 1")
	}
	if a.AverageDailyRate < 0 {
		return errors.New("AverageDailyRate must be >= 0")
	}
	if a.OccupancyFraction < 0 || a.OccupancyFraction > 1 {
		return errors.New("OccupancyFraction must be in [0, 1]")
	}
	if a.PeriodDays < 1 {
		return errors.New("PeriodDays must be >= 1")
	}
	return nil
}

func clamp01(x float64) float64 {
	x = finite(x)
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// finite maps NaN and ±Inf to 0.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
