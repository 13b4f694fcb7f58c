package estimator

import (
	"math"

	"hostel-franchise/internal/model"

	"github.com/shopspring/decimal"
)

// Band factors for the preset-style display range. These are presentation
// choices, not a modelled uncertainty.
const (
	BandLowFactor  = 0.92
	BandHighFactor = 1.08

	DefaultPeriodDays = model.DefaultPeriodDays
)

var (
	bandLow  = decimal.NewFromFloat(BandLowFactor)
	bandHigh = decimal.NewFromFloat(BandHighFactor)
	maxTotal = decimal.NewFromInt(math.MaxInt64)
)

// Estimate computes units x rate x occupancy x days for the clamped assumptions.
// It never fails: zero inventory or rate yields 0.
func Estimate(a model.RateAssumptions) model.RevenueEstimate {
	a = a.Clamp()
	total := decimal.NewFromInt(int64(a.InventoryUnits)).
		Mul(decimal.NewFromFloat(a.AverageDailyRate)).
		Mul(decimal.NewFromFloat(a.OccupancyFraction)).
		Mul(decimal.NewFromInt(int64(a.PeriodDays)))

	return model.RevenueEstimate{
		Assumptions: a,
		TotalAmount: total.InexactFloat64(),
		Rounded:     saturate(total.Round(0)),
	}
}

// EstimateBand is Estimate plus the ±8% display band around the rounded total.
func EstimateBand(a model.RateAssumptions) model.RevenueEstimate {
	est := Estimate(a)
	b := BandFor(est.Rounded)
	est.Band = &b
	return est
}

// BandFor returns [round(total*0.92), round(total*1.08)].
func BandFor(total int64) model.Band {
	t := decimal.NewFromInt(total)
	return model.Band{
		Low:  saturate(t.Mul(bandLow).Round(0)),
		High: saturate(t.Mul(bandHigh).Round(0)),
	}
}

// saturate converts a whole, non-negative amount to int64, capping at MaxInt64.
func saturate(d decimal.Decimal) int64 {
	if d.Sign() <= 0 {
		return 0
	}
	if d.GreaterThan(maxTotal) {
		return math.MaxInt64
	}
	return d.IntPart()
}

// Monthly is the common "beds at ADR and occupancy percent over 30 nights" shortcut.
func Monthly(beds int, adr, occupancyPct float64) int64 {
	return Estimate(model.RateAssumptions{
		InventoryUnits:    beds,
		AverageDailyRate:  adr,
		OccupancyFraction: occupancyPct / 100,
		PeriodDays:        DefaultPeriodDays,
	}).Rounded
}
