package analysis

import (
	"hostel-franchise/internal/estimator"
	"hostel-franchise/internal/model"
)

// CityPotential is a city-level summary you can use for ranking.
// Revenues are monthly THB for a fixed bed count at the low end, slider
// default (midpoint) and high end of the city's published ranges.
type CityPotential struct {
	CityID string
	Name   string
	Type   model.CityType

	Beds int

	ADR       model.Range
	Occupancy model.Range

	RevenueLow  int64
	RevenueMid  int64
	RevenueHigh int64

	// Band is the ±8% display range around RevenueMid.
	Band model.Band
}

func ComputePotential(c model.City, beds int) CityPotential {
	adr := c.ADRRange()
	occ := c.OccupancyRange()
	mid := estimator.Monthly(beds, c.DefaultADR(), c.DefaultOccupancyPct())
	return CityPotential{
		CityID:      c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Beds:        beds,
		ADR:         adr,
		Occupancy:   occ,
		RevenueLow:  estimator.Monthly(beds, adr.Min, occ.Min),
		RevenueMid:  mid,
		RevenueHigh: estimator.Monthly(beds, adr.Max, occ.Max),
		Band:        estimator.BandFor(mid),
	}
}

// Spread is RevenueHigh - RevenueLow: how much the published ranges leave open.
func (p CityPotential) Spread() int64 {
	return p.RevenueHigh - p.RevenueLow
}
