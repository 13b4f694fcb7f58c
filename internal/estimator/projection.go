package estimator

import (
	"hostel-franchise/internal/model"
)

// ProjectionRow is one city's monthly revenue at the edges and midpoint of
// its published ADR and occupancy ranges.
// This is the primary artifact of an export.
type ProjectionRow struct {
	Index int

	CityID   string
	CityName string
	Type     model.CityType

	Beds int

	ADRMin float64
	ADRMax float64
	ADRMid float64

	OccMinPct float64
	OccMaxPct float64
	OccMidPct float64

	RevenueLow  int64
	RevenueMid  int64
	RevenueHigh int64

	BandLow  int64
	BandHigh int64
}

// ProjectionInputs holds the shared inventory used for every city.
type ProjectionInputs struct {
	Rooms       int
	BedsPerRoom int
}

// Beds returns Rooms x BedsPerRoom with each factor held at >= 1.
func (p ProjectionInputs) Beds() int {
	return model.CalculatorInputs{Rooms: p.Rooms, BedsPerRoom: p.BedsPerRoom}.
		TotalBeds(model.Bounds{MinRooms: 1, MinBedsPerRoom: 1})
}

// Project builds one row per city, in input order.
func Project(cities []model.City, in ProjectionInputs) []ProjectionRow {
	beds := in.Beds()
	rows := make([]ProjectionRow, 0, len(cities))
	for idx, c := range cities {
		adr := c.ADRRange()
		occ := c.OccupancyRange()
		mid := Monthly(beds, c.DefaultADR(), c.DefaultOccupancyPct())
		band := BandFor(mid)

		rows = append(rows, ProjectionRow{
			Index: idx,

			CityID:   c.ID,
			CityName: c.Name,
			Type:     c.Type,

			Beds: beds,

			ADRMin: adr.Min,
			ADRMax: adr.Max,
			ADRMid: c.DefaultADR(),

			OccMinPct: occ.Min,
			OccMaxPct: occ.Max,
			OccMidPct: c.DefaultOccupancyPct(),

			RevenueLow:  Monthly(beds, adr.Min, occ.Min),
			RevenueMid:  mid,
			RevenueHigh: Monthly(beds, adr.Max, occ.Max),

			BandLow:  band.Low,
			BandHigh: band.High,
		})
	}
	return rows
}
