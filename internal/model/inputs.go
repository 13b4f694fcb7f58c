package model

import "math"

// CalculatorInputs is the raw shape of the calculator form.
//
// Beds, when non-zero, is used directly (custom scenario card); otherwise the
// inventory is Rooms x BedsPerRoom (city carousel). OccupancyPct is 0..100.
type CalculatorInputs struct {
	Rooms        int     `json:"rooms,omitempty" yaml:"rooms"`
	BedsPerRoom  int     `json:"beds_per_room,omitempty" yaml:"beds_per_room"`
	Beds         int     `json:"beds,omitempty" yaml:"beds"`
	ADR          float64 `json:"adr" yaml:"adr"`
	OccupancyPct float64 `json:"occupancy_pct" yaml:"occupancy_pct"`
	PeriodDays   *int    `json:"period_days,omitempty" yaml:"period_days"`
}

// Bounds are the UI clamps applied before estimation. Zero fields are not enforced.
type Bounds struct {
	MinRooms       int   `json:"min_rooms" yaml:"min_rooms"`
	MinBedsPerRoom int   `json:"min_beds_per_room" yaml:"min_beds_per_room"`
	MinBeds        int   `json:"min_beds" yaml:"min_beds"`
	MaxBeds        int   `json:"max_beds" yaml:"max_beds"`
	ADR            Range `json:"adr" yaml:"adr"`
	OccupancyPct   Range `json:"occupancy_pct" yaml:"occupancy_pct"`
}

// DefaultPeriodDays is the month length assumed by every card.
const DefaultPeriodDays = 30

// CustomBounds are the clamps of the free-input scenario card.
var CustomBounds = Bounds{
	MinBeds:      10,
	MaxBeds:      200,
	ADR:          Range{Min: 150, Max: 1200},
	OccupancyPct: Range{Min: 20, Max: 95},
}

// CarouselBounds returns the clamps for a city slide: at least one room and one
// bed per room, with ADR and occupancy held inside the city's published ranges.
func CarouselBounds(c City) Bounds {
	return Bounds{
		MinRooms:       1,
		MinBedsPerRoom: 1,
		ADR:            c.ADRRange(),
		OccupancyPct:   c.OccupancyRange(),
	}
}

// TotalBeds resolves the inventory from either Beds or Rooms x BedsPerRoom.
func (in CalculatorInputs) TotalBeds(b Bounds) int {
	if in.Beds != 0 {
		beds := in.Beds
		if b.MinBeds > 0 && beds < b.MinBeds {
			beds = b.MinBeds
		}
		if b.MaxBeds > 0 && beds > b.MaxBeds {
			beds = b.MaxBeds
		}
		if beds < 0 {
			beds = 0
		}
		return beds
	}
	rooms := atLeast(in.Rooms, b.MinRooms)
	perRoom := atLeast(in.BedsPerRoom, b.MinBedsPerRoom)
	if perRoom != 0 && rooms > math.MaxInt/perRoom {
		return math.MaxInt
	}
	return rooms * perRoom
}

// ToAssumptions clamps the form values and converts them into RateAssumptions.
// Occupancy is converted from percent to a fraction; PeriodDays defaults to 30.
func (in CalculatorInputs) ToAssumptions(b Bounds) RateAssumptions {
	days := DefaultPeriodDays
	if in.PeriodDays != nil {
		days = *in.PeriodDays
	}
	a := RateAssumptions{
		InventoryUnits:    in.TotalBeds(b),
		AverageDailyRate:  b.ADR.Clamp(in.ADR),
		OccupancyFraction: b.OccupancyPct.Clamp(in.OccupancyPct) / 100,
		PeriodDays:        days,
	}
	return a.Clamp()
}

func atLeast(v, min int) int {
	if v < min {
		return min
	}
	if v < 0 {
		return 0
	}
	return v
}
