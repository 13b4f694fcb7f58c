package model

import (
	"math"
	"testing"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in   string
		want Range
	}{
		{"฿460–520", Range{460, 520}},
		{"฿460-700", Range{460, 700}},
		{"Occ: 30–60%", Range{30, 60}},
		{"฿380", Range{380, 380}},
		{"Inputs: Beds, ADR", Range{}},
		{"", Range{}},
	}
	for _, tc := range cases {
		if got := ParseRange(tc.in); got != tc.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestCityDefaults(t *testing.T) {
	c := City{ADR: "฿280–330", Occupancy: "Occ: 30–60%"}
	if got := c.DefaultADR(); got != 305 {
		t.Errorf("DefaultADR = %v, want 305", got)
	}
	// (30+60)/2 = 45
	if got := c.DefaultOccupancyPct(); got != 45 {
		t.Errorf("DefaultOccupancyPct = %v, want 45", got)
	}

	c = City{ADR: "฿370–390", Occupancy: "Occ: 65–80%"}
	// 72.5 rounds half away from zero
	if got := c.DefaultOccupancyPct(); got != 73 {
		t.Errorf("DefaultOccupancyPct = %v, want 73", got)
	}
}

func TestPriceNote(t *testing.T) {
	if got := (City{ADR: "฿380"}).PriceNote(); got != "Average ADR: ~฿380 per night" {
		t.Errorf("PriceNote = %q", got)
	}
	if got := (City{ADR: "฿460–520"}).PriceNote(); got != "Average ADR: ~฿460–520 per night" {
		t.Errorf("PriceNote = %q", got)
	}
}

func TestRateAssumptionsClamp(t *testing.T) {
	a := RateAssumptions{InventoryUnits: -4, AverageDailyRate: -1, OccupancyFraction: 1.7, PeriodDays: -30}.Clamp()
	want := RateAssumptions{InventoryUnits: 0, AverageDailyRate: 0, OccupancyFraction: 1, PeriodDays: 0}
	if a != want {
		t.Fatalf("Clamp = %+v, want %+v", a, want)
	}
	if got := (RateAssumptions{OccupancyFraction: -0.2}).Clamp().OccupancyFraction; got != 0 {
		t.Errorf("OccupancyFraction = %v, want 0", got)
	}
}

func TestRateAssumptionsValidate(t *testing.T) {
	ok := RateAssumptions{InventoryUnits: 120, AverageDailyRate: 460, OccupancyFraction: 0.7, PeriodDays: 30}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []RateAssumptions{
		{InventoryUnits: 0, AverageDailyRate: 460, OccupancyFraction: 0.7, PeriodDays: 30},
		{InventoryUnits: 1, AverageDailyRate: -1, OccupancyFraction: 0.7, PeriodDays: 30},
		{InventoryUnits: 1, AverageDailyRate: 460, OccupancyFraction: 1.2, PeriodDays: 30},
		{InventoryUnits: 1, AverageDailyRate: 460, OccupancyFraction: 0.7, PeriodDays: 0},
	}
	for i, a := range bad {
		if err := a.Validate(); err == nil {
			t.Errorf("case %d: expected error for %+v", i, a)
		}
	}
}

func TestToAssumptionsCarousel(t *testing.T) {
	city := City{ADR: "฿460-700", Occupancy: "Occ: 75–85%"}
	in := CalculatorInputs{Rooms: 20, BedsPerRoom: 6, ADR: 900, OccupancyPct: 50}
	a := in.ToAssumptions(CarouselBounds(city))

	if a.InventoryUnits != 120 {
		t.Errorf("InventoryUnits = %d, want 120", a.InventoryUnits)
	}
	if a.AverageDailyRate != 700 {
		t.Errorf("AverageDailyRate = %v, want 700 (clamped to city max)", a.AverageDailyRate)
	}
	if a.OccupancyFraction != 0.75 {
		t.Errorf("OccupancyFraction = %v, want 0.75 (clamped to city min)", a.OccupancyFraction)
	}
	if a.PeriodDays != DefaultPeriodDays {
		t.Errorf("PeriodDays = %d, want %d", a.PeriodDays, DefaultPeriodDays)
	}
}

func TestToAssumptionsRoomsAtLeastOne(t *testing.T) {
	in := CalculatorInputs{Rooms: 0, BedsPerRoom: -2, ADR: 460, OccupancyPct: 70}
	a := in.ToAssumptions(Bounds{MinRooms: 1, MinBedsPerRoom: 1})
	if a.InventoryUnits != 1 {
		t.Errorf("InventoryUnits = %d, want 1", a.InventoryUnits)
	}
}

func TestToAssumptionsCustom(t *testing.T) {
	days := 31
	cases := []struct {
		name string
		in   CalculatorInputs
		want RateAssumptions
	}{
		{
			name: "within bounds",
			in:   CalculatorInputs{Beds: 60, ADR: 460, OccupancyPct: 70},
			want: RateAssumptions{InventoryUnits: 60, AverageDailyRate: 460, OccupancyFraction: 0.7, PeriodDays: 30},
		},
		{
			name: "clamped high",
			in:   CalculatorInputs{Beds: 500, ADR: 5000, OccupancyPct: 100},
			want: RateAssumptions{InventoryUnits: 200, AverageDailyRate: 1200, OccupancyFraction: 0.95, PeriodDays: 30},
		},
		{
			name: "clamped low with explicit days",
			in:   CalculatorInputs{Beds: 2, ADR: 10, OccupancyPct: 5, PeriodDays: &days},
			want: RateAssumptions{InventoryUnits: 10, AverageDailyRate: 150, OccupancyFraction: 0.2, PeriodDays: 31},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.ToAssumptions(CustomBounds); got != tc.want {
				t.Errorf("ToAssumptions = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestTotalBedsSaturates(t *testing.T) {
	in := CalculatorInputs{Rooms: 3_000_000_000, BedsPerRoom: 4_000_000_000}
	if got := in.ToAssumptions(Bounds{}).InventoryUnits; got != math.MaxInt {
		t.Errorf("InventoryUnits = %d, want MaxInt", got)
	}
	in = CalculatorInputs{Rooms: math.MaxInt, BedsPerRoom: 2}
	if got := in.TotalBeds(Bounds{}); got != math.MaxInt {
		t.Errorf("TotalBeds = %d, want MaxInt", got)
	}
}

func TestClampNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		a := RateAssumptions{InventoryUnits: 10, AverageDailyRate: x, OccupancyFraction: x, PeriodDays: 30}.Clamp()
		if a.AverageDailyRate != 0 || a.OccupancyFraction != 0 {
			t.Errorf("Clamp(%v) = %+v, want zero rate and occupancy", x, a)
		}
		if got := (Range{}).Clamp(x); got != 0 {
			t.Errorf("zero Range.Clamp(%v) = %v, want 0", x, got)
		}
		if got := (Range{Min: 150, Max: 1200}).Clamp(x); got != 150 {
			t.Errorf("Range.Clamp(%v) = %v, want 150", x, got)
		}
	}
}
