package model

import (
	"regexp"
	"strconv"
)

// CityType groups cities for the map filter and marker colour.
// Keep these values stable; they are part of the API.
type CityType string

const (
	CityUrban    CityType = "urban"
	CityIsland   CityType = "island"
	CityWellness CityType = "wellness"
)

func (t CityType) Valid() bool {
	switch t {
	case CityUrban, CityIsland, CityWellness:
		return true
	default:
		return false
	}
}

// City is one row of the static location profile table.
// ADR and Occupancy are the published text ranges ("฿460–520", "Occ: 75–85%").
type City struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Type      CityType `json:"type" yaml:"type"`
	Lat       float64  `json:"lat" yaml:"lat"`
	Lng       float64  `json:"lng" yaml:"lng"`
	Tagline   string   `json:"tagline" yaml:"tagline"`
	Headline  string   `json:"headline" yaml:"headline"`
	Areas     string   `json:"areas" yaml:"areas"`
	ADR       string   `json:"adr" yaml:"adr"`
	Occupancy string   `json:"occupancy" yaml:"occupancy"`
	Featured  bool     `json:"featured" yaml:"featured"`
	Bullets   []string `json:"bullets" yaml:"bullets"`
}

func (c City) ADRRange() Range       { return ParseRange(c.ADR) }
func (c City) OccupancyRange() Range { return ParseRange(c.Occupancy) }

// DefaultADR is the slider starting position: the rounded midpoint of the ADR range.
func (c City) DefaultADR() float64 { return c.ADRRange().Mid() }

// DefaultOccupancyPct is the rounded midpoint of the occupancy range, in percent.
func (c City) DefaultOccupancyPct() float64 { return c.OccupancyRange().Mid() }

// PriceNote renders the card price line, e.g. "Average ADR: ~฿460–520 per night".
func (c City) PriceNote() string {
	r := c.ADRRange()
	if r.Min == r.Max {
		return "Average ADR: ~฿" + strconv.Itoa(int(r.Min)) + " per night"
	}
	return "Average ADR: ~฿" + strconv.Itoa(int(r.Min)) + "–" + strconv.Itoa(int(r.Max)) + " per night"
}

var digitsRE = regexp.MustCompile(`\d+`)

// ParseRange reads the first two integers from a display string.
// "฿280–330" -> [280,330]; "฿380" -> [380,380]; no digits -> [0,0].
func ParseRange(s string) Range {
	m := digitsRE.FindAllString(s, 2)
	switch len(m) {
	case 0:
		return Range{}
	case 1:
		n, _ := strconv.Atoi(m[0])
		return Range{Min: float64(n), Max: float64(n)}
	default:
		lo, _ := strconv.Atoi(m[0])
		hi, _ := strconv.Atoi(m[1])
		return Range{Min: float64(lo), Max: float64(hi)}
	}
}
