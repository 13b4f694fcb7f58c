// Package browser keeps the map markers and the city card list pointing at the
// same selection. Rendering and panning belong to the map client.
package browser

import (
	"fmt"
	"strings"

	"hostel-franchise/internal/data"
	"hostel-franchise/internal/model"
)

// Filter narrows the card list. Markers are never filtered.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterUrban    Filter = Filter(model.CityUrban)
	FilterIsland   Filter = Filter(model.CityIsland)
	FilterWellness Filter = Filter(model.CityWellness)
)

// Filters lists the filter buttons in display order.
var Filters = []Filter{FilterAll, FilterUrban, FilterIsland, FilterWellness}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter: %q", s)
}

// Label is the button text: "All", "Urban", ...
func (f Filter) Label() string {
	if f == "" {
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

const DefaultSelected = "phuket"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

var (
	// MapCenter and MapZoom frame the whole of Thailand.
	MapCenter = LatLng{Lat: 15.87, Lng: 100.9925}
	MapZoom   = 5.2
	// FocusZoom is used when panning to a selected city.
	FocusZoom = 6.0
)

// MarkerColors by city type.
var MarkerColors = map[model.CityType]string{
	model.CityUrban:    "#ff5a1f",
	model.CityIsland:   "#0ea5e9",
	model.CityWellness: "#10b981",
}

type Marker struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Color  string  `json:"color"`
	Active bool    `json:"active"`
}

type CityCard struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     model.CityType `json:"type"`
	Headline string         `json:"headline"`
	Areas    string         `json:"areas"`
	Price    string         `json:"price"`
	Bullets  []string       `json:"bullets"`
	Active   bool           `json:"active"`
}

// View is everything the map/list section needs for one render.
type View struct {
	Center    LatLng     `json:"center"`
	Zoom      float64    `json:"zoom"`
	PanTo     LatLng     `json:"pan_to"`
	PanZoom   float64    `json:"pan_zoom"`
	Filter    Filter     `json:"filter"`
	Selected  model.City `json:"selected"`
	Markers   []Marker   `json:"markers"`
	Cards     []CityCard `json:"cards"`
	CardCount int        `json:"card_count"`
}

// State is the selection state shared by the map and the card list.
type State struct {
	table    *data.Table
	selected string
	filter   Filter
}

func New(t *data.Table) *State {
	return &State{table: t, selected: DefaultSelected, filter: FilterAll}
}

// Select makes id the active city. Marker clicks, card hover and card clicks
// all funnel through here.
func (s *State) Select(id string) {
	s.selected = id
}

func (s *State) SetFilter(f Filter) {
	s.filter = f
}

func (s *State) Filter() Filter { return s.filter }

// Selected resolves the active city, falling back to the first table entry
// when the id is unknown.
func (s *State) Selected() model.City {
	if c, ok := s.table.Lookup(s.selected); ok {
		return c
	}
	all := s.table.All()
	if len(all) == 0 {
		return model.City{}
	}
	return all[0]
}

func (s *State) View() View {
	sel := s.Selected()
	all := s.table.All()

	markers := make([]Marker, 0, len(all))
	cards := make([]CityCard, 0, len(all))
	for _, c := range all {
		active := c.ID == sel.ID
		markers = append(markers, Marker{
			ID:     c.ID,
			Name:   c.Name,
			Lat:    c.Lat,
			Lng:    c.Lng,
			Color:  MarkerColors[c.Type],
			Active: active,
		})
		if s.filter != FilterAll && Filter(c.Type) != s.filter {
			continue
		}
		cards = append(cards, CityCard{
			ID:       c.ID,
			Name:     c.Name,
			Type:     c.Type,
			Headline: c.Headline,
			Areas:    c.Areas,
			Price:    c.PriceNote(),
			Bullets:  c.Bullets,
			Active:   active,
		})
	}

	return View{
		Center:    MapCenter,
		Zoom:      MapZoom,
		PanTo:     LatLng{Lat: sel.Lat, Lng: sel.Lng},
		PanZoom:   FocusZoom,
		Filter:    s.filter,
		Selected:  sel,
		Markers:   markers,
		Cards:     cards,
		CardCount: len(cards),
	}
}
