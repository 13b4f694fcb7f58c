package models

// EstimateRequest is the calculator form plus how to clamp it.
//
// CityID applies the city slide bounds (rooms >= 1, ADR and occupancy inside
// the city's ranges). Mode "custom" applies the free-input card bounds. With
// neither, inputs are only floored at zero.
type EstimateRequest struct {
	CityID string `json:"city_id,omitempty"`
	Mode   string `json:"mode,omitempty"` // "", "city", "custom"

	Rooms        int     `json:"rooms,omitempty"`
	BedsPerRoom  int     `json:"beds_per_room,omitempty"`
	Beds         int     `json:"beds,omitempty"`
	ADR          float64 `json:"adr"`
	OccupancyPct float64 `json:"occupancy_pct"`
	PeriodDays   *int    `json:"period_days,omitempty"` // default: 30
}

// CompareEstimateRequest runs several variations over shared base inputs
type CompareEstimateRequest struct {
	Base       EstimateRequest     `json:"base"`
	Variations []EstimateVariation `json:"variations" binding:"required"`
}

// EstimateVariation overrides non-zero fields of the base request
type EstimateVariation struct {
	Name    string          `json:"name" binding:"required"`
	Request EstimateRequest `json:"request"`
}

// CustomScenarioRequest holds the custom card's three sliders
type CustomScenarioRequest struct {
	Beds         int     `json:"beds"`
	ADR          float64 `json:"adr"`
	OccupancyPct float64 `json:"occupancy_pct"`
}

// CityListRequest filters GET /api/v1/cities
type CityListRequest struct {
	Type     string `form:"type,omitempty"`
	Featured *bool  `form:"featured,omitempty"`
}

// RankRequest represents a request to rank cities
type RankRequest struct {
	Beds  int    `form:"beds,omitempty"`  // default: rooms x beds_per_room from config
	Type  string `form:"type,omitempty"`  // optional city type filter
	Limit int    `form:"limit,omitempty"` // default: 10
}

// MapRequest selects a city and filter for the map/list view
type MapRequest struct {
	Selected string `form:"selected,omitempty"`
	Filter   string `form:"filter,omitempty"`
}
