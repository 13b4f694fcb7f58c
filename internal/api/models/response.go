package models

import (
	"hostel-franchise/internal/analysis"
	"hostel-franchise/internal/model"
	"hostel-franchise/internal/scenario"
)

// EstimateResponse is one revenue estimate plus its display strings
type EstimateResponse struct {
	CityID   string                `json:"city_id,omitempty"`
	Mode     string                `json:"mode"`
	Estimate model.RevenueEstimate `json:"estimate"`
	Display  string                `json:"display"`                // "฿1159k"
	Band     string                `json:"band_display,omitempty"` // "฿533k–฿626k"
	INR      string                `json:"inr"`                    // "~₹31L"
}

// CompareEstimateResponse represents the response from a comparison
type CompareEstimateResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation
type ComparisonResult struct {
	Name     string           `json:"name"`
	Estimate EstimateResponse `json:"estimate"`
}

// CityInfo is a city row with its parsed ranges and slider defaults
type CityInfo struct {
	model.City
	ADRRange            model.Range `json:"adr_range"`
	OccupancyRange      model.Range `json:"occupancy_range"`
	DefaultADR          float64     `json:"default_adr"`
	DefaultOccupancyPct float64     `json:"default_occupancy_pct"`
	PriceNote           string      `json:"price_note"`
}

// CityListResponse lists cities in table order
type CityListResponse struct {
	UpdatedAt string     `json:"updated_at"`
	Count     int        `json:"count"`
	Cities    []CityInfo `json:"cities"`
}

// CityDetailResponse adds the monthly potential at the default inventory
type CityDetailResponse struct {
	City      CityInfo   `json:"city"`
	Potential Potential  `json:"potential"`
	Band      model.Band `json:"band"`
	Display   string     `json:"display"`
}

// Potential is a city's monthly revenue at low, midpoint and high inputs
type Potential struct {
	Beds        int   `json:"beds"`
	RevenueLow  int64 `json:"revenue_low"`
	RevenueMid  int64 `json:"revenue_mid"`
	RevenueHigh int64 `json:"revenue_high"`
}

// RankResponse represents the response from ranking cities
type RankResponse struct {
	Beds     int       `json:"beds"`
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked city
type Ranking struct {
	Rank        int            `json:"rank"`
	CityID      string         `json:"city_id"`
	Name        string         `json:"name"`
	Type        model.CityType `json:"type"`
	RevenueLow  int64          `json:"revenue_low"`
	RevenueMid  int64          `json:"revenue_mid"`
	RevenueHigh int64          `json:"revenue_high"`
	Spread      int64          `json:"spread"`
	Display     string         `json:"display"`
}

// NearestResponse is the closest city to a point
type NearestResponse struct {
	City       CityInfo `json:"city"`
	DistanceKm float64  `json:"distance_km"`
}

// ScenarioListResponse lists scenario cards in carousel order
type ScenarioListResponse struct {
	RateNote  string          `json:"rate_note"`
	Scenarios []scenario.Card `json:"scenarios"`
}

// NewRanking converts an analysis ranking row into its API shape.
func NewRanking(r analysis.RankedPotential, display string) Ranking {
	return Ranking{
		Rank:        r.Rank,
		CityID:      r.CityID,
		Name:        r.Name,
		Type:        r.Type,
		RevenueLow:  r.RevenueLow,
		RevenueMid:  r.RevenueMid,
		RevenueHigh: r.RevenueHigh,
		Spread:      r.Spread(),
		Display:     display,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
