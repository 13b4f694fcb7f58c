package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"hostel-franchise/internal/analysis"
	"hostel-franchise/internal/api/models"
	"hostel-franchise/internal/browser"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/model"

	"github.com/gin-gonic/gin"
)

// CityHandler serves the city table and the map/list view
type CityHandler struct {
	table       *data.Table
	defaultBeds int
}

// NewCityHandler creates a new city handler. defaultBeds is the inventory
// used for potentials when a request does not name one.
func NewCityHandler(table *data.Table, defaultBeds int) *CityHandler {
	if defaultBeds < 1 {
		defaultBeds = 1
	}
	return &CityHandler{table: table, defaultBeds: defaultBeds}
}

// ListCities handles GET /api/v1/cities
func (h *CityHandler) ListCities(c *gin.Context) {
	var req models.CityListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cities := h.table.All()
	if req.Type != "" {
		typ := model.CityType(req.Type)
		if !typ.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: fmt.Sprintf("unknown city type: %s", req.Type),
				},
			})
			return
		}
		cities = h.table.OfType(typ)
	}

	infos := make([]models.CityInfo, 0, len(cities))
	for _, city := range cities {
		if req.Featured != nil && city.Featured != *req.Featured {
			continue
		}
		infos = append(infos, NewCityInfo(city))
	}

	c.JSON(http.StatusOK, models.CityListResponse{
		UpdatedAt: h.table.UpdatedAt(),
		Count:     len(infos),
		Cities:    infos,
	})
}

// GetCity handles GET /api/v1/cities/:id
func (h *CityHandler) GetCity(c *gin.Context) {
	id := c.Param("id")
	city, ok := h.table.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CITY_NOT_FOUND",
				Message: fmt.Sprintf("unknown city: %s", id),
				Details: map[string]interface{}{"city_id": id},
			},
		})
		return
	}

	p := analysis.ComputePotential(city, h.defaultBeds)
	c.JSON(http.StatusOK, models.CityDetailResponse{
		City: NewCityInfo(city),
		Potential: models.Potential{
			Beds:        p.Beds,
			RevenueLow:  p.RevenueLow,
			RevenueMid:  p.RevenueMid,
			RevenueHigh: p.RevenueHigh,
		},
		Band:    p.Band,
		Display: currency.FormatRange(p.Band.Low, p.Band.High),
	})
}

// Rank handles GET /api/v1/rank
func (h *CityHandler) Rank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	beds := req.Beds
	if beds <= 0 {
		beds = h.defaultBeds
	}
	cities := h.table.All()
	if req.Type != "" {
		typ := model.CityType(req.Type)
		if !typ.Valid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: fmt.Sprintf("unknown city type: %s", req.Type),
				},
			})
			return
		}
		cities = h.table.OfType(typ)
	}

	ranked := analysis.Top(analysis.RankByMidRevenue(cities, beds), req.Limit)
	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.NewRanking(r, currency.FormatK(float64(r.RevenueMid)))
	}

	c.JSON(http.StatusOK, models.RankResponse{Beds: beds, Rankings: rankings})
}

// Nearest handles GET /api/v1/nearest
func (h *CityHandler) Nearest(c *gin.Context) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "MISSING_PARAM",
				Message: "lat and lng query parameters are required",
			},
		})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("lat must be a number: %v", err),
			},
		})
		return
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("lng must be a number: %v", err),
			},
		})
		return
	}

	if !validCoordinate(lat, 90) || !validCoordinate(lng, 180) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "lat must be within ±90 and lng within ±180",
				Details: map[string]interface{}{"lat": latStr, "lng": lngStr},
			},
		})
		return
	}

	near, ok := analysis.Nearest(lat, lng, h.table.All())
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CITY_NOT_FOUND",
				Message: "city table is empty",
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.NearestResponse{
		City:       NewCityInfo(near.City),
		DistanceKm: near.DistanceKm,
	})
}

// Map handles GET /api/v1/map
func (h *CityHandler) Map(c *gin.Context) {
	var req models.MapRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	filter, err := browser.ParseFilter(req.Filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	state := browser.New(h.table)
	if req.Selected != "" {
		state.Select(req.Selected)
	}
	state.SetFilter(filter)
	view := state.View()
	if req.Selected != "" && view.Selected.ID != req.Selected {
		log.Printf("CityHandler: unknown selection %q, falling back to %s", req.Selected, view.Selected.ID)
	}
	c.JSON(http.StatusOK, view)
}

// NewCityInfo decorates a city with its parsed ranges.
func NewCityInfo(city model.City) models.CityInfo {
	return models.CityInfo{
		City:                city,
		ADRRange:            city.ADRRange(),
		OccupancyRange:      city.OccupancyRange(),
		DefaultADR:          city.DefaultADR(),
		DefaultOccupancyPct: city.DefaultOccupancyPct(),
		PriceNote:           city.PriceNote(),
	}
}

// validCoordinate rejects NaN, ±Inf and anything beyond ±limit degrees.
func validCoordinate(deg, limit float64) bool {
	return !math.IsNaN(deg) && deg >= -limit && deg <= limit
}
