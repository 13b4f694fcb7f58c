package handlers

import (
	"fmt"
	"net/http"

	"hostel-franchise/internal/api/models"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/estimator"
	"hostel-franchise/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	modeRaw    = "raw"
	modeCity   = "city"
	modeCustom = "custom"
)

// EstimateHandler handles revenue estimate requests
type EstimateHandler struct {
	table  *data.Table
	custom model.Bounds
}

// NewEstimateHandler creates a new estimate handler
func NewEstimateHandler(table *data.Table, custom model.Bounds) *EstimateHandler {
	return &EstimateHandler{table: table, custom: custom}
}

// Estimate handles POST /api/v1/estimate
func (h *EstimateHandler) Estimate(c *gin.Context) {
	h.run(c, false)
}

// EstimateBand handles POST /api/v1/estimate/band
func (h *EstimateHandler) EstimateBand(c *gin.Context) {
	h.run(c, true)
}

func (h *EstimateHandler) run(c *gin.Context, banded bool) {
	var req models.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	resp, status, detail := h.estimate(req, banded)
	if detail != nil {
		c.JSON(status, models.ErrorResponse{Error: *detail})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/estimate/compare
func (h *EstimateHandler) Compare(c *gin.Context) {
	var req models.CompareEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeRequest(req.Base, variation.Request)
		resp, status, detail := h.estimate(merged, true)
		if detail != nil {
			// One bad variation fails the whole comparison; callers get the name back.
			if detail.Details == nil {
				detail.Details = map[string]interface{}{}
			}
			detail.Details["variation"] = variation.Name
			c.JSON(status, models.ErrorResponse{Error: *detail})
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:     variation.Name,
			Estimate: resp,
		})
	}

	c.JSON(http.StatusOK, models.CompareEstimateResponse{Comparison: comparison})
}

func (h *EstimateHandler) estimate(req models.EstimateRequest, banded bool) (models.EstimateResponse, int, *models.ErrorDetail) {
	bounds, mode, detail := h.bounds(req)
	if detail != nil {
		status := http.StatusBadRequest
		if detail.Code == "CITY_NOT_FOUND" {
			status = http.StatusNotFound
		}
		return models.EstimateResponse{}, status, detail
	}

	in := model.CalculatorInputs{
		Rooms:        req.Rooms,
		BedsPerRoom:  req.BedsPerRoom,
		Beds:         req.Beds,
		ADR:          req.ADR,
		OccupancyPct: req.OccupancyPct,
		PeriodDays:   req.PeriodDays,
	}
	a := in.ToAssumptions(bounds)

	var est model.RevenueEstimate
	if banded {
		est = estimator.EstimateBand(a)
	} else {
		est = estimator.Estimate(a)
	}
	return BuildEstimateResponse(req.CityID, mode, est), http.StatusOK, nil
}

// bounds picks the clamp set for a request: the city's slide bounds, the
// custom card bounds, or none.
func (h *EstimateHandler) bounds(req models.EstimateRequest) (model.Bounds, string, *models.ErrorDetail) {
	switch {
	case req.CityID != "":
		if req.Mode != "" && req.Mode != modeCity {
			return model.Bounds{}, "", &models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: fmt.Sprintf("mode %q cannot be combined with city_id", req.Mode),
			}
		}
		city, ok := h.table.Lookup(req.CityID)
		if !ok {
			return model.Bounds{}, "", &models.ErrorDetail{
				Code:    "CITY_NOT_FOUND",
				Message: fmt.Sprintf("unknown city: %s", req.CityID),
				Details: map[string]interface{}{"city_id": req.CityID},
			}
		}
		return model.CarouselBounds(city), modeCity, nil
	case req.Mode == modeCity:
		return model.Bounds{}, "", &models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: "city_id is required for mode city",
		}
	case req.Mode == modeCustom:
		return h.custom, modeCustom, nil
	case req.Mode == "" || req.Mode == modeRaw:
		return model.Bounds{}, modeRaw, nil
	default:
		return model.Bounds{}, "", &models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: fmt.Sprintf("unknown mode %q (want city, custom or raw)", req.Mode),
		}
	}
}

// BuildEstimateResponse adds the display strings to an estimate.
func BuildEstimateResponse(cityID, mode string, est model.RevenueEstimate) models.EstimateResponse {
	resp := models.EstimateResponse{
		CityID:   cityID,
		Mode:     mode,
		Estimate: est,
		Display:  currency.FormatK(float64(est.Rounded)),
		INR:      currency.FormatLakh(float64(est.Rounded)),
	}
	if est.Band != nil {
		resp.Band = currency.FormatRange(est.Band.Low, est.Band.High)
	}
	return resp
}

func mergeRequest(base, override models.EstimateRequest) models.EstimateRequest {
	merged := base
	if override.CityID != "" {
		merged.CityID = override.CityID
	}
	if override.Mode != "" {
		merged.Mode = override.Mode
	}
	if override.Rooms != 0 {
		merged.Rooms = override.Rooms
	}
	if override.BedsPerRoom != 0 {
		merged.BedsPerRoom = override.BedsPerRoom
	}
	if override.Beds != 0 {
		merged.Beds = override.Beds
	}
	if override.ADR != 0 {
		merged.ADR = override.ADR
	}
	if override.OccupancyPct != 0 {
		merged.OccupancyPct = override.OccupancyPct
	}
	if override.PeriodDays != nil {
		merged.PeriodDays = override.PeriodDays
	}
	return merged
}
