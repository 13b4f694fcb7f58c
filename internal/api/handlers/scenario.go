package handlers

import (
	"fmt"
	"log"
	"net/http"

	"hostel-franchise/internal/api/models"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/model"
	"hostel-franchise/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler serves the scenario carousel cards
type ScenarioHandler struct {
	scenarios []scenario.Scenario
	defaults  model.CalculatorInputs
}

// NewScenarioHandler creates a new scenario handler. defaults seeds the
// custom card when listing.
func NewScenarioHandler(scenarios []scenario.Scenario, defaults model.CalculatorInputs) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios, defaults: defaults}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	cards := make([]scenario.Card, 0, len(h.scenarios))
	for _, s := range h.scenarios {
		cards = append(cards, s.Card(h.defaults))
	}
	c.JSON(http.StatusOK, models.ScenarioListResponse{
		RateNote:  currency.RateNote(),
		Scenarios: cards,
	})
}

// GetScenario handles GET /api/v1/scenarios/:key
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	key := c.Param("key")
	s, err := scenario.Lookup(h.scenarios, key)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SCENARIO_NOT_FOUND",
				Message: err.Error(),
				Details: map[string]interface{}{"key": key},
			},
		})
		return
	}
	c.JSON(http.StatusOK, s.Card(h.defaults))
}

// Custom handles POST /api/v1/scenarios/custom
func (h *ScenarioHandler) Custom(c *gin.Context) {
	var req models.CustomScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	var custom scenario.Scenario
	for _, s := range h.scenarios {
		if _, ok := s.(*scenario.CustomScenario); ok {
			custom = s
			break
		}
	}
	if custom == nil {
		log.Printf("ScenarioHandler: no custom scenario configured")
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SCENARIO_NOT_FOUND",
				Message: fmt.Sprintf("no custom scenario among %d presets", len(h.scenarios)),
			},
		})
		return
	}

	in := h.defaults
	in.Beds = req.Beds
	in.ADR = req.ADR
	in.OccupancyPct = req.OccupancyPct
	c.JSON(http.StatusOK, custom.Card(in))
}
