// Package api wires the HTTP handlers onto a gin engine.
package api

import (
	"net/http"

	"hostel-franchise/internal/api/handlers"
	"hostel-franchise/internal/api/middleware"
	"hostel-franchise/internal/config"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/scenario"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with middleware and every /api/v1 route.
// Static file serving is left to the caller.
func NewRouter(cfg *config.Config, table *data.Table, scenarios []scenario.Scenario) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.ErrorHandler())

	calc := cfg.Calculator
	customBounds := calc.CustomBounds.Bounds()
	for _, s := range scenarios {
		if cs, ok := s.(*scenario.CustomScenario); ok {
			cs.Bounds = customBounds
		}
	}

	estimateHandler := handlers.NewEstimateHandler(table, customBounds)
	cityHandler := handlers.NewCityHandler(table, calc.Rooms*calc.BedsPerRoom)
	scenarioHandler := handlers.NewScenarioHandler(scenarios, calc.CustomInputs())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cities": table.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/estimate", estimateHandler.Estimate)
		api.POST("/estimate/band", estimateHandler.EstimateBand)
		api.POST("/estimate/compare", estimateHandler.Compare)

		api.GET("/cities", cityHandler.ListCities)
		api.GET("/cities/:id", cityHandler.GetCity)
		api.GET("/rank", cityHandler.Rank)
		api.GET("/nearest", cityHandler.Nearest)
		api.GET("/map", cityHandler.Map)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/:key", scenarioHandler.GetScenario)
		api.POST("/scenarios/custom", scenarioHandler.Custom)
	}

	return router
}
