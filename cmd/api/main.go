package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"hostel-franchise/internal/api"
	"hostel-franchise/internal/config"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/scenario"

	"github.com/gin-gonic/gin"
)

func main() {
	// CONFIG_FILE is optional; env vars override whatever it sets.
	cfg, err := config.LoadOrDefault(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}

	table, err := data.LoadTableOrDefault(cfg.CitiesFile)
	if err != nil {
		log.Fatalf("Failed to load city table: %v", err)
	}
	if cfg.CitiesFile != "" {
		log.Printf("Loaded %d cities from %s", table.Len(), cfg.CitiesFile)
	} else {
		log.Printf("Using embedded city table (%d cities, updated %s)", table.Len(), table.UpdatedAt())
	}

	presets, err := data.Scenarios()
	if err != nil {
		log.Fatalf("Failed to load scenarios: %v", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(cfg, table, scenario.Build(presets))

	// Serve static files from web/dist (if it exists)
	staticDir := cfg.Server.StaticDir
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", filepath.Join(staticDir, "assets"))
		router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s (env=%s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
