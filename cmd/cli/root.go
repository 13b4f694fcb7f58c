package main

import (
	"fmt"
	"os"

	"hostel-franchise/internal/cli"
	"hostel-franchise/internal/config"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagCities string
)

var rootCmd = &cobra.Command{
	Use:           "hostel",
	Short:         "Hostel franchise revenue estimator",
	Long:          "Estimate monthly hostel revenue per city, rank cities and export projections.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Errorf("error: %v", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", os.Getenv("CONFIG_FILE"), "Path to YAML or TOML config")
	rootCmd.PersistentFlags().StringVar(&flagCities, "cities", "", "City table override (YAML or JSON); defaults to config, then CITIES_FILE")
}

// loadEnv is the shared config + city table loading path used by all commands.
func loadEnv() (*config.Config, *data.Table, error) {
	cfg, err := config.LoadOrDefault(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	path := cfg.CitiesFile
	if flagCities != "" {
		path = flagCities
	}
	table, err := data.LoadTableOrDefault(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, table, nil
}

// lookupCity accepts either an id ("chiangmai") or a display name ("Chiang Mai").
func lookupCity(table *data.Table, key string) (model.City, error) {
	if c, ok := table.Lookup(key); ok {
		return c, nil
	}
	if c, ok := table.ByName(key); ok {
		return c, nil
	}
	return model.City{}, fmt.Errorf("unknown city: %q", key)
}
