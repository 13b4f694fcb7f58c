package main

import (
	"fmt"

	"hostel-franchise/internal/cli"
	"hostel-franchise/internal/data"
	"hostel-franchise/internal/scenario"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Show the scenario cards (custom card uses --beds/--adr/--occupancy)",
	RunE:  runScenarios,
}

func init() {
	f := scenariosCmd.Flags()
	f.IntVar(&flagBeds, "beds", 0, "Custom card beds (default from config)")
	f.Float64Var(&flagADR, "adr", 0, "Custom card ADR (default from config)")
	f.Float64Var(&flagOccupancy, "occupancy", 0, "Custom card occupancy percent (default from config)")
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadEnv()
	if err != nil {
		return err
	}
	presets, err := data.Scenarios()
	if err != nil {
		return err
	}

	in := cfg.Calculator.CustomInputs()
	if cmd.Flags().Changed("beds") {
		in.Beds = flagBeds
	}
	if cmd.Flags().Changed("adr") {
		in.ADR = flagADR
	}
	if cmd.Flags().Changed("occupancy") {
		in.OccupancyPct = flagOccupancy
	}

	rows := make([][]string, 0, len(presets))
	for _, s := range scenario.Build(presets) {
		if cs, ok := s.(*scenario.CustomScenario); ok {
			cs.Bounds = cfg.Calculator.CustomBounds.Bounds()
		}
		card := s.Card(in)
		rows = append(rows, []string{card.Preset.Emoji + " " + card.Preset.Title, card.Display, card.INR})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scenarios",
		Headers: []string{"Scenario", "Monthly", "INR"},
		Rows:    rows,
	}))
	fmt.Println("  " + cli.Muted(fmt.Sprintf("Custom: %d beds, ADR ฿%.0f, %.0f%% occupancy", in.Beds, in.ADR, in.OccupancyPct)))
	return nil
}
