package main

import (
	"fmt"

	"hostel-franchise/internal/cli"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/estimator"
	"hostel-franchise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagCity        string
	flagCustom      bool
	flagRooms       int
	flagBedsPerRoom int
	flagBeds        int
	flagADR         float64
	flagOccupancy   float64
	flagPeriodDays  int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Monthly revenue for one set of assumptions",
	Example: `  hostel estimate --rooms 20 --beds-per-room 6 --adr 460 --occupancy 70
  hostel estimate --city phuket --rooms 12`,
	RunE: func(cmd *cobra.Command, _ []string) error { return runEstimate(cmd, false) },
}

var bandCmd = &cobra.Command{
	Use:   "band",
	Short: "Monthly revenue with the ±8% display band",
	RunE:  func(cmd *cobra.Command, _ []string) error { return runEstimate(cmd, true) },
}

func init() {
	for _, c := range []*cobra.Command{estimateCmd, bandCmd} {
		f := c.Flags()
		f.StringVar(&flagCity, "city", "", "Clamp to a city's ADR/occupancy ranges (id or name)")
		f.BoolVar(&flagCustom, "custom", false, "Clamp to the custom scenario bounds")
		f.IntVar(&flagRooms, "rooms", 0, "Rooms (default from config)")
		f.IntVar(&flagBedsPerRoom, "beds-per-room", 0, "Beds per room (default from config)")
		f.IntVar(&flagBeds, "beds", 0, "Total beds; overrides rooms x beds-per-room")
		f.Float64Var(&flagADR, "adr", 0, "Average daily rate per bed in THB (default: city midpoint)")
		f.Float64Var(&flagOccupancy, "occupancy", 0, "Occupancy percent 0-100 (default: city midpoint)")
		f.IntVar(&flagPeriodDays, "days", model.DefaultPeriodDays, "Days in the period")
		rootCmd.AddCommand(c)
	}
}

func runEstimate(cmd *cobra.Command, banded bool) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	in := model.CalculatorInputs{
		Rooms:        cfg.Calculator.Rooms,
		BedsPerRoom:  cfg.Calculator.BedsPerRoom,
		Beds:         flagBeds,
		ADR:          flagADR,
		OccupancyPct: flagOccupancy,
	}
	if flagRooms != 0 {
		in.Rooms = flagRooms
	}
	if flagBedsPerRoom != 0 {
		in.BedsPerRoom = flagBedsPerRoom
	}
	if cmd.Flags().Changed("days") {
		days := flagPeriodDays
		in.PeriodDays = &days
	}

	var bounds model.Bounds
	label := "Raw inputs"
	switch {
	case flagCity != "":
		city, err := lookupCity(table, flagCity)
		if err != nil {
			return err
		}
		bounds = model.CarouselBounds(city)
		if !cmd.Flags().Changed("adr") {
			in.ADR = city.DefaultADR()
		}
		if !cmd.Flags().Changed("occupancy") {
			in.OccupancyPct = city.DefaultOccupancyPct()
		}
		label = city.Name
	case flagCustom:
		bounds = cfg.Calculator.CustomBounds.Bounds()
		label = "Custom scenario"
	}

	a := in.ToAssumptions(bounds)
	var est model.RevenueEstimate
	if banded {
		est = estimator.EstimateBand(a)
	} else {
		est = estimator.Estimate(a)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY REVENUE  " + label))
	fmt.Println()
	rows := [][]string{
		{"Beds", cli.FormatNumber(int64(a.InventoryUnits))},
		{"ADR", cli.FormatTHB(int64(a.AverageDailyRate))},
		{"Occupancy", cli.FormatPct(a.OccupancyFraction * 100)},
		{"Days", fmt.Sprint(a.PeriodDays)},
		{"Revenue", cli.FormatTHB(est.Rounded)},
		{"Compact", currency.FormatK(float64(est.Rounded))},
		{"INR", currency.FormatLakh(float64(est.Rounded))},
	}
	if est.Band != nil {
		rows = append(rows,
			[]string{"Band low", cli.FormatTHB(est.Band.Low)},
			[]string{"Band high", cli.FormatTHB(est.Band.High)},
			[]string{"Band", currency.FormatRange(est.Band.Low, est.Band.High)},
		)
	}
	fmt.Print(cli.RenderTable(cli.Table{Headers: []string{"Assumption", "Value"}, Rows: rows}))
	fmt.Println()
	fmt.Println("  " + cli.MoneyStyle.Render(currency.FormatK(float64(est.Rounded))+" / month") + "  " + cli.Muted(currency.RateNote()))
	return nil
}
