package main

import (
	"fmt"
	"strconv"

	"hostel-franchise/internal/analysis"
	"hostel-franchise/internal/cli"
	"hostel-franchise/internal/currency"
	"hostel-franchise/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagType     string
	flagFeatured bool
	flagRankBeds int
	flagLimit    int
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the city table",
	RunE:  runCities,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank cities by midpoint monthly revenue",
	RunE:  runRank,
}

var nearestCmd = &cobra.Command{
	Use:   "nearest LAT LNG",
	Short: "Find the city closest to a coordinate",
	Args:  cobra.ExactArgs(2),
	RunE:  runNearest,
}

func init() {
	citiesCmd.Flags().StringVar(&flagType, "type", "", "Filter by type (urban, island, wellness)")
	citiesCmd.Flags().BoolVar(&flagFeatured, "featured", false, "Only the carousel cities")

	rankCmd.Flags().IntVar(&flagRankBeds, "beds", 0, "Beds per city (default: rooms x beds-per-room from config)")
	rankCmd.Flags().IntVarP(&flagLimit, "limit", "l", 10, "Number of cities to show")
	rankCmd.Flags().StringVar(&flagType, "type", "", "Filter by type (urban, island, wellness)")

	rootCmd.AddCommand(citiesCmd, rankCmd, nearestCmd)
}

func runCities(_ *cobra.Command, _ []string) error {
	_, table, err := loadEnv()
	if err != nil {
		return err
	}

	cities := table.All()
	if flagType != "" {
		typ := model.CityType(flagType)
		if !typ.Valid() {
			return fmt.Errorf("unknown city type: %q", flagType)
		}
		cities = table.OfType(typ)
	}

	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		if flagFeatured && !c.Featured {
			continue
		}
		rows = append(rows, []string{c.ID, c.Name, string(c.Type), c.ADR, c.Occupancy, c.PriceNote()})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%d cities (updated %s)", len(rows), table.UpdatedAt()),
		Headers: []string{"ID", "Name", "Type", "ADR", "Occupancy", "Price"},
		Rows:    rows,
	}))
	return nil
}

func runRank(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	beds := flagRankBeds
	if beds <= 0 {
		beds = cfg.Calculator.Rooms * cfg.Calculator.BedsPerRoom
	}
	cities := table.All()
	if flagType != "" {
		cities = table.OfType(model.CityType(flagType))
	}

	ranked := analysis.Top(analysis.RankByMidRevenue(cities, beds), flagLimit)
	rows := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank),
			r.Name,
			string(r.Type),
			cli.FormatTHB(r.RevenueLow),
			cli.FormatTHB(r.RevenueMid),
			cli.FormatTHB(r.RevenueHigh),
			currency.FormatRange(r.Band.Low, r.Band.High),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CITY RANKING  %d beds", beds)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "City", "Type", "Low", "Mid", "High", "Band"},
		Rows:    rows,
	}))
	return nil
}

func runNearest(_ *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}

	_, table, err := loadEnv()
	if err != nil {
		return err
	}
	near, ok := analysis.Nearest(lat, lng, table.All())
	if !ok {
		return fmt.Errorf("city table is empty")
	}

	fmt.Printf("\n  %s  %s\n", cli.MoneyStyle.Render(near.City.Name), cli.Muted(fmt.Sprintf("%.1f km", near.DistanceKm)))
	fmt.Printf("  %s\n  %s\n", near.City.Headline, near.City.PriceNote())
	return nil
}
