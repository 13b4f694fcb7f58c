package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hostel-franchise/internal/estimator"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write per-city revenue projections to CSV or XLSX",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&flagFormat, "format", "f", "", "csv or xlsx (default: from --out extension, else csv)")
	f.StringVarP(&flagOut, "out", "o", "results/projections.csv", "Output path")
	f.IntVar(&flagRooms, "rooms", 0, "Rooms (default from config)")
	f.IntVar(&flagBedsPerRoom, "beds-per-room", 0, "Beds per room (default from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, table, err := loadEnv()
	if err != nil {
		return err
	}

	in := estimator.ProjectionInputs{Rooms: cfg.Calculator.Rooms, BedsPerRoom: cfg.Calculator.BedsPerRoom}
	if flagRooms != 0 {
		in.Rooms = flagRooms
	}
	if flagBedsPerRoom != 0 {
		in.BedsPerRoom = flagBedsPerRoom
	}
	rows := estimator.Project(table.All(), in)

	format := strings.ToLower(flagFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(flagOut)), ".")
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(flagOut), 0o755); err != nil {
		return err
	}
	switch format {
	case "xlsx":
		err = estimator.WriteProjectionsXLSX(flagOut, rows)
	case "csv", "":
		err = estimator.WriteProjectionsCSV(flagOut, rows)
	default:
		return fmt.Errorf("unsupported format: %q (want csv or xlsx)", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d rows (%d beds per city) to %s\n", len(rows), in.Beds(), flagOut)
	return nil
}
