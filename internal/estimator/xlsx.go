package estimator

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const projectionSheet = "Projections"

// BuildProjectionsWorkbook lays the rows out on a single sheet using the same
// columns as the CSV export, with numeric cells kept numeric.
func BuildProjectionsWorkbook(rows []ProjectionRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillProjections(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillProjections(f *excelize.File, rows []ProjectionRow) error {
	if err := f.SetSheetName("Sheet1", projectionSheet); err != nil {
		return err
	}

	for i, h := range projectionHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(projectionSheet, cell, h); err != nil {
			return fmt.Errorf("write header %q: %w", h, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFE4D6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(projectionSheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, r := range rows {
		values := []interface{}{
			r.Index, r.CityID, r.CityName, string(r.Type), r.Beds,
			r.ADRMin, r.ADRMax, r.ADRMid,
			r.OccMinPct, r.OccMaxPct, r.OccMidPct,
			r.RevenueLow, r.RevenueMid, r.RevenueHigh,
			r.BandLow, r.BandHigh,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(projectionSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	if err := f.SetColWidth(projectionSheet, "B", "C", 20); err != nil {
		return err
	}
	return f.SetColWidth(projectionSheet, "L", "P", 14)
}

func WriteProjectionsXLSX(path string, rows []ProjectionRow) error {
	f, err := BuildProjectionsWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
