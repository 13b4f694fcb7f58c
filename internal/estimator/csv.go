package estimator

import (
	"encoding/csv"
	"os"
	"strconv"
)

var projectionHeader = []string{
	"index",
	"city_id",
	"city",
	"type",
	"beds",
	"adr_min",
	"adr_max",
	"adr_mid",
	"occ_min_pct",
	"occ_max_pct",
	"occ_mid_pct",
	"revenue_low",
	"revenue_mid",
	"revenue_high",
	"band_low",
	"band_high",
}

func WriteProjectionsCSV(path string, rows []ProjectionRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(projectionHeader); err != nil {
		return err
	}

	for _, r := range rows {
		if err := w.Write(projectionRecord(r)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func projectionRecord(r ProjectionRow) []string {
	return []string{
		strconv.Itoa(r.Index),
		r.CityID,
		r.CityName,
		string(r.Type),
		strconv.Itoa(r.Beds),
		fmtFloat(r.ADRMin),
		fmtFloat(r.ADRMax),
		fmtFloat(r.ADRMid),
		fmtFloat(r.OccMinPct),
		fmtFloat(r.OccMaxPct),
		fmtFloat(r.OccMidPct),
		strconv.FormatInt(r.RevenueLow, 10),
		strconv.FormatInt(r.RevenueMid, 10),
		strconv.FormatInt(r.RevenueHigh, 10),
		strconv.FormatInt(r.BandLow, 10),
		strconv.FormatInt(r.BandHigh, 10),
	}
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
