package analysis

import (
	"sort"

	"hostel-franchise/internal/model"
)

type RankedPotential struct {
	Rank int
	CityPotential
}

// RankByMidRevenue computes potentials per city and sorts descending by
// RevenueMid, breaking ties by name.
func RankByMidRevenue(cities []model.City, beds int) []RankedPotential {
	out := make([]RankedPotential, 0, len(cities))
	for _, c := range cities {
		out = append(out, RankedPotential{CityPotential: ComputePotential(c, beds)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RevenueMid != out[j].RevenueMid {
			return out[i].RevenueMid > out[j].RevenueMid
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Top trims a ranking to limit entries; limit <= 0 means 10.
func Top(ranked []RankedPotential, limit int) []RankedPotential {
	if limit <= 0 {
		limit = 10
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}
	return ranked[:limit]
}
