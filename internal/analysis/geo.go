package analysis

import (
	"math"

	"hostel-franchise/internal/model"
)

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two lat/lng points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

type NearestCity struct {
	City       model.City
	DistanceKm float64
}

// Nearest returns the closest city to (lat, lng). ok is false for an empty list.
func Nearest(lat, lng float64, cities []model.City) (NearestCity, bool) {
	var (
		best  NearestCity
		found bool
	)
	for _, c := range cities {
		d := HaversineKm(lat, lng, c.Lat, c.Lng)
		if !found || d < best.DistanceKm {
			best = NearestCity{City: c, DistanceKm: d}
			found = true
		}
	}
	return best, found
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
