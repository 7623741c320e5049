package scheduling

import "math"

const earthRadiusKm = 6371.0

// DistanceKm computes the great-circle distance between two coordinate pairs
// already materialized on referee and game rows. Zero coordinates on either
// side mean distance is unknown and treated as zero (never excluding).
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	if (lat1 == 0 && lng1 == 0) || (lat2 == 0 && lng2 == 0) {
		return 0
	}
	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
