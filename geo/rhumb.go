package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the rhumb-line
// formulas. Distances passed to them are in kilometers.
const EarthRadiusKm = 6371

// RhumbDestination returns the point reached by travelling from p along
// a constant compass bearing (degrees clockwise from north) for the
// given distance in kilometers.
//
// The Mercator-latitude formula divides by the projected latitude
// delta; when that delta is numerically zero (near east-west travel)
// the formula falls back to cos(lat). The resulting longitude is
// normalized into (-180, 180]. When the computation degenerates to a
// non-finite value, which can happen near the poles, ok is false and
// callers must not use the returned point.
func RhumbDestination(p Point, bearingDeg, distanceKm float64) (_ Point, ok bool) {
	d := distanceKm / EarthRadiusKm
	lat1 := rad(p.Latitude)
	lon1 := rad(p.Longitude)
	brng := rad(bearingDeg)

	lat2 := lat1 + d*math.Cos(brng)
	dLat := lat2 - lat1
	dPhi := math.Log(math.Tan(lat2/2+math.Pi/4) / math.Tan(lat1/2+math.Pi/4))
	q := math.Cos(lat1)
	if math.Abs(dLat) > 1e-10 {
		q = dLat / dPhi
	}
	dLon := d * math.Sin(brng) / q

	// A path that crosses a pole continues down the far side.
	if math.Abs(lat2) > math.Pi/2 {
		if lat2 > 0 {
			lat2 = math.Pi - lat2
		} else {
			lat2 = -(math.Pi - lat2)
		}
	}
	lon2 := math.Mod(lon1+dLon+3*math.Pi, 2*math.Pi) - math.Pi

	if !isFinite(lat2) || !isFinite(lon2) {
		return Point{}, false
	}
	return Point{Latitude: deg(lat2), Longitude: deg(lon2)}, true
}

// RhumbBearing returns the constant bearing in degrees [0, 360) that a
// rhumb line from one point to the other follows. When the longitude
// delta exceeds 180 degrees the shorter angular path across the date
// boundary is used for the bearing computation only.
func RhumbBearing(from, to Point) float64 {
	dLon := rad(to.Longitude - from.Longitude)
	dPhi := math.Log(math.Tan(rad(to.Latitude)/2+math.Pi/4) / math.Tan(rad(from.Latitude)/2+math.Pi/4))
	if math.Abs(dLon) > math.Pi {
		if dLon > 0 {
			dLon = -(2*math.Pi - dLon)
		} else {
			dLon = 2*math.Pi + dLon
		}
	}
	return math.Mod(deg(math.Atan2(dLon, dPhi))+360, 360)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
