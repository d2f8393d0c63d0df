package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/jftuga/geodist"
)

const (
	// kg CO₂ per km, an approximate per-passenger factor.
	emissionFactorPerKm = 0.135

	// Assumed average cruising speed used to estimate distance from
	// flight time when no geodesic distance is available.
	cruiseSpeedKmh = 800
)

// EstimateEF roughly estimates CO₂ emissions in kg for the given
// distance in km, rounded to 2 decimal places. No bounds checking:
// a negative or zero distance yields a negative or zero estimate.
func EstimateEF(distanceKm float64) float64 {
	return math.Round(distanceKm*emissionFactorPerKm*100) / 100
}

// EstimateDistance approximates the total distance of a flight by
// multiplying the summed segment durations by an assumed cruising
// speed. This is an approximation layer, not a source of ground truth;
// use DistanceKm when both airport codes are known.
func EstimateDistance(segments []Segment) float64 {
	totalMinutes := 0
	for _, s := range segments {
		totalMinutes += s.DurationMinutes
	}
	hours := float64(totalMinutes) / 60
	return hours * cruiseSpeedKmh
}

// airportCoords covers the airports the app commonly serves. Unknown
// codes fall back to the duration-based estimate.
var airportCoords = map[string]geodist.Coord{
	"LOS": {Lat: 6.5774, Lon: 3.3212},    // Lagos
	"ABV": {Lat: 9.0068, Lon: 7.2632},    // Abuja
	"PHC": {Lat: 5.0155, Lon: 6.9496},    // Port Harcourt
	"KAN": {Lat: 12.0476, Lon: 8.5246},   // Kano
	"ACC": {Lat: 5.6052, Lon: -0.1668},   // Accra
	"ADD": {Lat: 8.9779, Lon: 38.7993},   // Addis Ababa
	"NBO": {Lat: -1.3192, Lon: 36.9278},  // Nairobi
	"JNB": {Lat: -26.1392, Lon: 28.246},  // Johannesburg
	"CAI": {Lat: 30.1219, Lon: 31.4056},  // Cairo
	"LHR": {Lat: 51.4706, Lon: -0.4619},  // London Heathrow
	"CDG": {Lat: 49.0128, Lon: 2.55},     // Paris CDG
	"FRA": {Lat: 50.0333, Lon: 8.5706},   // Frankfurt
	"AMS": {Lat: 52.3086, Lon: 4.7639},   // Amsterdam
	"IST": {Lat: 41.2753, Lon: 28.7519},  // Istanbul
	"DXB": {Lat: 25.2528, Lon: 55.3644},  // Dubai
	"JFK": {Lat: 40.6398, Lon: -73.7789}, // New York JFK
	"ATL": {Lat: 33.6367, Lon: -84.4281}, // Atlanta
}

// DistanceKm returns the great-circle distance in km between two
// airports from the built-in coordinate table.
func DistanceKm(origin, destination string) (float64, error) {
	start, ok := airportCoords[strings.ToUpper(origin)]
	if !ok {
		return 0, fmt.Errorf("unknown airport code %q", origin)
	}
	end, ok := airportCoords[strings.ToUpper(destination)]
	if !ok {
		return 0, fmt.Errorf("unknown airport code %q", destination)
	}

	_, km, err := geodist.VincentyDistance(start, end)
	if err != nil {
		return 0, fmt.Errorf("distance calculation failed: %w", err)
	}
	return km, nil
}
