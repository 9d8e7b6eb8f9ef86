package vsop87

import (
	"math"
	"testing"
)

const (
	longitudeEpsilon = 5e-6 // radians
	latitudeEpsilon  = 2e-6 // radians
	radiusEpsilon    = 1e-6 // astronomical units
)

func TestPositionEarth(t *testing.T) {
	// 1992 October 13.0 TD
	const millennia = (2448908.5 - 2451545.0) / 365250.0

	got := Position(millennia, Earth)

	// 19.907372 degrees, expressed in radians
	if want := 19.907372 * math.Pi / 180; math.Abs(got.Longitude-want) > longitudeEpsilon {
		t.Errorf("Longitude = %.6f rad, want %.6f", got.Longitude, want)
	}
	if want := -0.00000312; math.Abs(got.Latitude-want) > latitudeEpsilon {
		t.Errorf("Latitude = %.8f rad, want %.8f", got.Latitude, want)
	}
	if want := 0.99760775; math.Abs(got.Distance-want) > radiusEpsilon {
		t.Errorf("Distance = %.8f AU, want %.8f", got.Distance, want)
	}
}

func TestPositionAllPlanets(t *testing.T) {
	// heliocentric distance ranges covering perihelion to aphelion, AU
	ranges := map[Planet][2]float64{
		Mercury: {0.30, 0.47},
		Venus:   {0.71, 0.73},
		Earth:   {0.98, 1.02},
		Mars:    {1.38, 1.67},
		Jupiter: {4.95, 5.46},
		Saturn:  {9.0, 10.1},
		Uranus:  {18.2, 20.1},
		Neptune: {29.8, 30.4},
	}

	for p, r := range ranges {
		for _, millennia := range []float64{-0.1, -0.007218, 0, 0.05} {
			got := Position(millennia, p)
			if got.Longitude < 0 || got.Longitude >= 2*math.Pi {
				t.Errorf("%d: Longitude = %f rad, want a value in [0, 2pi)", p, got.Longitude)
			}
			if math.Abs(got.Latitude) > 0.13 {
				t.Errorf("%d: Latitude = %f rad, out of range for a major planet", p, got.Latitude)
			}
			if got.Distance < r[0] || got.Distance > r[1] {
				t.Errorf("%d: Distance = %f AU, want a value in [%.2f, %.2f]", p, got.Distance, r[0], r[1])
			}
		}
	}
}
