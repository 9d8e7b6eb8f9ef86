package elp2000

import (
	"math"
	"testing"
)

const (
	angleEpsilon    = 0.03 // degrees; truncated series
	distanceEpsilon = 50.0 // kilometres
)

func TestPosition(t *testing.T) {
	// 1992 April 12.0 TD
	const centuries = -0.077221081451

	got := Position(centuries)

	if want := 133.162655; math.Abs(got.Longitude/deg2rad-want) > angleEpsilon {
		t.Errorf("Longitude = %.6f deg, want %.6f", got.Longitude/deg2rad, want)
	}
	if want := -3.229126; math.Abs(got.Latitude/deg2rad-want) > angleEpsilon {
		t.Errorf("Latitude = %.6f deg, want %.6f", got.Latitude/deg2rad, want)
	}
	if want := 368409.7; math.Abs(got.Distance-want) > distanceEpsilon {
		t.Errorf("Distance = %.1f km, want %.1f", got.Distance, want)
	}
}

func TestPositionRanges(t *testing.T) {
	for _, centuries := range []float64{-1, -0.25, 0, 0.1, 0.5} {
		got := Position(centuries)
		if got.Longitude < 0 || got.Longitude >= 2*math.Pi {
			t.Errorf("t=%v: Longitude = %f rad, want a value in [0, 2pi)", centuries, got.Longitude)
		}
		if math.Abs(got.Latitude) > 5.4*deg2rad {
			t.Errorf("t=%v: Latitude = %f deg, out of range", centuries, got.Latitude/deg2rad)
		}
		if got.Distance < 356000 || got.Distance > 407000 {
			t.Errorf("t=%v: Distance = %f km, out of range", centuries, got.Distance)
		}
	}
}

func TestEccentricityFactor(t *testing.T) {
	if got := eccentricityFactor(0, 0); got != 1 {
		t.Errorf("eccentricityFactor(0, 0) = %f, want 1", got)
	}
	e := eccentricityFactor(1, 1)
	if want := 1 - 0.002516 - 0.0000074; math.Abs(e-want) > 1e-12 {
		t.Errorf("eccentricityFactor(1, 1) = %f, want %f", e, want)
	}
	if got, want := eccentricityFactor(1, -2), e*e; math.Abs(got-want) > 1e-12 {
		t.Errorf("eccentricityFactor(1, -2) = %f, want %f", got, want)
	}
}
