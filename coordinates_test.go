package chronos

import (
	"math"
	"testing"
)

const coordEpsilon = 1e-6 // converted coordinates, degrees

func TestEquatorialEclipticConversion(t *testing.T) {
	// Pollux at a given epoch
	eqp := EquatorialPoint{
		RightAscension: 116.328942 * deg2rad,
		Declination:    28.026183 * deg2rad,
	}
	const obliquity = 23.4392911 * deg2rad

	ecp := EquatorialToEcliptic(eqp, obliquity)
	if got, want := ecp.Longitude*rad2deg, 113.215630; math.Abs(got-want) > coordEpsilon {
		t.Errorf("ecliptic longitude = %.6f deg, want %.6f", got, want)
	}
	if got, want := ecp.Latitude*rad2deg, 6.684170; math.Abs(got-want) > coordEpsilon {
		t.Errorf("ecliptic latitude = %.6f deg, want %.6f", got, want)
	}

	back := EclipticToEquatorial(ecp, obliquity)
	if math.Abs(back.RightAscension-eqp.RightAscension) > coordEpsilon*deg2rad ||
		math.Abs(back.Declination-eqp.Declination) > coordEpsilon*deg2rad {
		t.Errorf("round trip = %+v, want %+v", back, eqp)
	}
}

func TestHorizontalConversionRoundTrip(t *testing.T) {
	d := Date{Day: 10.0 + 19.0/24.0, Month: April, Year: 1987}
	gp := GeographicPoint{
		Longitude: 77.065556 * deg2rad, // Washington, west positive
		Latitude:  38.921389 * deg2rad,
	}
	eqp := EquatorialPoint{
		RightAscension: 347.3193 * deg2rad,
		Declination:    -6.7199 * deg2rad,
	}

	hp := EquatorialToHorizontal(d, gp, eqp)
	back := HorizontalToEquatorial(d, gp, hp)

	// right ascensions may differ by full turns
	dra := math.Mod(back.RightAscension-eqp.RightAscension, twoPi)
	if dra > math.Pi {
		dra -= twoPi
	} else if dra < -math.Pi {
		dra += twoPi
	}
	if math.Abs(dra) > 1e-9 || math.Abs(back.Declination-eqp.Declination) > 1e-9 {
		t.Errorf("round trip = %+v, want %+v", back, eqp)
	}
}

func TestEquatorialToHorizontalOverhead(t *testing.T) {
	// an object on the local meridian at the observer's latitude culminates
	// at the zenith
	d := Date{Day: 1.0, Month: January, Year: 2000}
	gp := GeographicPoint{Longitude: 0, Latitude: 0.7}

	lst := GreenwichMeanSiderealTime(d) * hours2rad
	eqp := EquatorialPoint{RightAscension: lst, Declination: 0.7}

	hp := EquatorialToHorizontal(d, gp, eqp)
	if math.Abs(hp.Elevation-math.Pi/2) > 1e-7 {
		t.Errorf("elevation = %.9f rad, want pi/2", hp.Elevation)
	}
}

func TestGeodesicDistance(t *testing.T) {
	paris := GeographicPoint{
		Longitude: -2.337222 * deg2rad, // east of Greenwich
		Latitude:  48.836389 * deg2rad,
	}
	washington := GeographicPoint{
		Longitude: 77.065556 * deg2rad,
		Latitude:  38.921389 * deg2rad,
	}

	if got, want := GeodesicDistance(paris, washington), 6181.63; math.Abs(got-want) > 0.05 {
		t.Errorf("GeodesicDistance = %.2f km, want %.2f", got, want)
	}

	// symmetry
	if d1, d2 := GeodesicDistance(paris, washington), GeodesicDistance(washington, paris); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("distance is not symmetric: %.6f vs %.6f", d1, d2)
	}
}
