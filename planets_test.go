package chronos

import (
	"errors"
	"math"
	"testing"
)

const planetLongitudeEpsilon = 0.01 // degrees; abridged series and UT input

func TestApparentPositionVenus(t *testing.T) {
	// 1992 December 20
	d := Date{Day: 20.0, Month: December, Year: 1992}

	got, err := NewEphemeris().ApparentPosition(d, Venus)
	if err != nil {
		t.Fatalf("ApparentPosition error: %v", err)
	}
	if want := 313.08102; math.Abs(got.Longitude*rad2deg-want) > planetLongitudeEpsilon {
		t.Errorf("apparent longitude = %.5f deg, want %.5f", got.Longitude*rad2deg, want)
	}
	if want := -2.08474; math.Abs(got.Latitude*rad2deg-want) > planetLongitudeEpsilon {
		t.Errorf("apparent latitude = %.5f deg, want %.5f", got.Latitude*rad2deg, want)
	}
}

func TestDistances(t *testing.T) {
	d := Date{Day: 20.0, Month: December, Year: 1992}
	eph := NewEphemeris()

	// truncated radius series limit the agreement to a few 1e-4 AU
	if got, want := eph.DistanceToEarth(d, Venus), 0.910947; math.Abs(got-want) > 2e-4 {
		t.Errorf("DistanceToEarth(Venus) = %.6f AU, want %.6f", got, want)
	}
	if got, want := eph.DistanceToSun(d, Venus), 0.724604; math.Abs(got-want) > 2e-4 {
		t.Errorf("DistanceToSun(Venus) = %.6f AU, want %.6f", got, want)
	}
}

func TestPhase(t *testing.T) {
	d := Date{Day: 20.0, Month: December, Year: 1992}
	eph := NewEphemeris()

	if got, want := eph.PhaseAngle(d, Venus)*rad2deg, 72.96; math.Abs(got-want) > 0.1 {
		t.Errorf("PhaseAngle(Venus) = %.2f deg, want %.2f", got, want)
	}
	if got, want := eph.DiskIlluminatedFraction(d, Venus), 0.647; math.Abs(got-want) > 0.002 {
		t.Errorf("DiskIlluminatedFraction(Venus) = %.4f, want %.4f", got, want)
	}
}

func TestEarthAsTarget(t *testing.T) {
	d := Date{Day: 20.0, Month: December, Year: 1992}
	eph := NewEphemeris()

	pos, err := eph.ApparentPosition(d, Earth)
	if err != nil {
		t.Fatalf("ApparentPosition(Earth) error: %v", err)
	}
	if pos != (EclipticPoint{}) {
		t.Errorf("ApparentPosition(Earth) = %+v, want the zero point", pos)
	}
	if got := eph.TruePosition(d, Earth); got != (EclipticPoint{}) {
		t.Errorf("TruePosition(Earth) = %+v, want the zero point", got)
	}
	if got := eph.DistanceToEarth(d, Earth); got != 0 {
		t.Errorf("DistanceToEarth(Earth) = %f, want 0", got)
	}
	if got := eph.PhaseAngle(d, Earth); got != -1 {
		t.Errorf("PhaseAngle(Earth) = %f, want -1", got)
	}
	if got := eph.DiskIlluminatedFraction(d, Earth); got != -1 {
		t.Errorf("DiskIlluminatedFraction(Earth) = %f, want -1", got)
	}
	mag, err := eph.ApparentMagnitude(d, Earth)
	if err != nil {
		t.Fatalf("ApparentMagnitude(Earth) error: %v", err)
	}
	if mag != -1 {
		t.Errorf("ApparentMagnitude(Earth) = %f, want -1", mag)
	}
}

func TestApparentMagnitudeRanges(t *testing.T) {
	// magnitude windows wide enough for any epoch yet tight enough to catch
	// unit slips
	ranges := map[Planet][2]float64{
		Mercury: {-2.5, 6.0},
		Venus:   {-5.0, -3.0},
		Mars:    {-3.0, 2.5},
		Jupiter: {-3.0, -1.0},
		Saturn:  {-0.6, 1.7},
		Uranus:  {5.0, 6.5},
		Neptune: {7.0, 8.5},
	}

	eph := NewEphemeris()
	for _, d := range []Date{
		{Day: 20.0, Month: December, Year: 1992},
		{Day: 1.0, Month: June, Year: 2010},
	} {
		for p, r := range ranges {
			mag, err := eph.ApparentMagnitude(d, p)
			if err != nil {
				t.Fatalf("ApparentMagnitude(%v) error: %v", p, err)
			}
			if mag < r[0] || mag > r[1] {
				t.Errorf("%v on %v %d: magnitude %.2f outside [%.1f, %.1f]", p, d.Month, d.Year, mag, r[0], r[1])
			}
		}
	}
}

func TestApparentMagnitudeUnknownPlanet(t *testing.T) {
	d := Date{Day: 1.0, Month: January, Year: 2000}
	if _, err := NewEphemeris().ApparentMagnitude(d, Planet(42)); !errors.Is(err, ErrUnknownPlanet) {
		t.Errorf("error = %v, want ErrUnknownPlanet", err)
	}
}

func TestTruePositionOuterPlanet(t *testing.T) {
	// geocentric longitudes stay in [0, 2pi) and the geocentric distance of
	// Neptune never leaves [29, 31.5] AU
	eph := NewEphemeris()
	for year := 1990; year <= 2020; year += 5 {
		d := Date{Day: 15.0, Month: March, Year: year}
		pos := eph.TruePosition(d, Neptune)
		if pos.Longitude < 0 || pos.Longitude >= twoPi {
			t.Errorf("%d: longitude %f out of range", year, pos.Longitude)
		}
		if dist := eph.DistanceToEarth(d, Neptune); dist < 29 || dist > 31.5 {
			t.Errorf("%d: distance %f AU out of range", year, dist)
		}
	}
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{twoPi, 0},
		{-0.1, twoPi - 0.1},
		{3 * math.Pi, math.Pi},
		{-5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := normalizeLongitude(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeLongitude(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestPlanetString(t *testing.T) {
	if got := Saturn.String(); got != "Saturn" {
		t.Errorf("Saturn.String() = %q", got)
	}
	if got := Planet(42).String(); got != "Unknown" {
		t.Errorf("Planet(42).String() = %q", got)
	}
}
