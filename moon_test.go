package chronos

import (
	"math"
	"testing"
)

const (
	moonAngleEpsilon    = 0.05 // degrees; truncated series and UT input
	moonDistanceEpsilon = 60.0 // kilometres
)

func TestMoonApparentPosition(t *testing.T) {
	// 1992 April 12
	d := Date{Day: 12.0, Month: April, Year: 1992}

	got := NewEphemeris().MoonApparentPosition(d)
	if want := 133.167265; math.Abs(got.Longitude*rad2deg-want) > moonAngleEpsilon {
		t.Errorf("apparent longitude = %.6f deg, want %.6f", got.Longitude*rad2deg, want)
	}
	if want := -3.229126; math.Abs(got.Latitude*rad2deg-want) > moonAngleEpsilon {
		t.Errorf("apparent latitude = %.6f deg, want %.6f", got.Latitude*rad2deg, want)
	}
}

func TestMoonTrueVersusApparent(t *testing.T) {
	d := Date{Day: 12.0, Month: April, Year: 1992}
	eph := NewEphemeris()

	truePos := eph.MoonTruePosition(d)
	apparent := eph.MoonApparentPosition(d)

	// the positions differ exactly by the nutation in longitude
	diff := apparent.Longitude - truePos.Longitude
	if want := NutationInLongitude(d); math.Abs(diff-want) > 1e-12 {
		t.Errorf("apparent - true longitude = %.9f rad, want %.9f", diff, want)
	}
	if apparent.Latitude != truePos.Latitude {
		t.Error("nutation must not change the latitude")
	}
}

func TestMoonDistanceToEarth(t *testing.T) {
	d := Date{Day: 12.0, Month: April, Year: 1992}

	got := NewEphemeris().MoonDistanceToEarth(d) * AstronomicalUnit
	if want := 368409.7; math.Abs(got-want) > moonDistanceEpsilon {
		t.Errorf("MoonDistanceToEarth = %.1f km, want %.1f", got, want)
	}
}

func TestMoonDiskIlluminatedFraction(t *testing.T) {
	d := Date{Day: 12.0, Month: April, Year: 1992}
	eph := NewEphemeris()

	if got, want := eph.MoonDiskIlluminatedFraction(d), 0.6786; math.Abs(got-want) > 0.01 {
		t.Errorf("MoonDiskIlluminatedFraction = %.4f, want %.4f", got, want)
	}
	if got, want := eph.MoonPhaseAngle(d)*rad2deg, 69.08; math.Abs(got-want) > 1.0 {
		t.Errorf("MoonPhaseAngle = %.2f deg, want %.2f", got, want)
	}
}

func TestMoonBrightLimbPositionAngle(t *testing.T) {
	d := Date{Day: 12.0, Month: April, Year: 1992}

	got := NewEphemeris().MoonBrightLimbPositionAngle(d) * rad2deg
	if want := 285.0; math.Abs(got-want) > 2.0 {
		t.Errorf("MoonBrightLimbPositionAngle = %.2f deg, want about %.1f", got, want)
	}
}

func TestMoonPhaseCycle(t *testing.T) {
	// around new moon the illuminated fraction is near zero, around full
	// moon near one. 2000 January 6 was a new moon, January 21 a full moon.
	eph := NewEphemeris()

	if got := eph.MoonDiskIlluminatedFraction(Date{Day: 6.75, Month: January, Year: 2000}); got > 0.02 {
		t.Errorf("fraction at new moon = %.4f, want near 0", got)
	}
	if got := eph.MoonDiskIlluminatedFraction(Date{Day: 21.2, Month: January, Year: 2000}); got < 0.98 {
		t.Errorf("fraction at full moon = %.4f, want near 1", got)
	}
}
