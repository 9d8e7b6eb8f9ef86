package chronos

import (
	"math"
	"testing"
)

const riseSetEpsilon = 0.05 // decimal hours

func TestRisingSetting(t *testing.T) {
	// Venus from Boston on 1988 March 20
	d := Date{Day: 20.0, Month: March, Year: 1988}
	boston := GeographicPoint{
		Longitude: 71.0833 * deg2rad,
		Latitude:  42.3333 * deg2rad,
	}
	venus := EquatorialPoint{
		RightAscension: 41.73129 * deg2rad,
		Declination:    18.44092 * deg2rad,
	}
	const standardAltitude = -0.5667 * deg2rad

	if got, want := Rising(d, boston, venus, standardAltitude), 12.44; math.Abs(got-want) > riseSetEpsilon {
		t.Errorf("Rising = %.3f h, want %.3f", got, want)
	}
	if got, want := Setting(d, boston, venus, standardAltitude), 2.91; math.Abs(got-want) > riseSetEpsilon {
		t.Errorf("Setting = %.3f h, want %.3f", got, want)
	}
}

func TestRisingCircumpolar(t *testing.T) {
	d := Date{Day: 1.0, Month: July, Year: 2000}
	arctic := GeographicPoint{Longitude: 0, Latitude: 80 * deg2rad}

	// a body at declination +70 degrees never sets at latitude 80 north
	high := EquatorialPoint{RightAscension: 1.0, Declination: 70 * deg2rad}
	if got := Rising(d, arctic, high, 0); got != -1 {
		t.Errorf("Rising of a circumpolar body = %f, want -1", got)
	}
	if got := Setting(d, arctic, high, 0); got != -1 {
		t.Errorf("Setting of a circumpolar body = %f, want -1", got)
	}

	// and one at -70 degrees never rises
	low := EquatorialPoint{RightAscension: 1.0, Declination: -70 * deg2rad}
	if got := Rising(d, arctic, low, 0); got != -1 {
		t.Errorf("Rising of a never-rising body = %f, want -1", got)
	}
}

func TestParallacticAngleOnMeridian(t *testing.T) {
	// on the local meridian the parallactic angle vanishes
	d := Date{Day: 10.0, Month: April, Year: 1987}
	gp := GeographicPoint{Longitude: 0.3, Latitude: 45 * deg2rad}

	ep := EquatorialPoint{
		RightAscension: greenwichApparentSiderealTime(d) - gp.Longitude,
		Declination:    10 * deg2rad,
	}

	if got := ParallacticAngle(d, gp, ep); math.Abs(got) > 1e-9 {
		t.Errorf("ParallacticAngle on the meridian = %.9f rad, want 0", got)
	}
}

func TestAtmosphericRefraction(t *testing.T) {
	tests := []struct {
		name      string
		elevation float64
		want      float64 // arcminutes
		epsilon   float64
	}{
		{"horizon", 0, 28.98, 0.02},
		{"mid altitude", 45, 1.013, 0.005},
		{"low altitude", 5, 9.67, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AtmosphericRefraction(tt.elevation, 283.15, 101325)
			if math.Abs(got-tt.want) > tt.epsilon {
				t.Errorf("AtmosphericRefraction(%v) = %.3f arcmin, want %.3f", tt.elevation, got, tt.want)
			}
		})
	}

	// halving the pressure halves the refraction
	full := AtmosphericRefraction(10, 283.15, 101325)
	half := AtmosphericRefraction(10, 283.15, 101325.0/2)
	if math.Abs(half-full/2) > 1e-9 {
		t.Errorf("refraction does not scale linearly with pressure: %f vs %f", half, full/2)
	}
}

func TestDiurnalParallax(t *testing.T) {
	d := Date{Day: 28.0, Month: August, Year: 2003}
	gp := GeographicPoint{
		Longitude: 116.8625 * deg2rad,
		Latitude:  33.356111 * deg2rad,
	}
	const altitude = 1.706 // km

	// a body on the local meridian shifts in declination only
	ep := EquatorialPoint{
		RightAscension: greenwichApparentSiderealTime(d) - gp.Longitude,
		Declination:    -15.771083 * deg2rad,
	}
	const ehp = 23.592 * arcsec2rad

	topo := DiurnalParallax(d, gp, altitude, ep, ehp)
	if math.Abs(topo.RightAscension-ep.RightAscension) > 1e-12 {
		t.Errorf("right ascension shifted on the meridian: %.9f rad", topo.RightAscension-ep.RightAscension)
	}
	if topo.Declination >= ep.Declination {
		t.Error("a northern observer sees the body displaced southward")
	}
	if shift := math.Abs(topo.Declination-ep.Declination) / arcsec2rad; shift > 23.592 {
		t.Errorf("declination shift = %.2f arcsec, larger than the horizontal parallax", shift)
	}

	// off the meridian both coordinates move, each by less than the
	// horizontal parallax
	ep.RightAscension += 3.0 * hours2rad
	topo = DiurnalParallax(d, gp, altitude, ep, ehp)
	if topo.RightAscension == ep.RightAscension {
		t.Error("expected a parallactic shift in right ascension off the meridian")
	}
	if shift := math.Abs(topo.RightAscension-ep.RightAscension) / arcsec2rad; shift > 23.592 {
		t.Errorf("right ascension shift = %.2f arcsec, larger than the horizontal parallax", shift)
	}
}
