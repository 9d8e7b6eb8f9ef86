package chronos

import (
	"math"
	"testing"
)

const arcsecEpsilon = 0.05 // nutation components, arcseconds

func TestNutation(t *testing.T) {
	d := Date{Day: 10.0, Month: April, Year: 1987}

	if got, want := NutationInLongitude(d)/arcsec2rad, -3.788; math.Abs(got-want) > arcsecEpsilon {
		t.Errorf("NutationInLongitude = %.3f arcsec, want %.3f", got, want)
	}
	if got, want := NutationInObliquity(d)/arcsec2rad, 9.443; math.Abs(got-want) > arcsecEpsilon {
		t.Errorf("NutationInObliquity = %.3f arcsec, want %.3f", got, want)
	}
}

func TestNutationBounds(t *testing.T) {
	// nutation in longitude stays within ±20 arcseconds over centuries
	for year := 1800; year <= 2100; year += 7 {
		d := Date{Day: 1.0, Month: March, Year: year}
		if psi := NutationInLongitude(d) / arcsec2rad; math.Abs(psi) > 20 {
			t.Fatalf("NutationInLongitude(%d) = %.3f arcsec, out of range", year, psi)
		}
		if eps := NutationInObliquity(d) / arcsec2rad; math.Abs(eps) > 11 {
			t.Fatalf("NutationInObliquity(%d) = %.3f arcsec, out of range", year, eps)
		}
	}
}

func TestObliquityOfEcliptic(t *testing.T) {
	d := Date{Day: 10.0, Month: April, Year: 1987}
	// 23 deg 26' 27.407"
	if got, want := ObliquityOfEcliptic(d)*rad2deg, 23.440946; math.Abs(got-want) > 1e-4 {
		t.Errorf("ObliquityOfEcliptic = %.6f deg, want %.6f", got, want)
	}

	d = Date{Day: 1.5, Month: January, Year: 2000}
	if got, want := ObliquityOfEcliptic(d)*rad2deg, 23.4392911; math.Abs(got-want) > 1e-6 {
		t.Errorf("ObliquityOfEcliptic(J2000) = %.7f deg, want %.7f", got, want)
	}
}

func TestPrecession(t *testing.T) {
	// zero interval leaves the point untouched
	ep := EclipticPoint{Longitude: 1.0, Latitude: 0.3}
	got := Precession(ep, J2000, J2000)
	if math.Abs(got.Longitude-ep.Longitude) > 1e-12 || math.Abs(got.Latitude-ep.Latitude) > 1e-12 {
		t.Errorf("Precession over zero interval moved the point: %+v", got)
	}

	// over one Julian century the general precession in longitude is about
	// 1.39697 degrees; the tilt of the ecliptic (η, about 47 arcseconds per
	// century) moves the latitude by up to about 0.013 degrees
	ep = EclipticPoint{Longitude: 1.0, Latitude: 0}
	got = Precession(ep, J2000, J2000+daysInJulianCentury)
	dLon := (got.Longitude - ep.Longitude) * rad2deg
	if math.Abs(dLon-1.39697) > 0.001 {
		t.Errorf("precession in longitude over a century = %.5f deg, want about 1.39697", dLon)
	}
	if math.Abs(got.Latitude)*rad2deg > 0.015 {
		t.Errorf("precession in latitude over a century = %.5f deg, want below 0.015", got.Latitude*rad2deg)
	}

	// precessing there and back returns the starting point
	ep = EclipticPoint{Longitude: 2.5, Latitude: -0.2}
	b1950 := J2000 - 0.5*daysInJulianCentury
	got = Precession(Precession(ep, J2000, b1950), b1950, J2000)
	if math.Abs(got.Longitude-ep.Longitude) > 1e-7 || math.Abs(got.Latitude-ep.Latitude) > 1e-7 {
		t.Errorf("round-trip precession moved the point: %+v", got)
	}
}
