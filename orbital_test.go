package chronos

import (
	"errors"
	"math"
	"testing"
)

func TestOrbitalElementsJ2000Epoch(t *testing.T) {
	j2000 := Date{Day: 1.5, Month: January, Year: 2000}

	earth, err := OrbitalElementsJ2000(j2000, Earth)
	if err != nil {
		t.Fatalf("OrbitalElementsJ2000(Earth) error: %v", err)
	}
	if got, want := earth.SemiMajorAxis, 1.0000010; math.Abs(got-want) > 1e-6 {
		t.Errorf("Earth semi-major axis = %.7f AU, want %.7f", got, want)
	}
	if got, want := earth.MeanLongitude*rad2deg, 100.46646; math.Abs(got-want) > 0.002 {
		t.Errorf("Earth mean longitude = %.5f deg, want %.5f", got, want)
	}
	if got, want := earth.Eccentricity, 0.0167086; math.Abs(got-want) > 1e-5 {
		t.Errorf("Earth eccentricity = %.7f, want %.7f", got, want)
	}
	// the orbit of the Earth defines the ecliptic of the epoch
	if math.Abs(earth.Inclination) > 1e-9 {
		t.Errorf("Earth inclination = %.9f rad, want 0", earth.Inclination)
	}

	mercury, err := OrbitalElementsJ2000(j2000, Mercury)
	if err != nil {
		t.Fatalf("OrbitalElementsJ2000(Mercury) error: %v", err)
	}
	if got, want := mercury.SemiMajorAxis, 0.3870983; math.Abs(got-want) > 1e-6 {
		t.Errorf("Mercury semi-major axis = %.7f AU, want %.7f", got, want)
	}
	if got, want := mercury.Eccentricity, 0.205632; math.Abs(got-want) > 1e-5 {
		t.Errorf("Mercury eccentricity = %.6f, want %.6f", got, want)
	}
	if got, want := mercury.Inclination*rad2deg, 7.0045; math.Abs(got-want) > 0.01 {
		t.Errorf("Mercury inclination = %.4f deg, want %.4f", got, want)
	}
	if got, want := mercury.AscendingNodeLongitude*rad2deg, 48.3317; math.Abs(got-want) > 0.01 {
		t.Errorf("Mercury ascending node = %.3f deg, want %.3f", got, want)
	}
	if got, want := mercury.PerihelionLongitude*rad2deg, 77.456; math.Abs(got-want) > 0.01 {
		t.Errorf("Mercury perihelion longitude = %.3f deg, want %.3f", got, want)
	}
}

func TestOrbitalElementsOfDate(t *testing.T) {
	// at the J2000 epoch both reference frames coincide for e and a, and
	// longitudes agree to the sub-arcsecond level
	j2000 := Date{Day: 1.5, Month: January, Year: 2000}

	for _, p := range []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune} {
		fixed, err := OrbitalElementsJ2000(j2000, p)
		if err != nil {
			t.Fatalf("OrbitalElementsJ2000(%v) error: %v", p, err)
		}
		ofDate, err := OrbitalElementsOfDate(j2000, p)
		if err != nil {
			t.Fatalf("OrbitalElementsOfDate(%v) error: %v", p, err)
		}

		if math.Abs(fixed.SemiMajorAxis-ofDate.SemiMajorAxis) > 1e-9 {
			t.Errorf("%v: semi-major axes differ between frames at the epoch", p)
		}
		if math.Abs(fixed.Eccentricity-ofDate.Eccentricity) > 1e-6 {
			t.Errorf("%v: eccentricities differ between frames at the epoch", p)
		}
	}
}

func TestOrbitalElementsSecular(t *testing.T) {
	// mean longitudes referred to the equinox of date accumulate general
	// precession: about 1.4 degrees per century more than the fixed-frame
	// longitudes
	d := Date{Day: 1.0, Month: January, Year: 2100}

	fixed, err := OrbitalElementsJ2000(d, Earth)
	if err != nil {
		t.Fatal(err)
	}
	ofDate, err := OrbitalElementsOfDate(d, Earth)
	if err != nil {
		t.Fatal(err)
	}

	diff := math.Mod(ofDate.MeanLongitude-fixed.MeanLongitude, twoPi) * rad2deg
	if diff < 0 {
		diff += 360
	}
	if math.Abs(diff-1.397) > 0.01 {
		t.Errorf("frame drift over a century = %.4f deg, want about 1.397", diff)
	}
}

func TestOrbitalElementsUnknownPlanet(t *testing.T) {
	d := Date{Day: 1.5, Month: January, Year: 2000}

	if _, err := OrbitalElementsJ2000(d, Planet(42)); !errors.Is(err, ErrUnknownPlanet) {
		t.Errorf("OrbitalElementsJ2000 error = %v, want ErrUnknownPlanet", err)
	}
	if _, err := OrbitalElementsOfDate(d, Planet(-1)); !errors.Is(err, ErrUnknownPlanet) {
		t.Errorf("OrbitalElementsOfDate error = %v, want ErrUnknownPlanet", err)
	}
}
