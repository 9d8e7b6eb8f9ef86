package chronos

import (
	"errors"
	"math"
	"testing"
)

const sunLongitudeEpsilon = 0.005 // degrees; abridged series and UT input

func TestSunApparentPosition(t *testing.T) {
	d := Date{Day: 13.0, Month: October, Year: 1992}

	got := NewEphemeris().SunApparentPosition(d)
	if want := 199.90605; math.Abs(got.Longitude*rad2deg-want) > sunLongitudeEpsilon {
		t.Errorf("apparent longitude = %.5f deg, want %.5f", got.Longitude*rad2deg, want)
	}
	// the apparent latitude of the Sun never exceeds about 1.2 arcseconds
	if math.Abs(got.Latitude) > 1.5*arcsec2rad {
		t.Errorf("apparent latitude = %.2f arcsec, want below 1.5", got.Latitude/arcsec2rad)
	}
}

func TestSunTrueVersusApparent(t *testing.T) {
	d := Date{Day: 13.0, Month: October, Year: 1992}
	eph := NewEphemeris()

	truePos := eph.SunTruePosition(d)
	apparent := eph.SunApparentPosition(d)

	// aberration pulls the apparent longitude about 20.5 arcseconds behind
	// the true one; nutation adds a few more either way
	diff := (apparent.Longitude - truePos.Longitude) / arcsec2rad
	if diff > -2 || diff < -45 {
		t.Errorf("apparent - true longitude = %.1f arcsec, want a small negative offset", diff)
	}
}

func TestSunDistanceToEarth(t *testing.T) {
	d := Date{Day: 13.0, Month: October, Year: 1992}
	if got, want := NewEphemeris().SunDistanceToEarth(d), 0.9976077; math.Abs(got-want) > 5e-5 {
		t.Errorf("SunDistanceToEarth = %.7f AU, want %.7f", got, want)
	}

	// perihelion in early January, aphelion in early July
	jan := NewEphemeris().SunDistanceToEarth(Date{Day: 3.0, Month: January, Year: 2000})
	jul := NewEphemeris().SunDistanceToEarth(Date{Day: 4.0, Month: July, Year: 2000})
	if jan >= 0.99 || jul <= 1.01 {
		t.Errorf("perihelion %.5f AU and aphelion %.5f AU distances look wrong", jan, jul)
	}
}

func TestSolstice(t *testing.T) {
	eph := NewEphemeris()

	d, err := eph.Solstice(1962, SummerSolstice)
	if err != nil {
		t.Fatalf("Solstice error: %v", err)
	}
	if d.Month != June || d.Year != 1962 {
		t.Fatalf("Solstice(1962, summer) = %+v, want a June 1962 date", d)
	}
	if got, want := d.JulianEphemerisDate(), 2437837.39245; math.Abs(got-want) > 0.001 {
		t.Errorf("summer solstice 1962 JDE = %.5f, want %.5f", got, want)
	}

	d, err = eph.Solstice(2000, WinterSolstice)
	if err != nil {
		t.Fatalf("Solstice error: %v", err)
	}
	if d.Month != December || d.Year != 2000 {
		t.Errorf("Solstice(2000, winter) = %+v, want a December 2000 date", d)
	}
}

func TestEquinox(t *testing.T) {
	eph := NewEphemeris()

	d, err := eph.Equinox(2000, VernalEquinox)
	if err != nil {
		t.Fatalf("Equinox error: %v", err)
	}
	if d.Month != March || d.Year != 2000 || d.Day < 19 || d.Day > 21 {
		t.Errorf("Equinox(2000, vernal) = %+v, want about 20 March 2000", d)
	}
	// 2000 March 20, 7h35m TD
	if got, want := d.JulianEphemerisDate(), 2451623.8160; math.Abs(got-want) > 0.001 {
		t.Errorf("vernal equinox 2000 JDE = %.4f, want %.4f", got, want)
	}

	d, err = eph.Equinox(1979, AutumnalEquinox)
	if err != nil {
		t.Fatalf("Equinox error: %v", err)
	}
	if d.Month != September || d.Year != 1979 || d.Day < 22 || d.Day > 24 {
		t.Errorf("Equinox(1979, autumnal) = %+v, want about 23 September 1979", d)
	}
}

func TestEquinoxSolsticeSelectors(t *testing.T) {
	eph := NewEphemeris()

	if _, err := eph.Equinox(2000, Equinox(1)); !errors.Is(err, ErrUnknownEquinox) {
		t.Errorf("Equinox selector error = %v, want ErrUnknownEquinox", err)
	}
	if _, err := eph.Solstice(2000, Solstice(0)); !errors.Is(err, ErrUnknownSolstice) {
		t.Errorf("Solstice selector error = %v, want ErrUnknownSolstice", err)
	}
}

func TestEquationOfTime(t *testing.T) {
	d := Date{Day: 13.0, Month: October, Year: 1992}
	// 13 minutes 42.6 seconds
	if got, want := NewEphemeris().EquationOfTime(d), 0.22850; math.Abs(got-want) > 0.005 {
		t.Errorf("EquationOfTime = %.5f h, want %.5f", got, want)
	}

	// mid-February the true sun runs behind the mean sun by about 14
	// minutes; the wrapped hour angle then sits just below a full turn
	d = Date{Day: 11.0, Month: February, Year: 2000}
	got := NewEphemeris().EquationOfTime(d)
	if got < 23.7 || got >= 24 {
		t.Errorf("EquationOfTime = %.5f h, want a value just below 24", got)
	}
}
