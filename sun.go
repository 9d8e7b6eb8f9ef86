package chronos

import "math"

// Equinox selects an equinox of the year. The numeric values order the
// four seasonal points so that the mean ecliptic longitude of the Sun at
// the event is the value times 90°.
type Equinox int

const (
	VernalEquinox   Equinox = 0
	AutumnalEquinox Equinox = 2
)

// Solstice selects a solstice of the year.
type Solstice int

const (
	SummerSolstice Solstice = 1
	WinterSolstice Solstice = 3
)

// sunEclipticPosition computes the geocentric ecliptic position of the Sun
// as the inverse of the heliocentric position of the Earth, reduced to the
// FK5 frame. The radius vector of the Earth is returned alongside, in
// astronomical units.
func (e *Ephemeris) sunEclipticPosition(d Date) (EclipticPoint, float64) {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury

	sp := e.planets.HeliocentricPosition(t/10.0, Earth)

	// the frame of the planetary theory differs slightly from FK5
	lp := sp.Longitude - (1.397*t+0.00031*t*t)*deg2rad
	sp.Longitude -= 0.09033 * arcsec2rad
	sp.Latitude += 0.03916 * (math.Cos(lp) - math.Sin(lp)) * arcsec2rad

	return EclipticPoint{
		Longitude: sp.Longitude + math.Pi,
		Latitude:  -sp.Latitude,
	}, sp.Distance
}

// SunTruePosition computes the geometric geocentric position of the Sun on
// a given date, referred to the FK5 frame and the mean equinox of date.
// Longitude is in [0, 2π).
func (e *Ephemeris) SunTruePosition(d Date) EclipticPoint {
	ep, _ := e.sunEclipticPosition(d)
	ep.Longitude = normalizeLongitude(ep.Longitude)
	return ep
}

// SunApparentPosition computes the apparent geocentric position of the Sun
// on a given date: the true position corrected for nutation in longitude
// and for aberration, referred to the true equinox of date. Longitude is
// in [0, 2π).
func (e *Ephemeris) SunApparentPosition(d Date) EclipticPoint {
	ep, r := e.sunEclipticPosition(d)

	ep.Longitude += NutationInLongitude(d)

	// for the Sun the aberration correction reduces to -k/R, with R the
	// Sun-Earth distance in astronomical units
	ep.Longitude -= AberrationConstant * arcsec2rad / r

	ep.Longitude = normalizeLongitude(ep.Longitude)

	return ep
}

// SunDistanceToEarth computes the distance from the Earth to the Sun on a
// given date, in astronomical units.
func (e *Ephemeris) SunDistanceToEarth(d Date) float64 {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium
	return e.planets.HeliocentricPosition(t, Earth).Distance
}

// equinoxSolstice searches for the instant of the year y at which the
// apparent longitude of the Sun is k·90°. The search starts from the 21st
// of the corresponding month and applies the correction
//
//	c = 58·sin(k·90° - λ) days
//
// to the Julian ephemeris date until it settles below the precision bound.
//
// Source: J. Meeus. Astronomical Algorithms. Willmann-Bell Inc.,
// Richmond, Virginia, 1991, ch. 26.
func (e *Ephemeris) equinoxSolstice(y, k int) (Date, error) {
	d := Date{Day: 21.0, Month: Month((k + 1) * 3), Year: y}
	jde := d.JulianEphemerisDate()

	c := 0.0
	for i := 0; i < maxSolverIterations; i++ {
		sp := e.SunApparentPosition(d)
		c = 58.0 * math.Sin(float64(k)*math.Pi/2.0-sp.Longitude)

		if math.Abs(c) <= solverPrecision {
			return d, nil
		}

		jde += c
		d = CalendarDate(jde - d.DeltaT()/secondsPerDay)
	}

	return Date{}, &ConvergenceError{Op: "equinox search", Iterations: maxSolverIterations, Residual: c}
}

// Equinox computes the date of an equinox of a given year in Universal
// Time, accurate to the second. ErrUnknownEquinox is returned when the
// selector is not one of the Equinox values.
func (e *Ephemeris) Equinox(year int, eq Equinox) (Date, error) {
	if eq != VernalEquinox && eq != AutumnalEquinox {
		return Date{}, ErrUnknownEquinox
	}
	return e.equinoxSolstice(year, int(eq))
}

// Solstice computes the date of a solstice of a given year in Universal
// Time, accurate to the second. ErrUnknownSolstice is returned when the
// selector is not one of the Solstice values.
func (e *Ephemeris) Solstice(year int, s Solstice) (Date, error) {
	if s != SummerSolstice && s != WinterSolstice {
		return Date{}, ErrUnknownSolstice
	}
	return e.equinoxSolstice(year, int(s))
}

// EquationOfTime computes the equation of time on a given date: the
// difference between apparent and mean solar time, expressed in decimal
// hours in [0ʰ, 24ʰ).
func (e *Ephemeris) EquationOfTime(d Date) float64 {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium
	eoe := orbitalElementsFromSeries(t, orbitalCoefficientsOfDate[Earth])

	// the geocentric mean longitude of the Sun is the heliocentric mean
	// longitude of the Earth plus π
	l := eoe.MeanLongitude + math.Pi

	n := NutationInLongitude(d)
	obl := ObliquityOfEcliptic(d) + NutationInObliquity(d)

	ap := e.SunApparentPosition(d)
	ep := EclipticToEquatorial(ap, obl)

	r := l - ep.RightAscension + n*math.Cos(obl)

	r = math.Mod(r, twoPi)
	if r < 0.0 {
		r += twoPi
	}

	return r * rad2hours
}
