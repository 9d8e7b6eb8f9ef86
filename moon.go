package chronos

import "math"

// MoonTruePosition computes the geometric geocentric position of the Moon
// on a given date, referred to the mean equinox of date. Longitude is in
// [0, 2π).
func (e *Ephemeris) MoonTruePosition(d Date) EclipticPoint {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury

	sp := e.moon.GeocentricPosition(t)

	return EclipticPoint{
		Longitude: normalizeLongitude(sp.Longitude),
		Latitude:  sp.Latitude,
	}
}

// MoonApparentPosition computes the apparent geocentric position of the
// Moon on a given date: the true position corrected for nutation in
// longitude, referred to the true equinox of date. Longitude is in
// [0, 2π).
func (e *Ephemeris) MoonApparentPosition(d Date) EclipticPoint {
	ep := e.MoonTruePosition(d)

	ep.Longitude = normalizeLongitude(ep.Longitude + NutationInLongitude(d))

	return ep
}

// MoonDistanceToEarth computes the distance from the Earth to the Moon on
// a given date, in astronomical units.
func (e *Ephemeris) MoonDistanceToEarth(d Date) float64 {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury

	return e.moon.GeocentricPosition(t).Distance / AstronomicalUnit
}

// MoonPhaseAngle computes the phase angle of the Moon on a given date: the
// angle at the Moon between the directions to the Sun and to the Earth, in
// radians.
func (e *Ephemeris) MoonPhaseAngle(d Date) float64 {
	mep := e.MoonApparentPosition(d)
	sep := e.SunApparentPosition(d)

	// geocentric elongation of the Moon from the Sun (ψ)
	p := math.Acos(math.Cos(mep.Latitude) * math.Cos(mep.Longitude-sep.Longitude))

	des := e.SunDistanceToEarth(d)
	dem := e.MoonDistanceToEarth(d)

	return math.Atan2(des*math.Sin(p), dem-des*math.Cos(p))
}

// MoonDiskIlluminatedFraction computes the fraction of the disk of the
// Moon illuminated by the Sun as seen from the Earth, in [0, 1].
func (e *Ephemeris) MoonDiskIlluminatedFraction(d Date) float64 {
	return (1.0 + math.Cos(e.MoonPhaseAngle(d))) / 2.0
}

// MoonBrightLimbPositionAngle computes the position angle of the midpoint
// of the bright limb of the Moon on a given date, reckoned eastward from
// the north point of the disk, in [0, 2π).
func (e *Ephemeris) MoonBrightLimbPositionAngle(d Date) float64 {
	sp := e.SunApparentPosition(d)
	mp := e.MoonApparentPosition(d)

	obl := ObliquityOfEcliptic(d) + NutationInObliquity(d)

	sep := EclipticToEquatorial(sp, obl)
	mep := EclipticToEquatorial(mp, obl)

	x := math.Atan2(math.Cos(sep.Declination)*math.Sin(sep.RightAscension-mep.RightAscension),
		math.Sin(sep.Declination)*math.Cos(mep.Declination)-
			math.Cos(sep.Declination)*math.Sin(mep.Declination)*math.Cos(sep.RightAscension-mep.RightAscension))

	if x < 0.0 {
		x += twoPi
	}

	return x
}
