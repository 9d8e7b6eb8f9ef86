package chronos

import "math"

// GeographicPoint is a location on the Earth's surface. Longitude is
// positive west of Greenwich. Both coordinates are in radians.
type GeographicPoint struct {
	Longitude float64
	Latitude  float64
}

// EclipticPoint is a position on the celestial sphere in ecliptic
// coordinates, in radians.
type EclipticPoint struct {
	Longitude float64
	Latitude  float64
}

// EquatorialPoint is a position on the celestial sphere in equatorial
// coordinates, in radians.
type EquatorialPoint struct {
	RightAscension float64
	Declination    float64
}

// HorizontalPoint is a position on the celestial sphere in horizontal
// coordinates, in radians. Azimuth is reckoned from the south, positive
// westward.
type HorizontalPoint struct {
	Azimuth   float64
	Elevation float64
}

// SphericalPoint is a position in a body-centred spherical frame:
// longitude and latitude in radians and the radius vector in the frame's
// distance unit.
type SphericalPoint struct {
	Longitude float64
	Latitude  float64
	Distance  float64
}

// EquatorialToEcliptic converts a point from the equatorial to the
// ecliptic coordinate system; e is the obliquity of the ecliptic in
// radians.
func EquatorialToEcliptic(eqp EquatorialPoint, e float64) EclipticPoint {
	return EclipticPoint{
		Longitude: math.Atan2(math.Sin(eqp.RightAscension)*math.Cos(e)+
			math.Tan(eqp.Declination)*math.Sin(e), math.Cos(eqp.RightAscension)),
		Latitude: math.Asin(math.Sin(eqp.Declination)*math.Cos(e) -
			math.Cos(eqp.Declination)*math.Sin(e)*math.Sin(eqp.RightAscension)),
	}
}

// EclipticToEquatorial converts a point from the ecliptic to the
// equatorial coordinate system; e is the obliquity of the ecliptic in
// radians.
func EclipticToEquatorial(ecp EclipticPoint, e float64) EquatorialPoint {
	return EquatorialPoint{
		RightAscension: math.Atan2(math.Sin(ecp.Longitude)*math.Cos(e)-
			math.Tan(ecp.Latitude)*math.Sin(e), math.Cos(ecp.Longitude)),
		Declination: math.Asin(math.Sin(ecp.Latitude)*math.Cos(e) +
			math.Cos(ecp.Latitude)*math.Sin(e)*math.Sin(ecp.Longitude)),
	}
}

// EquatorialToHorizontal converts an equatorial position to horizontal
// coordinates as seen from the location gp at the date d.
func EquatorialToHorizontal(d Date, gp GeographicPoint, ep EquatorialPoint) HorizontalPoint {
	gmst := GreenwichMeanSiderealTime(d) * hours2rad

	// local hour angle (H)
	lha := gmst - gp.Longitude - ep.RightAscension

	return HorizontalPoint{
		Azimuth: math.Atan2(math.Sin(lha),
			math.Cos(lha)*math.Sin(gp.Latitude)-math.Tan(ep.Declination)*math.Cos(gp.Latitude)),
		Elevation: math.Asin(math.Sin(gp.Latitude)*math.Sin(ep.Declination) +
			math.Cos(gp.Latitude)*math.Cos(ep.Declination)*math.Cos(lha)),
	}
}

// HorizontalToEquatorial converts a horizontal position observed from the
// location gp at the date d to equatorial coordinates.
func HorizontalToEquatorial(d Date, gp GeographicPoint, hp HorizontalPoint) EquatorialPoint {
	gmst := GreenwichMeanSiderealTime(d) * hours2rad

	lha := math.Atan2(math.Sin(hp.Azimuth),
		math.Cos(hp.Azimuth)*math.Sin(gp.Latitude)+math.Tan(hp.Elevation)*math.Cos(gp.Latitude))

	return EquatorialPoint{
		RightAscension: gmst - gp.Longitude - lha,
		Declination: math.Asin(math.Sin(gp.Latitude)*math.Sin(hp.Elevation) -
			math.Cos(gp.Latitude)*math.Cos(hp.Elevation)*math.Cos(hp.Azimuth)),
	}
}

// GeodesicDistance computes the distance in kilometers between two points
// on the Earth's surface along the geodesic line, taking into account the
// flattening of the Earth. The accuracy of the method is of order 50 m.
//
// Source: J. Meeus. Astronomical Algorithms. Willmann-Bell Inc.,
// Richmond, Virginia, 1991, ch. 11.
func GeodesicDistance(gp1, gp2 GeographicPoint) float64 {
	f := (gp1.Latitude + gp2.Latitude) / 2.0
	g := (gp1.Latitude - gp2.Latitude) / 2.0
	l := (gp1.Longitude - gp2.Longitude) / 2.0

	s := math.Sin(g)*math.Sin(g)*math.Cos(l)*math.Cos(l) +
		math.Cos(f)*math.Cos(f)*math.Sin(l)*math.Sin(l)
	c := math.Cos(g)*math.Cos(g)*math.Cos(l)*math.Cos(l) +
		math.Sin(f)*math.Sin(f)*math.Sin(l)*math.Sin(l)

	o := math.Atan2(math.Sqrt(s), math.Sqrt(c))
	r := math.Sqrt(s*c) / o

	d := 2 * o * EarthEquatorialRadius
	h1 := (3*r - 1) / 2 / c
	h2 := (3*r + 1) / 2 / s

	return d * (1 +
		EarthFlattening*h1*math.Sin(f)*math.Sin(f)*math.Cos(g)*math.Cos(g) -
		EarthFlattening*h2*math.Cos(f)*math.Cos(f)*math.Sin(g)*math.Sin(g))
}
