package chronos

import "math"

// normalizeLongitude shifts an angle to the range [0, 2π).
func normalizeLongitude(l float64) float64 {
	l = math.Mod(l, twoPi)
	if l < 0.0 {
		l += twoPi
	}
	return l
}

// geocentricRectangular converts the heliocentric spherical positions of a
// body and of the Earth to the rectangular coordinates of the body's
// geocentric position.
func geocentricRectangular(bsp, esp SphericalPoint) (x, y, z float64) {
	x = bsp.Distance*math.Cos(bsp.Latitude)*math.Cos(bsp.Longitude) -
		esp.Distance*math.Cos(esp.Latitude)*math.Cos(esp.Longitude)
	y = bsp.Distance*math.Cos(bsp.Latitude)*math.Sin(bsp.Longitude) -
		esp.Distance*math.Cos(esp.Latitude)*math.Sin(esp.Longitude)
	z = bsp.Distance*math.Sin(bsp.Latitude) - esp.Distance*math.Sin(esp.Latitude)
	return x, y, z
}

// fk5Correction reduces an ecliptic position reckoned in the dynamical
// frame of the planetary theory to the FK5 reference frame; t is measured
// in Julian centuries since J2000.
func fk5Correction(ep EclipticPoint, t float64) EclipticPoint {
	lp := ep.Longitude - (1.397*t+0.00031*t*t)*deg2rad

	ep.Longitude += (-0.09033 + 0.03916*(math.Cos(lp)+math.Sin(lp)*math.Tan(ep.Latitude))) * arcsec2rad
	ep.Latitude += 0.03916 * (math.Cos(lp) - math.Sin(lp)) * arcsec2rad

	return ep
}

// TruePosition computes the geometric geocentric position of a major
// planet on a given date, referred to the FK5 frame and the mean equinox
// of date, without the corrections for light-time, aberration or nutation.
// Longitude is in [0, 2π). For Earth the position degenerates to (0, 0).
func (e *Ephemeris) TruePosition(d Date, p Planet) EclipticPoint {
	if p == Earth {
		return EclipticPoint{}
	}

	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium

	psp := e.planets.HeliocentricPosition(t, p)
	esp := e.planets.HeliocentricPosition(t, Earth)

	x, y, z := geocentricRectangular(psp, esp)

	ep := EclipticPoint{
		Longitude: math.Atan2(y, x),
		Latitude:  math.Atan2(z, math.Sqrt(x*x+y*y)),
	}
	ep = fk5Correction(ep, t*10.0)
	ep.Longitude = normalizeLongitude(ep.Longitude)

	return ep
}

// lightTimeCorrected iterates the light-time fixed point for a planet seen
// from the Earth at t Julian centuries since J2000: the position computed
// on each step is the one the planet held τ = 0.0057755183·Δ days earlier,
// where Δ is the Earth distance of the previous step. It returns the
// rectangular geocentric coordinates of the converged position.
func (e *Ephemeris) lightTimeCorrected(t float64, p Planet) (x, y, z float64, err error) {
	esp := e.planets.HeliocentricPosition(t/10.0, Earth)

	tau := 0.0
	for i := 0; i < maxSolverIterations; i++ {
		psp := e.planets.HeliocentricPosition((t-tau/daysInJulianCentury)/10.0, p)

		x, y, z = geocentricRectangular(psp, esp)
		ds := math.Sqrt(x*x + y*y + z*z)

		next := lightTimePerAU * ds
		if math.Abs(next-tau) <= solverPrecision {
			return x, y, z, nil
		}
		tau = next
	}

	return 0, 0, 0, &ConvergenceError{Op: "light-time", Iterations: maxSolverIterations, Residual: tau}
}

// ApparentPosition computes the apparent geocentric position of a major
// planet on a given date: the true position corrected for light-time,
// aberration and nutation in longitude, referred to the FK5 frame and the
// true equinox of date. Longitude is in [0, 2π). For Earth the position
// degenerates to (0, 0). A *ConvergenceError is returned if the light-time
// iteration fails to settle.
func (e *Ephemeris) ApparentPosition(d Date, p Planet) (EclipticPoint, error) {
	if p == Earth {
		return EclipticPoint{}, nil
	}

	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury

	x, y, z, err := e.lightTimeCorrected(t, p)
	if err != nil {
		return EclipticPoint{}, err
	}

	ep := EclipticPoint{
		Longitude: math.Atan2(y, x),
		Latitude:  math.Atan2(z, math.Sqrt(x*x+y*y)),
	}
	ep = fk5Correction(ep, t)

	a := e.Aberration(d, ep)
	ep.Longitude += a.Longitude
	ep.Latitude += a.Latitude

	ep.Longitude += NutationInLongitude(d)
	ep.Longitude = normalizeLongitude(ep.Longitude)

	return ep, nil
}

// Aberration computes the corrections to the ecliptic longitude and
// latitude of the body at the position ep due to the annual aberration of
// light on a given date. The corrections are returned in radians in the
// respective fields of the result.
func (e *Ephemeris) Aberration(d Date, ep EclipticPoint) EclipticPoint {
	stp := e.SunTruePosition(d)

	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium
	eoe := orbitalElementsFromSeries(t, orbitalCoefficientsOfDate[Earth])
	ecc := eoe.Eccentricity
	per := eoe.PerihelionLongitude

	k := AberrationConstant * arcsec2rad

	return EclipticPoint{
		Longitude: -k * (math.Cos(stp.Longitude-ep.Longitude) -
			ecc*math.Cos(per-ep.Longitude)) / math.Cos(ep.Latitude),
		Latitude: -k * math.Sin(ep.Latitude) * (math.Sin(stp.Longitude-ep.Longitude) -
			ecc*math.Sin(per-ep.Longitude)),
	}
}

// DistanceToSun computes the distance from a major planet to the Sun on a
// given date, in astronomical units.
func (e *Ephemeris) DistanceToSun(d Date, p Planet) float64 {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium
	return e.planets.HeliocentricPosition(t, p).Distance
}

// DistanceToEarth computes the geometric distance from a major planet to
// the Earth on a given date, in astronomical units. For Earth the result
// is 0.
func (e *Ephemeris) DistanceToEarth(d Date, p Planet) float64 {
	if p == Earth {
		return 0.0
	}

	t := (d.JulianEphemerisDate() - J2000) / daysInJulianMillenium

	psp := e.planets.HeliocentricPosition(t, p)
	esp := e.planets.HeliocentricPosition(t, Earth)

	x, y, z := geocentricRectangular(psp, esp)

	return math.Sqrt(x*x + y*y + z*z)
}

// PhaseAngle computes the phase angle of a major planet on a given date:
// the angle at the planet between the directions to the Sun and to the
// Earth, in radians. For Earth the result is -1.
func (e *Ephemeris) PhaseAngle(d Date, p Planet) float64 {
	if p == Earth {
		return -1
	}

	pds := e.DistanceToSun(d, p)
	eds := e.SunDistanceToEarth(d)
	pde := e.DistanceToEarth(d, p)

	return math.Acos((pds*pds + pde*pde - eds*eds) / (2.0 * pds * pde))
}

// DiskIlluminatedFraction computes the fraction of the disk of a major
// planet illuminated by the Sun as seen from the Earth, in [0, 1]. For
// Earth the result is -1.
func (e *Ephemeris) DiskIlluminatedFraction(d Date, p Planet) float64 {
	if p == Earth {
		return -1
	}

	return (1.0 + math.Cos(e.PhaseAngle(d, p))) / 2.0
}

// ringOrientation computes the inclination of the plane of the rings of
// Saturn and the longitude of their ascending node, referred to the mean
// equinox of date, in radians; t is in Julian centuries since J2000.
//
// Source: J. Meeus. Astronomical Algorithms. Willmann-Bell Inc.,
// Richmond, Virginia, 1991, ch. 44.
func ringOrientation(t float64) (i, o float64) {
	i = evalPolynomial(t, 28.075216, -0.012998, 0.000004) * deg2rad
	o = evalPolynomial(t, 169.508470, 1.394681, 0.000412) * deg2rad
	return i, o
}

// ringPlanePosition reduces a position seen from Saturn's center to the
// frame of the ring plane with inclination i and node o.
func ringPlanePosition(p EclipticPoint, i, o float64) EclipticPoint {
	return EclipticPoint{
		Longitude: normalizeLongitude(math.Atan2(
			math.Sin(i)*math.Sin(p.Latitude)+math.Cos(i)*math.Cos(p.Latitude)*math.Sin(p.Longitude-o),
			math.Cos(p.Latitude)*math.Cos(p.Longitude-o))),
		Latitude: math.Asin(math.Sin(i)*math.Cos(p.Latitude)*math.Sin(p.Longitude-o) -
			math.Cos(i)*math.Sin(p.Latitude)),
	}
}

// saturnicentricEarthPosition computes the position of the Earth as seen
// from the center of Saturn, referred to the plane of the rings.
func (e *Ephemeris) saturnicentricEarthPosition(d Date) (EclipticPoint, error) {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury
	i, o := ringOrientation(t)

	gsp, err := e.ApparentPosition(d, Saturn)
	if err != nil {
		return EclipticPoint{}, err
	}

	return ringPlanePosition(gsp, i, o), nil
}

// saturnicentricSunPosition computes the position of the Sun as seen from
// the center of Saturn, referred to the plane of the rings, corrected for
// the aberration of the Sun as seen from Saturn.
func (e *Ephemeris) saturnicentricSunPosition(d Date) (EclipticPoint, error) {
	t := (d.JulianEphemerisDate() - J2000) / daysInJulianCentury

	// light-time corrected heliocentric position of Saturn
	esp := e.planets.HeliocentricPosition(t/10.0, Earth)
	var ssp SphericalPoint
	tau := 0.0
	converged := false
	for i := 0; i < maxSolverIterations; i++ {
		ssp = e.planets.HeliocentricPosition((t-tau/daysInJulianCentury)/10.0, Saturn)

		x, y, z := geocentricRectangular(ssp, esp)
		ds := math.Sqrt(x*x + y*y + z*z)

		next := lightTimePerAU * ds
		if math.Abs(next-tau) <= solverPrecision {
			converged = true
			break
		}
		tau = next
	}
	if !converged {
		return EclipticPoint{}, &ConvergenceError{Op: "light-time", Iterations: maxSolverIterations, Residual: tau}
	}

	i, o := ringOrientation(t)
	n := (113.6655 + 0.8771*t) * deg2rad

	// aberration of the Sun as seen from Saturn
	ssp.Longitude -= 0.01759 / ssp.Distance * deg2rad
	ssp.Latitude -= 0.000764 * math.Cos(ssp.Longitude-n) / ssp.Distance * deg2rad

	return ringPlanePosition(EclipticPoint{Longitude: ssp.Longitude, Latitude: ssp.Latitude}, i, o), nil
}

// ApparentMagnitude computes the apparent stellar magnitude of a major
// planet as seen from the Earth on a given date. The magnitude of Saturn
// accounts for the orientation of its rings. For Earth the result is -1.
//
// Source: J. Meeus. Astronomical Algorithms. Willmann-Bell Inc.,
// Richmond, Virginia, 1991, ch. 40.
func (e *Ephemeris) ApparentMagnitude(d Date, p Planet) (float64, error) {
	if p == Earth {
		return -1, nil
	}

	pds := e.DistanceToSun(d, p)
	pde := e.DistanceToEarth(d, p)

	// magnitude polynomials expect the phase angle in degrees
	i := e.PhaseAngle(d, p) * rad2deg

	switch p {
	case Mercury:
		return -0.42 + 5*math.Log10(pds*pde) + 0.0380*i - 0.000273*i*i + 0.000002*i*i*i, nil
	case Venus:
		return -4.40 + 5*math.Log10(pds*pde) + 0.0009*i + 0.000239*i*i - 0.00000065*i*i*i, nil
	case Mars:
		return -1.52 + 5*math.Log10(pds*pde) + 0.016*i, nil
	case Jupiter:
		return -9.40 + 5*math.Log10(pds*pde) + 0.005*i, nil
	case Saturn:
		sep, err := e.saturnicentricEarthPosition(d)
		if err != nil {
			return 0, err
		}
		ssp, err := e.saturnicentricSunPosition(d)
		if err != nil {
			return 0, err
		}

		b := math.Abs(sep.Latitude)
		du := math.Abs(ssp.Longitude-sep.Longitude) * rad2deg

		return -8.88 + 5*math.Log10(pds*pde) + 0.044*du - 2.60*math.Sin(b) + 1.25*math.Sin(b)*math.Sin(b), nil
	case Uranus:
		return -7.19 + 5*math.Log10(pds*pde), nil
	case Neptune:
		return -6.87 + 5*math.Log10(pds*pde), nil
	}

	return 0, ErrUnknownPlanet
}
