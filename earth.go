package chronos

import "math"

// delaunayArguments computes the four fundamental arguments of lunar
// theory and the longitude of the mean ascending node of the lunar orbit
// for t, in Julian centuries since J2000. The values returned are in
// arcseconds, ordered l, l′, F, D, Ω as the nutation series expects.
//
// Source: P.K. Seidelman. 1980 IAU Theory of Nutation: The Final Report of
// the IAU Working Group on Nutation, Celestial Mechanics, vol. 27,
// May 1982, p. 20.
func delaunayArguments(t float64) [5]float64 {
	return [5]float64{
		evalPolynomial(t, 485866.733, 1717915922.633, 31.310, 0.064),  // l, mean anomaly of the Moon
		evalPolynomial(t, 1287099.804, 129596581.224, -0.577, -0.012), // l′, mean anomaly of the Sun
		evalPolynomial(t, 335778.877, 1739527263.137, -13.257, 0.011), // F, mean argument of latitude of the Moon
		evalPolynomial(t, 1072261.307, 1602961601.328, -6.891, 0.019), // D, mean elongation of the Moon from the Sun
		evalPolynomial(t, 450160.280, -6962890.539, 7.455, 0.008),     // Ω, longitude of the mean ascending node
	}
}

// NutationInLongitude computes the nutation in longitude (Δψ) of the
// Earth's rotation axis on a given date according to the 1980 IAU Theory
// of Nutation. The result is expressed in radians.
func NutationInLongitude(d Date) float64 {
	t := (d.JulianDate() - J2000) / daysInJulianCentury

	n := sumSineSeries(nutationLongitudeTerms, delaunayArguments(t), t)

	// coefficients are given in 10⁻⁴ arcseconds
	return n * 1e-4 * arcsec2rad
}

// NutationInObliquity computes the nutation in obliquity (Δε) of the
// Earth's rotation axis on a given date according to the 1980 IAU Theory
// of Nutation. The result is expressed in radians.
func NutationInObliquity(d Date) float64 {
	t := (d.JulianDate() - J2000) / daysInJulianCentury

	n := sumCosineSeries(nutationObliquityTerms, delaunayArguments(t), t)

	return n * 1e-4 * arcsec2rad
}

// ObliquityOfEcliptic computes the mean obliquity of the ecliptic (ε) on a
// given date, i.e. not corrected for nutation. The result is expressed in
// radians.
//
// Source: J.H. Lieske, T. Lederle, W. Fricke, B. Morando. Expressions for
// the Precession Quantities Based upon the IAU (1976) System of
// Astronomical Constants, Astronomy and Astrophysics, vol. 58, 1977, p. 15.
func ObliquityOfEcliptic(d Date) float64 {
	t := (d.JulianDate() - J2000) / daysInJulianCentury

	e := evalPolynomial(t, 84381.448, -46.8150, -0.00059, 0.001813)

	return e * arcsec2rad
}

// Precession reduces an ecliptic position referred to the mean equinox of
// the epoch jd0 (a Julian date) to the mean equinox of the epoch jd. Both
// coordinates of the input are in radians.
func Precession(ep EclipticPoint, jd0, jd float64) EclipticPoint {
	t0 := (jd0 - J2000) / daysInJulianCentury
	t1 := (jd - jd0) / daysInJulianCentury

	// precession angles, in arcseconds
	eta := (47.0029-0.06603*t0+0.000598*t0*t0)*t1 +
		(-0.03302+0.000598*t0)*t1*t1 + 0.000060*t1*t1*t1
	pi := 629554.9824 + 3289.4789*t0 + 0.60622*t0*t0 -
		(869.8089+0.50491*t0)*t1 + 0.03536*t1*t1
	p := (5029.0966+2.22226*t0-0.000042*t0*t0)*t1 +
		(1.11113-0.000042*t0)*t1*t1 - 0.000006*t1*t1*t1

	eta *= arcsec2rad
	pi *= arcsec2rad
	p *= arcsec2rad

	a := math.Cos(eta)*math.Cos(ep.Latitude)*math.Sin(pi-ep.Longitude) -
		math.Sin(eta)*math.Sin(ep.Latitude)
	b := math.Cos(ep.Latitude) * math.Cos(pi-ep.Longitude)
	c := math.Cos(eta)*math.Sin(ep.Latitude) +
		math.Sin(eta)*math.Cos(ep.Latitude)*math.Sin(pi-ep.Longitude)

	return EclipticPoint{
		Longitude: -math.Atan2(a, b) + p + pi,
		Latitude:  math.Asin(c),
	}
}
