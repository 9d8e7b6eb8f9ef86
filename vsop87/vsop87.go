// Package vsop87 computes heliocentric positions of the eight major
// planets according to the semi-analytic planetary theory VSOP87, solution
// D: spherical coordinates referred to the mean dynamical ecliptic and
// equinox of date.
//
// The series carried here are the abridged ones: for each planet only the
// periodic terms with the largest amplitudes of the full solution are
// retained, giving positions accurate to the order of an arcsecond for the
// Earth and a fraction of an arcminute for the other planets over several
// centuries around J2000. Callers needing the precision of the full
// solution can substitute a provider built on the complete published
// tables.
//
// Source: P. Bretagnon, G. Francou. Planetary theories in rectangular and
// spherical variables. VSOP87 solutions. Astronomy and Astrophysics,
// vol. 202, 1988, pp. 309-315.
package vsop87

import "math"

// Planet designates one of the eight major planets of the Solar system.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// SphericalPoint is a heliocentric position: ecliptic longitude and
// latitude in radians and the radius vector in astronomical units.
type SphericalPoint struct {
	Longitude float64
	Latitude  float64
	Distance  float64
}

// term is one periodic term a·cos(b + c·t) of a VSOP87 series.
type term struct {
	a, b, c float64
}

// planetSeries bundles the coefficient groups of one planet. The k-th
// group of each variable is weighted by tᵏ; coefficients a are in units of
// 10⁻⁸ radians for L and B and 10⁻⁸ astronomical units for R.
type planetSeries struct {
	l, b, r [][]term
}

// sumSeries evaluates Σₖ tᵏ·Σᵢ aᵢcos(bᵢ + cᵢt) over the groups.
func sumSeries(groups [][]term, t float64) float64 {
	s := 0.0
	tn := 1.0
	for _, group := range groups {
		gs := 0.0
		for _, tm := range group {
			gs += tm.a * math.Cos(tm.b+tm.c*t)
		}
		s += gs * tn
		tn *= t
	}
	return s * 1e-8
}

// Position computes the heliocentric position of a planet at the time t,
// measured in Julian millennia of Dynamical Time since J2000. Longitude is
// shifted to [0, 2π).
func Position(t float64, p Planet) SphericalPoint {
	s := series[p]

	l := math.Mod(sumSeries(s.l, t), 2*math.Pi)
	if l < 0.0 {
		l += 2 * math.Pi
	}

	return SphericalPoint{
		Longitude: l,
		Latitude:  sumSeries(s.b, t),
		Distance:  sumSeries(s.r, t),
	}
}
