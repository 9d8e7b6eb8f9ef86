package chronos

import "math"

// evalPolynomial evaluates Σ cᵢtⁱ with the coefficients given in ascending
// order of power.
func evalPolynomial(t float64, coefficients ...float64) float64 {
	p := 0.0
	for i := len(coefficients) - 1; i >= 0; i-- {
		p = p*t + coefficients[i]
	}
	return p
}

// PeriodicTerm is one term of a trigonometric series with a linearly
// time-dependent amplitude. The argument of the term is the dot product of
// Multipliers with a vector of fundamental arguments expressed in
// arcseconds, and its contribution is (A + B·t)·sin or cos of that
// argument.
type PeriodicTerm struct {
	Multipliers [5]float64
	A, B        float64
}

// termArgument folds the fundamental arguments into the term's argument,
// converted from arcseconds to radians.
func termArgument(multipliers [5]float64, args [5]float64) float64 {
	a := 0.0
	for i := range multipliers {
		a += multipliers[i] * args[i]
	}
	return a * arcsec2rad
}

// sumSineSeries accumulates (A + B·t)·sin(argument) over the terms. The
// fundamental arguments are given in arcseconds; the unit of the result is
// whatever the coefficients are expressed in.
func sumSineSeries(terms []PeriodicTerm, args [5]float64, t float64) float64 {
	s := 0.0
	for _, pt := range terms {
		s += (pt.A + pt.B*t) * math.Sin(termArgument(pt.Multipliers, args))
	}
	return s
}

// sumCosineSeries accumulates (A + B·t)·cos(argument) over the terms.
func sumCosineSeries(terms []PeriodicTerm, args [5]float64, t float64) float64 {
	s := 0.0
	for _, pt := range terms {
		s += (pt.A + pt.B*t) * math.Cos(termArgument(pt.Multipliers, args))
	}
	return s
}
