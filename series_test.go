package chronos

import (
	"math"
	"testing"
)

func TestEvalPolynomial(t *testing.T) {
	tests := []struct {
		name         string
		t            float64
		coefficients []float64
		want         float64
	}{
		{"empty", 1.0, nil, 0},
		{"constant", 5.0, []float64{3}, 3},
		{"linear", 2.0, []float64{1, 2}, 5},
		{"cubic", 3.0, []float64{1, 0, 2, 1}, 1 + 2*9 + 27},
		{"at zero", 0.0, []float64{7, 100, 100}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalPolynomial(tt.t, tt.coefficients...); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("evalPolynomial(%v, %v) = %f, want %f", tt.t, tt.coefficients, got, tt.want)
			}
		})
	}
}

func TestSumSineSeries(t *testing.T) {
	terms := []PeriodicTerm{
		{Multipliers: [5]float64{1, 0, 0, 0, 0}, A: 2, B: 0},
		{Multipliers: [5]float64{0, 1, 0, 0, 0}, A: 0, B: 1},
	}
	// arguments chosen so both sines evaluate to one
	var args [5]float64 // arcseconds
	args[0] = math.Pi / 2 / arcsec2rad
	args[1] = math.Pi / 2 / arcsec2rad

	if got, want := sumSineSeries(terms, args, 2.0), 2.0+2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("sumSineSeries = %f, want %f", got, want)
	}
	if got, want := sumCosineSeries(terms, args, 2.0), 0.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("sumCosineSeries = %f, want %f", got, want)
	}
}

func TestTermArgument(t *testing.T) {
	m := [5]float64{1, -1, 0, 2, 0}
	args := [5]float64{10, 4, 100, 3, 7} // arcseconds
	if got, want := termArgument(m, args), 12*arcsec2rad; math.Abs(got-want) > 1e-15 {
		t.Errorf("termArgument = %g, want %g", got, want)
	}
}
