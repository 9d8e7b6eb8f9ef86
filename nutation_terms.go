package chronos

// Terms of the 1980 IAU Theory of Nutation. Nutation in longitude (Δψ)
// and in obliquity (Δε) are the sums
//
//	Δψ = Σ (a + b·t)·sin φ    Δε = Σ (a' + b'·t)·cos φ
//
// over 106 terms whose argument is the integer combination
//
//	φ = i₁l + i₂l' + i₃F + i₄D + i₅Ω
//
// of the four Delaunay arguments and the longitude of the mean ascending
// node of the lunar orbit (Ω). Each row below lists the five multipliers
// iᵢ followed by the coefficients a, b for longitude and a', b' for
// obliquity, all in units of 10⁻⁴ arcseconds; t is measured in Julian
// centuries since J2000.
//
// Source: P.K. Seidelman. 1980 IAU Theory of Nutation: The Final Report of
// the IAU Working Group on Nutation. U.S. Naval Observatory, Nautical
// Almanac Office, Washington, D.C., 1981.
var nutationTable = [106][9]float64{
	{0, 0, 0, 0, 1, -171996.0, -174.2, 92025.0, 8.9},
	{0, 0, 2, -2, 2, -13187.0, -1.6, 5736.0, -3.1},
	{0, 0, 2, 0, 2, -2274.0, -0.2, 977.0, -0.5},
	{0, 0, 0, 0, 2, 2062.0, 0.2, -895.0, 0.5},
	{0, -1, 0, 0, 0, -1426.0, 3.4, 54.0, -0.1},
	{1, 0, 0, 0, 0, 712.0, 0.1, -7.0, 0.0},
	{0, 1, 2, -2, 2, -517.0, 1.2, 224.0, -0.6},
	{0, 0, 2, 0, 1, -386.0, -0.4, 200.0, 0.0},
	{1, 0, 2, 0, 2, -301.0, 0.0, 129.0, -0.1},
	{0, -1, 2, -2, 2, 217.0, -0.5, -95.0, 0.3},
	{-1, 0, 0, 2, 0, 158.0, 0.0, -1.0, 0.0},
	{0, 0, 2, -2, 1, 129.0, 0.1, -70.0, 0.0},
	{-1, 0, 2, 0, 2, 123.0, 0.0, -53.0, 0.0},
	{1, 0, 0, 0, 1, 63.0, 0.1, -33.0, 0.0},
	{0, 0, 0, 2, 0, 63.0, 0.0, -2.0, 0.0},
	{-1, 0, 2, 2, 2, -59.0, 0.0, 26.0, 0.0},
	{-1, 0, 0, 0, 1, -58.0, -0.1, 32.0, 0.0},
	{1, 0, 2, 0, 1, -51.0, 0.0, 27.0, 0.0},
	{-2, 0, 0, 2, 0, -48.0, 0.0, 1.0, 0.0},
	{-2, 0, 2, 0, 1, 46.0, 0.0, -24.0, 0.0},
	{0, 0, 2, 2, 2, -38.0, 0.0, 16.0, 0.0},
	{2, 0, 2, 0, 2, -31.0, 0.0, 13.0, 0.0},
	{2, 0, 0, 0, 0, 29.0, 0.0, -1.0, 0.0},
	{1, 0, 2, -2, 2, 29.0, 0.0, -12.0, 0.0},
	{0, 0, 2, 0, 0, 26.0, 0.0, -1.0, 0.0},
	{0, 0, 2, -2, 0, -22.0, 0.0, 0.0, 0.0},
	{-1, 0, 2, 0, 1, 21.0, 0.0, -10.0, 0.0},
	{0, 2, 0, 0, 0, 17.0, -0.1, 0.0, 0.0},
	{0, 2, 2, -2, 2, -16.0, 0.1, 7.0, 0.0},
	{-1, 0, 0, 2, 1, 16.0, 0.0, -8.0, 0.0},
	{0, 1, 0, 0, 1, -15.0, 0.0, 9.0, 0.0},
	{1, 0, 0, -2, 1, -13.0, 0.0, 7.0, 0.0},
	{0, -1, 0, 0, 1, -12.0, 0.0, 6.0, 0.0},
	{2, 0, -2, 0, 0, 11.0, 0.0, 0.0, 0.0},
	{-1, 0, 2, 2, 1, -10.0, 0.0, 5.0, 0.0},
	{1, 0, 2, 2, 2, -8.0, 0.0, 3.0, 0.0},
	{0, -1, 2, 0, 2, -7.0, 0.0, 3.0, 0.0},
	{0, 0, 2, 2, 1, -7.0, 0.0, 3.0, 0.0},
	{1, 1, 0, -2, 0, -7.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 2, 7.0, 0.0, -3.0, 0.0},
	{-2, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	{0, 0, 0, 2, 1, -6.0, 0.0, 3.0, 0.0},
	{2, 0, 2, -2, 2, 6.0, 0.0, -3.0, 0.0},
	{1, 0, 0, 2, 0, 6.0, 0.0, 0.0, 0.0},
	{1, 0, 2, -2, 1, 6.0, 0.0, -3.0, 0.0},
	{0, 0, 0, -2, 1, -5.0, 0.0, 3.0, 0.0},
	{0, -1, 2, -2, 1, -5.0, 0.0, 3.0, 0.0},
	{2, 0, 2, 0, 1, -5.0, 0.0, 3.0, 0.0},
	{1, -1, 0, 0, 0, 5.0, 0.0, 0.0, 0.0},
	{1, 0, 0, -1, 0, -4.0, 0.0, 0.0, 0.0},
	{0, 0, 0, 1, 0, -4.0, 0.0, 0.0, 0.0},
	{0, 1, 0, -2, 0, -4.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 0, 0, 4.0, 0.0, 0.0, 0.0},
	{2, 0, 0, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{0, 1, 2, -2, 1, 4.0, 0.0, -2.0, 0.0},
	{1, 1, 0, 0, 0, -3.0, 0.0, 0.0, 0.0},
	{1, -1, 0, -1, 0, -3.0, 0.0, 0.0, 0.0},
	{-1, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{0, -1, 2, 2, 2, -3.0, 0.0, 1.0, 0.0},
	{1, -1, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{3, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{-2, 0, 2, 0, 2, -3.0, 0.0, 1.0, 0.0},
	{1, 0, 2, 0, 0, 3.0, 0.0, 0.0, 0.0},
	{-1, 0, 2, 4, 2, -2.0, 0.0, 1.0, 0.0},
	{1, 0, 0, 0, 2, -2.0, 0.0, 1.0, 0.0},
	{-1, 0, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{0, -2, 2, -2, 1, -2.0, 0.0, 1.0, 0.0},
	{-2, 0, 0, 0, 1, -2.0, 0.0, 1.0, 0.0},
	{2, 0, 0, 0, 1, 2.0, 0.0, -1.0, 0.0},
	{3, 0, 0, 0, 0, 2.0, 0.0, 0.0, 0.0},
	{1, 1, 2, 0, 2, 2.0, 0.0, -1.0, 0.0},
	{0, 0, 2, 1, 2, 2.0, 0.0, -1.0, 0.0},
	{1, 0, 0, 2, 1, -1.0, 0.0, 0.0, 0.0},
	{1, 0, 2, 2, 1, -1.0, 0.0, 1.0, 0.0},
	{1, 1, 0, -2, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 1, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, 2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, -2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, 2, -2, 0, -1.0, 0.0, 0.0, 0.0},
	{1, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	{2, 0, 0, -4, 0, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, 4, 2, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 2, -1, 2, -1.0, 0.0, 0.0, 0.0},
	{-2, 0, 2, 4, 2, -1.0, 0.0, 1.0, 0.0},
	{2, 0, 2, 2, 2, -1.0, 0.0, 0.0, 0.0},
	{0, -1, 2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, -2, 0, 1, -1.0, 0.0, 0.0, 0.0},
	{0, 0, 4, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{1, 1, 2, -2, 2, 1.0, 0.0, -1.0, 0.0},
	{3, 0, 2, -2, 2, 1.0, 0.0, 0.0, 0.0},
	{-2, 0, 2, 2, 2, 1.0, 0.0, -1.0, 0.0},
	{-1, 0, 0, 0, 2, 1.0, 0.0, -1.0, 0.0},
	{0, 0, -2, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, 2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{-1, 0, 4, 0, 2, 1.0, 0.0, 0.0, 0.0},
	{2, 1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{2, 0, 0, 2, 0, 1.0, 0.0, 0.0, 0.0},
	{2, 0, 2, -2, 1, 1.0, 0.0, -1.0, 0.0},
	{2, 0, -2, 0, 1, 1.0, 0.0, 0.0, 0.0},
	{1, -1, 0, -2, 0, 1.0, 0.0, 0.0, 0.0},
	{-1, 0, 0, 1, 1, 1.0, 0.0, 0.0, 0.0},
	{-1, -1, 0, 2, 1, 1.0, 0.0, 0.0, 0.0},
	{0, 1, 0, 1, 0, 1.0, 0.0, 0.0, 0.0},
}

// nutationSeries projects the coefficient pair at columns ai, bi out of the
// nutation table.
func nutationSeries(ai, bi int) []PeriodicTerm {
	terms := make([]PeriodicTerm, len(nutationTable))
	for i, row := range nutationTable {
		terms[i] = PeriodicTerm{
			Multipliers: [5]float64{row[0], row[1], row[2], row[3], row[4]},
			A:           row[ai],
			B:           row[bi],
		}
	}
	return terms
}

var (
	nutationLongitudeTerms = nutationSeries(5, 6)
	nutationObliquityTerms = nutationSeries(7, 8)
)
