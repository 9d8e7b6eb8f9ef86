package chronos

import "math"

// Tabulated and observed values of the Earth's clock error ΔT = TD - UT,
// in seconds, with their uncertainty in the third column.
//
// Source: L.V. Morrison, F.R. Stephenson. Historical values of the Earth's
// clock error ΔT and the calculation of eclipses. Journal for the History
// of Astronomy, vol. 35, 2004, pp. 327-336, with the 2005 addendum, and
// http://maia.usno.navy.mil/ser7/deltat.preds for the modern values.
const (
	deltaTTableStartYear = -1000 // lower limit of the ΔT tables
	deltaTTableEndYear   = 2020  // upper limit of the ΔT tables

	preTelescopeEraStartYear    = -1000 // start year of the pre-telescope era, 1001 B.C.
	preTelescopeEraYearInterval = 100   // tabulation step of the pre-telescope era

	telescopeEraStartYear    = 1700 // start year of the telescope (modern) era
	telescopeEraYearInterval = 10   // tabulation step of the telescope era
)

// ΔT every 100 years from 1001 B.C. to 1700 A.D., derived from records of
// historical eclipses
var deltaTPreTelescopeEra = [...][3]int{
	{-1000, 25400, 640},
	{-900, 23700, 590},
	{-800, 22000, 550},
	{-700, 20400, 500},
	{-600, 18800, 460},
	{-500, 17190, 430},
	{-400, 15530, 390},
	{-300, 14080, 360},
	{-200, 12790, 330},
	{-100, 11640, 290},
	{0, 10580, 260},
	{100, 9600, 240},
	{200, 8640, 210},
	{300, 7680, 180},
	{400, 6700, 160},
	{500, 5710, 140},
	{600, 4740, 120},
	{700, 3810, 100},
	{800, 2960, 80},
	{900, 2200, 70},
	{1000, 1570, 55},
	{1100, 1090, 40},
	{1200, 740, 30},
	{1300, 490, 20},
	{1400, 320, 20},
	{1500, 200, 20},
	{1600, 120, 20},
	{1700, 9, 5},
}

// ΔT every 10 years from 1700 A.D. to 2020 A.D., from direct telescopic
// observations
var deltaTTelescopeEra = [...][3]int{
	{1700, 9, 5},
	{1710, 10, 3},
	{1720, 11, 3},
	{1730, 11, 3},
	{1740, 12, 2},
	{1750, 13, 2},
	{1760, 15, 2},
	{1770, 16, 2},
	{1780, 17, 1},
	{1790, 17, 1},
	{1800, 14, 1},
	{1810, 13, 1},
	{1820, 12, 1},
	{1830, 8, 1},
	{1840, 6, 0},
	{1850, 7, 0},
	{1860, 8, 0},
	{1870, 2, 0},
	{1880, -5, 0},
	{1890, -6, 0},
	{1900, -3, 0},
	{1910, 10, 0},
	{1920, 21, 0},
	{1930, 24, 0},
	{1940, 24, 0},
	{1950, 29, 0},
	{1960, 33, 0},
	{1970, 40, 0},
	{1980, 51, 0},
	{1990, 57, 0},
	{2000, 65, 0},
	{2010, 66, 0},
	{2020, 71, 4},
}

// linearInterpolate evaluates the line through (x1, y1) and (x2, y2) at x.
func linearInterpolate(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}

// DeltaT computes the difference ΔT = TD - UT between Dynamical Time and
// Universal Time for the date, in seconds. Inside the tabulated span
// (1001 B.C. to 2020 A.D.) the value is interpolated linearly between the
// surrounding table entries; outside it the parabolic long-term fit
//
//	ΔT = -20 + 32 ((year - 1820) / 100)²
//
// of Morrison and Stephenson is used instead.
func (d Date) DeltaT() float64 {
	if d.Year < deltaTTableStartYear || d.Year > deltaTTableEndYear {
		return -20.0 + 32.0*float64(d.Year-1820)*float64(d.Year-1820)/10000.0
	}

	// decimal years interpolate the date within its tabulation interval
	leap := 0.0
	if IsLeapYear(d.Year) {
		leap = 1.0
	}
	dy := float64(d.Year) + float64(d.DayOfYear())/(365.0+leap)

	var table [][3]int
	var i int
	if d.Year < telescopeEraStartYear {
		table = deltaTPreTelescopeEra[:]
		i = int(math.Floor(float64(d.Year-preTelescopeEraStartYear) / preTelescopeEraYearInterval))
	} else {
		table = deltaTTelescopeEra[:]
		i = int(math.Floor(float64(d.Year-telescopeEraStartYear) / telescopeEraYearInterval))
		// the last tabulated year has no following entry to interpolate toward
		if i == len(table)-1 {
			i--
		}
	}

	return linearInterpolate(dy,
		float64(table[i][0]), float64(table[i+1][0]),
		float64(table[i][1]), float64(table[i+1][1]))
}
