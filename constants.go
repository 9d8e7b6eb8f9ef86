package chronos

import "math"

// Time-scale constants
const (
	// J2000 is the Julian date of the beginning of the standard epoch J2000.
	J2000 = 2451545.0

	daysInJulianCentury   = 36525.0  // a Julian century consists of exactly 36525 equal days
	daysInJulianMillenium = 365250.0 // a Julian millenium consists of exactly 365250 equal days

	secondsPerDay = 86400.0
	hoursPerDay   = 24.0
)

// Angular conversion factors
const (
	twoPi      = 2 * math.Pi
	deg2rad    = math.Pi / 180.0
	rad2deg    = 180.0 / math.Pi
	arcsec2rad = math.Pi / 648000.0 // π = 648000"
	rad2hours  = 12.0 / math.Pi     // π = 12ʰ
	hours2rad  = math.Pi / 12.0
	degPerHour = 15.0 // 1ʰ = 15°
)

// Physical and astronomical constants
const (
	// AberrationConstant is the constant of annual aberration at J2000,
	// measured in arcseconds.
	AberrationConstant = 20.49552

	// AstronomicalUnit is one astronomical unit (AU) measured in kilometers.
	AstronomicalUnit = 149597871.0

	// EarthEquatorialRadius and EarthPolarRadius are measured in kilometers.
	EarthEquatorialRadius = 6378.14
	EarthPolarRadius      = 6356.755

	// EarthFlattening is the flattening of the Earth geoid.
	EarthFlattening = 0.00335281

	// lightTimePerAU is the time taken by light to travel one astronomical
	// unit, measured in days.
	lightTimePerAU = 0.0057755183
)

// Iteration bounds for the local fixed-point solvers. The series involved
// contract quickly, so the cap is generous; exceeding it is reported as a
// *ConvergenceError instead of looping forever.
const (
	maxSolverIterations = 20
	solverPrecision     = 1e-7
)
