// Package elp2000 computes geocentric ecliptic coordinates of the Moon
// from an abridged form of the ELP 2000-82B lunar theory
// (Chapront-Touze and Chapront 1983).
//
// The series carries the periodic terms with amplitudes above about
// 0.0005 degree in longitude and 0.5 km in distance. Resulting positions
// are good to roughly 10 arcseconds in longitude, 4 arcseconds in
// latitude and a few kilometres in distance, which is sufficient for
// almanac work. Coordinates are referred to the mean equinox of date.
package elp2000

import "math"

const deg2rad = math.Pi / 180

// SphericalPoint is a geocentric ecliptic position. Longitude and
// Latitude are in radians, Distance is in kilometres.
type SphericalPoint struct {
	Longitude float64
	Latitude  float64
	Distance  float64
}

// A mainTerm contributes to both longitude (l, units of 1e-6 degree) and
// distance (r, units of 1e-3 km). The d, m, mp, f fields multiply the
// mean elongation, solar anomaly, lunar anomaly and argument of latitude.
type mainTerm struct {
	d, m, mp, f int
	l, r        float64
}

// A latitudeTerm contributes to latitude (b, units of 1e-6 degree).
type latitudeTerm struct {
	d, m, mp, f int
	b           float64
}

var mainTerms = []mainTerm{
	{0, 0, 1, 0, 6288774, -20905355},
	{2, 0, -1, 0, 1274027, -3699111},
	{2, 0, 0, 0, 658314, -2955968},
	{0, 0, 2, 0, 213618, -569925},
	{0, 1, 0, 0, -185116, 48888},
	{0, 0, 0, 2, -114332, -3149},
	{2, 0, -2, 0, 58793, 246158},
	{2, -1, -1, 0, 57066, -152138},
	{2, 0, 1, 0, 53322, -170733},
	{2, -1, 0, 0, 45758, -204586},
	{0, 1, -1, 0, -40923, -129620},
	{1, 0, 0, 0, -34720, 108743},
	{0, 1, 1, 0, -30383, 104755},
	{2, 0, 0, -2, 15327, 10321},
	{0, 0, 1, 2, -12528, 0},
	{0, 0, 1, -2, 10980, 79661},
	{4, 0, -1, 0, 10675, -34782},
	{0, 0, 3, 0, 10034, -23210},
	{4, 0, -2, 0, 8548, -21636},
	{2, 1, -1, 0, -7888, 24208},
	{2, 1, 0, 0, -6766, 30824},
	{1, 0, -1, 0, -5163, -8379},
	{1, 1, 0, 0, 4987, -16675},
	{2, -1, 1, 0, 4036, -12831},
	{2, 0, 2, 0, 3994, -10445},
	{4, 0, 0, 0, 3861, -11650},
	{2, 0, -3, 0, 3665, 14403},
	{0, 1, -2, 0, -2689, -7003},
	{2, 0, -1, 2, -2602, 0},
	{2, -1, -2, 0, 2390, 10056},
	{1, 0, 1, 0, -2348, 6322},
	{2, -2, 0, 0, 2236, -9884},
}

var latitudeTerms = []latitudeTerm{
	{0, 0, 0, 1, 5128122},
	{0, 0, 1, 1, 280602},
	{0, 0, 1, -1, 277693},
	{2, 0, 0, -1, 173237},
	{2, 0, -1, 1, 55413},
	{2, 0, -1, -1, 46271},
	{2, 0, 0, 1, 32573},
	{0, 0, 2, 1, 17198},
	{2, 0, 1, -1, 9266},
	{0, 0, 2, -1, 8822},
	{2, -1, 0, -1, 8216},
	{2, 0, -2, -1, 4324},
	{2, 0, 1, 1, 4200},
	{2, 1, 0, -1, -3359},
	{2, -1, -1, 1, 2463},
	{2, -1, 0, 1, 2211},
	{2, -1, -1, -1, 2065},
	{0, 1, -1, -1, -1870},
	{4, 0, -1, -1, 1828},
	{0, 1, 0, 1, -1794},
	{0, 0, 0, 3, -1749},
	{0, 1, -1, 1, -1565},
	{1, 0, 0, 1, -1491},
	{0, 1, 1, 1, -1475},
	{0, 1, 1, -1, -1410},
	{0, 1, 0, -1, -1344},
	{1, 0, 0, -1, -1335},
	{0, 0, 3, 1, 1107},
	{4, 0, 0, -1, 1021},
	{4, 0, -1, 1, 833},
}

// fundamentalArguments returns the Moon's mean longitude, mean
// elongation, solar mean anomaly, lunar mean anomaly and argument of
// latitude, in radians, for t in Julian centuries from J2000.0.
func fundamentalArguments(t float64) (lp, d, m, mp, f float64) {
	lp = 218.3164477 + t*(481267.88123421+t*(-0.0015786+t*(1/538841.0-t/65194000.0)))
	d = 297.8501921 + t*(445267.1114034+t*(-0.0018819+t*(1/545868.0-t/113065000.0)))
	m = 357.5291092 + t*(35999.0502909+t*(-0.0001536+t/24490000.0))
	mp = 134.9633964 + t*(477198.8675055+t*(0.0087414+t*(1/69699.0-t/14712000.0)))
	f = 93.2720950 + t*(483202.0175233+t*(-0.0036539+t*(-1/3526000.0+t/863310000.0)))
	lp *= deg2rad
	d *= deg2rad
	m *= deg2rad
	mp *= deg2rad
	f *= deg2rad
	return
}

// eccentricityFactor dampens terms involving the solar anomaly to track
// the secular decrease of the Earth's orbital eccentricity.
func eccentricityFactor(t float64, m int) float64 {
	if m == 0 {
		return 1
	}
	e := 1 - t*(0.002516+t*0.0000074)
	if m == 2 || m == -2 {
		return e * e
	}
	return e
}

// Position returns the Moon's geocentric ecliptic position for t in
// Julian centuries from J2000.0, referred to the mean equinox of date.
// Longitude is shifted to [0, 2π).
func Position(t float64) SphericalPoint {
	lp, d, m, mp, f := fundamentalArguments(t)

	// Planetary perturbation and flattening arguments.
	a1 := (119.75 + 131.849*t) * deg2rad
	a2 := (53.09 + 479264.290*t) * deg2rad
	a3 := (313.45 + 481266.484*t) * deg2rad

	var sl, sr float64
	for _, mt := range mainTerms {
		arg := float64(mt.d)*d + float64(mt.m)*m + float64(mt.mp)*mp + float64(mt.f)*f
		e := eccentricityFactor(t, mt.m)
		sl += e * mt.l * math.Sin(arg)
		sr += e * mt.r * math.Cos(arg)
	}
	sl += 3958*math.Sin(a1) + 1962*math.Sin(lp-f) + 318*math.Sin(a2)

	var sb float64
	for _, lt := range latitudeTerms {
		arg := float64(lt.d)*d + float64(lt.m)*m + float64(lt.mp)*mp + float64(lt.f)*f
		sb += eccentricityFactor(t, lt.m) * lt.b * math.Sin(arg)
	}
	sb += -2235*math.Sin(lp) + 382*math.Sin(a3) + 175*math.Sin(a1-f) +
		175*math.Sin(a1+f) + 127*math.Sin(lp-mp) - 115*math.Sin(lp+mp)

	l := math.Mod(lp+sl*1e-6*deg2rad, 2*math.Pi)
	if l < 0.0 {
		l += 2 * math.Pi
	}

	return SphericalPoint{
		Longitude: l,
		Latitude:  sb * 1e-6 * deg2rad,
		Distance:  385000.56 + sr*1e-3,
	}
}
