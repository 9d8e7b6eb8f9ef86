package chronos

import "math"

// greenwichApparentSiderealTime computes apparent sidereal time at
// Greenwich in radians: mean sidereal time corrected for nutation.
func greenwichApparentSiderealTime(d Date) float64 {
	gast := GreenwichMeanSiderealTime(d) * hours2rad
	gast += NutationInLongitude(d) * math.Cos(ObliquityOfEcliptic(d)+NutationInObliquity(d))
	return gast
}

// ParallacticAngle computes the parallactic angle (q) of a body at the
// equatorial position ep observed from the location gp at the date d: the
// angle at the body between the celestial pole and the zenith. The result
// is expressed in radians. The angle is undefined for a body in the
// zenith.
func ParallacticAngle(d Date, gp GeographicPoint, ep EquatorialPoint) float64 {
	lha := greenwichApparentSiderealTime(d) - gp.Longitude - ep.RightAscension

	return math.Atan2(math.Sin(lha),
		math.Tan(gp.Latitude)*math.Cos(ep.Declination)-math.Sin(ep.Declination)*math.Cos(lha))
}

// transit computes the time of transit through the local meridian, in
// decimal hours of the day of d.
func transit(d Date, gp GeographicPoint, ep EquatorialPoint) float64 {
	// sidereal time at 0ʰ of the given day
	d0 := d
	d0.Day = math.Trunc(d.Day)
	gast := greenwichApparentSiderealTime(d0)

	m := (ep.RightAscension + gp.Longitude - gast) / twoPi

	m = math.Mod(m, 1.0)
	if m < 0.0 {
		m += 1.0
	}

	return m * hoursPerDay
}

// Rising computes the time of the day at which a body at the equatorial
// position ep rises above the standard altitude sa (radians) as seen from
// the location gp. The result is expressed in decimal hours of Universal
// Time in [0ʰ, 24ʰ). If the body never crosses the standard altitude on
// that day, i.e. is circumpolar or never rises at the location, the result
// is -1.
func Rising(d Date, gp GeographicPoint, ep EquatorialPoint, sa float64) float64 {
	cosh0 := (math.Sin(sa) - math.Sin(gp.Latitude)*math.Sin(ep.Declination)) /
		(math.Cos(gp.Latitude) * math.Cos(ep.Declination))

	if math.Abs(cosh0) > 1 {
		return -1
	}

	h0 := math.Acos(cosh0)

	m := transit(d, gp, ep) - h0*rad2hours
	if m < 0.0 {
		m += hoursPerDay
	}

	return m
}

// Setting computes the time of the day at which a body at the equatorial
// position ep sets below the standard altitude sa (radians) as seen from
// the location gp. The result is expressed in decimal hours of Universal
// Time in [0ʰ, 24ʰ), or -1 if the body never crosses the standard altitude
// on that day.
func Setting(d Date, gp GeographicPoint, ep EquatorialPoint, sa float64) float64 {
	cosh0 := (math.Sin(sa) - math.Sin(gp.Latitude)*math.Sin(ep.Declination)) /
		(math.Cos(gp.Latitude) * math.Cos(ep.Declination))

	if math.Abs(cosh0) > 1 {
		return -1
	}

	h0 := math.Acos(cosh0)

	m := transit(d, gp, ep) + h0*rad2hours
	if m > hoursPerDay {
		m -= hoursPerDay
	}

	return m
}

// AtmosphericRefraction computes the correction (R) that must be added to
// the true, airless elevation a (degrees) of a body to obtain the
// elevation it appears at through the atmosphere. t is the air temperature
// in kelvins and p the atmospheric pressure in pascals. The result is
// expressed in minutes of arc.
//
// Source: J. Meeus. Astronomical Algorithms. Willmann-Bell Inc.,
// Richmond, Virginia, 1991, ch. 16.
func AtmosphericRefraction(a, t, p float64) float64 {
	r := 1.02 / math.Tan((a+10.3/(a+5.11))*deg2rad)

	// scaling to environmental conditions from the tabulation at
	// 101.325 kPa and 10 °C
	return r * (p / 101325.0) * (283.15 / t)
}

// DiurnalParallax reduces the geocentric equatorial position ep of a body
// to the topocentric position seen from the location gp at an altitude of
// a kilometers above sea level at the date d; ehp is the equatorial
// horizontal parallax of the body in radians.
func DiurnalParallax(d Date, gp GeographicPoint, a float64, ep EquatorialPoint, ehp float64) EquatorialPoint {
	// observer position in the Earth's equatorial frame, accounting for
	// the flattening
	u := math.Atan(EarthPolarRadius / EarthEquatorialRadius * math.Tan(gp.Latitude))
	s := EarthPolarRadius/EarthEquatorialRadius*math.Sin(u) +
		a/EarthEquatorialRadius*math.Sin(gp.Latitude)
	c := math.Cos(u) + a/EarthEquatorialRadius*math.Cos(gp.Latitude)

	h := greenwichApparentSiderealTime(d) - gp.Longitude - ep.RightAscension

	da := math.Atan2(-c*math.Sin(ehp)*math.Sin(h),
		math.Cos(ep.Declination)-c*math.Sin(ehp)*math.Cos(h))

	return EquatorialPoint{
		RightAscension: ep.RightAscension + da,
		Declination: math.Atan2((math.Sin(ep.Declination)-s*math.Sin(ehp))*math.Cos(da),
			math.Cos(ep.Declination)-c*math.Sin(ehp)*math.Cos(h)),
	}
}
