// Package chronos computes deterministic astronomical ephemerides:
// calendar and time-scale conversions, Earth orientation corrections
// (ΔT, nutation, precession, obliquity) and geocentric true and apparent
// positions of the Sun, the Moon and the major planets.
//
// Time instants are represented by the Date type. The day number is a
// decimal: its integer part is the day of the month and its fractional part
// is the time of day as a fraction of 24 hours, so
//
//	Date{Day: 12.55, Month: December, Year: 1900}
//
// is 12 December 1900 at 13ʰ12ᵐ. Years use astronomical numbering: 0 is
// 1 B.C., -1 is 2 B.C. and so on, since the civil calendar has no year zero.
//
// Input dates are expected in Universal Time; ΔT is applied internally
// wherever Dynamical Time is required. Every function is pure and all
// coefficient tables are immutable, so concurrent use needs no
// synchronization.
package chronos

import "math"

// Month of the civil calendar, January = 1. UnknownMonth marks an undefined
// or error value in month-valued results.
type Month int

const (
	UnknownMonth Month = iota
	January
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// Weekday of the civil week, Monday = 1. UnknownWeekday marks an undefined
// or error value in weekday-valued results.
type Weekday int

const (
	UnknownWeekday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Date is a calendar date. Day carries the time of day in its fractional
// part (multiply by 24 for decimal hours). Negative years are years B.C.,
// shifted by one: year 0 is 1 B.C.
type Date struct {
	Day   float64
	Month Month
	Year  int
}

// contains the number of days in each month, for common and leap years; the
// leading 0 aligns indexing with the Month enumeration
var daysInMonth = [2][13]int{
	{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}, // common year
	{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}, // leap year
}

// first date of the Julian proleptic calendar (Julian date 0.0)
var julianStartDate = Date{Day: 1.5, Month: January, Year: -4712}

// last date of the Julian calendar considered by the Gregorian reform
var julianEndDate = Date{Day: 4.0, Month: October, Year: 1582}

// first date of the Gregorian calendar
var gregorianStartDate = Date{Day: 15.0, Month: October, Year: 1582}

// compareDates reports 1 if d1 precedes d2, -1 if d2 precedes d1 and 0 if
// the two dates are equal.
func compareDates(d1, d2 Date) int {
	switch {
	case d1.Year != d2.Year:
		if d1.Year < d2.Year {
			return 1
		}
		return -1
	case d1.Month != d2.Month:
		if d1.Month < d2.Month {
			return 1
		}
		return -1
	case d1.Day != d2.Day:
		if d1.Day < d2.Day {
			return 1
		}
		return -1
	}
	return 0
}

// NewDate builds a validated calendar date. It returns an *InvalidDateError
// when the fields fail the checks described at Date.IsValid.
func NewDate(day float64, month Month, year int) (Date, error) {
	d := Date{Day: day, Month: month, Year: year}
	if !d.IsValid() {
		return Date{}, &InvalidDateError{Date: d}
	}
	return d, nil
}

// IsValid reports whether the date can be used with this library:
// the month is in [January, December], the day number is within the month
// for the year's leap status, the resulting Julian date is not negative
// (dates before 1.5 January 4713 B.C. are rejected) and the date does not
// fall on one of the days removed by the Gregorian reform (5 October 1582
// through 14 October 1582).
//
// IsValid is the single validity gate: every other routine assumes its
// input has already passed this check.
func (d Date) IsValid() bool {
	if d.Month < January || d.Month > December {
		return false
	}

	leap := 0
	if IsLeapYear(d.Year) {
		leap = 1
	}
	if d.Day < 1 || d.Day >= float64(daysInMonth[leap][d.Month]+1) {
		return false
	}

	// dates before the start of the Julian proleptic calendar would yield a
	// negative Julian date
	if compareDates(d, julianStartDate) > 0 {
		return false
	}

	// dates removed by the Gregorian reform: strictly between 4.0 October
	// and 15.0 October 1582
	if compareDates(julianEndDate, d) > 0 && compareDates(gregorianStartDate, d) < 0 {
		return false
	}

	return true
}

// IsLeapYear reports whether a year is a leap year. From the Gregorian
// start year (1582) on, a leap year is divisible by four but not by 100,
// except for multiples of 400; before that the Julian rule applies: any
// year divisible by four.
func IsLeapYear(year int) bool {
	if year >= gregorianStartDate.Year {
		return year%4 == 0 && year%100 != 0 || year%400 == 0
	}
	return year%4 == 0
}

// JulianDate converts the calendar date to a Julian date, the amount of
// time measured in days since 1.5 January 4713 B.C.
func (d Date) JulianDate() float64 {
	// January and February count as months 13 and 14 of the previous year
	if d.Month == January || d.Month == February {
		d.Year--
		d.Month += 12
	}

	// the Gregorian correction applies only from 15 October 1582 on; the
	// month shift above keeps the comparison sound since 13 > October
	b := 0
	if compareDates(gregorianStartDate, d) >= 0 {
		a := d.Year / 100
		b = 2 - a + a/4
	}

	return float64(int(365.25*float64(d.Year+4716))) +
		float64(int(30.6001*float64(d.Month+1))) +
		d.Day + float64(b) - 1524.5
}

// CalendarDate converts a Julian date back to a calendar date.
func CalendarDate(jd float64) Date {
	z, f := math.Modf(jd + 0.5)

	var a float64
	if z < 2299161.0 {
		// Julian calendar side of the reform threshold
		a = z
	} else {
		ap := math.Trunc((z - 1867216.25) / 36524.25)
		a = z + 1.0 + ap - math.Trunc(ap/4.0)
	}

	b := a + 1524.0
	c := math.Trunc((b - 122.1) / 365.25)
	dd := math.Trunc(365.25 * c)
	e := math.Trunc((b - dd) / 30.6001)

	var cd Date
	cd.Day = b - dd - math.Trunc(30.6001*e) + f
	if e < 14.0 {
		cd.Month = Month(int(e) - 1)
	} else {
		cd.Month = Month(int(e) - 13)
	}
	if cd.Month > February {
		cd.Year = int(c) - 4716
	} else {
		cd.Year = int(c) - 4715
	}

	return cd
}

// JulianEphemerisDate converts the calendar date to a Julian Ephemeris
// date: the Julian date corrected for the Earth's clock error ΔT, i.e. the
// Julian date in Dynamical Time.
func (d Date) JulianEphemerisDate() float64 {
	return d.JulianDate() + d.DeltaT()/secondsPerDay
}

// DayOfWeek computes the day of the week of the date. Julian date 0 falls
// on a Monday, so the weekday is the Julian day number modulo seven.
func (d Date) DayOfWeek() Weekday {
	jd := d.JulianDate()
	return Weekday(int(math.Mod(jd+0.5, 7.0)) + 1)
}

// DayOfYear computes the day number of the year, in [1, 365] or [1, 366]
// depending on the year being common or leap.
func (d Date) DayOfYear() int {
	l := 2
	if IsLeapYear(d.Year) {
		l = 1
	}
	m := float64(d.Month)
	return int(275.0*m/9.0) - l*int((m+9.0)/12.0) + int(d.Day) - 30
}

// Easter computes the date of Easter for a year, for both the Julian and
// the Gregorian calendar. The day number of the result carries no
// fractional part.
func Easter(year int) Date {
	var f int

	// the Gregorian calendar starts in October 1582, so Easter of 1582
	// itself is still a Julian-calendar computation
	if year > gregorianStartDate.Year {
		a := year / 100
		b := (a - (a+8)/25 + 1) / 3
		c := (19*(year%19) + a - a/4 - b + 15) % 30
		d := (32 + 2*(a%4) + 2*((year%100)/4) - c - (year%100)%4) % 7
		e := (year%19 + 11*c + 22*d) / 451
		f = c + d - 7*e + 114
	} else {
		a := (19*(year%19) + 15) % 30
		b := (2*(year%4) + 4*(year%7) - a + 34) % 7
		f = a + b + 114
	}

	return Date{Day: float64(f%31 + 1), Month: Month(f / 31), Year: year}
}

// GreenwichMeanSiderealTime computes mean sidereal time at the Greenwich
// meridian on the given date: the Greenwich hour angle of the mean vernal
// point. The result is expressed in decimal hours.
func GreenwichMeanSiderealTime(d Date) float64 {
	jd := d.JulianDate()
	t := (jd - J2000) / daysInJulianCentury

	gmst := 280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*t*t - t*t*t/38710000.0

	gmst = math.Mod(gmst, 360.0)
	if gmst < 0.0 {
		gmst += 360.0
	}

	return gmst / degPerHour
}
