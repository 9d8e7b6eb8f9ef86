// Command almanac prints an astronomical almanac page for a calendar day:
// time scale data, solar and lunar positions, rise and set times and the
// apparent magnitudes of the planets.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/Paulxia/chronos"
)

const rad2deg = 180 / math.Pi

// Standard altitude of the Sun's center at rise and set, accounting for
// refraction and the solar semidiameter.
const sunStandardAltitude = -0.8333 / rad2deg

func formatHours(h float64) string {
	if h < 0 {
		return "--:--"
	}
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}

func main() {
	dateStr := flag.String("date", "", "calendar date in YYYY-MM-DD form (default today, UT)")
	lat := flag.Float64("lat", 48.8534, "observer latitude in degrees, north positive")
	lon := flag.Float64("lon", -2.3488, "observer longitude in degrees, east positive")
	flag.Parse()

	var day, month, year int
	if *dateStr == "" {
		now := time.Now().UTC()
		year, month, day = now.Year(), int(now.Month()), now.Day()
	} else if _, err := fmt.Sscanf(*dateStr, "%d-%d-%d", &year, &month, &day); err != nil {
		log.Fatalf("bad -date %q: %v", *dateStr, err)
	}

	d, err := chronos.NewDate(float64(day), chronos.Month(month), year)
	if err != nil {
		log.Fatalf("bad date: %v", err)
	}

	// Geographic longitudes are measured positive westward.
	gp := chronos.GeographicPoint{
		Longitude: -*lon / rad2deg,
		Latitude:  *lat / rad2deg,
	}

	eph := chronos.NewEphemeris()

	fmt.Printf("Almanac for %d %v %d (%v)\n", day, d.Month, d.Year, d.DayOfWeek())
	fmt.Printf("  Julian date       %.5f\n", d.JulianDate())
	fmt.Printf("  Delta T           %.1f s\n", d.DeltaT())
	fmt.Printf("  GMST at 0h UT     %s\n", formatHours(chronos.GreenwichMeanSiderealTime(d)))
	fmt.Printf("  Equation of time  %+.1f min\n", equationOfTimeMinutes(eph, d))

	sun := eph.SunApparentPosition(d)
	fmt.Printf("\nSun\n")
	fmt.Printf("  Apparent longitude  %9.4f deg\n", sun.Longitude*rad2deg)
	fmt.Printf("  Distance            %9.6f AU\n", eph.SunDistanceToEarth(d))
	obl := chronos.ObliquityOfEcliptic(d) + chronos.NutationInObliquity(d)
	eq := chronos.EclipticToEquatorial(sun, obl)
	fmt.Printf("  Rises               %s UT\n", formatHours(chronos.Rising(d, gp, eq, sunStandardAltitude)))
	fmt.Printf("  Sets                %s UT\n", formatHours(chronos.Setting(d, gp, eq, sunStandardAltitude)))

	moon := eph.MoonApparentPosition(d)
	fmt.Printf("\nMoon\n")
	fmt.Printf("  Apparent longitude  %9.4f deg\n", moon.Longitude*rad2deg)
	fmt.Printf("  Apparent latitude   %9.4f deg\n", moon.Latitude*rad2deg)
	fmt.Printf("  Distance            %9.0f km\n", eph.MoonDistanceToEarth(d)*chronos.AstronomicalUnit)
	fmt.Printf("  Illuminated         %9.1f %%\n", eph.MoonDiskIlluminatedFraction(d)*100)

	fmt.Printf("\nPlanets\n")
	for p := chronos.Mercury; p <= chronos.Neptune; p++ {
		if p == chronos.Earth {
			continue
		}
		pos, err := eph.ApparentPosition(d, p)
		if err != nil {
			log.Fatalf("%v: %v", p, err)
		}
		mag, err := eph.ApparentMagnitude(d, p)
		if err != nil {
			log.Fatalf("%v: %v", p, err)
		}
		fmt.Printf("  %-8v lon %8.3f deg  lat %+7.3f deg  dist %7.4f AU  mag %+5.2f\n",
			p, pos.Longitude*rad2deg, pos.Latitude*rad2deg, eph.DistanceToEarth(d, p), mag)
	}
}

func equationOfTimeMinutes(eph *chronos.Ephemeris, d chronos.Date) float64 {
	e := eph.EquationOfTime(d) * 60
	// The wrapped value is an hour angle; fold it to a signed offset.
	if e > 12*60 {
		e -= 24 * 60
	}
	return e
}
