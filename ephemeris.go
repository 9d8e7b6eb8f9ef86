package chronos

import (
	"github.com/Paulxia/chronos/elp2000"
	"github.com/Paulxia/chronos/vsop87"
)

// Planet is one of the eight major planets of the Solar system.
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

var planetNames = [...]string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}

func (p Planet) String() string {
	if p < Mercury || p > Neptune {
		return "Unknown"
	}
	return planetNames[p]
}

// PlanetaryTheory supplies heliocentric positions of the major planets. The
// time argument is measured in Julian millennia of Dynamical Time since
// J2000. Longitude and latitude of the result are referred to the mean
// dynamical ecliptic and equinox of date and expressed in radians; the
// radius vector is in astronomical units.
type PlanetaryTheory interface {
	HeliocentricPosition(t float64, p Planet) SphericalPoint
}

// LunarTheory supplies geocentric positions of the Moon. The time argument
// is measured in Julian centuries of Dynamical Time since J2000. Longitude
// and latitude of the result are referred to the mean equinox of date and
// expressed in radians; the distance is in kilometers.
type LunarTheory interface {
	GeocentricPosition(t float64) SphericalPoint
}

// Ephemeris computes geocentric positions and related physical quantities
// of the Sun, the Moon and the major planets on top of a planetary and a
// lunar theory. Methods are pure and safe for concurrent use.
type Ephemeris struct {
	planets PlanetaryTheory
	moon    LunarTheory
}

// NewEphemeris returns an Ephemeris backed by the bundled abridged VSOP87
// and ELP 2000 series.
func NewEphemeris() *Ephemeris {
	return New(vsop87Theory{}, elp2000Theory{})
}

// New returns an Ephemeris backed by the given theories, for callers that
// carry the full published series or an alternative model.
func New(planets PlanetaryTheory, moon LunarTheory) *Ephemeris {
	return &Ephemeris{planets: planets, moon: moon}
}

// vsop87Theory adapts the bundled vsop87 package to PlanetaryTheory.
type vsop87Theory struct{}

var vsop87Planets = map[Planet]vsop87.Planet{
	Mercury: vsop87.Mercury,
	Venus:   vsop87.Venus,
	Earth:   vsop87.Earth,
	Mars:    vsop87.Mars,
	Jupiter: vsop87.Jupiter,
	Saturn:  vsop87.Saturn,
	Uranus:  vsop87.Uranus,
	Neptune: vsop87.Neptune,
}

func (vsop87Theory) HeliocentricPosition(t float64, p Planet) SphericalPoint {
	sp := vsop87.Position(t, vsop87Planets[p])
	return SphericalPoint{Longitude: sp.Longitude, Latitude: sp.Latitude, Distance: sp.Distance}
}

// elp2000Theory adapts the bundled elp2000 package to LunarTheory.
type elp2000Theory struct{}

func (elp2000Theory) GeocentricPosition(t float64) SphericalPoint {
	sp := elp2000.Position(t)
	return SphericalPoint{Longitude: sp.Longitude, Latitude: sp.Latitude, Distance: sp.Distance}
}
