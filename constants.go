package solarline

import (
	"fmt"
	"math"
	"strings"
)

const (
	// AU is one astronomical unit in kilometers (IAU 2012 exact value).
	AU = 1.49597870700e8
	// SpeedOfLight is c in km/s (exact per SI definition).
	SpeedOfLight = 299792.458
	// StdGravity is g0 in m/s².
	StdGravity = 9.80665
)

// Reference orbit radii, in km from the central body.
const (
	// LEORadius is a ~200 km altitude low Earth orbit.
	LEORadius = 6578.0
	// GEORadius is the geostationary orbit radius.
	GEORadius = 42164.0
	// EnceladusOrbitRadius is Enceladus' orbit about Saturn. JPL lists the
	// semi-major axis as 238,042 km; 238,020 km is kept for consistency with
	// the published analysis figures.
	EnceladusOrbitRadius = 238020.0
	// TitaniaOrbitRadius is Titania's orbit about Uranus.
	TitaniaOrbitRadius = 436300.0
)

// CelestialObject defines a celestial object.
// μ values are from JPL DE440, mean orbit radii from the NASA fact sheets,
// poles from the IAU WGCCRE J2000 report.
type CelestialObject struct {
	Name    string
	Radius  float64 // equatorial radius in km
	a       float64 // mean heliocentric orbit radius in km
	μ       float64 // km³/s²
	PoleRA  float64 // north pole right ascension, degrees (J2000)
	PoleDec float64 // north pole declination, degrees (J2000)
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// OrbitRadius returns the mean heliocentric orbit radius in km.
func (c CelestialObject) OrbitRadius() float64 {
	return c.a
}

// SOI returns the sphere of influence radius in km with respect to the Sun,
// using Hill's approximation. The Sun itself has an unbounded SOI.
func (c CelestialObject) SOI() float64 {
	if c.Name == "Sun" {
		return math.Inf(1)
	}
	return c.a * math.Pow(c.μ/Sun.μ, 0.4)
}

// PoleVector returns the body's spin axis as a unit vector in ecliptic
// coordinates, computed from the IAU J2000 pole.
func (c CelestialObject) PoleVector() []float64 {
	return EquatorialToEcliptic(c.PoleRA, c.PoleDec)
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return CelestialObject{}, fmt.Errorf("%w: unknown body %q", ErrInvalidInput, name)
	}
}

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, 0, 1.32712440041e11, 286.13, 63.87}

// Mercury is the smallest planet.
var Mercury = CelestialObject{"Mercury", 2439.7, 57909050, 2.2032e4, 281.010, 61.414}

// Venus is poorly suited to a port of call.
var Venus = CelestialObject{"Venus", 6051.8, 108208000, 3.24859e5, 272.76, 67.16}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.137, 149597870.7, 3.986004418e5, 0, 90}

// Mars is the origin of the outbound leg.
var Mars = CelestialObject{"Mars", 3396.19, 227939200, 4.28283714e4, 317.681, 52.887}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492, 778570000, 1.266865349e8, 268.057, 64.495}

// Saturn has rings, which matter for the approach geometry.
var Saturn = CelestialObject{"Saturn", 60268, 1433530000, 3.793120749e7, 40.589, 83.537}

// Uranus rolls around the Sun on its side.
var Uranus = CelestialObject{"Uranus", 25559, 2872460000, 5.793939e6, 257.311, -15.175}

// Neptune is the outermost planet.
var Neptune = CelestialObject{"Neptune", 24764, 4495060000, 6.836529e6, 299.36, 43.46}
