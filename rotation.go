package solarline

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

const (
	// J2000Obliquity is the mean obliquity of the ecliptic at J2000, degrees.
	J2000Obliquity = 23.4393
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension
// check!
func MxV33(m mat64.Matrix, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// RADecToUnit returns the J2000 equatorial unit vector pointing at the given
// right ascension and declination, both in degrees.
func RADecToUnit(ra, dec float64) []float64 {
	sα, cα := math.Sincos(ra * deg2rad)
	sδ, cδ := math.Sincos(dec * deg2rad)
	return []float64{cδ * cα, cδ * sα, sδ}
}

// EquatorialToEcliptic converts a J2000 RA/Dec direction, in degrees, to a
// unit vector in ecliptic coordinates by rotating about the x axis through
// the J2000 obliquity.
func EquatorialToEcliptic(ra, dec float64) []float64 {
	return MxV33(R1(J2000Obliquity*deg2rad), RADecToUnit(ra, dec))
}

// EclipticInclination returns the angle in degrees between a direction in
// ecliptic coordinates and the ecliptic north pole. Applied to a body's spin
// axis it gives the tilt of its equator (and ring plane) to the ecliptic.
func EclipticInclination(u []float64) float64 {
	return acosClamped(dot(unit(u), []float64{0, 0, 1})) / deg2rad
}
