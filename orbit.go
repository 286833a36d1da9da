package solarline

import (
	"fmt"
	"math"
	"time"
)

// VisViva returns the orbital velocity in km/s at radius r on an orbit of
// semi-major axis a about a body of gravitational parameter μ.
func VisViva(μ, r, a float64) (float64, error) {
	if μ <= 0 || r <= 0 {
		return 0, fmt.Errorf("%w: μ and r must be positive", ErrInvalidInput)
	}
	v2 := μ * (2/r - 1/a)
	if v2 < 0 {
		return 0, fmt.Errorf("%w: radius %f km not reachable on orbit with a=%f km", ErrDomainViolation, r, a)
	}
	return math.Sqrt(v2), nil
}

// CircularVelocity returns √(μ/r) in km/s.
func CircularVelocity(μ, r float64) (float64, error) {
	if μ <= 0 || r <= 0 {
		return 0, fmt.Errorf("%w: μ and r must be positive", ErrInvalidInput)
	}
	return math.Sqrt(μ / r), nil
}

// EscapeVelocity returns √(2μ/r) in km/s.
func EscapeVelocity(μ, r float64) (float64, error) {
	vCirc, err := CircularVelocity(μ, r)
	if err != nil {
		return 0, err
	}
	return vCirc * math.Sqrt2, nil
}

// OrbitalPeriod returns 2π√(a³/μ).
func OrbitalPeriod(μ, a float64) (time.Duration, error) {
	if μ <= 0 || a <= 0 {
		return 0, fmt.Errorf("%w: μ and a must be positive", ErrInvalidInput)
	}
	return time.Duration(2*math.Pi*math.Sqrt(math.Pow(a, 3)/μ)) * time.Second, nil
}

// SpecificEnergy returns ξ = -μ/(2a) in km²/s².
func SpecificEnergy(μ, a float64) float64 {
	return -μ / (2 * a)
}

// HohmannTransfer is a two-burn minimum energy transfer between two circular
// coplanar orbits.
type HohmannTransfer struct {
	DepartureΔv float64       // burn at rI, km/s
	ArrivalΔv   float64       // burn at rF, km/s
	TotalΔv     float64       // km/s
	TOF         time.Duration // half period of the transfer ellipse
}

// NewHohmannTransfer computes the Hohmann transfer from a circular orbit of
// radius rI to one of radius rF about a body of gravitational parameter μ.
func NewHohmannTransfer(μ, rI, rF float64) (HohmannTransfer, error) {
	if μ <= 0 || rI <= 0 || rF <= 0 {
		return HohmannTransfer{}, fmt.Errorf("%w: μ and radii must be positive", ErrInvalidInput)
	}
	aTransfer := 0.5 * (rI + rF)
	vCircI := math.Sqrt(μ / rI)
	vCircF := math.Sqrt(μ / rF)
	vDeparture := math.Sqrt(2*μ/rI - μ/aTransfer)
	vArrival := math.Sqrt(2*μ/rF - μ/aTransfer)
	Δv1 := math.Abs(vDeparture - vCircI)
	Δv2 := math.Abs(vCircF - vArrival)
	tof := time.Duration(math.Pi*math.Sqrt(math.Pow(aTransfer, 3)/μ)) * time.Second
	return HohmannTransfer{Δv1, Δv2, Δv1 + Δv2, tof}, nil
}

// PlaneChangeΔv returns the Δv in km/s for a pure plane change of Δi radians
// performed at velocity v.
func PlaneChangeΔv(v, Δi float64) float64 {
	return 2 * v * math.Sin(Δi/2)
}
