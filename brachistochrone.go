package solarline

import (
	"fmt"
	"math"
	"time"
)

// Brachistochrone profiles accelerate at a constant rate to the midpoint and
// decelerate at the same rate to arrive at rest. All distances are in km,
// accelerations in km/s².

// BrachistochroneAccel returns the constant acceleration in km/s² needed to
// cover d km in t seconds.
func BrachistochroneAccel(d, t float64) (float64, error) {
	if d <= 0 || t <= 0 {
		return 0, fmt.Errorf("%w: distance and time must be positive", ErrInvalidInput)
	}
	return 4 * d / (t * t), nil
}

// BrachistochroneΔv returns the total Δv in km/s expended over the profile.
func BrachistochroneΔv(d, t float64) (float64, error) {
	if d <= 0 || t <= 0 {
		return 0, fmt.Errorf("%w: distance and time must be positive", ErrInvalidInput)
	}
	return 4 * d / t, nil
}

// BrachistochronePeakVelocity returns the midpoint velocity in km/s.
func BrachistochronePeakVelocity(d, t float64) (float64, error) {
	if d <= 0 || t <= 0 {
		return 0, fmt.Errorf("%w: distance and time must be positive", ErrInvalidInput)
	}
	return 2 * d / t, nil
}

// BrachistochroneMaxDistance returns the distance in km covered in t seconds
// at a constant acceleration of a km/s².
func BrachistochroneMaxDistance(a, t float64) (float64, error) {
	if a <= 0 || t <= 0 {
		return 0, fmt.Errorf("%w: acceleration and time must be positive", ErrInvalidInput)
	}
	return a * t * t / 4, nil
}

// MinTransferTime returns the fastest brachistochrone over d km for a ship of
// mass m kg under thrust F newtons.
func MinTransferTime(d, m, F float64) (time.Duration, error) {
	if d <= 0 || m <= 0 || F <= 0 {
		return 0, fmt.Errorf("%w: distance, mass and thrust must be positive", ErrInvalidInput)
	}
	// a = F/m is in m/s², so the distance moves to meters.
	t := math.Sqrt(4 * d * 1e3 * m / F)
	return time.Duration(t * float64(time.Second)), nil
}

// MaxFeasibleMass returns the heaviest ship in kg which can fly d km in t
// seconds under thrust F newtons.
func MaxFeasibleMass(d, t, F float64) (float64, error) {
	if d <= 0 || t <= 0 || F <= 0 {
		return 0, fmt.Errorf("%w: distance, time and thrust must be positive", ErrInvalidInput)
	}
	return F * t * t / (4 * d * 1e3), nil
}

// RequiredThrust returns the thrust in newtons needed to fly a ship of mass m
// kg over d km in t seconds.
func RequiredThrust(d, t, m float64) (float64, error) {
	if d <= 0 || t <= 0 || m <= 0 {
		return 0, fmt.Errorf("%w: distance, time and mass must be positive", ErrInvalidInput)
	}
	return 4 * d * 1e3 * m / (t * t), nil
}

// FeasibilityBoundary is the min-time/max-mass frontier of a fixed thrust
// ceiling over a fixed transfer distance.
type FeasibilityBoundary struct {
	Distance float64 // km
	Thrust   float64 // N
}

// MinTimeForMass returns the fastest transfer for a ship of mass m kg.
func (f FeasibilityBoundary) MinTimeForMass(m float64) (time.Duration, error) {
	return MinTransferTime(f.Distance, m, f.Thrust)
}

// MaxMassForTime returns the heaviest ship which makes the transfer in t.
func (f FeasibilityBoundary) MaxMassForTime(t time.Duration) (float64, error) {
	return MaxFeasibleMass(f.Distance, t.Seconds(), f.Thrust)
}

// RelativisticTransfer is the special-relativistic brachistochrone solution
// at constant proper acceleration.
type RelativisticTransfer struct {
	CoordinateTime time.Duration // rest-frame transfer time
	ProperTime     time.Duration // shipboard transfer time
	PeakVelocity   float64       // midpoint velocity in km/s, always below c
}

// NewRelativisticTransfer solves the constant-proper-acceleration transfer
// over d km at a km/s². The hyperbolic motion solution keeps the midpoint
// velocity below c regardless of how hard the ship accelerates.
func NewRelativisticTransfer(d, a float64) (RelativisticTransfer, error) {
	if d <= 0 || a <= 0 {
		return RelativisticTransfer{}, fmt.Errorf("%w: distance and acceleration must be positive", ErrInvalidInput)
	}
	c := SpeedOfLight
	dHalf := d / 2
	x := dHalf*a/(c*c) + 1
	tHalf := c / a * math.Sqrt(x*x-1)
	τHalf := c / a * math.Asinh(a*tHalf/c)
	at := a * tHalf / c
	vPeak := c * at / math.Sqrt(1+at*at)
	return RelativisticTransfer{
		CoordinateTime: time.Duration(2 * tHalf * float64(time.Second)),
		ProperTime:     time.Duration(2 * τHalf * float64(time.Second)),
		PeakVelocity:   vPeak,
	}, nil
}
