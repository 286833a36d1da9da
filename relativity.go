package solarline

import (
	"fmt"
	"math"
)

// Beta returns v/c for a velocity in km/s.
func Beta(v float64) float64 {
	return v / SpeedOfLight
}

// LorentzFactor returns γ = 1/√(1-β²). Velocities at or above c are outside
// the domain.
func LorentzFactor(v float64) (float64, error) {
	β := Beta(v)
	if β < 0 {
		return 0, fmt.Errorf("%w: velocity must be non-negative", ErrInvalidInput)
	}
	if β >= 1 {
		return 0, fmt.Errorf("%w: velocity %f km/s is not below c", ErrDomainViolation, v)
	}
	return 1 / math.Sqrt(1-β*β), nil
}

// TimeDilationFraction returns 1 - 1/γ, the fraction of coordinate time lost
// by a clock moving at v km/s.
func TimeDilationFraction(v float64) (float64, error) {
	γ, err := LorentzFactor(v)
	if err != nil {
		return 0, err
	}
	return 1 - 1/γ, nil
}

// TimeDilationLoss returns the seconds a shipboard clock falls behind over an
// interval of t coordinate seconds at velocity v km/s.
func TimeDilationLoss(v, t float64) (float64, error) {
	frac, err := TimeDilationFraction(v)
	if err != nil {
		return 0, err
	}
	return frac * t, nil
}

// KineticEnergyCorrectionFactor returns the ratio of relativistic kinetic
// energy (γ-1)mc² to the classical ½mv². It tends to 1 as v → 0.
func KineticEnergyCorrectionFactor(v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("%w: velocity must be positive", ErrInvalidInput)
	}
	γ, err := LorentzFactor(v)
	if err != nil {
		return 0, err
	}
	c := SpeedOfLight
	return (γ - 1) * c * c / (0.5 * v * v), nil
}

// ClassicalΔv is the Tsiolkovsky rocket equation: ve·ln(massRatio), km/s.
// The mass ratio is initial over final mass and must exceed 1 for a burn.
func ClassicalΔv(ve, massRatio float64) (float64, error) {
	if ve <= 0 || massRatio < 1 {
		return 0, fmt.Errorf("%w: need positive exhaust velocity and mass ratio ≥ 1", ErrInvalidInput)
	}
	return ve * math.Log(massRatio), nil
}

// AckeretΔv is the relativistic rocket equation: c·tanh((ve/c)·ln(massRatio)).
// It is bounded by c for any finite mass ratio.
func AckeretΔv(ve, massRatio float64) (float64, error) {
	if ve <= 0 || massRatio < 1 {
		return 0, fmt.Errorf("%w: need positive exhaust velocity and mass ratio ≥ 1", ErrInvalidInput)
	}
	c := SpeedOfLight
	return c * math.Tanh(ve/c*math.Log(massRatio)), nil
}

// ΔvCorrectionFraction returns (classical - relativistic)/classical for a
// given exhaust velocity and mass ratio, i.e. by how much Tsiolkovsky
// overstates the achievable Δv.
func ΔvCorrectionFraction(ve, massRatio float64) (float64, error) {
	if massRatio == 1 {
		return 0, nil
	}
	classical, err := ClassicalΔv(ve, massRatio)
	if err != nil {
		return 0, err
	}
	rel, err := AckeretΔv(ve, massRatio)
	if err != nil {
		return 0, err
	}
	return (classical - rel) / classical, nil
}

// StellarAberration returns the apparent angular shift in degrees of a star
// seen at true angle θ degrees from the velocity vector, for a ship moving at
// v km/s. The relativistic formula cos θ' = (cos θ + β)/(1 + β cos θ) shifts
// every star toward the direction of motion.
func StellarAberration(v, θ float64) (float64, error) {
	β := Beta(v)
	if β < 0 || β >= 1 {
		return 0, fmt.Errorf("%w: velocity %f km/s is not in [0, c)", ErrDomainViolation, v)
	}
	cosθ := math.Cos(θ * deg2rad)
	θApparent := acosClamped((cosθ+β)/(1+β*cosθ)) / deg2rad
	return θ - θApparent, nil
}

// MaxStellarAberration returns the largest apparent shift in degrees over all
// viewing angles, asin(β), reached for stars abeam of the velocity vector.
func MaxStellarAberration(v float64) (float64, error) {
	β := Beta(v)
	if β < 0 || β >= 1 {
		return 0, fmt.Errorf("%w: velocity %f km/s is not in [0, c)", ErrDomainViolation, v)
	}
	return math.Asin(β) / deg2rad, nil
}

// RelativisticCorrection summarizes how much special relativity matters for a
// cruise leg: clock drift over the leg and the honesty of the classical
// rocket equation at the ship's exhaust velocity.
type RelativisticCorrection struct {
	Beta                 float64
	Gamma                float64
	TimeDilationFraction float64
	TimeDilationSeconds  float64 // shipboard clock deficit over the leg
	KECorrectionPPM      float64 // classical KE understatement, parts per million
	ΔvCorrectionFraction float64 // Tsiolkovsky overstatement at this Δv
}

// NewRelativisticCorrection evaluates the corrections for a leg flown at v
// km/s for t coordinate seconds by a ship of exhaust velocity ve km/s,
// treating v as the classical Δv spent to reach it.
func NewRelativisticCorrection(v, t, ve float64) (RelativisticCorrection, error) {
	γ, err := LorentzFactor(v)
	if err != nil {
		return RelativisticCorrection{}, err
	}
	frac := 1 - 1/γ
	keFactor, err := KineticEnergyCorrectionFactor(v)
	if err != nil {
		return RelativisticCorrection{}, err
	}
	// Invert Tsiolkovsky to find the mass ratio this Δv implies.
	massRatio := math.Exp(v / ve)
	Δvfrac, err := ΔvCorrectionFraction(ve, massRatio)
	if err != nil {
		return RelativisticCorrection{}, err
	}
	return RelativisticCorrection{
		Beta:                 Beta(v),
		Gamma:                γ,
		TimeDilationFraction: frac,
		TimeDilationSeconds:  frac * t,
		KECorrectionPPM:      (keFactor - 1) * 1e6,
		ΔvCorrectionFraction: Δvfrac,
	}, nil
}
