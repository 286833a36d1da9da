package solarline

import (
	"fmt"
	"math"
)

// CircularCaptureΔv returns the Δv in km/s to brake from a hyperbolic
// approach with excess velocity vInf into a circular orbit of radius r about
// the given body.
func CircularCaptureΔv(body CelestialObject, r, vInf float64) (float64, error) {
	if r <= 0 || vInf < 0 {
		return 0, fmt.Errorf("%w: need positive radius and non-negative v∞", ErrInvalidInput)
	}
	μ := body.GM()
	vHyperbolic := math.Sqrt(vInf*vInf + 2*μ/r)
	return vHyperbolic - math.Sqrt(μ/r), nil
}

// MinCaptureΔv returns the smallest Δv in km/s which leaves the ship bound to
// the body: braking to exactly parabolic velocity at periapsis radius r.
func MinCaptureΔv(body CelestialObject, r, vInf float64) (float64, error) {
	if r <= 0 || vInf < 0 {
		return 0, fmt.Errorf("%w: need positive radius and non-negative v∞", ErrInvalidInput)
	}
	μ := body.GM()
	vHyperbolic := math.Sqrt(vInf*vInf + 2*μ/r)
	return vHyperbolic - math.Sqrt(2*μ/r), nil
}

// FlybyTurnAngle returns the hyperbolic turn angle in radians of an unpowered
// flyby with excess velocity vInf km/s and periapsis radius rP km.
func FlybyTurnAngle(body CelestialObject, rP, vInf float64) (float64, error) {
	if rP <= 0 || vInf <= 0 {
		return 0, fmt.Errorf("%w: need positive periapsis radius and v∞", ErrInvalidInput)
	}
	ρ := acosClamped(1 / (1 + vInf*vInf*rP/body.GM()))
	return math.Pi - 2*ρ, nil
}

// OberthAnalysis is the outcome of a powered flyby: a burn at periapsis deep
// in a gravity well buys more hyperbolic excess velocity than the same burn
// in free space.
type OberthAnalysis struct {
	VPeriapsis  float64 // approach velocity at periapsis, km/s
	VInfOut     float64 // departing hyperbolic excess velocity, km/s
	Gain        float64 // extra v∞ over an equal burn at infinity, km/s
	Efficiency  float64 // Gain as a fraction of the burn
	Significant bool    // Efficiency meets the operational margin
}

// AnalyzeOberth evaluates a periapsis burn of burnΔv km/s during a flyby of
// the body at periapsis radius rP km with approach excess velocity vInf km/s.
// The gain is judged significant when its fractional efficiency meets margin.
func AnalyzeOberth(body CelestialObject, rP, vInf, burnΔv, margin float64) (OberthAnalysis, error) {
	if rP <= 0 || vInf <= 0 || burnΔv <= 0 {
		return OberthAnalysis{}, fmt.Errorf("%w: need positive periapsis radius, v∞ and burn", ErrInvalidInput)
	}
	μ := body.GM()
	vPeri := math.Sqrt(vInf*vInf + 2*μ/rP)
	vInfOut := math.Sqrt((vPeri+burnΔv)*(vPeri+burnΔv) - 2*μ/rP)
	gain := (vInfOut - vInf) - burnΔv
	efficiency := (vInfOut-vInf)/burnΔv - 1
	return OberthAnalysis{
		VPeriapsis:  vPeri,
		VInfOut:     vInfOut,
		Gain:        gain,
		Efficiency:  efficiency,
		Significant: efficiency >= margin,
	}, nil
}
