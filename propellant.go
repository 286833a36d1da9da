package solarline

import (
	"fmt"
	"math"
)

// ExhaustVelocity returns the exhaust velocity in km/s of an engine with the
// given specific impulse in seconds.
func ExhaustVelocity(isp float64) (float64, error) {
	if isp <= 0 {
		return 0, fmt.Errorf("%w: specific impulse must be positive", ErrInvalidInput)
	}
	return isp * StdGravity / 1e3, nil
}

// MassRatio returns the Tsiolkovsky mass ratio m0/mf for a burn of Δv km/s
// at exhaust velocity ve km/s.
func MassRatio(Δv, ve float64) (float64, error) {
	if Δv < 0 || ve <= 0 {
		return 0, fmt.Errorf("%w: need non-negative Δv and positive exhaust velocity", ErrInvalidInput)
	}
	return math.Exp(Δv / ve), nil
}

// PropellantFraction returns the fraction of initial mass burned for Δv km/s
// at exhaust velocity ve km/s.
func PropellantFraction(Δv, ve float64) (float64, error) {
	if Δv < 0 || ve <= 0 {
		return 0, fmt.Errorf("%w: need non-negative Δv and positive exhaust velocity", ErrInvalidInput)
	}
	return 1 - math.Exp(-Δv/ve), nil
}

// RequiredPropellant returns the propellant mass in kg burned by a ship of
// initial mass m0 kg over a Δv km/s burn at exhaust velocity ve km/s.
func RequiredPropellant(m0, Δv, ve float64) (float64, error) {
	if m0 <= 0 {
		return 0, fmt.Errorf("%w: initial mass must be positive", ErrInvalidInput)
	}
	frac, err := PropellantFraction(Δv, ve)
	if err != nil {
		return 0, err
	}
	return m0 * frac, nil
}

// InitialMass returns the initial mass in kg needed to end a Δv km/s burn at
// final mass mf kg.
func InitialMass(mf, Δv, ve float64) (float64, error) {
	if mf <= 0 {
		return 0, fmt.Errorf("%w: final mass must be positive", ErrInvalidInput)
	}
	ratio, err := MassRatio(Δv, ve)
	if err != nil {
		return 0, err
	}
	return mf * ratio, nil
}

// MassFlowRate returns the propellant flow in kg/s of an engine producing F
// newtons at exhaust velocity ve km/s.
func MassFlowRate(F, ve float64) (float64, error) {
	if F <= 0 || ve <= 0 {
		return 0, fmt.Errorf("%w: thrust and exhaust velocity must be positive", ErrInvalidInput)
	}
	return F / (ve * 1e3), nil
}

// JetPower returns the kinetic power of the exhaust stream in watts for F
// newtons at exhaust velocity ve km/s.
func JetPower(F, ve float64) (float64, error) {
	if F <= 0 || ve <= 0 {
		return 0, fmt.Errorf("%w: thrust and exhaust velocity must be positive", ErrInvalidInput)
	}
	return 0.5 * F * ve * 1e3, nil
}

// MassEventKind categorizes the discrete events of a mass timeline.
type MassEventKind uint8

const (
	// FuelBurn consumes propellant per the rocket equation.
	FuelBurn MassEventKind = iota + 1
	// ContainerJettison sheds cargo or structure.
	ContainerJettison
	// DamageLoss sheds mass involuntarily.
	DamageLoss
	// Resupply takes on mass at a port.
	Resupply
)

// String implements the Stringer interface.
func (k MassEventKind) String() string {
	switch k {
	case FuelBurn:
		return "burn"
	case ContainerJettison:
		return "jettison"
	case DamageLoss:
		return "damage"
	case Resupply:
		return "resupply"
	default:
		panic("unknown mass event kind")
	}
}

// MassEvent is one discrete change in ship mass. Burns carry a Δv in km/s;
// all other kinds carry a signed MassDelta in kg.
type MassEvent struct {
	Label     string
	Kind      MassEventKind
	Δv        float64 // km/s, FuelBurn only
	MassDelta float64 // kg, ignored for FuelBurn
}

// MassSnapshot is the ship mass around one event.
type MassSnapshot struct {
	Event          MassEvent
	MassBefore     float64 // kg
	MassAfter      float64 // kg
	PropellantUsed float64 // kg, zero for non-burn events
}

// MassTimeline replays a sequence of mass events from an initial mass.
type MassTimeline struct {
	InitialMass float64 // kg
	Ve          float64 // exhaust velocity, km/s
	Events      []MassEvent
}

// Snapshots replays the timeline and returns the mass around every event.
func (tl MassTimeline) Snapshots() ([]MassSnapshot, error) {
	if tl.InitialMass <= 0 || tl.Ve <= 0 {
		return nil, fmt.Errorf("%w: need positive initial mass and exhaust velocity", ErrInvalidInput)
	}
	snaps := make([]MassSnapshot, len(tl.Events))
	m := tl.InitialMass
	for i, evt := range tl.Events {
		snap := MassSnapshot{Event: evt, MassBefore: m}
		switch evt.Kind {
		case FuelBurn:
			used, err := RequiredPropellant(m, evt.Δv, tl.Ve)
			if err != nil {
				return nil, fmt.Errorf("event %q: %w", evt.Label, err)
			}
			snap.PropellantUsed = used
			m -= used
		case ContainerJettison, DamageLoss, Resupply:
			m += evt.MassDelta
			if m <= 0 {
				return nil, fmt.Errorf("%w: event %q drives mass to %f kg", ErrInvalidInput, evt.Label, m)
			}
		default:
			panic("unknown mass event kind")
		}
		snap.MassAfter = m
		snaps[i] = snap
	}
	return snaps, nil
}

// FinalMass returns the ship mass in kg after the last event.
func (tl MassTimeline) FinalMass() (float64, error) {
	snaps, err := tl.Snapshots()
	if err != nil {
		return 0, err
	}
	if len(snaps) == 0 {
		return tl.InitialMass, nil
	}
	return snaps[len(snaps)-1].MassAfter, nil
}

// PropellantConsumed returns the total propellant in kg burned over the
// timeline.
func (tl MassTimeline) PropellantConsumed() (float64, error) {
	snaps, err := tl.Snapshots()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, snap := range snaps {
		total += snap.PropellantUsed
	}
	return total, nil
}

// PropellantMargin returns the mass in kg remaining above the dry mass after
// the last event. A negative margin means the timeline is infeasible.
func (tl MassTimeline) PropellantMargin(dryMass float64) (float64, error) {
	final, err := tl.FinalMass()
	if err != nil {
		return 0, err
	}
	return final - dryMass, nil
}
