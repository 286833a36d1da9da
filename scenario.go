package solarline

import (
	"fmt"
	"time"
)

// TransferType tags the physical model a transfer leg was computed with.
type TransferType uint8

const (
	// Ballistic is an unpowered two-burn transfer on a conic arc.
	Ballistic TransferType = iota + 1
	// Brachistochrone is a continuous-thrust accelerate/flip/decelerate leg.
	Brachistochrone
	// Hyperbolic is an arrival or departure on a hyperbolic trajectory.
	Hyperbolic
	// Coast is an unpowered cruise with at most trim corrections.
	Coast
)

// String implements the Stringer interface.
func (t TransferType) String() string {
	switch t {
	case Ballistic:
		return "ballistic"
	case Brachistochrone:
		return "brachistochrone"
	case Hyperbolic:
		return "hyperbolic"
	case Coast:
		return "coast"
	default:
		panic("unknown transfer type")
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (t TransferType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *TransferType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"ballistic"`:
		*t = Ballistic
	case `"brachistochrone"`:
		*t = Brachistochrone
	case `"hyperbolic"`:
		*t = Hyperbolic
	case `"coast"`:
		*t = Coast
	default:
		return fmt.Errorf("%w: unknown transfer type %s", ErrInvalidInput, data)
	}
	return nil
}

// TransferResult is one analyzed leg of a voyage. Fields which do not apply
// to the leg's type are zero: a coast leg has no acceleration, a ballistic
// leg no peak velocity.
type TransferResult struct {
	Type         TransferType  `json:"type"`
	Label        string        `json:"label"`
	DepartureΔv  float64       `json:"departureDV,omitempty"`  // km/s
	ArrivalΔv    float64       `json:"arrivalDV,omitempty"`    // km/s
	TotalΔv      float64       `json:"totalDV"`                // km/s
	TOF          time.Duration `json:"tof,omitempty"`          // nanoseconds
	PeakVelocity float64       `json:"peakVelocity,omitempty"` // km/s
	Accel        float64       `json:"accel,omitempty"`        // km/s²
}

// NewBallisticTransfer analyzes a Hohmann transfer between circular orbits of
// radii r1 and r2 km about a body of gravitational parameter μ.
func NewBallisticTransfer(μ, r1, r2 float64, label string) (TransferResult, error) {
	hohmann, err := NewHohmannTransfer(μ, r1, r2)
	if err != nil {
		return TransferResult{}, fmt.Errorf("%s: %w", label, err)
	}
	return TransferResult{
		Type:        Ballistic,
		Label:       label,
		DepartureΔv: hohmann.DepartureΔv,
		ArrivalΔv:   hohmann.ArrivalΔv,
		TotalΔv:     hohmann.TotalΔv,
		TOF:         hohmann.TOF,
	}, nil
}

// NewBrachistochroneTransfer analyzes a continuous-thrust leg over d km in
// the given time.
func NewBrachistochroneTransfer(d float64, tof time.Duration, label string) (TransferResult, error) {
	t := tof.Seconds()
	Δv, err := BrachistochroneΔv(d, t)
	if err != nil {
		return TransferResult{}, fmt.Errorf("%s: %w", label, err)
	}
	peak, _ := BrachistochronePeakVelocity(d, t)
	accel, _ := BrachistochroneAccel(d, t)
	return TransferResult{
		Type:         Brachistochrone,
		Label:        label,
		TotalΔv:      Δv,
		TOF:          tof,
		PeakVelocity: peak,
		Accel:        accel,
	}, nil
}

// NewHyperbolicArrival analyzes a capture burn into a circular orbit of
// radius r km from a hyperbolic approach at vInf km/s.
func NewHyperbolicArrival(body CelestialObject, r, vInf float64, label string) (TransferResult, error) {
	Δv, err := CircularCaptureΔv(body, r, vInf)
	if err != nil {
		return TransferResult{}, fmt.Errorf("%s: %w", label, err)
	}
	return TransferResult{
		Type:         Hyperbolic,
		Label:        label,
		ArrivalΔv:    Δv,
		TotalΔv:      Δv,
		PeakVelocity: vInf,
	}, nil
}

// NewCoastTransfer records an unpowered cruise at cruiseV km/s with a trim
// budget of trimΔv km/s over the given duration.
func NewCoastTransfer(cruiseV, trimΔv float64, tof time.Duration, label string) (TransferResult, error) {
	if cruiseV < 0 || trimΔv < 0 || tof < 0 {
		return TransferResult{}, fmt.Errorf("%s: %w: cruise velocity, trim budget and duration must be non-negative", label, ErrInvalidInput)
	}
	return TransferResult{
		Type:         Coast,
		Label:        label,
		TotalΔv:      trimΔv,
		TOF:          tof,
		PeakVelocity: cruiseV,
	}, nil
}
