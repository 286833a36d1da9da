package solarline

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestBrachistochroneMarsJupiter(t *testing.T) {
	d := 550630800.0
	tof := 259200.0
	accel, err := BrachistochroneAccel(d, tof)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinAbs(accel*1e3, 32.7831, 1e-3) {
		t.Fatalf("acceleration = %f m/s²", accel*1e3)
	}
	Δv, err := BrachistochroneΔv(d, tof)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinAbs(Δv, 8497.388888888889, 1e-6) {
		t.Fatalf("Δv = %f km/s", Δv)
	}
	peak, err := BrachistochronePeakVelocity(d, tof)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinAbs(peak, 4248.694444444444, 1e-6) {
		t.Fatalf("peak velocity = %f km/s", peak)
	}
	if !floats.EqualWithinAbs(peak, Δv/2, 1e-12) {
		t.Fatal("peak velocity must be half the Δv")
	}
}

func TestBrachistochroneRoundTrip(t *testing.T) {
	d := 1438930000.0
	tof := 515520.0
	accel, err := BrachistochroneAccel(d, tof)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	back, err := BrachistochroneMaxDistance(accel, tof)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinRel(back, d, 1e-9) {
		t.Fatalf("round trip distance = %f km, expected %f km", back, d)
	}
}

func TestBrachistochroneInverse(t *testing.T) {
	d := 550630800.0
	minTime, err := MinTransferTime(d, 299e3, 9.8e6)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if math.Abs(minTime.Seconds()-259228) > 1 {
		t.Fatalf("min transfer time at 299 t = %s", minTime)
	}
	// Mass and time solvers must invert each other.
	mass, err := MaxFeasibleMass(d, minTime.Seconds(), 9.8e6)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinRel(mass, 299e3, 1e-6) {
		t.Fatalf("max feasible mass = %f kg, expected 299 t back", mass)
	}
	thrust, err := RequiredThrust(d, minTime.Seconds(), 299e3)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinRel(thrust, 9.8e6, 1e-6) {
		t.Fatalf("required thrust = %f N, expected 9.8 MN back", thrust)
	}
}

func TestFeasibilityBoundary(t *testing.T) {
	boundary := FeasibilityBoundary{Distance: 550630800.0, Thrust: 9.8e6}
	minTime, err := boundary.MinTimeForMass(299e3)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	mass, err := boundary.MaxMassForTime(minTime)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinRel(mass, 299e3, 1e-6) {
		t.Fatalf("boundary round trip mass = %f kg", mass)
	}
}

func TestRelativisticTransferClassicalLimit(t *testing.T) {
	// At interplanetary accelerations the relativistic solution must agree
	// with the classical one to within a hundredth of a percent.
	d := 550630800.0
	tof := 259200.0
	accel, _ := BrachistochroneAccel(d, tof)
	rel, err := NewRelativisticTransfer(d, accel)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if rel.CoordinateTime.Seconds() < tof {
		t.Fatalf("relativistic coordinate time %s undercuts the classical %fs", rel.CoordinateTime, tof)
	}
	if !floats.EqualWithinRel(rel.CoordinateTime.Seconds(), tof, 1e-4) {
		t.Fatalf("coordinate time = %s, classical = %fs", rel.CoordinateTime, tof)
	}
	if rel.ProperTime > rel.CoordinateTime {
		t.Fatal("proper time must not exceed coordinate time")
	}
	classicalPeak, _ := BrachistochronePeakVelocity(d, tof)
	if !floats.EqualWithinRel(rel.PeakVelocity, classicalPeak, 1e-3) {
		t.Fatalf("relativistic peak = %f km/s, classical = %f km/s", rel.PeakVelocity, classicalPeak)
	}
}

func TestRelativisticTransferBounded(t *testing.T) {
	// No matter how absurd the thrust, the midpoint velocity stays below c.
	rel, err := NewRelativisticTransfer(1e12, 1e3)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if rel.PeakVelocity >= SpeedOfLight {
		t.Fatalf("peak velocity = %f km/s, not below c", rel.PeakVelocity)
	}
	if rel.ProperTime >= rel.CoordinateTime {
		t.Fatal("a relativistic transfer must dilate shipboard time")
	}
}

func TestBrachistochroneInvalidInput(t *testing.T) {
	for _, tc := range []struct{ d, tof float64 }{{0, 100}, {-1, 100}, {100, 0}, {100, -1}} {
		if _, err := BrachistochroneΔv(tc.d, tc.tof); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Δv(%f, %f) must be ErrInvalidInput, got %v", tc.d, tc.tof, err)
		}
	}
	if _, err := MinTransferTime(100, -1, 100); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative mass must be ErrInvalidInput, got %v", err)
	}
	var zero time.Duration
	boundary := FeasibilityBoundary{Distance: 100, Thrust: 100}
	if _, err := boundary.MaxMassForTime(zero); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero time must be ErrInvalidInput, got %v", err)
	}
}
