package solarline

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/gonum/floats"
	"github.com/soniakeys/meeus/julian"
)

func TestShipConfigValidate(t *testing.T) {
	if err := Kestrel.Validate(); err != nil {
		t.Fatalf("the Kestrel must validate, got %v", err)
	}
	if !floats.EqualWithinAbs(Kestrel.ExhaustVelocity(), 9806.65, 1e-9) {
		t.Fatalf("exhaust velocity = %f km/s", Kestrel.ExhaustVelocity())
	}
	if !floats.EqualWithinAbs(Kestrel.PropellantCapacity(), 177.7e3, 1e-6) {
		t.Fatalf("propellant capacity = %f kg", Kestrel.PropellantCapacity())
	}
	bad := Kestrel
	bad.DryMass = bad.NominalMass
	if err := bad.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("dry mass above nominal must be ErrInvalidInput, got %v", err)
	}
	bad = Kestrel
	bad.DamagedThrust = 2 * bad.NominalThrust
	if err := bad.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("damaged thrust above nominal must be ErrInvalidInput, got %v", err)
	}
}

func TestEpisode1Dash(t *testing.T) {
	result, err := AnalyzeEpisode1(Kestrel, SeriesEpoch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(result.Legs) != 1 || result.Legs[0].Type != Brachistochrone {
		t.Fatalf("legs = %+v", result.Legs)
	}
	if !floats.EqualWithinAbs(result.Legs[0].TotalΔv, 8497.389, 1e-3) {
		t.Fatalf("dash Δv = %f km/s", result.Legs[0].TotalΔv)
	}
	// At the full 300 t the 72 hour schedule misses by minutes.
	if result.Feasible {
		t.Fatal("the dash at 300 t must not be feasible")
	}
	if short := result.MinTime - 72*time.Hour; short <= 0 || short > 10*time.Minute {
		t.Fatalf("min time overshoots 72 h by %s", short)
	}
	if !floats.EqualWithinAbs(result.MassBoundary, 298.9e3, 100) {
		t.Fatalf("mass boundary = %f kg", result.MassBoundary)
	}
	if !floats.EqualWithinAbs(result.PropellantUsed, 173.87e3, 200) {
		t.Fatalf("propellant used = %f kg", result.PropellantUsed)
	}
	if !floats.EqualWithinAbs(result.Relativity.TimeDilationSeconds, 26.0, 0.1) {
		t.Fatalf("clock deficit = %f s", result.Relativity.TimeDilationSeconds)
	}
	if result.JulianDate != julian.TimeToJD(SeriesEpoch) {
		t.Fatalf("JD = %f", result.JulianDate)
	}
}

func TestEpisode2Coast(t *testing.T) {
	result, err := AnalyzeEpisode2(Kestrel, SeriesEpoch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(result.Legs) != 3 {
		t.Fatalf("got %d legs", len(result.Legs))
	}
	cruise := result.Legs[1]
	if cruise.Type != Coast || cruise.TOF != 455*24*time.Hour {
		t.Fatalf("cruise leg = %+v", cruise)
	}
	capture := result.Legs[2]
	if !floats.EqualWithinAbs(capture.ArrivalΔv, 5.835, 0.01) {
		t.Fatalf("capture Δv = %f km/s", capture.ArrivalΔv)
	}
	// The quiet leg barely dents the tanks.
	if result.PropellantMargin <= 0 {
		t.Fatalf("propellant margin = %f kg", result.PropellantMargin)
	}
}

func TestEpisode3Run(t *testing.T) {
	result, err := AnalyzeEpisode3(Kestrel, SeriesEpoch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !floats.EqualWithinAbs(result.Legs[0].TotalΔv, 11164.88, 0.01) {
		t.Fatalf("run Δv = %f km/s", result.Legs[0].TotalΔv)
	}
	if !result.Feasible {
		t.Fatal("the schedule must clear the thrust ceiling")
	}
	if !floats.EqualWithinAbs(result.MassBoundary, 452.5e3, 300) {
		t.Fatalf("mass boundary = %f kg", result.MassBoundary)
	}
	// The Δv bill exceeds the tanks: the run only works with a resupply.
	if result.PropellantMargin >= 0 {
		t.Fatalf("propellant margin = %f kg, expected a deficit", result.PropellantMargin)
	}
}

func TestEpisode4Departure(t *testing.T) {
	result, err := AnalyzeEpisode4(Kestrel, SeriesEpoch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	departure := result.Legs[0]
	if !floats.EqualWithinAbs(departure.DepartureΔv, 1.5095, 1e-3) {
		t.Fatalf("escape Δv from Titania orbit = %f km/s", departure.DepartureΔv)
	}
	if !floats.EqualWithinAbs(departure.Accel*1e3, 21.23, 0.01) {
		t.Fatalf("damaged acceleration = %f m/s²", departure.Accel*1e3)
	}
	if !floats.EqualWithinAbs(result.AberrationDeg, 0.573362, 1e-4) {
		t.Fatalf("aberration at cruise = %f degrees", result.AberrationDeg)
	}
}

func TestEpisode5Finale(t *testing.T) {
	result, err := AnalyzeEpisode5(Kestrel, SeriesEpoch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	naive := result.Legs[0]
	if !floats.EqualWithinAbs(naive.TotalΔv, 15187.76, 0.05) {
		t.Fatalf("single brachistochrone reading = %f km/s", naive.TotalΔv)
	}
	if result.BurnTime != 55*time.Hour+12*time.Minute {
		t.Fatalf("total burn time = %s", result.BurnTime)
	}
	if !result.Feasible {
		t.Fatal("the burn plan must fit the nozzle life")
	}
	if !floats.EqualWithinAbs(result.NozzleMargin, 0.007789, 1e-5) {
		t.Fatalf("nozzle margin = %f", result.NozzleMargin)
	}
	if result.Oberth.Significant {
		t.Fatalf("Oberth efficiency %f flagged significant at cruise velocity", result.Oberth.Efficiency)
	}
	last := result.Legs[len(result.Legs)-1]
	if !floats.EqualWithinAbs(last.ArrivalΔv, 3.176, 1e-3) {
		t.Fatalf("Earth capture Δv = %f km/s", last.ArrivalΔv)
	}
	if result.Relativity.ΔvCorrectionFraction <= 0 {
		t.Fatalf("Δv correction fraction = %f", result.Relativity.ΔvCorrectionFraction)
	}
}

func TestAnalyzeSeries(t *testing.T) {
	analysis, err := AnalyzeSeries(Kestrel)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(analysis.Episodes) != 5 {
		t.Fatalf("got %d episodes", len(analysis.Episodes))
	}
	for i, episode := range analysis.Episodes {
		if episode.Episode != i+1 {
			t.Fatalf("episode %d numbered %d", i+1, episode.Episode)
		}
		if i > 0 && !episode.Epoch.After(analysis.Episodes[i-1].Epoch) {
			t.Fatalf("episode %d epoch %s does not advance", i+1, episode.Epoch)
		}
		if math.IsNaN(episode.JulianDate) || episode.JulianDate <= 0 {
			t.Fatalf("episode %d JD = %f", i+1, episode.JulianDate)
		}
	}
	if !analysis.Episodes[0].Epoch.Equal(SeriesEpoch) {
		t.Fatalf("series starts at %s", analysis.Episodes[0].Epoch)
	}
	for _, check := range analysis.Checks {
		if !check.OK {
			t.Fatalf("consistency check %q failed: expected %f, got %f", check.Name, check.Expected, check.Actual)
		}
	}
}

func TestAnalyzeSeriesIdempotent(t *testing.T) {
	first, err := AnalyzeSeries(Kestrel)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	second, err := AnalyzeSeries(Kestrel)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same ship differ")
	}
}

func TestAnalyzeSeriesInvalidShip(t *testing.T) {
	bad := Kestrel
	bad.Isp = 0
	if _, err := AnalyzeSeries(bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("invalid ship must be ErrInvalidInput, got %v", err)
	}
}
