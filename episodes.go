package solarline

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ShipConfig is the single source of truth for the vessel every analysis
// uses. Episodes never hard-code ship parameters; they take a ShipConfig so
// the cross-episode consistency checks are meaningful.
type ShipConfig struct {
	Name          string  `json:"name"`
	NominalMass   float64 `json:"nominalMass"`   // kg, fully loaded
	DryMass       float64 `json:"dryMass"`       // kg, structure plus cargo
	NominalThrust float64 `json:"nominalThrust"` // N
	DamagedThrust float64 `json:"damagedThrust"` // N, after the drive damage
	TrimThrust    float64 `json:"trimThrust"`    // N, station-keeping only
	Isp           float64 `json:"isp"`           // s
}

// Validate returns an error unless every parameter is physically sensible.
func (s ShipConfig) Validate() error {
	if s.NominalMass <= 0 || s.DryMass <= 0 || s.NominalThrust <= 0 || s.Isp <= 0 {
		return fmt.Errorf("%w: ship mass, thrust and Isp must be positive", ErrInvalidInput)
	}
	if s.DryMass >= s.NominalMass {
		return fmt.Errorf("%w: dry mass %f kg leaves no propellant under %f kg", ErrInvalidInput, s.DryMass, s.NominalMass)
	}
	if s.DamagedThrust < 0 || s.DamagedThrust > s.NominalThrust {
		return fmt.Errorf("%w: damaged thrust must be within [0, nominal]", ErrInvalidInput)
	}
	if s.TrimThrust < 0 || s.TrimThrust > s.NominalThrust {
		return fmt.Errorf("%w: trim thrust must be within [0, nominal]", ErrInvalidInput)
	}
	return nil
}

// ExhaustVelocity returns the drive exhaust velocity in km/s. It panics on an
// unvalidated ship, this is a programmer error.
func (s ShipConfig) ExhaustVelocity() float64 {
	ve, err := ExhaustVelocity(s.Isp)
	if err != nil {
		panic("exhaust velocity of unvalidated ship")
	}
	return ve
}

// PropellantCapacity returns the usable propellant load in kg.
func (s ShipConfig) PropellantCapacity() float64 {
	return s.NominalMass - s.DryMass
}

// Kestrel is the vessel of the series: a 300 t freighter with a 9.8 MN
// fusion torch at a million seconds of specific impulse, flying damaged at
// 65% thrust from the fourth episode on.
var Kestrel = ShipConfig{
	Name:          "Kestrel",
	NominalMass:   300e3,
	DryMass:       122.3e3,
	NominalThrust: 9.8e6,
	DamagedThrust: 6.37e6,
	TrimThrust:    98e3,
	Isp:           1e6,
}

// ConsistencyCheck compares a value an episode used against the shared
// source of truth.
type ConsistencyCheck struct {
	Name      string  `json:"name"`
	Expected  float64 `json:"expected"`
	Actual    float64 `json:"actual"`
	Tolerance float64 `json:"tolerance"`
	OK        bool    `json:"ok"`
}

func newCheck(name string, expected, actual, tolerance float64) ConsistencyCheck {
	return ConsistencyCheck{
		Name:      name,
		Expected:  expected,
		Actual:    actual,
		Tolerance: tolerance,
		OK:        math.Abs(actual-expected) <= tolerance*math.Abs(expected),
	}
}

// EpisodeResult is the analyzed outcome of one narrative leg. Fields which
// do not apply to an episode are zero and omitted from the JSON report.
type EpisodeResult struct {
	Episode    int              `json:"episode"`
	Title      string           `json:"title"`
	Epoch      time.Time        `json:"epoch"`
	JulianDate float64          `json:"julianDate"`
	Legs       []TransferResult `json:"legs"`

	// Feasibility of the claimed schedule against the thrust ceiling.
	MinTime      time.Duration `json:"minTime,omitempty"`
	MassBoundary float64       `json:"massBoundary,omitempty"` // kg
	Feasible     bool          `json:"feasible"`

	// Propellant accounting over the episode's mass timeline.
	PropellantUsed   float64 `json:"propellantUsed,omitempty"`   // kg
	FinalMass        float64 `json:"finalMass,omitempty"`        // kg
	PropellantMargin float64 `json:"propellantMargin,omitempty"` // kg above dry

	Relativity    RelativisticCorrection `json:"relativity,omitempty"`
	AberrationDeg float64                `json:"aberrationDeg,omitempty"`
	Oberth        OberthAnalysis         `json:"oberth,omitempty"`

	// Engine wear, fifth episode only.
	BurnTime     time.Duration `json:"burnTime,omitempty"`
	NozzleLife   time.Duration `json:"nozzleLife,omitempty"`
	NozzleMargin float64       `json:"nozzleMargin,omitempty"` // fraction of life remaining
}

// Episode 1 constants: the Mars to Jupiter dash.
const (
	ep1Distance = 550630800.0 // km, Mars-Jupiter separation at the epoch
	ep1Time     = 72 * time.Hour
)

// AnalyzeEpisode1 analyzes the opening dash: Mars to Jupiter, 550,630,800 km
// in 72 hours under continuous thrust.
func AnalyzeEpisode1(ship ShipConfig, epoch time.Time) (EpisodeResult, error) {
	if err := ship.Validate(); err != nil {
		return EpisodeResult{}, err
	}
	leg, err := NewBrachistochroneTransfer(ep1Distance, ep1Time, "Mars-Jupiter dash")
	if err != nil {
		return EpisodeResult{}, err
	}
	minTime, err := MinTransferTime(ep1Distance, ship.NominalMass, ship.NominalThrust)
	if err != nil {
		return EpisodeResult{}, err
	}
	boundary, err := MaxFeasibleMass(ep1Distance, ep1Time.Seconds(), ship.NominalThrust)
	if err != nil {
		return EpisodeResult{}, err
	}
	rel, err := NewRelativisticCorrection(leg.PeakVelocity, ep1Time.Seconds(), ship.ExhaustVelocity())
	if err != nil {
		return EpisodeResult{}, err
	}
	timeline := MassTimeline{
		InitialMass: ship.NominalMass,
		Ve:          ship.ExhaustVelocity(),
		Events: []MassEvent{
			{Label: "acceleration burn", Kind: FuelBurn, Δv: leg.TotalΔv / 2},
			{Label: "deceleration burn", Kind: FuelBurn, Δv: leg.TotalΔv / 2},
		},
	}
	used, err := timeline.PropellantConsumed()
	if err != nil {
		return EpisodeResult{}, err
	}
	final, _ := timeline.FinalMass()
	return EpisodeResult{
		Episode:          1,
		Title:            "Mars to Jupiter in 72 hours",
		Epoch:            epoch,
		JulianDate:       julian.TimeToJD(epoch),
		Legs:             []TransferResult{leg},
		MinTime:          minTime,
		MassBoundary:     boundary,
		Feasible:         minTime <= ep1Time,
		PropellantUsed:   used,
		FinalMass:        final,
		PropellantMargin: final - ship.DryMass,
		Relativity:       rel,
	}, nil
}

// Episode 2 constants: the ballistic leg to Saturn.
const (
	ep2EscapeRadius = 50 * 71492.0 // km, trim-thrust spiral ends at 50 Jupiter radii
	ep2CruiseV      = 18.99        // km/s, heliocentric departure velocity
	ep2CruiseTime   = 455 * 24 * time.Hour
	ep2JupiterVInf  = 5.93 // km/s
	ep2SaturnVInf   = 4.69 // km/s, arrival excess at Saturn
	ep2TrimBudget   = 0.05 // km/s, midcourse corrections
)

// AnalyzeEpisode2 analyzes the quiet leg: a trim-thrust departure from
// Jupiter, 455 days of ballistic cruise, and capture at Enceladus' orbit
// about Saturn.
func AnalyzeEpisode2(ship ShipConfig, epoch time.Time) (EpisodeResult, error) {
	if err := ship.Validate(); err != nil {
		return EpisodeResult{}, err
	}
	// Departure velocity on the hyperbolic asymptote at the spiral's end.
	vDepart := math.Sqrt(ep2JupiterVInf*ep2JupiterVInf + 2*Jupiter.GM()/ep2EscapeRadius)
	departure := TransferResult{
		Type:         Hyperbolic,
		Label:        "Jupiter escape under trim thrust",
		DepartureΔv:  ep2JupiterVInf,
		TotalΔv:      ep2JupiterVInf,
		PeakVelocity: vDepart,
	}
	cruise, err := NewCoastTransfer(ep2CruiseV, ep2TrimBudget, ep2CruiseTime, "Jupiter-Saturn ballistic cruise")
	if err != nil {
		return EpisodeResult{}, err
	}
	capture, err := NewHyperbolicArrival(Saturn, EnceladusOrbitRadius, ep2SaturnVInf, "Saturn capture at Enceladus")
	if err != nil {
		return EpisodeResult{}, err
	}
	minCapture, err := MinCaptureΔv(Saturn, EnceladusOrbitRadius, ep2SaturnVInf)
	if err != nil {
		return EpisodeResult{}, err
	}
	timeline := MassTimeline{
		InitialMass: ship.NominalMass,
		Ve:          ship.ExhaustVelocity(),
		Events: []MassEvent{
			{Label: "escape spiral", Kind: FuelBurn, Δv: departure.TotalΔv},
			{Label: "midcourse trim", Kind: FuelBurn, Δv: cruise.TotalΔv},
			{Label: "capture burn", Kind: FuelBurn, Δv: minCapture},
		},
	}
	used, err := timeline.PropellantConsumed()
	if err != nil {
		return EpisodeResult{}, err
	}
	final, _ := timeline.FinalMass()
	return EpisodeResult{
		Episode:          2,
		Title:            "The long coast to Saturn",
		Epoch:            epoch,
		JulianDate:       julian.TimeToJD(epoch),
		Legs:             []TransferResult{departure, cruise, capture},
		Feasible:         true,
		PropellantUsed:   used,
		FinalMass:        final,
		PropellantMargin: final - ship.DryMass,
	}, nil
}

// Episode 3 constants: Saturn to Uranus against the clock.
const (
	ep3Distance = 1438930000.0 // km
	ep3Time     = 143*time.Hour + 12*time.Minute
)

// AnalyzeEpisode3 analyzes the Saturn to Uranus run: 1,438,930,000 km in
// 143 h 12 m, right at the edge of the thrust ceiling.
func AnalyzeEpisode3(ship ShipConfig, epoch time.Time) (EpisodeResult, error) {
	if err := ship.Validate(); err != nil {
		return EpisodeResult{}, err
	}
	leg, err := NewBrachistochroneTransfer(ep3Distance, ep3Time, "Saturn-Uranus run")
	if err != nil {
		return EpisodeResult{}, err
	}
	minTime, err := MinTransferTime(ep3Distance, ship.NominalMass, ship.NominalThrust)
	if err != nil {
		return EpisodeResult{}, err
	}
	boundary, err := MaxFeasibleMass(ep3Distance, ep3Time.Seconds(), ship.NominalThrust)
	if err != nil {
		return EpisodeResult{}, err
	}
	rel, err := NewRelativisticCorrection(leg.PeakVelocity, ep3Time.Seconds(), ship.ExhaustVelocity())
	if err != nil {
		return EpisodeResult{}, err
	}
	timeline := MassTimeline{
		InitialMass: ship.NominalMass,
		Ve:          ship.ExhaustVelocity(),
		Events: []MassEvent{
			{Label: "acceleration burn", Kind: FuelBurn, Δv: leg.TotalΔv / 2},
			{Label: "deceleration burn", Kind: FuelBurn, Δv: leg.TotalΔv / 2},
		},
	}
	used, err := timeline.PropellantConsumed()
	if err != nil {
		return EpisodeResult{}, err
	}
	final, _ := timeline.FinalMass()
	return EpisodeResult{
		Episode:          3,
		Title:            "Saturn to Uranus against the clock",
		Epoch:            epoch,
		JulianDate:       julian.TimeToJD(epoch),
		Legs:             []TransferResult{leg},
		MinTime:          minTime,
		MassBoundary:     boundary,
		Feasible:         minTime <= ep3Time,
		PropellantUsed:   used,
		FinalMass:        final,
		PropellantMargin: final - ship.DryMass,
		Relativity:       rel,
	}, nil
}

// Episode 4 constants: limping away from Uranus.
const (
	ep4CruiseV    = 3000.0 // km/s
	ep4CruiseTime = 24 * time.Hour
)

// AnalyzeEpisode4 analyzes the damaged departure: escape from Titania's
// orbit at 65% thrust, then a navigation cross-check of stellar aberration
// at cruise velocity.
func AnalyzeEpisode4(ship ShipConfig, epoch time.Time) (EpisodeResult, error) {
	if err := ship.Validate(); err != nil {
		return EpisodeResult{}, err
	}
	vCirc, err := CircularVelocity(Uranus.GM(), TitaniaOrbitRadius)
	if err != nil {
		return EpisodeResult{}, err
	}
	vEsc, err := EscapeVelocity(Uranus.GM(), TitaniaOrbitRadius)
	if err != nil {
		return EpisodeResult{}, err
	}
	escapeΔv := vEsc - vCirc
	accel := ship.DamagedThrust / ship.NominalMass / 1e3 // km/s²
	burnTime := time.Duration(escapeΔv / accel * float64(time.Second))
	departure := TransferResult{
		Type:        Hyperbolic,
		Label:       "Uranus escape from Titania orbit, damaged drive",
		DepartureΔv: escapeΔv,
		TotalΔv:     escapeΔv,
		TOF:         burnTime,
		Accel:       accel,
	}
	cruise, err := NewCoastTransfer(ep4CruiseV, 0, ep4CruiseTime, "inbound cruise, first day")
	if err != nil {
		return EpisodeResult{}, err
	}
	aberration, err := MaxStellarAberration(ep4CruiseV)
	if err != nil {
		return EpisodeResult{}, err
	}
	timeline := MassTimeline{
		InitialMass: ship.NominalMass,
		Ve:          ship.ExhaustVelocity(),
		Events: []MassEvent{
			{Label: "escape burn", Kind: FuelBurn, Δv: escapeΔv},
		},
	}
	used, err := timeline.PropellantConsumed()
	if err != nil {
		return EpisodeResult{}, err
	}
	final, _ := timeline.FinalMass()
	return EpisodeResult{
		Episode:          4,
		Title:            "Leaving Uranus on a broken drive",
		Epoch:            epoch,
		JulianDate:       julian.TimeToJD(epoch),
		Legs:             []TransferResult{departure, cruise},
		Feasible:         true,
		PropellantUsed:   used,
		FinalMass:        final,
		PropellantMargin: final - ship.DryMass,
		AberrationDeg:    aberration,
	}, nil
}

// Episode 5 constants: the sprint home.
const (
	ep5Distance    = 2722861977.0 // km, Uranus-Earth separation at the epoch
	ep5ClaimedTime = 717120 * time.Second
	ep5CruiseV     = 1500.0 // km/s between burns

	ep5FlybyPeriapsis = 2 * 71492.0 // km, Jupiter powered flyby
	ep5OberthMargin   = 0.01        // gain below 1% of the burn is noise

	ep5NozzleLife = 200280 * time.Second // 55 h 38 m rated burn life
)

// ep5Burns is the published four-burn profile: Δv in km/s and burn duration.
var ep5Burns = []struct {
	label string
	Δv    float64
	burn  time.Duration
}{
	{"departure burn", 3800, 12 * time.Hour},
	{"Jupiter flyby burn", 456, 8 * time.Hour},
	{"main deceleration", 7600, 35 * time.Hour},
	{"LEO insertion", 7.67, 12 * time.Minute},
}

// AnalyzeEpisode5 analyzes the finale: Uranus to Earth in 8.3 days. It
// evaluates the single-brachistochrone reading of the claim, the published
// four-burn profile with its Jupiter powered flyby, the Earth capture, the
// nozzle-life margin, and whether relativity dents the Δv budget.
func AnalyzeEpisode5(ship ShipConfig, epoch time.Time) (EpisodeResult, error) {
	if err := ship.Validate(); err != nil {
		return EpisodeResult{}, err
	}
	naive, err := NewBrachistochroneTransfer(ep5Distance, ep5ClaimedTime, "Uranus-Earth as a pure brachistochrone")
	if err != nil {
		return EpisodeResult{}, err
	}
	legs := []TransferResult{naive}
	var totalΔv float64
	var burnTime time.Duration
	events := make([]MassEvent, 0, len(ep5Burns))
	for _, b := range ep5Burns {
		legs = append(legs, TransferResult{
			Type:    Brachistochrone,
			Label:   b.label,
			TotalΔv: b.Δv,
			TOF:     b.burn,
		})
		totalΔv += b.Δv
		burnTime += b.burn
		events = append(events, MassEvent{Label: b.label, Kind: FuelBurn, Δv: b.Δv})
	}
	coast, err := NewCoastTransfer(ep5CruiseV, 0, ep5ClaimedTime-burnTime, "coast between burns")
	if err != nil {
		return EpisodeResult{}, err
	}
	legs = append(legs, coast)
	oberth, err := AnalyzeOberth(Jupiter, ep5FlybyPeriapsis, ep5CruiseV, ep5Burns[1].Δv, ep5OberthMargin)
	if err != nil {
		return EpisodeResult{}, err
	}
	capture, err := NewHyperbolicArrival(Earth, Earth.Radius+400, 0, "Earth capture to LEO 400 km")
	if err != nil {
		return EpisodeResult{}, err
	}
	legs = append(legs, capture)
	rel, err := NewRelativisticCorrection(totalΔv, ep5ClaimedTime.Seconds(), ship.ExhaustVelocity())
	if err != nil {
		return EpisodeResult{}, err
	}
	timeline := MassTimeline{InitialMass: ship.NominalMass, Ve: ship.ExhaustVelocity(), Events: events}
	used, err := timeline.PropellantConsumed()
	if err != nil {
		return EpisodeResult{}, err
	}
	final, _ := timeline.FinalMass()
	nozzleMargin := float64(ep5NozzleLife-burnTime) / float64(ep5NozzleLife)
	return EpisodeResult{
		Episode:          5,
		Title:            "Uranus to Earth in 8.3 days",
		Epoch:            epoch,
		JulianDate:       julian.TimeToJD(epoch),
		Legs:             legs,
		Feasible:         burnTime <= ep5NozzleLife,
		PropellantUsed:   used,
		FinalMass:        final,
		PropellantMargin: final - ship.DryMass,
		Relativity:       rel,
		Oberth:           oberth,
		BurnTime:         burnTime,
		NozzleLife:       ep5NozzleLife,
		NozzleMargin:     nozzleMargin,
	}, nil
}

// SeriesAnalysis is the aggregate of every episode plus the cross-episode
// consistency checks, all driven by one ShipConfig.
type SeriesAnalysis struct {
	Ship     ShipConfig         `json:"ship"`
	Episodes []EpisodeResult    `json:"episodes"`
	Checks   []ConsistencyCheck `json:"checks"`
}

// SeriesEpoch is the narrative start date.
var SeriesEpoch = time.Date(2241, 9, 5, 0, 0, 0, 0, time.UTC)

// portStay separates consecutive episodes in the series timeline.
const portStay = 7 * 24 * time.Hour

// AnalyzeSeries runs all five episode analyses off a shared ship
// configuration, advancing the epoch by each episode's longest leg plus a
// port stay, then verifies the episodes' derived constants against the ship.
func AnalyzeSeries(ship ShipConfig) (SeriesAnalysis, error) {
	if err := ship.Validate(); err != nil {
		return SeriesAnalysis{}, err
	}
	type analyzer func(ShipConfig, time.Time) (EpisodeResult, error)
	epoch := SeriesEpoch
	episodes := make([]EpisodeResult, 0, 5)
	for _, analyze := range []analyzer{AnalyzeEpisode1, AnalyzeEpisode2, AnalyzeEpisode3, AnalyzeEpisode4, AnalyzeEpisode5} {
		result, err := analyze(ship, epoch)
		if err != nil {
			return SeriesAnalysis{}, fmt.Errorf("episode %d: %w", len(episodes)+1, err)
		}
		episodes = append(episodes, result)
		var longest time.Duration
		for _, leg := range result.Legs {
			if leg.TOF > longest {
				longest = leg.TOF
			}
		}
		epoch = epoch.Add(longest + portStay)
	}
	checks := []ConsistencyCheck{
		newCheck("damaged thrust is 65% of nominal", 0.65, ship.DamagedThrust/ship.NominalThrust, 1e-3),
		newCheck("trim thrust is 1% of nominal", 0.01, ship.TrimThrust/ship.NominalThrust, 1e-3),
		newCheck("exhaust velocity matches Isp", ship.Isp*StdGravity/1e3, ship.ExhaustVelocity(), 1e-9),
		newCheck("episode 4 departure acceleration", ship.DamagedThrust/ship.NominalMass/1e3, episodes[3].Legs[0].Accel, 1e-9),
	}
	return SeriesAnalysis{Ship: ship, Episodes: episodes, Checks: checks}, nil
}
