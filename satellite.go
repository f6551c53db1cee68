package orbitalsim

import (
	"fmt"
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

const (
	maxEccentricity = 0.99
	// minRadiusFactor keeps the semi-major axis above the central body surface.
	minRadiusFactor = 1.01
)

// Toggles enables or disables each perturbation source independently.
type Toggles struct {
	LunarGravity      bool
	SolarGravity      bool
	J2Oblateness      bool
	AtmosphericDrag   bool
	RadiationPressure bool
}

// Drift accumulates the additive perturbation history of the angular elements since the
// satellite was constructed. Radians; diagnostic only.
type Drift struct {
	ArgOfPeriapsis float64
	AscendingNode  float64
	Inclination    float64
}

// Satellite holds the mutable classical element set of one propagated satellite and the
// handles its perturbation models need. Exactly one writer may call Propagate or the
// Adjust mutators at a time; collaborators read between complete Propagate calls.
type Satellite struct {
	a, e, i, Ω, ω, ν float64
	n                float64 // mean motion, recomputed whenever a changes
	μ                float64
	env              EnvironmentProvider
	enabled          []ForceModel
	lunar            *ThirdBodyGravity
	solar            *ThirdBodyGravity
	oblate           *J2Oblateness
	drag             *AtmosphericDrag
	srp              *RadiationPressure
	drift            Drift
	logger           kitlog.Logger
	decayed          bool
	cacheHash        float64
	cachedR          []float64
}

// NewSatellite builds a satellite from classical orbital elements.
// WARNING: Angles must be in degrees not radian.
// The element invariants (e, i, a bounds, angle normalization) are enforced silently,
// exactly like the per-step clamp does; garbage input is the host's problem.
func NewSatellite(a, e, i, ω, Ω, ν, g, centralMass float64, toggles Toggles, env EnvironmentProvider) *Satellite {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "orbit")
	s := &Satellite{
		a:      a,
		e:      e,
		i:      Deg2rad(i),
		ω:      Deg2rad(ω),
		Ω:      Deg2rad(Ω),
		ν:      Deg2rad(ν),
		μ:      g * centralMass,
		env:    env,
		logger: klog,
	}
	s.lunar = NewLunarGravity()
	s.solar = NewSolarGravity()
	s.oblate = NewJ2Oblateness()
	s.drag = NewAtmosphericDrag(HarmonicDensity)
	s.srp = NewRadiationPressure()
	if toggles.LunarGravity {
		s.enabled = append(s.enabled, s.lunar)
	}
	if toggles.SolarGravity {
		s.enabled = append(s.enabled, s.solar)
	}
	if toggles.J2Oblateness {
		s.enabled = append(s.enabled, s.oblate)
	}
	if toggles.AtmosphericDrag {
		s.enabled = append(s.enabled, s.drag)
	}
	if toggles.RadiationPressure {
		s.enabled = append(s.enabled, s.srp)
	}
	s.hardClamp()
	return s
}

// SetLogger replaces the satellite's logger.
func (s *Satellite) SetLogger(l kitlog.Logger) {
	s.logger = l
}

// TrueAnomaly returns the current true anomaly in radians.
func (s *Satellite) TrueAnomaly() float64 {
	return s.ν
}

// MeanMotion returns the current mean motion in rad/s.
func (s *Satellite) MeanMotion() float64 {
	return s.n
}

// SemiParameter returns the semi-latus rectum.
func (s *Satellite) SemiParameter() float64 {
	return s.a * (1 - s.e*s.e)
}

// Apoapsis returns the apoapsis radius.
func (s *Satellite) Apoapsis() float64 {
	return s.a * (1 + s.e)
}

// Periapsis returns the periapsis radius.
func (s *Satellite) Periapsis() float64 {
	return s.a * (1 - s.e)
}

// RNorm returns the current orbit radius without computing the full position vector.
func (s *Satellite) RNorm() float64 {
	return OrbitalRadius(s.a, s.e, s.ν)
}

// Position returns the current orbital-plane Cartesian position.
func (s *Satellite) Position() (x, y float64) {
	return PolarToOrbitalCartesian(s.RNorm(), s.ν)
}

// Position3D returns the current inertial position vector.
func (s *Satellite) Position3D() []float64 {
	if s.hashValid() {
		return s.cachedR
	}
	x, y := s.Position()
	s.cachedR = PQW2ECI(s.i, s.ω, s.Ω, []float64{x, y, 0})
	s.computeHash()
	return s.cachedR
}

// Velocity returns the current speed from the vis-viva equation.
func (s *Satellite) Velocity() float64 {
	return math.Sqrt(s.μ * (2/s.RNorm() - 1/s.a))
}

// OrbitalPeriod returns the period of the current orbit.
func (s *Satellite) OrbitalPeriod() time.Duration {
	// The time package does not trivially handle fractions of a second, so let's
	// compute this in a convoluted way...
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", s.PeriodSeconds()))
	return duration
}

// PeriodSeconds returns the orbital period 2π/n in seconds.
func (s *Satellite) PeriodSeconds() float64 {
	return 2 * math.Pi / s.n
}

// Elements returns the classical elements in radians (a in meters).
func (s *Satellite) Elements() (a, e, i, ω, Ω, ν float64) {
	return s.a, s.e, s.i, s.ω, s.Ω, s.ν
}

// ElementsDeg returns the classical element snapshot with all angles in degrees.
func (s *Satellite) ElementsDeg() (a, e, i, ω, Ω, ν float64) {
	return s.a, s.e, Rad2deg(s.i), Rad2deg(s.ω), Rad2deg(s.Ω), Rad2deg(s.ν)
}

// Drift returns the accumulated perturbation drift snapshot.
func (s *Satellite) Drift() Drift {
	return s.drift
}

// String implements the stringer interface (hence the value receiver).
func (s Satellite) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", s.a, s.e, Rad2deg(s.i), Rad2deg(s.Ω), Rad2deg(s.ω), Rad2deg(s.ν))
}

/* Additive mutators. The perturbation models only touch the elements through these. */

// AdjustSemiMajorAxis shifts a by Δ meters.
func (s *Satellite) AdjustSemiMajorAxis(Δ float64) {
	s.a += Δ
}

// AdjustEccentricity shifts e by Δ.
func (s *Satellite) AdjustEccentricity(Δ float64) {
	s.e += Δ
}

// AdjustInclination shifts i by Δ radians and records the drift.
func (s *Satellite) AdjustInclination(Δ float64) {
	s.i += Δ
	s.drift.Inclination += Δ
}

// AdjustArgumentOfPeriapsis shifts ω by Δ radians and records the drift.
func (s *Satellite) AdjustArgumentOfPeriapsis(Δ float64) {
	s.ω += Δ
	s.drift.ArgOfPeriapsis += Δ
}

// AdjustLongitudeOfAscendingNode shifts Ω by Δ radians and records the drift.
func (s *Satellite) AdjustLongitudeOfAscendingNode(Δ float64) {
	s.Ω += Δ
	s.drift.AscendingNode += Δ
}

/* Per-effect diagnostics. Pure reads; each takes a fresh environment snapshot. */

// DragAcceleration returns the current atmospheric drag acceleration in m/s².
func (s *Satellite) DragAcceleration() float64 {
	return s.drag.CurrentAcceleration(s, snapshotEnvironment(s.env))
}

// J2Acceleration returns the current oblateness acceleration magnitude in m/s².
func (s *Satellite) J2Acceleration() float64 {
	return s.oblate.CurrentAcceleration(s, snapshotEnvironment(s.env))
}

// J2PrecessionRates returns the secular nodal and apsidal precession rates in rad/s.
func (s *Satellite) J2PrecessionRates() (nodal, apsidal float64) {
	return s.oblate.PrecessionRates(s, snapshotEnvironment(s.env))
}

// J2Significant reports whether the oblateness precession is fast enough to matter
// visually for this orbit.
func (s *Satellite) J2Significant() bool {
	return s.oblate.Significant(s, snapshotEnvironment(s.env))
}

// J2Summary returns a human readable description of the oblateness effect.
func (s *Satellite) J2Summary() string {
	return s.oblate.Summary(s, snapshotEnvironment(s.env))
}

// RadiationPressureAcceleration returns the current SRP acceleration in m/s², already
// scaled by the eclipse lighting factor.
func (s *Satellite) RadiationPressureAcceleration() float64 {
	return s.srp.CurrentAcceleration(s, snapshotEnvironment(s.env))
}

// ShadowCondition classifies the satellite against the central body's shadow cone.
func (s *Satellite) ShadowCondition() ShadowState {
	_, state := s.srp.Lighting(s.Position3D(), snapshotEnvironment(s.env))
	return state
}

func (s *Satellite) computeHash() {
	s.cacheHash = s.ω + s.ν + s.Ω + s.i + s.e + s.a
}

func (s *Satellite) hashValid() bool {
	return s.cachedR != nil && s.cacheHash == s.ω+s.ν+s.Ω+s.i+s.e+s.a
}
