package orbitalsim

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
)

// EnvironmentProvider supplies the ambient state the perturbation models read.
// Implementations must return stable values for the duration of one Propagate call:
// the snapshot is re-fetched on every perturbation invocation, so a provider drifting
// mid-call makes intra-sub-step results internally inconsistent.
type EnvironmentProvider interface {
	MoonPosition() []float64 // central-body centered inertial, meters
	SunPosition() []float64  // central-body centered inertial, meters
	CurrentSimulationTime() time.Time
	CentralBodyRadius() float64
	CentralBodyMass() float64
	CentralBodyG() float64
	CentralBodyName() string
}

// Environment is a read-only snapshot of an EnvironmentProvider, taken once per
// perturbation invocation.
type Environment struct {
	MoonR         []float64
	SunR          []float64
	SimTime       time.Time
	CentralRadius float64
	CentralMass   float64
	G             float64
	CentralName   string
}

// Mu returns the gravitational parameter of the central body.
func (e Environment) Mu() float64 {
	return e.G * e.CentralMass
}

// snapshotEnvironment fetches a fresh snapshot from the provider.
func snapshotEnvironment(p EnvironmentProvider) Environment {
	return Environment{
		MoonR:         p.MoonPosition(),
		SunR:          p.SunPosition(),
		SimTime:       p.CurrentSimulationTime(),
		CentralRadius: p.CentralBodyRadius(),
		CentralMass:   p.CentralBodyMass(),
		G:             p.CentralBodyG(),
		CentralName:   p.CentralBodyName(),
	}
}

// StaticEnvironment is an EnvironmentProvider with fixed vectors. Use it for tests and
// synthetic hosts which position the moon and sun themselves.
type StaticEnvironment struct {
	Moon    []float64
	Sun     []float64
	SimTime time.Time
	Body    CelestialObject
	GConst  float64
}

// NewStaticEnvironment returns a static provider around the given body with the moon and
// sun placed at their mean distances along +X.
func NewStaticEnvironment(body CelestialObject) *StaticEnvironment {
	return &StaticEnvironment{
		Moon:    []float64{meanMoonDistance, 0, 0},
		Sun:     []float64{AU, 0, 0},
		SimTime: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		Body:    body,
		GConst:  GravitationalConstant,
	}
}

// MoonPosition implements EnvironmentProvider.
func (s *StaticEnvironment) MoonPosition() []float64 { return s.Moon }

// SunPosition implements EnvironmentProvider.
func (s *StaticEnvironment) SunPosition() []float64 { return s.Sun }

// CurrentSimulationTime implements EnvironmentProvider.
func (s *StaticEnvironment) CurrentSimulationTime() time.Time { return s.SimTime }

// CentralBodyRadius implements EnvironmentProvider.
func (s *StaticEnvironment) CentralBodyRadius() float64 { return s.Body.Radius }

// CentralBodyMass implements EnvironmentProvider.
func (s *StaticEnvironment) CentralBodyMass() float64 { return s.Body.Mass }

// CentralBodyG implements EnvironmentProvider.
func (s *StaticEnvironment) CentralBodyG() float64 { return s.GConst }

// CentralBodyName implements EnvironmentProvider.
func (s *StaticEnvironment) CentralBodyName() string { return s.Body.Name }

const meanMoonDistance = 3.844e8 // meters

// MeeusEnvironment is an EnvironmentProvider computing the sun and moon positions from
// the simulation wall clock via the Meeus algorithms. Only meaningful for Earth-centered
// propagation; other central bodies should use a StaticEnvironment or a custom provider.
type MeeusEnvironment struct {
	Body    CelestialObject
	simTime time.Time
}

// NewMeeusEnvironment returns an ephemeris-backed provider starting at epoch.
func NewMeeusEnvironment(epoch time.Time) *MeeusEnvironment {
	return &MeeusEnvironment{Body: Earth, simTime: epoch.UTC()}
}

// Advance moves the simulation clock forward. The host must not call this while a
// Propagate call is in flight.
func (m *MeeusEnvironment) Advance(seconds float64) {
	m.simTime = m.simTime.Add(time.Duration(seconds * float64(time.Second)))
}

// MoonPosition implements EnvironmentProvider via the Meeus lunar theory (ELP 2000-82
// truncation). Ecliptic coordinates are rotated to equatorial by the mean obliquity.
func (m *MeeusEnvironment) MoonPosition() []float64 {
	jde := julian.TimeToJD(m.simTime)
	λ, β, Δ := moonposition.Position(jde) // Δ in km
	return eclipticToInertial(λ.Rad(), β.Rad(), Δ*1e3, jde)
}

// SunPosition implements EnvironmentProvider. The apparent RA/Dec come from Meeus; the
// distance is held at one AU, close enough for the stylized flux and shadow geometry.
func (m *MeeusEnvironment) SunPosition() []float64 {
	jde := julian.TimeToJD(m.simTime)
	ra, dec := solar.ApparentEquatorial(jde)
	sδ, cδ := dec.Sin(), dec.Cos()
	sα, cα := ra.Sin(), ra.Cos()
	return []float64{AU * cδ * cα, AU * cδ * sα, AU * sδ}
}

// CurrentSimulationTime implements EnvironmentProvider.
func (m *MeeusEnvironment) CurrentSimulationTime() time.Time { return m.simTime }

// CentralBodyRadius implements EnvironmentProvider.
func (m *MeeusEnvironment) CentralBodyRadius() float64 { return m.Body.Radius }

// CentralBodyMass implements EnvironmentProvider.
func (m *MeeusEnvironment) CentralBodyMass() float64 { return m.Body.Mass }

// CentralBodyG implements EnvironmentProvider.
func (m *MeeusEnvironment) CentralBodyG() float64 { return GravitationalConstant }

// CentralBodyName implements EnvironmentProvider.
func (m *MeeusEnvironment) CentralBodyName() string { return m.Body.Name }

// eclipticToInertial converts geocentric ecliptic spherical coordinates (radians, meters)
// into the equatorial inertial frame.
func eclipticToInertial(λ, β, r, jde float64) []float64 {
	sβ, cβ := math.Sincos(β)
	sλ, cλ := math.Sincos(λ)
	x := r * cβ * cλ
	y := r * cβ * sλ
	z := r * sβ
	ε := nutation.MeanObliquity(jde)
	sε, cε := ε.Sin(), ε.Cos()
	return []float64{x, y*cε - z*sε, y*sε + z*cε}
}
