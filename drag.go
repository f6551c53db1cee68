package orbitalsim

import (
	"math"
	"time"
)

// DensityModel selects the atmospheric density submodel.
type DensityModel uint8

const (
	// BarometricDensity is the single-exponential barometric profile.
	BarometricDensity DensityModel = iota + 1
	// HarmonicDensity layers diurnal, solar, geographic and seasonal corrections on
	// top of the barometric base.
	HarmonicDensity
)

func (m DensityModel) String() string {
	switch m {
	case BarometricDensity:
		return "barometric"
	case HarmonicDensity:
		return "harmonic"
	}
	panic("cannot stringify unknown density model")
}

const (
	dragCd   = 2.2    // fixed drag coefficient
	dragArea = 10.0   // m², fixed cross section
	dragMass = 1000.0 // kg, fixed satellite mass

	// The drag band: no atmosphere effect below 80 km (the orbit is already gone) or
	// above 1000 km.
	dragMinAltitude = 80e3
	dragMaxAltitude = 1000e3

	seaLevelDensity = 1.225 // kg/m³
	// dragScaleHeight is visually fattened from the physical ~8.5 km so decay shows
	// up at LEO under time compression.
	dragScaleHeight = 42e3

	// Tuned element-delta scales; preserved verbatim, they are fit not derived.
	dragScalee = 1.0e-5
	dragScaleω = 3.0e-7
	dragScalei = 1.0e-7
	dragScaleΩ = 2.0e-7
)

var epochJ2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// siderealAngle returns a crude Greenwich rotation angle for the given simulation time,
// used to correct the sub-satellite longitude for Earth's rotation.
func siderealAngle(t time.Time) float64 {
	return normTwoPi(t.Sub(epochJ2000).Seconds() * EarthRotationRate)
}

// AtmosphericDrag decays the orbit inside the [80 km, 1000 km] altitude band.
// Drag force is ½ρv²·Cd·A with the fixed Cd, A and mass above; the density ρ comes
// from the selected submodel.
type AtmosphericDrag struct {
	Model DensityModel
}

// NewAtmosphericDrag returns the drag model with the given density submodel.
func NewAtmosphericDrag(model DensityModel) *AtmosphericDrag {
	return &AtmosphericDrag{Model: model}
}

// Name implements the ForceModel interface.
func (d *AtmosphericDrag) Name() string {
	return "atmospheric drag"
}

// density evaluates the selected submodel at altitude h (m) over the sub-satellite
// point, at simulation time t.
func (d *AtmosphericDrag) density(h, lat, long float64, t time.Time) float64 {
	base := seaLevelDensity * math.Exp(-h/dragScaleHeight)
	if d.Model != HarmonicDensity {
		return base
	}
	return base * diurnalFactor(long, t) * solarForcingFactor(lat, t) *
		geographicFactor(lat, long) * seasonalFactor(t)
}

// diurnalFactor models the day/night density bulge: the atmosphere peaks around
// 14h local solar time, with a weaker semidiurnal harmonic.
func diurnalFactor(long float64, t time.Time) float64 {
	utc := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	lst := math.Mod(utc+long/deg2rad/15+24, 24)
	phase := (lst - 14) / 24 * 2 * math.Pi
	return 1 + 0.3*math.Cos(phase) + 0.1*math.Cos(2*phase)
}

// solarForcingFactor combines the 11-year activity cycle with a crude solar elevation
// term at the sub-satellite latitude.
func solarForcingFactor(lat float64, t time.Time) float64 {
	day := float64(t.YearDay())
	declination := 23.44 * deg2rad * math.Sin(2*math.Pi*(day-80)/365.25)
	elevation := math.Pi/2 - math.Abs(lat-declination)
	forcing := 1.0
	if sinElev := math.Sin(elevation); sinElev > 0 {
		forcing += 0.2 * sinElev
	}
	return forcing * solarCycleMultiplier(t)
}

// geographicFactor is a small latitude/longitude modulation. The longitude already
// carries the sidereal rotation correction from SubSatellitePoint.
func geographicFactor(lat, long float64) float64 {
	return 1 + 0.05*math.Sin(2*lat)*math.Cos(long)
}

// seasonalFactor carries the annual and semiannual density variation, phased to the
// June solstice (day 172).
func seasonalFactor(t time.Time) float64 {
	day := float64(t.YearDay())
	phase := 2 * math.Pi * (day - 172) / 365.25
	return 1 + 0.1*math.Cos(phase) + 0.05*math.Cos(2*phase)
}

// ApplyPerturbation implements the ForceModel interface. The semi-major axis delta is
// always negative (orbital decay); eccentricity circularizes, scaled by |cos ν|; the
// angular elements pick up small tuned residuals.
func (d *AtmosphericDrag) ApplyPerturbation(s *Satellite, dt float64, env Environment) {
	accel := d.CurrentAcceleration(s, env)
	if accel == 0 {
		return
	}
	v := s.Velocity()
	sinν, cosν := math.Sincos(s.ν)
	s.AdjustSemiMajorAxis(-2 * accel * s.a / v * dt)
	s.AdjustEccentricity(-dragScalee * accel * math.Abs(cosν) * dt)
	s.AdjustArgumentOfPeriapsis(dragScaleω * accel * sinν * dt)
	s.AdjustInclination(-dragScalei * accel * math.Sin(2*s.ν) * dt)
	s.AdjustLongitudeOfAscendingNode(dragScaleΩ * accel * cosν * dt)
}

// CurrentAcceleration implements the ForceModel interface: drag force over mass at the
// current position, zero outside the altitude band.
func (d *AtmosphericDrag) CurrentAcceleration(s *Satellite, env Environment) float64 {
	h := s.RNorm() - env.CentralRadius
	if h < dragMinAltitude || h > dragMaxAltitude {
		return 0
	}
	lat, long := SubSatellitePoint(s.Position3D(), siderealAngle(env.SimTime))
	ρ := d.density(h, lat, long, env.SimTime)
	v := s.Velocity()
	return 0.5 * ρ * v * v * dragCd * dragArea / dragMass
}
