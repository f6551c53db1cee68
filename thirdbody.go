package orbitalsim

import "math"

type thirdBodySource uint8

const (
	lunarSource thirdBodySource = iota + 1
	solarSource
)

func (src thirdBodySource) String() string {
	switch src {
	case lunarSource:
		return "lunar gravity"
	case solarSource:
		return "solar gravity"
	}
	panic("cannot stringify unknown third-body source")
}

const (
	// Strength bounds of the stylized third-body heuristic.
	minStrength = 0.1
	maxStrength = 10
)

// ThirdBodyGravity applies the stylized point-mass pull of a third body (moon or sun)
// toward its environment-supplied position. The per-element scale constants were fit
// for visible drift under time compression, not derived; change them and the visual
// behavior changes with them.
type ThirdBodyGravity struct {
	source        thirdBodySource
	body          CelestialObject // mass source
	meanDistance  float64         // nominal central-body distance, for the distance ratio
	proximityGain float64         // tuned so that a nominal LEO lands near strength 1

	scaleΩ, scaleω, scalei, scalea, scalee float64
}

// NewLunarGravity returns the lunar third-body model.
func NewLunarGravity() *ThirdBodyGravity {
	return &ThirdBodyGravity{
		source:        lunarSource,
		body:          Moon,
		meanDistance:  meanMoonDistance,
		proximityGain: 4.5e3,
		scaleΩ:        2.0e-8,
		scaleω:        1.5e-8,
		scalei:        8.0e-9,
		scalea:        5.0e-2,
		scalee:        1.0e-9,
	}
}

// NewSolarGravity returns the solar third-body model. Structurally identical to the
// lunar one, against the sun position and mass, with its own tuned constants.
func NewSolarGravity() *ThirdBodyGravity {
	return &ThirdBodyGravity{
		source:        solarSource,
		body:          Sun,
		meanDistance:  AU,
		proximityGain: 6.4e-2,
		scaleΩ:        9.0e-9,
		scaleω:        7.0e-9,
		scalei:        3.5e-9,
		scalea:        2.0e-2,
		scalee:        5.0e-10,
	}
}

// Name implements the ForceModel interface.
func (g *ThirdBodyGravity) Name() string {
	return g.source.String()
}

func (g *ThirdBodyGravity) bodyPosition(env Environment) []float64 {
	switch g.source {
	case lunarSource:
		return env.MoonR
	default:
		return env.SunR
	}
}

// strength is the hand-tuned perturbation heuristic: mass ratio times distance ratio
// times proximity factor, clamped into [0.1, 10].
func (g *ThirdBodyGravity) strength(s *Satellite, env Environment) float64 {
	d := norm(g.bodyPosition(env))
	if d < minBodyDistance || env.CentralMass == 0 {
		return 0
	}
	massRatio := g.body.Mass / env.CentralMass
	distanceRatio := g.meanDistance / d
	proximity := g.proximityGain * s.RNorm() / d
	return clampFloat(massRatio*distanceRatio*proximity, minStrength, maxStrength)
}

// ApplyPerturbation implements the ForceModel interface. Each element delta carries its
// own trigonometric shaping and an independently tuned scale constant.
func (g *ThirdBodyGravity) ApplyPerturbation(s *Satellite, dt float64, env Environment) {
	strength := g.strength(s, env)
	if strength == 0 {
		return // Coincident bodies; skip this sub-step's contribution.
	}
	sinν, cosν := math.Sincos(s.ν)
	s.AdjustLongitudeOfAscendingNode(g.scaleΩ * strength * math.Cos(s.i) * dt)
	s.AdjustArgumentOfPeriapsis(g.scaleω * strength * (1 - s.e*s.e) * dt)
	s.AdjustInclination(g.scalei * strength * math.Sin(2*s.ν) * dt)
	s.AdjustSemiMajorAxis(g.scalea * strength * sinν * dt)
	s.AdjustEccentricity(g.scalee * strength * cosν * dt)
}

// CurrentAcceleration implements the ForceModel interface: the point-mass gravity of
// the third body at the satellite, in m/s².
func (g *ThirdBodyGravity) CurrentAcceleration(s *Satellite, env Environment) float64 {
	bodyR := g.bodyPosition(env)
	satR := s.Position3D()
	rel := []float64{bodyR[0] - satR[0], bodyR[1] - satR[1], bodyR[2] - satR[2]}
	d := norm(rel)
	if d < minBodyDistance {
		return 0
	}
	return env.G * g.body.Mass / (d * d)
}
