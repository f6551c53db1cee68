package orbitalsim

import (
	"fmt"
	"math"
)

const (
	// j2MaxStep is the model-local cap on |Δω| and |ΔΩ| per sub-step, applied before
	// the generic stability clamp ever sees the elements.
	j2MaxStep = 0.01 * deg2rad
	// j2SignificanceRate separates orbits with visually relevant precession (LEO)
	// from those without (GEO and beyond), in rad/s.
	j2SignificanceRate = 1e-8
)

// J2Oblateness applies the secular nodal and apsidal precession caused by the central
// body's equatorial bulge. Secular J2 theory predicts no change to a, e or i, and the
// model makes none. The J2 coefficient is looked up by central-body name; unknown
// bodies fall back to Earth's coefficient.
type J2Oblateness struct{}

// NewJ2Oblateness returns the oblateness model.
func NewJ2Oblateness() *J2Oblateness {
	return &J2Oblateness{}
}

// Name implements the ForceModel interface.
func (j *J2Oblateness) Name() string {
	return "J2 oblateness"
}

// PrecessionRates returns the closed-form secular rates (rad/s):
// Ω̇ = -1.5·J2·(Re/p)²·n·cos(i) and ω̇ from the same factor with the 2.5sin²i-2 shaping.
func (j *J2Oblateness) PrecessionRates(s *Satellite, env Environment) (nodal, apsidal float64) {
	p := s.SemiParameter()
	if p <= 0 {
		return 0, 0
	}
	ratio := env.CentralRadius / p
	factor := 1.5 * J2ForBody(env.CentralName) * ratio * ratio * s.MeanMotion()
	sini := math.Sin(s.i)
	nodal = -factor * math.Cos(s.i)
	apsidal = -factor * (2.5*sini*sini - 2)
	return
}

// ApplyPerturbation implements the ForceModel interface.
func (j *J2Oblateness) ApplyPerturbation(s *Satellite, dt float64, env Environment) {
	nodal, apsidal := j.PrecessionRates(s, env)
	ΔΩ := nodal * dt
	Δω := apsidal * dt
	if math.Abs(ΔΩ) > j2MaxStep {
		ΔΩ = sign(ΔΩ) * j2MaxStep
	}
	if math.Abs(Δω) > j2MaxStep {
		Δω = sign(Δω) * j2MaxStep
	}
	s.AdjustLongitudeOfAscendingNode(ΔΩ)
	s.AdjustArgumentOfPeriapsis(Δω)
}

// CurrentAcceleration implements the ForceModel interface: the J2 acceleration
// magnitude at the current orbit radius.
func (j *J2Oblateness) CurrentAcceleration(s *Satellite, env Environment) float64 {
	r := s.RNorm()
	if r == 0 {
		return 0
	}
	re := env.CentralRadius
	return 1.5 * J2ForBody(env.CentralName) * env.Mu() * re * re / math.Pow(r, 4)
}

// Significant reports whether the nodal precession is fast enough to be visible.
func (j *J2Oblateness) Significant(s *Satellite, env Environment) bool {
	nodal, _ := j.PrecessionRates(s, env)
	return math.Abs(nodal) > j2SignificanceRate
}

// Summary returns a textual description of the oblateness effect on this orbit.
func (j *J2Oblateness) Summary(s *Satellite, env Environment) string {
	nodal, apsidal := j.PrecessionRates(s, env)
	flag := "negligible"
	if j.Significant(s, env) {
		flag = "significant"
	}
	secPerDay := 86400.0
	return fmt.Sprintf("J2 (%s): nodal %.4f°/day, apsidal %.4f°/day (%s)",
		env.CentralName, nodal/deg2rad*secPerDay, apsidal/deg2rad*secPerDay, flag)
}
