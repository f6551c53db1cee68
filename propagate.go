package orbitalsim

import "math"

/* Adaptive sub-stepping and the stability clamp. */

const (
	// Soft per-sub-step clamp bounds. Excess deltas are clipped to the bound, signed,
	// never rejected outright.
	maxΔaFraction = 0.01          // 1% of the pre-step semi-major axis
	maxΔe         = 0.001
	maxΔi         = 0.1 * deg2rad // 0.1°
	maxΔangle     = 1.0 * deg2rad // 1° on ω and Ω
)

// elementSnapshot freezes the clamped element set at the start of a sub-step.
type elementSnapshot struct {
	a, e, i, ω, Ω float64
}

// maxSubStep returns the sub-step ceiling for a host tick of deltaTime seconds.
// Larger ticks get smaller sub-steps: the models were tuned at a few seconds per step
// and extreme time compression (up to 100,000×) must not be allowed to stretch them.
func maxSubStep(deltaTime float64) float64 {
	switch {
	case deltaTime > 3600:
		return 5
	case deltaTime > 600:
		return 10
	case deltaTime > 60:
		return 15
	default:
		return deltaTime
	}
}

// Propagate advances the satellite by deltaTime seconds. This is the sole time
// advancing entry point: one call per host tick, which may span milliseconds up to
// tens of thousands of seconds. The tick is split into ⌈deltaTime/maxSubStep⌉ equal
// sub-steps; each sub-step advances the mean anomaly, applies every enabled
// perturbation model on a fresh environment snapshot, and runs the stability clamp
// against the pre-step elements. Synchronous and single-writer: readers must only
// touch the satellite between complete Propagate calls.
func (s *Satellite) Propagate(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	sub := maxSubStep(deltaTime)
	numSubSteps := int(math.Ceil(deltaTime / sub))
	if numSubSteps < 1 {
		numSubSteps = 1
	}
	subStep := deltaTime / float64(numSubSteps)
	for k := 0; k < numSubSteps; k++ {
		s.subStep(subStep)
	}
}

func (s *Satellite) subStep(dt float64) {
	before := elementSnapshot{s.a, s.e, s.i, s.ω, s.Ω}

	// Two-body advance in mean anomaly space.
	E := TrueToEccentric(s.ν, s.e)
	M := EccentricToMean(E, s.e)
	M += s.n * dt

	for _, model := range s.enabled {
		model.ApplyPerturbation(s, dt, snapshotEnvironment(s.env))
	}

	// Solve back with the possibly perturbation-altered eccentricity, bounded ahead of
	// the clamp so a misbehaving model cannot push the solve hyperbolic mid-step.
	s.e = clampFloat(s.e, 0, maxEccentricity)
	s.ν = normTwoPi(EccentricToTrue(MeanToEccentric(M, s.e), s.e))

	s.clamp(before)
}

// clamp bounds the element changes of one sub-step against the pre-step snapshot, then
// enforces the hard physical bounds. Order matters: soft clamp, hard bound, angle
// renormalization, then the mean motion recompute, since the next sub-step advances the
// mean anomaly with the recomputed n.
func (s *Satellite) clamp(before elementSnapshot) {
	if Δ := s.a - before.a; math.Abs(Δ) > maxΔaFraction*before.a {
		s.a = before.a + sign(Δ)*maxΔaFraction*before.a
	}
	if Δ := s.e - before.e; math.Abs(Δ) > maxΔe {
		s.e = before.e + sign(Δ)*maxΔe
	}
	if Δ := s.i - before.i; math.Abs(Δ) > maxΔi {
		s.i = before.i + sign(Δ)*maxΔi
	}
	if Δ := angleΔ(s.ω, before.ω); math.Abs(Δ) > maxΔangle {
		s.ω = before.ω + sign(Δ)*maxΔangle
	}
	if Δ := angleΔ(s.Ω, before.Ω); math.Abs(Δ) > maxΔangle {
		s.Ω = before.Ω + sign(Δ)*maxΔangle
	}
	s.hardClamp()
}

// hardClamp enforces the element invariants and recomputes the mean motion. Also used
// at construction so that a satellite never starts outside its own bounds.
func (s *Satellite) hardClamp() {
	s.e = clampFloat(s.e, 0, maxEccentricity)
	s.i = clampFloat(s.i, 0, math.Pi)
	minA := minRadiusFactor * s.env.CentralBodyRadius()
	if s.a < minA {
		s.a = minA
		if !s.decayed {
			s.decayed = true
			s.logger.Log("level", "critical", "status", "decayed", "a", s.a, "orbit", s.String())
		}
	} else if s.decayed && s.a > minA*1.1 {
		// Now further from the 10% dead zone.
		s.decayed = false
		s.logger.Log("level", "critical", "status", "revived", "a", s.a)
	}
	s.ω = normTwoPi(s.ω)
	s.Ω = normTwoPi(s.Ω)
	s.n = math.Sqrt(s.μ / math.Pow(s.a, 3))
}
