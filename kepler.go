package orbitalsim

import "math"

const (
	// keplerε is the Newton-Raphson convergence tolerance on the eccentric anomaly.
	keplerε = 1e-10
	// maxKeplerIter caps the Newton-Raphson iterations of MeanToEccentric.
	maxKeplerIter = 100
)

// TrueToEccentric converts the true anomaly to the eccentric anomaly.
func TrueToEccentric(ν, e float64) float64 {
	sinν, cosν := math.Sincos(ν)
	denom := 1 + e*cosν
	sinE := math.Sqrt(1-e*e) * sinν / denom
	cosE := (e + cosν) / denom
	return math.Atan2(sinE, cosE)
}

// EccentricToTrue converts the eccentric anomaly to the true anomaly.
func EccentricToTrue(E, e float64) float64 {
	sinE, cosE := math.Sincos(E)
	denom := 1 - e*cosE
	sinν := math.Sqrt(1-e*e) * sinE / denom
	cosν := (cosE - e) / denom
	return math.Atan2(sinν, cosν)
}

// EccentricToMean converts the eccentric anomaly to the mean anomaly via Kepler's equation.
func EccentricToMean(E, e float64) float64 {
	return E - e*math.Sin(E)
}

// MeanToEccentric solves Kepler's equation for E via Newton-Raphson. The seed is M±e
// (Vallado's choice, by the sign of sin M): plain E=M diverges at high eccentricity.
// Iteration stops at |ΔE| < keplerε or after maxKeplerIter rounds, whichever comes
// first, and the last estimate is returned either way. Near-parabolic orbits may
// therefore get a degraded estimate without any signal.
func MeanToEccentric(M, e float64) float64 {
	E := M + e
	if math.Sin(M) < 0 {
		E = M - e
	}
	for iter := 0; iter < maxKeplerIter; iter++ {
		sinE, cosE := math.Sincos(E)
		ΔE := (E - e*sinE - M) / (1 - e*cosE)
		E -= ΔE
		if math.Abs(ΔE) < keplerε {
			break
		}
	}
	return E
}
