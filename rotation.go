package orbitalsim

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

const (
	// EarthRotationRate is the average Earth rotation rate in radians per second.
	EarthRotationRate = 7.2921158553e-5
)

// OrbitalRadius returns the orbit radius at the given true anomaly.
func OrbitalRadius(a, e, ν float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(ν))
}

// PolarToOrbitalCartesian converts the in-plane polar position to orbital plane Cartesian.
func PolarToOrbitalCartesian(r, ν float64) (x, y float64) {
	sinν, cosν := math.Sincos(ν)
	return r * cosν, r * sinν
}

// PQW2ECI converts a given vector from the orbital (PQW) frame to the inertial frame.
// The rotation order is ω in plane, then the i tilt about the rotated x axis, then Ω
// about the original z axis. The eclipse geometry and the perturbation signs rely on
// this exact order and sign convention.
func PQW2ECI(i, ω, Ω float64, vI []float64) []float64 {
	var m mat64.Dense
	m.Mul(R3(-Ω), R1(-i))
	m.Mul(&m, R3(-ω))
	return MxV33(&m, vI)
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// ECI2ECEF converts the provided inertial vector to body fixed for the θgst given in radians.
func ECI2ECEF(R []float64, θgst float64) []float64 {
	return MxV33(R3(θgst), R)
}

// ECEF2ECI converts the provided body fixed vector to inertial for the θgst given in radians.
func ECEF2ECI(R []float64, θgst float64) []float64 {
	return ECI2ECEF(R, -θgst)
}

// SubSatellitePoint returns the geocentric latitude and longitude (radians) of the
// ground point below the provided inertial position. The rotation angle θgst carries
// the sidereal correction; a crude θgst of EarthRotationRate times elapsed seconds is
// good enough for the density and eclipse bookkeeping here.
func SubSatellitePoint(R []float64, θgst float64) (lat, long float64) {
	r := norm(R)
	if r == 0 {
		return 0, 0
	}
	fixed := ECI2ECEF(R, θgst)
	lat = math.Asin(fixed[2] / r)
	long = math.Atan2(fixed[1], fixed[0])
	return
}
