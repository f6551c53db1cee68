package orbitalsim

import (
	"fmt"
	"math"
	"testing"

	"github.com/gonum/floats"
)

const eps = 1e-3

func floatEqual(a, b float64) (bool, error) {
	if !floats.EqualWithinRel(a, b, eps) {
		return false, fmt.Errorf("difference of %3.10f", math.Abs(a-b))
	}
	return true, nil
}

func vectorsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !floats.EqualWithinAbs(a[i], b[i], eps) && !floats.EqualWithinRel(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// anglesEqual returns whether two angles in Radians are equal.
func anglesEqual(a, b float64) (bool, error) {
	diff := math.Abs(a - b)
	if diff < eps || math.Abs(diff-2*math.Pi) < eps {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10fπ", diff/math.Pi)
}

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// leoSatellite returns a fresh LEO test satellite around Earth with the given toggles.
func leoSatellite(a, e float64, toggles Toggles) (*Satellite, *StaticEnvironment) {
	env := NewStaticEnvironment(Earth)
	sat := NewSatellite(a, e, 0, 0, 0, 0, GravitationalConstant, Earth.Mass, toggles, env)
	return sat, env
}
