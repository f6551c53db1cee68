package orbitalsim

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormAndUnit(t *testing.T) {
	v := []float64{3, 4, 0}
	if norm(v) != 5 {
		t.Fatalf("norm wrong: %f", norm(v))
	}
	if !vectorsEqual(unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatalf("unit wrong: %+v", unit(v))
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of the zero vector must stay zero")
	}
}

func TestDotCross(t *testing.T) {
	x := []float64{1, 0, 0}
	y := []float64{0, 1, 0}
	if dot(x, y) != 0 {
		t.Fatal("orthogonal dot must be zero")
	}
	if !vectorsEqual(cross(x, y), []float64{0, 0, 1}) {
		t.Fatalf("x×y should be z: %+v", cross(x, y))
	}
	if !vectorsEqual(cross(y, x), []float64{0, 0, -1}) {
		t.Fatal("cross product must be antisymmetric")
	}
}

func TestSign(t *testing.T) {
	if sign(-3) != -1 || sign(17) != 1 {
		t.Fatal("sign wrong")
	}
	if sign(0) != 1 {
		t.Fatal("sign of zero is positive here")
	}
}

func TestDegRadConversions(t *testing.T) {
	if ok, err := floatEqual(Deg2rad(180), math.Pi); !ok {
		t.Fatalf("Deg2rad wrong: %s", err)
	}
	// Negative inputs wrap to the positive range.
	if ok, err := floatEqual(Deg2rad(-90), 3*math.Pi/2); !ok {
		t.Fatalf("negative Deg2rad wrong: %s", err)
	}
	if ok, err := floatEqual(Rad2deg(-math.Pi/2), 270); !ok {
		t.Fatalf("negative Rad2deg wrong: %s", err)
	}
}

func TestNormTwoPi(t *testing.T) {
	cases := map[float64]float64{
		0:                0,
		2 * math.Pi:      0,
		-0.5:             2*math.Pi - 0.5,
		7 * math.Pi:      math.Pi,
		2*math.Pi + 0.25: 0.25,
	}
	for in, want := range cases {
		if got := normTwoPi(in); !floats.EqualWithinAbs(got, want, 1e-12) {
			t.Fatalf("normTwoPi(%f)=%f, want %f", in, got, want)
		}
	}
}

func TestAngleDelta(t *testing.T) {
	// The signed difference must see across the 0/2π seam.
	if got := angleΔ(0.1, 2*math.Pi-0.1); !floats.EqualWithinAbs(got, 0.2, 1e-12) {
		t.Fatalf("wraparound delta wrong: %f", got)
	}
	if got := angleΔ(2*math.Pi-0.1, 0.1); !floats.EqualWithinAbs(got, -0.2, 1e-12) {
		t.Fatalf("negative wraparound delta wrong: %f", got)
	}
	if got := angleΔ(1.5, 1.0); !floats.EqualWithinAbs(got, 0.5, 1e-12) {
		t.Fatalf("plain delta wrong: %f", got)
	}
	// Exactly opposite angles resolve to +π.
	if got := angleΔ(math.Pi, 0); !floats.EqualWithinAbs(got, math.Pi, 1e-12) {
		t.Fatalf("antipodal delta wrong: %f", got)
	}
}

func TestClampFloat(t *testing.T) {
	if clampFloat(5, 0, 1) != 1 || clampFloat(-5, 0, 1) != 0 || clampFloat(0.5, 0, 1) != 0.5 {
		t.Fatal("clampFloat wrong")
	}
}
