package orbitalsim

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestDragDecaysOrbit(t *testing.T) {
	sat, _ := leoSatellite(6.871e6, 0.01, Toggles{AtmosphericDrag: true})
	a0, e0, _, _, _, _ := sat.Elements()
	prev := a0
	for k := 0; k < 1000; k++ {
		sat.Propagate(1)
		a, _, _, _, _, _ := sat.Elements()
		if a > prev {
			t.Fatalf("drag raised the orbit at step %d: %f -> %f", k, prev, a)
		}
		prev = a
	}
	a1, e1, _, _, _, _ := sat.Elements()
	if a1 >= a0 {
		t.Fatalf("no decay after 1000 ticks: %f", a1)
	}
	if e1 > e0 {
		t.Fatalf("drag must circularize, not excite: e %f -> %f", e0, e1)
	}
	if sat.Drift() == (Drift{}) {
		t.Fatal("drag residuals should feed the drift history")
	}
}

func TestDragInactiveAboveBand(t *testing.T) {
	sat, _ := leoSatellite(8e6, 0, Toggles{AtmosphericDrag: true})
	if sat.DragAcceleration() != 0 {
		t.Fatalf("no atmosphere at %f km", (sat.RNorm()-Earth.Radius)/1e3)
	}
	a0 := sat.a
	sat.Propagate(1000)
	if sat.a != a0 {
		t.Fatalf("semi-major axis changed above the drag band: %f", sat.a)
	}
}

func TestDragInactiveBelowBand(t *testing.T) {
	// The construction floor sits below 80 km altitude, so a floored orbit feels nothing.
	sat, _ := leoSatellite(1e3, 0, Toggles{AtmosphericDrag: true})
	if h := sat.RNorm() - Earth.Radius; h >= dragMinAltitude {
		t.Fatalf("floored orbit unexpectedly inside the band: %f", h)
	}
	if sat.DragAcceleration() != 0 {
		t.Fatal("drag must cut off below the band")
	}
}

func TestDragBarometricAcceleration(t *testing.T) {
	d := NewAtmosphericDrag(BarometricDensity)
	sat, env := leoSatellite(6.871e6, 0.01, Toggles{})
	snap := snapshotEnvironment(env)

	h := sat.RNorm() - Earth.Radius
	ρ := seaLevelDensity * math.Exp(-h/dragScaleHeight)
	v := sat.Velocity()
	want := 0.5 * ρ * v * v * dragCd * dragArea / dragMass
	if ok, err := floatEqual(d.CurrentAcceleration(sat, snap), want); !ok {
		t.Fatalf("barometric acceleration wrong: %s", err)
	}
}

func TestHarmonicDensityFactors(t *testing.T) {
	cases := []time.Time{
		epochJ2000,
		time.Date(2003, 6, 21, 14, 0, 0, 0, time.UTC),
		time.Date(2010, 12, 25, 3, 30, 0, 0, time.UTC),
	}
	for _, when := range cases {
		if f := diurnalFactor(0.7, when); f < 0.6 || f > 1.4 {
			t.Fatalf("diurnal factor out of range at %s: %f", when, f)
		}
		// The factor peaks at exactly 1.15 on the solstice, so leave roundoff headroom.
		if f := seasonalFactor(when); f < 0.84 || f > 1.16 {
			t.Fatalf("seasonal factor out of range at %s: %f", when, f)
		}
		if f := solarCycleMultiplier(when); f < 0.85 || f > 1.15 {
			t.Fatalf("solar cycle multiplier out of range at %s: %f", when, f)
		}
		if f := geographicFactor(0.9, -2.1); f < 0.95 || f > 1.05 {
			t.Fatalf("geographic factor out of range: %f", f)
		}
		if f := solarForcingFactor(0.9, when); f <= 0 || f > 2 {
			t.Fatalf("solar forcing factor out of range at %s: %f", when, f)
		}
	}
}

func TestHarmonicDensityDiffersFromBarometric(t *testing.T) {
	h := 400e3
	when := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	baro := NewAtmosphericDrag(BarometricDensity).density(h, 0, 0, when)
	harm := NewAtmosphericDrag(HarmonicDensity).density(h, 0, 0, when)
	if harm <= 0 {
		t.Fatalf("harmonic density must stay positive: %e", harm)
	}
	if floats.EqualWithinRel(baro, harm, 1e-6) {
		t.Fatal("harmonic corrections had no effect")
	}
}

func TestSiderealAngle(t *testing.T) {
	if siderealAngle(epochJ2000) != 0 {
		t.Fatal("rotation angle must be zero at the epoch")
	}
	// One sidereal day later the angle wraps back to nearly zero.
	later := epochJ2000.Add(86164 * time.Second)
	if d := math.Abs(angleΔ(siderealAngle(later), 0)); d > 1e-4 {
		t.Fatalf("sidereal day did not wrap: off by %e rad", d)
	}
}

func TestDensityModelString(t *testing.T) {
	if BarometricDensity.String() != "barometric" || HarmonicDensity.String() != "harmonic" {
		t.Fatal("density model names wrong")
	}
	assertPanic(t, func() { _ = DensityModel(0).String() })
}
