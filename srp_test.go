package orbitalsim

import (
	"testing"

	"github.com/gonum/floats"
)

func TestLightingSweep(t *testing.T) {
	// Sun on +X at one AU; slide the satellite cross-track 7,000 km behind Earth. The
	// factor must rise monotonically from the umbra core out into direct sunlight, and
	// all three shadow states must appear along the way.
	model := NewRadiationPressure()
	env := snapshotEnvironment(NewStaticEnvironment(Earth))

	seen := make(map[ShadowState]bool)
	prev := -1.0
	for y := 0.0; y <= 7e6; y += 1e4 {
		factor, state := model.Lighting([]float64{-7e6, y, 0}, env)
		if factor < prev {
			t.Fatalf("lighting factor not monotonic at y=%f: %f < %f", y, factor, prev)
		}
		if factor < 0 || factor > 1 {
			t.Fatalf("lighting factor out of [0,1] at y=%f: %f", y, factor)
		}
		switch state {
		case Umbra:
			if factor != 0 {
				t.Fatalf("umbra must be fully dark: %f", factor)
			}
		case DirectSunlight:
			if factor != 1 {
				t.Fatalf("sunlight must be full flux: %f", factor)
			}
		}
		seen[state] = true
		prev = factor
	}
	if !seen[Umbra] || !seen[Penumbra] || !seen[DirectSunlight] {
		t.Fatalf("sweep missed a shadow state: %+v", seen)
	}
}

func TestLightingSunwardSide(t *testing.T) {
	model := NewRadiationPressure()
	env := snapshotEnvironment(NewStaticEnvironment(Earth))
	factor, state := model.Lighting([]float64{7e6, 0, 0}, env)
	if factor != 1 || state != DirectSunlight {
		t.Fatalf("no shadow possible on the sunward side: %f %s", factor, state)
	}
}

func TestSRPZeroInUmbra(t *testing.T) {
	// ν=180° with the sun on +X puts the satellite squarely in Earth's shadow.
	env := NewStaticEnvironment(Earth)
	sat := NewSatellite(7e6, 0, 0, 0, 0, 180, GravitationalConstant, Earth.Mass, Toggles{RadiationPressure: true}, env)
	if sat.ShadowCondition() != Umbra {
		t.Fatalf("expected umbra, got %s", sat.ShadowCondition())
	}
	if sat.RadiationPressureAcceleration() != 0 {
		t.Fatal("no radiation pressure inside the umbra")
	}
}

func TestSRPSunlitAcceleration(t *testing.T) {
	env := NewStaticEnvironment(Earth)
	sat := NewSatellite(7e6, 0, 0, 0, 0, 0, GravitationalConstant, Earth.Mass, Toggles{RadiationPressure: true}, env)
	if sat.ShadowCondition() != DirectSunlight {
		t.Fatalf("expected sunlight, got %s", sat.ShadowCondition())
	}

	dsc := AU - 7e6
	ratio := AU / dsc
	// The static environment sits at the J2000 epoch where the cycle multiplier is 1.
	want := solarFluxAU * ratio * ratio * solarCycleMultiplier(env.SimTime) / speedOfLight * srpCoefficient * srpArea / srpMass
	if ok, err := floatEqual(sat.RadiationPressureAcceleration(), want); !ok {
		t.Fatalf("SRP acceleration wrong: %s", err)
	}
}

func TestSRPElementPush(t *testing.T) {
	// At ν=0 in full sunlight the stylized push excites e, ω and Ω and leaves a and i
	// alone (their shaping terms vanish with sin ν).
	env := NewStaticEnvironment(Earth)
	sat := NewSatellite(7e6, 0.01, 0, 0, 0, 0, GravitationalConstant, Earth.Mass, Toggles{}, env)
	a0, e0, i0, ω0, Ω0, _ := sat.Elements()

	NewRadiationPressure().ApplyPerturbation(sat, 1, snapshotEnvironment(env))

	a1, e1, i1, ω1, Ω1, _ := sat.Elements()
	if a1 != a0 || i1 != i0 {
		t.Fatalf("a and i must be untouched at ν=0: Δa=%e Δi=%e", a1-a0, i1-i0)
	}
	if e1 <= e0 || ω1 <= ω0 || Ω1 <= Ω0 {
		t.Fatalf("sunward push must excite e, ω, Ω: Δe=%e Δω=%e ΔΩ=%e", e1-e0, ω1-ω0, Ω1-Ω0)
	}
}

func TestSolarCycleMultiplierBounds(t *testing.T) {
	if !floats.EqualWithinAbs(solarCycleMultiplier(epochJ2000), 1, 1e-12) {
		t.Fatal("cycle multiplier must be 1 at the epoch")
	}
}

func TestShadowStateString(t *testing.T) {
	if DirectSunlight.String() != "direct sunlight" || Penumbra.String() != "penumbra" || Umbra.String() != "umbra" {
		t.Fatal("shadow state names wrong")
	}
	assertPanic(t, func() { _ = ShadowState(0).String() })
}
