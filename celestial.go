package orbitalsim

import (
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
	// GravitationalConstant is G in m³/(kg·s²).
	GravitationalConstant = 6.674e-11
)

// CelestialObject defines a celestial object. All values are SI (meters, kilograms).
type CelestialObject struct {
	Name   string
	Radius float64
	Mass   float64
	μ      float64
	J2     float64
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.Mass == b.Mass && c.J2 == b.J2
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
	}
}

// J2ForBody returns the J2 oblateness coefficient for the named central body.
// Unknown bodies fall back to Earth's coefficient.
func J2ForBody(name string) float64 {
	if body, err := CelestialObjectFromString(name); err == nil {
		return body.J2
	}
	return Earth.J2
}

/* Definitions */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 6.957e8, 1.989e30, GravitationalConstant * 1.989e30, 2.2e-7}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6.0518e6, 4.8675e24, GravitationalConstant * 4.8675e24, 4.458e-6}

// Earth is home.
var Earth = CelestialObject{"Earth", 6.371e6, 5.972e24, GravitationalConstant * 5.972e24, 1.08263e-3}

// Moon is Earth's companion and the default third-body perturber.
var Moon = CelestialObject{"Moon", 1.7374e6, 7.342e22, GravitationalConstant * 7.342e22, 2.0323e-4}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3.3895e6, 6.4171e23, GravitationalConstant * 6.4171e23, 1.9555e-3}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 6.9911e7, 1.8982e27, GravitationalConstant * 1.8982e27, 1.4736e-2}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 5.8232e7, 5.6834e26, GravitationalConstant * 5.6834e26, 1.6298e-2}
