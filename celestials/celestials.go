// Package celestials holds physical properties of the celestial bodies used
// as orbit primaries. Values are sourced from the NASA/JPL planetary fact
// sheets and the IAU 2015 nominal values, and never change at runtime.
package celestials

import "github.com/signalsfoundry/skyhook/unit"

// CelestialBody is an orbit primary described by the two properties the
// orbital formulas need: total mass and mean radius.
type CelestialBody struct {
	Name   string
	Mass   unit.Kilograms
	Radius unit.Kilometers
}

// Mu returns the body's standard gravitational parameter μ = G·M in m³/s².
func (b CelestialBody) Mu() unit.GravitationalParameter {
	return unit.NewGravitationalParameter(unit.G * b.Mass.Value())
}

// SurfaceGravity returns the gravitational acceleration at the body's mean
// radius, g = μ/r².
func (b CelestialBody) SurfaceGravity() unit.MetersPerSecondSquared {
	r := b.Radius.Meters().Value()
	return unit.NewMetersPerSecondSquared(b.Mu().Value() / (r * r))
}

var (
	// Earth. μ ≈ 398,600 km³/s².
	Earth = CelestialBody{
		Name:   "Earth",
		Mass:   unit.NewKilograms(5.972e24),
		Radius: unit.NewKilometers(6371),
	}

	// Mars. μ ≈ 42,828 km³/s².
	Mars = CelestialBody{
		Name:   "Mars",
		Mass:   unit.NewKilograms(6.417e23),
		Radius: unit.NewKilometers(3390),
	}

	// Moon. μ ≈ 4,903 km³/s².
	Moon = CelestialBody{
		Name:   "Moon",
		Mass:   unit.NewKilograms(7.35e22),
		Radius: unit.NewKilometers(1737.48),
	}
)

// All returns every built-in body.
func All() []CelestialBody {
	return []CelestialBody{Earth, Mars, Moon}
}
