// Package tether implements closed-form performance formulas for space
// tethers and momentum-exchange systems. Every function is a stateless pure
// transform: it validates its own inputs, computes, and returns a quantity
// or an InvalidInputError. Composite functions forward the first failing
// sub-call's error verbatim.
package tether

import (
	"math"

	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/unit"
)

// Plausibility bounds for material inputs. 200 GPa is the theoretical
// carbon-nanotube limit; 50,000 kg/m³ is denser than any stable element.
const (
	maxTensileStrength = 200e9
	maxDensity         = 50_000.0
)

// CharacteristicVelocity returns v = sqrt(2σ/ρ), the theoretical maximum
// deployment speed for a tether made of a material with tensile strength σ
// and density ρ.
func CharacteristicVelocity(
	tensileStrength unit.Pascals,
	density unit.KilogramsPerCubicMeter,
) (unit.MetersPerSecond, error) {
	if tensileStrength.Value() <= 0 {
		return unit.MetersPerSecond{}, unit.InvalidInput("tensile strength must be positive")
	}
	if density.Value() <= 0 {
		return unit.MetersPerSecond{}, unit.InvalidInput("density must be positive")
	}
	if tensileStrength.Value() > maxTensileStrength {
		return unit.MetersPerSecond{}, unit.InvalidInput("tensile strength exceeds known material limits")
	}
	if density.Value() > maxDensity {
		return unit.MetersPerSecond{}, unit.InvalidInput("density exceeds plausible material limits")
	}

	q := tensileStrength.Scale(2).DivDensity(density)
	return unit.NewMetersPerSecond(math.Sqrt(q.Value())), nil
}

// CharacteristicVelocityForMaterial reads the tensile strength and density
// off a catalogued material and calls CharacteristicVelocity.
func CharacteristicVelocityForMaterial(m materials.Material) (unit.MetersPerSecond, error) {
	return CharacteristicVelocity(m.TensileStrength, m.Density)
}

// OrbitalVelocity returns v = sqrt(μ/r) for a circular orbit of radius r
// around a primary with gravitational parameter μ.
func OrbitalVelocity(
	radius unit.Meters,
	mu unit.GravitationalParameter,
) (unit.MetersPerSecond, error) {
	if err := validateOrbit(radius, mu); err != nil {
		return unit.MetersPerSecond{}, err
	}
	return unit.NewMetersPerSecond(math.Sqrt(mu.Value() / radius.Value())), nil
}

// OrbitalPeriod returns T = 2π·sqrt(r³/μ), Kepler's third law for a
// circular orbit.
func OrbitalPeriod(
	radius unit.Meters,
	mu unit.GravitationalParameter,
) (unit.Seconds, error) {
	if err := validateOrbit(radius, mu); err != nil {
		return unit.Seconds{}, err
	}
	r := radius.Value()
	return unit.NewSeconds(2 * math.Pi * math.Sqrt(r*r*r/mu.Value())), nil
}

// AngularVelocity returns ω = sqrt(μ/r³) for a circular orbit.
func AngularVelocity(
	radius unit.Meters,
	mu unit.GravitationalParameter,
) (unit.RadiansPerSecond, error) {
	if err := validateOrbit(radius, mu); err != nil {
		return unit.RadiansPerSecond{}, err
	}
	r := radius.Value()
	return unit.NewRadiansPerSecond(math.Sqrt(mu.Value() / (r * r * r))), nil
}

// Efficiency returns the momentum-exchange efficiency of a tether made of
// the given material on a circular orbit: the ratio of the material's
// characteristic velocity to the orbital velocity, capped at 1.
func Efficiency(
	m materials.Material,
	radius unit.Meters,
	mu unit.GravitationalParameter,
) (float64, error) {
	charVel, err := CharacteristicVelocityForMaterial(m)
	if err != nil {
		return 0, err
	}
	orbVel, err := OrbitalVelocity(radius, mu)
	if err != nil {
		return 0, err
	}
	return math.Min(1, charVel.Value()/orbVel.Value()), nil
}

// SpinRate returns the tether's spin rate as a multiple of the orbital
// angular velocity, following Moravec's 1977 analysis: a tether whose
// diameter is 1/3 of the central body's diameter touches down 6 times per
// orbit, and smaller tethers scale linearly from a 1x floor. The multiplier
// is capped at 10, beyond which the linear model no longer holds.
func SpinRate(tetherLength, centralBodyRadius unit.Meters) (float64, error) {
	if tetherLength.Value() <= 0 {
		return 0, unit.InvalidInput("tether length must be positive")
	}
	if centralBodyRadius.Value() <= 0 {
		return 0, unit.InvalidInput("central body radius must be positive")
	}

	const moravecReferenceRatio = 1.0 / 3.0
	diameterRatio := tetherLength.Scale(2).Ratio(centralBodyRadius.Scale(2))
	multiplier := 1 + (diameterRatio/moravecReferenceRatio)*5
	return math.Min(10, multiplier), nil
}

func validateOrbit(radius unit.Meters, mu unit.GravitationalParameter) error {
	if radius.Value() <= 0 {
		return unit.InvalidInput("orbital radius must be positive")
	}
	if mu.Value() <= 0 {
		return unit.InvalidInput("gravitational parameter must be positive")
	}
	return nil
}
