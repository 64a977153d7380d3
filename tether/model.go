package tether

import (
	"math"

	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/unit"
)

// Tether is an exploratory model of a rotating momentum-exchange tether on
// a circular orbit. Unlike the formulas in this package's function set, the
// release-impulse estimate below rests on a simplified angular-momentum
// argument without a cited derivation; treat its output as illustrative
// rather than as a validated physical law.
type Tether struct {
	// Altitude of the tether's centre above the primary's surface.
	Altitude unit.Kilometers
	// Length from tip to tip.
	Length unit.Kilometers
	// Mass of the tether itself.
	Mass unit.Kilograms
	// Material the tether is spun from.
	Material materials.Material
	// RotationalVelocity is the tip speed relative to the tether centre.
	RotationalVelocity unit.MetersPerSecond
}

// Payload is the mass caught and released by the tether.
type Payload struct {
	Mass unit.Kilograms
}

// taperRatio is the thickest-to-thinnest cross-section ratio assumed for a
// tapered tether.
const taperRatio = 1.124

// crossSectionalArea returns the (thinnest, thickest) cross-sections of the
// tapered tether, derived from its mass, length, and material density.
func (t Tether) crossSectionalArea() (unit.SquareMeters, unit.SquareMeters) {
	length := t.Length.Meters()
	avg := unit.NewSquareMeters(t.Mass.Value() / (length.Value() * t.Material.Density.Value()))
	thinnest := avg.Scale(0.5)
	thickest := thinnest.Scale(taperRatio)
	return thinnest, thickest
}

// MaxLoad estimates the payload mass the tether can carry under the given
// gravitational acceleration, from the material strength and the thinnest
// cross-section. Rough sizing figure only; it ignores the strain imposed by
// takeoff acceleration.
func (t Tether) MaxLoad(gravity unit.MetersPerSecondSquared) unit.Kilograms {
	thinnest, _ := t.crossSectionalArea()
	return unit.NewKilograms(t.Material.TensileStrength.Value() * thinnest.Value() * gravity.Value())
}

// MassRatio returns the tether's mass divided by its maximum load around
// the given body.
func (t Tether) MassRatio(body celestials.CelestialBody) float64 {
	return t.Mass.Ratio(t.MaxLoad(body.SurfaceGravity()))
}

// CharacteristicLength returns L = σ/(ρ·g), the length of a constant-section
// cable of this material that would break under its own weight in the given
// body's surface gravity.
func (t Tether) CharacteristicLength(body celestials.CelestialBody) unit.Kilometers {
	g := body.SurfaceGravity()
	l := t.Material.TensileStrength.Value() / (t.Material.Density.Value() * g.Value())
	return unit.NewMeters(l).Kilometers()
}

// PayloadImpulse estimates the delta-v imparted to a payload released from
// the tether's upper tip while orbiting the given body.
//
// The estimate combines the orbital velocity difference between the tether
// centre and the tip with the rotational tip speed, scaled by a mass-ratio
// efficiency m/(1+m): a heavy tether transfers nearly its full tip speed, a
// tether no heavier than its payload transfers about half.
func (t Tether) PayloadImpulse(p Payload, body celestials.CelestialBody) unit.MetersPerSecond {
	mu := body.Mu()
	centerRadius := body.Radius.Add(t.Altitude).Meters()
	tipRadius := centerRadius.Add(t.Length.Meters().Scale(0.5))

	centerVelocity := math.Sqrt(mu.Value() / centerRadius.Value())
	tipVelocity := math.Sqrt(mu.Value() / tipRadius.Value())

	massRatio := t.Mass.Ratio(p.Mass)
	efficiency := massRatio / (1 + massRatio)
	boost := t.RotationalVelocity.Value() * efficiency

	return unit.NewMetersPerSecond(tipVelocity + boost - centerVelocity)
}
