// Package kepler models the geometry of Keplerian conic sections. An orbit
// is described by its eccentricity, the location of the primary focus (the
// central gravitating body), and the periapsis distance; every other
// geometric parameter is derived from those three on demand.
package kepler

import (
	"math"

	"github.com/signalsfoundry/skyhook/unit"
)

// Point is a position in the orbital plane.
type Point struct {
	X unit.Meters
	Y unit.Meters
}

// Ellipse is an immutable Keplerian conic section. For 0 <= e < 1 the
// derived quantities satisfy the usual ellipse relationships, in particular
// c² + b² = a². For e == 1 the semi-major axis and apoapsis evaluate to
// +Inf; that is a valid description of a parabolic trajectory, not an error,
// and callers needing a bound orbit must check finiteness themselves.
type Ellipse struct {
	e     unit.Eccentricity
	focus Point
	rp    unit.Meters
}

// NewEllipse constructs an ellipse from an already-validated eccentricity,
// the primary focus, and the periapsis distance.
func NewEllipse(e unit.Eccentricity, focus Point, periapsis unit.Meters) Ellipse {
	return Ellipse{e: e, focus: focus, rp: periapsis}
}

// FromPeriapsisApoapsis constructs an ellipse from the periapsis and
// apoapsis distances, deriving e = (ra - rp) / (ra + rp). The derived value
// goes through eccentricity validation, so a periapsis larger than the
// apoapsis is rejected.
func FromPeriapsisApoapsis(rp, ra unit.Meters, focus Point) (Ellipse, error) {
	e, err := unit.NewEccentricity(ra.Sub(rp).Ratio(ra.Add(rp)))
	if err != nil {
		return Ellipse{}, err
	}
	return Ellipse{e: e, focus: focus, rp: rp}, nil
}

// Eccentricity returns the conic shape parameter.
func (el Ellipse) Eccentricity() unit.Eccentricity { return el.e }

// PrimaryFocus returns the location of the central gravitating body.
func (el Ellipse) PrimaryFocus() Point { return el.focus }

// Periapsis returns the distance from the primary focus to the nearest edge
// of the ellipse along the major axis.
func (el Ellipse) Periapsis() unit.Meters { return el.rp }

// SemiMajorAxis returns a = rp / (1 - e), half the long axis.
func (el Ellipse) SemiMajorAxis() unit.Meters {
	return el.rp.Scale(1 / (1 - el.e.Value()))
}

// SemiMinorAxis returns b = a·sqrt(1 - e²), half the short axis.
func (el Ellipse) SemiMinorAxis() unit.Meters {
	e := el.e.Value()
	return el.SemiMajorAxis().Scale(math.Sqrt(1 - e*e))
}

// Apoapsis returns ra = a·(1 + e), the distance from the primary focus to
// the far edge of the ellipse along the major axis.
func (el Ellipse) Apoapsis() unit.Meters {
	return el.SemiMajorAxis().Scale(1 + el.e.Value())
}

// FocalDistance returns c = a·e, the distance from the centre to either
// focus.
func (el Ellipse) FocalDistance() unit.Meters {
	return el.SemiMajorAxis().Scale(el.e.Value())
}

// Flattening returns (a - b) / a, an alternative shape descriptor to the
// eccentricity.
func (el Ellipse) Flattening() float64 {
	a := el.SemiMajorAxis()
	return a.Sub(el.SemiMinorAxis()).Ratio(a)
}

// MajorAxisLength returns 2a given the distances from both foci to a single
// point on the orbit: their sum is constant over the whole orbit.
func MajorAxisLength(rf, rfPrime unit.Meters) unit.Meters {
	return rf.Add(rfPrime)
}

// FociSeparation returns 2c given the distances from both foci to a single
// point on the orbit.
func FociSeparation(rf, rfPrime unit.Meters) unit.Meters {
	if rf.Value() > rfPrime.Value() {
		return rf.Sub(rfPrime)
	}
	return rfPrime.Sub(rf)
}

// EccentricityFromFocalRadii reconstructs the orbit's eccentricity e = c/a
// from two focal-radius measurements to a single orbit point.
func EccentricityFromFocalRadii(rf, rfPrime unit.Meters) (unit.Eccentricity, error) {
	a := MajorAxisLength(rf, rfPrime).Scale(0.5)
	c := FociSeparation(rf, rfPrime).Scale(0.5)
	return unit.NewEccentricity(c.Ratio(a))
}
