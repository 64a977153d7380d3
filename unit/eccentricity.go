package unit

// Eccentricity is the conic-section shape parameter: 0 is a circle,
// values below 1 are ellipses, exactly 1 is a parabola. The raw value is
// private so every Eccentricity in circulation went through validation.
//
// Only the lower bound is enforced. Values of 1 and above are accepted on
// purpose so that parabolic and hyperbolic conics can be described; the
// elliptical formulas then produce infinite or negative derived quantities,
// which callers must check for where boundedness matters.
type Eccentricity struct{ v float64 }

// NewEccentricity validates and wraps an eccentricity value. It fails for
// negative input.
func NewEccentricity(v float64) (Eccentricity, error) {
	if v < 0 {
		return Eccentricity{}, InvalidInput("eccentricity must be non-negative")
	}
	return Eccentricity{v}, nil
}

// Value returns the raw eccentricity value.
func (e Eccentricity) Value() float64 { return e.v }
