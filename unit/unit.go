// Package unit provides typed wrappers for the physical quantities used in
// orbital and tether calculations. Each quantity is a private float64 behind
// a named type, and only the dimensionally valid combinations are exposed as
// methods. Invalid combinations (length + mass, pressure * velocity, ...)
// simply do not exist in the API, so they cannot be expressed.
//
// The algebra performs no plausibility checks of its own: IEEE float
// semantics (NaN, Inf, overflow) propagate through unchanged. Validation
// belongs to the consuming formulas.
package unit

// G is the gravitational constant in m³/(kg·s²).
const G = 6.6742e-11

// metersPerKilometer is the exact conversion factor between the two length
// scales.
const metersPerKilometer = 1000.0

// Meters is a length in metres.
type Meters struct{ v float64 }

// NewMeters wraps a raw metre value.
func NewMeters(v float64) Meters { return Meters{v} }

// Value returns the raw metre value.
func (m Meters) Value() float64 { return m.v }

// Add returns m + o.
func (m Meters) Add(o Meters) Meters { return Meters{m.v + o.v} }

// Sub returns m - o.
func (m Meters) Sub(o Meters) Meters { return Meters{m.v - o.v} }

// Scale returns the length multiplied by a dimensionless factor.
func (m Meters) Scale(k float64) Meters { return Meters{m.v * k} }

// Ratio divides two lengths, yielding a dimensionless ratio.
func (m Meters) Ratio(o Meters) float64 { return m.v / o.v }

// Times multiplies two lengths, yielding an area.
func (m Meters) Times(o Meters) SquareMeters { return SquareMeters{m.v * o.v} }

// TimesArea multiplies a length by an area, yielding a volume. This is the
// only combination that produces a volume.
func (m Meters) TimesArea(a SquareMeters) CubicMeters { return CubicMeters{m.v * a.v} }

// Kilometers converts the length to kilometres.
func (m Meters) Kilometers() Kilometers { return Kilometers{m.v / metersPerKilometer} }

// Kilometers is a length in kilometres, for distances where metre values
// would be unwieldy.
type Kilometers struct{ v float64 }

// NewKilometers wraps a raw kilometre value.
func NewKilometers(v float64) Kilometers { return Kilometers{v} }

// Value returns the raw kilometre value.
func (k Kilometers) Value() float64 { return k.v }

// Add returns k + o.
func (k Kilometers) Add(o Kilometers) Kilometers { return Kilometers{k.v + o.v} }

// Meters converts the length to metres. Converting back with
// Meters.Kilometers reproduces the original value up to floating-point
// precision.
func (k Kilometers) Meters() Meters { return Meters{k.v * metersPerKilometer} }

// SquareMeters is an area in m², produced by multiplying two lengths.
type SquareMeters struct{ v float64 }

// NewSquareMeters wraps a raw m² value.
func NewSquareMeters(v float64) SquareMeters { return SquareMeters{v} }

// Value returns the raw m² value.
func (a SquareMeters) Value() float64 { return a.v }

// Add returns a + o.
func (a SquareMeters) Add(o SquareMeters) SquareMeters { return SquareMeters{a.v + o.v} }

// Sub returns a - o.
func (a SquareMeters) Sub(o SquareMeters) SquareMeters { return SquareMeters{a.v - o.v} }

// Scale returns the area multiplied by a dimensionless factor.
func (a SquareMeters) Scale(k float64) SquareMeters { return SquareMeters{a.v * k} }

// DivLength divides the area by a length, yielding a length.
func (a SquareMeters) DivLength(m Meters) Meters { return Meters{a.v / m.v} }

// CubicMeters is a volume in m³, produced by multiplying a length and an
// area.
type CubicMeters struct{ v float64 }

// NewCubicMeters wraps a raw m³ value.
func NewCubicMeters(v float64) CubicMeters { return CubicMeters{v} }

// Value returns the raw m³ value.
func (c CubicMeters) Value() float64 { return c.v }

// Pascals is a pressure or stress in Pa. Tensile strengths are expressed in
// pascals (1 GPa = 1e9 Pa).
type Pascals struct{ v float64 }

// NewPascals wraps a raw pascal value.
func NewPascals(v float64) Pascals { return Pascals{v} }

// Value returns the raw pascal value.
func (p Pascals) Value() float64 { return p.v }

// Scale returns the pressure multiplied by a dimensionless factor.
func (p Pascals) Scale(k float64) Pascals { return Pascals{p.v * k} }

// DivDensity divides a pressure by a density. Dimensionally the result is
// m²/s², which the consuming formulas take the square root of; the quotient
// is carried as a velocity whose square is the quotient.
func (p Pascals) DivDensity(d KilogramsPerCubicMeter) MetersPerSecond {
	return MetersPerSecond{p.v / d.v}
}

// Kilograms is a mass in kg.
type Kilograms struct{ v float64 }

// NewKilograms wraps a raw kilogram value.
func NewKilograms(v float64) Kilograms { return Kilograms{v} }

// Value returns the raw kilogram value.
func (m Kilograms) Value() float64 { return m.v }

// Ratio divides two masses, yielding a dimensionless ratio.
func (m Kilograms) Ratio(o Kilograms) float64 { return m.v / o.v }

// KilogramsPerCubicMeter is a density in kg/m³.
type KilogramsPerCubicMeter struct{ v float64 }

// NewKilogramsPerCubicMeter wraps a raw kg/m³ value.
func NewKilogramsPerCubicMeter(v float64) KilogramsPerCubicMeter {
	return KilogramsPerCubicMeter{v}
}

// Value returns the raw kg/m³ value.
func (d KilogramsPerCubicMeter) Value() float64 { return d.v }

// MetersPerSecond is a velocity in m/s.
type MetersPerSecond struct{ v float64 }

// NewMetersPerSecond wraps a raw m/s value.
func NewMetersPerSecond(v float64) MetersPerSecond { return MetersPerSecond{v} }

// Value returns the raw m/s value.
func (v MetersPerSecond) Value() float64 { return v.v }

// MetersPerSecondSquared is an acceleration in m/s².
type MetersPerSecondSquared struct{ v float64 }

// NewMetersPerSecondSquared wraps a raw m/s² value.
func NewMetersPerSecondSquared(v float64) MetersPerSecondSquared {
	return MetersPerSecondSquared{v}
}

// Value returns the raw m/s² value.
func (a MetersPerSecondSquared) Value() float64 { return a.v }

// Seconds is a duration in seconds. Orbital periods are carried as Seconds
// rather than time.Duration so that non-finite values survive.
type Seconds struct{ v float64 }

// NewSeconds wraps a raw second value.
func NewSeconds(v float64) Seconds { return Seconds{v} }

// Value returns the raw second value.
func (s Seconds) Value() float64 { return s.v }

// RadiansPerSecond is an angular velocity in rad/s.
type RadiansPerSecond struct{ v float64 }

// NewRadiansPerSecond wraps a raw rad/s value.
func NewRadiansPerSecond(v float64) RadiansPerSecond { return RadiansPerSecond{v} }

// Value returns the raw rad/s value.
func (w RadiansPerSecond) Value() float64 { return w.v }

// GravitationalParameter is a standard gravitational parameter μ = G·M in
// m³/s².
type GravitationalParameter struct{ v float64 }

// NewGravitationalParameter wraps a raw m³/s² value.
func NewGravitationalParameter(v float64) GravitationalParameter {
	return GravitationalParameter{v}
}

// Value returns the raw m³/s² value.
func (mu GravitationalParameter) Value() float64 { return mu.v }
