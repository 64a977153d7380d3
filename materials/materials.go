// Package materials holds well-characterised material properties for tether
// and structural calculations. The built-in entries are immutable constants
// for the lifetime of the process; values come from published datasheets and
// are expressed in SI units.
package materials

import "github.com/signalsfoundry/skyhook/unit"

// Material bundles the properties the tether formulas need.
type Material struct {
	// Name is the human-readable material name.
	Name string
	// TensileStrength is the ultimate tensile strength.
	TensileStrength unit.Pascals
	// Density is the bulk density.
	Density unit.KilogramsPerCubicMeter
	// YoungsModulus is optional; nil when unknown.
	YoungsModulus *unit.Pascals
	// Description carries sourcing notes.
	Description string
}

// SpecificStrength returns the strength-to-weight ratio, tensile strength
// divided by density, in N·m/kg.
func (m Material) SpecificStrength() float64 {
	return m.TensileStrength.Value() / m.Density.Value()
}

func pascals(v float64) *unit.Pascals {
	p := unit.NewPascals(v)
	return &p
}

// High-performance fibers commonly considered for space tethers.
var (
	// PBO (poly-p-phenylene benzobisoxazole), sold as Zylon. One of the
	// strongest synthetic fibers available.
	PBO = Material{
		Name:            "PBO (Zylon)",
		TensileStrength: unit.NewPascals(5.9e9),
		Density:         unit.NewKilogramsPerCubicMeter(1340),
		YoungsModulus:   pascals(270e9),
		Description:     "Ultra-high strength synthetic fiber, excellent for space tethers",
	}

	// CarbonNanotube carries theoretical single-wall nanotube properties.
	CarbonNanotube = Material{
		Name:            "Carbon Nanotube (SWNT)",
		TensileStrength: unit.NewPascals(63e9),
		Density:         unit.NewKilogramsPerCubicMeter(1300),
		YoungsModulus:   pascals(1000e9),
		Description:     "Theoretical single-wall carbon nanotube properties",
	}

	// Kevlar49 is the aramid fiber most widely used in aerospace.
	Kevlar49 = Material{
		Name:            "Kevlar 49",
		TensileStrength: unit.NewPascals(3.6e9),
		Density:         unit.NewKilogramsPerCubicMeter(1440),
		YoungsModulus:   pascals(112e9),
		Description:     "High-strength aramid fiber, commonly used in aerospace",
	}

	// UHMWPE is ultra-high molecular weight polyethylene (Spectra/Dyneema).
	UHMWPE = Material{
		Name:            "UHMWPE (Spectra/Dyneema)",
		TensileStrength: unit.NewPascals(3.5e9),
		Density:         unit.NewKilogramsPerCubicMeter(970),
		YoungsModulus:   pascals(172e9),
		Description:     "Ultra-high molecular weight polyethylene fiber",
	}
)

// Metals for structural and cable applications.
var (
	PianoWire = Material{
		Name:            "Piano Wire Steel",
		TensileStrength: unit.NewPascals(2.2e9),
		Density:         unit.NewKilogramsPerCubicMeter(7850),
		YoungsModulus:   pascals(200e9),
		Description:     "High-carbon steel wire, very high strength",
	}

	Aluminum6061T6 = Material{
		Name:            "Aluminum 6061-T6",
		TensileStrength: unit.NewPascals(310e6),
		Density:         unit.NewKilogramsPerCubicMeter(2700),
		YoungsModulus:   pascals(69e9),
		Description:     "Common aerospace aluminum alloy",
	}

	Titanium6Al4V = Material{
		Name:            "Titanium Ti-6Al-4V",
		TensileStrength: unit.NewPascals(1170e6),
		Density:         unit.NewKilogramsPerCubicMeter(4430),
		YoungsModulus:   pascals(114e9),
		Description:     "Aerospace grade titanium alloy",
	}
)

// Composites.
var (
	CarbonFiberUD = Material{
		Name:            "Carbon Fiber (UD)",
		TensileStrength: unit.NewPascals(3.5e9),
		Density:         unit.NewKilogramsPerCubicMeter(1600),
		YoungsModulus:   pascals(230e9),
		Description:     "Unidirectional carbon fiber reinforced polymer",
	}

	GlassFiber = Material{
		Name:            "Glass Fiber (E-glass)",
		TensileStrength: unit.NewPascals(3.4e9),
		Density:         unit.NewKilogramsPerCubicMeter(2540),
		YoungsModulus:   pascals(72e9),
		Description:     "E-glass fiber reinforced polymer",
	}
)

// All returns every built-in material.
func All() []Material {
	return []Material{
		PBO, CarbonNanotube, Kevlar49, UHMWPE,
		PianoWire, Aluminum6061T6, Titanium6Al4V,
		CarbonFiberUD, GlassFiber,
	}
}
