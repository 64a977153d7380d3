package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/unit"
)

// catalogFile is the on-disk YAML layout for user-supplied reference data.
type catalogFile struct {
	Materials []materialEntry `yaml:"materials"`
	Bodies    []bodyEntry     `yaml:"bodies"`
}

type materialEntry struct {
	Name            string   `yaml:"name"`
	TensileStrength float64  `yaml:"tensile_strength_pa"`
	Density         float64  `yaml:"density_kg_m3"`
	YoungsModulus   *float64 `yaml:"youngs_modulus_pa"`
	Description     string   `yaml:"description"`
}

type bodyEntry struct {
	Name   string  `yaml:"name"`
	Mass   float64 `yaml:"mass_kg"`
	Radius float64 `yaml:"radius_km"`
}

// LoadYAML reads a catalog file and registers its entries. It stops at the
// first invalid or duplicate entry and reports how many were added.
func (c *Catalog) LoadYAML(r io.Reader) (added int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse catalog: %w", err)
	}

	for _, entry := range file.Materials {
		if entry.TensileStrength <= 0 {
			return added, fmt.Errorf("material %q: tensile_strength_pa must be positive", entry.Name)
		}
		if entry.Density <= 0 {
			return added, fmt.Errorf("material %q: density_kg_m3 must be positive", entry.Name)
		}

		m := materials.Material{
			Name:            entry.Name,
			TensileStrength: unit.NewPascals(entry.TensileStrength),
			Density:         unit.NewKilogramsPerCubicMeter(entry.Density),
			Description:     entry.Description,
		}
		if entry.YoungsModulus != nil {
			ym := unit.NewPascals(*entry.YoungsModulus)
			m.YoungsModulus = &ym
		}
		if err := c.AddMaterial(m); err != nil {
			return added, err
		}
		added++
	}

	for _, entry := range file.Bodies {
		if entry.Mass <= 0 {
			return added, fmt.Errorf("body %q: mass_kg must be positive", entry.Name)
		}
		if entry.Radius <= 0 {
			return added, fmt.Errorf("body %q: radius_km must be positive", entry.Name)
		}

		if err := c.AddBody(celestials.CelestialBody{
			Name:   entry.Name,
			Mass:   unit.NewKilograms(entry.Mass),
			Radius: unit.NewKilometers(entry.Radius),
		}); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}
