package catalog

import (
	"strings"
	"testing"

	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/unit"
)

func TestAddAndGetMaterial(t *testing.T) {
	c := New()
	if err := c.AddMaterial(materials.PBO); err != nil {
		t.Fatalf("AddMaterial error: %v", err)
	}

	got, ok := c.Material("PBO (Zylon)")
	if !ok || got.TensileStrength.Value() != 5.9e9 {
		t.Fatalf("Material returned %#v, want PBO", got)
	}
}

func TestAddMaterialDuplicate(t *testing.T) {
	c := New()
	if err := c.AddMaterial(materials.PBO); err != nil {
		t.Fatalf("first AddMaterial error: %v", err)
	}
	if err := c.AddMaterial(materials.PBO); err == nil {
		t.Fatalf("expected duplicate AddMaterial to fail")
	}
}

func TestAddMaterialEmptyName(t *testing.T) {
	c := New()
	if err := c.AddMaterial(materials.Material{}); err == nil {
		t.Fatalf("expected empty name to be rejected")
	}
}

func TestNewWithDefaults(t *testing.T) {
	c := NewWithDefaults()

	nMats, nBodies := c.Counts()
	if nMats != len(materials.All()) {
		t.Fatalf("got %d materials, want %d", nMats, len(materials.All()))
	}
	if nBodies != len(celestials.All()) {
		t.Fatalf("got %d bodies, want %d", nBodies, len(celestials.All()))
	}

	if _, ok := c.Body("Earth"); !ok {
		t.Fatalf("default catalog should contain Earth")
	}
}

func TestListMaterialsSorted(t *testing.T) {
	c := NewWithDefaults()
	list := c.ListMaterials()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("ListMaterials not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}

func TestLoadYAML(t *testing.T) {
	src := `
materials:
  - name: Test Fiber
    tensile_strength_pa: 4.0e9
    density_kg_m3: 1200
    youngs_modulus_pa: 100.0e9
    description: test entry
bodies:
  - name: Ceres
    mass_kg: 9.1e20
    radius_km: 473
`
	c := New()
	added, err := c.LoadYAML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadYAML error: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}

	m, ok := c.Material("Test Fiber")
	if !ok {
		t.Fatalf("loaded material missing")
	}
	if m.TensileStrength.Value() != 4.0e9 || m.Density.Value() != 1200 {
		t.Fatalf("material loaded with wrong values: %#v", m)
	}
	if m.YoungsModulus == nil || m.YoungsModulus.Value() != 100e9 {
		t.Fatalf("youngs modulus not loaded: %#v", m.YoungsModulus)
	}

	b, ok := c.Body("Ceres")
	if !ok {
		t.Fatalf("loaded body missing")
	}
	if b.Mass != unit.NewKilograms(9.1e20) {
		t.Fatalf("body loaded with wrong mass: %#v", b)
	}
}

func TestLoadYAMLRejectsNonPositiveValues(t *testing.T) {
	cases := []string{
		"materials:\n  - name: Bad\n    tensile_strength_pa: 0\n    density_kg_m3: 1000\n",
		"materials:\n  - name: Bad\n    tensile_strength_pa: 1.0e9\n    density_kg_m3: -5\n",
		"bodies:\n  - name: Bad\n    mass_kg: -1\n    radius_km: 100\n",
		"bodies:\n  - name: Bad\n    mass_kg: 1.0e20\n    radius_km: 0\n",
	}
	for _, src := range cases {
		c := New()
		if _, err := c.LoadYAML(strings.NewReader(src)); err == nil {
			t.Fatalf("expected error for catalog:\n%s", src)
		}
	}
}

func TestLoadYAMLRejectsMalformed(t *testing.T) {
	c := New()
	if _, err := c.LoadYAML(strings.NewReader("materials: {not a list}")); err == nil {
		t.Fatalf("expected parse error")
	}
}
