// Package catalog is an in-memory, thread-safe registry of the reference
// data the physics core consumes: tether materials and celestial bodies.
// The core itself never touches the catalog; the server and CLI use it to
// resolve names to property records.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/materials"
)

// Catalog stores materials and celestial bodies keyed by name.
type Catalog struct {
	mu sync.RWMutex

	materials map[string]materials.Material
	bodies    map[string]celestials.CelestialBody
}

// New constructs an empty catalog.
func New() *Catalog {
	return &Catalog{
		materials: make(map[string]materials.Material),
		bodies:    make(map[string]celestials.CelestialBody),
	}
}

// NewWithDefaults constructs a catalog seeded with the built-in materials
// and celestial bodies.
func NewWithDefaults() *Catalog {
	c := New()
	for _, m := range materials.All() {
		// Built-in entries have unique non-empty names.
		_ = c.AddMaterial(m)
	}
	for _, b := range celestials.All() {
		_ = c.AddBody(b)
	}
	return c
}

// AddMaterial adds a material. It returns an error if the name is empty or
// already present.
func (c *Catalog) AddMaterial(m materials.Material) error {
	if m.Name == "" {
		return fmt.Errorf("material name must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.materials[m.Name]; exists {
		return fmt.Errorf("material %q already exists", m.Name)
	}
	c.materials[m.Name] = m
	return nil
}

// Material returns the material with the given name.
func (c *Catalog) Material(name string) (materials.Material, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.materials[name]
	return m, ok
}

// ListMaterials returns a name-sorted snapshot of all materials.
func (c *Catalog) ListMaterials() []materials.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]materials.Material, 0, len(c.materials))
	for _, m := range c.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddBody adds a celestial body. It returns an error if the name is empty
// or already present.
func (c *Catalog) AddBody(b celestials.CelestialBody) error {
	if b.Name == "" {
		return fmt.Errorf("body name must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.bodies[b.Name]; exists {
		return fmt.Errorf("body %q already exists", b.Name)
	}
	c.bodies[b.Name] = b
	return nil
}

// Body returns the celestial body with the given name.
func (c *Catalog) Body(name string) (celestials.CelestialBody, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.bodies[name]
	return b, ok
}

// ListBodies returns a name-sorted snapshot of all celestial bodies.
func (c *Catalog) ListBodies() []celestials.CelestialBody {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]celestials.CelestialBody, 0, len(c.bodies))
	for _, b := range c.bodies {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Counts returns the number of materials and bodies currently registered.
func (c *Catalog) Counts() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.materials), len(c.bodies)
}
