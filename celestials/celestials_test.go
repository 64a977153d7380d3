package celestials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEarthMu(t *testing.T) {
	// μ = G·M ≈ 3.986e14 m³/s². The built-in G carries fewer digits than
	// the modern CODATA value, so allow a 0.1% band.
	assert.InEpsilon(t, 3.986004418e14, Earth.Mu().Value(), 1e-3)
}

func TestSurfaceGravity(t *testing.T) {
	assert.InDelta(t, 9.81, Earth.SurfaceGravity().Value(), 0.05)
	assert.InDelta(t, 1.62, Moon.SurfaceGravity().Value(), 0.01)
	assert.InDelta(t, 3.71, Mars.SurfaceGravity().Value(), 0.03)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)
	for _, b := range all {
		assert.NotEmpty(t, b.Name)
		assert.Greater(t, b.Mass.Value(), 0.0)
		assert.Greater(t, b.Radius.Value(), 0.0)
	}
}
