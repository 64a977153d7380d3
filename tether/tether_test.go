package tether

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/unit"
)

var (
	earthMu     = unit.NewGravitationalParameter(3.986004418e14)
	earthRadius = unit.NewMeters(6.371e6)
	leoRadius   = unit.NewMeters(6.371e6 + 400e3)
	geoRadius   = unit.NewMeters(6.371e6 + 35.786e6)
)

func TestCharacteristicVelocityPBO(t *testing.T) {
	v, err := CharacteristicVelocity(
		unit.NewPascals(5.9e9),
		unit.NewKilogramsPerCubicMeter(1340),
	)
	require.NoError(t, err)
	assert.InDelta(t, 2967.49, v.Value(), 0.01)
}

func TestCharacteristicVelocityMatchesFormula(t *testing.T) {
	cases := []struct {
		sigma, rho float64
	}{
		{5.9e9, 1340},
		{3.6e9, 1440},
		{310e6, 2700},
		{63e9, 1300},
		{1, 1},
	}
	for _, tc := range cases {
		v, err := CharacteristicVelocity(
			unit.NewPascals(tc.sigma),
			unit.NewKilogramsPerCubicMeter(tc.rho),
		)
		require.NoError(t, err)
		assert.InEpsilon(t, math.Sqrt(2*tc.sigma/tc.rho), v.Value(), 1e-12)
	}
}

func TestCharacteristicVelocityValidation(t *testing.T) {
	cases := []struct {
		name       string
		sigma, rho float64
		reason     string
	}{
		{"negative strength", -1000, 1000, "tensile strength must be positive"},
		{"zero strength", 0, 1000, "tensile strength must be positive"},
		{"negative density", 1e9, -1000, "density must be positive"},
		{"zero density", 1e9, 0, "density must be positive"},
		{"strength beyond nanotubes", 300e9, 1000, "tensile strength exceeds known material limits"},
		{"density beyond metals", 1e9, 100_000, "density exceeds plausible material limits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CharacteristicVelocity(
				unit.NewPascals(tc.sigma),
				unit.NewKilogramsPerCubicMeter(tc.rho),
			)
			require.Error(t, err)

			var invalid *unit.InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.reason, invalid.Reason)
		})
	}
}

func TestCharacteristicVelocityBoundaryValuesAccepted(t *testing.T) {
	// Exactly at the plausibility bounds is still valid.
	_, err := CharacteristicVelocity(
		unit.NewPascals(200e9),
		unit.NewKilogramsPerCubicMeter(50_000),
	)
	assert.NoError(t, err)
}

func TestCharacteristicVelocityForMaterial(t *testing.T) {
	pbo, err := CharacteristicVelocityForMaterial(materials.PBO)
	require.NoError(t, err)
	assert.InDelta(t, 2967.49, pbo.Value(), 0.01)

	kevlar, err := CharacteristicVelocityForMaterial(materials.Kevlar49)
	require.NoError(t, err)
	assert.InDelta(t, 2236.0, kevlar.Value(), 10)

	aluminum, err := CharacteristicVelocityForMaterial(materials.Aluminum6061T6)
	require.NoError(t, err)

	// High-performance fibers far outperform metals.
	assert.Greater(t, pbo.Value(), kevlar.Value())
	assert.Greater(t, kevlar.Value(), aluminum.Value())
}

func TestOrbitalVelocity(t *testing.T) {
	leo, err := OrbitalVelocity(leoRadius, earthMu)
	require.NoError(t, err)
	assert.InDelta(t, 7669, leo.Value(), 10)

	geo, err := OrbitalVelocity(geoRadius, earthMu)
	require.NoError(t, err)
	assert.InDelta(t, 3074, geo.Value(), 10)

	assert.Greater(t, leo.Value(), geo.Value())
}

func TestOrbitalPeriod(t *testing.T) {
	leo, err := OrbitalPeriod(leoRadius, earthMu)
	require.NoError(t, err)
	assert.InDelta(t, 5543, leo.Value(), 10)

	geo, err := OrbitalPeriod(geoRadius, earthMu)
	require.NoError(t, err)
	assert.InDelta(t, 86164, geo.Value(), 100)
}

func TestKeplerThirdLaw(t *testing.T) {
	r1 := unit.NewMeters(7e6)
	r2 := unit.NewMeters(14e6)

	p1, err := OrbitalPeriod(r1, earthMu)
	require.NoError(t, err)
	p2, err := OrbitalPeriod(r2, earthMu)
	require.NoError(t, err)

	// (T2/T1)² == (r2/r1)³
	periodRatioSquared := math.Pow(p2.Value()/p1.Value(), 2)
	radiusRatioCubed := math.Pow(r2.Ratio(r1), 3)
	assert.InEpsilon(t, radiusRatioCubed, periodRatioSquared, 1e-10)
}

func TestCircularOrbitConsistency(t *testing.T) {
	radii := []unit.Meters{
		unit.NewMeters(6.571e6),
		unit.NewMeters(1.2e7),
		unit.NewMeters(4.2e7),
	}
	for _, r := range radii {
		v, err := OrbitalVelocity(r, earthMu)
		require.NoError(t, err)
		w, err := AngularVelocity(r, earthMu)
		require.NoError(t, err)

		// v == ω·r and v² == μ/r
		assert.InEpsilon(t, w.Value()*r.Value(), v.Value(), 1e-10)
		assert.InEpsilon(t, earthMu.Value()/r.Value(), v.Value()*v.Value(), 1e-10)
	}
}

func TestOrbitValidation(t *testing.T) {
	calls := []func(unit.Meters, unit.GravitationalParameter) error{
		func(r unit.Meters, mu unit.GravitationalParameter) error {
			_, err := OrbitalVelocity(r, mu)
			return err
		},
		func(r unit.Meters, mu unit.GravitationalParameter) error {
			_, err := OrbitalPeriod(r, mu)
			return err
		},
		func(r unit.Meters, mu unit.GravitationalParameter) error {
			_, err := AngularVelocity(r, mu)
			return err
		},
	}

	for _, call := range calls {
		err := call(unit.NewMeters(-1000), earthMu)
		require.Error(t, err)
		assert.Equal(t, "orbital radius must be positive", err.Error())

		err = call(unit.NewMeters(0), earthMu)
		require.Error(t, err)

		err = call(leoRadius, unit.NewGravitationalParameter(-1e14))
		require.Error(t, err)
		assert.Equal(t, "gravitational parameter must be positive", err.Error())

		err = call(leoRadius, unit.NewGravitationalParameter(0))
		require.Error(t, err)
	}
}

func TestEfficiency(t *testing.T) {
	pbo, err := Efficiency(materials.PBO, leoRadius, earthMu)
	require.NoError(t, err)

	// PBO: ~2967 m/s characteristic vs ~7669 m/s orbital.
	assert.InDelta(t, 0.387, pbo, 0.01)
	assert.GreaterOrEqual(t, pbo, 0.0)
	assert.LessOrEqual(t, pbo, 1.0)

	aluminum, err := Efficiency(materials.Aluminum6061T6, leoRadius, earthMu)
	require.NoError(t, err)
	assert.Less(t, aluminum, pbo)
}

func TestEfficiencyCappedAtOne(t *testing.T) {
	// A slow enough orbit makes the characteristic velocity exceed the
	// orbital velocity; the cap keeps efficiency at 1.
	farRadius := unit.NewMeters(1e12)
	eta, err := Efficiency(materials.CarbonNanotube, farRadius, earthMu)
	require.NoError(t, err)
	assert.Equal(t, 1.0, eta)
}

func TestEfficiencyForwardsSubCallErrors(t *testing.T) {
	bad := materials.Material{
		Name:            "bogus",
		TensileStrength: unit.NewPascals(-1),
		Density:         unit.NewKilogramsPerCubicMeter(1000),
	}
	_, err := Efficiency(bad, leoRadius, earthMu)
	require.Error(t, err)
	// The sub-call failure comes through untouched.
	assert.Equal(t, "tensile strength must be positive", err.Error())

	_, err = Efficiency(materials.PBO, unit.NewMeters(0), earthMu)
	require.Error(t, err)
	assert.Equal(t, "orbital radius must be positive", err.Error())

	var invalid *unit.InvalidInputError
	require.True(t, errors.As(err, &invalid))
}

func TestSpinRateMoravecReferenceCase(t *testing.T) {
	// Tether diameter of 1/3 the body diameter, i.e. length = radius/3,
	// touches down 6 times per orbit.
	spin, err := SpinRate(earthRadius.Scale(1.0/3.0), earthRadius)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, spin, 0.1)
}

func TestSpinRateScaling(t *testing.T) {
	lengths := []float64{50e3, 100e3, 200e3, 500e3}
	prev := 0.0
	for _, l := range lengths {
		spin, err := SpinRate(unit.NewMeters(l), earthRadius)
		require.NoError(t, err)
		assert.Greater(t, spin, prev, "spin rate should grow with tether length")
		assert.GreaterOrEqual(t, spin, 1.0)
		prev = spin
	}
}

func TestSpinRateCap(t *testing.T) {
	// A tether longer than the Moravec reference saturates at 10x.
	spin, err := SpinRate(earthRadius.Scale(2), earthRadius)
	require.NoError(t, err)
	assert.Equal(t, 10.0, spin)
}

func TestSpinRateValidation(t *testing.T) {
	_, err := SpinRate(unit.NewMeters(-1000), earthRadius)
	require.Error(t, err)
	assert.Equal(t, "tether length must be positive", err.Error())

	_, err = SpinRate(unit.NewMeters(0), earthRadius)
	require.Error(t, err)

	_, err = SpinRate(unit.NewMeters(1000), unit.NewMeters(0))
	require.Error(t, err)
	assert.Equal(t, "central body radius must be positive", err.Error())
}
