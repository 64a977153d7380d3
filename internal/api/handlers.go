package api

import (
	"fmt"
	"net/http"

	"github.com/signalsfoundry/skyhook/celestials"
	"github.com/signalsfoundry/skyhook/kepler"
	"github.com/signalsfoundry/skyhook/materials"
	"github.com/signalsfoundry/skyhook/tether"
	"github.com/signalsfoundry/skyhook/unit"
)

// materialParams identifies a material either by catalog name or by raw
// properties. Raw properties go through the core's own validation.
type materialParams struct {
	Material          string  `json:"material,omitempty"`
	TensileStrengthPa float64 `json:"tensile_strength_pa,omitempty"`
	DensityKgM3       float64 `json:"density_kg_m3,omitempty"`
}

func (s *Server) resolveMaterial(p materialParams) (materials.Material, error) {
	if p.Material != "" {
		m, ok := s.catalog.Material(p.Material)
		if !ok {
			return materials.Material{}, notFound(fmt.Sprintf("unknown material %q", p.Material))
		}
		return m, nil
	}
	return materials.Material{
		Name:            "custom",
		TensileStrength: unit.NewPascals(p.TensileStrengthPa),
		Density:         unit.NewKilogramsPerCubicMeter(p.DensityKgM3),
	}, nil
}

// orbitParams identifies a circular orbit either by catalog body plus
// altitude or by raw gravitational parameter plus radius.
type orbitParams struct {
	Body       string  `json:"body,omitempty"`
	AltitudeKm float64 `json:"altitude_km,omitempty"`
	MuM3S2     float64 `json:"gravitational_parameter_m3_s2,omitempty"`
	RadiusM    float64 `json:"radius_m,omitempty"`
}

func (s *Server) resolveOrbit(p orbitParams) (unit.Meters, unit.GravitationalParameter, error) {
	if p.Body != "" {
		b, ok := s.catalog.Body(p.Body)
		if !ok {
			return unit.Meters{}, unit.GravitationalParameter{}, notFound(fmt.Sprintf("unknown body %q", p.Body))
		}
		radius := b.Radius.Add(unit.NewKilometers(p.AltitudeKm)).Meters()
		return radius, b.Mu(), nil
	}
	return unit.NewMeters(p.RadiusM), unit.NewGravitationalParameter(p.MuM3S2), nil
}

func (s *Server) resolveBody(name string) (celestials.CelestialBody, error) {
	if name == "" {
		return celestials.CelestialBody{}, badRequest("body is required")
	}
	b, ok := s.catalog.Body(name)
	if !ok {
		return celestials.CelestialBody{}, notFound(fmt.Sprintf("unknown body %q", name))
	}
	return b, nil
}

func (s *Server) handleCharacteristicVelocity(r *http.Request) (any, error) {
	var req materialParams
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	m, err := s.resolveMaterial(req)
	if err != nil {
		return nil, err
	}
	v, err := tether.CharacteristicVelocityForMaterial(m)
	if err != nil {
		return nil, err
	}
	return struct {
		Material    string  `json:"material,omitempty"`
		VelocityMS  float64 `json:"velocity_m_s"`
	}{Material: req.Material, VelocityMS: v.Value()}, nil
}

func (s *Server) handleEfficiency(r *http.Request) (any, error) {
	var req struct {
		materialParams
		orbitParams
	}
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	m, err := s.resolveMaterial(req.materialParams)
	if err != nil {
		return nil, err
	}
	radius, mu, err := s.resolveOrbit(req.orbitParams)
	if err != nil {
		return nil, err
	}
	eff, err := tether.Efficiency(m, radius, mu)
	if err != nil {
		return nil, err
	}
	return struct {
		Efficiency float64 `json:"efficiency"`
	}{Efficiency: eff}, nil
}

func (s *Server) handleSpinRate(r *http.Request) (any, error) {
	var req struct {
		TetherLengthM      float64 `json:"tether_length_m"`
		Body               string  `json:"body,omitempty"`
		CentralBodyRadiusM float64 `json:"central_body_radius_m,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	radius := unit.NewMeters(req.CentralBodyRadiusM)
	if req.Body != "" {
		b, err := s.resolveBody(req.Body)
		if err != nil {
			return nil, err
		}
		radius = b.Radius.Meters()
	}

	rate, err := tether.SpinRate(unit.NewMeters(req.TetherLengthM), radius)
	if err != nil {
		return nil, err
	}
	return struct {
		SpinRate float64 `json:"spin_rate"`
	}{SpinRate: rate}, nil
}

func (s *Server) handleImpulse(r *http.Request) (any, error) {
	var req struct {
		materialParams
		Body                  string  `json:"body"`
		AltitudeKm            float64 `json:"altitude_km"`
		LengthKm              float64 `json:"length_km"`
		TetherMassKg          float64 `json:"tether_mass_kg"`
		RotationalVelocityMS  float64 `json:"rotational_velocity_m_s"`
		PayloadMassKg         float64 `json:"payload_mass_kg"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	body, err := s.resolveBody(req.Body)
	if err != nil {
		return nil, err
	}
	m, err := s.resolveMaterial(req.materialParams)
	if err != nil {
		return nil, err
	}

	t := tether.Tether{
		Altitude:           unit.NewKilometers(req.AltitudeKm),
		Length:             unit.NewKilometers(req.LengthKm),
		Mass:               unit.NewKilograms(req.TetherMassKg),
		Material:           m,
		RotationalVelocity: unit.NewMetersPerSecond(req.RotationalVelocityMS),
	}
	p := tether.Payload{Mass: unit.NewKilograms(req.PayloadMassKg)}

	return struct {
		ImpulseMS             float64 `json:"impulse_m_s"`
		MassRatio             float64 `json:"mass_ratio"`
		CharacteristicLenKm   float64 `json:"characteristic_length_km"`
	}{
		ImpulseMS:           t.PayloadImpulse(p, body).Value(),
		MassRatio:           t.MassRatio(body),
		CharacteristicLenKm: t.CharacteristicLength(body).Value(),
	}, nil
}

func (s *Server) handleOrbitalVelocity(r *http.Request) (any, error) {
	var req orbitParams
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	radius, mu, err := s.resolveOrbit(req)
	if err != nil {
		return nil, err
	}
	v, err := tether.OrbitalVelocity(radius, mu)
	if err != nil {
		return nil, err
	}
	return struct {
		VelocityMS float64 `json:"velocity_m_s"`
	}{VelocityMS: v.Value()}, nil
}

func (s *Server) handleOrbitalPeriod(r *http.Request) (any, error) {
	var req orbitParams
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	radius, mu, err := s.resolveOrbit(req)
	if err != nil {
		return nil, err
	}
	period, err := tether.OrbitalPeriod(radius, mu)
	if err != nil {
		return nil, err
	}
	return struct {
		PeriodS float64 `json:"period_s"`
	}{PeriodS: period.Value()}, nil
}

func (s *Server) handleAngularVelocity(r *http.Request) (any, error) {
	var req orbitParams
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	radius, mu, err := s.resolveOrbit(req)
	if err != nil {
		return nil, err
	}
	omega, err := tether.AngularVelocity(radius, mu)
	if err != nil {
		return nil, err
	}
	return struct {
		AngularVelocityRadS float64 `json:"angular_velocity_rad_s"`
	}{AngularVelocityRadS: omega.Value()}, nil
}

func (s *Server) handleEllipse(r *http.Request) (any, error) {
	var req struct {
		PeriapsisM float64 `json:"periapsis_m"`
		ApoapsisM  float64 `json:"apoapsis_m"`
	}
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}
	el, err := kepler.FromPeriapsisApoapsis(
		unit.NewMeters(req.PeriapsisM),
		unit.NewMeters(req.ApoapsisM),
		kepler.Point{},
	)
	if err != nil {
		return nil, err
	}
	return struct {
		Eccentricity   float64 `json:"eccentricity"`
		SemiMajorAxisM float64 `json:"semi_major_axis_m"`
		SemiMinorAxisM float64 `json:"semi_minor_axis_m"`
		FocalDistanceM float64 `json:"focal_distance_m"`
		Flattening     float64 `json:"flattening"`
	}{
		Eccentricity:   el.Eccentricity().Value(),
		SemiMajorAxisM: el.SemiMajorAxis().Value(),
		SemiMinorAxisM: el.SemiMinorAxis().Value(),
		FocalDistanceM: el.FocalDistance().Value(),
		Flattening:     el.Flattening(),
	}, nil
}

type materialDTO struct {
	Name              string   `json:"name"`
	TensileStrengthPa float64  `json:"tensile_strength_pa"`
	DensityKgM3       float64  `json:"density_kg_m3"`
	YoungsModulusPa   *float64 `json:"youngs_modulus_pa,omitempty"`
	SpecificStrength  float64  `json:"specific_strength"`
	Description       string   `json:"description,omitempty"`
}

func (s *Server) handleListMaterials(r *http.Request) (any, error) {
	list := s.catalog.ListMaterials()
	out := make([]materialDTO, 0, len(list))
	for _, m := range list {
		dto := materialDTO{
			Name:              m.Name,
			TensileStrengthPa: m.TensileStrength.Value(),
			DensityKgM3:       m.Density.Value(),
			SpecificStrength:  m.SpecificStrength(),
			Description:       m.Description,
		}
		if m.YoungsModulus != nil {
			ym := m.YoungsModulus.Value()
			dto.YoungsModulusPa = &ym
		}
		out = append(out, dto)
	}
	return struct {
		Materials []materialDTO `json:"materials"`
	}{Materials: out}, nil
}

type bodyDTO struct {
	Name                string  `json:"name"`
	MassKg              float64 `json:"mass_kg"`
	RadiusKm            float64 `json:"radius_km"`
	MuM3S2              float64 `json:"gravitational_parameter_m3_s2"`
	SurfaceGravityMS2   float64 `json:"surface_gravity_m_s2"`
}

func (s *Server) handleListBodies(r *http.Request) (any, error) {
	list := s.catalog.ListBodies()
	out := make([]bodyDTO, 0, len(list))
	for _, b := range list {
		out = append(out, bodyDTO{
			Name:              b.Name,
			MassKg:            b.Mass.Value(),
			RadiusKm:          b.Radius.Value(),
			MuM3S2:            b.Mu().Value(),
			SurfaceGravityMS2: b.SurfaceGravity().Value(),
		})
	}
	return struct {
		Bodies []bodyDTO `json:"bodies"`
	}{Bodies: out}, nil
}
