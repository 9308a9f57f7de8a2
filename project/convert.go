package project

import (
	"fmt"

	"building_energy_calc/catalog"
	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

// Elements flattens the envelope groups into one element collection,
// resolving catalog materials against cat.
func (p *Project) Elements(cat *catalog.Catalog) ([]thermal.Element, error) {
	var elements []thermal.Element
	for _, group := range p.Envelope.groups() {
		for i, e := range group.elements {
			el, err := e.toElement(cat, group.defaultType)
			if err != nil {
				return nil, fmt.Errorf("%s[%d] %q: %w", group.name, i, e.Name, err)
			}
			elements = append(elements, el)
		}
	}
	return elements, nil
}

func (e Element) toElement(cat *catalog.Catalog, defaultType string) (thermal.Element, error) {
	typ := e.Type
	if typ == "" {
		typ = defaultType
	}
	et, err := thermal.ElementTypeFromString(typ)
	if err != nil {
		return thermal.Element{}, err
	}

	el := thermal.Element{
		Name: e.Name,
		Type: et,
		Area: e.Area,
		Tilt: e.Tilt,
	}
	if e.Orientation != "" {
		if el.Direction, err = thermal.DirectionFromString(e.Orientation); err != nil {
			return thermal.Element{}, err
		}
	}
	if e.SolarMask != nil {
		el.SolarMask = &thermal.SolarMask{Angle: e.SolarMask.Angle, Distance: e.SolarMask.Distance}
	}
	for _, b := range e.ThermalBridges {
		bt, err := thermal.BridgeTypeFromString(b.Type)
		if err != nil {
			return thermal.Element{}, err
		}
		el.Bridges = append(el.Bridges, thermal.ThermalBridge{Type: bt, Value: b.Value, Length: b.Length})
	}
	for k, l := range e.Layers {
		layer, err := l.resolve(cat)
		if err != nil {
			return thermal.Element{}, fmt.Errorf("layer %d: %w", k, err)
		}
		el.Layers = append(el.Layers, layer)
	}
	return el, nil
}

func (l Layer) resolve(cat *catalog.Catalog) (thermal.MaterialLayer, error) {
	if l.Material == "" {
		return thermal.MaterialLayer{
			Name:                l.Name,
			ThermalConductivity: l.ThermalConductivity,
			Thickness:           l.Thickness,
		}, nil
	}
	m, ok := cat.FindMaterial(l.Material)
	if !ok {
		return thermal.MaterialLayer{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, l.Material)
	}
	if l.Thickness > 0 {
		m.Thickness = l.Thickness
	}
	return m, nil
}

// VentilationSystem returns the declared system, or a mechanical system with
// no air flow when the project has none.
func (p *Project) VentilationSystem() (thermal.VentilationSystem, error) {
	if p.Ventilation == nil {
		return thermal.VentilationSystem{Type: thermal.VentilationTypeMechanical}, nil
	}
	vt, err := thermal.VentilationTypeFromString(p.Ventilation.Type)
	if err != nil {
		return thermal.VentilationSystem{}, err
	}
	v := thermal.VentilationSystem{
		Type:                   vt,
		AirFlow:                p.Ventilation.AirFlow,
		HeatRecoveryEfficiency: p.Ventilation.HeatRecoveryEfficiency,
	}
	return v, v.Validate()
}

// Occupants defaults to one person when unset.
func (p *Project) Occupants() int {
	if p.Occupancy.Occupants == nil {
		return 1
	}
	return *p.Occupancy.Occupants
}

// CoolingExteriorTemperature falls back to the heating exterior temperature.
func (p *Project) CoolingExteriorTemperature() float64 {
	if p.Climate.CoolingExteriorTemperature != nil {
		return *p.Climate.CoolingExteriorTemperature
	}
	return p.Climate.ExteriorTemperature
}

func override(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func (p *Project) DesignConditions() thermal.DesignConditions {
	dc := thermal.DefaultDesignConditions()
	c := p.Constants
	override(&dc.WinterComfortTemp, c.WinterComfortTemperature)
	override(&dc.SummerComfortTemp, c.SummerComfortTemperature)
	override(&dc.GainPerOccupant, c.GainPerOccupant)
	override(&dc.GainPerFloorArea, c.GainPerFloorArea)
	override(&dc.Air.Density, c.AirDensity)
	override(&dc.Air.SpecificHeat, c.SpecificHeat)
	return dc
}

func (p *Project) SiteConditions() (solar.SiteConditions, error) {
	sc := solar.DefaultSiteConditions()
	c := p.Constants
	override(&sc.BaseIrradiation, c.BaseIrradiation)
	override(&sc.OptimumTilt, c.OptimumTilt)
	override(&sc.InstallMarkup, c.InstallMarkup)
	if len(c.OrientationFactors) > 0 {
		overrides := make(solar.OrientationFactors, len(c.OrientationFactors))
		for k, v := range c.OrientationFactors {
			o, err := solar.OrientationFromString(k)
			if err != nil {
				return solar.SiteConditions{}, err
			}
			overrides[o] = v
		}
		sc.OrientationFactors = sc.OrientationFactors.With(overrides)
	}
	return sc, nil
}

// PanelSpec returns the custom panel when given, otherwise the catalog entry.
// With neither brand nor model the first catalog panel is used.
func (s *Solar) PanelSpec(cat *catalog.Catalog) (solar.PanelSpec, error) {
	if s.CustomPanel != nil {
		cp := s.CustomPanel
		tech := solar.TechnologyMonocrystalline
		if cp.Technology != "" {
			var err error
			if tech, err = solar.TechnologyFromString(cp.Technology); err != nil {
				return solar.PanelSpec{}, err
			}
		}
		p := solar.PanelSpec{
			Brand:      cp.Brand,
			Model:      cp.Model,
			Technology: tech,
			RatedPower: cp.RatedPower,
			Efficiency: cp.Efficiency,
			Area:       cp.Area,
			Price:      cp.Price,
		}
		return p, p.Validate()
	}
	if s.Panel.Brand == "" && s.Panel.Model == "" {
		panels := cat.Panels()
		if len(panels) == 0 {
			return solar.PanelSpec{}, fmt.Errorf("%w: empty catalog", ErrUnknownPanel)
		}
		return panels[0], nil
	}
	p, ok := cat.FindPanel(s.Panel.Brand, s.Panel.Model)
	if !ok {
		return solar.PanelSpec{}, fmt.Errorf("%w: %s %s", ErrUnknownPanel, s.Panel.Brand, s.Panel.Model)
	}
	return p, nil
}

func (s *Solar) orientation() (solar.Orientation, error) {
	if s.Orientation == "" {
		return solar.OrientationSouth, nil
	}
	return solar.OrientationFromString(s.Orientation)
}

func (s *Solar) tilt() float64 {
	if s.Tilt == nil {
		return solar.DefaultTilt
	}
	return *s.Tilt
}

func (s *Solar) electricityRate() float64 {
	if s.ElectricityRate == nil {
		return solar.DefaultElectricityRate
	}
	return *s.ElectricityRate
}
