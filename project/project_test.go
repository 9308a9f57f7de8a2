package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"building_energy_calc/catalog"
	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

func TestLoad(t *testing.T) {
	p, err := Load("testdata/house.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Chalet Bern", p.Name)
	assert.Equal(t, 4, p.Occupants())
	assert.Equal(t, 32.0, p.CoolingExteriorTemperature())
	require.NotNil(t, p.Solar)
	assert.Equal(t, "Megasol", p.Solar.Panel.Brand)

	elements, err := p.Elements(catalog.Default())
	require.NoError(t, err)
	require.Len(t, elements, 6)

	south := elements[0]
	assert.Equal(t, thermal.ElementTypeWall, south.Type)
	assert.Equal(t, thermal.DirectionS, south.Direction)
	require.Len(t, south.Layers, 4)
	assert.Equal(t, 0.16, south.Layers[2].Thickness)
	assert.Equal(t, 0.035, south.Layers[2].ThermalConductivity)
	require.Len(t, south.Bridges, 1)

	assert.Equal(t, "Hemp", elements[1].Layers[1].Name)
	assert.Equal(t, thermal.ElementTypeFloor, elements[2].Type)
	assert.Equal(t, thermal.ElementTypeRoof, elements[3].Type)
	require.NotNil(t, elements[3].Tilt)
	assert.Equal(t, 35.0, *elements[3].Tilt)
	assert.Equal(t, thermal.ElementTypeWindow, elements[4].Type)
	require.NotNil(t, elements[4].SolarMask)
	assert.Equal(t, thermal.ElementTypeDoor, elements[5].Type)
	assert.Empty(t, elements[5].Layers)
}

func TestParseJSON(t *testing.T) {
	p, err := Parse([]byte(`{"name": "flat", "dimensions": {"floor_area": 50}, "climate": {"exterior_temperature": 19}}`))
	require.NoError(t, err)
	assert.Equal(t, "flat", p.Name)
	assert.Equal(t, 1, p.Occupants())
	assert.Equal(t, 19.0, p.CoolingExteriorTemperature())

	r, err := Evaluate(p, catalog.Default())
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Heating.TransmissionLoss)
	assert.Equal(t, 0.0, r.Heating.VentilationLoss)
	assert.Equal(t, 330.0, r.Heating.InternalGains)
	assert.Equal(t, -330.0, r.Heating.TotalHeatingPower)
	assert.Nil(t, r.Solar)
	assert.Empty(t, r.ClimateZone)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"climate zone": `location: {climate_zone: Z9}`,
		"floor area":   `dimensions: {floor_area: -1}`,
		"occupants":    `occupancy: {occupants: -2}`,
		"element area": `envelope: {walls: [{name: w, area: -3}]}`,
		"consumption":  `solar: {annual_consumption: -10}`,
		"shading":      `solar: {annual_consumption: 10, shading_loss: 120}`,
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidProject, name)
	}

	_, err := Parse([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestElementsErrors(t *testing.T) {
	cat := catalog.Default()

	p, err := Parse([]byte(`envelope: {walls: [{name: w, area: 3, layers: [{material: Unobtainium}]}]}`))
	require.NoError(t, err)
	_, err = p.Elements(cat)
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Contains(t, err.Error(), "walls[0]")

	p, err = Parse([]byte(`envelope: {walls: [{name: w, area: 3, type: chimney}]}`))
	require.NoError(t, err)
	_, err = p.Elements(cat)
	assert.ErrorIs(t, err, thermal.ErrInvalidElementType)

	p, err = Parse([]byte(`envelope: {walls: [{name: w, area: 3, orientation: up}]}`))
	require.NoError(t, err)
	_, err = p.Elements(cat)
	assert.ErrorIs(t, err, thermal.ErrInvalidDirection)
}

func TestOverrides(t *testing.T) {
	p, err := Load("testdata/house.yaml")
	require.NoError(t, err)

	dc := p.DesignConditions()
	assert.Equal(t, 20.0, dc.WinterComfortTemp)
	assert.Equal(t, 26.0, dc.SummerComfortTemp)
	assert.Equal(t, 80.0, dc.GainPerOccupant)
	assert.Equal(t, thermal.DefaultAirProperties(), dc.Air)

	sc, err := p.SiteConditions()
	require.NoError(t, err)
	f, err := sc.OrientationFactors.Factor(solar.OrientationSouthWest)
	require.NoError(t, err)
	assert.Equal(t, 0.93, f)
	assert.Equal(t, 1100.0, sc.BaseIrradiation)

	bad, err := Parse([]byte(`constants: {orientation_factors: {up: 1}}`))
	require.NoError(t, err)
	_, err = bad.SiteConditions()
	assert.ErrorIs(t, err, solar.ErrInvalidOrientation)
}

func TestPanelSpec(t *testing.T) {
	cat := catalog.Default()

	s := &Solar{}
	p, err := s.PanelSpec(cat)
	require.NoError(t, err)
	assert.Equal(t, "Meyer Burger White", p.String())

	s = &Solar{Panel: PanelRef{Brand: "Acme", Model: "X"}}
	_, err = s.PanelSpec(cat)
	assert.ErrorIs(t, err, ErrUnknownPanel)

	s = &Solar{CustomPanel: &PanelSpec{RatedPower: 350, Efficiency: 20, Area: 1.7, Price: 300}}
	p, err = s.PanelSpec(cat)
	require.NoError(t, err)
	assert.Equal(t, solar.TechnologyMonocrystalline, p.Technology)
	assert.Equal(t, "custom", p.String())

	s = &Solar{CustomPanel: &PanelSpec{RatedPower: 0, Efficiency: 20, Area: 1.7}}
	_, err = s.PanelSpec(cat)
	assert.ErrorIs(t, err, solar.ErrInvalidPanel)
}

func TestEvaluate(t *testing.T) {
	p, err := Load("testdata/house.yaml")
	require.NoError(t, err)
	cat := catalog.Default()

	r, err := Evaluate(p, cat)
	require.NoError(t, err)

	assert.Equal(t, "H1c - Paris region", r.ClimateZone)
	assert.InDelta(t, 150.0, r.AirFlow, 1e-9)
	assert.InDelta(t, 30.0, r.EffectiveAirFlow, 1e-9)

	// the entrance door has no layers and is left out
	assert.Len(t, r.Envelope.Elements, 5)
	assert.Equal(t, 40.0+40+60+70+8, r.Envelope.Area)
	assert.InDelta(t, r.Envelope.HeatLossCoefficient+2.0, r.Envelope.HeatLossCoefficientWithBridges, 1e-9)

	elements, err := p.Elements(cat)
	require.NoError(t, err)
	trs, err := thermal.TotalHeatLoss(elements, 20, -8)
	require.NoError(t, err)
	assert.InDelta(t, trs, r.Heating.TransmissionLoss, 1e-9)
	assert.InDelta(t, r.Envelope.HeatLossCoefficient*28, r.Heating.TransmissionLoss, 1e-6)
	assert.InDelta(t, 150.0/3600*1.2*1005*28, r.Heating.VentilationLoss, 1e-9)
	assert.Equal(t, 4*80.0+120*5.0, r.Heating.InternalGains)

	assert.InDelta(t, r.Envelope.HeatLossCoefficient*6, r.Cooling.TransmissionGain, 1e-6)
	assert.Equal(t, 1200.0, r.Cooling.SolarGains)

	require.NotNil(t, r.Solar)
	assert.Equal(t, "Megasol M400", r.Solar.Panel)
	assert.Equal(t, solar.OrientationSouthWest, r.Solar.Orientation)
	assert.InDelta(t, 1100*0.93*solar.TiltFactor(35, 33)*0.95*0.215, r.Solar.Result.YieldPerWatt, 1e-9)
	assert.Equal(t, float64(r.Solar.Result.PanelCount)*1.92, r.Solar.Result.RequiredArea)
}

func TestEvaluateSolarErrors(t *testing.T) {
	p, err := Parse([]byte(`solar: {annual_consumption: 3000, tilt: 170}`))
	require.NoError(t, err)
	_, err = Evaluate(p, catalog.Default())
	assert.ErrorIs(t, err, solar.ErrInfeasibleSizing)

	p, err = Parse([]byte(`solar: {annual_consumption: 3000, electricity_rate: 0}`))
	require.NoError(t, err)
	r, err := Evaluate(p, catalog.Default())
	assert.ErrorIs(t, err, solar.ErrInfeasiblePayback)
	require.NotNil(t, r)
	require.NotNil(t, r.Solar)
	assert.Greater(t, r.Solar.Result.PanelCount, 0)
	assert.Greater(t, r.Solar.Result.RequiredArea, 0.0)

	p, err = Parse([]byte(`ventilation: {type: hybrid}`))
	require.NoError(t, err)
	_, err = Evaluate(p, catalog.Default())
	assert.ErrorIs(t, err, thermal.ErrInvalidVentilationType)
}

func TestEvaluateLoadsIgnoresSolar(t *testing.T) {
	for _, src := range []string{
		`solar: {annual_consumption: 3000, electricity_rate: 0}`,
		`solar: {annual_consumption: 3000, tilt: 170}`,
		`solar: {annual_consumption: 3000, panel: {brand: Acme, model: X1}}`,
	} {
		p, err := Parse([]byte(src))
		require.NoError(t, err, src)

		r, err := EvaluateLoads(p, catalog.Default())
		require.NoError(t, err, src)
		assert.Nil(t, r.Solar, src)
		assert.Equal(t, -80.0, r.Heating.TotalHeatingPower, src)
	}
}

func TestEvaluateNominalAirFlow(t *testing.T) {
	p, err := Parse([]byte(`
ventilation: {type: double-flow, air_flow: 360, heat_recovery_efficiency: 80}
climate: {exterior_temperature: 9, cooling_exterior_temperature: 36}
`))
	require.NoError(t, err)

	r, err := Evaluate(p, catalog.Default())
	require.NoError(t, err)
	assert.InDelta(t, 360.0, r.AirFlow, 1e-9)
	assert.InDelta(t, 72.0, r.EffectiveAirFlow, 1e-9)
	assert.InDelta(t, 1206.0, r.Heating.VentilationLoss, 1e-9)
	assert.InDelta(t, 1206.0, r.Cooling.VentilationGain, 1e-9)
}
