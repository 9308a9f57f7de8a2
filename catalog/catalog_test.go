package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"building_energy_calc/solar"
	"building_energy_calc/thermal"
)

func TestDefaultMaterials(t *testing.T) {
	c := Default()

	cats := c.MaterialCategories()
	names := make([]string, len(cats))
	for i, cat := range cats {
		names[i] = cat.Name
	}
	assert.Equal(t, []string{"masonry", "insulation", "wood", "finishes", "glazing"}, names)
	assert.Len(t, c.Materials(), 27)

	m, ok := c.FindMaterial("glass WOOL")
	require.True(t, ok)
	assert.Equal(t, 0.035, m.ThermalConductivity)
	assert.Equal(t, 0.1, m.Thickness)

	r, err := thermal.Resistance(m)
	require.NoError(t, err)
	assert.InDelta(t, 2.857, r, 0.001)

	u, err := thermal.UValue([]thermal.MaterialLayer{m})
	require.NoError(t, err)
	assert.InDelta(t, 0.35, u, 1e-12)

	_, ok = c.FindMaterial("Straw bale")
	assert.False(t, ok)
}

func TestDefaultIsNotMutated(t *testing.T) {
	c := Default()
	ms := c.Materials()
	ms[0].Thickness = 99
	cats := c.MaterialCategories()
	cats[0].Materials[0].Thickness = 99
	ps := c.Panels()
	ps[0].Price = 0

	assert.Equal(t, 0.2, Default().Materials()[0].Thickness)
	assert.Equal(t, 450.0, Default().Panels()[0].Price)
}

func TestDefaultPanels(t *testing.T) {
	c := Default()
	assert.Len(t, c.Panels(), 5)

	p, ok := c.FindPanel("longi", "hi-mo5")
	require.True(t, ok)
	assert.Equal(t, solar.TechnologyBifacial, p.Technology)
	assert.Equal(t, 540.0, p.RatedPower)
	assert.Equal(t, 2.56, p.Area)

	_, ok = c.FindPanel("LONGi", "Hi-MO6")
	assert.False(t, ok)
}

func TestLoadMaterials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "materials.csv")
	content := "category,name,thermal_conductivity,thickness\n" +
		"insulation,Hemp,0.04,0.14\n" +
		"masonry,Rammed earth,1.1,0.4\n" +
		"insulation,Straw,0.052,0.36\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cats, err := LoadMaterials(path)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "insulation", cats[0].Name)
	assert.Len(t, cats[0].Materials, 2)

	c := Default().WithMaterials(cats)
	m, ok := c.FindMaterial("straw")
	require.True(t, ok)
	assert.Equal(t, 0.36, m.Thickness)
	assert.Len(t, c.Panels(), 5)

	t.Run("invalid conductivity", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(bad, []byte("category,name,thermal_conductivity,thickness\nx,y,0,0.1\n"), 0o644))
		_, err := LoadMaterials(bad)
		assert.ErrorIs(t, err, thermal.ErrInvalidMaterial)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMaterials(filepath.Join(dir, "nope.csv"))
		assert.Error(t, err)
	})
}

func TestLoadPanels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panels.csv")
	content := "brand,model,technology,rated_power,efficiency,area,price\n" +
		"Acme,P1,polycrystalline,300,17.5,1.7,200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	panels, err := LoadPanels(path)
	require.NoError(t, err)
	require.Len(t, panels, 1)
	assert.Equal(t, solar.TechnologyPolycrystalline, panels[0].Technology)

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("brand,model,technology,rated_power,efficiency,area,price\nA,B,thin-film,300,17,1.7,200\n"), 0o644))
	_, err = LoadPanels(bad)
	assert.ErrorIs(t, err, solar.ErrInvalidPanel)
}
