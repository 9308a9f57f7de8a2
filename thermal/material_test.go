package thermal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glassWool(thickness float64) MaterialLayer {
	return MaterialLayer{Name: "Glass wool", ThermalConductivity: 0.035, Thickness: thickness}
}

func TestResistance(t *testing.T) {
	r, err := Resistance(glassWool(0.1))
	require.NoError(t, err)
	assert.Equal(t, 0.1/0.035, r)

	t.Run("decreasing in conductivity", func(t *testing.T) {
		prev := 0.0
		for i, k := range []float64{2.3, 1.0, 0.4, 0.13, 0.035} {
			r, err := Resistance(MaterialLayer{ThermalConductivity: k, Thickness: 0.2})
			require.NoError(t, err)
			if i > 0 {
				assert.Greater(t, r, prev)
			}
			prev = r
		}
	})

	t.Run("increasing in thickness", func(t *testing.T) {
		prev := 0.0
		for _, d := range []float64{0.01, 0.05, 0.1, 0.2} {
			r, err := Resistance(MaterialLayer{ThermalConductivity: 0.04, Thickness: d})
			require.NoError(t, err)
			assert.Greater(t, r, prev)
			prev = r
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for name, layer := range map[string]MaterialLayer{
			"zero conductivity":     {Name: "a", ThermalConductivity: 0, Thickness: 0.1},
			"negative conductivity": {Name: "b", ThermalConductivity: -1, Thickness: 0.1},
			"zero thickness":        {Name: "c", ThermalConductivity: 1, Thickness: 0},
			"negative thickness":    {Name: "d", ThermalConductivity: 1, Thickness: -0.1},
		} {
			_, err := Resistance(layer)
			assert.ErrorIs(t, err, ErrInvalidMaterial, name)
		}
	})
}

func TestUValue(t *testing.T) {
	r, err := Resistance(glassWool(0.1))
	require.NoError(t, err)
	assert.InDelta(t, 2.857, r, 0.001)

	u, err := UValue([]MaterialLayer{glassWool(0.1)})
	require.NoError(t, err)
	assert.InDelta(t, 0.35, u, 1e-12)

	layers := []MaterialLayer{
		{Name: "Cement render", ThermalConductivity: 1.15, Thickness: 0.02},
		{Name: "Hollow brick", ThermalConductivity: 0.4, Thickness: 0.2},
		glassWool(0.12),
		{Name: "Plasterboard", ThermalConductivity: 0.25, Thickness: 0.013},
	}
	u, err = UValue(layers)
	require.NoError(t, err)
	sum := 0.02/1.15 + 0.2/0.4 + 0.12/0.035 + 0.013/0.25
	assert.InDelta(t, 1/sum, u, 1e-12)
	assert.Greater(t, u, 0.0)

	t.Run("order independent", func(t *testing.T) {
		reversed := []MaterialLayer{layers[3], layers[2], layers[1], layers[0]}
		ur, err := UValue(reversed)
		require.NoError(t, err)
		assert.InDelta(t, u, ur, 1e-12)
	})

	t.Run("surface resistance ignored", func(t *testing.T) {
		l := glassWool(0.1)
		l.SurfaceResistance = &SurfaceResistance{Interior: 0.13, Exterior: 0.04}
		us, err := UValue([]MaterialLayer{l})
		require.NoError(t, err)
		assert.Equal(t, 1/(0.1/0.035), us)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := UValue(nil)
		assert.True(t, errors.Is(err, ErrEmptyAssembly))
	})

	t.Run("invalid layer", func(t *testing.T) {
		_, err := UValue([]MaterialLayer{glassWool(0.1), {Name: "bad", ThermalConductivity: 0, Thickness: 0.1}})
		assert.ErrorIs(t, err, ErrInvalidMaterial)
		assert.Contains(t, err.Error(), "layer 1")
	})

	t.Run("idempotent", func(t *testing.T) {
		u1, _ := UValue(layers)
		u2, _ := UValue(layers)
		assert.Equal(t, u1, u2)
	})
}
