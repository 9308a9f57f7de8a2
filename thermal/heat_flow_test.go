package thermal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeatFlow(t *testing.T) {
	assert.Equal(t, 300.0, HeatFlow(1.5, 10, 20))
	assert.Equal(t, 0.0, HeatFlow(1.5, 0, 20))
	assert.Equal(t, -30.0, HeatFlow(1.5, 10, -2))
}

func TestVentFlow(t *testing.T) {
	assert.InDelta(t, 335.0, VentFlow(100, 10), 1e-9)
	assert.Equal(t, 0.0, VentFlow(0, 10))

	air := AirProperties{Density: 1.2, SpecificHeat: 1005}
	assert.Equal(t, VentFlow(100, 10), air.VentFlow(100, 10))

	light := AirProperties{Density: 1.0, SpecificHeat: 1005}
	assert.InDelta(t, 100.0/3600*1.0*1005*10, light.VentFlow(100, 10), 1e-9)
}
