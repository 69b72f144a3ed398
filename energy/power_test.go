package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNuclearEfficiencyWithinOperatingRange(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		eta := DrawNuclearEfficiency(seed)
		assert.GreaterOrEqual(t, eta, 0.20)
		assert.LessOrEqual(t, eta, 0.25)
	}
}

func TestNuclearEnergyPerSol(t *testing.T) {
	// 10 fission/s/kg at 3.318e-11 J/fission
	e := NuclearEnergyPerSol(100.0, 0.25)

	assert.InDelta(t, 10.0*3.318e-11*100.0*0.25*88775.0*0.001, e, 1e-15)
}

func TestNuclearEnergyScalesWithMass(t *testing.T) {
	e1 := NuclearEnergyPerSol(1.0, 0.22)
	e2 := NuclearEnergyPerSol(5.0, 0.22)

	assert.InEpsilon(t, 5.0, e2/e1, 1e-12)
}

func TestWindSeriesCoversOneMartianYear(t *testing.T) {
	trb := NewWindTurbine(5.0, 1)

	require.Len(t, trb.E_ns(), 668)
	assert.GreaterOrEqual(t, trb.Efficiency(), 0.30)
	assert.LessOrEqual(t, trb.Efficiency(), 0.50)
}

func TestWindEnergyWithinSpeedBounds(t *testing.T) {
	const r = 5.0
	a := get_a_swp(r)

	// top of the speed range at full efficiency
	hi := 0.5 * get_rho_a_mars() * a * 7.0 * 7.0 * 7.0 * 0.5 * get_t_sol() * 0.001

	for _, e := range NewWindTurbine(r, 3).E_ns() {
		assert.GreaterOrEqual(t, e, 0.0)
		assert.LessOrEqual(t, e, hi)
	}
}

func TestWindSeriesIsDeterministicForSeed(t *testing.T) {
	e1 := NewWindTurbine(2.0, 11).E_ns()
	e2 := NewWindTurbine(2.0, 11).E_ns()

	assert.Equal(t, e1, e2)
}

func TestSweptArea(t *testing.T) {
	assert.InDelta(t, 78.54, get_a_swp(5.0), 0.01)
}
