package energy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeIsThreeTimesArea(t *testing.T) {
	for _, a := range []float64{0.0, 0.5, 1.0, 3.7, 120.0} {
		assert.Equal(t, 3.0*a, get_v_hab(a))
	}
}

func TestMolarDensityFollowsIdealGasLaw(t *testing.T) {
	// n/V = p/(R T), evaluated from the constants rather than a literal
	// so a constant change is still covered.
	want := get_p_earth() * get_p_atm() / (get_r_univ() * get_theta_earth())

	assert.InDelta(t, want, get_rho_mol_a(), 1e-12)
	assert.InDelta(t, 41.2, get_rho_mol_a(), 0.5)
}

func TestMolesAndMassChain(t *testing.T) {
	for _, a := range []float64{0.25, 1.0, 42.0} {
		v := get_v_hab(a)
		n := get_n_air(v)
		m := get_m_air(n)

		assert.InDelta(t, v*get_rho_mol_a(), n, 1e-9)
		assert.InDelta(t, n*get_m_mol_a()/1000.0, m, 1e-9)
	}
}

func TestHabitatEnergyEndToEnd(t *testing.T) {
	h := NewHabitatEnergy(1.0)

	require.InDelta(t, 3.0, h.Volume(), 1e-12)

	n := 3.0 * get_p_earth() * get_p_atm() / (get_r_univ() * get_theta_earth())
	assert.InDelta(t, n, h.Moles(), 1e-9)
	assert.InDelta(t, n*28.96/1000.0, h.AirMass(), 1e-9)

	w := n * get_r_univ() * get_theta_earth() * math.Log(get_p_earth()/get_p_mars()) * 0.001
	assert.InDelta(t, w, h.PressurizationWork(), 1e-9)

	q := h.AirMass() * get_c_a() * 83.0 * 0.001
	assert.InDelta(t, q, h.HeatingEnergy(), 1e-9)

	// magnitudes for one square meter of floor
	assert.InDelta(t, 1560.0, h.PressurizationWork(), 20.0)
	assert.InDelta(t, 298.0, h.HeatingEnergy(), 5.0)
}

func TestHabitatEnergiesScaleLinearlyWithArea(t *testing.T) {
	a1, a2 := 2.0, 7.5
	h1 := NewHabitatEnergy(a1)
	h2 := NewHabitatEnergy(a2)

	assert.InEpsilon(t, a2/a1, h2.PressurizationWork()/h1.PressurizationWork(), 1e-12)
	assert.InEpsilon(t, a2/a1, h2.HeatingEnergy()/h1.HeatingEnergy(), 1e-12)
}

func TestZeroAreaNeedsNoEnergy(t *testing.T) {
	h := NewHabitatEnergy(0.0)

	assert.Zero(t, h.PressurizationWork())
	assert.Zero(t, h.HeatingEnergy())
}
