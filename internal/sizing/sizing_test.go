package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatteryCount_Basic(t *testing.T) {
	// (2400 * 2) / (12 * 200 * 0.5) = 4, no rounding needed.
	n, err := BatteryCount(2400, 12, 200, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestBatteryCount_ExactMatch(t *testing.T) {
	n, err := BatteryCount(1200, 12, 200, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBatteryCount_RoundsUp(t *testing.T) {
	// (500 * 5) / (24 * 100 * 0.5) = 2500 / 1200 = 2.08 -> 3
	n, err := BatteryCount(500, 24, 100, 5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestBatteryCount_ZeroEnergyIsZeroBatteries(t *testing.T) {
	n, err := BatteryCount(0, 12, 200, 2, 0.5)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBatteryCount_DomainErrors(t *testing.T) {
	cases := []struct {
		name                string
		energy, voltage, ah float64
		days                int
		dod                 float64
	}{
		{"zero discharge depth", 1000, 12, 200, 2, 0},
		{"discharge depth above one", 1000, 12, 200, 2, 1.5},
		{"negative energy", -1, 12, 200, 2, 0.5},
		{"zero voltage", 1000, 0, 200, 2, 0.5},
		{"zero capacity", 1000, 12, 0, 2, 0.5},
		{"zero autonomy", 1000, 12, 200, 0, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BatteryCount(tc.energy, tc.voltage, tc.ah, tc.days, tc.dod)
			assert.Error(t, err)
		})
	}
}

func TestPanelCount_Basic(t *testing.T) {
	n, err := PanelCount(3000, 300, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPanelCount_RoundsUp(t *testing.T) {
	n, err := PanelCount(1600, 300, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPanelCount_MoreSunFewerPanels(t *testing.T) {
	high, err := PanelCount(1500, 300, 5.0)
	require.NoError(t, err)
	low, err := PanelCount(1500, 300, 3.0)
	require.NoError(t, err)
	assert.Less(t, high, low)
}

func TestPanelCount_DomainErrors(t *testing.T) {
	_, err := PanelCount(1500, 0, 5.0)
	assert.Error(t, err)
	_, err = PanelCount(1500, 300, 0)
	assert.Error(t, err)
	_, err = PanelCount(1500, 300, -2)
	assert.Error(t, err)
}

func TestRegulator_MPPT(t *testing.T) {
	spec, err := Regulator(600, 12, RegulatorMPPT)
	require.NoError(t, err)
	assert.InDelta(t, 50, spec.NominalCurrentA, 0.001)
	assert.InDelta(t, 62.5, spec.RecommendedCurrentA, 0.001)
	assert.InDelta(t, 600, spec.NominalPowerW, 0.001)
	assert.InDelta(t, 0.98, spec.Efficiency, 0.001)
	assert.Equal(t, RegulatorMPPT, spec.Type)
}

func TestRegulator_PWM(t *testing.T) {
	spec, err := Regulator(600, 12, RegulatorPWM)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, spec.Efficiency, 0.001)
}

func TestRegulator_UnknownType(t *testing.T) {
	_, err := Regulator(600, 12, RegulatorType("FLUX"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown regulator type")
}

func TestRegulator_ZeroVoltage(t *testing.T) {
	_, err := Regulator(600, 0, RegulatorMPPT)
	assert.Error(t, err)
}

func TestCableSection_SelectsNextStandardSize(t *testing.T) {
	// Raw requirement ~47.9 mm2, next standard size is 50.
	spec, err := CableSection(50.0, 10.0, 12, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 50, spec.SectionMM2, 0.001)
	assert.InDelta(t, 2.87, spec.ActualDropPercent, 0.01)
	assert.Less(t, spec.ActualDropPercent, 3.0)
	assert.InDelta(t, 0.3448, spec.ActualDropV, 0.001)
	assert.Equal(t, 63, spec.FuseRatingA)
	assert.InDelta(t, 50, spec.CurrentA, 0.001)
}

func TestCableSection_SmallLoad(t *testing.T) {
	// Raw requirement ~2.39 mm2 -> 2.5.
	spec, err := CableSection(5, 5, 12, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, spec.SectionMM2, 0.001)
}

func TestCableSection_RequirementBeyondTable(t *testing.T) {
	_, err := CableSection(500, 100, 12, 3.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStandardSection)
}

func TestCableSection_DomainErrors(t *testing.T) {
	_, err := CableSection(0, 10, 12, 3.0)
	assert.Error(t, err)
	_, err = CableSection(-5, 10, 12, 3.0)
	assert.Error(t, err)
	_, err = CableSection(50, -1, 12, 3.0)
	assert.Error(t, err)
	_, err = CableSection(50, 10, 12, 0)
	assert.Error(t, err)
	_, err = CableSection(50, 10, 0, 3.0)
	assert.Error(t, err)
}

func TestFuseRating_NeverBelowCurrent(t *testing.T) {
	for _, current := range []float64{0.5, 3, 10, 15.9, 40, 63, 199, 210, 400} {
		rating := FuseRating(current)
		assert.GreaterOrEqual(t, float64(rating), current, "current %g", current)
	}
}

func TestFuseRating_StandardSteps(t *testing.T) {
	assert.Equal(t, 5, FuseRating(2))
	assert.Equal(t, 16, FuseRating(10))    // 12.5 A target
	assert.Equal(t, 63, FuseRating(50))    // 62.5 A target
	assert.Equal(t, 250, FuseRating(200))  // 250 A target
	assert.Equal(t, 500, FuseRating(400))  // beyond table: next 25 A step
}

func TestFuseRating_Monotonic(t *testing.T) {
	prev := 0
	for current := 1.0; current < 300; current += 1.0 {
		r := FuseRating(current)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}
