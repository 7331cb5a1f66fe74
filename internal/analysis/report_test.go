package analysis

import (
	"testing"

	"solar-sizing/internal/model"
	"solar-sizing/internal/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection(t *testing.T) *model.Collection {
	t.Helper()
	c := model.NewCollection()
	fridge, err := model.NewEquipment("Fridge", 150, 8, 0)
	require.NoError(t, err)
	tv, err := model.NewEquipment("TV", 100, 3, 18)
	require.NoError(t, err)
	require.NoError(t, c.Add(fridge))
	require.NoError(t, c.Add(tv))
	return c
}

func testParameters() Parameters {
	return Parameters{
		BatteryVoltageV:   12,
		BatteryCapacityAh: 200,
		AutonomyDays:      1,
		DischargeDepth:    0.5,

		PanelPowerW:  300,
		PeakSunHours: 5,

		RegulatorType: sizing.RegulatorMPPT,

		CableLengthM:   5,
		MaxDropPercent: 3,

		BatteryUnitPrice:       200,
		PanelUnitPrice:         150,
		RegulatorPrice:         100,
		ElectricityPricePerKWh: 0.2,
	}
}

func TestComputeProfileStats(t *testing.T) {
	var profile [model.HoursPerDay]float64
	profile[7] = 120
	profile[19] = 260
	profile[20] = 260

	stats := ComputeProfileStats(profile)
	assert.InDelta(t, 260, stats.PeakW, 0.001)
	assert.Equal(t, 19, stats.PeakHour, "tie keeps the earliest hour")
	assert.InDelta(t, (120+260+260)/24.0, stats.AverageW, 0.001)
}

func TestBuildReport_FullChain(t *testing.T) {
	report, err := BuildReport(testCollection(t), testParameters())
	require.NoError(t, err)

	assert.Equal(t, 250, report.TotalPowerW)
	assert.InDelta(t, 1500, report.DailyEnergyWh, 0.001)
	assert.InDelta(t, 1.5, report.DailyEnergyKWh, 0.001)

	// 1500 / (12 * 200 * 0.5) = 1.25 -> 2 batteries.
	assert.Equal(t, 2, report.BatteryCount)
	// 1500 / (300 * 5) = 1 panel.
	assert.Equal(t, 1, report.PanelCount)
	assert.InDelta(t, 300, report.PVPowerW, 0.001)

	assert.InDelta(t, 25, report.Regulator.NominalCurrentA, 0.001)
	assert.InDelta(t, 31.25, report.Regulator.RecommendedCurrentA, 0.001)

	// Cable sized for the regulator's recommended current.
	assert.InDelta(t, 31.25, report.Cable.CurrentA, 0.001)
	assert.InDelta(t, 16, report.Cable.SectionMM2, 0.001)
	assert.Equal(t, 40, report.Cable.FuseRatingA)

	assert.InDelta(t, 2*200+1*150+100, report.Costs.Total, 0.001)

	assert.InDelta(t, 0.3, report.Savings.Daily, 0.001)
	require.True(t, report.Savings.PaysBack)
	assert.InDelta(t, 650/(0.3*365), report.Savings.ROIYears, 0.001)

	// Annual energy 547.5 kWh at the default 0.5 kg/kWh factor.
	assert.InDelta(t, 273.75, report.CO2.AvoidedKg, 0.001)
	assert.InDelta(t, 273.75/21, report.CO2.TreeEquivalent, 0.001)

	// Fridge (0h-7h) and TV (18h-20h) never overlap; the peak is the fridge.
	assert.InDelta(t, 150, report.Stats.PeakW, 0.001)
	assert.Equal(t, 0, report.Stats.PeakHour)
}

func TestBuildReport_CableCurrentOverride(t *testing.T) {
	p := testParameters()
	p.CableCurrentA = 50

	report, err := BuildReport(testCollection(t), p)
	require.NoError(t, err)
	assert.InDelta(t, 50, report.Cable.CurrentA, 0.001)
}

func TestBuildReport_EmptyCollection(t *testing.T) {
	_, err := BuildReport(model.NewCollection(), testParameters())
	assert.ErrorIs(t, err, ErrEmptyCollection)
}

func TestBuildReport_DomainErrorAborts(t *testing.T) {
	p := testParameters()
	p.DischargeDepth = 0

	report, err := BuildReport(testCollection(t), p)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestBuildReport_ProfileMatchesCollection(t *testing.T) {
	c := testCollection(t)
	report, err := BuildReport(c, testParameters())
	require.NoError(t, err)
	assert.Equal(t, c.HourlyProfile(), report.Profile)
}
