// Package analysis composes the individual sizing and economics results
// into a full system report for a collection of loads.
package analysis

import (
	"errors"

	"solar-sizing/internal/economics"
	"solar-sizing/internal/model"
	"solar-sizing/internal/sizing"
)

// ErrEmptyCollection is returned when a report is requested for a
// collection with no equipment.
var ErrEmptyCollection = errors.New("equipment collection is empty")

// Parameters bundles the caller-supplied engineering and pricing inputs for
// a report. It is configuration, not stored state.
type Parameters struct {
	BatteryVoltageV   float64
	BatteryCapacityAh float64
	AutonomyDays      int
	DischargeDepth    float64

	PanelPowerW  float64
	PeakSunHours float64

	RegulatorType sizing.RegulatorType

	// CableCurrentA overrides the cable operating current; zero means
	// use the regulator's recommended current.
	CableCurrentA  float64
	CableLengthM   float64
	MaxDropPercent float64

	BatteryUnitPrice  float64
	PanelUnitPrice    float64
	RegulatorPrice    float64
	ConverterPrice    float64
	InstallationPrice float64

	ElectricityPricePerKWh float64

	// Zero values fall back to the economics package defaults.
	CO2FactorKgPerKWh       float64
	TreeAbsorptionKgPerYear float64
}

// Report is the complete sizing and economics result for one fleet of
// loads. All intermediate figures are kept so the presentation layer can
// show its own breakdowns.
type Report struct {
	TotalPowerW    int     `json:"total_power_w"`
	DailyEnergyWh  float64 `json:"daily_energy_wh"`
	DailyEnergyKWh float64 `json:"daily_energy_kwh"`

	BatteryCount int     `json:"battery_count"`
	PanelCount   int     `json:"panel_count"`
	PVPowerW     float64 `json:"pv_power_w"`

	Regulator sizing.RegulatorSpec `json:"regulator"`
	Cable     sizing.CableSpec     `json:"cable"`

	Costs   economics.CostBreakdown `json:"costs"`
	Savings economics.Savings       `json:"savings"`
	CO2     economics.CO2Impact     `json:"co2"`

	Profile [model.HoursPerDay]float64 `json:"profile"`
	Stats   ProfileStats               `json:"stats"`
}

// BuildReport runs the full sizing chain for the collection: totals, battery
// bank, panel array, charge controller, cabling, then costs, savings and CO2.
// The cable is sized for the regulator's recommended current unless the
// parameters override it. Any domain error from an engine function aborts
// the report; no partial result is returned.
func BuildReport(c *model.Collection, p Parameters) (*Report, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCollection
	}

	r := &Report{
		TotalPowerW:   c.TotalPower(),
		DailyEnergyWh: c.TotalEnergy(),
		Profile:       c.HourlyProfile(),
	}
	r.DailyEnergyKWh = r.DailyEnergyWh / 1000
	r.Stats = ComputeProfileStats(r.Profile)

	var err error
	r.BatteryCount, err = sizing.BatteryCount(r.DailyEnergyWh, p.BatteryVoltageV, p.BatteryCapacityAh, p.AutonomyDays, p.DischargeDepth)
	if err != nil {
		return nil, err
	}

	r.PanelCount, err = sizing.PanelCount(r.DailyEnergyWh, p.PanelPowerW, p.PeakSunHours)
	if err != nil {
		return nil, err
	}
	r.PVPowerW = float64(r.PanelCount) * p.PanelPowerW

	r.Regulator, err = sizing.Regulator(r.PVPowerW, p.BatteryVoltageV, p.RegulatorType)
	if err != nil {
		return nil, err
	}

	cableCurrent := p.CableCurrentA
	if cableCurrent == 0 {
		cableCurrent = r.Regulator.RecommendedCurrentA
	}
	r.Cable, err = sizing.CableSection(cableCurrent, p.CableLengthM, p.BatteryVoltageV, p.MaxDropPercent)
	if err != nil {
		return nil, err
	}

	r.Costs, err = economics.SystemCost(r.BatteryCount, p.BatteryUnitPrice, r.PanelCount, p.PanelUnitPrice, p.ConverterPrice, p.RegulatorPrice, p.InstallationPrice)
	if err != nil {
		return nil, err
	}

	r.Savings, err = economics.ROI(r.Costs.Total, r.DailyEnergyKWh, p.ElectricityPricePerKWh)
	if err != nil {
		return nil, err
	}

	co2Factor := p.CO2FactorKgPerKWh
	if co2Factor == 0 {
		co2Factor = economics.DefaultCO2FactorKgPerKWh
	}
	treeAbsorption := p.TreeAbsorptionKgPerYear
	if treeAbsorption == 0 {
		treeAbsorption = economics.DefaultTreeAbsorptionKgPerYear
	}
	r.CO2, err = economics.CO2(r.DailyEnergyKWh*365, co2Factor, treeAbsorption)
	if err != nil {
		return nil, err
	}

	return r, nil
}
