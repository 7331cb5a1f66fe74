// Package economics computes cost, payback and CO2 figures for a sized PV
// installation. Currency is caller-defined; no rounding is applied.
package economics

import "fmt"

// Default emission and absorption factors used when the caller supplies
// none. The grid factor varies by country energy mix; 0.5 kg/kWh is a
// common average. One tree absorbs roughly 21 kg CO2 per year.
const (
	DefaultCO2FactorKgPerKWh       = 0.5
	DefaultTreeAbsorptionKgPerYear = 21.0
)

// CostBreakdown itemizes the system cost.
type CostBreakdown struct {
	BatteryTotal float64 `json:"battery_total"`
	PanelTotal   float64 `json:"panel_total"`
	Converter    float64 `json:"converter"`
	Regulator    float64 `json:"regulator"`
	Installation float64 `json:"installation"`
	Total        float64 `json:"total"`
}

// SystemCost sums the component costs. Converter and installation may be
// zero for a bare sizing estimate.
func SystemCost(batteryCount int, batteryUnitPrice float64, panelCount int, panelUnitPrice, converterPrice, regulatorPrice, installationPrice float64) (CostBreakdown, error) {
	if batteryCount < 0 || panelCount < 0 {
		return CostBreakdown{}, fmt.Errorf("component counts must be >= 0, got %d batteries, %d panels", batteryCount, panelCount)
	}
	if batteryUnitPrice < 0 || panelUnitPrice < 0 || converterPrice < 0 || regulatorPrice < 0 || installationPrice < 0 {
		return CostBreakdown{}, fmt.Errorf("prices must be >= 0")
	}
	b := CostBreakdown{
		BatteryTotal: float64(batteryCount) * batteryUnitPrice,
		PanelTotal:   float64(panelCount) * panelUnitPrice,
		Converter:    converterPrice,
		Regulator:    regulatorPrice,
		Installation: installationPrice,
	}
	b.Total = b.BatteryTotal + b.PanelTotal + b.Converter + b.Regulator + b.Installation
	return b, nil
}

// Savings describes the avoided electricity spend and the payback horizon.
//
// ROIYears is only meaningful when PaysBack is true. A system with zero
// annual savings never breaks even; that outcome is reported as
// PaysBack=false rather than an error or an infinity.
type Savings struct {
	Daily    float64 `json:"daily"`
	Monthly  float64 `json:"monthly"`
	Annual   float64 `json:"annual"`
	ROIYears float64 `json:"roi_years,omitempty"`
	PaysBack bool    `json:"pays_back"`
}

// ROI computes daily/monthly/annual savings and the break-even horizon for
// a system of totalCost covering dailyEnergyKWh at pricePerKWh.
func ROI(totalCost, dailyEnergyKWh, pricePerKWh float64) (Savings, error) {
	if totalCost < 0 {
		return Savings{}, fmt.Errorf("total cost must be >= 0, got %g", totalCost)
	}
	if dailyEnergyKWh < 0 {
		return Savings{}, fmt.Errorf("daily energy must be >= 0 kWh, got %g", dailyEnergyKWh)
	}
	if pricePerKWh < 0 {
		return Savings{}, fmt.Errorf("electricity price must be >= 0, got %g", pricePerKWh)
	}
	s := Savings{
		Daily: dailyEnergyKWh * pricePerKWh,
	}
	s.Monthly = s.Daily * 30
	s.Annual = s.Daily * 365
	if s.Annual > 0 {
		s.ROIYears = totalCost / s.Annual
		s.PaysBack = true
	}
	return s, nil
}

// CO2Impact describes the emissions avoided by the installation.
type CO2Impact struct {
	AvoidedKg      float64 `json:"avoided_kg"`
	AvoidedTons    float64 `json:"avoided_tons"`
	TreeEquivalent float64 `json:"tree_equivalent"`
}

// CO2 computes the emissions avoided for annualEnergyKWh. Pass the package
// defaults for the factors unless the caller configured site-specific ones.
// Zero energy yields zeros, not an error.
func CO2(annualEnergyKWh, co2FactorKgPerKWh, treeAbsorptionKgPerYear float64) (CO2Impact, error) {
	if annualEnergyKWh < 0 {
		return CO2Impact{}, fmt.Errorf("annual energy must be >= 0 kWh, got %g", annualEnergyKWh)
	}
	if co2FactorKgPerKWh < 0 {
		return CO2Impact{}, fmt.Errorf("co2 factor must be >= 0 kg/kWh, got %g", co2FactorKgPerKWh)
	}
	if treeAbsorptionKgPerYear <= 0 {
		return CO2Impact{}, fmt.Errorf("tree absorption must be > 0 kg/year, got %g", treeAbsorptionKgPerYear)
	}
	avoided := annualEnergyKWh * co2FactorKgPerKWh
	return CO2Impact{
		AvoidedKg:      avoided,
		AvoidedTons:    avoided / 1000,
		TreeEquivalent: avoided / treeAbsorptionKgPerYear,
	}, nil
}
