// Package sizing computes component sizes for an off-grid PV installation:
// battery bank, panel array, charge controller and cabling.
//
// Every count it produces rounds up. Under-provisioning a safety-critical
// component is never acceptable, so fractional remainders always go toward
// more capacity.
package sizing

import (
	"errors"
	"fmt"
	"math"
)

// copperResistivity is the resistivity of copper at 20 degC, in ohm*mm^2/m.
const copperResistivity = 0.01724

// safetyMargin is the fixed 25% current margin applied to controller and
// fuse ratings.
const safetyMargin = 1.25

// standardSections lists the IEC standard copper conductor sections in mm^2,
// ascending.
var standardSections = []float64{1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240}

// standardFuseRatings lists conventional DC breaker steps in A, ascending.
var standardFuseRatings = []int{5, 10, 16, 20, 25, 32, 40, 50, 63, 80, 100, 125, 160, 200, 250}

// ErrNoStandardSection is returned when the required conductor section
// exceeds the largest standard size; the table is never extrapolated.
var ErrNoStandardSection = errors.New("no standard cable section large enough")

// RegulatorType selects the charge-controller technology.
type RegulatorType string

const (
	RegulatorMPPT RegulatorType = "MPPT"
	RegulatorPWM  RegulatorType = "PWM"
)

// Efficiency returns the conversion efficiency for the controller type.
func (t RegulatorType) Efficiency() (float64, error) {
	switch t {
	case RegulatorMPPT:
		return 0.98, nil
	case RegulatorPWM:
		return 0.85, nil
	default:
		return 0, fmt.Errorf("unknown regulator type: %q", t)
	}
}

// BatteryCount returns the number of batteries needed to cover
// dailyEnergyWh for autonomyDays, given per-battery voltage, capacity and
// usable depth of discharge.
//
// Formula: ceil((E * A) / (V * C * DoD)). Zero daily energy yields zero
// batteries.
func BatteryCount(dailyEnergyWh, voltageV, capacityAh float64, autonomyDays int, dischargeDepth float64) (int, error) {
	if dailyEnergyWh < 0 {
		return 0, fmt.Errorf("daily energy must be >= 0 Wh, got %g", dailyEnergyWh)
	}
	if voltageV <= 0 {
		return 0, fmt.Errorf("battery voltage must be > 0 V, got %g", voltageV)
	}
	if capacityAh <= 0 {
		return 0, fmt.Errorf("battery capacity must be > 0 Ah, got %g", capacityAh)
	}
	if autonomyDays < 1 {
		return 0, fmt.Errorf("autonomy must be >= 1 day, got %d", autonomyDays)
	}
	if dischargeDepth <= 0 || dischargeDepth > 1 {
		return 0, fmt.Errorf("invalid discharge depth: must be in (0, 1], got %g", dischargeDepth)
	}
	needed := dailyEnergyWh * float64(autonomyDays)
	perBattery := voltageV * capacityAh * dischargeDepth
	return int(math.Ceil(needed / perBattery)), nil
}

// PanelCount returns the number of panels needed to produce dailyEnergyWh
// given the unit panel power and the site's peak sun hours.
//
// Formula: ceil(E / (P * H)). Zero daily energy yields zero panels.
func PanelCount(dailyEnergyWh, panelPowerW, peakSunHours float64) (int, error) {
	if dailyEnergyWh < 0 {
		return 0, fmt.Errorf("daily energy must be >= 0 Wh, got %g", dailyEnergyWh)
	}
	if panelPowerW <= 0 {
		return 0, fmt.Errorf("panel power must be > 0 W, got %g", panelPowerW)
	}
	if peakSunHours <= 0 {
		return 0, fmt.Errorf("peak sun hours must be > 0 h, got %g", peakSunHours)
	}
	return int(math.Ceil(dailyEnergyWh / (panelPowerW * peakSunHours))), nil
}

// RegulatorSpec describes the charge controller required for a PV array.
// RecommendedCurrentA carries the raw 25% safety margin; rounding it up to a
// standard controller size is left to the presentation layer.
type RegulatorSpec struct {
	NominalCurrentA     float64       `json:"nominal_current_a"`
	RecommendedCurrentA float64       `json:"recommended_current_a"`
	NominalPowerW       float64       `json:"nominal_power_w"`
	Efficiency          float64       `json:"efficiency"`
	Type                RegulatorType `json:"type"`
}

// Regulator sizes the charge controller for a PV array feeding a battery
// bank at batteryVoltageV.
func Regulator(pvPowerW, batteryVoltageV float64, typ RegulatorType) (RegulatorSpec, error) {
	if pvPowerW < 0 {
		return RegulatorSpec{}, fmt.Errorf("pv power must be >= 0 W, got %g", pvPowerW)
	}
	if batteryVoltageV <= 0 {
		return RegulatorSpec{}, fmt.Errorf("battery voltage must be > 0 V, got %g", batteryVoltageV)
	}
	eff, err := typ.Efficiency()
	if err != nil {
		return RegulatorSpec{}, err
	}
	nominal := pvPowerW / batteryVoltageV
	return RegulatorSpec{
		NominalCurrentA:     nominal,
		RecommendedCurrentA: nominal * safetyMargin,
		NominalPowerW:       pvPowerW,
		Efficiency:          eff,
		Type:                typ,
	}, nil
}

// CableSpec describes the selected conductor for a cable run.
type CableSpec struct {
	SectionMM2        float64 `json:"section_mm2"`
	ActualDropV       float64 `json:"actual_drop_v"`
	ActualDropPercent float64 `json:"actual_drop_percent"`
	FuseRatingA       int     `json:"fuse_rating_a"`
	CurrentA          float64 `json:"current_a"`
}

// CableSection sizes a round-trip copper conductor so the voltage drop stays
// under maxDropPercent of voltageV.
//
// Required section: S = (2 * rho * I * L) / dVmax, with rho the copper
// resistivity and the factor 2 for outbound + return conductor. The smallest
// standard IEC section >= S is selected and the drop recomputed with it, so
// the reported drop is always <= the nominal maximum.
func CableSection(currentA, lengthM, voltageV, maxDropPercent float64) (CableSpec, error) {
	if currentA <= 0 {
		return CableSpec{}, fmt.Errorf("current must be > 0 A, got %g", currentA)
	}
	if lengthM < 0 {
		return CableSpec{}, fmt.Errorf("cable length must be >= 0 m, got %g", lengthM)
	}
	if voltageV <= 0 {
		return CableSpec{}, fmt.Errorf("system voltage must be > 0 V, got %g", voltageV)
	}
	if maxDropPercent <= 0 {
		return CableSpec{}, fmt.Errorf("max voltage drop must be > 0 %%, got %g", maxDropPercent)
	}

	maxDropV := voltageV * maxDropPercent / 100
	required := (2 * copperResistivity * currentA * lengthM) / maxDropV

	section, ok := nextStandardSection(required)
	if !ok {
		return CableSpec{}, fmt.Errorf("%w: need %.1f mm2, largest standard is %.0f mm2",
			ErrNoStandardSection, required, standardSections[len(standardSections)-1])
	}

	actualDropV := (2 * copperResistivity * currentA * lengthM) / section
	return CableSpec{
		SectionMM2:        section,
		ActualDropV:       actualDropV,
		ActualDropPercent: actualDropV / voltageV * 100,
		FuseRatingA:       FuseRating(currentA),
		CurrentA:          currentA,
	}, nil
}

func nextStandardSection(requiredMM2 float64) (float64, bool) {
	for _, s := range standardSections {
		if s >= requiredMM2 {
			return s, true
		}
	}
	return 0, false
}

// FuseRating picks the smallest conventional breaker step that covers the
// operating current plus the 25% safety margin. Beyond the largest table
// entry the rating rounds up to the next 25 A step. The result is never
// below the input current.
func FuseRating(currentA float64) int {
	target := currentA * safetyMargin
	for _, r := range standardFuseRatings {
		if float64(r) >= target {
			return r
		}
	}
	return int(math.Ceil(target/25)) * 25
}
