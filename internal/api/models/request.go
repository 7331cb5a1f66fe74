package models

// EquipmentRequest is the body for adding or editing an equipment.
type EquipmentRequest struct {
	Name      string  `json:"name" binding:"required"`
	Power     int     `json:"power" binding:"required"`
	Time      float64 `json:"time" binding:"required"`
	StartHour int     `json:"start_hour"`
}

// ReportRequest carries the sizing and pricing parameters for a report run.
// Optional fields fall back to the same defaults as the YAML config layer.
type ReportRequest struct {
	Params SizingParams `json:"params" binding:"required"`
}

// SizingParams mirrors the YAML parameter bundle for JSON requests.
type SizingParams struct {
	BatteryVoltageV   float64 `json:"battery_voltage_v" binding:"required"`
	BatteryCapacityAh float64 `json:"battery_capacity_ah" binding:"required"`
	AutonomyDays      int     `json:"autonomy_days,omitempty"`
	DischargeDepth    float64 `json:"discharge_depth" binding:"required"`

	PanelPowerW  float64 `json:"panel_power_w" binding:"required"`
	PeakSunHours float64 `json:"peak_sun_hours" binding:"required"`

	RegulatorType string `json:"regulator_type,omitempty"`

	CableCurrentA  float64 `json:"cable_current_a,omitempty"`
	CableLengthM   float64 `json:"cable_length_m"`
	MaxDropPercent float64 `json:"max_drop_percent,omitempty"`

	BatteryUnitPrice  float64 `json:"battery_unit_price,omitempty"`
	PanelUnitPrice    float64 `json:"panel_unit_price,omitempty"`
	RegulatorPrice    float64 `json:"regulator_price,omitempty"`
	ConverterPrice    float64 `json:"converter_price,omitempty"`
	InstallationPrice float64 `json:"installation_price,omitempty"`

	ElectricityPricePerKWh float64 `json:"electricity_price_per_kwh,omitempty"`

	CO2FactorKgPerKWh       float64 `json:"co2_factor_kg_per_kwh,omitempty"`
	TreeAbsorptionKgPerYear float64 `json:"tree_absorption_kg_per_year,omitempty"`
}
