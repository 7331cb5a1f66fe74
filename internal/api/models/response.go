package models

import (
	"time"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/model"
)

// EquipmentListResponse is the tabular projection of the collection plus
// its aggregate totals.
type EquipmentListResponse struct {
	Equipments    []model.Row `json:"equipments"`
	TotalPowerW   int         `json:"total_power_w"`
	DailyEnergyWh float64     `json:"daily_energy_wh"`
}

// ProfileResponse is the fleet hourly load curve with its statistics.
type ProfileResponse struct {
	Profile [model.HoursPerDay]float64 `json:"profile"`
	Stats   analysis.ProfileStats      `json:"stats"`
}

// ReportResponse wraps a full sizing report.
type ReportResponse struct {
	Report *analysis.Report `json:"report"`
}

// ConfigInfo describes one saved equipment configuration.
type ConfigInfo struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at,omitempty"`
}

// ConfigListResponse lists the saved configurations.
type ConfigListResponse struct {
	Configs []ConfigInfo `json:"configs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
