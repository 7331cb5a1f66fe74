package handlers

import (
	"net/http"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/api/models"
	"solar-sizing/internal/config"
	"solar-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

// ReportHandler runs the sizing chain against the session's collection.
type ReportHandler struct {
	session *Session
}

func NewReportHandler(session *Session) *ReportHandler {
	return &ReportHandler{session: session}
}

// Run handles POST /api/v1/report
func (h *ReportHandler) Run(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	params, err := buildParameters(req.Params)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_PARAMS", Message: err.Error()},
		})
		return
	}

	var report *analysis.Report
	err = h.session.WithCollection(func(col *model.Collection) error {
		var buildErr error
		report, buildErr = analysis.BuildReport(col, params)
		return buildErr
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ReportResponse{Report: report})
}

// buildParameters reuses the config layer's defaulting and validation so
// JSON requests and YAML configs behave identically.
func buildParameters(p models.SizingParams) (analysis.Parameters, error) {
	cfg := config.Config{Params: config.ParamsConfig{
		BatteryVoltageV:   p.BatteryVoltageV,
		BatteryCapacityAh: p.BatteryCapacityAh,
		AutonomyDays:      p.AutonomyDays,
		DischargeDepth:    p.DischargeDepth,

		PanelPowerW:  p.PanelPowerW,
		PeakSunHours: p.PeakSunHours,

		RegulatorType: p.RegulatorType,

		CableCurrentA:  p.CableCurrentA,
		CableLengthM:   p.CableLengthM,
		MaxDropPercent: p.MaxDropPercent,

		BatteryUnitPrice:  p.BatteryUnitPrice,
		PanelUnitPrice:    p.PanelUnitPrice,
		RegulatorPrice:    p.RegulatorPrice,
		ConverterPrice:    p.ConverterPrice,
		InstallationPrice: p.InstallationPrice,

		ElectricityPricePerKWh: p.ElectricityPricePerKWh,

		CO2FactorKgPerKWh:       p.CO2FactorKgPerKWh,
		TreeAbsorptionKgPerYear: p.TreeAbsorptionKgPerYear,
	}}
	cfg.Params = config.ApplyDefaults(cfg.Params)
	if err := cfg.Validate(); err != nil {
		return analysis.Parameters{}, err
	}
	return cfg.Params.ToParameters(), nil
}
