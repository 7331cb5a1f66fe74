package handlers

import (
	"net/http"

	"solar-sizing/internal/analysis"
	"solar-sizing/internal/api/models"
	"solar-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler handles equipment collection requests.
type EquipmentHandler struct {
	session *Session
}

func NewEquipmentHandler(session *Session) *EquipmentHandler {
	return &EquipmentHandler{session: session}
}

// List handles GET /api/v1/equipment
func (h *EquipmentHandler) List(c *gin.Context) {
	var resp models.EquipmentListResponse
	_ = h.session.WithCollection(func(col *model.Collection) error {
		resp = models.EquipmentListResponse{
			Equipments:    col.Rows(),
			TotalPowerW:   col.TotalPower(),
			DailyEnergyWh: col.TotalEnergy(),
		}
		return nil
	})
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/equipment/:name
func (h *EquipmentHandler) Get(c *gin.Context) {
	name := c.Param("name")
	var (
		eq    model.Equipment
		found bool
	)
	_ = h.session.WithCollection(func(col *model.Collection) error {
		eq, found = col.Find(name)
		return nil
	})
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "equipment not found: " + name},
		})
		return
	}
	c.JSON(http.StatusOK, eq)
}

// Add handles POST /api/v1/equipment
func (h *EquipmentHandler) Add(c *gin.Context) {
	var req models.EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	eq, err := model.NewEquipment(req.Name, req.Power, req.Time, req.StartHour)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.session.WithCollection(func(col *model.Collection) error {
		return col.Add(eq)
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

// Edit handles PUT /api/v1/equipment/:name
func (h *EquipmentHandler) Edit(c *gin.Context) {
	name := c.Param("name")
	var req models.EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	eq, err := model.NewEquipment(req.Name, req.Power, req.Time, req.StartHour)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.session.WithCollection(func(col *model.Collection) error {
		return col.Edit(name, eq)
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// Delete handles DELETE /api/v1/equipment/:name
func (h *EquipmentHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.session.WithCollection(func(col *model.Collection) error {
		return col.Delete(name)
	}); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/v1/equipment
func (h *EquipmentHandler) DeleteAll(c *gin.Context) {
	_ = h.session.WithCollection(func(col *model.Collection) error {
		col.DeleteAll()
		return nil
	})
	c.Status(http.StatusNoContent)
}

// Profile handles GET /api/v1/profile
func (h *EquipmentHandler) Profile(c *gin.Context) {
	var resp models.ProfileResponse
	_ = h.session.WithCollection(func(col *model.Collection) error {
		resp.Profile = col.HourlyProfile()
		resp.Stats = analysis.ComputeProfileStats(resp.Profile)
		return nil
	})
	c.JSON(http.StatusOK, resp)
}
