package handlers

import (
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/data"
	"solar-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

// ConfigsHandler saves and restores named equipment configurations.
type ConfigsHandler struct {
	session *Session
	store   *data.ConfigStore
}

func NewConfigsHandler(session *Session, store *data.ConfigStore) *ConfigsHandler {
	return &ConfigsHandler{session: session, store: store}
}

// List handles GET /api/v1/configs
func (h *ConfigsHandler) List(c *gin.Context) {
	names, err := h.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "STORE_ERROR", Message: err.Error()},
		})
		return
	}
	resp := models.ConfigListResponse{Configs: []models.ConfigInfo{}}
	for _, n := range names {
		resp.Configs = append(resp.Configs, models.ConfigInfo{Name: n})
	}
	c.JSON(http.StatusOK, resp)
}

// Save handles POST /api/v1/configs/:name — persists the current collection.
func (h *ConfigsHandler) Save(c *gin.Context) {
	name := c.Param("name")
	if err := h.session.WithCollection(func(col *model.Collection) error {
		return h.store.Save(name, col)
	}); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ConfigInfo{Name: name})
}

// Load handles POST /api/v1/configs/:name/load — replaces the current
// collection with the saved one.
func (h *ConfigsHandler) Load(c *gin.Context) {
	name := c.Param("name")
	col, err := h.store.Load(name)
	if err != nil {
		respondError(c, err)
		return
	}
	h.session.Replace(col)
	c.JSON(http.StatusOK, models.EquipmentListResponse{
		Equipments:    col.Rows(),
		TotalPowerW:   col.TotalPower(),
		DailyEnergyWh: col.TotalEnergy(),
	})
}

// Delete handles DELETE /api/v1/configs/:name
func (h *ConfigsHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if err := h.store.Delete(name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
