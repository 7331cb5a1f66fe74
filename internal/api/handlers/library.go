package handlers

import (
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/data"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves the static equipment catalog.
type LibraryHandler struct {
	libraryPath string
}

func NewLibraryHandler(libraryPath string) *LibraryHandler {
	if libraryPath == "" {
		libraryPath = data.GetDefaultLibraryPath()
	}
	return &LibraryHandler{libraryPath: libraryPath}
}

// Get handles GET /api/v1/library
func (h *LibraryHandler) Get(c *gin.Context) {
	lib, err := data.LoadLibrary(h.libraryPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "LIBRARY_ERROR", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, lib)
}
