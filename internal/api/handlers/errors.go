package handlers

import (
	"errors"
	"net/http"

	"solar-sizing/internal/api/models"
	"solar-sizing/internal/data"
	"solar-sizing/internal/model"

	"github.com/gin-gonic/gin"
)

// respondError maps the engine error taxonomy to HTTP statuses: duplicate
// names conflict, missing names are not found, everything else is a bad
// request.
func respondError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	code := "INVALID_REQUEST"
	switch {
	case errors.Is(err, model.ErrDuplicateName):
		status = http.StatusConflict
		code = "DUPLICATE_NAME"
	case errors.Is(err, model.ErrNotFound), errors.Is(err, data.ErrConfigNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
	case errors.Is(err, model.ErrInvalidEquipment):
		code = "INVALID_EQUIPMENT"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
