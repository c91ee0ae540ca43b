package controllers

import (
	"errors"
	"log"
	"net/http"

	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates the service error taxonomy into HTTP
// statuses. Unknown errors are logged and surfaced as 500 rather than
// swallowed.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, utils.ErrInvalidPrice):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrWrongDoorCode):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	default:
		log.Printf("❌ internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
