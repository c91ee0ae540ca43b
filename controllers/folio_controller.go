package controllers

import (
	"net/http"

	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type FolioController struct {
	Folios *services.FolioService
}

func NewFolioController(folios *services.FolioService) *FolioController {
	return &FolioController{Folios: folios}
}

// Get returns the running bill for a room's checked-in stay.
func (fc *FolioController) Get(c *gin.Context) {
	folio, err := fc.Folios.GetForRoom(c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, folio)
}
