package controllers

import (
	"net/http"

	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	Requests *services.RequestService
}

func NewRequestController(requests *services.RequestService) *RequestController {
	return &RequestController{Requests: requests}
}

type createRequestPayload struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Details    string `json:"details"`
}

func (rc *RequestController) Create(c *gin.Context) {
	var payload createRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	req, err := rc.Requests.Create(payload.RoomNumber, payload.Type, payload.Title, payload.Details)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, req)
}

func (rc *RequestController) List(c *gin.Context) {
	requests, err := rc.Requests.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, requests)
}

type requestStatusPayload struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (rc *RequestController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload requestStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	req, err := rc.Requests.UpdateStatus(id, payload.Status, payload.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, req)
}
