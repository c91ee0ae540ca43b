package controllers

import (
	"net/http"

	"nomada-backend/models"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type TicketController struct {
	Tickets *services.TicketService
}

func NewTicketController(tickets *services.TicketService) *TicketController {
	return &TicketController{Tickets: tickets}
}

func (tc *TicketController) Create(c *gin.Context) {
	var ticket models.MaintenanceTicket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := tc.Tickets.Create(&ticket); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ticket)
}

func (tc *TicketController) List(c *gin.Context) {
	tickets, err := tc.Tickets.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tickets)
}

type ticketStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (tc *TicketController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload ticketStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	ticket, err := tc.Tickets.UpdateStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ticket)
}
