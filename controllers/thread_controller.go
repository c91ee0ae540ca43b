package controllers

import (
	"net/http"

	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type ThreadController struct {
	Threads *services.ThreadService
}

func NewThreadController(threads *services.ThreadService) *ThreadController {
	return &ThreadController{Threads: threads}
}

func (tc *ThreadController) List(c *gin.Context) {
	threads, err := tc.Threads.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, threads)
}

type sendMessagePayload struct {
	Sender string `json:"sender"`
	Text   string `json:"text" binding:"required"`
}

func (tc *ThreadController) SendMessage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload sendMessagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	msg, err := tc.Threads.SendMessage(id, payload.Sender, payload.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, msg)
}
