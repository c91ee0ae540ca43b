package controllers

import (
	"net/http"

	"nomada-backend/models"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{Activities: activities}
}

func (ac *ActivityController) List(c *gin.Context) {
	activities, err := ac.Activities.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, activities)
}

type activityPayload struct {
	models.Activity
	Price string `json:"price"`
}

func (p *activityPayload) resolvePrice() error {
	if p.Price == "" {
		return nil
	}
	cents, err := utils.ParsePriceCents(p.Price)
	if err != nil {
		return err
	}
	p.PriceCents = cents
	return nil
}

func (ac *ActivityController) Create(c *gin.Context) {
	var payload activityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := payload.resolvePrice(); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ac.Activities.Create(&payload.Activity); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payload.Activity)
}

func (ac *ActivityController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload activityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := payload.resolvePrice(); err != nil {
		respondServiceError(c, err)
		return
	}
	activity, err := ac.Activities.Update(id, payload.Activity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, activity)
}

func (ac *ActivityController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.Activities.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
