package controllers

import (
	"net/http"

	"nomada-backend/models"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type PromotionController struct {
	Promotions *services.PromotionService
}

func NewPromotionController(promotions *services.PromotionService) *PromotionController {
	return &PromotionController{Promotions: promotions}
}

// ListActive is the guest-facing feed; inactive promotions stay hidden.
func (pc *PromotionController) ListActive(c *gin.Context) {
	promos, err := pc.Promotions.GetActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promos)
}

func (pc *PromotionController) List(c *gin.Context) {
	promos, err := pc.Promotions.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promos)
}

func (pc *PromotionController) Create(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := pc.Promotions.Create(&promo); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, promo)
}

func (pc *PromotionController) Toggle(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	promo, err := pc.Promotions.Toggle(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promo)
}

func (pc *PromotionController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := pc.Promotions.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
