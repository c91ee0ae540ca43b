package controllers

import (
	"net/http"

	"nomada-backend/models"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// ListAvailable hides 86'd items from the guest menu.
func (mc *MenuController) ListAvailable(c *gin.Context) {
	items, err := mc.Menu.GetAvailable()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, items)
}

// menuItemPayload accepts either integer cents or a display price like "$28".
type menuItemPayload struct {
	models.MenuItem
	Price string `json:"price"`
}

func (p *menuItemPayload) resolvePrice() error {
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

func (mc *MenuController) Create(c *gin.Context) {
	var payload menuItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := payload.resolvePrice(); err != nil {
		respondServiceError(c, err)
		return
	}
	if err := mc.Menu.Create(&payload.MenuItem); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payload.MenuItem)
}

func (mc *MenuController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload menuItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := payload.resolvePrice(); err != nil {
		respondServiceError(c, err)
		return
	}
	item, err := mc.Menu.Update(id, payload.MenuItem)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, item)
}

func (mc *MenuController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := mc.Menu.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
