package controllers

import (
	"net/http"
	"strings"

	"nomada-backend/models"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db}
}

func (sc *SettingsController) Get(c *gin.Context) {
	var settings models.HotelSetting
	if err := sc.DB.First(&settings).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "hotel settings missing")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}

type settingsPayload struct {
	Name     *string  `json:"name"`
	Currency *string  `json:"currency"`
	TaxRate  *float64 `json:"taxRate"`
	Email    *string  `json:"email"`
	Address  *string  `json:"address"`
	Phone    *string  `json:"phone"`
}

// Update patches the singleton row; omitted fields keep their value.
func (sc *SettingsController) Update(c *gin.Context) {
	var payload settingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	updates := map[string]interface{}{}
	if payload.Name != nil && strings.TrimSpace(*payload.Name) != "" {
		updates["name"] = strings.TrimSpace(*payload.Name)
	}
	if payload.Currency != nil {
		updates["currency"] = *payload.Currency
	}
	if payload.TaxRate != nil {
		if *payload.TaxRate < 0 || *payload.TaxRate >= 1 {
			utils.JSONError(c, http.StatusBadRequest, "tax rate must be in [0, 1)")
			return
		}
		updates["tax_rate"] = *payload.TaxRate
	}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Address != nil {
		updates["address"] = *payload.Address
	}
	if payload.Phone != nil {
		updates["phone"] = *payload.Phone
	}

	var settings models.HotelSetting
	if err := sc.DB.First(&settings).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "hotel settings missing")
		return
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(&settings).Updates(updates).Error; err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to update settings")
			return
		}
	}
	utils.JSONSuccess(c, http.StatusOK, settings)
}
