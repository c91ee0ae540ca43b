package controllers

import (
	"net/http"
	"strings"
	"time"

	"nomada-backend/models"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB       *gorm.DB
	Secret   string
	StaffPIN string
	TokenTTL time.Duration
}

func NewAuthController(db *gorm.DB, secret, staffPIN string) *AuthController {
	return &AuthController{DB: db, Secret: secret, StaffPIN: staffPIN, TokenTTL: 12 * time.Hour}
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type pinPayload struct {
	PIN string `json:"pin"`
}

// Login exchanges admin credentials for a bearer token.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(payload.Password)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := utils.NewAccessToken(ac.Secret, admin.Username, "admin", ac.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":     token.Token,
		"expiresAt": token.Exp,
		"fullName":  admin.FullName,
	})
}

// StaffLogin exchanges the shared staff PIN for a kitchen-scoped token.
// The kitchen display has no per-user accounts.
func (ac *AuthController) StaffLogin(c *gin.Context) {
	var payload pinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.PIN == "" || payload.PIN != ac.StaffPIN {
		utils.JSONError(c, http.StatusUnauthorized, "wrong PIN")
		return
	}

	token, err := utils.NewAccessToken(ac.Secret, "kitchen", "staff", ac.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":     token.Token,
		"expiresAt": token.Exp,
	})
}
