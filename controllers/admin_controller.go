package controllers

import (
	"net/http"

	"nomada-backend/config"
	"nomada-backend/middleware"
	"nomada-backend/services"
	"nomada-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AdminController struct {
	DB       *gorm.DB
	Folios   *services.FolioService
	Sync     *services.SyncService
	CacheCfg config.CacheConfig
	Redis    *redis.Client
}

func NewAdminController(db *gorm.DB, folios *services.FolioService, sync *services.SyncService, cacheCfg config.CacheConfig, rdb *redis.Client) *AdminController {
	return &AdminController{DB: db, Folios: folios, Sync: sync, CacheCfg: cacheCfg, Redis: rdb}
}

func (ac *AdminController) Overview(c *gin.Context) {
	stats, err := ac.Folios.Overview()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// Reset wipes the guest-facing data and reseeds the defaults. The cached
// responses go with it so guests never read pre-reset data.
func (ac *AdminController) Reset(c *gin.Context) {
	if err := config.Reset(ac.DB); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "reset failed")
		return
	}
	middleware.FlushCache(ac.CacheCfg, ac.Redis)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"reset": true})
}

func (ac *AdminController) SyncChannels(c *gin.Context) {
	started := ac.Sync.Start()
	utils.JSONSuccess(c, http.StatusAccepted, gin.H{"started": started, "status": ac.Sync.Status()})
}

func (ac *AdminController) SyncStatus(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ac.Sync.Status())
}
