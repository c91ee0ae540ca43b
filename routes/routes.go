package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"nomada-backend/config"
	"nomada-backend/controllers"
	"nomada-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Rooms      *controllers.RoomController
	Bookings   *controllers.BookingController
	Orders     *controllers.OrderController
	Menu       *controllers.MenuController
	Requests   *controllers.RequestController
	Tickets    *controllers.TicketController
	Threads    *controllers.ThreadController
	Activities *controllers.ActivityController
	Promotions *controllers.PromotionController
	Settings   *controllers.SettingsController
	Folios     *controllers.FolioController
	Admin      *controllers.AdminController
}

// SetupRouter wires three surfaces: the open guest portal, the PIN-gated
// kitchen display, and the JWT-protected admin dashboard.
func SetupRouter(ctrl Controllers, jwtSecret string, cacheCfg config.CacheConfig, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.POST("/auth/login", ctrl.Auth.Login)
	api.POST("/auth/staff", ctrl.Auth.StaffLogin)

	// Guest portal: open endpoints the in-room tablet hits. Read-heavy
	// catalog GETs sit behind the response cache.
	guest := api.Group("")
	{
		cached := guest.Group("", middleware.ResponseCache(cacheCfg, rdb))
		{
			cached.GET("/menu", ctrl.Menu.ListAvailable)
			cached.GET("/activities", ctrl.Activities.List)
			cached.GET("/promotions", ctrl.Promotions.ListActive)
		}

		guest.GET("/settings", ctrl.Settings.Get)
		guest.POST("/orders", ctrl.Orders.Place)
		guest.GET("/rooms/:number/orders", ctrl.Orders.ListForRoom)
		guest.GET("/rooms/:number/folio", ctrl.Folios.Get)
		guest.POST("/rooms/:number/unlock", ctrl.Bookings.Unlock)
		guest.POST("/requests", ctrl.Requests.Create)
		guest.GET("/bookings/availability", ctrl.Bookings.Availability)
	}

	// Kitchen display: shared staff token from the PIN exchange.
	kitchen := api.Group("/kitchen", middleware.JWTAuth(jwtSecret), middleware.RequireRole("staff", "admin"))
	{
		kitchen.GET("/orders", ctrl.Orders.List)
		kitchen.PATCH("/orders/:id/status", ctrl.Orders.UpdateStatus)
	}

	// Admin dashboard: full JWT auth.
	admin := api.Group("/admin", middleware.JWTAuth(jwtSecret), middleware.RequireRole("admin"))
	{
		admin.GET("/rooms", ctrl.Rooms.List)
		admin.POST("/rooms", ctrl.Rooms.Create)
		admin.PATCH("/rooms/:number/status", ctrl.Rooms.UpdateStatus)

		admin.GET("/bookings", ctrl.Bookings.List)
		admin.POST("/bookings", ctrl.Bookings.Create)
		admin.GET("/bookings/:id", ctrl.Bookings.Get)
		admin.PATCH("/bookings/:id/status", ctrl.Bookings.UpdateStatus)
		admin.POST("/bookings/:id/sign-contract", ctrl.Bookings.SignContract)
		admin.POST("/bookings/:id/verify-identity", ctrl.Bookings.VerifyIdentity)
		admin.POST("/bookings/:id/deposit", ctrl.Bookings.MarkDepositPaid)
		admin.POST("/bookings/:id/door-code", ctrl.Bookings.IssueDoorCode)

		admin.GET("/menu", ctrl.Menu.List)
		admin.POST("/menu", ctrl.Menu.Create)
		admin.PUT("/menu/:id", ctrl.Menu.Update)
		admin.DELETE("/menu/:id", ctrl.Menu.Delete)

		admin.GET("/requests", ctrl.Requests.List)
		admin.PATCH("/requests/:id/status", ctrl.Requests.UpdateStatus)

		admin.GET("/tickets", ctrl.Tickets.List)
		admin.POST("/tickets", ctrl.Tickets.Create)
		admin.PATCH("/tickets/:id/status", ctrl.Tickets.UpdateStatus)

		admin.GET("/threads", ctrl.Threads.List)
		admin.POST("/threads/:id/messages", ctrl.Threads.SendMessage)

		admin.POST("/activities", ctrl.Activities.Create)
		admin.PUT("/activities/:id", ctrl.Activities.Update)
		admin.DELETE("/activities/:id", ctrl.Activities.Delete)

		admin.GET("/promotions", ctrl.Promotions.List)
		admin.POST("/promotions", ctrl.Promotions.Create)
		admin.PATCH("/promotions/:id/toggle", ctrl.Promotions.Toggle)
		admin.DELETE("/promotions/:id", ctrl.Promotions.Delete)

		admin.PUT("/settings", ctrl.Settings.Update)

		admin.GET("/stats/overview", ctrl.Admin.Overview)
		admin.POST("/sync", ctrl.Admin.SyncChannels)
		admin.GET("/sync", ctrl.Admin.SyncStatus)
		admin.POST("/reset", ctrl.Admin.Reset)
	}

	return r
}
