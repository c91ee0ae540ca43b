package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"nomada-backend/config"
	"nomada-backend/controllers"
	"nomada-backend/queue"
	"nomada-backend/routes"
	"nomada-backend/services"
	"nomada-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}
	staffPIN := utils.EnvOrDefault("STAFF_PIN", "0000")

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connected, schema migrated, defaults seeded")

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("⚠️  Redis unreachable, response cache disabled")
	} else {
		log.Println("✅ Redis connected")
	}
	cacheCfg := config.LoadCacheConfig()

	publisher := queue.NewPublisher()

	// Services
	bookingService := services.NewBookingService(db)
	roomService := services.NewRoomService(db)
	orderService := services.NewOrderService(db, publisher)
	menuService := services.NewMenuService(db)
	requestService := services.NewRequestService(db)
	ticketService := services.NewTicketService(db)
	threadService := services.NewThreadService(db)
	activityService := services.NewActivityService(db)
	promotionService := services.NewPromotionService(db)
	folioService := services.NewFolioService(db)
	syncService := services.NewSyncService()

	// Controllers
	ctrl := routes.Controllers{
		Auth:       controllers.NewAuthController(db, jwtSecret, staffPIN),
		Rooms:      controllers.NewRoomController(roomService),
		Bookings:   controllers.NewBookingController(bookingService),
		Orders:     controllers.NewOrderController(orderService),
		Menu:       controllers.NewMenuController(menuService),
		Requests:   controllers.NewRequestController(requestService),
		Tickets:    controllers.NewTicketController(ticketService),
		Threads:    controllers.NewThreadController(threadService),
		Activities: controllers.NewActivityController(activityService),
		Promotions: controllers.NewPromotionController(promotionService),
		Settings:   controllers.NewSettingsController(db),
		Folios:     controllers.NewFolioController(folioService),
		Admin:      controllers.NewAdminController(db, folioService, syncService, cacheCfg, rdb),
	}

	router := routes.SetupRouter(ctrl, jwtSecret, cacheCfg, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
