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

	"github.com/dkim1999m/hospedaje-reservas/config"
	"github.com/dkim1999m/hospedaje-reservas/controllers"
	"github.com/dkim1999m/hospedaje-reservas/routes"
	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()

	var store storage.Store
	if cfg.StorageDriver == "memory" {
		store = storage.NewMemoryStore()
		log.Println("⚠️  Using in-memory storage; state is lost on restart")
	} else {
		dsn, err := config.ResolveMySQLDSN()
		if err != nil {
			log.Fatalf("❌ Invalid MySQL configuration: %v", err)
		}

		mysqlStore, err := storage.NewMySQLStore(dsn)
		if err != nil {
			log.Fatalf("❌ Database connect failed: %v", err)
		}
		store = mysqlStore
		log.Println("✅ Database connection established")
	}

	// Initialize services
	catalog := services.DefaultCatalog()
	pricing := services.NewPricingService(catalog)
	inventory := services.NewInventoryService(catalog, store)
	ledger := services.NewLedgerService(store)
	whatsapp := services.NewWhatsAppClient(cfg.PropertyName, cfg.WhatsAppNumber, cfg.PaymentNumber)
	bookings := services.NewBookingService(catalog, pricing, inventory, ledger, whatsapp)

	// Initialize controllers
	roomController := controllers.NewRoomController(catalog, inventory, ledger)
	roomTypeController := controllers.NewRoomTypeController(catalog)
	bookingController := controllers.NewBookingController(bookings, ledger)
	settingsController := controllers.NewSettingsController(cfg.PropertyName, whatsapp)

	// Build router
	router := routes.SetupRouter(roomController, roomTypeController, bookingController, settingsController)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
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
