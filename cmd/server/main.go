package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/PrajwalVN/parking-booking/internal/api"
	"github.com/PrajwalVN/parking-booking/internal/auth"
	"github.com/PrajwalVN/parking-booking/internal/config"
	"github.com/PrajwalVN/parking-booking/internal/db"
	"github.com/PrajwalVN/parking-booking/internal/repository"
	"github.com/PrajwalVN/parking-booking/internal/service"
)

func main() {
	godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := conn.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	slotStore := repository.NewPostgresSlotStore(conn)
	if err := slotStore.Seed(cfg.SlotCount); err != nil {
		log.Fatalf("Failed to seed slots: %v", err)
	}
	ledger := repository.NewPostgresBookingLedger(conn)

	authSvc, err := service.NewAdminAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to init admin auth: %v", err)
	}
	bookingSvc := service.NewBookingService(slotStore, ledger, cfg.RatePerHour)
	logSvc := service.NewLogService(authSvc, ledger)
	jobSvc := service.NewJobService(slotStore, ledger)

	slotHandler := api.NewSlotHandler(bookingSvc)
	adminHandler := api.NewAdminHandler(bookingSvc, logSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()
	apiRouter := r.PathPrefix("/api").Subrouter()

	// Public endpoints
	apiRouter.HandleFunc("/slots", slotHandler.ListSlots).Methods("GET")
	apiRouter.HandleFunc("/book", slotHandler.Book).Methods("POST")
	apiRouter.HandleFunc("/admin/login", authHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := apiRouter.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(authSvc))
	admin.HandleFunc("/logs", adminHandler.ListLogs).Methods("GET")
	admin.HandleFunc("/mark-occupied", adminHandler.MarkOccupied).Methods("POST")
	admin.HandleFunc("/generate-invoice", adminHandler.GenerateInvoice).Methods("POST")
	admin.HandleFunc("/reset-slot", adminHandler.ResetSlot).Methods("POST")

	c := cron.New()
	if _, err := c.AddFunc(cfg.ReconcileSpec, func() {
		if err := jobSvc.ReconcileOrphans(); err != nil {
			log.Printf("Reconcile job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reconcile job: %v", err)
	}
	c.Start()
	defer c.Stop()

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Admin-Token"}),
	)(r)
	handler = handlers.LoggingHandler(os.Stdout, handler)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handler))
}
