package main

import (
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/testiq/backend/internal/assessment"
	"github.com/testiq/backend/internal/catalog"
	"github.com/testiq/backend/internal/certificate"
	"github.com/testiq/backend/internal/config"
	"github.com/testiq/backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	bank, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load question catalog: %v", err)
	}
	log.Printf("Loaded %d questions from %s", bank.Len(), cfg.CatalogPath)

	// Initialize services and handlers
	store := assessment.NewDBStore(db)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := assessment.NewSelector(bank, rng)
	service := assessment.NewService(store, selector)
	testHandler := assessment.NewHandler(service)
	certHandler := certificate.NewHandler(store)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("", testHandler.Root).Methods("GET")
	api.HandleFunc("/", testHandler.Root).Methods("GET")
	api.HandleFunc("/stats", testHandler.GetStats).Methods("GET")
	api.HandleFunc("/test/start", testHandler.StartTest).Methods("POST")
	api.HandleFunc("/test/submit", testHandler.SubmitTest).Methods("POST")
	api.HandleFunc("/certificate/download", certHandler.Download).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	handler := c.Handler(r)

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
