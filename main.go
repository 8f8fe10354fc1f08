package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/andrewpaige1/galaxymap-api/board"
	"github.com/andrewpaige1/galaxymap-api/config"
	"github.com/andrewpaige1/galaxymap-api/handlers"
	"github.com/andrewpaige1/galaxymap-api/logger"
	"github.com/andrewpaige1/galaxymap-api/middleware"
	"github.com/andrewpaige1/galaxymap-api/resources"
	"github.com/andrewpaige1/galaxymap-api/store"
	"github.com/andrewpaige1/galaxymap-api/topics"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}
	defer appLog.Sync()

	// Initialize database connection
	config.Connect()
	authMiddleware := middleware.EnsureValidToken()

	documents := store.New(config.Database, appLog)
	resourceEngine := resources.New(documents, appLog)
	boardEngine := board.New(documents, appLog)

	// First run: the auto collection starts from the curated catalog.
	if err := resourceEngine.SeedAuto(context.Background(), topics.Nodes); err != nil {
		appLog.Warn("failed to seed auto resources", "error", err)
	}

	h := &handlers.Handler{
		Resources: resourceEngine,
		Board:     boardEngine,
		Log:       appLog,
	}
	mux := http.NewServeMux()

	// Topic catalog
	mux.HandleFunc("GET /api/nodes", h.GetNodes)

	// Resources
	mux.HandleFunc("GET /api/resources", h.GetResources)
	mux.HandleFunc("POST /api/resources", h.MutateResources)

	// Board
	mux.HandleFunc("GET /api/threads", h.ListThreads)
	mux.HandleFunc("GET /api/threads/{threadID}", h.GetThreadByID)
	mux.HandleFunc("POST /api/threads", h.MutateThreads)

	// Development sign-in
	mux.HandleFunc("POST /api/auth/token", h.CreateDevToken)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://galaxymap.vercel.app"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(authMiddleware(mux))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	appLog.Info("listening", "addr", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
