package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/andrewpaige1/cosmic-travel-api/config"
	"github.com/andrewpaige1/cosmic-travel-api/handlers"
	"github.com/andrewpaige1/cosmic-travel-api/middleware"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg(".env file could not be loaded")
		}
	}
}

// newHandler wraps the API routes in CORS and the request middleware
func newHandler(db *gorm.DB, allowedOrigins []string) http.Handler {
	DBHandler := &handlers.DBHandler{DB: db}
	mux := DBHandler.Routes()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	return middleware.Chain(corsHandler,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)
}

func main() {
	config.LoadEnvironment()
	config.SetupLogging(config.Env.LogLevel)

	if err := config.Connect(config.Env.DatabaseURI); err != nil {
		log.Fatal().Err(err).Str("db_uri", config.Env.DatabaseURI).Msg("Database setup failed")
	}

	if config.Env.SeedData {
		if err := config.Seed(config.Database); err != nil {
			log.Fatal().Err(err).Msg("Seeding failed")
		}
	}

	server := &http.Server{
		Addr:              "0.0.0.0:" + config.Env.Port,
		Handler:           newHandler(config.Database, config.Env.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", server.Addr).Bool("development", config.Env.IsDevelopment).Msg("Starting server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server error")
	}
}
