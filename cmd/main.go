// @title Tripmate Backend API
// @version 1.0
// @description Collaborative trip planning backend: trips, guests, expenses, map locations, itineraries, todos, and document uploads.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "TRIPMATE_BACK-END/docs" // This is required for swagger
	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/database"
	"TRIPMATE_BACK-END/internal/handlers"
	"TRIPMATE_BACK-END/internal/middleware"
	"TRIPMATE_BACK-END/internal/routes"
	"TRIPMATE_BACK-END/internal/storage"
	"TRIPMATE_BACK-END/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	dsn := cfg.GetDSN()

	if err := database.Migrate(dsn); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// pgxpool + simple protocol (needed when connecting through PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse dsn")
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "tripmate-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			logger.Fatal().Err(err).Msg("database ping failed")
		}
	}

	objects, err := storage.NewS3Storage(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	db := store.NewPostgres(pool)

	// Initialize handlers
	h := routes.Handlers{
		Health:    handlers.NewHealthHandler(pool),
		Users:     handlers.NewUsersHandler(db),
		Trips:     handlers.NewTripsHandler(db, objects, logger),
		Guests:    handlers.NewGuestsHandler(db),
		Expenses:  handlers.NewExpensesHandler(db),
		Locations: handlers.NewLocationsHandler(db),
		Itinerary: handlers.NewItineraryHandler(db),
		Todos:     handlers.NewTodosHandler(db),
		Uploads:   handlers.NewUploadsHandler(db, objects, cfg.Storage, logger),
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, h, &cfg.Auth)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.RequestLogger(mux, logger))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	logger.Info().Msg("server stopped")
}
