package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/api"
	"github.com/RMahshie/spectra/internal/config"
	"github.com/RMahshie/spectra/internal/dataset"
	"github.com/RMahshie/spectra/internal/mixing"
	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/pigment"
	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/internal/repository/memory"
	"github.com/RMahshie/spectra/internal/repository/postgres"
	"github.com/RMahshie/spectra/internal/storage"
	"github.com/RMahshie/spectra/pkg/models"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(cfg.Server.LogLevel)
	if cfg.Server.Env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	// Object storage is optional
	var store storage.ObjectStore
	if cfg.AWS.S3Bucket != "" {
		store, err = storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.AWS.S3Bucket,
			Endpoint:  cfg.AWS.S3Endpoint,
			Region:    cfg.AWS.Region,
			AccessKey: cfg.AWS.AccessKeyID,
			SecretKey: cfg.AWS.SecretAccessKey,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize object storage")
		}
	}

	// Load datasets
	loader := dataset.NewLoader(store, dataset.Sources{
		MunsellKey:  cfg.Data.MunsellS3Key,
		MunsellPath: cfg.Data.MunsellPath,
		PigmentPath: cfg.Data.PigmentPath,
	})
	samples, err := loader.Munsell(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build Munsell database")
	}
	pigments, err := loader.Pigments(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pigment catalog")
	}

	// Repositories
	pigmentRepo, mixRepo, closeDB := repositories(ctx, cfg.Database.URL, pigments)
	defer closeDB()

	palette := munsell.NewPalette(samples)
	mixingSvc := mixing.NewMixingService(pigmentRepo, mixRepo)

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Create Huma API
	humaConfig := huma.DefaultConfig("Spectra API", version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	// Register health endpoint
	huma.Register(humaAPI, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = version
		resp.Body.Samples = samples.Len()
		resp.Body.Time = time.Now()
		return resp, nil
	})

	api.RegisterRoutes(humaAPI, palette, pigmentRepo, mixingSvc)

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting Spectra API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// repositories opens Postgres when a URL is configured and falls back to
// in-memory stores seeded from the catalog otherwise.
func repositories(ctx context.Context, url string, pigments []pigment.Pigment) (repository.PigmentRepository, repository.MixRepository, func()) {
	if url == "" {
		pigmentRepo := memory.NewPigmentRepository()
		if err := pigment.Seed(ctx, pigmentRepo, pigments); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed pigments")
		}
		log.Warn().Msg("DATABASE_URL not set, mixes are kept in memory")
		return pigmentRepo, memory.NewMixRepository(), func() {}
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Connected to database")
	return postgres.NewPostgresPigmentRepository(db), postgres.NewPostgresMixRepository(db), func() { db.Close() }
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("query", r.URL.RawQuery).
					Str("remote_ip", r.RemoteAddr).
					Str("request_id", middleware.GetReqID(r.Context())).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
