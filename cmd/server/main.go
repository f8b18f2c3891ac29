package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/roomcheck/internal/api"
	"github.com/RMahshie/roomcheck/internal/config"
	"github.com/RMahshie/roomcheck/internal/fingerprint"
	"github.com/RMahshie/roomcheck/internal/geo"
	"github.com/RMahshie/roomcheck/internal/observability"
	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/internal/repository/memory"
	"github.com/RMahshie/roomcheck/internal/repository/postgres"
	"github.com/RMahshie/roomcheck/internal/storage"
	"github.com/RMahshie/roomcheck/internal/verification"
	"github.com/RMahshie/roomcheck/internal/wifi"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	configureLogging(cfg.Log)

	ctx := context.Background()

	order, err := fingerprint.NewAPOrder(cfg.Fingerprint.APOrder)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid access point order")
	}

	// Object storage is optional; the dataset falls back to a local file
	var s3Service storage.S3Service
	if cfg.AWS.S3Bucket != "" {
		s3Service, err = storage.NewS3Service(ctx, storage.S3Config{
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

	dataset, err := storage.NewDatasetLoader(s3Service, cfg.Fingerprint.DatasetKey, cfg.Fingerprint.DatasetPath).Load(ctx, order)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load fingerprint dataset")
	}
	log.Info().Int("rooms", len(dataset.Rooms())).Int("samples", dataset.SampleCount()).Msg("Fingerprint dataset ready")

	classifier, err := fingerprint.NewClassifier(dataset, cfg.Fingerprint.K)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create classifier")
	}

	metrics, err := observability.NewCollector(prometheus.NewRegistry())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register metrics")
	}

	svc := verification.NewService(verification.Dependencies{
		Geofence: geo.NewEvaluator(geo.Coordinate{
			Latitude:  cfg.Campus.Latitude,
			Longitude: cfg.Campus.Longitude,
		}, cfg.Campus.RadiusMeters),
		AllowList:  wifi.NewAllowList(cfg.Wifi.SSIDAllowList),
		Hotspots:   wifi.NewHotspotPrefixes(cfg.Wifi.HotspotPrefixes),
		APOrder:    order,
		Classifier: classifier,
		Metrics:    metrics,
	})

	attemptRepo, closeRepo := openAttemptRepository(cfg.Database.URL)
	defer closeRepo()

	// Create Chi router
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Session-ID"},
		MaxAge:         300,
	}))

	// Error envelope must be installed before operations are registered
	api.UseErrorEnvelope()

	// Create Huma API
	humaConfig := huma.DefaultConfig("Roomcheck API", api.Version)
	humaConfig.DocsPath = "/api/docs"
	humaAPI := humachi.New(router, humaConfig)

	api.RegisterRoutes(humaAPI, svc, attemptRepo)
	router.Handle("/metrics", metrics.Handler())

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Server.Env).Msg("Starting Roomcheck API server")
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

// configureLogging applies LOG_LEVEL and LOG_FORMAT to the global logger
func configureLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}

// openAttemptRepository uses Postgres when DATABASE_URL is set, otherwise an in-memory store
func openAttemptRepository(url string) (repository.AttemptRepository, func()) {
	if url == "" {
		log.Warn().Msg("DATABASE_URL not set, verification attempts are kept in memory")
		return memory.NewAttemptRepository(), func() {}
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Connected to database")

	return postgres.NewPostgresAttemptRepository(db), func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
}

// zerologLogger returns a Chi middleware that logs HTTP requests using zerolog
func zerologLogger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("remote_ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("user_agent", r.UserAgent()).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
