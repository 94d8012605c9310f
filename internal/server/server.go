package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"text-vectorizer/config"
	"text-vectorizer/internal/db"
	"text-vectorizer/internal/handlers"
	"text-vectorizer/internal/repositories"
	"text-vectorizer/internal/routes"
	"text-vectorizer/internal/services"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Server is the HTTP server together with the resources it owns
type Server struct {
	HTTP   *http.Server
	stats  repositories.StatsRepository
	logger *logrus.Entry
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs every request with its status and duration
func loggingMiddleware(logger *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			entry := logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"remote":   r.RemoteAddr,
				"status":   rec.status,
				"duration": time.Since(start),
			})
			if rec.status >= http.StatusInternalServerError {
				entry.Error("Request failed")
			} else {
				entry.Info("Request handled")
			}
		})
	}
}

// NewLogger builds the root logger from configuration
func NewLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

// NewServer wires repositories, services and handlers into an HTTP server
func NewServer(cfg *config.Config, logger *logrus.Logger) *Server {
	entry := logger.WithField("component", "server")

	stats := initializeStatsRepository(cfg.Redis, entry)
	lemmatizer := initializeMorphClient(cfg.Morph, entry)

	limits := services.Limits{
		MaxDocuments:  cfg.Limits.MaxDocuments,
		MaxComponents: cfg.Limits.MaxComponents,
	}
	vectorizer := services.NewVectorizerService(stats, limits, logger.WithField("service", "vectorizer"))
	annotator := services.NewAnnotatorService(lemmatizer, cfg.NLP.ModelDir, logger.WithField("service", "annotator"))

	h := &routes.Handlers{
		Health:    handlers.HealthCheckHandler,
		Home:      handlers.HomeHandler,
		Vectorize: handlers.NewVectorizeHandler(vectorizer, logger.WithField("handler", "vectorize")),
		Text:      handlers.NewTextHandler(annotator, logger.WithField("handler", "text")),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Add Swagger endpoints
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL(cfg.Server.SwaggerURL), // The url pointing to API definition
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	router.Use(loggingMiddleware(logger.WithField("component", "http")))

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      corsMiddleware(router),
			ReadTimeout:  cfg.Server.ReadTimeout.Duration,
			WriteTimeout: cfg.Server.WriteTimeout.Duration,
		},
		stats:  stats,
		logger: entry,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.HTTP.Addr).Info("Server listening")
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.Close()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.HTTP.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close releases the statistics store
func (s *Server) Close() {
	if err := s.stats.Close(); err != nil {
		s.logger.WithError(err).Warn("Failed to close statistics store")
	}
}

// initializeStatsRepository connects to Redis, falling back to memory
func initializeStatsRepository(cfg config.RedisConfig, logger *logrus.Entry) repositories.StatsRepository {
	if !cfg.Enabled {
		logger.Info("Redis disabled, keeping usage statistics in memory")
		return repositories.NewMemoryStatsRepository()
	}

	redisConfig := db.DefaultRedisConfig()
	redisConfig.Host = cfg.Host
	redisConfig.Port = cfg.Port
	redisConfig.Password = cfg.Password
	redisConfig.DB = cfg.DB
	if cfg.PoolSize > 0 {
		redisConfig.PoolSize = cfg.PoolSize
	}

	log := logger.WithFields(logrus.Fields{"addr": redisConfig.Addr(), "db": redisConfig.DB})
	log.Info("Connecting to Redis")

	redisClient, err := db.NewRedisClient(redisConfig)
	if err != nil {
		log.WithError(err).Warn("Failed to create Redis client, keeping usage statistics in memory")
		return repositories.NewMemoryStatsRepository()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx); err != nil {
		log.WithError(err).Warn("Redis connection failed, keeping usage statistics in memory")
		redisClient.Close()
		return repositories.NewMemoryStatsRepository()
	}
	log.Info("Redis connected successfully")

	return repositories.NewRedisStatsRepository(redisClient.GetClient(), "vectorizer:")
}

// initializeMorphClient creates the morphology backend client if configured
func initializeMorphClient(cfg config.MorphConfig, logger *logrus.Entry) services.Lemmatizer {
	if cfg.BaseURL == "" {
		logger.Warn("Morphology backend not configured, lemmatization disabled")
		return nil
	}

	logger.WithFields(logrus.Fields{
		"url":     cfg.BaseURL,
		"timeout": cfg.Timeout.Duration,
		"retries": cfg.Retries,
	}).Info("Initializing morphology client")
	return services.NewMorphClientWithOptions(cfg.BaseURL, cfg.Timeout.Duration, cfg.Retries)
}
