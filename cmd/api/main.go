// ================== cmd/api/main.go ==================
//
// @title Smart Studycoach API
// @version 1.0
// @description Course catalog, favorites, enrollments and recommendations
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xyz-asif/studycoach/internal/config"
	"github.com/xyz-asif/studycoach/internal/database"
	"github.com/xyz-asif/studycoach/internal/middleware"
	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbCfg := database.DefaultConfig()
	dbCfg.URI = cfg.MongoURI
	dbCfg.DBName = cfg.MongoDB
	dbCfg.MaxPool = cfg.MongoMaxPool

	conn, err := database.NewConnection(dbCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid database config")
	}
	db, err := conn.Get(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := conn.Close(closeCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to close MongoDB connection")
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := conn.HealthCheck(pingCtx); err != nil {
			response.ServiceUnavailable(c, "database unreachable", "DB_UNAVAILABLE")
			return
		}
		response.Success(c, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		}, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := routes.SetupRoutes(ctx, router, db, cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up routes")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("Server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
