package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/studycoach/internal/config"
	"github.com/xyz-asif/studycoach/internal/features/auth"
	"github.com/xyz-asif/studycoach/internal/features/modules"
	"github.com/xyz-asif/studycoach/internal/features/recommendations"
	"github.com/xyz-asif/studycoach/internal/features/users"
	"github.com/xyz-asif/studycoach/internal/middleware"
	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	"github.com/xyz-asif/studycoach/internal/pkg/ratelimit"
	"github.com/xyz-asif/studycoach/internal/pkg/token"
	"github.com/xyz-asif/studycoach/internal/pkg/validator"
)

// SetupRoutes wires every feature under /api/v1. ctx bounds background work
// such as rate limiter cleanup.
func SetupRoutes(ctx context.Context, router *gin.Engine, db *mongo.Database, cfg *config.Config) error {
	if err := validator.Register(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	api := router.Group("/api/v1")

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL())
	requireAuth := middleware.Auth(tokens)
	optionalAuth := middleware.OptionalAuth(tokens)

	authLimiter := ratelimit.New(cfg.RateLimitAuth, time.Minute)
	authLimiter.StartCleanup(ctx, 5*time.Minute)

	// Repositories
	authRepo := auth.NewRepository(db)
	moduleRepo := modules.NewRepository(db)
	userRepo := users.NewRepository(db)

	indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := authRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn().Err(err).Msg("Failed to ensure user indexes")
	}
	if err := moduleRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Warn().Err(err).Msg("Failed to ensure module indexes")
	}

	// Services
	authService := auth.NewService(authRepo, tokens)
	moduleService := modules.NewService(moduleRepo)
	userService := users.NewService(userRepo, moduleService)
	recommender := recommendations.NewClient(recommendations.ClientConfig{
		BaseURL:      cfg.RecommenderURL,
		APIKey:       cfg.RecommenderAPIKey,
		Timeout:      cfg.RecommenderTimeout,
		ProbeTimeout: cfg.RecommenderProbeTimeout,
		HealthTTL:    cfg.RecommenderHealthTTL,
	})
	recommendationService := recommendations.NewService(recommender)

	// Feature routes
	auth.RegisterRoutes(api, auth.NewHandler(authService, cfg.TokenTTL(), cfg.CookieSecure), requireAuth, ratelimit.Middleware(authLimiter))
	modules.RegisterRoutes(api, modules.NewHandler(moduleService, userService), optionalAuth)
	users.RegisterRoutes(api, users.NewHandler(userService), requireAuth, optionalAuth)
	recommendations.RegisterRoutes(api, recommendations.NewHandler(recommendationService), optionalAuth)

	return nil
}
