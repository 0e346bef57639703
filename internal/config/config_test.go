package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "studycoach", cfg.MongoDB)
	require.Equal(t, 7*24*time.Hour, cfg.TokenTTL())
	require.Equal(t, 30*time.Second, cfg.RecommenderHealthTTL)
	require.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_DB", "catalog_test")
	t.Setenv("RECOMMENDER_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_AUTH", "3")
	t.Setenv("X_API_KEY", "key-123")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "catalog_test", cfg.MongoDB)
	require.Equal(t, 5*time.Second, cfg.RecommenderTimeout)
	require.Equal(t, 3, cfg.RateLimitAuth)
	require.Equal(t, "key-123", cfg.RecommenderAPIKey)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.JWTExpireHours = 0
	require.Error(t, cfg.Validate())

	for _, limit := range []int{0, -1} {
		cfg = defaultConfig()
		cfg.RateLimitAuth = limit
		require.ErrorContains(t, cfg.Validate(), "RATE_LIMIT_AUTH")
	}
}
