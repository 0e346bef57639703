package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// ConfigPathEnvVar overrides the optional YAML config file location
	ConfigPathEnvVar = "CONFIG_PATH"

	defaultJWTSecret = "secret"
)

type Config struct {
	Port        string `koanf:"port"`
	AppEnv      string `koanf:"app_env"`
	FrontendURL string `koanf:"frontend_url"`

	MongoURI     string `koanf:"mongo_uri"`
	MongoDB      string `koanf:"mongo_db"`
	MongoMaxPool uint64 `koanf:"mongo_max_pool"`

	JWTSecret      string `koanf:"jwt_secret"`
	JWTExpireHours int    `koanf:"jwt_expire_hours"`
	CookieSecure   bool   `koanf:"cookie_secure"`

	RecommenderURL          string        `koanf:"recommender_url"`
	RecommenderAPIKey       string        `koanf:"x_api_key"`
	RecommenderTimeout      time.Duration `koanf:"recommender_timeout"`
	RecommenderHealthTTL    time.Duration `koanf:"recommender_health_ttl"`
	RecommenderProbeTimeout time.Duration `koanf:"recommender_probe_timeout"`

	RateLimitAuth int `koanf:"rate_limit_auth"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaultConfig() *Config {
	return &Config{
		Port:        "8080",
		AppEnv:      "development",
		FrontendURL: "http://localhost:3000",

		MongoURI:     "mongodb://localhost:27017",
		MongoDB:      "studycoach",
		MongoMaxPool: 100,

		JWTSecret:      defaultJWTSecret,
		JWTExpireHours: 24 * 7,

		RecommenderURL:          "http://localhost:8000",
		RecommenderTimeout:      15 * time.Second,
		RecommenderHealthTTL:    30 * time.Second,
		RecommenderProbeTimeout: 3 * time.Second,

		RateLimitAuth: 20,

		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load reads configuration with precedence env > file > defaults.
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	// missing .env is normal outside local development
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	known := make(map[string]struct{}, len(k.Keys()))
	for _, key := range k.Keys() {
		known[key] = struct{}{}
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc(known)), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that would make the server unsafe or unusable
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.MongoURI == "" || c.MongoDB == "" {
		return errors.New("MONGO_URI and MONGO_DB are required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.IsProduction() && c.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.JWTExpireHours <= 0 {
		return errors.New("JWT_EXPIRE_HOURS must be positive")
	}
	if c.RecommenderHealthTTL <= 0 || c.RecommenderProbeTimeout <= 0 {
		return errors.New("recommender health TTL and probe timeout must be positive")
	}
	if c.RateLimitAuth < 1 {
		return errors.New("RATE_LIMIT_AUTH must be at least 1")
	}
	return nil
}

// IsProduction reports whether the app runs with production settings
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// TokenTTL is the lifetime of issued session tokens
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpireHours) * time.Hour
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	for _, path := range []string{"config.yaml", "config.yml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps MONGO_URI -> mongo_uri and drops variables
// that don't correspond to a known key
func envTransformFunc(known map[string]struct{}) func(string) string {
	return func(key string) string {
		key = strings.ToLower(key)
		if _, ok := known[key]; ok {
			return key
		}
		return ""
	}
}
