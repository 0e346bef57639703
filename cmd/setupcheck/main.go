// Command setupcheck verifies that MongoDB and the recommendation service
// are reachable with the current configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/xyz-asif/studycoach/internal/config"
	"github.com/xyz-asif/studycoach/internal/database"
	"github.com/xyz-asif/studycoach/internal/features/recommendations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("Config invalid", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Println("Testing MongoDB connection...")
	dbCfg := database.DefaultConfig()
	dbCfg.URI = cfg.MongoURI
	dbCfg.DBName = cfg.MongoDB

	conn, err := database.NewConnection(dbCfg)
	if err != nil {
		fail("MongoDB config invalid", err)
	}
	if err := conn.HealthCheck(ctx); err != nil {
		fail("MongoDB ping failed", err)
	}
	defer conn.Close(context.Background())
	fmt.Printf("✅ MongoDB connected (%s)\n", cfg.MongoDB)

	fmt.Println("\nTesting recommendation service...")
	health := recommendations.NewHealthCache(cfg.RecommenderURL, cfg.RecommenderProbeTimeout, 0)
	if !health.Healthy(ctx) {
		fmt.Printf("⚠️  Recommender at %s is not healthy; /recommend will return 503\n", cfg.RecommenderURL)
	} else {
		fmt.Printf("✅ Recommender reachable at %s\n", cfg.RecommenderURL)
	}
	if cfg.RecommenderAPIKey == "" {
		fmt.Println("⚠️  X_API_KEY is empty")
	}

	fmt.Println("\n🎉 Setup check finished.")
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
