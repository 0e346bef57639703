// ================== internal/database/connection.go ==================
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config represents database configuration
type Config struct {
	URI     string
	DBName  string
	Timeout time.Duration
	MaxPool uint64
	MinPool uint64
}

// DefaultConfig returns default database configuration
func DefaultConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		MaxPool: 100,
		MinPool: 5,
	}
}

// Connection owns the process-wide MongoDB client. The client is created
// on the first Get and reused afterwards.
type Connection struct {
	cfg *Config

	once     sync.Once
	client   *mongo.Client
	database *mongo.Database
	err      error
}

// NewConnection prepares a connection without dialing
func NewConnection(cfg *Config) (*Connection, error) {
	if cfg == nil {
		return nil, errors.New("database config is required")
	}
	if cfg.URI == "" || cfg.DBName == "" {
		return nil, errors.New("database URI and name are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Connection{cfg: cfg}, nil
}

// Get returns the database handle, connecting on first use.
// A failed first connect is sticky; the process is expected to exit.
func (c *Connection) Get(ctx context.Context) (*mongo.Database, error) {
	c.once.Do(func() {
		c.client, c.err = c.connect(ctx)
		if c.err == nil {
			c.database = c.client.Database(c.cfg.DBName)
		}
	})
	return c.database, c.err
}

func (c *Connection) connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(c.cfg.URI)
	if c.cfg.MaxPool > 0 {
		clientOptions.SetMaxPoolSize(c.cfg.MaxPool)
	}
	clientOptions.SetMinPoolSize(c.cfg.MinPool)
	clientOptions.SetMaxConnIdleTime(30 * time.Second)
	clientOptions.SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// Close disconnects the client if one was created
func (c *Connection) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// HealthCheck pings the primary and runs a database-level command
func (c *Connection) HealthCheck(ctx context.Context) error {
	db, err := c.Get(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	if err := db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("database access failed: %w", err)
	}
	return nil
}

// Collection names
const (
	UsersCollection   = "Users"
	ModulesCollection = "Modules"
)
