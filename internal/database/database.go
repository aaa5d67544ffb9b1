package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourism/internal/config"
	"tourism/internal/utils"
)

const (
	DatabaseName           = "tourismApp"
	DestinationsCollection = "destinations"
)

type Service interface {
	Health() map[string]string
	Client() *mongo.Client
	Destinations() *mongo.Collection
	Close(ctx context.Context) error
}

type service struct {
	db *mongo.Client
}

// New connects to MongoDB and pings it before returning. The connection is
// opened once and shared for the lifetime of the process.
func New(ctx context.Context, cfg config.MongoConfig) (Service, error) {
	if cfg.URI == "" {
		return nil, config.ErrMissingMongoURI
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetPoolMonitor(newPoolMonitor(DatabaseName)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	log.Info().Msg("Attempting to connect to MongoDB")
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	log.Info().Str("database", DatabaseName).Msg("Successfully connected to MongoDB")
	return &service{
		db: client,
	}, nil
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := s.db.Ping(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return map[string]string{
			"message": "db down",
			"error":   err.Error(),
		}
	}

	return map[string]string{
		"message": "It's healthy",
	}
}

func (s *service) Client() *mongo.Client {
	return s.db
}

func (s *service) Destinations() *mongo.Collection {
	return s.db.Database(DatabaseName).Collection(DestinationsCollection)
}

func (s *service) Close(ctx context.Context) error {
	return s.db.Disconnect(ctx)
}

func newPoolMonitor(dbName string) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.ConnectionCreated:
				utils.DBConnectionsOpen.WithLabelValues(dbName).Inc()
			case event.ConnectionClosed:
				utils.DBConnectionsOpen.WithLabelValues(dbName).Dec()
			case event.GetSucceeded:
				utils.DBConnectionsInUse.WithLabelValues(dbName).Inc()
			case event.ConnectionReturned:
				utils.DBConnectionsInUse.WithLabelValues(dbName).Dec()
			}
		},
	}
}
