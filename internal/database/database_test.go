package database

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/event"

	"tourism/internal/config"
	"tourism/internal/utils"
)

var mongoURI string

func mustStartMongoContainer() (func(context.Context) error, error) {
	dbContainer, err := mongodb.Run(context.Background(), "mongo:7")
	if err != nil {
		return nil, err
	}
	teardown := func(ctx context.Context) error { return dbContainer.Terminate(ctx) }

	uri, err := dbContainer.ConnectionString(context.Background())
	if err != nil {
		return teardown, err
	}
	mongoURI = uri

	return teardown, nil
}

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	teardown, err := mustStartMongoContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not start mongodb container")
	}

	code := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Could not teardown mongodb container")
		}
	}
	os.Exit(code)
}

func requireContainer(t *testing.T) {
	t.Helper()
	if mongoURI == "" {
		t.Skip("mongodb container not started in short mode")
	}
}

func TestNew(t *testing.T) {
	requireContainer(t)

	srv, err := New(context.Background(), config.MongoConfig{URI: mongoURI, ConnectTimeout: 10 * time.Second})
	require.NoError(t, err)
	require.NotNil(t, srv)
	defer srv.Close(context.Background())

	assert.Equal(t, DestinationsCollection, srv.Destinations().Name())
	assert.Equal(t, DatabaseName, srv.Destinations().Database().Name())
}

func TestHealth(t *testing.T) {
	requireContainer(t)

	srv, err := New(context.Background(), config.MongoConfig{URI: mongoURI})
	require.NoError(t, err)
	defer srv.Close(context.Background())

	stats := srv.Health()

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestNewMissingURI(t *testing.T) {
	_, err := New(context.Background(), config.MongoConfig{})
	assert.ErrorIs(t, err, config.ErrMissingMongoURI)
}

func TestNewUnreachable(t *testing.T) {
	cfg := config.MongoConfig{
		URI:            "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=300&connectTimeoutMS=300",
		ConnectTimeout: 2 * time.Second,
	}

	srv, err := New(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, srv)
}

func TestPoolMonitorTracksConnections(t *testing.T) {
	const dbName = "pool_monitor_test"
	monitor := newPoolMonitor(dbName)

	monitor.Event(&event.PoolEvent{Type: event.ConnectionCreated})
	monitor.Event(&event.PoolEvent{Type: event.ConnectionCreated})
	monitor.Event(&event.PoolEvent{Type: event.GetSucceeded})
	assert.Equal(t, 2.0, testutil.ToFloat64(utils.DBConnectionsOpen.WithLabelValues(dbName)))
	assert.Equal(t, 1.0, testutil.ToFloat64(utils.DBConnectionsInUse.WithLabelValues(dbName)))

	monitor.Event(&event.PoolEvent{Type: event.ConnectionReturned})
	monitor.Event(&event.PoolEvent{Type: event.ConnectionClosed})
	assert.Equal(t, 1.0, testutil.ToFloat64(utils.DBConnectionsOpen.WithLabelValues(dbName)))
	assert.Equal(t, 0.0, testutil.ToFloat64(utils.DBConnectionsInUse.WithLabelValues(dbName)))
}
