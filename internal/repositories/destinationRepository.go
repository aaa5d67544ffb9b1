package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"tourism/internal/database"
	"tourism/internal/models"
	"tourism/internal/utils"
)

type DestinationRepository interface {
	FindAll(ctx context.Context) ([]models.Destination, error)
	FindTrendy(ctx context.Context) ([]models.Destination, error)
}

type destinationRepository struct {
	db database.Service
}

func NewDestinationRepository(db database.Service) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) FindAll(ctx context.Context) ([]models.Destination, error) {
	return r.find(ctx, "findAll", bson.M{})
}

// FindTrendy matches only documents whose isTrendy field is the boolean true.
func (r *destinationRepository) FindTrendy(ctx context.Context) ([]models.Destination, error) {
	return r.find(ctx, "findTrendy", bson.M{"isTrendy": true})
}

func (r *destinationRepository) find(ctx context.Context, queryType string, filter bson.M) ([]models.Destination, error) {
	repository := "destinations"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	cursor, err := r.db.Destinations().Find(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("query", queryType).Msg("Failed to find destinations")
		return nil, fmt.Errorf("failed to find destinations: %w", err)
	}
	defer cursor.Close(ctx)

	destinations := []models.Destination{}
	if err = cursor.All(ctx, &destinations); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Str("query", queryType).Msg("Failed to decode destinations")
		return nil, fmt.Errorf("failed to decode destinations: %w", err)
	}
	return destinations, nil
}
