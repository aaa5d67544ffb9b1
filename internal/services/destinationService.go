package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"tourism/internal/metrics"
	"tourism/internal/models"
	"tourism/internal/repositories"
)

type DestinationService interface {
	ListAll(ctx context.Context) ([]models.Destination, error)
	ListTrendy(ctx context.Context) ([]models.Destination, error)
}

type destinationServiceImpl struct {
	destinationRepo repositories.DestinationRepository
}

func NewDestinationService(destinationRepo repositories.DestinationRepository) DestinationService {
	return &destinationServiceImpl{destinationRepo: destinationRepo}
}

func (s *destinationServiceImpl) ListAll(ctx context.Context) ([]models.Destination, error) {
	log.Debug().Msg("Attempting to list all destinations")
	destinations, err := s.destinationRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error listing destinations")
		return nil, err
	}
	destinations = nonNil(destinations)
	metrics.DestinationsServedTotal.WithLabelValues("all").Add(float64(len(destinations)))
	log.Debug().Int("count", len(destinations)).Msg("Successfully listed destinations")
	return destinations, nil
}

func (s *destinationServiceImpl) ListTrendy(ctx context.Context) ([]models.Destination, error) {
	log.Debug().Msg("Attempting to list trendy destinations")
	destinations, err := s.destinationRepo.FindTrendy(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error listing trendy destinations")
		return nil, err
	}
	destinations = nonNil(destinations)
	metrics.DestinationsServedTotal.WithLabelValues("trendy").Add(float64(len(destinations)))
	log.Debug().Int("count", len(destinations)).Msg("Successfully listed trendy destinations")
	return destinations, nil
}

// nonNil keeps empty results rendering as [] rather than null.
func nonNil(destinations []models.Destination) []models.Destination {
	if destinations == nil {
		return []models.Destination{}
	}
	return destinations
}
