package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"tourism/internal/config"
	"tourism/internal/database"
	"tourism/internal/gemini"
	"tourism/internal/repositories"
	"tourism/internal/services"
)

type Server struct {
	port               int
	allowedOrigins     []string
	httpServer         *http.Server
	db                 database.Service
	destinationService services.DestinationService
	geminiService      services.GeminiService
}

// NewServer wires the HTTP server around an already connected database.
func NewServer(cfg *config.Config, db database.Service) *Server {
	destinationRepo := repositories.NewDestinationRepository(db)
	geminiClient := gemini.NewClient(cfg.Gemini, &http.Client{})

	s := &Server{
		port:               cfg.Server.Port,
		allowedOrigins:     cfg.Server.AllowedOrigins,
		db:                 db,
		destinationService: services.NewDestinationService(destinationRepo),
		geminiService:      services.NewGeminiService(geminiClient),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info().Str("model", geminiClient.Model()).Msg("Gemini proxy configured")
	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.port).Msgf("Server running on http://localhost:%d", s.port)
	return s.httpServer.ListenAndServe()
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}
	if err := s.db.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
