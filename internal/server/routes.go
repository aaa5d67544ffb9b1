package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"tourism/internal/handlers"
	"tourism/internal/middlewares"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	r.Use(middlewares.Instrument)
	r.Use(middlewares.Cors(s.allowedOrigins))

	ch := handlers.NewCommonHandler(s.db)
	r.HandleFunc("/", ch.RootHandler).Methods("GET")
	r.HandleFunc("/health", ch.HealthHandler).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	s.registerDestinationRoutes(r)
	s.registerGeminiRoutes(r)

	return withRequestLogging(r)
}

func (s *Server) registerDestinationRoutes(r *mux.Router) {
	dh := handlers.NewDestinationHandler(s.destinationService)
	r.HandleFunc("/api/destinations", dh.GetDestinations).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/trendy-destinations", dh.GetTrendyDestinations).Methods("GET", "OPTIONS")
}

func (s *Server) registerGeminiRoutes(r *mux.Router) {
	gh := handlers.NewGeminiHandler(s.geminiService)
	r.HandleFunc("/api/gemini", gh.Generate).Methods("POST", "OPTIONS")
}

// withRequestLogging attaches a request-scoped logger carrying a request id and
// writes one access log line per request.
func withRequestLogging(next http.Handler) http.Handler {
	h := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Request handled")
	})(next)
	h = hlog.RequestIDHandler("req_id", "X-Request-Id")(h)
	h = hlog.RemoteAddrHandler("ip")(h)
	return hlog.NewHandler(log.Logger)(h)
}
