package handlers

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"tourism/internal/services"
	"tourism/internal/utils"
)

type DestinationHandler struct {
	service services.DestinationService
}

func NewDestinationHandler(service services.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

func (h *DestinationHandler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.ListAll(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Error fetching destinations")
		utils.SendJSONError(w, "Failed to fetch destinations.", http.StatusInternalServerError)
		return
	}

	hlog.FromRequest(r).Info().Int("count", len(destinations)).Msg("Destinations retrieved successfully")
	utils.RespondWithJSON(w, http.StatusOK, destinations)
}

func (h *DestinationHandler) GetTrendyDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := h.service.ListTrendy(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Error fetching trendy destinations")
		utils.SendJSONError(w, "Failed to fetch trendy destinations.", http.StatusInternalServerError)
		return
	}

	hlog.FromRequest(r).Info().Int("count", len(destinations)).Msg("Trendy destinations retrieved successfully")
	utils.RespondWithJSON(w, http.StatusOK, destinations)
}
