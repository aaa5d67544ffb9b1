package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"tourism/internal/models"
	"tourism/internal/services"
	"tourism/internal/utils"
)

type GeminiHandler struct {
	service services.GeminiService
}

func NewGeminiHandler(service services.GeminiService) *GeminiHandler {
	return &GeminiHandler{service: service}
}

// Generate relays a prompt to Gemini. The upstream body is returned verbatim on
// success; any upstream or transport failure becomes a fixed 500 message.
func (h *GeminiHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GeminiRequest
	if err := utils.DecodeJSONBody(w, r, &req); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("Invalid request payload for Gemini")
		switch {
		case utils.IsValidationError(err), errors.Is(err, utils.ErrEmptyBody):
			utils.SendJSONError(w, "A prompt string is required.", http.StatusBadRequest)
		default:
			utils.SendJSONError(w, "Invalid request payload.", http.StatusBadRequest)
		}
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("Gemini proxy error")
		utils.SendJSONError(w, "Error calling Gemini API.", http.StatusInternalServerError)
		return
	}

	utils.RespondWithRawJSON(w, http.StatusOK, resp)
}
