package handlers

import (
	"net/http"

	"tourism/internal/database"
	"tourism/internal/utils"
)

type CommonHandler struct {
	db database.Service
}

func NewCommonHandler(db database.Service) *CommonHandler {
	return &CommonHandler{db: db}
}

func (h *CommonHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Tourism API"})
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	health := h.db.Health()
	status := http.StatusOK
	if _, failed := health["error"]; failed {
		status = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, status, health)
}
