package handlers

import (
	"aero-lite/internal/api/middlew"
	"aero-lite/internal/models"
	"aero-lite/pkg/response"
	"net/http"
)

const serviceName = "aero-lite"

// Health ответ для проверок доступности и демо-фронтенда
func Health(w http.ResponseWriter, r *http.Request) {
	log := middlew.GetLogger(r.Context())
	response.WriteJSONSuccess(w, log, http.StatusOK, models.HealthResponse{OK: true, Service: serviceName})
}
